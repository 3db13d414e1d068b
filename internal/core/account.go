package core

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Defaults applied by the account constructors. The demo binary overrides
// them from configuration via the With* options.
var (
	DefaultOverdraftLimit = decimal.NewFromInt(5000)
	DefaultInterestRate   = decimal.NewFromFloat(0.001)
)

const DefaultDailyWithdrawalLimit = 20

// Account is the common surface of the two account variants. The interface
// is sealed: only this package can implement it, which keeps the bank's
// registry a closed sum over {Checking, Savings}.
//
// Debit reports failure as a plain boolean; the bank escalates it to an
// OperationError. Credit never fails and performs no validation: callers
// are responsible for passing non-negative amounts.
type Account interface {
	Number() string
	Titular() *Client
	Balance() decimal.Decimal
	Credit(amount decimal.Decimal)
	Debit(amount decimal.Decimal) bool
	WithdrawalAllowed(now time.Time) bool
	History() []Operation

	base() *accountBase
}

type accountBase struct {
	titular              *Client
	number               string
	balance              decimal.Decimal
	dailyWithdrawals     int
	dailyWithdrawalLimit int
	operations           []Operation
	lastReset            time.Time
}

func newAccountBase(titular *Client, number string, balance decimal.Decimal, now time.Time) accountBase {
	return accountBase{
		titular:              titular,
		number:               number,
		balance:              balance,
		dailyWithdrawalLimit: DefaultDailyWithdrawalLimit,
		lastReset:            now,
	}
}

func (b *accountBase) Number() string {
	return b.number
}

func (b *accountBase) Titular() *Client {
	return b.titular
}

func (b *accountBase) Balance() decimal.Decimal {
	return b.balance
}

func (b *accountBase) Credit(amount decimal.Decimal) {
	b.balance = b.balance.Add(amount)
}

// History returns the operations oldest-first. The slice is a copy; the
// log itself only grows through the bank.
func (b *accountBase) History() []Operation {
	return slices.Clone(b.operations)
}

func (b *accountBase) DailyWithdrawals() int {
	return b.dailyWithdrawals
}

func (b *accountBase) base() *accountBase {
	return b
}

func (b *accountBase) debit(amount decimal.Decimal) bool {
	if amount.GreaterThan(b.balance) {
		return false
	}
	b.balance = b.balance.Sub(amount)
	return true
}

// resetDaily zeroes the withdrawal counter once per calendar date.
func (b *accountBase) resetDaily(now time.Time) {
	if !sameDate(b.lastReset, now) {
		b.dailyWithdrawals = 0
		b.lastReset = now
	}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// CheckingAccount backs its balance with a depletable overdraft line. The
// limit shrinks permanently as overdraft is drawn and never replenishes.
type CheckingAccount struct {
	accountBase

	overdraftLimit decimal.Decimal
}

type CheckingOption func(*CheckingAccount)

func WithOverdraftLimit(limit decimal.Decimal) CheckingOption {
	return func(a *CheckingAccount) {
		a.overdraftLimit = limit
	}
}

func NewCheckingAccount(titular *Client, number string, balance decimal.Decimal, opts ...CheckingOption) *CheckingAccount {
	a := &CheckingAccount{
		accountBase:    newAccountBase(titular, number, balance, time.Now()),
		overdraftLimit: DefaultOverdraftLimit,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *CheckingAccount) Debit(amount decimal.Decimal) bool {
	if amount.GreaterThan(a.balance) {
		return a.debitWithOverdraft(amount)
	}
	return a.accountBase.debit(amount)
}

func (a *CheckingAccount) debitWithOverdraft(amount decimal.Decimal) bool {
	if amount.GreaterThan(a.overdraftLimit.Add(a.balance)) {
		return false
	}
	a.overdraftLimit = a.overdraftLimit.Sub(amount.Sub(a.balance))
	a.balance = decimal.Zero
	return true
}

// WithdrawalAllowed always holds for checking accounts; the call still
// performs the daily-counter reset.
func (a *CheckingAccount) WithdrawalAllowed(now time.Time) bool {
	a.resetDaily(now)
	return true
}

func (a *CheckingAccount) OverdraftLimit() decimal.Decimal {
	return a.overdraftLimit
}

// SavingsAccount accrues interest on demand and is the only variant the
// daily withdrawal limit applies to.
type SavingsAccount struct {
	accountBase

	interestRate decimal.Decimal
}

type SavingsOption func(*SavingsAccount)

func WithInterestRate(rate decimal.Decimal) SavingsOption {
	return func(a *SavingsAccount) {
		a.interestRate = rate
	}
}

func WithDailyWithdrawalLimit(limit int) SavingsOption {
	return func(a *SavingsAccount) {
		a.dailyWithdrawalLimit = limit
	}
}

func NewSavingsAccount(titular *Client, number string, balance decimal.Decimal, opts ...SavingsOption) *SavingsAccount {
	a := &SavingsAccount{
		accountBase:  newAccountBase(titular, number, balance, time.Now()),
		interestRate: DefaultInterestRate,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *SavingsAccount) Debit(amount decimal.Decimal) bool {
	return a.accountBase.debit(amount)
}

func (a *SavingsAccount) WithdrawalAllowed(now time.Time) bool {
	a.resetDaily(now)
	return a.dailyWithdrawals < a.dailyWithdrawalLimit
}

// ApplyInterest compounds once per call: balance *= (1 + rate). Nothing
// schedules it; avoiding double application per period is on the caller.
func (a *SavingsAccount) ApplyInterest() {
	one := decimal.NewFromInt(1)
	a.balance = a.balance.Mul(one.Add(a.interestRate))
}

func (a *SavingsAccount) InterestRate() decimal.Decimal {
	return a.interestRate
}
