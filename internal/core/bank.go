package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bank is the registry of clients and accounts and the only mutation path
// for balances and histories. Membership checks compare identity, not
// account numbers, so duplicate numbers are accepted (known limitation).
//
// The bank is single-actor state: nothing here locks. Embedding it in a
// concurrent host requires external mutual exclusion around every call.
type Bank struct {
	clients  []*Client
	accounts []Account
	clock    Clock
}

type BankOption func(*Bank)

func WithClock(c Clock) BankOption {
	return func(b *Bank) {
		b.clock = c
	}
}

func NewBank(opts ...BankOption) *Bank {
	b := &Bank{
		clock: systemClock{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// RegisterClient appends unconditionally; duplicates are not checked.
func (b *Bank) RegisterClient(c *Client) {
	b.clients = append(b.clients, c)
}

// OpenAccount records the account in the bank registry and in the
// client's owned list. The client must already be registered.
func (b *Bank) OpenAccount(c *Client, a Account) error {
	if !b.hasClient(c) {
		return &NotAClientError{Name: c.Name}
	}
	b.accounts = append(b.accounts, a)
	c.AddAccount(a)
	return nil
}

// Deposit logs the operation and then credits the account. The log entry
// precedes the credit.
func (b *Bank) Deposit(a Account, amount decimal.Decimal) error {
	if !b.hasAccount(a) {
		return &UnknownAccountError{Number: a.Number()}
	}
	b.record(a, OpDeposit, amount)
	a.Credit(amount)
	return nil
}

// Withdraw debits the account after the daily-limit check; a successful
// debit is logged and counted against the daily allowance.
func (b *Bank) Withdraw(a Account, amount decimal.Decimal) error {
	if !b.hasAccount(a) {
		return &UnknownAccountError{Number: a.Number()}
	}
	if !a.WithdrawalAllowed(b.clock.Now()) {
		return &OperationError{Err: ErrDailyLimitReached}
	}
	if !a.Debit(amount) {
		return &OperationError{Err: ErrInsufficientFunds}
	}
	b.record(a, OpWithdrawal, amount)
	a.base().dailyWithdrawals++
	return nil
}

// Transfer moves amount between two registered accounts. The credit to the
// destination lands before either history entry; the debit entry is logged
// first, then the credit entry.
func (b *Bank) Transfer(from, to Account, amount decimal.Decimal) error {
	if !b.hasAccount(from) {
		return &UnknownAccountError{Number: from.Number()}
	}
	if !b.hasAccount(to) {
		return &UnknownAccountError{Number: to.Number()}
	}
	if !from.Debit(amount) {
		return &OperationError{Err: ErrInsufficientFunds}
	}
	to.Credit(amount)
	b.record(from, OpTransferDebit, amount)
	b.record(to, OpTransferCredit, amount)
	return nil
}

// Statement is a point-in-time snapshot of a registered account.
type Statement struct {
	AccountNumber string
	Balance       decimal.Decimal
	GeneratedAt   time.Time
	Operations    []Operation
}

func (b *Bank) Statement(a Account) (Statement, error) {
	if !b.hasAccount(a) {
		return Statement{}, &UnknownAccountError{Number: a.Number()}
	}
	return Statement{
		AccountNumber: a.Number(),
		Balance:       a.Balance(),
		GeneratedAt:   b.clock.Now(),
		Operations:    a.History(),
	}, nil
}

func (b *Bank) record(a Account, kind OperationKind, amount decimal.Decimal) {
	op := Operation{
		Kind:   kind,
		Amount: amount,
		At:     b.clock.Now(),
	}
	a.base().operations = append(a.base().operations, op)
}

func (b *Bank) hasClient(c *Client) bool {
	for _, known := range b.clients {
		if known == c {
			return true
		}
	}
	return false
}

func (b *Bank) hasAccount(a Account) bool {
	for _, known := range b.accounts {
		if known == a {
			return true
		}
	}
	return false
}
