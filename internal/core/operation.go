package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationKind classifies the entries of an account's history.
type OperationKind string

const (
	OpDeposit        OperationKind = "deposit"
	OpWithdrawal     OperationKind = "withdrawal"
	OpTransferDebit  OperationKind = "transfer debit"
	OpTransferCredit OperationKind = "transfer credit"
)

// Operation is one immutable entry of an account's history.
type Operation struct {
	Kind   OperationKind
	Amount decimal.Decimal
	At     time.Time
}
