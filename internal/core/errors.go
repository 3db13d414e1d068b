package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRegistered is the category sentinel for registry-integrity
	// failures: the caller referenced a client or account the bank does
	// not know about. Match with errors.Is.
	ErrNotRegistered = errors.New("not registered with the bank")

	ErrInsufficientFunds = errors.New("insufficient balance or other failure")
	ErrDailyLimitReached = errors.New("daily limit reached")
)

// NotAClientError reports an operation on a client that was never
// registered with the bank.
type NotAClientError struct {
	Name string
}

func (e *NotAClientError) Error() string {
	return fmt.Sprintf("%s is not a client", e.Name)
}

func (e *NotAClientError) Is(target error) bool {
	return target == ErrNotRegistered
}

// UnknownAccountError reports an operation on an account missing from the
// bank's registry. It is a sibling of NotAClientError, not a subtype.
type UnknownAccountError struct {
	Number string
}

func (e *UnknownAccountError) Error() string {
	return fmt.Sprintf("account %s does not exist", e.Number)
}

func (e *UnknownAccountError) Is(target error) bool {
	return target == ErrNotRegistered
}

// OperationError reports a business-rule failure on a registered account:
// the entity is known, but its state does not permit the operation. The
// cause is one of the sentinel errors above.
type OperationError struct {
	Err error
}

func (e *OperationError) Error() string {
	return e.Err.Error()
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
