package domain

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrNotOwner is returned when a user attempts to act on a record they do not own.
	ErrNotOwner = errors.New("not owner")

	// ErrUserUnauthorized is returned when the caller has no valid identity.
	ErrUserUnauthorized = errors.New("user unauthorized")

	// ErrAmountMustBePositive is returned when a stored amount magnitude is negative.
	ErrAmountMustBePositive = errors.New("amount must be positive")

	// ErrInvalidTransactionType is returned for a transaction type outside income/expense/transfer.
	ErrInvalidTransactionType = errors.New("invalid transaction type")
)
