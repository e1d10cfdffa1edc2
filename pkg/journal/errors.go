package journal

import "errors"

var (
	// ErrParse indicates a malformed decimal amount.
	ErrParse = errors.New("malformed amount")

	// ErrInvalidLineItem indicates a line item with a non-positive amount,
	// a missing side, or an invalid account name.
	ErrInvalidLineItem = errors.New("invalid line item")

	// ErrUnbalanced indicates that the debit and credit totals of an entry
	// are not exactly equal.
	ErrUnbalanced = errors.New("entry is not balanced")
)
