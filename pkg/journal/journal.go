// Package journal provides the in-memory domain model for double-entry
// journal entries: balanced debit/credit line items against named accounts.
package journal

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Side indicates whether a line item debits or credits its account.
type Side string

const (
	Debit  Side = "debit"
	Credit Side = "credit"
)

// Valid reports whether the side is one of debit or credit.
func (s Side) Valid() bool {
	return s == Debit || s == Credit
}

// LineItem is a single debit or credit line in a journal entry.
// The amount is always positive; the direction is carried by Side.
type LineItem struct {
	ID      int64
	Account string
	Side    Side
	Amount  decimal.Decimal
}

// Entry is a double-entry journal entry. Once recorded it is immutable;
// corrections are modeled as new offsetting entries.
type Entry struct {
	ID          int64
	Description string
	CreatedAt   time.Time
	LineItems   []LineItem
}

// NewEntry validates line items and builds an unpersisted journal entry.
// An entry must have at least one debit and one credit line item, every
// amount must be strictly positive, and the debit and credit totals must be
// exactly equal (decimal equality, no tolerance).
func NewEntry(description string, items []LineItem) (*Entry, error) {
	entry := &Entry{
		Description: description,
		CreatedAt:   time.Now(),
		LineItems:   items,
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

// Validate checks the entry's invariants. It is pure: validation happens
// before any write is attempted.
func (e *Entry) Validate() error {
	debits := decimal.Zero
	credits := decimal.Zero
	debitCount := 0
	creditCount := 0

	for _, item := range e.LineItems {
		if _, err := SplitAccountPath(item.Account); err != nil {
			return err
		}
		if !item.Side.Valid() {
			return fmt.Errorf("%w: account %q has no debit or credit side", ErrInvalidLineItem, item.Account)
		}
		if item.Amount.Cmp(decimal.Zero) <= 0 {
			return fmt.Errorf("%w: account %q has non-positive amount %s", ErrInvalidLineItem, item.Account, item.Amount)
		}

		switch item.Side {
		case Debit:
			debits = debits.Add(item.Amount)
			debitCount++
		case Credit:
			credits = credits.Add(item.Amount)
			creditCount++
		}
	}

	if debitCount == 0 || creditCount == 0 {
		return fmt.Errorf("%w: needs at least one debit and one credit line item", ErrUnbalanced)
	}
	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits %s != credits %s", ErrUnbalanced, debits, credits)
	}

	return nil
}

// NewTransfer builds a balanced two-line entry from a signed amount.
// A positive amount debits debitAccount and credits creditAccount; a
// negative amount swaps the sides and uses the magnitude. A zero amount is
// rejected.
func NewTransfer(description string, amount decimal.Decimal, debitAccount, creditAccount string) (*Entry, error) {
	if amount.IsZero() {
		return nil, fmt.Errorf("%w: amount is zero", ErrInvalidLineItem)
	}

	if amount.IsNegative() {
		debitAccount, creditAccount = creditAccount, debitAccount
		amount = amount.Neg()
	}

	return NewEntry(description, []LineItem{
		{Account: debitAccount, Side: Debit, Amount: amount},
		{Account: creditAccount, Side: Credit, Amount: amount},
	})
}

// Debits returns the sum of the entry's debit line-item amounts.
func (e *Entry) Debits() decimal.Decimal {
	return e.total(Debit)
}

// Credits returns the sum of the entry's credit line-item amounts.
func (e *Entry) Credits() decimal.Decimal {
	return e.total(Credit)
}

func (e *Entry) total(side Side) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range e.LineItems {
		if item.Side == side {
			sum = sum.Add(item.Amount)
		}
	}
	return sum
}
