package journal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := ParseAmount(s)
	require.NoError(t, err)
	return d
}

func TestNewEntryBalanced(t *testing.T) {
	entry, err := NewEntry("Salary", []LineItem{
		{Account: "cash", Side: Debit, Amount: amount(t, "1000.00")},
		{Account: "income", Side: Credit, Amount: amount(t, "1000.00")},
	})

	require.NoError(t, err)
	require.Len(t, entry.LineItems, 2)
	assert.Equal(t, "Salary", entry.Description)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.True(t, entry.Debits().Equal(entry.Credits()))
}

func TestNewEntryMultipleLineItems(t *testing.T) {
	entry, err := NewEntry("Split purchase", []LineItem{
		{Account: "food", Side: Debit, Amount: amount(t, "30.25")},
		{Account: "household", Side: Debit, Amount: amount(t, "19.75")},
		{Account: "cash", Side: Credit, Amount: amount(t, "50.00")},
	})

	require.NoError(t, err)
	assert.True(t, entry.Debits().Equal(amount(t, "50.00")))
	assert.True(t, entry.Credits().Equal(amount(t, "50.00")))
}

func TestNewEntryUnbalanced(t *testing.T) {
	_, err := NewEntry("Broken", []LineItem{
		{Account: "cash", Side: Debit, Amount: amount(t, "100.00")},
		{Account: "income", Side: Credit, Amount: amount(t, "99.99")},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnbalanced)
}

func TestNewEntryRequiresBothSides(t *testing.T) {
	_, err := NewEntry("Debits only", []LineItem{
		{Account: "cash", Side: Debit, Amount: amount(t, "10")},
		{Account: "food", Side: Debit, Amount: amount(t, "10")},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnbalanced)
}

func TestNewEntryNonPositiveAmount(t *testing.T) {
	for _, bad := range []string{"0", "-5.00"} {
		_, err := NewEntry("Bad amount", []LineItem{
			{Account: "cash", Side: Debit, Amount: amount(t, bad)},
			{Account: "income", Side: Credit, Amount: amount(t, bad)},
		})

		require.Error(t, err, "amount %s", bad)
		assert.ErrorIs(t, err, ErrInvalidLineItem)
	}
}

func TestNewEntryMissingSide(t *testing.T) {
	_, err := NewEntry("No side", []LineItem{
		{Account: "cash", Amount: amount(t, "10")},
		{Account: "income", Side: Credit, Amount: amount(t, "10")},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLineItem)
}

func TestNewEntryEmptyDescriptionAllowed(t *testing.T) {
	_, err := NewEntry("", []LineItem{
		{Account: "cash", Side: Debit, Amount: amount(t, "10")},
		{Account: "income", Side: Credit, Amount: amount(t, "10")},
	})

	assert.NoError(t, err)
}

func TestNewEntryExactDecimalEquality(t *testing.T) {
	// 0.1 + 0.2 vs 0.3 would fail under binary floats; decimals must agree.
	entry, err := NewEntry("Decimal sums", []LineItem{
		{Account: "a", Side: Debit, Amount: amount(t, "0.1")},
		{Account: "b", Side: Debit, Amount: amount(t, "0.2")},
		{Account: "c", Side: Credit, Amount: amount(t, "0.3")},
	})

	require.NoError(t, err)
	assert.True(t, entry.Debits().Equal(amount(t, "0.3")))
}

func TestNewTransferPositive(t *testing.T) {
	entry, err := NewTransfer("Freelance payment", amount(t, "50.00"), "ledger", "income")

	require.NoError(t, err)
	require.Len(t, entry.LineItems, 2)
	assert.Equal(t, "ledger", entry.LineItems[0].Account)
	assert.Equal(t, Debit, entry.LineItems[0].Side)
	assert.Equal(t, "income", entry.LineItems[1].Account)
	assert.Equal(t, Credit, entry.LineItems[1].Side)
	assert.True(t, entry.LineItems[0].Amount.Equal(amount(t, "50.00")))
}

func TestNewTransferNegativeSwapsSides(t *testing.T) {
	entry, err := NewTransfer("Groceries", amount(t, "-25.50"), "ledger", "food")

	require.NoError(t, err)
	require.Len(t, entry.LineItems, 2)
	// The sign only picks which account is debited; magnitudes stay positive.
	assert.Equal(t, "food", entry.LineItems[0].Account)
	assert.Equal(t, Debit, entry.LineItems[0].Side)
	assert.Equal(t, "ledger", entry.LineItems[1].Account)
	assert.Equal(t, Credit, entry.LineItems[1].Side)
	assert.True(t, entry.LineItems[0].Amount.Equal(amount(t, "25.50")))
	assert.True(t, entry.LineItems[1].Amount.Equal(amount(t, "25.50")))
}

func TestNewTransferZero(t *testing.T) {
	_, err := NewTransfer("Nothing", decimal.Zero, "a", "b")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLineItem)
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount("136.02")
	require.NoError(t, err)
	assert.Equal(t, "136.02", d.String())

	_, err = ParseAmount("12.3.4")
	assert.ErrorIs(t, err, ErrParse)

	_, err = ParseAmount("ten")
	assert.ErrorIs(t, err, ErrParse)

	_, err = ParseAmount("")
	assert.ErrorIs(t, err, ErrParse)
}

func TestSplitAccountPath(t *testing.T) {
	segments, err := SplitAccountPath("assets:bank:checking")
	require.NoError(t, err)
	assert.Equal(t, []string{"assets", "bank", "checking"}, segments)

	_, err = SplitAccountPath("")
	assert.ErrorIs(t, err, ErrInvalidLineItem)

	_, err = SplitAccountPath("assets::checking")
	assert.ErrorIs(t, err, ErrInvalidLineItem)
}

func TestAccountAncestry(t *testing.T) {
	paths, err := AccountAncestry("assets:bank:checking")
	require.NoError(t, err)
	assert.Equal(t, []string{"assets", "assets:bank", "assets:bank:checking"}, paths)

	paths, err = AccountAncestry("food")
	require.NoError(t, err)
	assert.Equal(t, []string{"food"}, paths)
}

func TestAccountRoot(t *testing.T) {
	assert.Equal(t, "assets", AccountRoot("assets:bank:checking"))
	assert.Equal(t, "food", AccountRoot("food"))
}
