// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the sign-determining classification of a transaction.
type Category string

const (
	CategoryIncome  Category = "Income"
	CategoryExpense Category = "Expense"
)

// IsValid reports whether the category is one of the two known values.
func (c Category) IsValid() bool {
	return c == CategoryIncome || c == CategoryExpense
}

// Subcategory lists offered by the entry form. The reporting core treats
// subcategories as opaque strings; these lists are a UI affordance only.
var (
	IncomeSubcategories  = []string{"Donations", "Student Fees", "Grants", "Other Income"}
	ExpenseSubcategories = []string{"Salaries", "Utilities", "Books & Materials", "Infrastructure", "Other Expenses"}
)

// Transaction represents a single ledger entry.
type Transaction struct {
	ID          int64
	Date        string // business date, YYYY-MM-DD
	Category    Category
	Subcategory string
	Sender      string
	Receiver    string
	Remarks     string
	Amount      Amount
	CreatedAt   time.Time // insertion timestamp, tie-break ordering only
}

// NewTransaction creates a new Transaction entity. The ID and CreatedAt
// fields are assigned by the storage layer on insert.
func NewTransaction(
	date string,
	category Category,
	subcategory string,
	sender string,
	receiver string,
	remarks string,
	amount decimal.Decimal,
) *Transaction {
	return &Transaction{
		Date:        date,
		Category:    category,
		Subcategory: subcategory,
		Sender:      sender,
		Receiver:    receiver,
		Remarks:     remarks,
		Amount:      NewAmount(amount),
	}
}
