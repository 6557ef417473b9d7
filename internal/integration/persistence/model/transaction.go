// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Category    string          `gorm:"type:varchar(10);not null;index"`
	Subcategory string          `gorm:"type:varchar(100);not null"`
	Sender      string          `gorm:"type:varchar(255);not null"`
	Receiver    string          `gorm:"type:varchar(255);not null;index"`
	Remarks     string          `gorm:"type:text"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		Date:        entity.FormatDate(m.Date),
		Category:    entity.Category(m.Category),
		Subcategory: m.Subcategory,
		Sender:      m.Sender,
		Receiver:    m.Receiver,
		Remarks:     m.Remarks,
		Amount:      entity.NewAmount(m.Amount),
		CreatedAt:   m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	date, _ := entity.ParseDate(transaction.Date)
	return &TransactionModel{
		ID:          transaction.ID,
		Date:        date,
		Category:    string(transaction.Category),
		Subcategory: transaction.Subcategory,
		Sender:      transaction.Sender,
		Receiver:    transaction.Receiver,
		Remarks:     transaction.Remarks,
		Amount:      transaction.Amount.OrZero(),
		CreatedAt:   transaction.CreatedAt,
	}
}
