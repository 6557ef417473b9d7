package model

import (
	"time"

	"github.com/madrasah-accounts/backend/internal/domain/entity"
)

// CounterpartyModel represents the counterparties table in the database.
type CounterpartyModel struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	Name       string     `gorm:"type:varchar(255);not null;index"`
	Kind       string     `gorm:"type:varchar(10);not null;index"`
	IsDeleted  bool       `gorm:"not null;default:false"`
	IsTrial    bool       `gorm:"not null;default:false;index"`
	ModifiedAt *time.Time `gorm:"type:timestamp"`
	CreatedAt  time.Time  `gorm:"not null"`
}

// TableName returns the table name for the CounterpartyModel.
func (CounterpartyModel) TableName() string {
	return "counterparties"
}

// ToEntity converts a CounterpartyModel to a domain Counterparty entity.
func (m *CounterpartyModel) ToEntity() *entity.Counterparty {
	return &entity.Counterparty{
		ID:         m.ID,
		Name:       m.Name,
		Kind:       entity.CounterpartyKind(m.Kind),
		IsDeleted:  m.IsDeleted,
		IsTrial:    m.IsTrial,
		ModifiedAt: m.ModifiedAt,
		CreatedAt:  m.CreatedAt,
	}
}

// SavedSenderModel represents the saved_senders table in the database.
type SavedSenderModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Sender    string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SavedSenderModel.
func (SavedSenderModel) TableName() string {
	return "saved_senders"
}
