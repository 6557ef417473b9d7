package persistence

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/madrasah-accounts/backend/internal/application/adapter"
	"github.com/madrasah-accounts/backend/internal/integration/persistence/model"
)

// savedSenderRepository implements the adapter.SavedSenderRepository interface.
type savedSenderRepository struct {
	db *gorm.DB
}

// NewSavedSenderRepository creates a new saved sender repository instance.
func NewSavedSenderRepository(db *gorm.DB) adapter.SavedSenderRepository {
	return &savedSenderRepository{
		db: db,
	}
}

// List returns all distinct saved sender names, ascending.
func (r *savedSenderRepository) List(ctx context.Context) ([]string, error) {
	var senders []string
	result := r.db.WithContext(ctx).
		Model(&model.SavedSenderModel{}).
		Distinct("sender").
		Order("sender ASC").
		Pluck("sender", &senders)
	if result.Error != nil {
		return nil, result.Error
	}
	return senders, nil
}

// Save stores a sender name; conflicts on an existing name are ignored.
func (r *savedSenderRepository) Save(ctx context.Context, sender string) error {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "sender"}},
			DoNothing: true,
		}).
		Create(&model.SavedSenderModel{Sender: sender})
	return result.Error
}

// Delete removes a sender name; deleting an unknown name succeeds.
func (r *savedSenderRepository) Delete(ctx context.Context, sender string) error {
	result := r.db.WithContext(ctx).
		Where("sender = ?", sender).
		Delete(&model.SavedSenderModel{})
	return result.Error
}
