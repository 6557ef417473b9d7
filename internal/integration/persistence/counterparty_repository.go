package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/madrasah-accounts/backend/internal/application/adapter"
	"github.com/madrasah-accounts/backend/internal/domain/entity"
	"github.com/madrasah-accounts/backend/internal/integration/persistence/model"
)

// counterpartyRepository implements the adapter.CounterpartyRepository interface.
type counterpartyRepository struct {
	db *gorm.DB
}

// NewCounterpartyRepository creates a new counterparty repository instance.
func NewCounterpartyRepository(db *gorm.DB) adapter.CounterpartyRepository {
	return &counterpartyRepository{
		db: db,
	}
}

// List returns non-deleted counterparties matching the filter, ordered by
// name ascending. Entities marked "both" match either side filter.
func (r *counterpartyRepository) List(ctx context.Context, filter adapter.CounterpartyFilter) ([]*entity.Counterparty, error) {
	query := r.db.WithContext(ctx).
		Model(&model.CounterpartyModel{}).
		Where("is_deleted = ?", false).
		Where("is_trial = ?", filter.Trial)

	if filter.Kind != "" {
		query = query.Where("kind IN ?", []string{string(filter.Kind), string(entity.CounterpartyBoth)})
	}

	var counterpartyModels []model.CounterpartyModel
	result := query.Order("name ASC").Find(&counterpartyModels)
	if result.Error != nil {
		return nil, result.Error
	}

	counterparties := make([]*entity.Counterparty, len(counterpartyModels))
	for i, cm := range counterpartyModels {
		counterparties[i] = cm.ToEntity()
	}
	return counterparties, nil
}
