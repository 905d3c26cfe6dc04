package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hqlam/laptopshop/internal/pkg/logger"
	"github.com/hqlam/laptopshop/internal/types"
)

// OrderStore specializes the generic store for the order aggregate root.
type OrderStore struct {
	*Store[types.Order]
}

func NewOrderStore(db *gorm.DB, baseLog *logger.Logger) *OrderStore {
	return &OrderStore{Store: New[types.Order](db, baseLog)}
}

func orderedDetails(tx *gorm.DB) *gorm.DB {
	return tx.Order("order_details.id ASC")
}

// GetAllWithDetails returns every order with its customer (when still present)
// and its ordered line items, each resolved to its laptop (when still
// present).
func (s *OrderStore) GetAllWithDetails(ctx context.Context) ([]types.Order, error) {
	var out []types.Order
	if err := s.db.WithContext(ctx).
		Preload("Customer").
		Preload("Details", orderedDetails).
		Preload("Details.Laptop").
		Find(&out).Error; err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// GetByIDWithDetails is the single-row variant of GetAllWithDetails. A miss is
// a nil result.
func (s *OrderStore) GetByIDWithDetails(ctx context.Context, id uint) (*types.Order, error) {
	var out types.Order
	err := s.db.WithContext(ctx).
		Preload("Customer").
		Preload("Details", orderedDetails).
		Preload("Details.Laptop").
		First(&out, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &out, nil
}
