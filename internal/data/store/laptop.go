package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hqlam/laptopshop/internal/pkg/logger"
	"github.com/hqlam/laptopshop/internal/types"
)

// LaptopStore specializes the generic store for the catalog aggregate root.
type LaptopStore struct {
	*Store[types.Laptop]
}

func NewLaptopStore(db *gorm.DB, baseLog *logger.Logger) *LaptopStore {
	return &LaptopStore{Store: New[types.Laptop](db, baseLog)}
}

// GetAllWithDetails returns every laptop with its full category set and its
// supplier links, each link carrying the linked supplier, in one logical read.
func (s *LaptopStore) GetAllWithDetails(ctx context.Context) ([]types.Laptop, error) {
	var out []types.Laptop
	if err := s.db.WithContext(ctx).
		Preload("Categories").
		Preload("SupplierLinks.Supplier").
		Find(&out).Error; err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

// GetByIDWithDetails is the single-row variant of GetAllWithDetails. A miss is
// a nil result.
func (s *LaptopStore) GetByIDWithDetails(ctx context.Context, id uint) (*types.Laptop, error) {
	var out types.Laptop
	err := s.db.WithContext(ctx).
		Preload("Categories").
		Preload("SupplierLinks.Supplier").
		First(&out, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &out, nil
}

// InStock returns laptops with stock on hand.
func (s *LaptopStore) InStock(ctx context.Context) ([]types.Laptop, error) {
	return s.Find(ctx, Gt("stock", 0))
}
