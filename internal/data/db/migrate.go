package db

import (
	"github.com/hqlam/laptopshop/internal/types"
	"gorm.io/gorm"
)

// AutoMigrateAll creates one table per entity plus the two join tables
// (laptop_categories pure many-to-many, laptop_suppliers attributed). Column
// defaults and unique indexes are enforced here, at the storage boundary.
func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Catalog
		&types.Category{},
		&types.Supplier{},
		&types.Laptop{},
		&types.LaptopSupplier{},

		// Sales
		&types.Customer{},
		&types.Order{},
		&types.OrderDetail{},

		// Identity
		&types.User{},
	)
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}
