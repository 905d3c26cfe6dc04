package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hqlam/laptopshop/internal/pkg/logger"
	"github.com/hqlam/laptopshop/internal/session"
	"github.com/hqlam/laptopshop/internal/types"
	"github.com/hqlam/laptopshop/internal/utils"
)

// Apply inserts the demo fixture set: a default admin, the base categories and
// suppliers, a small catalog and one customer. It is idempotent; rows are
// matched by their natural identifier.
func Apply(ctx context.Context, db *gorm.DB, logg *logger.Logger) error {
	log := logg.With("component", "seed")

	if err := seedUsers(ctx, db); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := seedCatalog(ctx, db); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if err := seedCustomers(ctx, db); err != nil {
		return fmt.Errorf("seed customers: %w", err)
	}

	log.Info("Seed data applied")
	return nil
}

func seedUsers(ctx context.Context, db *gorm.DB) error {
	hashed, err := utils.HashPassword("admin123")
	if err != nil {
		return err
	}
	admin := &types.User{
		Username: "admin",
		Password: hashed,
		Role:     session.RoleAdmin,
		FullName: "Administrator",
		Email:    "admin@laptopshop.local",
	}
	return db.WithContext(ctx).
		Where(&types.User{Username: admin.Username}).
		FirstOrCreate(admin).Error
}

func seedCatalog(ctx context.Context, db *gorm.DB) error {
	categories := []*types.Category{
		{Name: "Gaming", Description: "High performance gaming laptops"},
		{Name: "Ultrabook", Description: "Thin and light"},
		{Name: "Workstation", Description: "Professional workloads"},
	}
	for _, c := range categories {
		if err := db.WithContext(ctx).
			Where(&types.Category{Name: c.Name}).
			FirstOrCreate(c).Error; err != nil {
			return err
		}
	}

	supplier := &types.Supplier{
		Name:          "TechSource Distribution",
		ContactPerson: "Linh Tran",
		Email:         "sales@techsource.local",
		Phone:         "0281234567",
		Address:       "12 Nguyen Hue, HCMC",
	}
	if err := db.WithContext(ctx).
		Where(&types.Supplier{Name: supplier.Name}).
		FirstOrCreate(supplier).Error; err != nil {
		return err
	}

	laptop := &types.Laptop{
		Brand:       "Lenovo",
		Model:       "ThinkPad X1 Carbon",
		Processor:   "Intel Core i7-1355U",
		RAM:         "16GB",
		Storage:     "512GB SSD",
		GPU:         "Intel Iris Xe",
		Price:       decimal.RequireFromString("1499.00"),
		Stock:       10,
		Description: "14-inch business ultrabook",
	}
	if err := db.WithContext(ctx).
		Where(&types.Laptop{Brand: laptop.Brand, Model: laptop.Model}).
		FirstOrCreate(laptop).Error; err != nil {
		return err
	}
	if err := db.WithContext(ctx).
		Model(laptop).
		Association("Categories").
		Append(categories[1]); err != nil {
		return err
	}

	link := &types.LaptopSupplier{
		LaptopID:    laptop.ID,
		SupplierID:  supplier.ID,
		SupplyPrice: decimal.RequireFromString("1250.00"),
	}
	return db.WithContext(ctx).
		Where(&types.LaptopSupplier{LaptopID: link.LaptopID, SupplierID: link.SupplierID}).
		FirstOrCreate(link).Error
}

func seedCustomers(ctx context.Context, db *gorm.DB) error {
	customer := &types.Customer{
		Name:    "Walk-in Customer",
		Email:   "walkin@laptopshop.local",
		Phone:   "0000000000",
		Address: "In store",
	}
	return db.WithContext(ctx).
		Where(&types.Customer{Name: customer.Name}).
		FirstOrCreate(customer).Error
}
