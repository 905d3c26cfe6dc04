package testutil

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hqlam/laptopshop/internal/types"
)

func SeedCategory(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Category {
	tb.Helper()
	c := &types.Category{Name: name, Description: "desc"}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return c
}

func SeedSupplier(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Supplier {
	tb.Helper()
	s := &types.Supplier{
		Name:          name,
		ContactPerson: "contact",
		Email:         name + "@supplier.test",
		Phone:         "0123456789",
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed supplier: %v", err)
	}
	return s
}

func SeedLaptop(tb testing.TB, ctx context.Context, tx *gorm.DB, brand, model string) *types.Laptop {
	tb.Helper()
	l := &types.Laptop{
		Brand:     brand,
		Model:     model,
		Processor: "cpu",
		RAM:       "16GB",
		Storage:   "512GB",
		Price:     decimal.RequireFromString("999.99"),
		Stock:     5,
	}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed laptop: %v", err)
	}
	return l
}

func SeedCustomer(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Customer {
	tb.Helper()
	c := &types.Customer{
		Name:  name,
		Email: name + "@customer.test",
		Phone: "0987654321",
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed customer: %v", err)
	}
	return c
}

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, username, password, role string) *types.User {
	tb.Helper()
	u := &types.User{
		Username: username,
		Password: password,
		Role:     role,
		FullName: "Test User",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func PtrUint(v uint) *uint { return &v }
