package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/hqlam/laptopshop/internal/data/store/testutil"
	"github.com/hqlam/laptopshop/internal/types"
)

func TestLaptopStoreEagerLoading(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	gaming := testutil.SeedCategory(t, ctx, db, "Gaming")
	ultra := testutil.SeedCategory(t, ctx, db, "Ultrabook")
	supplier := testutil.SeedSupplier(t, ctx, db, "TechSource")
	laptop := testutil.SeedLaptop(t, ctx, db, "ASUS", "ROG Strix")

	if err := db.WithContext(ctx).Model(laptop).Association("Categories").Append(gaming, ultra); err != nil {
		t.Fatalf("append categories: %v", err)
	}
	if err := db.WithContext(ctx).Create(&types.LaptopSupplier{
		LaptopID:    laptop.ID,
		SupplierID:  supplier.ID,
		SupplyPrice: decimal.RequireFromString("1500.00"),
	}).Error; err != nil {
		t.Fatalf("create supplier link: %v", err)
	}

	laptops := NewLaptopStore(db, testutil.Logger(t))

	got, err := laptops.GetByIDWithDetails(ctx, laptop.ID)
	if err != nil {
		t.Fatalf("GetByIDWithDetails: %v", err)
	}
	if got == nil {
		t.Fatalf("GetByIDWithDetails: nil")
	}
	if len(got.Categories) != 2 {
		t.Fatalf("Categories: got %d, want 2", len(got.Categories))
	}
	if len(got.SupplierLinks) != 1 {
		t.Fatalf("SupplierLinks: got %d, want 1", len(got.SupplierLinks))
	}
	link := got.SupplierLinks[0]
	if link.Supplier == nil || link.Supplier.Name != "TechSource" {
		t.Fatalf("Supplier not populated on link: %+v", link.Supplier)
	}
	if !link.SupplyPrice.Equal(decimal.RequireFromString("1500.00")) {
		t.Fatalf("SupplyPrice: got %s, want 1500.00", link.SupplyPrice)
	}

	// Plain lookups return the entity alone.
	plain, err := laptops.GetByID(ctx, laptop.ID)
	if err != nil || plain == nil {
		t.Fatalf("GetByID: got=%v err=%v", plain, err)
	}
	if len(plain.Categories) != 0 || len(plain.SupplierLinks) != 0 {
		t.Fatalf("plain GetByID resolved associations: %+v", plain)
	}
}

func TestLaptopStoreGetAllWithDetails(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	cat := testutil.SeedCategory(t, ctx, db, "Gaming")
	l1 := testutil.SeedLaptop(t, ctx, db, "Dell", "G15")
	testutil.SeedLaptop(t, ctx, db, "HP", "Omen")
	if err := db.WithContext(ctx).Model(l1).Association("Categories").Append(cat); err != nil {
		t.Fatalf("append category: %v", err)
	}

	laptops := NewLaptopStore(db, testutil.Logger(t))
	rows, err := laptops.GetAllWithDetails(ctx)
	if err != nil {
		t.Fatalf("GetAllWithDetails: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(rows))
	}
	byModel := map[string]types.Laptop{}
	for _, r := range rows {
		byModel[r.Model] = r
	}
	if len(byModel["G15"].Categories) != 1 {
		t.Fatalf("G15 categories: got %d, want 1", len(byModel["G15"].Categories))
	}
	if len(byModel["Omen"].Categories) != 0 {
		t.Fatalf("Omen categories: got %d, want 0", len(byModel["Omen"].Categories))
	}
}

func TestLaptopStoreMissIsNil(t *testing.T) {
	db := testutil.DB(t)
	laptops := NewLaptopStore(db, testutil.Logger(t))
	got, err := laptops.GetByIDWithDetails(context.Background(), 404)
	if err != nil || got != nil {
		t.Fatalf("GetByIDWithDetails miss: got=%v err=%v", got, err)
	}
}

func TestLaptopStoreInStock(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	testutil.SeedLaptop(t, ctx, db, "Dell", "XPS 13")
	sold := testutil.SeedLaptop(t, ctx, db, "HP", "Envy")
	sold.Stock = 0
	if err := db.WithContext(ctx).Save(sold).Error; err != nil {
		t.Fatalf("zero stock: %v", err)
	}

	laptops := NewLaptopStore(db, testutil.Logger(t))
	rows, err := laptops.InStock(ctx)
	if err != nil {
		t.Fatalf("InStock: %v", err)
	}
	if len(rows) != 1 || rows[0].Model != "XPS 13" {
		t.Fatalf("InStock rows: %+v", rows)
	}
}

func TestLaptopCategoryJoinRowsCascade(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	cat := testutil.SeedCategory(t, ctx, db, "Gaming")
	laptop := testutil.SeedLaptop(t, ctx, db, "MSI", "Katana")
	if err := db.WithContext(ctx).Model(laptop).Association("Categories").Append(cat); err != nil {
		t.Fatalf("append category: %v", err)
	}

	laptops := NewLaptopStore(db, testutil.Logger(t))
	if err := laptops.DeleteByID(ctx, laptop.ID); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if _, err := laptops.Commit(ctx); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	var joinRows int64
	if err := db.WithContext(ctx).Table("laptop_categories").Count(&joinRows).Error; err != nil {
		t.Fatalf("count join rows: %v", err)
	}
	if joinRows != 0 {
		t.Fatalf("join rows after laptop delete: got %d, want 0", joinRows)
	}
	// The category itself survives.
	var cats int64
	if err := db.WithContext(ctx).Model(&types.Category{}).Count(&cats).Error; err != nil {
		t.Fatalf("count categories: %v", err)
	}
	if cats != 1 {
		t.Fatalf("categories after laptop delete: got %d, want 1", cats)
	}
}
