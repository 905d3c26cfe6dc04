package store

import (
	"context"
	"testing"

	"github.com/hqlam/laptopshop/internal/data/store/testutil"
	"github.com/hqlam/laptopshop/internal/types"
	"github.com/hqlam/laptopshop/internal/utils"
)

func TestUserStoreGetByUsername(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	testutil.SeedUser(t, ctx, db, "alice", "p@ss", "Manager")

	users := NewUserStore(db, testutil.Logger(t))

	got, err := users.GetByUsername(ctx, "alice")
	if err != nil || got == nil || got.Username != "alice" {
		t.Fatalf("GetByUsername: got=%v err=%v", got, err)
	}
	missing, err := users.GetByUsername(ctx, "nobody")
	if err != nil || missing != nil {
		t.Fatalf("GetByUsername miss: got=%v err=%v", missing, err)
	}
}

func TestUserStoreAuthenticate(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	testutil.SeedUser(t, ctx, db, "alice", "p@ss", "Manager")

	users := NewUserStore(db, testutil.Logger(t))

	got, err := users.Authenticate(ctx, "alice", "p@ss")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got == nil || got.Username != "alice" {
		t.Fatalf("Authenticate: got %+v", got)
	}

	// Wrong credential and unknown user are the same absent result.
	if got, err := users.Authenticate(ctx, "alice", "wrong"); err != nil || got != nil {
		t.Fatalf("wrong credential: got=%v err=%v", got, err)
	}
	if got, err := users.Authenticate(ctx, "mallory", "p@ss"); err != nil || got != nil {
		t.Fatalf("unknown user: got=%v err=%v", got, err)
	}
}

func TestUserStoreAuthenticateInactive(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	u := testutil.SeedUser(t, ctx, db, "alice", "p@ss", "Manager")
	if err := db.WithContext(ctx).Model(u).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	users := NewUserStore(db, testutil.Logger(t))
	if got, err := users.Authenticate(ctx, "alice", "p@ss"); err != nil || got != nil {
		t.Fatalf("inactive account authenticated: got=%v err=%v", got, err)
	}
}

func TestUserStoreAuthenticateHashedCredential(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	hashed, err := utils.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	testutil.SeedUser(t, ctx, db, "carol", hashed, "Sales")

	users := NewUserStore(db, testutil.Logger(t))
	if got, err := users.Authenticate(ctx, "carol", "s3cret"); err != nil || got == nil {
		t.Fatalf("hashed credential: got=%v err=%v", got, err)
	}
	if got, err := users.Authenticate(ctx, "carol", "wrong"); err != nil || got != nil {
		t.Fatalf("hashed credential wrong password: got=%v err=%v", got, err)
	}
}

func TestUserStoreUniqueUsername(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	testutil.SeedUser(t, ctx, db, "alice", "p@ss", "Manager")

	users := NewUserStore(db, testutil.Logger(t))
	users.Add(&types.User{Username: "alice", Password: "other", Role: "Sales"})
	if _, err := users.Commit(ctx); err == nil {
		t.Fatalf("duplicate username committed")
	}
}

func TestUserDefaultsActive(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	u := testutil.SeedUser(t, ctx, db, "dave", "pw", "Warehouse")

	users := NewUserStore(db, testutil.Logger(t))
	got, err := users.GetByID(ctx, u.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: got=%v err=%v", got, err)
	}
	if !got.IsActive {
		t.Fatalf("IsActive default: got false, want true")
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("CreatedAt default not applied")
	}
}
