package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hqlam/laptopshop/internal/pkg/logger"
	"github.com/hqlam/laptopshop/internal/types"
	"github.com/hqlam/laptopshop/internal/utils"
)

// UserStore specializes the generic store with identity lookups.
type UserStore struct {
	*Store[types.User]
}

func NewUserStore(db *gorm.DB, baseLog *logger.Logger) *UserStore {
	return &UserStore{Store: New[types.User](db, baseLog)}
}

// GetByUsername looks a user up by its unique username. A miss is a nil
// result.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*types.User, error) {
	var out types.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &out, nil
}

// Authenticate returns the user only when the username matches, the credential
// verifies and the account is active. Every failure mode is the same nil
// result, so a caller cannot tell an unknown user from a wrong credential.
func (s *UserStore) Authenticate(ctx context.Context, username, credential string) (*types.User, error) {
	u, err := s.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.IsActive || !utils.CheckPassword(u.Password, credential) {
		return nil, nil
	}
	return u, nil
}
