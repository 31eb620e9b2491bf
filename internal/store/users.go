package store

import (
	"context"
	"errors"

	"github.com/edualcrd/invoicemaker/internal/models"
	"gorm.io/gorm"
)

// UserStore persists accounts. Users are not tenant-scoped themselves; they
// are the tenants.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore { return &UserStore{db: db} }

func (s *UserStore) Create(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Create(u).Error
}

// FindByEmail does a case-sensitive exact match, like the registration check.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) Save(ctx context.Context, u *models.User) error {
	return s.db.WithContext(ctx).Save(u).Error
}
