package store

import (
	"context"

	"github.com/edualcrd/invoicemaker/internal/models"
	"gorm.io/gorm"
)

type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore { return &ProductStore{db: db} }

func (s *ProductStore) List(ctx context.Context, owner uint) ([]models.Product, error) {
	return listOwned[models.Product](ctx, s.db, owner, "")
}

func (s *ProductStore) Create(ctx context.Context, owner uint, p *models.Product) error {
	p.ID = 0
	p.UserID = owner
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *ProductStore) Delete(ctx context.Context, owner, id uint) error {
	return deleteOwned[models.Product](ctx, s.db, owner, id)
}
