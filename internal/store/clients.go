package store

import (
	"context"

	"github.com/edualcrd/invoicemaker/internal/models"
	"gorm.io/gorm"
)

type ClientStore struct {
	db *gorm.DB
}

func NewClientStore(db *gorm.DB) *ClientStore { return &ClientStore{db: db} }

func (s *ClientStore) List(ctx context.Context, owner uint) ([]models.Client, error) {
	return listOwned[models.Client](ctx, s.db, owner, "")
}

func (s *ClientStore) Create(ctx context.Context, owner uint, c *models.Client) error {
	c.ID = 0
	c.UserID = owner
	return s.db.WithContext(ctx).Create(c).Error
}

// Update replaces the editable fields of the client identified by (id, owner).
func (s *ClientStore) Update(ctx context.Context, owner, id uint, in *models.Client) (*models.Client, error) {
	existing, err := getOwned[models.Client](ctx, s.db, owner, id)
	if err != nil {
		return nil, err
	}
	existing.Name = in.Name
	existing.TaxID = in.TaxID
	existing.Email = in.Email
	existing.Address = in.Address
	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *ClientStore) Delete(ctx context.Context, owner, id uint) error {
	return deleteOwned[models.Client](ctx, s.db, owner, id)
}
