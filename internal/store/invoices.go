package store

import (
	"context"
	"errors"

	"github.com/edualcrd/invoicemaker/internal/models"
	"gorm.io/gorm"
)

type InvoiceStore struct {
	db *gorm.DB
}

func NewInvoiceStore(db *gorm.DB) *InvoiceStore { return &InvoiceStore{db: db} }

// List returns the owner's invoices newest first.
func (s *InvoiceStore) List(ctx context.Context, owner uint) ([]models.Invoice, error) {
	return listOwned[models.Invoice](ctx, s.db, owner, "date DESC, id DESC")
}

func (s *InvoiceStore) Get(ctx context.Context, owner, id uint) (*models.Invoice, error) {
	return getOwned[models.Invoice](ctx, s.db, owner, id)
}

func (s *InvoiceStore) Create(ctx context.Context, owner uint, inv *models.Invoice) error {
	inv.ID = 0
	inv.UserID = owner
	return s.db.WithContext(ctx).Create(inv).Error
}

// Update replaces the invoice identified by (id, owner) with the submitted
// draft. The caller is expected to have recomputed the stored totals.
func (s *InvoiceStore) Update(ctx context.Context, owner, id uint, in *models.Invoice) (*models.Invoice, error) {
	existing, err := getOwned[models.Invoice](ctx, s.db, owner, id)
	if err != nil {
		return nil, err
	}
	existing.Number = in.Number
	existing.Date = in.Date
	existing.DueDate = in.DueDate
	existing.Client = in.Client
	existing.Items = in.Items
	existing.TaxRate = in.TaxRate
	existing.TaxableBase = in.TaxableBase
	existing.Total = in.Total
	existing.Paid = in.Paid
	if err := s.db.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

// TogglePaid flips the paid flag and persists it.
func (s *InvoiceStore) TogglePaid(ctx context.Context, owner, id uint) (*models.Invoice, error) {
	inv, err := getOwned[models.Invoice](ctx, s.db, owner, id)
	if err != nil {
		return nil, err
	}
	inv.Paid = !inv.Paid
	if err := s.db.WithContext(ctx).Model(inv).Update("paid", inv.Paid).Error; err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *InvoiceStore) Delete(ctx context.Context, owner, id uint) error {
	return deleteOwned[models.Invoice](ctx, s.db, owner, id)
}

// LastCreated returns the owner's most recently created invoice, by creation
// time with insertion order as tie-break. The numbering policy starts from it.
func (s *InvoiceStore) LastCreated(ctx context.Context, owner uint) (*models.Invoice, error) {
	var inv models.Invoice
	err := s.db.WithContext(ctx).
		Where("user_id = ?", owner).
		Order("created_at DESC, id DESC").
		First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
