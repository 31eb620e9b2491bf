package store

import (
	"context"

	"github.com/edualcrd/invoicemaker/internal/models"
	"gorm.io/gorm"
)

type ExpenseStore struct {
	db *gorm.DB
}

func NewExpenseStore(db *gorm.DB) *ExpenseStore { return &ExpenseStore{db: db} }

func (s *ExpenseStore) List(ctx context.Context, owner uint) ([]models.Expense, error) {
	return listOwned[models.Expense](ctx, s.db, owner, "")
}

func (s *ExpenseStore) Create(ctx context.Context, owner uint, e *models.Expense) error {
	e.ID = 0
	e.UserID = owner
	if e.Category == "" {
		e.Category = models.DefaultExpenseCategory
	}
	return s.db.WithContext(ctx).Create(e).Error
}

func (s *ExpenseStore) Delete(ctx context.Context, owner, id uint) error {
	return deleteOwned[models.Expense](ctx, s.db, owner, id)
}
