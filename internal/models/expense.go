package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultExpenseCategory is applied when an expense is created without one.
const DefaultExpenseCategory = "General"

// Expense is a business cost record owned by one user.
type Expense struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `gorm:"index;not null" json:"user_id"`

	Date     time.Time       `gorm:"not null" json:"date"`
	Supplier string          `gorm:"size:255;not null" json:"supplier"`
	Concept  string          `gorm:"size:500;not null" json:"concept"`
	Amount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Category string          `gorm:"size:100;not null;default:'General'" json:"category"`
}

func (e *Expense) GetUserID() uint { return e.UserID }
