package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item (service or good) owned by one user.
type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `gorm:"index;not null" json:"user_id"`

	Name      string          `gorm:"size:255;not null" json:"name"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
}

func (p *Product) GetUserID() uint { return p.UserID }
