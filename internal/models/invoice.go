package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientSnapshot is the billing contact as it was when the invoice was saved.
// It is an embedded value copy, never a reference: editing or deleting the
// source Client must not change past invoices.
type ClientSnapshot struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// LineItem is one billed row on an invoice.
type LineItem struct {
	Concept   string          `json:"concept"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Invoice is an issued or draft invoice owned by one user. Line items and the
// client snapshot are embedded JSON documents rather than joined rows, so an
// invoice reads and writes as a single record.
type Invoice struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID uint `gorm:"index;not null;uniqueIndex:idx_invoices_user_number" json:"user_id"`

	// Number follows the YYYY-NNN convention and is unique per tenant only;
	// two tenants may both hold "2024-001".
	Number string `gorm:"size:32;not null;uniqueIndex:idx_invoices_user_number" json:"number"`

	Date    time.Time  `gorm:"not null" json:"date"`
	DueDate *time.Time `json:"due_date,omitempty"`

	Client ClientSnapshot `gorm:"serializer:json;type:text" json:"client"`
	Items  []LineItem     `gorm:"serializer:json;type:text" json:"items"`

	TaxRate     decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"tax_rate"`
	TaxableBase decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"taxable_base"`
	Total       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`

	Paid bool `gorm:"not null;default:false" json:"paid"`
}

func (i *Invoice) GetUserID() uint { return i.UserID }
