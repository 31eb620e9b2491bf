package models

import "time"

// User is an account holder and tenant. The company profile fields live
// directly on the user since every tenant is a single freelancer or small
// business with one issuing identity.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never exposed

	CompanyName  string `gorm:"size:255" json:"company_name"`
	TaxID        string `gorm:"size:64" json:"tax_id"`
	Address      string `gorm:"size:500" json:"address"`
	ContactEmail string `gorm:"size:255" json:"contact_email"`
	IBAN         string `gorm:"size:64" json:"iban"`
	// Logo is a base64 image blob uploaded from the settings page.
	Logo string `gorm:"type:text" json:"logo"`
}
