package models

import "time"

// Client is a billing contact owned by exactly one user.
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// UserID is the owning tenant; every query must filter on it.
	UserID uint `gorm:"index;not null" json:"user_id"`

	Name    string `gorm:"size:255;not null" json:"name"`
	TaxID   string `gorm:"size:64;not null" json:"tax_id"`
	Email   string `gorm:"size:255;not null" json:"email"`
	Address string `gorm:"size:500;not null" json:"address"`
}

// GetUserID implements the ownership check used by the store layer.
func (c *Client) GetUserID() uint { return c.UserID }
