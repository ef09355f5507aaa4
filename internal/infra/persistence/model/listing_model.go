package model

import (
	"time"

	"github.com/google/uuid"
)

// ListingModel mirrors the 'listings' table.
type ListingModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SellerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Type        string    `gorm:"type:varchar(16);not null;index"`
	Price       float64   `gorm:"type:decimal(12,2);not null"`
	Stock       int       `gorm:"not null;default:0"`
	IsActive    bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}
