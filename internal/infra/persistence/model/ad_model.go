package model

import (
	"time"

	"github.com/google/uuid"
)

// AdModel mirrors the 'ads' table.
type AdModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title     string    `gorm:"type:varchar(255);not null"`
	ImageURL  string    `gorm:"type:text;not null"`
	LinkURL   string    `gorm:"type:text"`
	Placement string    `gorm:"type:varchar(24);not null;index"`
	IsActive  bool      `gorm:"not null;default:true;index"`
	StartsAt  *time.Time
	EndsAt    *time.Time
	// TargetMarketplaces is a JSON-encoded text column.
	TargetMarketplaces string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdModel) TableName() string {
	return "ads"
}
