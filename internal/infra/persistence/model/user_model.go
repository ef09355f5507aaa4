// Package model contains the GORM-specific structs mirroring the
// database tables. Mapping to and from domain entities happens in the
// postgres repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	Name            string    `gorm:"type:varchar(100);not null"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	Phone           string    `gorm:"type:varchar(32)"`
	Image           string    `gorm:"type:text"`
	EmailVerifiedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Profile *ProfileModel `gorm:"foreignKey:UserID"`
	Wallet  *WalletModel  `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the 'profiles' table. UserID references users.id (UUID).
// DocumentKeys is a JSON-encoded text column holding storage keys.
type ProfileModel struct {
	UserID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role               string    `gorm:"type:varchar(16);not null;default:'BUYER';index"`
	VerificationStatus string    `gorm:"type:varchar(16);not null;default:'pending';index"`
	VerificationNotes  string    `gorm:"type:text"`
	RejectionReason    string    `gorm:"type:text"`
	SubmittedAt        *time.Time
	ReviewedAt         *time.Time
	IsBanned           bool   `gorm:"not null;default:false;index"`
	BannedReason       string `gorm:"type:text"`
	BusinessName       string `gorm:"type:varchar(255)"`
	BusinessAddress    string `gorm:"type:text"`
	LegalName          string `gorm:"type:varchar(255)"`
	TaxID              string `gorm:"type:varchar(64)"`
	DocumentKeys       string `gorm:"type:text"`
	DeviceToken        string `gorm:"type:varchar(512)"`
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
