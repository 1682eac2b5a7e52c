package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationProfileModel is the GORM-specific struct for the
// 'organization_profiles' table. One profile per customer or supplier.
type OrganizationProfileModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PartyRole          string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_profile_party"`
	PartyID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_profile_party"`
	CompanyName        string    `gorm:"type:varchar(255);not null"`
	RegistrationNumber string    `gorm:"type:varchar(100)"`
	Address            string    `gorm:"type:text"`
	Country            string    `gorm:"type:varchar(100)"`
	Website            string    `gorm:"type:varchar(255)"`
	Description        string    `gorm:"type:text"`
	DocsComplete       bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (OrganizationProfileModel) TableName() string {
	return "organization_profiles"
}

// CertificateModel is the GORM-specific struct for the 'certificates' table.
type CertificateModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProfileID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Issuer        string    `gorm:"type:varchar(255)"`
	ValidUntil    *time.Time
	AttachmentKey string `gorm:"type:varchar(512)"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CertificateModel) TableName() string {
	return "certificates"
}
