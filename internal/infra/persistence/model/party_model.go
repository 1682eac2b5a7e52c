package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyName string    `gorm:"type:varchar(255);not null"`
	Disabled    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// SupplierModel is the GORM-specific struct for the 'suppliers' table.
type SupplierModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyName string    `gorm:"type:varchar(255);not null"`
	Disabled    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SupplierModel) TableName() string {
	return "suppliers"
}

// CustomerUserModel links portal user accounts to customer organizations.
type CustomerUserModel struct {
	CustomerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerUserModel) TableName() string {
	return "customer_users"
}

// SupplierUserModel links portal user accounts to supplier organizations.
type SupplierUserModel struct {
	SupplierID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupplierUserModel) TableName() string {
	return "supplier_users"
}
