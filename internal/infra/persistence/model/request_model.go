package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestModel is the GORM-specific struct for the 'requests' table.
// One row per customer-to-supplier ask in the request workflow.
type RequestModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID      uuid.UUID `gorm:"type:uuid;not null;index"`
	SupplierID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Type            string    `gorm:"type:varchar(50);not null"`
	Status          string    `gorm:"type:varchar(50);not null;index"`
	Subject         string    `gorm:"type:varchar(255)"`
	OrderNumber     string    `gorm:"type:varchar(100)"`
	Message         string    `gorm:"type:text"`
	ResponseMessage string    `gorm:"type:text"`

	// Fulfillment payload for purchase order requests, stored as one JSON
	// document since it is only ever read back whole.
	PurchaseOrderData *PurchaseOrderDataJSON `gorm:"serializer:json;type:jsonb"`

	ResolvedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (RequestModel) TableName() string {
	return "requests"
}

// PurchaseOrderBatchJSON is the serialized form of one declared batch.
type PurchaseOrderBatchJSON struct {
	BatchNumber    string  `json:"batch_number"`
	ProductName    string  `json:"product_name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	EUDRRelevant   bool    `json:"eudr_relevant"`
	ProductionDate string  `json:"production_date,omitempty"`
}

// PurchaseOrderDataJSON is the serialized supplier fulfillment payload.
type PurchaseOrderDataJSON struct {
	Batches             []PurchaseOrderBatchJSON `json:"batches"`
	PlotIDs             []string                 `json:"plot_ids"`
	Products            []string                 `json:"products"`
	ProductionDates     []string                 `json:"production_dates,omitempty"`
	ProductionDateScope string                   `json:"production_date_scope,omitempty"`
	SubmittedAt         time.Time                `json:"submitted_at"`
}

// RequestItemModel is the GORM-specific struct for the 'request_items'
// table, holding purchase order lines.
type RequestItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequestID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	Quantity    float64   `gorm:"not null"`
	Unit        string    `gorm:"type:varchar(50)"`
}

// TableName explicitly sets the table name for GORM.
func (RequestItemModel) TableName() string {
	return "request_items"
}

// SharedPlotModel records a land plot shared with a customer through an
// accepted request. The same plot may appear once per sharing request.
type SharedPlotModel struct {
	RequestID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlotID     string    `gorm:"type:varchar(140);primaryKey"`
	SupplierID uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	SharedAt   time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SharedPlotModel) TableName() string {
	return "request_shared_plots"
}
