package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CoordinateJSON is the serialized form of one boundary vertex.
type CoordinateJSON struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LandPlotModel is the GORM-specific struct for the 'land_plots' table.
// The readable plot identifier is unique per supplier among live rows; the
// partial index lets a supplier re-register an identifier after deleting
// the plot that held it.
type LandPlotModel struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key"`
	PlotID      string           `gorm:"type:varchar(140);not null;uniqueIndex:uniq_land_plots_supplier_plot,where:deleted_at IS NULL"`
	SupplierID  uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:uniq_land_plots_supplier_plot,priority:1"`
	PlotName    string           `gorm:"type:varchar(255);not null"`
	FarmerName  string           `gorm:"type:varchar(255)"`
	Products    []string         `gorm:"serializer:json;type:jsonb"`
	AreaHa      float64          `gorm:"not null;default:0"`
	Boundary    []CoordinateJSON `gorm:"serializer:json;type:jsonb"`
	GeoComplete bool             `gorm:"not null;default:false"`

	// Latest analysis result, denormalized onto the plot row.
	ForestAreaHa     *float64
	LossAreaHa       *float64
	DeforestationPct *float64
	ForestTileURL    string `gorm:"type:text"`
	LossTileURL      string `gorm:"type:text"`
	AnalyzedAt       *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (LandPlotModel) TableName() string {
	return "land_plots"
}
