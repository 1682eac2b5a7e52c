// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"canopy/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPlotNotFound is returned when a land plot is not found.
var ErrPlotNotFound = errors.New("land plot not found")

// LandPlotRepository defines persistence for supplier land plots and their
// deforestation analysis results.
type LandPlotRepository interface {
	// Create persists a new land plot.
	Create(ctx context.Context, plot *entity.LandPlot) error

	// CreateBatch persists several plots at once, used by bulk import.
	CreateBatch(ctx context.Context, plots []*entity.LandPlot) error

	// FindByID retrieves a plot by its identifier within the supplier's
	// namespace. Identifiers are only unique per supplier, so every
	// single-plot lookup carries the owning supplier.
	FindByID(ctx context.Context, supplierID uuid.UUID, plotID string) (*entity.LandPlot, error)

	// FindBySupplier retrieves all plots registered by a supplier,
	// newest first.
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.LandPlot, error)

	// ExistsID reports whether a plot identifier is already taken within
	// the supplier's namespace. Used when deriving readable plot IDs.
	ExistsID(ctx context.Context, supplierID uuid.UUID, id string) (bool, error)

	// Update persists plot field and boundary changes.
	Update(ctx context.Context, plot *entity.LandPlot) error

	// UpdateAnalysis stores a fresh analysis result for a plot.
	UpdateAnalysis(ctx context.Context, supplierID uuid.UUID, plotID string, analysis *entity.DeforestationAnalysis) error

	// Delete removes a plot by its identifier.
	Delete(ctx context.Context, supplierID uuid.UUID, plotID string) error
}
