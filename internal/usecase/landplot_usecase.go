package usecase

import (
	"context"

	"canopy/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateLandPlotInput defines the data required to register a land plot.
type CreateLandPlotInput struct {
	PlotID     string              `json:"plot_id"`
	PlotName   string              `json:"plot_name"`
	FarmerName string              `json:"farmer_name"`
	Products   []string            `json:"products"`
	AreaHa     float64             `json:"area_ha"`
	Boundary   []entity.Coordinate `json:"boundary"`

	// CalculateDeforestation triggers the external analysis on creation.
	// It is a pointer so an omitted field defaults to running the
	// analysis; only an explicit false skips it.
	// Analysis failures never block the registration.
	CalculateDeforestation *bool `json:"calculate_deforestation"`
}

// UpdateLandPlotInput carries the changeable fields of a plot. Nil fields
// are left untouched.
type UpdateLandPlotInput struct {
	PlotID      string              `json:"-"`
	PlotName    *string             `json:"plot_name,omitempty"`
	FarmerName  *string             `json:"farmer_name,omitempty"`
	Products    []string            `json:"products,omitempty"`
	AreaHa      *float64            `json:"area_ha,omitempty"`
	Boundary    []entity.Coordinate `json:"boundary,omitempty"`
	Recalculate bool                `json:"recalculate"`
}

// BulkCreateResult reports the outcome of a bulk plot import.
type BulkCreateResult struct {
	Created      int
	Failed       int
	CreatedPlots []*entity.LandPlot
	FailedPlots  []BulkCreateFailure
}

// BulkCreateFailure names one rejected item of a bulk import.
type BulkCreateFailure struct {
	PlotName string
	Reason   string
}

// LandPlotUsecase defines the interface for the supplier land plot registry.
type LandPlotUsecase interface {
	// CreateLandPlot registers a plot under the caller's supplier
	// organization, deriving a unique readable plot identifier.
	CreateLandPlot(ctx context.Context, userID uuid.UUID, input CreateLandPlotInput) (*entity.LandPlot, error)

	// BulkCreateLandPlots registers several plots; each item succeeds or
	// fails on its own.
	BulkCreateLandPlots(ctx context.Context, userID uuid.UUID, inputs []CreateLandPlotInput) (*BulkCreateResult, error)

	// ListLandPlots returns the caller's registered plots, newest first.
	ListLandPlots(ctx context.Context, userID uuid.UUID) ([]*entity.LandPlot, error)

	// GetLandPlot returns one owned plot.
	GetLandPlot(ctx context.Context, userID uuid.UUID, plotID string) (*entity.LandPlot, error)

	// UpdateLandPlot merges field changes into an owned plot.
	UpdateLandPlot(ctx context.Context, userID uuid.UUID, input UpdateLandPlotInput) (*entity.LandPlot, error)

	// RecalculateAnalysis reruns the deforestation analysis for an owned
	// plot. Unlike creation, analysis failure is surfaced to the caller.
	RecalculateAnalysis(ctx context.Context, userID uuid.UUID, plotID string) (*entity.LandPlot, error)

	// DeleteLandPlot removes an owned plot.
	DeleteLandPlot(ctx context.Context, userID uuid.UUID, plotID string) error

	// PlotQRCode renders the traceability QR code PNG for an owned plot.
	PlotQRCode(ctx context.Context, userID uuid.UUID, plotID string) ([]byte, error)
}
