package service

import (
	"context"

	"canopy/internal/domain/entity"
)

// DeforestationService defines the interface to the external forest-change
// analysis provider. Implementations translate plot boundaries into the
// provider's geometry format and map results back to domain types.
type DeforestationService interface {
	// AnalyzeBoundary runs a closed polygon ring through the analysis
	// provider and returns the forest cover and loss figures for it.
	AnalyzeBoundary(ctx context.Context, boundary []entity.Coordinate) (*entity.DeforestationAnalysis, error)
}
