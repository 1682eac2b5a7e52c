// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Coordinate is a geographic point in WGS84 degrees.
type Coordinate struct {
	Lat float64 // Latitude in decimal degrees.
	Lng float64 // Longitude in decimal degrees.
}

// pointBufferDegrees is the half-width of the square drawn around a plot
// registered with a single point instead of a boundary.
const pointBufferDegrees = 0.001

// NormalizeBoundary turns raw client coordinates into a closed polygon ring.
// A single point is expanded to a small square around it; an open ring is
// closed by repeating the first vertex. Returns nil if no coordinates given.
func NormalizeBoundary(coords []Coordinate) []Coordinate {
	switch len(coords) {
	case 0:
		return nil
	case 1:
		c := coords[0]

		return []Coordinate{
			{Lat: c.Lat - pointBufferDegrees, Lng: c.Lng - pointBufferDegrees},
			{Lat: c.Lat - pointBufferDegrees, Lng: c.Lng + pointBufferDegrees},
			{Lat: c.Lat + pointBufferDegrees, Lng: c.Lng + pointBufferDegrees},
			{Lat: c.Lat + pointBufferDegrees, Lng: c.Lng - pointBufferDegrees},
			{Lat: c.Lat - pointBufferDegrees, Lng: c.Lng - pointBufferDegrees},
		}
	default:
		ring := make([]Coordinate, len(coords))
		copy(ring, coords)
		if ring[0] != ring[len(ring)-1] {
			ring = append(ring, ring[0])
		}

		return ring
	}
}

var plotIDSanitizer = regexp.MustCompile(`[^a-zA-Z0-9-_]`)

// SanitizePlotID strips characters that are not safe in a plot identifier.
func SanitizePlotID(name string) string {
	return plotIDSanitizer.ReplaceAllString(strings.TrimSpace(name), "")
}

// FallbackPlotID builds a collision-proof plot identifier used when no
// readable identifier can be derived from the plot name.
func FallbackPlotID(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]

	return fmt.Sprintf("PLOT-%s-%s", now.Format("20060102150405"), suffix)
}

// DeforestationAnalysis is the result of running a plot's boundary through
// the external forest-change analysis service.
type DeforestationAnalysis struct {
	ForestAreaHa     float64   // Forest cover inside the plot, hectares.
	LossAreaHa       float64   // Forest loss inside the plot since the cutoff, hectares.
	DeforestationPct float64   // Loss as a percentage of forest cover.
	ForestTileURL    string    // Map tile URL template for forest cover display.
	LossTileURL      string    // Map tile URL template for forest loss display.
	AnalyzedAt       time.Time // When the analysis was performed.
}

// Grade buckets the analysis into a coarse risk grade by loss percentage.
func (a DeforestationAnalysis) Grade() RiskGrade {
	switch {
	case a.DeforestationPct > 5:
		return RiskGradeHigh
	case a.DeforestationPct > 1:
		return RiskGradeMedium
	default:
		return RiskGradeLow
	}
}

// LandPlot is a registered production area belonging to a supplier.
// The ID is a human-readable identifier derived from the plot name and
// unique within the supplier, e.g. "MY-FARM-02".
type LandPlot struct {
	ID          string                 // Readable identifier, unique per supplier.
	SupplierID  uuid.UUID              // The owning supplier organization.
	PlotName    string                 // Display name given by the supplier.
	FarmerName  string                 // Name of the farmer working the plot.
	Products    []string               // Commodities produced on the plot.
	AreaHa      float64                // Declared plot area in hectares.
	Boundary    []Coordinate           // Closed polygon ring of the plot boundary.
	Analysis    *DeforestationAnalysis // Latest analysis result; nil if never analyzed.
	GeoComplete bool                   // Whether the boundary is a real polygon, not a buffered point.
	CreatedAt   time.Time              // Timestamp of when this plot was registered.
	UpdatedAt   time.Time              // Timestamp of the last modification.
}
