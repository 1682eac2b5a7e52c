// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RiskGrade is a coarse three-level risk classification.
type RiskGrade string

const (
	RiskGradeLow    RiskGrade = "low"
	RiskGradeMedium RiskGrade = "medium"
	RiskGradeHigh   RiskGrade = "high"
)

// String returns the string representation of the RiskGrade.
func (g RiskGrade) String() string {
	return string(g)
}

// PlotShare records one request through which a plot was shared with the
// viewing customer.
type PlotShare struct {
	RequestID uuid.UUID // The accepted request that shared the plot.
	SharedAt  time.Time // When the request was accepted.
}

// PlotRisk is a deduplicated view of one shared plot on the customer risk
// dashboard. When the same plot arrives through several requests, the
// newest share provides the display data and the rest become history.
type PlotRisk struct {
	PlotID           string      // The shared plot's identifier.
	PlotName         string      // Display name of the plot.
	SupplierID       uuid.UUID   // The supplier owning the plot.
	SupplierName     string      // Display name of the supplier.
	AreaHa           float64     // Declared plot area in hectares.
	DeforestationPct float64     // Loss percentage from the latest analysis.
	AnalyzedAt       *time.Time  // When the plot was last analyzed; nil if never.
	Grade            RiskGrade   // Grade derived from DeforestationPct.
	Boundary         []Coordinate // Plot boundary for map display.
	ForestTileURL    string      // Map tile URL template for forest cover.
	LossTileURL      string      // Map tile URL template for forest loss.
	TotalShares      int         // How many accepted requests shared this plot.
	SharedInRequests []PlotShare // Share history, newest first.
}

// SupplierRisk is one supplier's row on the risk dashboard.
type SupplierRisk struct {
	SupplierID       uuid.UUID // The assessed supplier.
	SupplierName     string    // Display name of the supplier.
	PlotCount        int       // Number of plots considered.
	DeforestationPct float64   // Worst loss percentage across the supplier's plots.
	ComplianceScore  int       // 0-100 compliance score.
	OverallRisk      RiskGrade // Combined risk classification.
	OpenIssues       int       // Count of open compliance issues.
	PendingAnalysis  bool      // True when analysis is missing or stale.
	AssessedAt       time.Time // When this assessment was computed.
}

// RiskSummary aggregates the dashboard rows into headline numbers.
type RiskSummary struct {
	TotalSuppliers int
	HighRisk       int
	MediumRisk     int
	LowRisk        int
	PendingCount   int
}

// Summarize builds a RiskSummary from per-supplier assessments.
func Summarize(suppliers []SupplierRisk) RiskSummary {
	summary := RiskSummary{TotalSuppliers: len(suppliers)}
	for _, s := range suppliers {
		switch s.OverallRisk {
		case RiskGradeHigh:
			summary.HighRisk++
		case RiskGradeMedium:
			summary.MediumRisk++
		default:
			summary.LowRisk++
		}
		if s.PendingAnalysis {
			summary.PendingCount++
		}
	}

	return summary
}

// RollupCompliance converts the average deforestation percentage across a
// customer's shared plots into a 0-100 compliance score.
func RollupCompliance(avgDeforestationPct float64) int {
	score := 100 - int(avgDeforestationPct*2)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return score
}

// RollupRisk classifies a customer's overall exposure from the share of
// high and medium graded plots, both in percent.
func RollupRisk(highPct, mediumPct float64) RiskGrade {
	switch {
	case highPct > 20:
		return RiskGradeHigh
	case highPct > 5 || mediumPct > 30:
		return RiskGradeMedium
	default:
		return RiskGradeLow
	}
}

// AssessSupplier computes one supplier's dashboard row from its worst plot
// loss percentage and profile completeness flags.
func AssessSupplier(worstLossPct float64, docsComplete, geoComplete bool) (score int, risk RiskGrade) {
	penalty := int(worstLossPct * 8)
	if penalty > 60 {
		penalty = 60
	}
	score = 100 - penalty
	if !docsComplete {
		score -= 20
	}
	if !geoComplete {
		score -= 20
	}
	if score < 0 {
		score = 0
	}

	switch {
	case worstLossPct >= 5 || score < 40:
		risk = RiskGradeHigh
	case score < 70:
		risk = RiskGradeMedium
	default:
		risk = RiskGradeLow
	}

	return score, risk
}

// CountIssues counts the open compliance issues used on the dashboard:
// measurable forest loss, missing documents, missing geodata.
func CountIssues(worstLossPct float64, docsComplete, geoComplete bool) int {
	issues := 0
	if worstLossPct >= 1 {
		issues++
	}
	if !docsComplete {
		issues++
	}
	if !geoComplete {
		issues++
	}

	return issues
}
