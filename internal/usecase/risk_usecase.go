package usecase

import (
	"context"

	"canopy/internal/domain/entity"

	"github.com/google/uuid"
)

// RiskDashboard is the customer's deforestation risk view: shared plots
// grouped per supplier plus headline numbers.
type RiskDashboard struct {
	Suppliers       []SupplierRiskGroup
	ComplianceScore int
	OverallRisk     entity.RiskGrade
	TotalPlots      int
	HighRiskPlots   int
	MediumRiskPlots int
	LowRiskPlots    int
}

// SupplierRiskGroup is one supplier's shared plots on the dashboard.
// Compliance and risk roll up within the group, so one clean supplier
// never dilutes another supplier's bad numbers.
type SupplierRiskGroup struct {
	SupplierID      uuid.UUID
	SupplierName    string
	TotalAreaHa     float64
	ComplianceScore int
	OverallRisk     entity.RiskGrade
	HighRisk        int
	MediumRisk      int
	LowRisk         int
	Plots           []entity.PlotRisk
}

// RiskAnalysisResult reports the outcome of a batch risk analysis run.
type RiskAnalysisResult struct {
	Assessed  int
	Failed    int
	Suppliers []entity.SupplierRisk
	Failures  []string
}

// SupplierRiskListing is the supplier risk directory with its summary.
type SupplierRiskListing struct {
	Suppliers []entity.SupplierRisk
	Summary   entity.RiskSummary
}

// RiskUsecase defines the interface for deforestation risk aggregation.
type RiskUsecase interface {
	// GetRiskDashboardData aggregates the caller's shared plots into the
	// customer risk dashboard.
	GetRiskDashboardData(ctx context.Context, userID uuid.UUID) (*RiskDashboard, error)

	// RunRiskAnalysis assesses every supplier that shared plots with the
	// caller. Per-supplier failures are collected, the batch continues.
	RunRiskAnalysis(ctx context.Context, userID uuid.UUID) (*RiskAnalysisResult, error)

	// GetSuppliersWithRisk returns the assessed supplier listing with a
	// summary including stale-analysis counts.
	GetSuppliersWithRisk(ctx context.Context, userID uuid.UUID) (*SupplierRiskListing, error)
}
