package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"canopy/config"
	deliverycontext "canopy/internal/delivery/context"
	"canopy/internal/domain/entity"
	"canopy/internal/domain/repository"
	"canopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultStaleAnalysisAge flags analyses older than a week as pending
// when no threshold is configured.
const defaultStaleAnalysisAge = 7 * 24 * time.Hour

// riskService implements the RiskUsecase interface.
type riskService struct {
	requestRepo      repository.RequestRepository
	partyRepo        repository.PartyRepository
	profileRepo      repository.ProfileRepository
	staleAnalysisAge time.Duration
	logger           *slog.Logger
}

// RiskServiceParams holds dependencies for riskService, injected by Fx.
type RiskServiceParams struct {
	fx.In

	Config      *config.Config
	RequestRepo repository.RequestRepository
	PartyRepo   repository.PartyRepository
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewRiskService is the constructor for riskService.
func NewRiskService(params RiskServiceParams) usecase.RiskUsecase {
	staleAge := defaultStaleAnalysisAge
	if params.Config.Risk != nil && params.Config.Risk.StaleAnalysisAge > 0 {
		staleAge = params.Config.Risk.StaleAnalysisAge
	}

	return &riskService{
		requestRepo:      params.RequestRepo,
		partyRepo:        params.PartyRepo,
		profileRepo:      params.ProfileRepo,
		staleAnalysisAge: staleAge,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *riskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetRiskDashboardData aggregates the caller's shared plots into the
// customer risk dashboard, grouped per supplier.
func (srv *riskService) GetRiskDashboardData(ctx context.Context, userID uuid.UUID) (*usecase.RiskDashboard, error) {
	plots, err := srv.loadSharedPlotRisks(ctx, userID)
	if err != nil {
		return nil, err
	}

	dashboard := &usecase.RiskDashboard{
		Suppliers:   make([]usecase.SupplierRiskGroup, 0),
		OverallRisk: entity.RiskGradeLow,
	}

	groups := make(map[uuid.UUID]*usecase.SupplierRiskGroup)
	order := make([]uuid.UUID, 0)
	totalPct := 0.0

	for _, plot := range plots {
		group, seen := groups[plot.SupplierID]
		if !seen {
			group = &usecase.SupplierRiskGroup{
				SupplierID:   plot.SupplierID,
				SupplierName: plot.SupplierName,
			}
			groups[plot.SupplierID] = group
			order = append(order, plot.SupplierID)
		}

		group.Plots = append(group.Plots, plot)
		switch plot.Grade {
		case entity.RiskGradeHigh:
			group.HighRisk++
			dashboard.HighRiskPlots++
		case entity.RiskGradeMedium:
			group.MediumRisk++
			dashboard.MediumRiskPlots++
		default:
			group.LowRisk++
			dashboard.LowRiskPlots++
		}

		dashboard.TotalPlots++
		totalPct += plot.DeforestationPct
	}

	for _, supplierID := range order {
		group := groups[supplierID]
		for _, plot := range group.Plots {
			group.TotalAreaHa += plot.AreaHa
		}
		rollupGroup(group)
		dashboard.Suppliers = append(dashboard.Suppliers, *group)
	}

	if dashboard.TotalPlots > 0 {
		total := float64(dashboard.TotalPlots)
		dashboard.ComplianceScore = entity.RollupCompliance(totalPct / total)
		dashboard.OverallRisk = entity.RollupRisk(
			float64(dashboard.HighRiskPlots)/total*100,
			float64(dashboard.MediumRiskPlots)/total*100,
		)
	} else {
		dashboard.ComplianceScore = entity.RollupCompliance(0)
	}

	return dashboard, nil
}

// rollupGroup scores one supplier group from its own plots. The average
// deforestation is area-weighted so a large damaged plot outweighs small
// clean ones; plots without area fall back to a plain average.
func rollupGroup(group *usecase.SupplierRiskGroup) {
	if len(group.Plots) == 0 {
		group.ComplianceScore = entity.RollupCompliance(0)
		group.OverallRisk = entity.RiskGradeLow

		return
	}

	weightedPct := 0.0
	plainPct := 0.0
	for _, plot := range group.Plots {
		weightedPct += plot.DeforestationPct * plot.AreaHa
		plainPct += plot.DeforestationPct
	}

	avgPct := plainPct / float64(len(group.Plots))
	if group.TotalAreaHa > 0 {
		avgPct = weightedPct / group.TotalAreaHa
	}

	total := float64(len(group.Plots))
	group.ComplianceScore = entity.RollupCompliance(avgPct)
	group.OverallRisk = entity.RollupRisk(
		float64(group.HighRisk)/total*100,
		float64(group.MediumRisk)/total*100,
	)
}

// RunRiskAnalysis assesses every supplier that shared plots with the
// caller. Per-supplier failures are collected and the batch continues.
func (srv *riskService) RunRiskAnalysis(ctx context.Context, userID uuid.UUID) (*usecase.RiskAnalysisResult, error) {
	suppliers, failures, err := srv.assessSuppliers(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &usecase.RiskAnalysisResult{
		Assessed:  len(suppliers),
		Failed:    len(failures),
		Suppliers: suppliers,
		Failures:  failures,
	}

	srv.log(ctx).Info("Risk analysis completed",
		slog.Int("assessed", result.Assessed),
		slog.Int("failed", result.Failed))

	return result, nil
}

// GetSuppliersWithRisk returns the assessed supplier listing with its
// summary, including stale-analysis counts.
func (srv *riskService) GetSuppliersWithRisk(ctx context.Context, userID uuid.UUID) (*usecase.SupplierRiskListing, error) {
	suppliers, _, err := srv.assessSuppliers(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.SupplierRiskListing{
		Suppliers: suppliers,
		Summary:   entity.Summarize(suppliers),
	}, nil
}

// assessSuppliers groups the caller's shared plots per supplier and scores
// each one. A profile lookup failure skips that supplier, it does not
// abort the batch.
func (srv *riskService) assessSuppliers(ctx context.Context, userID uuid.UUID) ([]entity.SupplierRisk, []string, error) {
	plots, err := srv.loadSharedPlotRisks(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	type supplierPlots struct {
		name  string
		plots []entity.PlotRisk
	}

	grouped := make(map[uuid.UUID]*supplierPlots)
	order := make([]uuid.UUID, 0)
	for _, plot := range plots {
		group, seen := grouped[plot.SupplierID]
		if !seen {
			group = &supplierPlots{name: plot.SupplierName}
			grouped[plot.SupplierID] = group
			order = append(order, plot.SupplierID)
		}
		group.plots = append(group.plots, plot)
	}

	now := time.Now()
	suppliers := make([]entity.SupplierRisk, 0, len(order))
	failures := make([]string, 0)

	for _, supplierID := range order {
		group := grouped[supplierID]

		docsComplete, err := srv.supplierDocsComplete(ctx, supplierID)
		if err != nil {
			srv.log(ctx).Warn("Supplier assessment skipped",
				slog.Any("supplierID", supplierID), slog.Any("error", err))
			failures = append(failures, fmt.Sprintf("%s: %v", group.name, err))

			continue
		}

		assessment := assessSupplierPlots(supplierID, group.name, group.plots, docsComplete, srv.staleAnalysisAge, now)
		suppliers = append(suppliers, assessment)
	}

	sort.SliceStable(suppliers, func(i, j int) bool {
		return suppliers[i].DeforestationPct > suppliers[j].DeforestationPct
	})

	return suppliers, failures, nil
}

// loadSharedPlotRisks builds the deduplicated plot risk rows for the
// caller, with supplier display names resolved.
func (srv *riskService) loadSharedPlotRisks(ctx context.Context, userID uuid.UUID) ([]entity.PlotRisk, error) {
	customer, err := requireCustomer(ctx, srv.partyRepo, userID)
	if err != nil {
		return nil, err
	}

	shares, err := srv.requestRepo.FindSharedPlots(ctx, customer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shared plots")
	}

	views := dedupeSharedPlots(shares)
	supplierNames := make(map[uuid.UUID]string)
	plots := make([]entity.PlotRisk, 0, len(views))

	for _, view := range views {
		plot := view.Plot

		name, seen := supplierNames[plot.SupplierID]
		if !seen {
			if supplier, err := srv.partyRepo.FindSupplierByID(ctx, plot.SupplierID); err == nil {
				name = supplier.CompanyName
			}
			supplierNames[plot.SupplierID] = name
		}

		risk := entity.PlotRisk{
			PlotID:           plot.ID,
			PlotName:         plot.PlotName,
			SupplierID:       plot.SupplierID,
			SupplierName:     name,
			AreaHa:           plot.AreaHa,
			Grade:            entity.RiskGradeLow,
			Boundary:         plot.Boundary,
			TotalShares:      view.TotalShares,
			SharedInRequests: view.SharedInRequests,
		}
		if plot.Analysis != nil {
			analyzedAt := plot.Analysis.AnalyzedAt
			risk.DeforestationPct = plot.Analysis.DeforestationPct
			risk.AnalyzedAt = &analyzedAt
			risk.Grade = plot.Analysis.Grade()
			risk.ForestTileURL = plot.Analysis.ForestTileURL
			risk.LossTileURL = plot.Analysis.LossTileURL
		}

		plots = append(plots, risk)
	}

	return plots, nil
}

// supplierDocsComplete reads the docs flag off the supplier's profile. A
// missing profile counts as incomplete documentation.
func (srv *riskService) supplierDocsComplete(ctx context.Context, supplierID uuid.UUID) (bool, error) {
	profile, err := srv.profileRepo.FindByParty(ctx, entity.RoleSupplier, supplierID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return false, nil
		}

		return false, err
	}

	return profile.DocsComplete, nil
}

// assessSupplierPlots scores one supplier from its shared plots.
func assessSupplierPlots(supplierID uuid.UUID, name string, plots []entity.PlotRisk, docsComplete bool, staleAge time.Duration, now time.Time) entity.SupplierRisk {
	worstLossPct := 0.0
	geoComplete := true
	pendingAnalysis := false

	for _, plot := range plots {
		if plot.DeforestationPct > worstLossPct {
			worstLossPct = plot.DeforestationPct
		}
		if len(plot.Boundary) <= 1 {
			geoComplete = false
		}
		if plot.AnalyzedAt == nil || now.Sub(*plot.AnalyzedAt) > staleAge {
			pendingAnalysis = true
		}
	}

	score, risk := entity.AssessSupplier(worstLossPct, docsComplete, geoComplete)

	return entity.SupplierRisk{
		SupplierID:       supplierID,
		SupplierName:     name,
		PlotCount:        len(plots),
		DeforestationPct: worstLossPct,
		ComplianceScore:  score,
		OverallRisk:      risk,
		OpenIssues:       entity.CountIssues(worstLossPct, docsComplete, geoComplete),
		PendingAnalysis:  pendingAnalysis,
		AssessedAt:       now,
	}
}
