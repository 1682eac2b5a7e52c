package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"canopy/config"
	"canopy/internal/domain/entity"
	"canopy/internal/domain/repository"
	mockRepo "canopy/internal/mocks/repository"
	"canopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// riskServiceFixtures holds all test dependencies for risk service tests.
type riskServiceFixtures struct {
	service     usecase.RiskUsecase
	requestRepo *mockRepo.MockRequestRepository
	partyRepo   *mockRepo.MockPartyRepository
	profileRepo *mockRepo.MockProfileRepository
}

func createTestRiskService(t *testing.T) riskServiceFixtures {
	requestRepo := mockRepo.NewMockRequestRepository(t)
	partyRepo := mockRepo.NewMockPartyRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)

	service := NewRiskService(RiskServiceParams{
		Config:      &config.Config{Risk: &config.RiskConfig{StaleAnalysisAge: 30 * 24 * time.Hour}},
		RequestRepo: requestRepo,
		PartyRepo:   partyRepo,
		ProfileRepo: profileRepo,
		Logger:      testLogger(),
	})

	return riskServiceFixtures{
		service:     service,
		requestRepo: requestRepo,
		partyRepo:   partyRepo,
		profileRepo: profileRepo,
	}
}

func (f riskServiceFixtures) expectCustomerUser(ctx context.Context, userID uuid.UUID, customer *entity.Customer) {
	f.partyRepo.EXPECT().FindCustomerByUser(ctx, userID).Return(customer, nil)
	f.partyRepo.EXPECT().FindSupplierByUser(ctx, userID).Return(nil, repository.ErrSupplierNotFound)
}

func analyzedPlot(id string, supplierID uuid.UUID, lossPct float64, analyzedAt time.Time) *entity.LandPlot {
	return &entity.LandPlot{
		ID:         id,
		SupplierID: supplierID,
		PlotName:   id,
		AreaHa:     10,
		Boundary: []entity.Coordinate{
			{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}, {Lat: 1, Lng: 1}, {Lat: 0, Lng: 0},
		},
		GeoComplete: true,
		Analysis: &entity.DeforestationAnalysis{
			ForestAreaHa:     8,
			LossAreaHa:       8 * lossPct / 100,
			DeforestationPct: lossPct,
			AnalyzedAt:       analyzedAt,
		},
	}
}

func TestRiskService_GetRiskDashboardData_GroupsAndGrades(t *testing.T) {
	fx := createTestRiskService(t)

	ctx := context.Background()
	userID := uuid.New()
	customer := &entity.Customer{ID: uuid.New()}
	supplierA := &entity.Supplier{ID: uuid.New(), CompanyName: "Cacao Coop"}
	supplierB := &entity.Supplier{ID: uuid.New(), CompanyName: "Palm Estates"}
	now := time.Now()

	share := func(plot *entity.LandPlot) *repository.SharedPlot {
		return &repository.SharedPlot{
			Plot:  plot,
			Share: entity.PlotShare{RequestID: uuid.New(), SharedAt: now},
		}
	}

	fx.expectCustomerUser(ctx, userID, customer)
	fx.requestRepo.EXPECT().FindSharedPlots(ctx, customer.ID).Return([]*repository.SharedPlot{
		share(analyzedPlot("COOP-A", supplierA.ID, 0.5, now)),  // low
		share(analyzedPlot("COOP-B", supplierA.ID, 3.0, now)),  // medium
		share(analyzedPlot("PALM-A", supplierB.ID, 12.0, now)), // high
	}, nil)
	fx.partyRepo.EXPECT().FindSupplierByID(ctx, supplierA.ID).Return(supplierA, nil)
	fx.partyRepo.EXPECT().FindSupplierByID(ctx, supplierB.ID).Return(supplierB, nil)

	dashboard, err := fx.service.GetRiskDashboardData(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 3, dashboard.TotalPlots)
	assert.Equal(t, 1, dashboard.HighRiskPlots)
	assert.Equal(t, 1, dashboard.MediumRiskPlots)
	assert.Equal(t, 1, dashboard.LowRiskPlots)
	require.Len(t, dashboard.Suppliers, 2)
	assert.Equal(t, "Cacao Coop", dashboard.Suppliers[0].SupplierName)
	assert.InDelta(t, 20.0, dashboard.Suppliers[0].TotalAreaHa, 0.001)
	assert.Equal(t, 1, dashboard.Suppliers[1].HighRisk)
	// One of three plots is high risk (33%) which pushes the rollup to high.
	assert.Equal(t, entity.RiskGradeHigh, dashboard.OverallRisk)
}

func TestRiskService_GetRiskDashboardData_ScoresSuppliersIndependently(t *testing.T) {
	fx := createTestRiskService(t)

	ctx := context.Background()
	userID := uuid.New()
	customer := &entity.Customer{ID: uuid.New()}
	damaged := &entity.Supplier{ID: uuid.New(), CompanyName: "Frontier Farms"}
	clean := &entity.Supplier{ID: uuid.New(), CompanyName: "Shade Grown Co"}
	now := time.Now()

	shares := []*repository.SharedPlot{{
		Plot:  analyzedPlot("BURN-A", damaged.ID, 12.0, now),
		Share: entity.PlotShare{RequestID: uuid.New(), SharedAt: now},
	}}
	for i := 0; i < 9; i++ {
		shares = append(shares, &repository.SharedPlot{
			Plot:  analyzedPlot(fmt.Sprintf("SHADE-%d", i), clean.ID, 0, now),
			Share: entity.PlotShare{RequestID: uuid.New(), SharedAt: now},
		})
	}

	fx.expectCustomerUser(ctx, userID, customer)
	fx.requestRepo.EXPECT().FindSharedPlots(ctx, customer.ID).Return(shares, nil)
	fx.partyRepo.EXPECT().FindSupplierByID(ctx, damaged.ID).Return(damaged, nil)
	fx.partyRepo.EXPECT().FindSupplierByID(ctx, clean.ID).Return(clean, nil)

	dashboard, err := fx.service.GetRiskDashboardData(ctx, userID)

	require.NoError(t, err)
	require.Len(t, dashboard.Suppliers, 2)

	// The damaged supplier's numbers stand on their own; nine clean plots
	// from the other supplier must not water them down.
	assert.Equal(t, entity.RiskGradeHigh, dashboard.Suppliers[0].OverallRisk)
	assert.Equal(t, 100-24, dashboard.Suppliers[0].ComplianceScore)
	assert.Equal(t, entity.RiskGradeLow, dashboard.Suppliers[1].OverallRisk)
	assert.Equal(t, 100, dashboard.Suppliers[1].ComplianceScore)
}

func TestRiskService_GetRiskDashboardData_EmptyPortfolio(t *testing.T) {
	fx := createTestRiskService(t)

	ctx := context.Background()
	userID := uuid.New()
	customer := &entity.Customer{ID: uuid.New()}

	fx.expectCustomerUser(ctx, userID, customer)
	fx.requestRepo.EXPECT().FindSharedPlots(ctx, customer.ID).Return(nil, nil)

	dashboard, err := fx.service.GetRiskDashboardData(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 0, dashboard.TotalPlots)
	assert.Equal(t, 100, dashboard.ComplianceScore)
	assert.Equal(t, entity.RiskGradeLow, dashboard.OverallRisk)
	assert.Empty(t, dashboard.Suppliers)
}

func TestRiskService_RunRiskAnalysis_CollectsFailures(t *testing.T) {
	fx := createTestRiskService(t)

	ctx := context.Background()
	userID := uuid.New()
	customer := &entity.Customer{ID: uuid.New()}
	supplierA := &entity.Supplier{ID: uuid.New(), CompanyName: "Cacao Coop"}
	supplierB := &entity.Supplier{ID: uuid.New(), CompanyName: "Palm Estates"}
	now := time.Now()

	fx.expectCustomerUser(ctx, userID, customer)
	fx.requestRepo.EXPECT().FindSharedPlots(ctx, customer.ID).Return([]*repository.SharedPlot{
		{Plot: analyzedPlot("COOP-A", supplierA.ID, 0.2, now), Share: entity.PlotShare{RequestID: uuid.New(), SharedAt: now}},
		{Plot: analyzedPlot("PALM-A", supplierB.ID, 9.0, now), Share: entity.PlotShare{RequestID: uuid.New(), SharedAt: now}},
	}, nil)
	fx.partyRepo.EXPECT().FindSupplierByID(ctx, supplierA.ID).Return(supplierA, nil)
	fx.partyRepo.EXPECT().FindSupplierByID(ctx, supplierB.ID).Return(supplierB, nil)
	fx.profileRepo.EXPECT().
		FindByParty(ctx, entity.RoleSupplier, supplierA.ID).
		Return(&entity.OrganizationProfile{DocsComplete: true}, nil)
	fx.profileRepo.EXPECT().
		FindByParty(ctx, entity.RoleSupplier, supplierB.ID).
		Return(nil, errors.New("profile store offline"))

	result, err := fx.service.RunRiskAnalysis(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Assessed)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Suppliers, 1)
	assert.Equal(t, supplierA.ID, result.Suppliers[0].SupplierID)
	assert.Equal(t, entity.RiskGradeLow, result.Suppliers[0].OverallRisk)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], "Palm Estates")
}

func TestRiskService_GetSuppliersWithRisk_FlagsStaleAnalyses(t *testing.T) {
	fx := createTestRiskService(t)

	ctx := context.Background()
	userID := uuid.New()
	customer := &entity.Customer{ID: uuid.New()}
	supplier := &entity.Supplier{ID: uuid.New(), CompanyName: "Cacao Coop"}
	staleTime := time.Now().Add(-60 * 24 * time.Hour)

	fx.expectCustomerUser(ctx, userID, customer)
	fx.requestRepo.EXPECT().FindSharedPlots(ctx, customer.ID).Return([]*repository.SharedPlot{
		{Plot: analyzedPlot("COOP-A", supplier.ID, 0.2, staleTime), Share: entity.PlotShare{RequestID: uuid.New(), SharedAt: staleTime}},
	}, nil)
	fx.partyRepo.EXPECT().FindSupplierByID(ctx, supplier.ID).Return(supplier, nil)
	fx.profileRepo.EXPECT().
		FindByParty(ctx, entity.RoleSupplier, supplier.ID).
		Return(&entity.OrganizationProfile{DocsComplete: true}, nil)

	listing, err := fx.service.GetSuppliersWithRisk(ctx, userID)

	require.NoError(t, err)
	require.Len(t, listing.Suppliers, 1)
	assert.True(t, listing.Suppliers[0].PendingAnalysis)
	assert.Equal(t, 1, listing.Summary.TotalSuppliers)
	assert.Equal(t, 1, listing.Summary.PendingCount)
	assert.Equal(t, 1, listing.Summary.LowRisk)
}
