package impl

import (
	"context"
	"testing"
	"time"

	"canopy/internal/domain/entity"
	domainerrors "canopy/internal/domain/errors"
	"canopy/internal/domain/repository"
	mockRepo "canopy/internal/mocks/repository"
	mockService "canopy/internal/mocks/service"
	"canopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// landPlotServiceFixtures holds all test dependencies for land plot service tests.
type landPlotServiceFixtures struct {
	service       usecase.LandPlotUsecase
	landPlotRepo  *mockRepo.MockLandPlotRepository
	partyRepo     *mockRepo.MockPartyRepository
	deforestation *mockService.MockDeforestationService
	qrCodeService *mockService.MockQRCodeService
}

func createTestLandPlotService(t *testing.T) landPlotServiceFixtures {
	landPlotRepo := mockRepo.NewMockLandPlotRepository(t)
	partyRepo := mockRepo.NewMockPartyRepository(t)
	deforestation := mockService.NewMockDeforestationService(t)
	qrCodeService := mockService.NewMockQRCodeService(t)

	service := NewLandPlotService(LandPlotServiceParams{
		LandPlotRepo:  landPlotRepo,
		PartyRepo:     partyRepo,
		Deforestation: deforestation,
		QRCodeService: qrCodeService,
		Logger:        testLogger(),
	})

	return landPlotServiceFixtures{
		service:       service,
		landPlotRepo:  landPlotRepo,
		partyRepo:     partyRepo,
		deforestation: deforestation,
		qrCodeService: qrCodeService,
	}
}

func (f landPlotServiceFixtures) expectSupplierUser(ctx context.Context, userID uuid.UUID, supplier *entity.Supplier) {
	f.partyRepo.EXPECT().FindCustomerByUser(ctx, userID).Return(nil, repository.ErrCustomerNotFound)
	f.partyRepo.EXPECT().FindSupplierByUser(ctx, userID).Return(supplier, nil)
}

func TestLandPlotService_CreateLandPlot_DerivesReadableID(t *testing.T) {
	fx := createTestLandPlotService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.landPlotRepo.EXPECT().ExistsID(ctx, supplier.ID, "FINCA-01").Return(false, nil)
	fx.landPlotRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.LandPlot")).Return(nil)

	plot, err := fx.service.CreateLandPlot(ctx, userID, usecase.CreateLandPlotInput{
		PlotID:   "FINCA-01 ",
		PlotName: "Finca Esperanza",
		AreaHa:   3.4,
	})

	require.NoError(t, err)
	assert.Equal(t, "FINCA-01", plot.ID)
	assert.Equal(t, supplier.ID, plot.SupplierID)
	assert.False(t, plot.GeoComplete)
	assert.Nil(t, plot.Analysis)
}

func TestLandPlotService_CreateLandPlot_NoBaseIDGetsFallbackID(t *testing.T) {
	fx := createTestLandPlotService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.landPlotRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.LandPlot")).Return(nil)

	plot, err := fx.service.CreateLandPlot(ctx, userID, usecase.CreateLandPlotInput{
		PlotName: "Finca Esperanza",
	})

	require.NoError(t, err)
	assert.Regexp(t, `^PLOT-\d{14}-[0-9A-F]{8}$`, plot.ID)
}

func TestLandPlotService_CreateLandPlot_ProbesCollidingIDs(t *testing.T) {
	fx := createTestLandPlotService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.landPlotRepo.EXPECT().ExistsID(ctx, supplier.ID, "FARM").Return(true, nil)
	fx.landPlotRepo.EXPECT().ExistsID(ctx, supplier.ID, "FARM-01").Return(true, nil)
	fx.landPlotRepo.EXPECT().ExistsID(ctx, supplier.ID, "FARM-02").Return(false, nil)
	fx.landPlotRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.LandPlot")).Return(nil)

	plot, err := fx.service.CreateLandPlot(ctx, userID, usecase.CreateLandPlotInput{
		PlotID:   "FARM",
		PlotName: "Farm",
	})

	require.NoError(t, err)
	assert.Equal(t, "FARM-02", plot.ID)
}

func TestLandPlotService_CreateLandPlot_SinglePointGetsBufferedBoundary(t *testing.T) {
	fx := createTestLandPlotService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.landPlotRepo.EXPECT().ExistsID(ctx, supplier.ID, "POINT-FARM").Return(false, nil)
	fx.landPlotRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.LandPlot")).Return(nil)

	plot, err := fx.service.CreateLandPlot(ctx, userID, usecase.CreateLandPlotInput{
		PlotID:                 "POINT-FARM",
		PlotName:               "Point Farm",
		Boundary:               []entity.Coordinate{{Lat: -2.5, Lng: 28.9}},
		CalculateDeforestation: boolPtr(false),
	})

	require.NoError(t, err)
	assert.Len(t, plot.Boundary, 5)
	assert.Equal(t, plot.Boundary[0], plot.Boundary[len(plot.Boundary)-1])
	assert.False(t, plot.GeoComplete)
}

func TestLandPlotService_CreateLandPlot_AnalysisFailureDoesNotBlockRegistration(t *testing.T) {
	fx := createTestLandPlotService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	boundary := []entity.Coordinate{
		{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}, {Lat: 1, Lng: 1}, {Lat: 0, Lng: 0},
	}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.landPlotRepo.EXPECT().ExistsID(ctx, supplier.ID, "HILL-FARM").Return(false, nil)
	fx.deforestation.EXPECT().
		AnalyzeBoundary(ctx, mock.AnythingOfType("[]entity.Coordinate")).
		Return(nil, errors.New("provider timeout"))
	fx.landPlotRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.LandPlot")).Return(nil)

	plot, err := fx.service.CreateLandPlot(ctx, userID, usecase.CreateLandPlotInput{
		PlotID:                 "HILL-FARM",
		PlotName:               "Hill Farm",
		Boundary:               boundary,
		CalculateDeforestation: boolPtr(true),
	})

	require.NoError(t, err)
	assert.Nil(t, plot.Analysis)
	assert.True(t, plot.GeoComplete)
}

func TestLandPlotService_CreateLandPlot_AnalysisRunsByDefault(t *testing.T) {
	fx := createTestLandPlotService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	boundary := []entity.Coordinate{
		{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}, {Lat: 1, Lng: 1}, {Lat: 0, Lng: 0},
	}
	analysis := &entity.DeforestationAnalysis{DeforestationPct: 2.5, AnalyzedAt: time.Now()}

	// A request that never mentions the analysis flag still gets analyzed.
	fx.expectSupplierUser(ctx, userID, supplier)
	fx.landPlotRepo.EXPECT().ExistsID(ctx, supplier.ID, "RIVER-FARM").Return(false, nil)
	fx.deforestation.EXPECT().
		AnalyzeBoundary(ctx, mock.AnythingOfType("[]entity.Coordinate")).
		Return(analysis, nil)
	fx.landPlotRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.LandPlot")).Return(nil)

	plot, err := fx.service.CreateLandPlot(ctx, userID, usecase.CreateLandPlotInput{
		PlotID:   "RIVER-FARM",
		PlotName: "River Farm",
		Boundary: boundary,
	})

	require.NoError(t, err)
	require.NotNil(t, plot.Analysis)
	assert.InDelta(t, 2.5, plot.Analysis.DeforestationPct, 0.001)
}

func TestLandPlotService_BulkCreateLandPlots_IsolatesFailures(t *testing.T) {
	fx := createTestLandPlotService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.landPlotRepo.EXPECT().ExistsID(ctx, supplier.ID, "GOOD-FARM").Return(false, nil)
	fx.landPlotRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.LandPlot")).Return(nil)

	result, err := fx.service.BulkCreateLandPlots(ctx, userID, []usecase.CreateLandPlotInput{
		{PlotID: "GOOD-FARM", PlotName: "Good Farm"},
		{PlotName: ""}, // invalid: fails on its own, the batch continues
	})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.CreatedPlots, 1)
	assert.Equal(t, "GOOD-FARM", result.CreatedPlots[0].ID)
	require.Len(t, result.FailedPlots, 1)
	assert.Contains(t, result.FailedPlots[0].Reason, "validation failed")
}

func TestLandPlotService_RecalculateAnalysis_SurfacesFailure(t *testing.T) {
	fx := createTestLandPlotService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	plot := &entity.LandPlot{
		ID:         "FARM-A",
		SupplierID: supplier.ID,
		Boundary: []entity.Coordinate{
			{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}, {Lat: 1, Lng: 1}, {Lat: 0, Lng: 0},
		},
	}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.landPlotRepo.EXPECT().FindByID(ctx, supplier.ID, plot.ID).Return(plot, nil)
	fx.deforestation.EXPECT().
		AnalyzeBoundary(ctx, plot.Boundary).
		Return(nil, domainerrors.ErrAnalysisUnavailable)

	_, err := fx.service.RecalculateAnalysis(ctx, userID, plot.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAnalysisUnavailable)
}

func TestLandPlotService_RecalculateAnalysis_NoBoundary(t *testing.T) {
	fx := createTestLandPlotService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	plot := &entity.LandPlot{ID: "FARM-A", SupplierID: supplier.ID}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.landPlotRepo.EXPECT().FindByID(ctx, supplier.ID, plot.ID).Return(plot, nil)

	_, err := fx.service.RecalculateAnalysis(ctx, userID, plot.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidGeometry)
}

func TestLandPlotService_GetLandPlot_ForeignPlotNotVisible(t *testing.T) {
	fx := createTestLandPlotService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}

	// Another supplier's plot under the same identifier is outside the
	// caller's namespace, so the scoped lookup misses.
	fx.expectSupplierUser(ctx, userID, supplier)
	fx.landPlotRepo.EXPECT().FindByID(ctx, supplier.ID, "FARM-X").
		Return(nil, repository.ErrPlotNotFound)

	_, err := fx.service.GetLandPlot(ctx, userID, "FARM-X")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPlotNotFound)
}

func TestLandPlotService_CreateLandPlot_SameIDUnderAnotherSupplier(t *testing.T) {
	fx := createTestLandPlotService(t)

	ctx := context.Background()
	firstUser := uuid.New()
	secondUser := uuid.New()
	firstSupplier := &entity.Supplier{ID: uuid.New()}
	secondSupplier := &entity.Supplier{ID: uuid.New()}

	// Identifier uniqueness is per supplier: a second supplier registering
	// "FINCA-01" keeps the plain identifier instead of colliding with the
	// first supplier's plot.
	fx.expectSupplierUser(ctx, firstUser, firstSupplier)
	fx.landPlotRepo.EXPECT().ExistsID(ctx, firstSupplier.ID, "FINCA-01").Return(false, nil)
	fx.expectSupplierUser(ctx, secondUser, secondSupplier)
	fx.landPlotRepo.EXPECT().ExistsID(ctx, secondSupplier.ID, "FINCA-01").Return(false, nil)
	fx.landPlotRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.LandPlot")).Return(nil).Twice()

	first, err := fx.service.CreateLandPlot(ctx, firstUser, usecase.CreateLandPlotInput{
		PlotID:   "FINCA-01",
		PlotName: "Finca Uno",
	})
	require.NoError(t, err)

	second, err := fx.service.CreateLandPlot(ctx, secondUser, usecase.CreateLandPlotInput{
		PlotID:   "FINCA-01",
		PlotName: "Finca Dos",
	})
	require.NoError(t, err)

	assert.Equal(t, "FINCA-01", first.ID)
	assert.Equal(t, "FINCA-01", second.ID)
	assert.NotEqual(t, first.SupplierID, second.SupplierID)
}

func TestLandPlotService_DeleteLandPlot_FreesIdentifier(t *testing.T) {
	fx := createTestLandPlotService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	plot := &entity.LandPlot{ID: "FARM-A", SupplierID: supplier.ID}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.landPlotRepo.EXPECT().FindByID(ctx, supplier.ID, plot.ID).Return(plot, nil)
	fx.landPlotRepo.EXPECT().Delete(ctx, supplier.ID, plot.ID).Return(nil)

	require.NoError(t, fx.service.DeleteLandPlot(ctx, userID, plot.ID))

	// Re-registering the identifier after deletion succeeds because the
	// deleted row no longer occupies it.
	fx.expectSupplierUser(ctx, userID, supplier)
	fx.landPlotRepo.EXPECT().ExistsID(ctx, supplier.ID, "FARM-A").Return(false, nil)
	fx.landPlotRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.LandPlot")).Return(nil)

	recreated, err := fx.service.CreateLandPlot(ctx, userID, usecase.CreateLandPlotInput{
		PlotID:   "FARM-A",
		PlotName: "Farm A",
	})
	require.NoError(t, err)
	assert.Equal(t, "FARM-A", recreated.ID)
}

func TestLandPlotService_PlotQRCode(t *testing.T) {
	fx := createTestLandPlotService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	plot := &entity.LandPlot{ID: "FARM-A", SupplierID: supplier.ID}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.landPlotRepo.EXPECT().FindByID(ctx, supplier.ID, plot.ID).Return(plot, nil)
	fx.qrCodeService.EXPECT().GeneratePlotQR(plot.ID).Return([]byte{0x89, 0x50}, nil)

	png, err := fx.service.PlotQRCode(ctx, userID, plot.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
