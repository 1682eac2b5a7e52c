package impl

import (
	"context"
	"testing"
	"time"

	"canopy/internal/domain/entity"
	domainerrors "canopy/internal/domain/errors"
	"canopy/internal/domain/repository"
	mockRepo "canopy/internal/mocks/repository"
	"canopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// requestServiceFixtures holds all test dependencies for request service tests.
type requestServiceFixtures struct {
	service      usecase.RequestUsecase
	txManager    *mockRepo.MockTransactionManager
	requestRepo  *mockRepo.MockRequestRepository
	partyRepo    *mockRepo.MockPartyRepository
	landPlotRepo *mockRepo.MockLandPlotRepository
	productRepo  *mockRepo.MockProductRepository
}

func createTestRequestService(t *testing.T) requestServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	requestRepo := mockRepo.NewMockRequestRepository(t)
	partyRepo := mockRepo.NewMockPartyRepository(t)
	landPlotRepo := mockRepo.NewMockLandPlotRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewRequestService(RequestServiceParams{
		TxManager:    txManager,
		RequestRepo:  requestRepo,
		PartyRepo:    partyRepo,
		LandPlotRepo: landPlotRepo,
		ProductRepo:  productRepo,
		Logger:       testLogger(),
	})

	return requestServiceFixtures{
		service:      service,
		txManager:    txManager,
		requestRepo:  requestRepo,
		partyRepo:    partyRepo,
		landPlotRepo: landPlotRepo,
		productRepo:  productRepo,
	}
}

// expectCustomerUser wires the party lookups for a user linked only to a
// customer organization.
func (f requestServiceFixtures) expectCustomerUser(ctx context.Context, userID uuid.UUID, customer *entity.Customer) {
	f.partyRepo.EXPECT().FindCustomerByUser(ctx, userID).Return(customer, nil)
	f.partyRepo.EXPECT().FindSupplierByUser(ctx, userID).Return(nil, repository.ErrSupplierNotFound)
}

// expectSupplierUser wires the party lookups for a user linked only to a
// supplier organization.
func (f requestServiceFixtures) expectSupplierUser(ctx context.Context, userID uuid.UUID, supplier *entity.Supplier) {
	f.partyRepo.EXPECT().FindCustomerByUser(ctx, userID).Return(nil, repository.ErrCustomerNotFound)
	f.partyRepo.EXPECT().FindSupplierByUser(ctx, userID).Return(supplier, nil)
}

// expectTransaction makes the transaction manager run the callback against
// a factory that hands back the fixture's request repository.
func (f requestServiceFixtures) expectTransaction(t *testing.T, ctx context.Context) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewRequestRepository().Return(f.requestRepo)

	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestRequestService_CreateRequest_Success(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	userID := uuid.New()
	customer := &entity.Customer{ID: uuid.New(), CompanyName: "Choco Imports"}
	supplier := &entity.Supplier{ID: uuid.New(), CompanyName: "Cacao Coop"}

	fx.expectCustomerUser(ctx, userID, customer)
	fx.partyRepo.EXPECT().FindSupplierByID(ctx, supplier.ID).Return(supplier, nil)
	fx.requestRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Request")).Return(nil)

	request, err := fx.service.CreateRequest(ctx, userID, usecase.CreateRequestInput{
		SupplierID: supplier.ID,
		Type:       "Information",
		Subject:    "Origin details",
		Message:    "Please share farm origin details.",
	})

	require.NoError(t, err)
	assert.Equal(t, customer.ID, request.CustomerID)
	assert.Equal(t, supplier.ID, request.SupplierID)
	assert.Equal(t, entity.RequestTypeInformation, request.Type)
	assert.Equal(t, entity.RequestStatusPending, request.Status)
	assert.Equal(t, customer.CompanyName, request.CustomerName)
}

func TestRequestService_CreateRequest_PurchaseOrderWithItems(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	userID := uuid.New()
	customer := &entity.Customer{ID: uuid.New(), CompanyName: "Choco Imports"}
	supplierID := uuid.New()

	fx.expectCustomerUser(ctx, userID, customer)
	fx.partyRepo.EXPECT().FindSupplierByID(ctx, supplierID).Return(&entity.Supplier{ID: supplierID}, nil)
	fx.requestRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Request")).Return(nil)

	request, err := fx.service.CreateRequest(ctx, userID, usecase.CreateRequestInput{
		SupplierID:  supplierID,
		Type:        "Purchase Order",
		Subject:     "Q3 order",
		OrderNumber: "PO-2026-031",
		Items: []usecase.RequestItemInput{
			{ProductName: "Cocoa beans", Quantity: 12.5, Unit: "MT"},
			{ProductName: "Cocoa butter", Quantity: 2, Unit: "MT"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RequestTypePurchaseOrder, request.Type)
	assert.Equal(t, "PO-2026-031", request.OrderNumber)
	require.Len(t, request.Items, 2)
	assert.Equal(t, "Cocoa beans", request.Items[0].ProductName)
}

func TestRequestService_CreateRequest_PurchaseOrderMissingOrderNumber(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	userID := uuid.New()
	customer := &entity.Customer{ID: uuid.New()}

	fx.expectCustomerUser(ctx, userID, customer)

	request, err := fx.service.CreateRequest(ctx, userID, usecase.CreateRequestInput{
		SupplierID: uuid.New(),
		Type:       "Purchase Order",
		Subject:    "Q3 order",
	})

	// Validation fails before any supplier lookup or write happens; the
	// mocks verify nothing else was called.
	require.Error(t, err)
	assert.Nil(t, request)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestRequestService_CreateRequest_UnknownType(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.expectCustomerUser(ctx, userID, &entity.Customer{ID: uuid.New()})

	_, err := fx.service.CreateRequest(ctx, userID, usecase.CreateRequestInput{
		SupplierID: uuid.New(),
		Type:       "Telepathy",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestRequestService_CreateRequest_NotACustomer(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.partyRepo.EXPECT().FindCustomerByUser(ctx, userID).Return(nil, repository.ErrCustomerNotFound)
	fx.partyRepo.EXPECT().FindSupplierByUser(ctx, userID).Return(&entity.Supplier{ID: uuid.New()}, nil)

	_, err := fx.service.CreateRequest(ctx, userID, usecase.CreateRequestInput{
		SupplierID: uuid.New(),
		Type:       "Information",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotACustomer)
}

func TestRequestService_RespondToRequest_DecisionSynonyms(t *testing.T) {
	cases := []struct {
		action string
		want   entity.RequestStatus
	}{
		{action: "accept", want: entity.RequestStatusAccepted},
		{action: "Approved", want: entity.RequestStatusAccepted},
		{action: "ok", want: entity.RequestStatusAccepted},
		{action: "done", want: entity.RequestStatusAccepted},
		{action: "reject", want: entity.RequestStatusRejected},
		{action: "DECLINE", want: entity.RequestStatusRejected},
		{action: "no", want: entity.RequestStatusRejected},
	}

	for _, tc := range cases {
		t.Run(tc.action, func(t *testing.T) {
			fx := createTestRequestService(t)

			ctx := context.Background()
			userID := uuid.New()
			supplier := &entity.Supplier{ID: uuid.New()}
			request := &entity.Request{
				ID:         uuid.New(),
				CustomerID: uuid.New(),
				SupplierID: supplier.ID,
				Type:       entity.RequestTypeInformation,
				Status:     entity.RequestStatusPending,
			}

			fx.expectSupplierUser(ctx, userID, supplier)
			fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
			fx.expectTransaction(t, ctx)
			fx.requestRepo.EXPECT().Update(ctx, request).Return(nil)

			resolved, err := fx.service.RespondToRequest(ctx, userID, usecase.RespondToRequestInput{
				RequestID: request.ID,
				Action:    tc.action,
			})

			require.NoError(t, err)
			assert.Equal(t, tc.want, resolved.Status)
			require.NotNil(t, resolved.ResolvedAt)
			assert.WithinDuration(t, time.Now(), *resolved.ResolvedAt, time.Minute)
		})
	}
}

func TestRequestService_RespondToRequest_UnknownTokenLeavesRequestUntouched(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	request := &entity.Request{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		SupplierID: supplier.ID,
		Status:     entity.RequestStatusPending,
	}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	// No transaction expectation: nothing may be persisted.
	resolved, err := fx.service.RespondToRequest(ctx, userID, usecase.RespondToRequestInput{
		RequestID: request.ID,
		Action:    "maybe later",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusPending, resolved.Status)
	assert.Nil(t, resolved.ResolvedAt)
}

func TestRequestService_RespondToRequest_AlreadyResolved(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	request := &entity.Request{
		ID:         uuid.New(),
		SupplierID: supplier.ID,
		Status:     entity.RequestStatusAccepted,
	}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	_, err := fx.service.RespondToRequest(ctx, userID, usecase.RespondToRequestInput{
		RequestID: request.ID,
		Action:    "accept",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRequestAlreadyResolved)
}

func TestRequestService_RespondToRequest_SharesOwnedPlots(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	request := &entity.Request{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		SupplierID: supplier.ID,
		Type:       entity.RequestTypePlotData,
		Status:     entity.RequestStatusPending,
	}
	plotIDs := []string{"FARM-A", "FARM-B"}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	for _, plotID := range plotIDs {
		fx.landPlotRepo.EXPECT().FindByID(ctx, supplier.ID, plotID).
			Return(&entity.LandPlot{ID: plotID, SupplierID: supplier.ID}, nil)
	}
	fx.expectTransaction(t, ctx)
	fx.requestRepo.EXPECT().Update(ctx, request).Return(nil)
	fx.requestRepo.EXPECT().AddSharedPlots(ctx, request.ID, plotIDs).Return(nil)

	resolved, err := fx.service.RespondToRequest(ctx, userID, usecase.RespondToRequestInput{
		RequestID: request.ID,
		Action:    "accept",
		PlotIDs:   plotIDs,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusAccepted, resolved.Status)
	assert.Equal(t, plotIDs, resolved.SharedPlotIDs)
}

func TestRequestService_RespondToRequest_StatusTokenAccepted(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	request := &entity.Request{
		ID:         uuid.New(),
		SupplierID: supplier.ID,
		Type:       entity.RequestTypeInformation,
		Status:     entity.RequestStatusPending,
	}

	// Some clients send the resolved status instead of an action verb;
	// both resolve the request the same way.
	fx.expectSupplierUser(ctx, userID, supplier)
	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.expectTransaction(t, ctx)
	fx.requestRepo.EXPECT().Update(ctx, request).Return(nil)

	resolved, err := fx.service.RespondToRequest(ctx, userID, usecase.RespondToRequestInput{
		RequestID: request.ID,
		Status:    "accepted",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusAccepted, resolved.Status)
	require.NotNil(t, resolved.ResolvedAt)
}

func TestRequestService_RespondToRequest_ForeignPlotRejected(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	request := &entity.Request{
		ID:         uuid.New(),
		SupplierID: supplier.ID,
		Status:     entity.RequestStatusPending,
	}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.landPlotRepo.EXPECT().FindByID(ctx, supplier.ID, "FOREIGN-PLOT").
		Return(nil, repository.ErrPlotNotFound)

	_, err := fx.service.RespondToRequest(ctx, userID, usecase.RespondToRequestInput{
		RequestID: request.ID,
		Action:    "accept",
		PlotIDs:   []string{"FOREIGN-PLOT"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPlotOwnershipViolation)
}

func TestRequestService_SubmitPurchaseOrderData_AcceptsAndShares(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	request := &entity.Request{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		SupplierID:  supplier.ID,
		Type:        entity.RequestTypePurchaseOrder,
		OrderNumber: "PO-2026-0812",
		Status:      entity.RequestStatusPending,
	}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.landPlotRepo.EXPECT().FindByID(ctx, supplier.ID, "FARM-A").
		Return(&entity.LandPlot{ID: "FARM-A", SupplierID: supplier.ID}, nil)
	fx.expectTransaction(t, ctx)
	fx.requestRepo.EXPECT().Update(ctx, request).Return(nil)
	fx.requestRepo.EXPECT().
		SavePurchaseOrderData(ctx, request.ID, mock.AnythingOfType("*entity.PurchaseOrderData")).
		Return(nil)
	fx.requestRepo.EXPECT().AddSharedPlots(ctx, request.ID, []string{"FARM-A"}).Return(nil)

	submission, err := fx.service.SubmitPurchaseOrderData(ctx, userID, usecase.SubmitPurchaseOrderInput{
		RequestID: request.ID,
		Batches: []usecase.PurchaseOrderBatchInput{
			{BatchNumber: "B-001", ProductName: "Cocoa Beans", Quantity: 500, Unit: "kg"},
			{BatchNumber: "B-002", ProductName: "Cocoa Beans", Quantity: 250, Unit: "kg", EUDRRelevant: boolPtr(false)},
		},
		PlotIDs:  []string{"FARM-A"},
		Products: []string{"Cocoa Beans"},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusAccepted, submission.Request.Status)
	assert.Contains(t, submission.Request.ResponseMessage, "2 batches")
	assert.Equal(t, 2, submission.Batches)
	assert.Equal(t, 1, submission.Plots)
	require.NotNil(t, submission.Request.PurchaseOrder)
	// The flag defaults to relevant when the client leaves it out.
	assert.True(t, submission.Request.PurchaseOrder.Batches[0].EUDRRelevant)
	assert.False(t, submission.Request.PurchaseOrder.Batches[1].EUDRRelevant)
	assert.Equal(t, []string{"FARM-A"}, submission.Request.SharedPlotIDs)
}

func TestRequestService_SubmitPurchaseOrderData_RejectsNonPurchaseOrder(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	request := &entity.Request{
		ID:         uuid.New(),
		SupplierID: supplier.ID,
		Type:       entity.RequestTypeInformation,
		Status:     entity.RequestStatusPending,
	}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	_, err := fx.service.SubmitPurchaseOrderData(ctx, userID, usecase.SubmitPurchaseOrderInput{
		RequestID: request.ID,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRequestService_GetPurchaseOrderResponse_SummarizesCompliance(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	userID := uuid.New()
	customer := &entity.Customer{ID: uuid.New()}
	supplierID := uuid.New()
	now := time.Now()
	request := &entity.Request{
		ID:          uuid.New(),
		CustomerID:  customer.ID,
		SupplierID:  supplierID,
		Type:        entity.RequestTypePurchaseOrder,
		OrderNumber: "PO-2026-0099",
		Status:      entity.RequestStatusAccepted,
		PurchaseOrder: &entity.PurchaseOrderData{
			Batches: []entity.PurchaseOrderBatch{
				{BatchNumber: "B-001", EUDRRelevant: true},
				{BatchNumber: "B-002", EUDRRelevant: true},
				{BatchNumber: "B-003", EUDRRelevant: false},
			},
			PlotIDs:     []string{"FARM-A", "FARM-GONE"},
			Products:    []string{"Cocoa Beans"},
			SubmittedAt: now,
		},
	}

	fx.expectCustomerUser(ctx, userID, customer)
	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.landPlotRepo.EXPECT().FindByID(ctx, supplierID, "FARM-A").
		Return(analyzedPlot("FARM-A", supplierID, 9.0, now), nil)
	fx.landPlotRepo.EXPECT().FindByID(ctx, supplierID, "FARM-GONE").
		Return(nil, repository.ErrPlotNotFound)

	resp, err := fx.service.GetPurchaseOrderResponse(ctx, userID, request.ID)

	require.NoError(t, err)
	require.NotNil(t, resp.Summary)
	// The deleted plot drops out of the detail view without failing the read.
	require.Len(t, resp.Plots, 1)
	assert.Equal(t, 3, resp.Summary.TotalBatches)
	assert.Equal(t, 1, resp.Summary.TotalPlots)
	assert.Equal(t, 2, resp.Summary.EUDRRelevantBatches)
	assert.Equal(t, 1, resp.Summary.HighRiskPlots)
	assert.InDelta(t, 200.0/3.0, resp.Summary.ComplianceRate, 0.01)
}

func TestRequestService_GetPurchaseOrderPlots_EmptyUntilAccepted(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	userID := uuid.New()
	customer := &entity.Customer{ID: uuid.New()}
	request := &entity.Request{
		ID:         uuid.New(),
		CustomerID: customer.ID,
		SupplierID: uuid.New(),
		Type:       entity.RequestTypePurchaseOrder,
		Status:     entity.RequestStatusPending,
	}

	fx.expectCustomerUser(ctx, userID, customer)
	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

	plots, err := fx.service.GetPurchaseOrderPlots(ctx, userID, request.ID)

	require.NoError(t, err)
	assert.Empty(t, plots)
}

func TestRequestService_GetPurchaseOrderDetails_LoadsPlotsAndCatalogue(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	request := &entity.Request{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		SupplierID:  supplier.ID,
		Type:        entity.RequestTypePurchaseOrder,
		OrderNumber: "PO-2026-0042",
		Status:      entity.RequestStatusPending,
	}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
	fx.landPlotRepo.EXPECT().FindBySupplier(ctx, supplier.ID).
		Return([]*entity.LandPlot{{ID: "FARM-A", SupplierID: supplier.ID}}, nil)
	fx.productRepo.EXPECT().List(ctx, "", 100).
		Return([]*entity.Product{{ID: uuid.New(), Name: "Cocoa Beans", Category: "Cocoa"}}, nil)

	details, err := fx.service.GetPurchaseOrderDetails(ctx, userID, request.ID)

	require.NoError(t, err)
	assert.Equal(t, "PO-2026-0042", details.OrderNumber)
	require.Len(t, details.Plots, 1)
	require.Len(t, details.Products, 1)
}

func TestRequestService_GetSharedPlots_DeduplicatesRepeatedShares(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	userID := uuid.New()
	customer := &entity.Customer{ID: uuid.New()}
	plot := &entity.LandPlot{ID: "FARM-A", SupplierID: uuid.New(), PlotName: "Farm A"}
	other := &entity.LandPlot{ID: "FARM-B", SupplierID: plot.SupplierID, PlotName: "Farm B"}

	newer := entity.PlotShare{RequestID: uuid.New(), SharedAt: time.Now()}
	older := entity.PlotShare{RequestID: uuid.New(), SharedAt: time.Now().Add(-time.Hour)}

	fx.expectCustomerUser(ctx, userID, customer)
	fx.requestRepo.EXPECT().FindSharedPlots(ctx, customer.ID).Return([]*repository.SharedPlot{
		{Plot: plot, Share: newer},
		{Plot: plot, Share: older},
		{Plot: other, Share: older},
	}, nil)

	views, err := fx.service.GetSharedPlots(ctx, userID)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "FARM-A", views[0].Plot.ID)
	assert.Equal(t, 2, views[0].TotalShares)
	require.Len(t, views[0].SharedInRequests, 2)
	assert.Equal(t, newer.RequestID, views[0].SharedInRequests[0].RequestID)
	assert.Equal(t, 1, views[1].TotalShares)
}

func TestRequestService_GetDashboardStats(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	userID := uuid.New()
	customer := &entity.Customer{ID: uuid.New()}
	recent := []*entity.Request{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.expectCustomerUser(ctx, userID, customer)
	fx.requestRepo.EXPECT().
		Stats(ctx, repository.RequestFilter{CustomerID: customer.ID}).
		Return(&repository.RequestStats{Total: 7, Pending: 2, Completed: 4, Rejected: 1}, nil)
	fx.requestRepo.EXPECT().
		List(ctx, repository.RequestFilter{CustomerID: customer.ID, Limit: recentRequestsLimit}).
		Return(recent, nil)

	stats, err := fx.service.GetDashboardStats(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, stats.Role)
	assert.Equal(t, int64(7), stats.Total)
	assert.Equal(t, int64(2), stats.Pending)
	assert.Equal(t, int64(4), stats.Completed)
	assert.Equal(t, int64(1), stats.Rejected)
	assert.Equal(t, recent, stats.RecentRequests)
}
