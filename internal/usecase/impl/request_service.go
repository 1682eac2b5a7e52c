package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "canopy/internal/delivery/context"
	"canopy/internal/domain/entity"
	domainerrors "canopy/internal/domain/errors"
	"canopy/internal/domain/repository"
	"canopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const recentRequestsLimit = 5

// purchaseOrderCatalogLimit caps the product catalogue returned on the
// supplier's fulfillment form.
const purchaseOrderCatalogLimit = 100

// requestService implements the RequestUsecase interface.
type requestService struct {
	txManager    repository.TransactionManager
	requestRepo  repository.RequestRepository
	partyRepo    repository.PartyRepository
	landPlotRepo repository.LandPlotRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// RequestServiceParams holds dependencies for requestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	RequestRepo  repository.RequestRepository
	PartyRepo    repository.PartyRepository
	LandPlotRepo repository.LandPlotRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewRequestService is the constructor for requestService.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		txManager:    params.TxManager,
		requestRepo:  params.RequestRepo,
		partyRepo:    params.PartyRepo,
		landPlotRepo: params.LandPlotRepo,
		productRepo:  params.ProductRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *requestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRequest issues a new request from the caller's customer organization
// to a supplier. Nothing is persisted when validation fails.
func (srv *requestService) CreateRequest(ctx context.Context, userID uuid.UUID, input usecase.CreateRequestInput) (*entity.Request, error) {
	customer, err := requireCustomer(ctx, srv.partyRepo, userID)
	if err != nil {
		return nil, err
	}

	requestType := entity.RequestType(input.Type)
	if !requestType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown request type: " + input.Type)
	}
	if requestType == entity.RequestTypePurchaseOrder && strings.TrimSpace(input.OrderNumber) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("purchase order requests require an order number")
	}

	if _, err := srv.partyRepo.FindSupplierByID(ctx, input.SupplierID); err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "target supplier does not exist")
		}

		return nil, errors.Wrap(err, "failed to verify target supplier")
	}

	request := &entity.Request{
		CustomerID:  customer.ID,
		SupplierID:  input.SupplierID,
		Type:        requestType,
		Status:      entity.RequestStatusPending,
		Subject:     input.Subject,
		OrderNumber: strings.TrimSpace(input.OrderNumber),
		Message:     input.Message,
	}
	for _, item := range input.Items {
		request.Items = append(request.Items, entity.RequestItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
		})
	}

	if err := srv.requestRepo.Create(ctx, request); err != nil {
		srv.log(ctx).Error("Failed to create request", slog.Any("customerID", customer.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create request")
	}

	request.CustomerName = customer.CompanyName
	srv.log(ctx).Info("Request created",
		slog.Any("requestID", request.ID),
		slog.String("type", request.Type.String()),
		slog.Any("supplierID", request.SupplierID),
	)

	return request, nil
}

// ListRequests returns the caller's requests, newest first, filtered by the
// party side the caller acts as.
func (srv *requestService) ListRequests(ctx context.Context, userID uuid.UUID, status string) ([]*entity.Request, error) {
	identity, err := resolveIdentity(ctx, srv.partyRepo, userID)
	if err != nil {
		return nil, err
	}
	if !identity.HasParty() {
		return nil, errors.Wrap(domainerrors.ErrNoPartyLinked, "cannot list requests")
	}

	filter := repository.RequestFilter{Status: entity.RequestStatus(status)}
	if identity.PrimaryRole() == entity.RoleSupplier {
		filter.SupplierID = identity.Supplier.ID
	} else {
		filter.CustomerID = identity.Customer.ID
	}

	requests, err := srv.requestRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	return requests, nil
}

// GetRequest returns one request visible to either of its parties.
func (srv *requestService) GetRequest(ctx context.Context, userID, requestID uuid.UUID) (*entity.Request, error) {
	identity, err := resolveIdentity(ctx, srv.partyRepo, userID)
	if err != nil {
		return nil, err
	}

	request, err := srv.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if !isRequestParty(identity, request) {
		return nil, errors.Wrap(domainerrors.ErrRequestAccessDenied, "caller is not a party to the request")
	}

	return request, nil
}

// RespondToRequest resolves a pending request with an accept or reject
// decision. Unrecognized decision tokens leave the request untouched.
func (srv *requestService) RespondToRequest(ctx context.Context, userID uuid.UUID, input usecase.RespondToRequestInput) (*entity.Request, error) {
	supplier, err := requireSupplier(ctx, srv.partyRepo, userID)
	if err != nil {
		return nil, err
	}

	request, err := srv.loadRequest(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}
	if request.SupplierID != supplier.ID {
		return nil, errors.Wrap(domainerrors.ErrRequestAccessDenied, "request belongs to another supplier")
	}
	if request.Status.IsResolved() {
		return nil, errors.Wrap(domainerrors.ErrRequestAlreadyResolved, "cannot respond twice")
	}

	decision := input.Decision()
	status, recognized := entity.NormalizeDecision(decision)
	if !recognized {
		srv.log(ctx).Debug("Ignoring unrecognized decision token",
			slog.Any("requestID", request.ID),
			slog.String("decision", decision),
		)

		return request, nil
	}

	if status == entity.RequestStatusAccepted && len(input.PlotIDs) > 0 {
		if err := srv.verifyPlotOwnership(ctx, supplier.ID, input.PlotIDs); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	request.Status = status
	request.ResponseMessage = input.Message
	request.ResolvedAt = &now

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.NewRequestRepository()

		if err := requestRepo.Update(ctx, request); err != nil {
			return errors.Wrap(err, "failed to update request")
		}

		if status == entity.RequestStatusAccepted && len(input.PlotIDs) > 0 {
			if err := requestRepo.AddSharedPlots(ctx, request.ID, input.PlotIDs); err != nil {
				return errors.Wrap(err, "failed to record shared plots")
			}
			request.SharedPlotIDs = input.PlotIDs
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute request response transaction", slog.Any("requestID", request.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute request response transaction")
	}

	srv.log(ctx).Info("Request resolved",
		slog.Any("requestID", request.ID),
		slog.String("status", request.Status.String()),
		slog.Int("sharedPlots", len(request.SharedPlotIDs)),
	)

	return request, nil
}

// GetSharedPlots returns the plots shared with the caller's customer
// organization, deduplicated by plot with the full share history.
func (srv *requestService) GetSharedPlots(ctx context.Context, userID uuid.UUID) ([]*usecase.SharedPlotView, error) {
	customer, err := requireCustomer(ctx, srv.partyRepo, userID)
	if err != nil {
		return nil, err
	}

	shares, err := srv.requestRepo.FindSharedPlots(ctx, customer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load shared plots")
	}

	return dedupeSharedPlots(shares), nil
}

// GetDashboardStats returns request workflow counts for the caller's
// primary role.
func (srv *requestService) GetDashboardStats(ctx context.Context, userID uuid.UUID) (*usecase.DashboardStats, error) {
	identity, err := resolveIdentity(ctx, srv.partyRepo, userID)
	if err != nil {
		return nil, err
	}
	if !identity.HasParty() {
		return nil, errors.Wrap(domainerrors.ErrNoPartyLinked, "cannot build dashboard")
	}

	role := identity.PrimaryRole()
	filter := repository.RequestFilter{}
	if role == entity.RoleSupplier {
		filter.SupplierID = identity.Supplier.ID
	} else {
		filter.CustomerID = identity.Customer.ID
	}

	stats, err := srv.requestRepo.Stats(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute dashboard stats")
	}

	filter.Limit = recentRequestsLimit
	recent, err := srv.requestRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recent requests")
	}

	return &usecase.DashboardStats{
		Role:           role,
		Total:          stats.Total,
		Pending:        stats.Pending,
		Completed:      stats.Completed,
		Rejected:       stats.Rejected,
		RecentRequests: recent,
	}, nil
}

// GetPurchaseOrderDetails returns the supplier-side view for building a
// fulfillment payload: the order header, the supplier's registered plots
// and the product catalogue to pick from.
func (srv *requestService) GetPurchaseOrderDetails(ctx context.Context, userID, requestID uuid.UUID) (*usecase.PurchaseOrderDetails, error) {
	supplier, err := requireSupplier(ctx, srv.partyRepo, userID)
	if err != nil {
		return nil, err
	}

	request, err := srv.loadPurchaseOrder(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.SupplierID != supplier.ID {
		return nil, errors.Wrap(domainerrors.ErrRequestAccessDenied, "request belongs to another supplier")
	}

	plots, err := srv.landPlotRepo.FindBySupplier(ctx, supplier.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load supplier plots")
	}

	products, err := srv.productRepo.List(ctx, "", purchaseOrderCatalogLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load product catalogue")
	}

	return &usecase.PurchaseOrderDetails{
		RequestID:    request.ID,
		OrderNumber:  request.OrderNumber,
		CustomerID:   request.CustomerID,
		CustomerName: request.CustomerName,
		Plots:        plots,
		Products:     products,
	}, nil
}

// SubmitPurchaseOrderData records the supplier's fulfillment payload and
// accepts the request in one step; the backing plots become visible to the
// customer like any other plot share. Resubmission replaces the payload.
func (srv *requestService) SubmitPurchaseOrderData(ctx context.Context, userID uuid.UUID, input usecase.SubmitPurchaseOrderInput) (*usecase.PurchaseOrderSubmission, error) {
	supplier, err := requireSupplier(ctx, srv.partyRepo, userID)
	if err != nil {
		return nil, err
	}

	request, err := srv.loadPurchaseOrder(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}
	if request.SupplierID != supplier.ID {
		return nil, errors.Wrap(domainerrors.ErrRequestAccessDenied, "request belongs to another supplier")
	}
	if request.Status == entity.RequestStatusRejected || request.Status == entity.RequestStatusCancelled {
		return nil, errors.Wrap(domainerrors.ErrRequestAlreadyResolved, "cannot fulfill a rejected or cancelled order")
	}

	if len(input.PlotIDs) > 0 {
		if err := srv.verifyPlotOwnership(ctx, supplier.ID, input.PlotIDs); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	batches := make([]entity.PurchaseOrderBatch, 0, len(input.Batches))
	for _, batch := range input.Batches {
		// A batch without an explicit flag counts as EUDR relevant.
		relevant := batch.EUDRRelevant == nil || *batch.EUDRRelevant
		batches = append(batches, entity.PurchaseOrderBatch{
			BatchNumber:    batch.BatchNumber,
			ProductName:    batch.ProductName,
			Quantity:       batch.Quantity,
			Unit:           batch.Unit,
			EUDRRelevant:   relevant,
			ProductionDate: batch.ProductionDate,
		})
	}

	data := &entity.PurchaseOrderData{
		Batches:             batches,
		PlotIDs:             input.PlotIDs,
		Products:            input.Products,
		ProductionDates:     input.ProductionDates,
		ProductionDateScope: input.ProductionDateScope,
		SubmittedAt:         now,
	}

	message := input.Message
	if message == "" {
		message = fmt.Sprintf("Purchase order data submitted with %d batches", len(batches))
	}

	request.Status = entity.RequestStatusAccepted
	request.ResponseMessage = message
	request.ResolvedAt = &now

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.NewRequestRepository()

		if err := requestRepo.Update(ctx, request); err != nil {
			return errors.Wrap(err, "failed to update request")
		}
		if err := requestRepo.SavePurchaseOrderData(ctx, request.ID, data); err != nil {
			return errors.Wrap(err, "failed to store purchase order data")
		}
		if len(input.PlotIDs) > 0 {
			if err := requestRepo.AddSharedPlots(ctx, request.ID, input.PlotIDs); err != nil {
				return errors.Wrap(err, "failed to record shared plots")
			}
			request.SharedPlotIDs = input.PlotIDs
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute purchase order submission", slog.Any("requestID", request.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute purchase order submission")
	}

	request.PurchaseOrder = data

	srv.log(ctx).Info("Purchase order fulfilled",
		slog.Any("requestID", request.ID),
		slog.Int("batches", len(batches)),
		slog.Int("plots", len(input.PlotIDs)),
	)

	return &usecase.PurchaseOrderSubmission{
		Request:  request,
		Batches:  len(batches),
		Plots:    len(input.PlotIDs),
		Products: len(input.Products),
	}, nil
}

// GetPurchaseOrderResponse returns the submitted fulfillment payload with
// the backing plots and a compliance summary. Either party may read it.
func (srv *requestService) GetPurchaseOrderResponse(ctx context.Context, userID, requestID uuid.UUID) (*usecase.PurchaseOrderResponse, error) {
	identity, err := resolveIdentity(ctx, srv.partyRepo, userID)
	if err != nil {
		return nil, err
	}

	request, err := srv.loadPurchaseOrder(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !isRequestParty(identity, request) {
		return nil, errors.Wrap(domainerrors.ErrRequestAccessDenied, "caller is not a party to the request")
	}

	if request.PurchaseOrder == nil {
		return &usecase.PurchaseOrderResponse{Request: request}, nil
	}

	plots, err := srv.loadSupplierPlots(ctx, request.SupplierID, request.PurchaseOrder.PlotIDs)
	if err != nil {
		return nil, err
	}

	return &usecase.PurchaseOrderResponse{
		Request: request,
		Data:    request.PurchaseOrder,
		Plots:   plots,
		Summary: summarizePurchaseOrder(request.PurchaseOrder, plots),
	}, nil
}

// GetPurchaseOrderPlots returns the plots backing an accepted purchase
// order, for the requesting customer only. Before acceptance or submission
// the list is empty rather than an error.
func (srv *requestService) GetPurchaseOrderPlots(ctx context.Context, userID, requestID uuid.UUID) ([]*entity.LandPlot, error) {
	customer, err := requireCustomer(ctx, srv.partyRepo, userID)
	if err != nil {
		return nil, err
	}

	request, err := srv.loadPurchaseOrder(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.CustomerID != customer.ID {
		return nil, errors.Wrap(domainerrors.ErrRequestAccessDenied, "request belongs to another customer")
	}

	if request.Status != entity.RequestStatusAccepted || request.PurchaseOrder == nil {
		return []*entity.LandPlot{}, nil
	}

	return srv.loadSupplierPlots(ctx, request.SupplierID, request.PurchaseOrder.PlotIDs)
}

// loadPurchaseOrder loads a request and verifies it carries purchase order
// semantics.
func (srv *requestService) loadPurchaseOrder(ctx context.Context, requestID uuid.UUID) (*entity.Request, error) {
	request, err := srv.loadRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Type != entity.RequestTypePurchaseOrder {
		return nil, domainerrors.ErrValidationFailed.WithDetails("not a purchase order request")
	}

	return request, nil
}

// loadSupplierPlots resolves plot identifiers within one supplier's
// namespace. Plots deleted after submission are skipped, not errors.
func (srv *requestService) loadSupplierPlots(ctx context.Context, supplierID uuid.UUID, plotIDs []string) ([]*entity.LandPlot, error) {
	plots := make([]*entity.LandPlot, 0, len(plotIDs))
	for _, plotID := range plotIDs {
		plot, err := srv.landPlotRepo.FindByID(ctx, supplierID, plotID)
		if err != nil {
			if errors.Is(err, repository.ErrPlotNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to load purchase order plot")
		}
		plots = append(plots, plot)
	}

	return plots, nil
}

// summarizePurchaseOrder aggregates a fulfillment payload for the
// customer's compliance review.
func summarizePurchaseOrder(data *entity.PurchaseOrderData, plots []*entity.LandPlot) *usecase.PurchaseOrderSummary {
	summary := &usecase.PurchaseOrderSummary{
		TotalBatches:        len(data.Batches),
		TotalPlots:          len(plots),
		TotalProducts:       len(data.Products),
		EUDRRelevantBatches: data.EUDRRelevantBatches(),
	}

	for _, plot := range plots {
		summary.TotalAreaHa += plot.AreaHa
		if plot.Analysis != nil && plot.Analysis.Grade() == entity.RiskGradeHigh {
			summary.HighRiskPlots++
		}
	}

	if summary.TotalBatches > 0 {
		summary.ComplianceRate = float64(summary.EUDRRelevantBatches) / float64(summary.TotalBatches) * 100
	}

	return summary
}

func (srv *requestService) loadRequest(ctx context.Context, requestID uuid.UUID) (*entity.Request, error) {
	request, err := srv.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRequestNotFound, "request lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load request")
	}

	return request, nil
}

func (srv *requestService) verifyPlotOwnership(ctx context.Context, supplierID uuid.UUID, plotIDs []string) error {
	for _, plotID := range plotIDs {
		if _, err := srv.landPlotRepo.FindByID(ctx, supplierID, plotID); err != nil {
			if errors.Is(err, repository.ErrPlotNotFound) {
				return errors.Wrap(domainerrors.ErrPlotOwnershipViolation, "plot is not in the responding supplier's registry: "+plotID)
			}

			return errors.Wrap(err, "failed to verify shared plot")
		}
	}

	return nil
}

// isRequestParty reports whether the identity sits on either side of the
// request.
func isRequestParty(identity *entity.Identity, request *entity.Request) bool {
	if identity.IsCustomer() && identity.Customer.ID == request.CustomerID {
		return true
	}
	if identity.IsSupplier() && identity.Supplier.ID == request.SupplierID {
		return true
	}

	return false
}

// dedupeSharedPlots merges share rows of the same plot into one view. The
// input is newest first, so the first occurrence carries the display data.
func dedupeSharedPlots(shares []*repository.SharedPlot) []*usecase.SharedPlotView {
	views := make([]*usecase.SharedPlotView, 0, len(shares))
	byPlot := make(map[string]*usecase.SharedPlotView, len(shares))

	for _, share := range shares {
		if share.Plot == nil {
			continue
		}

		view, seen := byPlot[share.Plot.ID]
		if !seen {
			view = &usecase.SharedPlotView{Plot: share.Plot}
			byPlot[share.Plot.ID] = view
			views = append(views, view)
		}
		view.TotalShares++
		view.SharedInRequests = append(view.SharedInRequests, share.Share)
	}

	return views
}
