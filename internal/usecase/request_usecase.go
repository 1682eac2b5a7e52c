package usecase

import (
	"context"

	"canopy/internal/domain/entity"

	"github.com/google/uuid"
)

// RequestItemInput is one purchase order line on a new request.
type RequestItemInput struct {
	ProductName string  `json:"product_name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
}

// CreateRequestInput defines the data required to create a request.
type CreateRequestInput struct {
	SupplierID  uuid.UUID          `json:"supplier_id"`
	Type        string             `json:"type"`
	Subject     string             `json:"subject"`
	Message     string             `json:"message"`
	OrderNumber string             `json:"order_number"`
	Items       []RequestItemInput `json:"items"`
}

// RespondToRequestInput carries a supplier's decision on a request. The
// decision arrives as either an action verb ("accept") or a status token
// ("accepted"); when both are present the action wins.
type RespondToRequestInput struct {
	RequestID uuid.UUID `json:"-"`
	Action    string    `json:"action"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	PlotIDs   []string  `json:"plot_ids"`
}

// Decision returns the token the caller actually sent.
func (input RespondToRequestInput) Decision() string {
	if input.Action != "" {
		return input.Action
	}

	return input.Status
}

// DashboardStats summarizes one party's request workflow for the dashboard.
type DashboardStats struct {
	Role           entity.Role
	Total          int64
	Pending        int64
	Completed      int64
	Rejected       int64
	RecentRequests []*entity.Request
}

// SharedPlotView is one deduplicated shared plot with its share history.
type SharedPlotView struct {
	Plot             *entity.LandPlot
	TotalShares      int
	SharedInRequests []entity.PlotShare
}

// PurchaseOrderBatchInput is one declared batch on a fulfillment payload.
// EUDRRelevant is a pointer so an omitted flag defaults to relevant.
type PurchaseOrderBatchInput struct {
	BatchNumber    string  `json:"batch_number"`
	ProductName    string  `json:"product_name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	EUDRRelevant   *bool   `json:"eudr_relevant"`
	ProductionDate string  `json:"production_date"`
}

// SubmitPurchaseOrderInput is the supplier's fulfillment payload for a
// purchase order request.
type SubmitPurchaseOrderInput struct {
	RequestID           uuid.UUID                 `json:"-"`
	Batches             []PurchaseOrderBatchInput `json:"batches"`
	PlotIDs             []string                  `json:"selected_plots"`
	Products            []string                  `json:"products"`
	ProductionDates     []string                  `json:"production_dates"`
	ProductionDateScope string                    `json:"production_date_scope"`
	Message             string                    `json:"message"`
}

// PurchaseOrderDetails is the supplier-side view used to assemble a
// fulfillment payload: the order header plus the supplier's own plots and
// the product catalogue to pick from.
type PurchaseOrderDetails struct {
	RequestID    uuid.UUID
	OrderNumber  string
	CustomerID   uuid.UUID
	CustomerName string
	Plots        []*entity.LandPlot
	Products     []*entity.Product
}

// PurchaseOrderSubmission reports what a fulfillment submission recorded.
type PurchaseOrderSubmission struct {
	Request  *entity.Request
	Batches  int
	Plots    int
	Products int
}

// PurchaseOrderSummary aggregates a submitted fulfillment payload for the
// customer's compliance review.
type PurchaseOrderSummary struct {
	TotalBatches        int
	TotalPlots          int
	TotalAreaHa         float64
	TotalProducts       int
	EUDRRelevantBatches int
	HighRiskPlots       int
	ComplianceRate      float64
}

// PurchaseOrderResponse is the submitted fulfillment payload with the
// backing plots resolved. Data and Summary are nil until the supplier
// submits.
type PurchaseOrderResponse struct {
	Request *entity.Request
	Data    *entity.PurchaseOrderData
	Plots   []*entity.LandPlot
	Summary *PurchaseOrderSummary
}

// RequestUsecase defines the interface for the customer-supplier request
// workflow.
type RequestUsecase interface {
	// CreateRequest issues a new request from the caller's customer
	// organization to a supplier.
	CreateRequest(ctx context.Context, userID uuid.UUID, input CreateRequestInput) (*entity.Request, error)

	// ListRequests returns the caller's requests, newest first, filtered by
	// the party side the caller acts as.
	ListRequests(ctx context.Context, userID uuid.UUID, status string) ([]*entity.Request, error)

	// GetRequest returns one request visible to either of its parties.
	GetRequest(ctx context.Context, userID, requestID uuid.UUID) (*entity.Request, error)

	// RespondToRequest resolves a pending request with an accept or reject
	// decision. Unrecognized decision tokens leave the request untouched.
	RespondToRequest(ctx context.Context, userID uuid.UUID, input RespondToRequestInput) (*entity.Request, error)

	// GetSharedPlots returns the plots shared with the caller's customer
	// organization, deduplicated with share history.
	GetSharedPlots(ctx context.Context, userID uuid.UUID) ([]*SharedPlotView, error)

	// GetDashboardStats returns request workflow counts for the caller's
	// primary role.
	GetDashboardStats(ctx context.Context, userID uuid.UUID) (*DashboardStats, error)

	// GetPurchaseOrderDetails returns the supplier-side view for building a
	// fulfillment payload on a purchase order request.
	GetPurchaseOrderDetails(ctx context.Context, userID, requestID uuid.UUID) (*PurchaseOrderDetails, error)

	// SubmitPurchaseOrderData records the supplier's fulfillment payload,
	// accepts the request and shares the backing plots with the customer.
	SubmitPurchaseOrderData(ctx context.Context, userID uuid.UUID, input SubmitPurchaseOrderInput) (*PurchaseOrderSubmission, error)

	// GetPurchaseOrderResponse returns the submitted fulfillment payload
	// with its compliance summary, visible to either party.
	GetPurchaseOrderResponse(ctx context.Context, userID, requestID uuid.UUID) (*PurchaseOrderResponse, error)

	// GetPurchaseOrderPlots returns the plots backing an accepted purchase
	// order, for the requesting customer only. Before acceptance or
	// submission the list is empty.
	GetPurchaseOrderPlots(ctx context.Context, userID, requestID uuid.UUID) ([]*entity.LandPlot, error)
}
