// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"canopy/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRequestNotFound is returned when a request is not found.
var ErrRequestNotFound = errors.New("request not found")

// RequestFilter narrows request list queries. Zero values mean "no filter".
type RequestFilter struct {
	CustomerID uuid.UUID            // Only requests initiated by this customer.
	SupplierID uuid.UUID            // Only requests addressed to this supplier.
	Status     entity.RequestStatus // Only requests in this status.
	Type       entity.RequestType   // Only requests of this type.
	Limit      int                  // Maximum rows; 0 means the implementation default.
}

// RequestStats are the aggregate counts shown on the dashboard.
type RequestStats struct {
	Total     int64
	Pending   int64
	Completed int64
	Rejected  int64
}

// RequestRepository defines persistence for the customer-supplier request
// workflow, including purchase order lines and plot shares.
type RequestRepository interface {
	// Create persists a new request together with its line items.
	Create(ctx context.Context, request *entity.Request) error

	// FindByID retrieves a request with its items and shared plot IDs.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Request, error)

	// List retrieves requests matching the filter, newest first, with
	// counterparty display names populated.
	List(ctx context.Context, filter RequestFilter) ([]*entity.Request, error)

	// Update persists status, response message and resolution time changes.
	Update(ctx context.Context, request *entity.Request) error

	// SavePurchaseOrderData stores the supplier's fulfillment payload on a
	// purchase order request, replacing any earlier submission.
	SavePurchaseOrderData(ctx context.Context, requestID uuid.UUID, data *entity.PurchaseOrderData) error

	// AddSharedPlots records the plots shared with the customer when a
	// plot data request is accepted.
	AddSharedPlots(ctx context.Context, requestID uuid.UUID, plotIDs []string) error

	// FindSharedPlots retrieves the plots shared with a customer across all
	// of its accepted requests, together with the share history.
	FindSharedPlots(ctx context.Context, customerID uuid.UUID) ([]*SharedPlot, error)

	// Stats returns the aggregate counts for one side of the workflow.
	Stats(ctx context.Context, filter RequestFilter) (*RequestStats, error)
}

// SharedPlot pairs a shared land plot with the request that shared it.
type SharedPlot struct {
	Plot  *entity.LandPlot
	Share entity.PlotShare
}
