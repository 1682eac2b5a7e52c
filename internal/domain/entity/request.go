// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// RequestType classifies what a customer is asking a supplier for.
type RequestType string

const (
	// RequestTypeInformation asks for general supply-chain information.
	RequestTypeInformation RequestType = "Information"
	// RequestTypeDocumentation asks for compliance documents.
	RequestTypeDocumentation RequestType = "Documentation"
	// RequestTypePlotData asks the supplier to share land plot geodata.
	RequestTypePlotData RequestType = "Plot Data"
	// RequestTypePurchaseOrder carries purchase order line items.
	RequestTypePurchaseOrder RequestType = "Purchase Order"
)

// String returns the string representation of the RequestType.
func (t RequestType) String() string {
	return string(t)
}

// IsValid checks if the RequestType is a valid value.
func (t RequestType) IsValid() bool {
	switch t {
	case RequestTypeInformation, RequestTypeDocumentation, RequestTypePlotData, RequestTypePurchaseOrder:
		return true
	default:
		return false
	}
}

// RequestStatus is the lifecycle state of a request.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "Pending"
	RequestStatusAccepted  RequestStatus = "Accepted"
	RequestStatusRejected  RequestStatus = "Rejected"
	RequestStatusCompleted RequestStatus = "Completed"
	RequestStatusCancelled RequestStatus = "Cancelled"
)

// String returns the string representation of the RequestStatus.
func (s RequestStatus) String() string {
	return string(s)
}

// IsResolved reports whether the request has left the pending state.
func (s RequestStatus) IsResolved() bool {
	return s != RequestStatusPending && s != ""
}

// IsCompleted reports whether the request counts as completed for
// dashboard statistics. Accepted requests count alongside Completed.
func (s RequestStatus) IsCompleted() bool {
	return s == RequestStatusCompleted || s == RequestStatusAccepted
}

// acceptTokens and rejectTokens map the free-form decision words clients
// send to the canonical statuses. Matching is case-insensitive.
var acceptTokens = map[string]struct{}{
	"accept": {}, "accepted": {}, "approve": {}, "approved": {},
	"ok": {}, "yes": {}, "y": {}, "complete": {}, "completed": {}, "done": {},
}

var rejectTokens = map[string]struct{}{
	"reject": {}, "rejected": {}, "decline": {}, "declined": {}, "no": {}, "n": {},
}

// NormalizeDecision maps a free-form accept/reject token to its canonical
// status. It returns ok=false when the token is not a recognized decision.
func NormalizeDecision(token string) (RequestStatus, bool) {
	needle := strings.ToLower(strings.TrimSpace(token))
	if _, found := acceptTokens[needle]; found {
		return RequestStatusAccepted, true
	}
	if _, found := rejectTokens[needle]; found {
		return RequestStatusRejected, true
	}

	return "", false
}

// RequestItem is a purchase order line on a Purchase Order request.
type RequestItem struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the line item.
	RequestID   uuid.UUID // The request this line belongs to.
	ProductName string    // The ordered product name.
	Quantity    float64   // Ordered quantity in the given unit.
	Unit        string    // Unit of measure, e.g. "kg", "MT".
}

// PurchaseOrderBatch is one production batch a supplier declares when
// fulfilling a purchase order request.
type PurchaseOrderBatch struct {
	BatchNumber    string  // Supplier's batch or lot identifier.
	ProductName    string  // Commodity produced in this batch.
	Quantity       float64 // Batch quantity in the given unit.
	Unit           string  // Unit of measure, e.g. "kg", "MT".
	EUDRRelevant   bool    // Whether the batch falls under EUDR due diligence.
	ProductionDate string  // ISO date the batch was produced, when known.
}

// PurchaseOrderData is the supplier's fulfillment payload on a purchase
// order request: the batches produced, the plots they came from and the
// products they map to.
type PurchaseOrderData struct {
	Batches             []PurchaseOrderBatch // Declared production batches.
	PlotIDs             []string             // Supplier plot identifiers backing the batches.
	Products            []string             // Product names covered by the order.
	ProductionDates     []string             // Declared production dates.
	ProductionDateScope string               // "per_plot" or "per_order".
	SubmittedAt         time.Time            // When the supplier submitted the payload.
}

// EUDRRelevantBatches counts the batches flagged for EUDR due diligence.
func (d *PurchaseOrderData) EUDRRelevantBatches() int {
	count := 0
	for _, batch := range d.Batches {
		if batch.EUDRRelevant {
			count++
		}
	}

	return count
}

// Request is a customer-to-supplier workflow item: an ask for information,
// documents, plot geodata, or a purchase order. Only the supplier side may
// respond; acceptance of a plot data request shares the supplier's plots
// with the requesting customer.
type Request struct {
	ID              uuid.UUID     // The Global Unique Identifier (GUID) for the request.
	CustomerID      uuid.UUID     // The initiating customer organization.
	SupplierID      uuid.UUID     // The addressed supplier organization.
	Type            RequestType   // What is being asked for.
	Status          RequestStatus // Current lifecycle state.
	Subject         string        // Short human-readable subject line.
	OrderNumber     string        // Purchase order number; required when Type is Purchase Order.
	Message         string        // Free-form message from the customer.
	ResponseMessage string        // Free-form response from the supplier, set on resolution.
	Items           []RequestItem // Purchase order lines; empty unless Type is Purchase Order.
	SharedPlotIDs   []string      // Plot IDs shared with the customer on acceptance.

	// PurchaseOrder holds the supplier's fulfillment payload; nil until the
	// supplier submits it and always nil for non purchase order requests.
	PurchaseOrder *PurchaseOrderData
	ResolvedAt      *time.Time    // When the supplier responded; nil while pending.
	CreatedAt       time.Time     // Timestamp of when this request was created.
	UpdatedAt       time.Time     // Timestamp of the last modification.

	// Denormalized display names, populated on reads for list views.
	CustomerName string
	SupplierName string
}
