package handler

import (
	"log/slog"
	"net/http"

	"canopy/internal/delivery/http/response"
	"canopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RequestHandler holds dependencies for request workflow handlers.
type RequestHandler struct {
	uc     usecase.RequestUsecase
	logger *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler, injected by Fx.
func NewRequestHandler(uc usecase.RequestUsecase, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateRequest handles a customer issuing a new request to a supplier.
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.CreateRequestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}

	request, err := h.uc.CreateRequest(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Request created successfully")
}

// ListRequests handles listing the caller's requests, newest first.
func (h *RequestHandler) ListRequests(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requests, err := h.uc.ListRequests(c.Request().Context(), userID, c.QueryParam("status"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "Requests retrieved successfully")
}

// GetRequest handles fetching one request visible to the caller.
func (h *RequestHandler) GetRequest(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request ID")
	}

	request, err := h.uc.GetRequest(c.Request().Context(), userID, requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "Request retrieved successfully")
}

// RespondToRequest handles a supplier resolving a pending request.
func (h *RequestHandler) RespondToRequest(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request ID")
	}

	var input usecase.RespondToRequestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid response input")
	}
	input.RequestID = requestID

	request, err := h.uc.RespondToRequest(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "Request resolved successfully")
}

// GetSharedPlots handles listing the plots shared with the caller's
// customer organization.
func (h *RequestHandler) GetSharedPlots(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	plots, err := h.uc.GetSharedPlots(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plots, "Shared plots retrieved successfully")
}

// GetPurchaseOrderDetails handles the supplier-side fulfillment form data
// for a purchase order request.
func (h *RequestHandler) GetPurchaseOrderDetails(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request ID")
	}

	details, err := h.uc.GetPurchaseOrderDetails(c.Request().Context(), userID, requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, details, "Purchase order details retrieved successfully")
}

// SubmitPurchaseOrderData handles a supplier submitting the fulfillment
// payload for a purchase order request.
func (h *RequestHandler) SubmitPurchaseOrderData(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request ID")
	}

	var input usecase.SubmitPurchaseOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase order payload")
	}
	input.RequestID = requestID

	submission, err := h.uc.SubmitPurchaseOrderData(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, submission, "Purchase order data submitted successfully")
}

// GetPurchaseOrderResponse handles fetching the submitted fulfillment
// payload with its compliance summary.
func (h *RequestHandler) GetPurchaseOrderResponse(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request ID")
	}

	resp, err := h.uc.GetPurchaseOrderResponse(c.Request().Context(), userID, requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resp, "Purchase order response retrieved successfully")
}

// GetPurchaseOrderPlots handles the customer view of the plots backing an
// accepted purchase order.
func (h *RequestHandler) GetPurchaseOrderPlots(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request ID")
	}

	plots, err := h.uc.GetPurchaseOrderPlots(c.Request().Context(), userID, requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plots, "Purchase order plots retrieved successfully")
}

// GetDashboardStats handles the request workflow dashboard counters.
func (h *RequestHandler) GetDashboardStats(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	stats, err := h.uc.GetDashboardStats(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Dashboard stats retrieved successfully")
}
