package handler

import (
	"log/slog"
	"net/http"

	"canopy/internal/delivery/http/response"
	"canopy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RiskHandler holds dependencies for deforestation risk handlers.
type RiskHandler struct {
	uc     usecase.RiskUsecase
	logger *slog.Logger
}

// NewRiskHandler is the constructor for RiskHandler, injected by Fx.
func NewRiskHandler(uc usecase.RiskUsecase, logger *slog.Logger) *RiskHandler {
	return &RiskHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetRiskDashboardData handles the customer risk dashboard aggregation.
func (h *RiskHandler) GetRiskDashboardData(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	dashboard, err := h.uc.GetRiskDashboardData(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard, "Risk dashboard retrieved successfully")
}

// RunRiskAnalysis handles the batch supplier risk assessment.
func (h *RiskHandler) RunRiskAnalysis(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	result, err := h.uc.RunRiskAnalysis(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Risk analysis completed")
}

// GetSuppliersWithRisk handles the assessed supplier listing.
func (h *RiskHandler) GetSuppliersWithRisk(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	listing, err := h.uc.GetSuppliersWithRisk(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "Supplier risk listing retrieved successfully")
}
