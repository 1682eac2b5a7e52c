package handler

import (
	"log/slog"
	"net/http"

	"canopy/internal/delivery/http/response"
	"canopy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LandPlotHandler holds dependencies for land plot registry handlers.
type LandPlotHandler struct {
	uc     usecase.LandPlotUsecase
	logger *slog.Logger
}

// NewLandPlotHandler is the constructor for LandPlotHandler, injected by Fx.
func NewLandPlotHandler(uc usecase.LandPlotUsecase, logger *slog.Logger) *LandPlotHandler {
	return &LandPlotHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateLandPlot handles registering a single land plot.
func (h *LandPlotHandler) CreateLandPlot(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.CreateLandPlotInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid land plot input")
	}

	plot, err := h.uc.CreateLandPlot(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, plot, "Land plot registered successfully")
}

// bulkCreateRequest wraps the items of a bulk plot import.
type bulkCreateRequest struct {
	Plots []usecase.CreateLandPlotInput `json:"plots"`
}

// BulkCreateLandPlots handles a bulk plot import. Each item succeeds or
// fails on its own.
func (h *LandPlotHandler) BulkCreateLandPlots(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input bulkCreateRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk import input")
	}

	result, err := h.uc.BulkCreateLandPlots(c.Request().Context(), userID, input.Plots)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Bulk import processed")
}

// ListLandPlots handles listing the caller's registered plots.
func (h *LandPlotHandler) ListLandPlots(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	plots, err := h.uc.ListLandPlots(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plots, "Land plots retrieved successfully")
}

// GetLandPlot handles fetching one owned plot.
func (h *LandPlotHandler) GetLandPlot(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	plot, err := h.uc.GetLandPlot(c.Request().Context(), userID, c.Param("plotID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plot, "Land plot retrieved successfully")
}

// UpdateLandPlot handles merging field changes into an owned plot.
func (h *LandPlotHandler) UpdateLandPlot(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.UpdateLandPlotInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid land plot input")
	}
	input.PlotID = c.Param("plotID")

	plot, err := h.uc.UpdateLandPlot(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plot, "Land plot updated successfully")
}

// RecalculateAnalysis handles rerunning the deforestation analysis for an
// owned plot.
func (h *LandPlotHandler) RecalculateAnalysis(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	plot, err := h.uc.RecalculateAnalysis(c.Request().Context(), userID, c.Param("plotID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plot, "Deforestation analysis updated")
}

// DeleteLandPlot handles removing an owned plot.
func (h *LandPlotHandler) DeleteLandPlot(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.uc.DeleteLandPlot(c.Request().Context(), userID, c.Param("plotID")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"plot_id": c.Param("plotID")}, "Land plot deleted successfully")
}

// PlotQRCode renders the traceability QR code PNG for an owned plot.
func (h *LandPlotHandler) PlotQRCode(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	png, err := h.uc.PlotQRCode(c.Request().Context(), userID, c.Param("plotID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
