package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"canopy/internal/delivery/http/response"
	"canopy/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DirectoryHandler holds dependencies for the supplier and product directories.
type DirectoryHandler struct {
	uc     usecase.DirectoryUsecase
	logger *slog.Logger
}

// NewDirectoryHandler is the constructor for DirectoryHandler, injected by Fx.
func NewDirectoryHandler(uc usecase.DirectoryUsecase, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetSuppliers handles listing enabled suppliers.
func (h *DirectoryHandler) GetSuppliers(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	suppliers, err := h.uc.GetSuppliers(c.Request().Context(), c.QueryParam("search"), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suppliers, "Suppliers retrieved successfully")
}

// GetProducts handles listing catalogue products.
func (h *DirectoryHandler) GetProducts(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	products, err := h.uc.GetProducts(c.Request().Context(), c.QueryParam("search"), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}
