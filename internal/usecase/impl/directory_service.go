package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "canopy/internal/delivery/context"
	"canopy/internal/domain/entity"
	"canopy/internal/domain/repository"
	"canopy/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	partyRepo   repository.PartyRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// DirectoryServiceParams holds dependencies for directoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	PartyRepo   repository.PartyRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	return &directoryService{
		partyRepo:   params.PartyRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetSuppliers lists enabled suppliers, optionally filtered by company
// name. The repository clamps the limit.
func (srv *directoryService) GetSuppliers(ctx context.Context, search string, limit int) ([]*entity.Supplier, error) {
	suppliers, err := srv.partyRepo.SearchSuppliers(ctx, strings.TrimSpace(search), limit)
	if err != nil {
		srv.log(ctx).Error("Supplier search failed", slog.String("search", search), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search suppliers")
	}

	return suppliers, nil
}

// GetProducts lists catalogue products, optionally filtered by name or
// category.
func (srv *directoryService) GetProducts(ctx context.Context, search string, limit int) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx, strings.TrimSpace(search), limit)
	if err != nil {
		srv.log(ctx).Error("Product search failed", slog.String("search", search), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}
