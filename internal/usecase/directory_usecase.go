package usecase

import (
	"context"

	"canopy/internal/domain/entity"
)

// DirectoryUsecase defines the interface for the supplier and product
// directories available to authenticated users.
type DirectoryUsecase interface {
	// GetSuppliers lists enabled suppliers, optionally filtered by a
	// case-insensitive company name match. The limit is capped at 500.
	GetSuppliers(ctx context.Context, search string, limit int) ([]*entity.Supplier, error)

	// GetProducts lists catalogue products, optionally filtered by a
	// name or category match.
	GetProducts(ctx context.Context, search string, limit int) ([]*entity.Product, error)
}
