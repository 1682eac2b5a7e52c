// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"canopy/internal/domain/entity"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines persistence for the commodity catalogue.
type ProductRepository interface {
	// List retrieves catalogue products, optionally filtered by a substring
	// match on the name or category.
	List(ctx context.Context, search string, limit int) ([]*entity.Product, error)

	// Create persists a new catalogue product.
	Create(ctx context.Context, product *entity.Product) error
}
