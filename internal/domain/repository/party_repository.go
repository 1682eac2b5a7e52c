// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"canopy/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for party persistence.
var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrSupplierNotFound is returned when a supplier is not found.
	ErrSupplierNotFound = errors.New("supplier not found")
)

// PartyRepository defines persistence for customer and supplier
// organizations and their links to portal user accounts.
type PartyRepository interface {
	// FindCustomerByID retrieves a customer by its unique ID.
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindSupplierByID retrieves a supplier by its unique ID.
	FindSupplierByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)

	// FindCustomerByUser resolves the customer organization a user account
	// is linked to. Returns ErrCustomerNotFound when the user has no
	// customer link or the customer is disabled.
	FindCustomerByUser(ctx context.Context, userID uuid.UUID) (*entity.Customer, error)

	// FindSupplierByUser resolves the supplier organization a user account
	// is linked to. Returns ErrSupplierNotFound when the user has no
	// supplier link or the supplier is disabled.
	FindSupplierByUser(ctx context.Context, userID uuid.UUID) (*entity.Supplier, error)

	// SearchSuppliers lists enabled suppliers that have at least one linked
	// user, optionally filtered by a substring match on the company name.
	// The limit is capped by the implementation.
	SearchSuppliers(ctx context.Context, search string, limit int) ([]*entity.Supplier, error)

	// CreateCustomer persists a new customer organization.
	CreateCustomer(ctx context.Context, customer *entity.Customer) error

	// CreateSupplier persists a new supplier organization.
	CreateSupplier(ctx context.Context, supplier *entity.Supplier) error

	// LinkUserToCustomer attaches a user account to a customer organization.
	LinkUserToCustomer(ctx context.Context, userID, customerID uuid.UUID) error

	// LinkUserToSupplier attaches a user account to a supplier organization.
	LinkUserToSupplier(ctx context.Context, userID, supplierID uuid.UUID) error
}
