// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"canopy/internal/domain/entity"
	domainerrors "canopy/internal/domain/errors"
	"canopy/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// resolveIdentity maps a user account to the customer and/or supplier
// organizations it is linked to. A user with no links resolves to an empty
// identity, never an error; callers decide whether that is a permission
// failure for the operation at hand.
func resolveIdentity(ctx context.Context, partyRepo repository.PartyRepository, userID uuid.UUID) (*entity.Identity, error) {
	identity := &entity.Identity{UserID: userID}

	customer, err := partyRepo.FindCustomerByUser(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrCustomerNotFound) {
		return nil, errors.Wrap(err, "failed to resolve customer link")
	}
	identity.Customer = customer

	supplier, err := partyRepo.FindSupplierByUser(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrSupplierNotFound) {
		return nil, errors.Wrap(err, "failed to resolve supplier link")
	}
	identity.Supplier = supplier

	return identity, nil
}

// requireCustomer resolves the caller's customer organization or fails with
// a permission error.
func requireCustomer(ctx context.Context, partyRepo repository.PartyRepository, userID uuid.UUID) (*entity.Customer, error) {
	identity, err := resolveIdentity(ctx, partyRepo, userID)
	if err != nil {
		return nil, err
	}
	if !identity.IsCustomer() {
		return nil, errors.Wrap(domainerrors.ErrNotACustomer, "caller has no customer organization")
	}

	return identity.Customer, nil
}

// requireSupplier resolves the caller's supplier organization or fails with
// a permission error.
func requireSupplier(ctx context.Context, partyRepo repository.PartyRepository, userID uuid.UUID) (*entity.Supplier, error) {
	identity, err := resolveIdentity(ctx, partyRepo, userID)
	if err != nil {
		return nil, err
	}
	if !identity.IsSupplier() {
		return nil, errors.Wrap(domainerrors.ErrNotASupplier, "caller has no supplier organization")
	}

	return identity.Supplier, nil
}
