// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"canopy/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when an organization profile is not found.
var ErrProfileNotFound = errors.New("organization profile not found")

// ProfileRepository defines persistence for organization profiles and
// their compliance certificates.
type ProfileRepository interface {
	// FindByParty retrieves the profile of a customer or supplier,
	// including certificates.
	FindByParty(ctx context.Context, role entity.Role, partyID uuid.UUID) (*entity.OrganizationProfile, error)

	// Upsert creates or replaces the profile for a party.
	Upsert(ctx context.Context, profile *entity.OrganizationProfile) error

	// AddCertificate attaches a certificate to a profile.
	AddCertificate(ctx context.Context, certificate *entity.Certificate) error

	// DeleteCertificate removes a certificate from a profile.
	DeleteCertificate(ctx context.Context, profileID, certificateID uuid.UUID) error
}
