package usecase

import (
	"context"
	"time"

	"canopy/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveProfileInput carries the editable organization profile fields.
type SaveProfileInput struct {
	CompanyName        string `json:"company_name"`
	RegistrationNumber string `json:"registration_number"`
	Address            string `json:"address"`
	Country            string `json:"country"`
	Website            string `json:"website"`
	Description        string `json:"description"`
	DocsComplete       *bool  `json:"docs_complete,omitempty"`
}

// AddCertificateInput carries one new compliance certificate.
type AddCertificateInput struct {
	Name          string     `json:"name"`
	Issuer        string     `json:"issuer"`
	ValidUntil    *time.Time `json:"valid_until,omitempty"`
	AttachmentKey string     `json:"attachment_key"`
}

// ContactProfile is the compact contact-person document on the account.
type ContactProfile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	JobTitle  string `json:"job_title"`
}

// ProfileUsecase defines the interface for organization and contact
// profile management.
type ProfileUsecase interface {
	// GetOrganizationProfile returns the caller's organization profile.
	GetOrganizationProfile(ctx context.Context, userID uuid.UUID) (*entity.OrganizationProfile, error)

	// SaveOrganizationProfile creates or updates the caller's organization
	// profile.
	SaveOrganizationProfile(ctx context.Context, userID uuid.UUID, input SaveProfileInput) (*entity.OrganizationProfile, error)

	// AddCertificate attaches a compliance certificate to the caller's
	// organization profile. The profile must exist.
	AddCertificate(ctx context.Context, userID uuid.UUID, input AddCertificateInput) (*entity.Certificate, error)

	// DeleteCertificate removes a certificate from the caller's profile.
	DeleteCertificate(ctx context.Context, userID, certificateID uuid.UUID) error

	// GetContactProfile returns the caller's contact-person details.
	GetContactProfile(ctx context.Context, userID uuid.UUID) (*ContactProfile, error)

	// UpdateContactProfile updates the caller's contact-person details.
	UpdateContactProfile(ctx context.Context, userID uuid.UUID, input ContactProfile) (*ContactProfile, error)
}
