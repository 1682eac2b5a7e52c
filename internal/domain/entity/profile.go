// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Certificate is a compliance certificate attached to an organization
// profile, e.g. FSC or Rainforest Alliance.
type Certificate struct {
	ID            uuid.UUID  // The Global Unique Identifier (GUID) for the certificate.
	ProfileID     uuid.UUID  // The organization profile this certificate belongs to.
	Name          string     // Certificate scheme name.
	Issuer        string     // Issuing body.
	ValidUntil    *time.Time // Expiry date; nil if open-ended.
	AttachmentKey string     // Blob storage key of the uploaded certificate document.
}

// OrganizationProfile is the public compliance profile of a customer or
// supplier organization, shown to counterparties in the directory.
type OrganizationProfile struct {
	ID                 uuid.UUID     // The Global Unique Identifier (GUID) for the profile.
	PartyRole          Role          // Whether the profile belongs to a customer or a supplier.
	PartyID            uuid.UUID     // The customer or supplier this profile describes.
	CompanyName        string        // Registered company name.
	RegistrationNumber string        // Company or EORI registration number.
	Address            string        // Registered street address.
	Country            string        // ISO country name of the registered seat.
	Website            string        // Public website URL.
	Description        string        // Free-form company description.
	DocsComplete       bool          // Whether all required compliance documents are on file.
	Certificates       []Certificate // Attached compliance certificates.
	CreatedAt          time.Time     // Timestamp of when this profile was created.
	UpdatedAt          time.Time     // Timestamp of the last modification.
}
