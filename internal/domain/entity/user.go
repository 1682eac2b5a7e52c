// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique portal account.
// It contains only identity information; the organizations a user acts for are
// resolved separately into an Identity.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The user's primary contact email, used as the login identifier.
	Name         string    // The user's display name or real name.
	PasswordHash string    // Bcrypt hash of the user's password.
	FirstName    string    // Contact first name shown on the profile page.
	LastName     string    // Contact last name shown on the profile page.
	Phone        string    // Contact phone number.
	JobTitle     string    // Contact job title within the organization.
	Disabled     bool      // Disabled accounts cannot log in or be resolved to a party.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}
