// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a buying organization on the portal. Requests and
// questionnaires are always initiated by a customer.
type Customer struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the customer.
	CompanyName string    // The registered company name.
	Disabled    bool      // Disabled customers are hidden from directories and cannot act.
	CreatedAt   time.Time // Timestamp of when this customer was onboarded.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// Supplier is a producing organization on the portal. Land plots and
// questionnaire answers always belong to a supplier.
type Supplier struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the supplier.
	CompanyName string    // The registered company name.
	Disabled    bool      // Disabled suppliers are hidden from directories and cannot act.
	CreatedAt   time.Time // Timestamp of when this supplier was onboarded.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// Identity is the resolved acting context of a logged-in user: the customer
// and/or supplier organizations the account is linked to. A user may be
// linked to both; PrimaryRole decides which side drives default views.
type Identity struct {
	UserID   uuid.UUID // The account this identity was resolved for.
	Customer *Customer // Non-nil when the user is linked to a customer organization.
	Supplier *Supplier // Non-nil when the user is linked to a supplier organization.
}

// IsCustomer reports whether the identity can act as a customer.
func (i Identity) IsCustomer() bool {
	return i.Customer != nil
}

// IsSupplier reports whether the identity can act as a supplier.
func (i Identity) IsSupplier() bool {
	return i.Supplier != nil
}

// HasParty reports whether the identity is linked to any organization.
func (i Identity) HasParty() bool {
	return i.Customer != nil || i.Supplier != nil
}

// PrimaryRole returns the role that drives default dashboard views.
// A user linked only to a supplier is a supplier; anyone linked to a
// customer (including dual-linked users) defaults to the customer view.
func (i Identity) PrimaryRole() Role {
	if i.IsSupplier() && !i.IsCustomer() {
		return RoleSupplier
	}

	return RoleCustomer
}

// Roles returns every role the identity can act as.
func (i Identity) Roles() Roles {
	roles := make(Roles, 0, 2)
	if i.IsCustomer() {
		roles = append(roles, RoleCustomer)
	}
	if i.IsSupplier() {
		roles = append(roles, RoleSupplier)
	}

	return roles
}
