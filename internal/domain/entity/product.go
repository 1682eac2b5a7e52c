// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a tradeable commodity in the portal catalogue, referenced by
// purchase order lines and land plot production data.
type Product struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the product.
	Name        string    // Commodity name, e.g. "Cocoa beans".
	Category    string    // Commodity category, e.g. "Cocoa".
	HSCode      string    // Harmonized System customs code.
	Description string    // Free-form product description.
	CreatedAt   time.Time // Timestamp of when this product was added.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
