// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"canopy/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
	Roles        entity.Roles
}

// MeOutput describes the current account and its resolved parties.
type MeOutput struct {
	User     *entity.User
	Identity *entity.Identity
	Roles    entity.Roles
}

// AuthUsecase defines the interface for authentication-related business
// operations. This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// Login verifies credentials and issues access and refresh tokens.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Me returns the current account with its resolved party links.
	Me(ctx context.Context, userID uuid.UUID) (*MeOutput, error)
}
