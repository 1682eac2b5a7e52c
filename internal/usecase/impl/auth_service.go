package impl

import (
	"context"
	"log/slog"

	deliverycontext "canopy/internal/delivery/context"
	domainerrors "canopy/internal/domain/errors"
	"canopy/internal/domain/repository"
	"canopy/internal/domain/service"
	"canopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	partyRepo    repository.PartyRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	PartyRepo    repository.PartyRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		partyRepo:    params.PartyRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials and issues access and refresh tokens.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// Check password before anything else leaks account state.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if user.Disabled {
		srv.log(ctx).Warn("Login rejected for disabled account", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrAccountDisabled, "login failed")
	}

	identity, err := resolveIdentity(ctx, srv.partyRepo, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve identity during login")
	}
	roles := identity.Roles()

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, roles.ToStrings())
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
		Roles:        roles,
	}, nil
}

// Me returns the current account with its resolved party links.
func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*usecase.MeOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	identity, err := resolveIdentity(ctx, srv.partyRepo, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve identity")
	}

	return &usecase.MeOutput{
		User:     user,
		Identity: identity,
		Roles:    identity.Roles(),
	}, nil
}
