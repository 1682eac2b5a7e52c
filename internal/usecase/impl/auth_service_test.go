package impl

import (
	"context"
	"testing"

	"canopy/internal/domain/entity"
	domainerrors "canopy/internal/domain/errors"
	"canopy/internal/domain/repository"
	mockRepo "canopy/internal/mocks/repository"
	mockService "canopy/internal/mocks/service"
	"canopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	partyRepo    *mockRepo.MockPartyRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	partyRepo := mockRepo.NewMockPartyRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		PartyRepo:    partyRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       testLogger(),
	})

	return authServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		partyRepo:    partyRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "buyer@choco.example", PasswordHash: "$2a$hash"}
	customer := &entity.Customer{ID: uuid.New(), CompanyName: "Choco Imports"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("s3cret", user.PasswordHash).Return(true)
	fx.partyRepo.EXPECT().FindCustomerByUser(ctx, user.ID).Return(customer, nil)
	fx.partyRepo.EXPECT().FindSupplierByUser(ctx, user.ID).Return(nil, repository.ErrSupplierNotFound)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, []string{"customer"}).
		Return("access-token", "refresh-token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    user.Email,
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user, output.User)
	assert.Equal(t, entity.Roles{entity.RoleCustomer}, output.Roles)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "buyer@choco.example", PasswordHash: "$2a$hash"}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    user.Email,
		Password: "wrong",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_DisabledAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "old@choco.example", PasswordHash: "$2a$hash", Disabled: true}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("s3cret", user.PasswordHash).Return(true)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    user.Email,
		Password: "s3cret",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestAuthService_Me_DualLinkedUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "both@agro.example"}
	customer := &entity.Customer{ID: uuid.New()}
	supplier := &entity.Supplier{ID: uuid.New()}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.partyRepo.EXPECT().FindCustomerByUser(ctx, user.ID).Return(customer, nil)
	fx.partyRepo.EXPECT().FindSupplierByUser(ctx, user.ID).Return(supplier, nil)

	output, err := fx.service.Me(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, entity.Roles{entity.RoleCustomer, entity.RoleSupplier}, output.Roles)
	// Dual-linked users default to the customer view.
	assert.Equal(t, entity.RoleCustomer, output.Identity.PrimaryRole())
}
