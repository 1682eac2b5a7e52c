package impl

import (
	"context"
	"testing"

	"canopy/internal/domain/entity"
	domainerrors "canopy/internal/domain/errors"
	"canopy/internal/domain/repository"
	mockRepo "canopy/internal/mocks/repository"
	"canopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
	partyRepo   *mockRepo.MockPartyRepository
	userRepo    *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	partyRepo := mockRepo.NewMockPartyRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewProfileService(ProfileServiceParams{
		ProfileRepo: profileRepo,
		PartyRepo:   partyRepo,
		UserRepo:    userRepo,
		Logger:      testLogger(),
	})

	return profileServiceFixtures{
		service:     service,
		profileRepo: profileRepo,
		partyRepo:   partyRepo,
		userRepo:    userRepo,
	}
}

func (f profileServiceFixtures) expectSupplierUser(ctx context.Context, userID uuid.UUID, supplier *entity.Supplier) {
	f.partyRepo.EXPECT().FindCustomerByUser(ctx, userID).Return(nil, repository.ErrCustomerNotFound)
	f.partyRepo.EXPECT().FindSupplierByUser(ctx, userID).Return(supplier, nil)
}

func TestProfileService_GetOrganizationProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New(), CompanyName: "Cacao Coop"}
	profile := &entity.OrganizationProfile{
		ID:          uuid.New(),
		PartyRole:   entity.RoleSupplier,
		PartyID:     supplier.ID,
		CompanyName: "Cacao Coop",
	}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.profileRepo.EXPECT().FindByParty(ctx, entity.RoleSupplier, supplier.ID).Return(profile, nil)

	got, err := fx.service.GetOrganizationProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestProfileService_GetOrganizationProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.profileRepo.EXPECT().
		FindByParty(ctx, entity.RoleSupplier, supplier.ID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.GetOrganizationProfile(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_SaveOrganizationProfile_Upserts(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	docsComplete := true

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.profileRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.OrganizationProfile")).Return(nil)

	profile, err := fx.service.SaveOrganizationProfile(ctx, userID, usecase.SaveProfileInput{
		CompanyName:        "Cacao Coop",
		RegistrationNumber: "PE-20481234567",
		Country:            "Peru",
		DocsComplete:       &docsComplete,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleSupplier, profile.PartyRole)
	assert.Equal(t, supplier.ID, profile.PartyID)
	assert.Equal(t, "Cacao Coop", profile.CompanyName)
	assert.True(t, profile.DocsComplete)
}

func TestProfileService_SaveOrganizationProfile_CompanyNameRequired(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.expectSupplierUser(ctx, userID, &entity.Supplier{ID: uuid.New()})

	_, err := fx.service.SaveOrganizationProfile(ctx, userID, usecase.SaveProfileInput{
		CompanyName: "   ",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestProfileService_SaveOrganizationProfile_KeepsStoredDocsFlag(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	existing := &entity.OrganizationProfile{
		PartyRole:    entity.RoleSupplier,
		PartyID:      supplier.ID,
		CompanyName:  "Cacao Coop",
		DocsComplete: true,
	}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.profileRepo.EXPECT().FindByParty(ctx, entity.RoleSupplier, supplier.ID).Return(existing, nil)
	fx.profileRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.OrganizationProfile")).Return(nil)

	profile, err := fx.service.SaveOrganizationProfile(ctx, userID, usecase.SaveProfileInput{
		CompanyName: "Cacao Coop SAC",
	})

	require.NoError(t, err)
	assert.True(t, profile.DocsComplete)
}

func TestProfileService_AddCertificate_RequiresProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.profileRepo.EXPECT().
		FindByParty(ctx, entity.RoleSupplier, supplier.ID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := fx.service.AddCertificate(ctx, userID, usecase.AddCertificateInput{
		Name: "FSC Chain of Custody",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_AddCertificate(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	supplier := &entity.Supplier{ID: uuid.New()}
	profile := &entity.OrganizationProfile{ID: uuid.New(), PartyRole: entity.RoleSupplier, PartyID: supplier.ID}

	fx.expectSupplierUser(ctx, userID, supplier)
	fx.profileRepo.EXPECT().FindByParty(ctx, entity.RoleSupplier, supplier.ID).Return(profile, nil)
	fx.profileRepo.EXPECT().AddCertificate(ctx, mock.AnythingOfType("*entity.Certificate")).Return(nil)

	certificate, err := fx.service.AddCertificate(ctx, userID, usecase.AddCertificateInput{
		Name:   "Rainforest Alliance",
		Issuer: "RA",
	})

	require.NoError(t, err)
	assert.Equal(t, profile.ID, certificate.ProfileID)
	assert.Equal(t, "Rainforest Alliance", certificate.Name)
}

func TestProfileService_UpdateContactProfile_KeepsEmail(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:    uuid.New(),
		Email: "maria@coop.example",
	}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	contact, err := fx.service.UpdateContactProfile(ctx, user.ID, usecase.ContactProfile{
		FirstName: "Maria",
		LastName:  "Quispe",
		Email:     "hijack@example.com",
		Phone:     "+51 999 111 222",
		JobTitle:  "Compliance Lead",
	})

	require.NoError(t, err)
	assert.Equal(t, "Maria", contact.FirstName)
	assert.Equal(t, "maria@coop.example", contact.Email)
	assert.Equal(t, "Compliance Lead", contact.JobTitle)
}
