package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "canopy/internal/delivery/context"
	"canopy/internal/domain/entity"
	domainerrors "canopy/internal/domain/errors"
	"canopy/internal/domain/repository"
	"canopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	partyRepo   repository.PartyRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	PartyRepo   repository.PartyRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		partyRepo:   params.PartyRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetOrganizationProfile returns the caller's organization profile.
func (srv *profileService) GetOrganizationProfile(ctx context.Context, userID uuid.UUID) (*entity.OrganizationProfile, error) {
	role, partyID, err := srv.resolveParty(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := srv.profileRepo.FindByParty(ctx, role, partyID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load organization profile")
	}

	return profile, nil
}

// SaveOrganizationProfile creates or updates the caller's organization
// profile.
func (srv *profileService) SaveOrganizationProfile(ctx context.Context, userID uuid.UUID, input usecase.SaveProfileInput) (*entity.OrganizationProfile, error) {
	role, partyID, err := srv.resolveParty(ctx, userID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.CompanyName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("company name is required")
	}

	docsComplete := false
	if input.DocsComplete != nil {
		docsComplete = *input.DocsComplete
	} else if existing, findErr := srv.profileRepo.FindByParty(ctx, role, partyID); findErr == nil {
		docsComplete = existing.DocsComplete
	}

	profile := &entity.OrganizationProfile{
		PartyRole:          role,
		PartyID:            partyID,
		CompanyName:        input.CompanyName,
		RegistrationNumber: input.RegistrationNumber,
		Address:            input.Address,
		Country:            input.Country,
		Website:            input.Website,
		Description:        input.Description,
		DocsComplete:       docsComplete,
	}

	if err := srv.profileRepo.Upsert(ctx, profile); err != nil {
		srv.log(ctx).Error("Failed to save organization profile", slog.Any("partyID", partyID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save organization profile")
	}

	srv.log(ctx).Info("Organization profile saved", slog.String("role", string(role)), slog.Any("partyID", partyID))

	return profile, nil
}

// AddCertificate attaches a compliance certificate to the caller's
// organization profile. The profile must exist first.
func (srv *profileService) AddCertificate(ctx context.Context, userID uuid.UUID, input usecase.AddCertificateInput) (*entity.Certificate, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("certificate name is required")
	}

	profile, err := srv.GetOrganizationProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	certificate := &entity.Certificate{
		ProfileID:     profile.ID,
		Name:          input.Name,
		Issuer:        input.Issuer,
		ValidUntil:    input.ValidUntil,
		AttachmentKey: input.AttachmentKey,
	}

	if err := srv.profileRepo.AddCertificate(ctx, certificate); err != nil {
		return nil, errors.Wrap(err, "failed to add certificate")
	}

	srv.log(ctx).Info("Certificate added", slog.Any("profileID", profile.ID), slog.String("name", certificate.Name))

	return certificate, nil
}

// DeleteCertificate removes a certificate from the caller's profile.
func (srv *profileService) DeleteCertificate(ctx context.Context, userID, certificateID uuid.UUID) error {
	profile, err := srv.GetOrganizationProfile(ctx, userID)
	if err != nil {
		return err
	}

	if err := srv.profileRepo.DeleteCertificate(ctx, profile.ID, certificateID); err != nil {
		return errors.Wrap(err, "failed to delete certificate")
	}

	return nil
}

// GetContactProfile returns the caller's contact-person details.
func (srv *profileService) GetContactProfile(ctx context.Context, userID uuid.UUID) (*usecase.ContactProfile, error) {
	user, err := srv.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return contactProfileFromUser(user), nil
}

// UpdateContactProfile updates the caller's contact-person details. The
// account email is the login identifier and is not editable here.
func (srv *profileService) UpdateContactProfile(ctx context.Context, userID uuid.UUID, input usecase.ContactProfile) (*usecase.ContactProfile, error) {
	user, err := srv.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Phone = input.Phone
	user.JobTitle = input.JobTitle

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update contact profile")
	}

	srv.log(ctx).Info("Contact profile updated", slog.Any("userID", userID))

	return contactProfileFromUser(user), nil
}

// resolveParty picks the party the caller's profile belongs to, using the
// same role preference as the dashboards.
func (srv *profileService) resolveParty(ctx context.Context, userID uuid.UUID) (entity.Role, uuid.UUID, error) {
	identity, err := resolveIdentity(ctx, srv.partyRepo, userID)
	if err != nil {
		return "", uuid.Nil, err
	}
	if !identity.HasParty() {
		return "", uuid.Nil, errors.Wrap(domainerrors.ErrNoPartyLinked, "no organization to manage a profile for")
	}

	if identity.PrimaryRole() == entity.RoleSupplier {
		return entity.RoleSupplier, identity.Supplier.ID, nil
	}

	return entity.RoleCustomer, identity.Customer.ID, nil
}

func (srv *profileService) loadUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "account lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

func contactProfileFromUser(user *entity.User) *usecase.ContactProfile {
	return &usecase.ContactProfile{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
		JobTitle:  user.JobTitle,
	}
}
