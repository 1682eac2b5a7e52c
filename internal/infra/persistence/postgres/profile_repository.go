package postgres

import (
	"context"

	"canopy/internal/domain/entity"
	domainerrors "canopy/internal/domain/errors"
	"canopy/internal/domain/repository"
	"canopy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByParty retrieves the profile of a customer or supplier, including
// certificates.
func (repo *profileRepository) FindByParty(ctx context.Context, role entity.Role, partyID uuid.UUID) (*entity.OrganizationProfile, error) {
	var profileM model.OrganizationProfileModel

	if err := repo.db.WithContext(ctx).
		Where("party_role = ? AND party_id = ?", role.String(), partyID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find organization profile")
	}

	profile := toProfileDomain(&profileM)

	var certModels []*model.CertificateModel
	if err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileM.ID).
		Order("created_at ASC").
		Find(&certModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load profile certificates")
	}
	for _, certM := range certModels {
		profile.Certificates = append(profile.Certificates, *toCertificateDomain(certM))
	}

	return profile, nil
}

// Upsert creates or replaces the profile for a party.
func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.OrganizationProfile) error {
	profileM := fromProfileDomain(profile)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "party_role"}, {Name: "party_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"company_name",
				"registration_number",
				"address",
				"country",
				"website",
				"description",
				"docs_complete",
				"updated_at",
			}),
		}).
		Create(profileM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert organization profile")
	}

	profile.ID = profileM.ID
	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// AddCertificate attaches a certificate to a profile.
func (repo *profileRepository) AddCertificate(ctx context.Context, certificate *entity.Certificate) error {
	certM := fromCertificateDomain(certificate)

	if err := repo.db.WithContext(ctx).Create(certM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProfileNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add certificate")
	}

	certificate.ID = certM.ID

	return nil
}

// DeleteCertificate removes a certificate from a profile.
func (repo *profileRepository) DeleteCertificate(ctx context.Context, profileID, certificateID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", certificateID, profileID).
		Delete(&model.CertificateModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete certificate")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound.WrapMessage("certificate not found")
	}

	return nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM OrganizationProfileModel to a domain entity.
func toProfileDomain(data *model.OrganizationProfileModel) *entity.OrganizationProfile {
	if data == nil {
		return nil
	}

	return &entity.OrganizationProfile{
		ID:                 data.ID,
		PartyRole:          entity.Role(data.PartyRole),
		PartyID:            data.PartyID,
		CompanyName:        data.CompanyName,
		RegistrationNumber: data.RegistrationNumber,
		Address:            data.Address,
		Country:            data.Country,
		Website:            data.Website,
		Description:        data.Description,
		DocsComplete:       data.DocsComplete,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain entity to a GORM OrganizationProfileModel.
func fromProfileDomain(data *entity.OrganizationProfile) *model.OrganizationProfileModel {
	if data == nil {
		return nil
	}

	return &model.OrganizationProfileModel{
		ID:                 data.ID,
		PartyRole:          data.PartyRole.String(),
		PartyID:            data.PartyID,
		CompanyName:        data.CompanyName,
		RegistrationNumber: data.RegistrationNumber,
		Address:            data.Address,
		Country:            data.Country,
		Website:            data.Website,
		Description:        data.Description,
		DocsComplete:       data.DocsComplete,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// toCertificateDomain converts a GORM CertificateModel to a domain Certificate.
func toCertificateDomain(data *model.CertificateModel) *entity.Certificate {
	if data == nil {
		return nil
	}

	return &entity.Certificate{
		ID:            data.ID,
		ProfileID:     data.ProfileID,
		Name:          data.Name,
		Issuer:        data.Issuer,
		ValidUntil:    data.ValidUntil,
		AttachmentKey: data.AttachmentKey,
	}
}

// fromCertificateDomain converts a domain Certificate to a GORM CertificateModel.
func fromCertificateDomain(data *entity.Certificate) *model.CertificateModel {
	if data == nil {
		return nil
	}

	return &model.CertificateModel{
		ID:            data.ID,
		ProfileID:     data.ProfileID,
		Name:          data.Name,
		Issuer:        data.Issuer,
		ValidUntil:    data.ValidUntil,
		AttachmentKey: data.AttachmentKey,
	}
}
