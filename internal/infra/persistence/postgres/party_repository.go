// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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
)

// Directory queries are capped so a wildcard search cannot pull the whole
// supplier table into one response.
const (
	defaultDirectoryLimit = 100
	maxDirectoryLimit     = 500
)

// partyRepository implements the repository.PartyRepository interface.
type partyRepository struct {
	db *gorm.DB
}

// NewPartyRepository is the constructor for partyRepository.
func NewPartyRepository(db *gorm.DB) repository.PartyRepository {
	return &partyRepository{
		db: db,
	}
}

// FindCustomerByID retrieves a customer by its unique ID.
func (repo *partyRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

// FindSupplierByID retrieves a supplier by its unique ID.
func (repo *partyRepository) FindSupplierByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	var supplierM model.SupplierModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&supplierM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier by ID")
	}

	return toSupplierDomain(&supplierM), nil
}

// FindCustomerByUser resolves the customer organization a user account is linked to.
func (repo *partyRepository) FindCustomerByUser(ctx context.Context, userID uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN customer_users ON customer_users.customer_id = customers.id").
		Where("customer_users.user_id = ? AND customers.disabled = ?", userID, false).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve customer for user")
	}

	return toCustomerDomain(&customerM), nil
}

// FindSupplierByUser resolves the supplier organization a user account is linked to.
func (repo *partyRepository) FindSupplierByUser(ctx context.Context, userID uuid.UUID) (*entity.Supplier, error) {
	var supplierM model.SupplierModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN supplier_users ON supplier_users.supplier_id = suppliers.id").
		Where("supplier_users.user_id = ? AND suppliers.disabled = ?", userID, false).
		First(&supplierM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve supplier for user")
	}

	return toSupplierDomain(&supplierM), nil
}

// clampDirectoryLimit keeps directory page sizes within sane bounds: a
// missing or non-positive limit falls back to the default, oversized
// requests are capped.
func clampDirectoryLimit(limit int) int {
	if limit <= 0 {
		return defaultDirectoryLimit
	}
	if limit > maxDirectoryLimit {
		return maxDirectoryLimit
	}

	return limit
}

// containsPattern builds the ILIKE substring pattern for a search term.
func containsPattern(search string) string {
	return "%" + search + "%"
}

// SearchSuppliers lists enabled suppliers that have at least one linked user.
func (repo *partyRepository) SearchSuppliers(ctx context.Context, search string, limit int) ([]*entity.Supplier, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.SupplierModel{}).
		Joins("JOIN supplier_users ON supplier_users.supplier_id = suppliers.id").
		Where("suppliers.disabled = ?", false).
		Group("suppliers.id")

	if search != "" {
		query = query.Where("suppliers.company_name ILIKE ?", containsPattern(search))
	}

	var supplierModels []*model.SupplierModel
	if err := query.
		Order("suppliers.company_name ASC").
		Limit(clampDirectoryLimit(limit)).
		Find(&supplierModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search suppliers")
	}

	suppliers := make([]*entity.Supplier, 0, len(supplierModels))
	for _, supplierM := range supplierModels {
		suppliers = append(suppliers, toSupplierDomain(supplierM))
	}

	return suppliers, nil
}

// CreateCustomer persists a new customer organization.
func (repo *partyRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// CreateSupplier persists a new supplier organization.
func (repo *partyRepository) CreateSupplier(ctx context.Context, supplier *entity.Supplier) error {
	supplierM := fromSupplierDomain(supplier)

	if err := repo.db.WithContext(ctx).Create(supplierM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create supplier")
	}

	supplier.ID = supplierM.ID
	supplier.CreatedAt = supplierM.CreatedAt
	supplier.UpdatedAt = supplierM.UpdatedAt

	return nil
}

// LinkUserToCustomer attaches a user account to a customer organization.
func (repo *partyRepository) LinkUserToCustomer(ctx context.Context, userID, customerID uuid.UUID) error {
	link := &model.CustomerUserModel{CustomerID: customerID, UserID: userID}

	if err := repo.db.WithContext(ctx).Create(link).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Already linked, nothing to do.
			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCustomerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to link user to customer")
	}

	return nil
}

// LinkUserToSupplier attaches a user account to a supplier organization.
func (repo *partyRepository) LinkUserToSupplier(ctx context.Context, userID, supplierID uuid.UUID) error {
	link := &model.SupplierUserModel{SupplierID: supplierID, UserID: userID}

	if err := repo.db.WithContext(ctx).Create(link).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSupplierNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to link user to supplier")
	}

	return nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:          data.ID,
		CompanyName: data.CompanyName,
		Disabled:    data.Disabled,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:          data.ID,
		CompanyName: data.CompanyName,
		Disabled:    data.Disabled,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toSupplierDomain converts a GORM SupplierModel to a domain Supplier entity.
func toSupplierDomain(data *model.SupplierModel) *entity.Supplier {
	if data == nil {
		return nil
	}

	return &entity.Supplier{
		ID:          data.ID,
		CompanyName: data.CompanyName,
		Disabled:    data.Disabled,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromSupplierDomain converts a domain Supplier entity to a GORM SupplierModel.
func fromSupplierDomain(data *entity.Supplier) *model.SupplierModel {
	if data == nil {
		return nil
	}

	return &model.SupplierModel{
		ID:          data.ID,
		CompanyName: data.CompanyName,
		Disabled:    data.Disabled,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
