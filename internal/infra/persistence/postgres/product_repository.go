package postgres

import (
	"context"

	"canopy/internal/domain/entity"
	domainerrors "canopy/internal/domain/errors"
	"canopy/internal/domain/repository"
	"canopy/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultProductListLimit = 100

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// List retrieves catalogue products, optionally filtered by a substring
// match on the name or category.
func (repo *productRepository) List(ctx context.Context, search string, limit int) ([]*entity.Product, error) {
	if limit <= 0 {
		limit = defaultProductListLimit
	}

	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if search != "" {
		pattern := containsPattern(search)
		query = query.Where("name ILIKE ? OR category ILIKE ?", pattern, pattern)
	}

	var productModels []*model.ProductModel
	if err := query.
		Order("name ASC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Create persists a new catalogue product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("product name already in the catalogue")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Category:    data.Category,
		HSCode:      data.HSCode,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Category:    data.Category,
		HSCode:      data.HSCode,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
