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

// landPlotRepository implements the repository.LandPlotRepository interface.
type landPlotRepository struct {
	db *gorm.DB
}

// NewLandPlotRepository is the constructor for landPlotRepository.
func NewLandPlotRepository(db *gorm.DB) repository.LandPlotRepository {
	return &landPlotRepository{
		db: db,
	}
}

// Create persists a new land plot.
func (repo *landPlotRepository) Create(ctx context.Context, plot *entity.LandPlot) error {
	plotM := fromLandPlotDomain(plot)
	plotM.ID = uuid.New()

	if err := repo.db.WithContext(ctx).Create(plotM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("plot identifier already in use")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSupplierNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create land plot")
	}

	plot.CreatedAt = plotM.CreatedAt
	plot.UpdatedAt = plotM.UpdatedAt

	return nil
}

// CreateBatch persists several plots at once, used by bulk import.
func (repo *landPlotRepository) CreateBatch(ctx context.Context, plots []*entity.LandPlot) error {
	if len(plots) == 0 {
		return nil
	}

	plotModels := make([]*model.LandPlotModel, 0, len(plots))
	for _, plot := range plots {
		plotM := fromLandPlotDomain(plot)
		plotM.ID = uuid.New()
		plotModels = append(plotModels, plotM)
	}

	if err := repo.db.WithContext(ctx).Create(&plotModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("plot identifier already in use")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSupplierNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create land plots")
	}

	return nil
}

// FindByID retrieves a plot by its identifier within the supplier's
// namespace.
func (repo *landPlotRepository) FindByID(ctx context.Context, supplierID uuid.UUID, plotID string) (*entity.LandPlot, error) {
	var plotM model.LandPlotModel

	if err := repo.db.WithContext(ctx).
		Where("supplier_id = ? AND plot_id = ?", supplierID, plotID).
		First(&plotM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlotNotFound
		}

		return nil, errors.Wrap(err, "failed to find land plot by ID")
	}

	return toLandPlotDomain(&plotM), nil
}

// FindBySupplier retrieves all plots registered by a supplier, newest first.
func (repo *landPlotRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.LandPlot, error) {
	var plotModels []*model.LandPlotModel

	if err := repo.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("created_at DESC").
		Find(&plotModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list land plots for supplier")
	}

	plots := make([]*entity.LandPlot, 0, len(plotModels))
	for _, plotM := range plotModels {
		plots = append(plots, toLandPlotDomain(plotM))
	}

	return plots, nil
}

// ExistsID reports whether a plot identifier is already taken within the
// supplier's namespace.
func (repo *landPlotRepository) ExistsID(ctx context.Context, supplierID uuid.UUID, id string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LandPlotModel{}).
		Where("supplier_id = ? AND plot_id = ?", supplierID, id).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check plot identifier")
	}

	return count > 0, nil
}

// Update persists plot field and boundary changes.
func (repo *landPlotRepository) Update(ctx context.Context, plot *entity.LandPlot) error {
	plotM := fromLandPlotDomain(plot)

	result := repo.db.WithContext(ctx).
		Model(&model.LandPlotModel{}).
		Where("supplier_id = ? AND plot_id = ?", plot.SupplierID, plot.ID).
		Updates(map[string]any{
			"plot_name":    plotM.PlotName,
			"farmer_name":  plotM.FarmerName,
			"products":     plotM.Products,
			"area_ha":      plotM.AreaHa,
			"boundary":     plotM.Boundary,
			"geo_complete": plotM.GeoComplete,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update land plot")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlotNotFound
	}

	return nil
}

// UpdateAnalysis stores a fresh analysis result for a plot.
func (repo *landPlotRepository) UpdateAnalysis(ctx context.Context, supplierID uuid.UUID, plotID string, analysis *entity.DeforestationAnalysis) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LandPlotModel{}).
		Where("supplier_id = ? AND plot_id = ?", supplierID, plotID).
		Updates(map[string]any{
			"forest_area_ha":    analysis.ForestAreaHa,
			"loss_area_ha":      analysis.LossAreaHa,
			"deforestation_pct": analysis.DeforestationPct,
			"forest_tile_url":   analysis.ForestTileURL,
			"loss_tile_url":     analysis.LossTileURL,
			"analyzed_at":       analysis.AnalyzedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to store plot analysis")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlotNotFound
	}

	return nil
}

// Delete removes a plot by its identifier. The soft delete frees the
// identifier for re-registration under the same supplier.
func (repo *landPlotRepository) Delete(ctx context.Context, supplierID uuid.UUID, plotID string) error {
	result := repo.db.WithContext(ctx).
		Where("supplier_id = ? AND plot_id = ?", supplierID, plotID).
		Delete(&model.LandPlotModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete land plot")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlotNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLandPlotDomain converts a GORM LandPlotModel to a domain LandPlot entity.
func toLandPlotDomain(data *model.LandPlotModel) *entity.LandPlot {
	if data == nil {
		return nil
	}

	plot := &entity.LandPlot{
		ID:          data.PlotID,
		SupplierID:  data.SupplierID,
		PlotName:    data.PlotName,
		FarmerName:  data.FarmerName,
		Products:    data.Products,
		AreaHa:      data.AreaHa,
		Boundary:    toCoordinatesDomain(data.Boundary),
		GeoComplete: data.GeoComplete,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.AnalyzedAt != nil && data.DeforestationPct != nil {
		plot.Analysis = &entity.DeforestationAnalysis{
			ForestAreaHa:     derefFloat(data.ForestAreaHa),
			LossAreaHa:       derefFloat(data.LossAreaHa),
			DeforestationPct: *data.DeforestationPct,
			ForestTileURL:    data.ForestTileURL,
			LossTileURL:      data.LossTileURL,
			AnalyzedAt:       *data.AnalyzedAt,
		}
	}

	return plot
}

// fromLandPlotDomain converts a domain LandPlot entity to a GORM LandPlotModel.
func fromLandPlotDomain(data *entity.LandPlot) *model.LandPlotModel {
	if data == nil {
		return nil
	}

	plotM := &model.LandPlotModel{
		PlotID:      data.ID,
		SupplierID:  data.SupplierID,
		PlotName:    data.PlotName,
		FarmerName:  data.FarmerName,
		Products:    data.Products,
		AreaHa:      data.AreaHa,
		Boundary:    fromCoordinatesDomain(data.Boundary),
		GeoComplete: data.GeoComplete,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Analysis != nil {
		analysis := data.Analysis
		plotM.ForestAreaHa = &analysis.ForestAreaHa
		plotM.LossAreaHa = &analysis.LossAreaHa
		plotM.DeforestationPct = &analysis.DeforestationPct
		plotM.ForestTileURL = analysis.ForestTileURL
		plotM.LossTileURL = analysis.LossTileURL
		plotM.AnalyzedAt = &analysis.AnalyzedAt
	}

	return plotM
}

func toCoordinatesDomain(data []model.CoordinateJSON) []entity.Coordinate {
	if data == nil {
		return nil
	}

	coords := make([]entity.Coordinate, 0, len(data))
	for _, c := range data {
		coords = append(coords, entity.Coordinate{Lat: c.Lat, Lng: c.Lng})
	}

	return coords
}

func fromCoordinatesDomain(data []entity.Coordinate) []model.CoordinateJSON {
	if data == nil {
		return nil
	}

	coords := make([]model.CoordinateJSON, 0, len(data))
	for _, c := range data {
		coords = append(coords, model.CoordinateJSON{Lat: c.Lat, Lng: c.Lng})
	}

	return coords
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}
