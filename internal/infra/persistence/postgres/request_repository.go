// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"canopy/internal/domain/entity"
	domainerrors "canopy/internal/domain/errors"
	"canopy/internal/domain/repository"
	"canopy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultRequestListLimit = 100

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{
		db: db,
	}
}

// requestRow carries a request together with joined counterparty names.
type requestRow struct {
	model.RequestModel
	CustomerName string
	SupplierName string
}

// Create persists a new request together with its line items.
func (repo *requestRepository) Create(ctx context.Context, request *entity.Request) error {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSupplierNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	if len(request.Items) > 0 {
		itemModels := make([]*model.RequestItemModel, 0, len(request.Items))
		for i := range request.Items {
			request.Items[i].RequestID = requestM.ID
			itemModels = append(itemModels, fromRequestItemDomain(&request.Items[i]))
		}

		if err := repo.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create request items")
		}

		for i, itemM := range itemModels {
			request.Items[i].ID = itemM.ID
		}
	}

	return nil
}

// FindByID retrieves a request with its items and shared plot IDs.
func (repo *requestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Request, error) {
	var row requestRow

	if err := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Select("requests.*, customers.company_name AS customer_name, suppliers.company_name AS supplier_name").
		Joins("JOIN customers ON customers.id = requests.customer_id").
		Joins("JOIN suppliers ON suppliers.id = requests.supplier_id").
		Where("requests.id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request by ID")
	}

	request := toRequestDomain(&row.RequestModel)
	request.CustomerName = row.CustomerName
	request.SupplierName = row.SupplierName

	var itemModels []*model.RequestItemModel
	if err := repo.db.WithContext(ctx).
		Where("request_id = ?", id).
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load request items")
	}
	for _, itemM := range itemModels {
		request.Items = append(request.Items, *toRequestItemDomain(itemM))
	}

	var plotIDs []string
	if err := repo.db.WithContext(ctx).
		Model(&model.SharedPlotModel{}).
		Where("request_id = ?", id).
		Pluck("plot_id", &plotIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load shared plots")
	}
	request.SharedPlotIDs = plotIDs

	return request, nil
}

// List retrieves requests matching the filter, newest first.
func (repo *requestRepository) List(ctx context.Context, filter repository.RequestFilter) ([]*entity.Request, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultRequestListLimit
	}

	query := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Select("requests.*, customers.company_name AS customer_name, suppliers.company_name AS supplier_name").
		Joins("JOIN customers ON customers.id = requests.customer_id").
		Joins("JOIN suppliers ON suppliers.id = requests.supplier_id")

	query = applyRequestFilter(query, filter)

	var rows []*requestRow
	if err := query.
		Order("requests.created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	requests := make([]*entity.Request, 0, len(rows))
	for _, row := range rows {
		request := toRequestDomain(&row.RequestModel)
		request.CustomerName = row.CustomerName
		request.SupplierName = row.SupplierName
		requests = append(requests, request)
	}

	return requests, nil
}

// Update persists status, response message and resolution time changes.
func (repo *requestRepository) Update(ctx context.Context, request *entity.Request) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Where("id = ?", request.ID).
		Updates(map[string]any{
			"status":           request.Status.String(),
			"response_message": request.ResponseMessage,
			"resolved_at":      request.ResolvedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update request")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

// SavePurchaseOrderData stores the supplier's fulfillment payload,
// replacing any earlier submission for the request.
func (repo *requestRepository) SavePurchaseOrderData(ctx context.Context, requestID uuid.UUID, data *entity.PurchaseOrderData) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Where("id = ?", requestID).
		Update("purchase_order_data", fromPurchaseOrderDomain(data))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to store purchase order data")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

// AddSharedPlots records the plots shared with the customer on acceptance.
func (repo *requestRepository) AddSharedPlots(ctx context.Context, requestID uuid.UUID, plotIDs []string) error {
	if len(plotIDs) == 0 {
		return nil
	}

	var requestM model.RequestModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", requestID).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrRequestNotFound
		}

		return errors.Wrap(err, "failed to load request for plot sharing")
	}

	now := time.Now()
	shares := make([]*model.SharedPlotModel, 0, len(plotIDs))
	for _, plotID := range plotIDs {
		shares = append(shares, &model.SharedPlotModel{
			RequestID:  requestID,
			PlotID:     plotID,
			SupplierID: requestM.SupplierID,
			CustomerID: requestM.CustomerID,
			SharedAt:   now,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&shares).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Plots already recorded for this request.
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record shared plots")
	}

	return nil
}

// FindSharedPlots retrieves the plots shared with a customer across all of
// its accepted requests, newest share first.
func (repo *requestRepository) FindSharedPlots(ctx context.Context, customerID uuid.UUID) ([]*repository.SharedPlot, error) {
	var shareModels []*model.SharedPlotModel
	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("shared_at DESC").
		Find(&shareModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load shared plots for customer")
	}

	if len(shareModels) == 0 {
		return nil, nil
	}

	// Plot identifiers are only unique per supplier, so the share rows are
	// resolved by (supplier, plot) pairs.
	pairs := make([][]any, 0, len(shareModels))
	for _, share := range shareModels {
		pairs = append(pairs, []any{share.SupplierID, share.PlotID})
	}

	var plotModels []*model.LandPlotModel
	if err := repo.db.WithContext(ctx).
		Where("(supplier_id, plot_id) IN ?", pairs).
		Find(&plotModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load plots for shares")
	}

	plotsByID := make(map[string]*entity.LandPlot, len(plotModels))
	for _, plotM := range plotModels {
		plotsByID[shareKey(plotM.SupplierID, plotM.PlotID)] = toLandPlotDomain(plotM)
	}

	shared := make([]*repository.SharedPlot, 0, len(shareModels))
	for _, share := range shareModels {
		plot, ok := plotsByID[shareKey(share.SupplierID, share.PlotID)]
		if !ok {
			// Plot was deleted after sharing; skip it.
			continue
		}

		shared = append(shared, &repository.SharedPlot{
			Plot: plot,
			Share: entity.PlotShare{
				RequestID: share.RequestID,
				SharedAt:  share.SharedAt,
			},
		})
	}

	return shared, nil
}

func shareKey(supplierID uuid.UUID, plotID string) string {
	return supplierID.String() + "/" + plotID
}

// Stats returns the aggregate counts for one side of the workflow.
func (repo *requestRepository) Stats(ctx context.Context, filter repository.RequestFilter) (*repository.RequestStats, error) {
	stats := &repository.RequestStats{}

	type countRow struct {
		Status string
		Count  int64
	}

	query := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Select("requests.status AS status, COUNT(*) AS count")
	query = applyRequestFilter(query, repository.RequestFilter{
		CustomerID: filter.CustomerID,
		SupplierID: filter.SupplierID,
		Type:       filter.Type,
	})

	var rows []countRow
	if err := query.Group("requests.status").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to compute request stats")
	}

	for _, row := range rows {
		stats.Total += row.Count
		switch status := entity.RequestStatus(row.Status); {
		case status == entity.RequestStatusPending:
			stats.Pending += row.Count
		case status.IsCompleted():
			stats.Completed += row.Count
		case status == entity.RequestStatusRejected:
			stats.Rejected += row.Count
		}
	}

	return stats, nil
}

func applyRequestFilter(query *gorm.DB, filter repository.RequestFilter) *gorm.DB {
	if filter.CustomerID != uuid.Nil {
		query = query.Where("requests.customer_id = ?", filter.CustomerID)
	}
	if filter.SupplierID != uuid.Nil {
		query = query.Where("requests.supplier_id = ?", filter.SupplierID)
	}
	if filter.Status != "" {
		query = query.Where("requests.status = ?", filter.Status.String())
	}
	if filter.Type != "" {
		query = query.Where("requests.type = ?", filter.Type.String())
	}

	return query
}

// --- Mapper Functions ---

// toRequestDomain converts a GORM RequestModel to a domain Request entity.
func toRequestDomain(data *model.RequestModel) *entity.Request {
	if data == nil {
		return nil
	}

	return &entity.Request{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		SupplierID:      data.SupplierID,
		Type:            entity.RequestType(data.Type),
		Status:          entity.RequestStatus(data.Status),
		Subject:         data.Subject,
		OrderNumber:     data.OrderNumber,
		Message:         data.Message,
		ResponseMessage: data.ResponseMessage,
		PurchaseOrder:   toPurchaseOrderDomain(data.PurchaseOrderData),
		ResolvedAt:      data.ResolvedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toPurchaseOrderDomain(data *model.PurchaseOrderDataJSON) *entity.PurchaseOrderData {
	if data == nil {
		return nil
	}

	batches := make([]entity.PurchaseOrderBatch, 0, len(data.Batches))
	for _, batch := range data.Batches {
		batches = append(batches, entity.PurchaseOrderBatch{
			BatchNumber:    batch.BatchNumber,
			ProductName:    batch.ProductName,
			Quantity:       batch.Quantity,
			Unit:           batch.Unit,
			EUDRRelevant:   batch.EUDRRelevant,
			ProductionDate: batch.ProductionDate,
		})
	}

	return &entity.PurchaseOrderData{
		Batches:             batches,
		PlotIDs:             data.PlotIDs,
		Products:            data.Products,
		ProductionDates:     data.ProductionDates,
		ProductionDateScope: data.ProductionDateScope,
		SubmittedAt:         data.SubmittedAt,
	}
}

func fromPurchaseOrderDomain(data *entity.PurchaseOrderData) *model.PurchaseOrderDataJSON {
	if data == nil {
		return nil
	}

	batches := make([]model.PurchaseOrderBatchJSON, 0, len(data.Batches))
	for _, batch := range data.Batches {
		batches = append(batches, model.PurchaseOrderBatchJSON{
			BatchNumber:    batch.BatchNumber,
			ProductName:    batch.ProductName,
			Quantity:       batch.Quantity,
			Unit:           batch.Unit,
			EUDRRelevant:   batch.EUDRRelevant,
			ProductionDate: batch.ProductionDate,
		})
	}

	return &model.PurchaseOrderDataJSON{
		Batches:             batches,
		PlotIDs:             data.PlotIDs,
		Products:            data.Products,
		ProductionDates:     data.ProductionDates,
		ProductionDateScope: data.ProductionDateScope,
		SubmittedAt:         data.SubmittedAt,
	}
}

// fromRequestDomain converts a domain Request entity to a GORM RequestModel.
func fromRequestDomain(data *entity.Request) *model.RequestModel {
	if data == nil {
		return nil
	}

	return &model.RequestModel{
		ID:              data.ID,
		CustomerID:      data.CustomerID,
		SupplierID:      data.SupplierID,
		Type:            data.Type.String(),
		Status:          data.Status.String(),
		Subject:         data.Subject,
		OrderNumber:     data.OrderNumber,
		Message:         data.Message,
		ResponseMessage: data.ResponseMessage,
		ResolvedAt:      data.ResolvedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toRequestItemDomain converts a GORM RequestItemModel to a domain RequestItem.
func toRequestItemDomain(data *model.RequestItemModel) *entity.RequestItem {
	if data == nil {
		return nil
	}

	return &entity.RequestItem{
		ID:          data.ID,
		RequestID:   data.RequestID,
		ProductName: data.ProductName,
		Quantity:    data.Quantity,
		Unit:        data.Unit,
	}
}

// fromRequestItemDomain converts a domain RequestItem to a GORM RequestItemModel.
func fromRequestItemDomain(data *entity.RequestItem) *model.RequestItemModel {
	if data == nil {
		return nil
	}

	return &model.RequestItemModel{
		ID:          data.ID,
		RequestID:   data.RequestID,
		ProductName: data.ProductName,
		Quantity:    data.Quantity,
		Unit:        data.Unit,
	}
}
