package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "canopy/internal/delivery/context"
	"canopy/internal/domain/entity"
	domainerrors "canopy/internal/domain/errors"
	"canopy/internal/domain/repository"
	"canopy/internal/domain/service"
	"canopy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxPlotIDProbes bounds the numeric-suffix probing before falling back to
// a timestamp-based identifier.
const maxPlotIDProbes = 99

// landPlotService implements the LandPlotUsecase interface.
type landPlotService struct {
	landPlotRepo  repository.LandPlotRepository
	partyRepo     repository.PartyRepository
	deforestation service.DeforestationService
	qrCodeService service.QRCodeService
	logger        *slog.Logger
}

// LandPlotServiceParams holds dependencies for landPlotService, injected by Fx.
type LandPlotServiceParams struct {
	fx.In

	LandPlotRepo  repository.LandPlotRepository
	PartyRepo     repository.PartyRepository
	Deforestation service.DeforestationService
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewLandPlotService is the constructor for landPlotService.
func NewLandPlotService(params LandPlotServiceParams) usecase.LandPlotUsecase {
	return &landPlotService{
		landPlotRepo:  params.LandPlotRepo,
		partyRepo:     params.PartyRepo,
		deforestation: params.Deforestation,
		qrCodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *landPlotService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateLandPlot registers a plot under the caller's supplier organization.
// The analysis call is best-effort: its failure never blocks registration.
func (srv *landPlotService) CreateLandPlot(ctx context.Context, userID uuid.UUID, input usecase.CreateLandPlotInput) (*entity.LandPlot, error) {
	supplier, err := requireSupplier(ctx, srv.partyRepo, userID)
	if err != nil {
		return nil, err
	}

	return srv.createForSupplier(ctx, supplier.ID, input)
}

// BulkCreateLandPlots registers several plots; each item succeeds or fails
// on its own so one bad row never undoes the rest of the batch.
func (srv *landPlotService) BulkCreateLandPlots(ctx context.Context, userID uuid.UUID, inputs []usecase.CreateLandPlotInput) (*usecase.BulkCreateResult, error) {
	supplier, err := requireSupplier(ctx, srv.partyRepo, userID)
	if err != nil {
		return nil, err
	}

	result := &usecase.BulkCreateResult{}
	for _, input := range inputs {
		plot, err := srv.createForSupplier(ctx, supplier.ID, input)
		if err != nil {
			srv.log(ctx).Warn("Bulk plot creation item failed",
				slog.String("plotName", input.PlotName),
				slog.Any("error", err),
			)
			result.Failed++
			result.FailedPlots = append(result.FailedPlots, usecase.BulkCreateFailure{
				PlotName: input.PlotName,
				Reason:   err.Error(),
			})

			continue
		}

		result.Created++
		result.CreatedPlots = append(result.CreatedPlots, plot)
	}

	return result, nil
}

func (srv *landPlotService) createForSupplier(ctx context.Context, supplierID uuid.UUID, input usecase.CreateLandPlotInput) (*entity.LandPlot, error) {
	if input.PlotName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("plot name is required")
	}

	plotID, err := srv.deriveUniquePlotID(ctx, supplierID, input.PlotID)
	if err != nil {
		return nil, err
	}

	boundary := entity.NormalizeBoundary(input.Boundary)
	plot := &entity.LandPlot{
		ID:          plotID,
		SupplierID:  supplierID,
		PlotName:    input.PlotName,
		FarmerName:  input.FarmerName,
		Products:    input.Products,
		AreaHa:      input.AreaHa,
		Boundary:    boundary,
		GeoComplete: len(input.Boundary) > 1,
	}

	// Analysis runs by default; callers opt out with an explicit false.
	calculate := input.CalculateDeforestation == nil || *input.CalculateDeforestation
	if calculate && len(boundary) > 0 {
		analysis, err := srv.deforestation.AnalyzeBoundary(ctx, boundary)
		if err != nil {
			// Enrichment only: log and register the plot without analysis.
			srv.log(ctx).Warn("Deforestation analysis failed during plot creation",
				slog.String("plotID", plotID),
				slog.Any("error", err),
			)
		} else {
			plot.Analysis = analysis
		}
	}

	if err := srv.landPlotRepo.Create(ctx, plot); err != nil {
		return nil, errors.Wrap(err, "failed to create land plot")
	}

	srv.log(ctx).Info("Land plot registered",
		slog.String("plotID", plot.ID),
		slog.Any("supplierID", supplierID),
		slog.Bool("analyzed", plot.Analysis != nil),
	)

	return plot, nil
}

// deriveUniquePlotID sanitizes the requested identifier and probes for a
// free one within the supplier's namespace, appending -01..-99 on
// collision and falling back to a timestamp-based identifier. Without a
// requested identifier the fallback is used directly.
func (srv *landPlotService) deriveUniquePlotID(ctx context.Context, supplierID uuid.UUID, requestedID string) (string, error) {
	base := entity.SanitizePlotID(requestedID)
	if base == "" {
		return entity.FallbackPlotID(time.Now()), nil
	}

	candidate := base
	for probe := 0; probe <= maxPlotIDProbes; probe++ {
		if probe > 0 {
			candidate = fmt.Sprintf("%s-%02d", base, probe)
		}

		taken, err := srv.landPlotRepo.ExistsID(ctx, supplierID, candidate)
		if err != nil {
			return "", errors.Wrap(err, "failed to probe plot identifier")
		}
		if !taken {
			return candidate, nil
		}
	}

	return entity.FallbackPlotID(time.Now()), nil
}

// ListLandPlots returns the caller's registered plots, newest first.
func (srv *landPlotService) ListLandPlots(ctx context.Context, userID uuid.UUID) ([]*entity.LandPlot, error) {
	supplier, err := requireSupplier(ctx, srv.partyRepo, userID)
	if err != nil {
		return nil, err
	}

	plots, err := srv.landPlotRepo.FindBySupplier(ctx, supplier.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list land plots")
	}

	return plots, nil
}

// GetLandPlot returns one owned plot.
func (srv *landPlotService) GetLandPlot(ctx context.Context, userID uuid.UUID, plotID string) (*entity.LandPlot, error) {
	_, plot, err := srv.loadOwnedPlot(ctx, userID, plotID)

	return plot, err
}

// UpdateLandPlot merges field changes into an owned plot.
func (srv *landPlotService) UpdateLandPlot(ctx context.Context, userID uuid.UUID, input usecase.UpdateLandPlotInput) (*entity.LandPlot, error) {
	_, plot, err := srv.loadOwnedPlot(ctx, userID, input.PlotID)
	if err != nil {
		return nil, err
	}

	if input.PlotName != nil {
		plot.PlotName = *input.PlotName
	}
	if input.FarmerName != nil {
		plot.FarmerName = *input.FarmerName
	}
	if input.Products != nil {
		plot.Products = input.Products
	}
	if input.AreaHa != nil {
		plot.AreaHa = *input.AreaHa
	}
	if input.Boundary != nil {
		plot.Boundary = entity.NormalizeBoundary(input.Boundary)
		plot.GeoComplete = len(input.Boundary) > 1
	}

	if err := srv.landPlotRepo.Update(ctx, plot); err != nil {
		return nil, errors.Wrap(err, "failed to update land plot")
	}

	if input.Recalculate {
		return srv.RecalculateAnalysis(ctx, userID, plot.ID)
	}

	return plot, nil
}

// RecalculateAnalysis reruns the deforestation analysis for an owned plot.
// Here the analysis is the whole point of the call, so failure surfaces.
func (srv *landPlotService) RecalculateAnalysis(ctx context.Context, userID uuid.UUID, plotID string) (*entity.LandPlot, error) {
	_, plot, err := srv.loadOwnedPlot(ctx, userID, plotID)
	if err != nil {
		return nil, err
	}
	if len(plot.Boundary) == 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidGeometry, "plot has no boundary to analyze")
	}

	analysis, err := srv.deforestation.AnalyzeBoundary(ctx, plot.Boundary)
	if err != nil {
		srv.log(ctx).Error("Deforestation analysis failed", slog.String("plotID", plotID), slog.Any("error", err))

		return nil, errors.Wrap(err, "deforestation analysis failed")
	}

	if err := srv.landPlotRepo.UpdateAnalysis(ctx, plot.SupplierID, plotID, analysis); err != nil {
		return nil, errors.Wrap(err, "failed to store analysis result")
	}
	plot.Analysis = analysis

	return plot, nil
}

// DeleteLandPlot removes an owned plot.
func (srv *landPlotService) DeleteLandPlot(ctx context.Context, userID uuid.UUID, plotID string) error {
	_, plot, err := srv.loadOwnedPlot(ctx, userID, plotID)
	if err != nil {
		return err
	}

	if err := srv.landPlotRepo.Delete(ctx, plot.SupplierID, plot.ID); err != nil {
		return errors.Wrap(err, "failed to delete land plot")
	}

	srv.log(ctx).Info("Land plot deleted", slog.String("plotID", plot.ID))

	return nil
}

// PlotQRCode renders the traceability QR code PNG for an owned plot.
func (srv *landPlotService) PlotQRCode(ctx context.Context, userID uuid.UUID, plotID string) ([]byte, error) {
	_, plot, err := srv.loadOwnedPlot(ctx, userID, plotID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GeneratePlotQR(plot.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render plot QR code")
	}

	return png, nil
}

// loadOwnedPlot resolves the caller's supplier and loads one of its plots.
func (srv *landPlotService) loadOwnedPlot(ctx context.Context, userID uuid.UUID, plotID string) (*entity.Supplier, *entity.LandPlot, error) {
	supplier, err := requireSupplier(ctx, srv.partyRepo, userID)
	if err != nil {
		return nil, nil, err
	}

	// The lookup is scoped to the caller's supplier, so a plot registered
	// by someone else under the same identifier is simply not found.
	plot, err := srv.landPlotRepo.FindByID(ctx, supplier.ID, plotID)
	if err != nil {
		if errors.Is(err, repository.ErrPlotNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrPlotNotFound, "plot lookup failed")
		}

		return nil, nil, errors.Wrap(err, "failed to load land plot")
	}

	return supplier, plot, nil
}
