package main

import (
	"context"
	"log/slog"
	"os"

	"canopy/config"
	"canopy/internal/delivery"
	"canopy/internal/delivery/http"
	"canopy/internal/delivery/http/middleware"
	"canopy/internal/delivery/http/router/handler"
	"canopy/internal/domain/service"
	"canopy/internal/infra/auth"
	"canopy/internal/infra/geo/forestwatch"
	logs "canopy/internal/infra/log"
	"canopy/internal/infra/persistence/postgres"
	"canopy/internal/infra/qrcode"
	"canopy/internal/infra/storage"
	"canopy/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPartyRepository,
			postgres.NewRequestRepository,
			postgres.NewLandPlotRepository,
			postgres.NewQuestionnaireRepository,
			postgres.NewProfileRepository,
			postgres.NewProductRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			forestwatch.NewClient,
			storage.NewBlobStorage,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewRequestService,
			impl.NewLandPlotService,
			impl.NewQuestionnaireService,
			impl.NewProfileService,
			impl.NewRiskService,
			impl.NewDirectoryService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewRequestHandler,
			handler.NewLandPlotHandler,
			handler.NewQuestionnaireHandler,
			handler.NewProfileHandler,
			handler.NewRiskHandler,
			handler.NewDirectoryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
