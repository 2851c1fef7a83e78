package main

import (
	"context"
	"log/slog"
	"os"

	"sukhan/config"
	"sukhan/internal/delivery"
	"sukhan/internal/delivery/http"
	"sukhan/internal/delivery/http/middleware"
	"sukhan/internal/delivery/http/router/handler"
	"sukhan/internal/domain/service"
	"sukhan/internal/infra/auth"
	logs "sukhan/internal/infra/log"
	"sukhan/internal/infra/mail"
	"sukhan/internal/infra/persistence/postgres"
	"sukhan/internal/infra/qrcode"
	"sukhan/internal/usecase/impl"

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
			postgres.NewOtpRepository,
			postgres.NewLoginHistoryRepository,
			postgres.NewPoetRepository,
			postgres.NewPoemRepository,
			postgres.NewGenreRepository,
			postgres.NewLikeRepository,
			postgres.NewRatingRepository,
			postgres.NewFollowRepository,
			postgres.NewSavedPoetryRepository,
			postgres.NewFeedbackRepository,
			postgres.NewSettingRepository,
			postgres.NewAnalyticsRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.NewMailer,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewPoetService,
			impl.NewPoemService,
			impl.NewGenreService,
			impl.NewEngagementService,
			impl.NewFeedbackService,
			impl.NewSettingsService,
			impl.NewAnalyticsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewPoetHandler,
			handler.NewPoemHandler,
			handler.NewGenreHandler,
			handler.NewEngagementHandler,
			handler.NewFeedbackHandler,
			handler.NewAdminHandler,
			handler.NewAnalyticsHandler,
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
