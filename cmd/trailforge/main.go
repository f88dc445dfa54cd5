package main

import (
	"context"
	"log/slog"
	"os"

	"trailforge/config"
	"trailforge/internal/delivery"
	"trailforge/internal/delivery/http"
	"trailforge/internal/delivery/http/middleware"
	"trailforge/internal/delivery/http/router/handler"
	"trailforge/internal/domain/service"
	"trailforge/internal/infra/auth"
	logs "trailforge/internal/infra/log"
	"trailforge/internal/infra/notify"
	"trailforge/internal/infra/pubsub"
	"trailforge/internal/infra/qrcode"
	"trailforge/internal/infra/remote"
	"trailforge/internal/infra/snapshot"
	"trailforge/internal/store"
	"trailforge/internal/usecase"
	"trailforge/internal/usecase/impl"

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
			restoreLocalRoutes,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		store.NewCollection,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			remote.NewRouteRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewTokenGate,
			func(gate *auth.TokenGate) service.AuthGate { return gate },
			func(gate *auth.TokenGate) service.TokenSink { return gate },
			notify.NewSlogNotifier,
			pubsub.NewEventPublisher,
			snapshot.NewSnapshotStore,
			newShareService,
		),
	)
}

// newShareService creates a route share service with dependency injection
func newShareService(cfg *config.Config) service.ShareService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewShareService(256, "M")
	}

	return qrcode.NewShareService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRouteService,
			impl.NewDraftService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRouteHandler,
			handler.NewDraftHandler,
			handler.NewAuthHandler,
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

// restoreLocalRoutes loads the local-route snapshot into the collection at
// startup so device-local routes survive restarts.
func restoreLocalRoutes(ctx context.Context, routes usecase.RouteUsecase, logger *slog.Logger) {
	if err := routes.RestoreLocal(ctx); err != nil {
		logger.Warn("Failed to restore local routes", slog.Any("error", err))
	}
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
