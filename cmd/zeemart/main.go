package main

import (
	"context"
	"log/slog"
	"os"

	"zeemart/config"
	"zeemart/internal/delivery"
	"zeemart/internal/delivery/http"
	httpmiddleware "zeemart/internal/delivery/http/middleware"
	"zeemart/internal/delivery/http/router/handler"
	deliverymiddleware "zeemart/internal/delivery/middleware"
	"zeemart/internal/infra/auth"
	logs "zeemart/internal/infra/log"
	"zeemart/internal/infra/payment"
	"zeemart/internal/infra/persistence/postgres"
	"zeemart/internal/infra/pubsub"
	"zeemart/internal/infra/push"
	"zeemart/internal/infra/qrcode"
	"zeemart/internal/infra/storage"
	"zeemart/internal/usecase/impl"

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
			postgres.NewListingRepository,
			postgres.NewOrderRepository,
			postgres.NewWalletRepository,
			postgres.NewNotificationRepository,
			postgres.NewAdRepository,
			postgres.NewVerificationTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			payment.NewMockProvider,
			storage.NewBlobStore,
			pubsub.NewOrderEventPublisher,
			push.NewPushSender,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewListingService,
			impl.NewOrderService,
			impl.NewWalletService,
			impl.NewUploadService,
			impl.NewVerificationService,
			impl.NewNotificationService,
			impl.NewAdService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewListingHandler,
			handler.NewOrderHandler,
			handler.NewWalletHandler,
			handler.NewUploadHandler,
			handler.NewVerificationHandler,
			handler.NewNotificationHandler,
			handler.NewAdHandler,
			handler.NewAdminHandler,
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
