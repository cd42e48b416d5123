package main

import (
	"context"
	"log/slog"
	"os"

	"wellkart/config"
	"wellkart/internal/delivery"
	"wellkart/internal/delivery/http"
	"wellkart/internal/delivery/http/middleware"
	"wellkart/internal/delivery/http/router/handler"
	"wellkart/internal/infra/auth"
	logs "wellkart/internal/infra/log"
	"wellkart/internal/infra/mail"
	"wellkart/internal/infra/payment"
	"wellkart/internal/infra/persistence/postgres"
	"wellkart/internal/infra/pubsub"
	"wellkart/internal/infra/qrcode"
	"wellkart/internal/infra/storage"
	"wellkart/internal/usecase/impl"

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
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewSessionRepository,
			postgres.NewAddressRepository,
			postgres.NewProductRepository,
			postgres.NewOrderRepository,
			postgres.NewCouponRepository,
			postgres.NewPatientRepository,
			postgres.NewAppointmentRepository,
			postgres.NewPrescriptionRepository,
			postgres.NewLeadRepository,
			postgres.NewReviewRepository,
			postgres.NewSettingRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.New,
			payment.NewRazorpayGateway,
			pubsub.NewEventPublisher,
			mail.NewSMTPMailer,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewSessionService,
			impl.NewProfileService,
			impl.NewAddressService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewCouponService,
			impl.NewPaymentService,
			impl.NewClinicService,
			impl.NewLeadService,
			impl.NewReviewService,
			impl.NewSettingService,
			impl.NewUploadService,
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
			handler.NewUserHandler,
			handler.NewSessionHandler,
			handler.NewProfileHandler,
			handler.NewAddressHandler,
			handler.NewProductHandler,
			handler.NewOrderHandler,
			handler.NewCouponHandler,
			handler.NewPaymentHandler,
			handler.NewClinicHandler,
			handler.NewLeadHandler,
			handler.NewReviewHandler,
			handler.NewSettingHandler,
			handler.NewUploadHandler,
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
