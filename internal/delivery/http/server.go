package http

import (
	"context"
	"log/slog"
	"net"
	"net/url"
	"strconv"

	"wellkart/config"
	"wellkart/internal/delivery"
	custommiddleware "wellkart/internal/delivery/http/middleware"
	"wellkart/internal/delivery/http/router"
	"wellkart/internal/delivery/http/validator"
	"wellkart/internal/domain/lifecycle"
	"wellkart/internal/infra/storage"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config              *config.Config
	Logger              *slog.Logger
	RouterParams        router.RouterParams
	RequestIDMiddleware *custommiddleware.RequestIDMiddleware
	ErrorMiddleware     *custommiddleware.ErrorMiddleware
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Use(params.RequestIDMiddleware.Process)
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Validator = validator.New()
	echoServer.Use(middleware.Recover())
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError

	corsConfig := middleware.DefaultCORSConfig
	if len(params.Config.HTTP.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = params.Config.HTTP.CORSOrigins
		corsConfig.AllowCredentials = true
	}
	echoServer.Use(middleware.CORSWithConfig(corsConfig))

	timeouts := params.Config.HTTP.Timeouts
	echoServer.Server.ReadTimeout = timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = timeouts.IdleTimeout

	registerUploadRoute(echoServer, params.Config.Storage)

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

// registerUploadRoute serves the disk upload directory so the URLs the storage
// backend hands out resolve against this server. S3 URLs point at the bucket
// and need no route here.
func registerUploadRoute(e *echo.Echo, cfg *config.StorageConfig) {
	if cfg == nil {
		return
	}
	if cfg.Provider != storage.ProviderDisk && cfg.Provider != "" {
		return
	}

	prefix := "/uploads"
	if parsed, err := url.Parse(cfg.PublicBaseURL); err == nil && parsed.Path != "" {
		prefix = parsed.Path
	}

	diskPath := cfg.DiskPath
	if diskPath == "" {
		diskPath = "./uploads"
	}

	e.Static(prefix, diskPath)
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
