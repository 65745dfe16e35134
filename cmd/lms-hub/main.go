package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapterhandler "lms-hub/internal/adapter/handler"
	"lms-hub/internal/fixture"
	infracache "lms-hub/internal/infrastructure/cache"
	"lms-hub/internal/infrastructure/kvstore"
	"lms-hub/internal/screen"
	"lms-hub/internal/usecase"

	"lms-hub/config"
	appmiddleware "lms-hub/middleware"
	"lms-hub/utils/logger"
	"lms-hub/utils/otel"
	"lms-hub/utils/validator"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"golang.org/x/sync/errgroup"
)

const shellSweepInterval = time.Minute

func main() {
	// Docker healthcheck in a distroless image
	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		if err := runHealthcheck(); err != nil {
			fmt.Fprintf(os.Stderr, "Healthcheck failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	otelCfg := otel.ConfigFromEnv()
	otelShutdown, err := otel.InitProvider(ctx, otelCfg)
	if err != nil {
		slog.Warn("failed to initialize OpenTelemetry, continuing without tracing", "error", err)
		otelCfg.Enabled = false
		otelShutdown = func(context.Context) error { return nil }
	}

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: otelCfg.ServiceName,
		OTel:    otelCfg.Enabled,
	})

	log.InfoContext(ctx, "configuration loaded",
		"port", cfg.Port,
		"store_backend", cfg.StoreBackend,
		"shell_ttl", cfg.ShellTTL,
		"cookie_secure", cfg.CookieSecure)

	// Infrastructure
	store, err := kvstore.Open(ctx, kvstore.Options{
		Backend:     cfg.StoreBackend,
		MemorySize:  cfg.StoreMemorySize,
		TTL:         cfg.StoreTTL,
		RedisURL:    cfg.RedisURL,
		SQLitePath:  cfg.SQLitePath,
		DatabaseURL: cfg.DatabaseURL,
	}, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to open session storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	shellCache := infracache.NewShellCache[*usecase.AppShell](cfg.ShellTTL)
	v := validator.New()
	roster := fixture.DefaultRoster()
	router := usecase.NewViewRouter()
	composer := screen.NewComposer(fixture.Default())

	buildShell := func(sid string) *usecase.AppShell {
		scoped := kvstore.WithNamespace(store, "sid:"+sid)
		sessions := usecase.NewSessionStore(roster, scoped, v, log)
		return usecase.NewAppShell(sessions, router, composer, log)
	}

	shells := adapterhandler.NewShells(shellCache, buildShell, cfg.CookieSecure, cfg.StoreTTL)
	api := adapterhandler.API{
		Shells:  shells,
		Auth:    adapterhandler.NewAuthHandler(shells),
		Session: adapterhandler.NewSessionHandler(),
		Page:    adapterhandler.NewPageHandler(),
		Roster:  adapterhandler.NewRosterHandler(fixture.DemoAccounts, fixture.DemoPassword),
		Health:  adapterhandler.NewHealthHandler(store),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = v

	e.Use(appmiddleware.SecurityHeaders(cfg.CookieSecure))
	e.Use(middleware.RequestID())

	if otelCfg.Enabled {
		e.Use(otelecho.Middleware(otelCfg.ServiceName))
		e.Use(appmiddleware.OTelStatusMiddleware())
	}

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().URL.Path == "/health"
		},
		LogStatus:    true,
		LogURI:       true,
		LogError:     true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			rctx := logger.WithRequestID(c.Request().Context(), v.RequestID)
			l := logger.GlobalContext.WithContext(rctx)
			if v.Error == nil {
				l.Info("request completed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds())
			} else {
				l.Error("request failed",
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency_ms", v.Latency.Milliseconds(),
					"error", v.Error.Error())
			}
			return nil
		},
	}))

	e.Use(middleware.Recover())

	loginRL := appmiddleware.NewLoginRateLimiter(cfg.LoginRatePerMin)
	api.Register(e, loginRL.Middleware())

	metricsRoute := []echo.MiddlewareFunc{}
	if cfg.MetricsSecret != "" {
		metricsRoute = append(metricsRoute, appmiddleware.InternalAuth(cfg.MetricsSecret))
	}
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), metricsRoute...)

	address := fmt.Sprintf(":%s", cfg.Port)
	log.InfoContext(ctx, "starting lms-hub server", "address", address)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		shellCache.Run(gCtx, shellSweepInterval)
		return nil
	})

	g.Go(func() error {
		loginRL.Run(gCtx)
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return otelShutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	log.Info("server exited properly")
}

// runHealthcheck performs a health check against the local server.
func runHealthcheck() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8890"
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%s/health", port))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned status: %d", resp.StatusCode)
	}
	return nil
}
