// Command server runs the checkout extension backend: the invoicing flag
// guard and partner tax ID verification behind an HTTP API. APP_PROFILE
// selects the configuration profile.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/checkout-fel/internal/adapters/cache"
	"github.com/jsamuelsen11/checkout-fel/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/checkout-fel/internal/adapters/host"
	adapthttp "github.com/jsamuelsen11/checkout-fel/internal/adapters/http"
	"github.com/jsamuelsen11/checkout-fel/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/checkout-fel/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/checkout-fel/internal/app"
	"github.com/jsamuelsen11/checkout-fel/internal/app/extension"
	"github.com/jsamuelsen11/checkout-fel/internal/app/invoiceguard"
	"github.com/jsamuelsen11/checkout-fel/internal/app/vatverify"
	"github.com/jsamuelsen11/checkout-fel/internal/platform/config"
	"github.com/jsamuelsen11/checkout-fel/internal/platform/health"
	"github.com/jsamuelsen11/checkout-fel/internal/platform/httpclient"
	"github.com/jsamuelsen11/checkout-fel/internal/platform/logging"
	"github.com/jsamuelsen11/checkout-fel/internal/platform/telemetry"
	"github.com/jsamuelsen11/checkout-fel/internal/ports"
)

const (
	releaseTimeout = 5 * time.Second

	extInvoiceFlagGuard = "invoice-flag-guard"
	extVATVerification  = "partner-vat-verification"

	backendRedis = "redis"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "checkout-fel:", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE is not set; use one of local, dev, qa, prod")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log, os.Stderr).With(
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("profile", profile),
	)

	ctx := context.Background()
	metrics, releases, err := setupTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)
	registerDependencies(ctx, injector, cfg, logger)

	// Resolving the server builds the whole graph, extensions included.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		release(logger, releases)
		return fmt.Errorf("wiring server: %w", err)
	}
	logger.Info("extensions installed",
		slog.Any("extensions", do.MustInvoke[*extension.Registry](injector).Installed()),
	)

	checks := do.MustInvoke[ports.HealthRegistry](injector)
	checks.Register(do.MustInvoke[*acl.DigifactClient](injector))

	tokens := do.MustInvoke[ports.TokenCache](injector)
	if hc, ok := tokens.(ports.HealthChecker); ok {
		checks.Register(hc)
	}
	if c, ok := tokens.(interface{ Close() error }); ok {
		releases = append(releases, releaser{"token cache", func(context.Context) error { return c.Close() }})
	}

	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := server.Run(sigCtx)
	if runErr != nil {
		logger.Error("server stopped", slog.Any("error", runErr))
	}
	release(logger, releases)
	logger.Info("shutdown complete")
	return runErr
}

// releaser frees one process-wide resource at shutdown.
type releaser struct {
	name string
	fn   func(context.Context) error
}

// release runs releases newest first under one shared deadline.
func release(logger *slog.Logger, releases []releaser) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	for _, r := range slices.Backward(releases) {
		if err := r.fn(ctx); err != nil {
			logger.Error("release failed", slog.String("resource", r.name), slog.Any("error", err))
		}
	}
}

// setupTelemetry installs the global tracer and meter providers. With
// telemetry disabled it returns nil metrics, which every instrumented
// component treats as "do not record".
func setupTelemetry(ctx context.Context, cfg config.TelemetryConfig) (*telemetry.Metrics, []releaser, error) {
	if !cfg.Enabled {
		return nil, nil, nil
	}

	tp, err := telemetry.InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		return nil, nil, fmt.Errorf("starting tracer: %w", err)
	}
	releases := []releaser{{"tracer", tp.Shutdown}}

	mp, err := telemetry.InitMeter(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, nil, fmt.Errorf("starting meter: %w", err)
	}
	releases = append(releases, releaser{"meter", mp.Shutdown})

	metrics, err := telemetry.NewMetrics(mp, cfg.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, nil, fmt.Errorf("registering instruments: %w", err)
	}
	return metrics, releases, nil
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "digifact", metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.TokenCache, error) {
		if cfg.TokenCache.Backend == backendRedis {
			r, err := cache.NewRedis(ctx, cfg.TokenCache.RedisURL, cfg.TokenCache.KeyPrefix)
			if err != nil {
				return nil, fmt.Errorf("connecting token cache: %w", err)
			}
			return r, nil
		}
		return cache.NewMemory(nil), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.DigifactClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		tokens := do.MustInvoke[ports.TokenCache](i)
		loc, err := time.LoadLocation(cfg.Digifact.ExpiryLocation)
		if err != nil {
			return nil, fmt.Errorf("loading digifact.expiry_location: %w", err)
		}
		opts := []acl.DigifactOption{acl.WithExpiryLocation(loc)}
		if metrics := do.MustInvoke[*telemetry.Metrics](i); metrics != nil {
			opts = append(opts, acl.WithTokenRefreshCounter(metrics.TokenRefreshTotal))
		}
		return acl.NewDigifactClient(client, tokens, cfg.Digifact, logger, opts...), nil
	})

	do.Provide(injector, func(i do.Injector) (*vatverify.Client, error) {
		verifier := do.MustInvoke[*acl.DigifactClient](i)
		var opts []vatverify.Option
		if metrics := do.MustInvoke[*telemetry.Metrics](i); metrics != nil {
			opts = append(opts, vatverify.WithResultCounter(metrics.VerificationTotal))
		}
		return vatverify.New(verifier, logger, opts...), nil
	})

	do.Provide(injector, func(i do.Injector) (*invoiceguard.Guard, error) {
		var opts []invoiceguard.Option
		if metrics := do.MustInvoke[*telemetry.Metrics](i); metrics != nil {
			opts = append(opts, invoiceguard.WithCoercionCounter(metrics.FlagCoercions))
		}
		return invoiceguard.New(cfg.Invoice.HiddenActions, logger, opts...), nil
	})

	// Point-of-sale host state.
	do.Provide(injector, func(_ do.Injector) (ports.OrderStore, error) {
		return host.NewOrderStore(nil), nil
	})
	do.Provide(injector, func(_ do.Injector) (ports.DraftStore, error) {
		return host.NewDraftStore(), nil
	})
	do.Provide(injector, func(_ do.Injector) (ports.ScreenCatalog, error) {
		return host.NewScreenCatalog(cfg.Screens), nil
	})

	do.Provide(injector, func(_ do.Injector) (*extension.Registry, error) {
		return extension.NewRegistry(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CheckoutService, error) {
		exts := do.MustInvoke[*extension.Registry](i)
		orders := do.MustInvoke[ports.OrderStore](i)
		screens := do.MustInvoke[ports.ScreenCatalog](i)
		guard := do.MustInvoke[*invoiceguard.Guard](i)

		var svc *app.CheckoutService
		err := exts.Install(extInvoiceFlagGuard, func() error {
			svc = app.NewCheckoutService(orders, screens, guard, logger)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return svc, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PartnerService, error) {
		exts := do.MustInvoke[*extension.Registry](i)
		drafts := do.MustInvoke[ports.DraftStore](i)
		verifier := do.MustInvoke[*vatverify.Client](i)

		var svc *app.PartnerService
		err := exts.Install(extVATVerification, func() error {
			svc = app.NewPartnerService(drafts, verifier, logger)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return svc, nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		checkout := do.MustInvoke[ports.CheckoutService](i)
		// Checkout keeps running when the registry is down.
		registry := do.MustInvoke[*acl.DigifactClient](i)
		return adapthttp.Handlers{
			Orders:   handlers.NewOrderHandler(checkout),
			Screens:  handlers.NewScreenHandler(checkout),
			Partners: handlers.NewPartnerHandler(do.MustInvoke[ports.PartnerService](i)),
			Health: handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i),
				handlers.WithAdvisoryChecks(registry.Name())),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.AppContext(logger),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
