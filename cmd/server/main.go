package main

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/hireloop/pricing-engine/internal/api"
	v1 "github.com/hireloop/pricing-engine/internal/api/v1"
	"github.com/hireloop/pricing-engine/internal/config"
	"github.com/hireloop/pricing-engine/internal/domain/addon"
	"github.com/hireloop/pricing-engine/internal/domain/baseline"
	"github.com/hireloop/pricing-engine/internal/domain/billing"
	"github.com/hireloop/pricing-engine/internal/domain/bundle"
	"github.com/hireloop/pricing-engine/internal/domain/coupon"
	"github.com/hireloop/pricing-engine/internal/domain/tier"
	"github.com/hireloop/pricing-engine/internal/logger"
	"github.com/hireloop/pricing-engine/internal/repository/configstore"
	"github.com/hireloop/pricing-engine/internal/service"
	"github.com/hireloop/pricing-engine/internal/validator"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	// Load .env if present, before viper reads the environment
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(
			validator.NewValidator,
			config.NewConfig,
			logger.NewLogger,
			config.LoadCatalog,
			configstore.NewStore,
			newAddonRegistry,
			newRepositories,
			newServiceParams,
			service.NewQuoteService,
			v1.NewQuoteHandler,
			newAddonHandler,
			newRouter,
		),
		fx.Invoke(startServer),
	)

	app.Run()
}

type repositories struct {
	fx.Out

	BaselineRepo baseline.Repository
	TierRepo     tier.Repository
	BundleRepo   bundle.Repository
	TemplateRepo billing.TemplateRepository
	CouponRepo   coupon.Repository
}

func newRepositories(store *configstore.Store) repositories {
	return repositories{
		BaselineRepo: store,
		TierRepo:     store,
		BundleRepo:   store,
		TemplateRepo: store,
		CouponRepo:   store,
	}
}

// newAddonRegistry registers every catalog addon in declared order.
// Registration order is explicit here, not hidden in import side effects.
func newAddonRegistry(store *configstore.Store, log *logger.Logger) (*addon.Registry, error) {
	registry := addon.NewRegistry()
	for _, def := range store.Addons() {
		if err := registry.Register(def); err != nil {
			return nil, err
		}
		log.Debugw("registered addon", "addon_id", def.ID, "rate_type", def.RateType)
	}
	return registry, nil
}

func newServiceParams(
	cfg *config.Configuration,
	log *logger.Logger,
	registry *addon.Registry,
	baselineRepo baseline.Repository,
	tierRepo tier.Repository,
	bundleRepo bundle.Repository,
	templateRepo billing.TemplateRepository,
	couponRepo coupon.Repository,
) service.ServiceParams {
	return service.ServiceParams{
		Logger:       log,
		Config:       cfg,
		Registry:     registry,
		BaselineRepo: baselineRepo,
		TierRepo:     tierRepo,
		BundleRepo:   bundleRepo,
		TemplateRepo: templateRepo,
		CouponRepo:   couponRepo,
	}
}

func newAddonHandler(registry *addon.Registry, baselineRepo baseline.Repository, log *logger.Logger) *v1.AddonHandler {
	return v1.NewAddonHandler(registry, baselineRepo, log)
}

func newRouter(quote *v1.QuoteHandler, addonHandler *v1.AddonHandler) *gin.Engine {
	return api.NewRouter(api.Handlers{
		Quote: quote,
		Addon: addonHandler,
	})
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	router *gin.Engine,
	log *logger.Logger,
) {
	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting pricing server", "address", cfg.Server.Address)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping pricing server")
			return srv.Shutdown(ctx)
		},
	})
}
