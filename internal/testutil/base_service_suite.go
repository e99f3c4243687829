package testutil

import (
	"context"

	"github.com/hireloop/pricing-engine/internal/config"
	"github.com/hireloop/pricing-engine/internal/domain/addon"
	"github.com/hireloop/pricing-engine/internal/domain/baseline"
	"github.com/hireloop/pricing-engine/internal/domain/billing"
	"github.com/hireloop/pricing-engine/internal/domain/bundle"
	"github.com/hireloop/pricing-engine/internal/domain/coupon"
	"github.com/hireloop/pricing-engine/internal/domain/tier"
	"github.com/hireloop/pricing-engine/internal/logger"
	"github.com/hireloop/pricing-engine/internal/types"
	"github.com/hireloop/pricing-engine/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	BaselineRepo baseline.Repository
	TierRepo     tier.Repository
	BundleRepo   bundle.Repository
	TemplateRepo billing.TemplateRepository
	CouponRepo   coupon.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	stores   Stores
	registry *addon.Registry
	logger   *logger.Logger
	config   *config.Configuration
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := &config.Configuration{
		Deployment: config.DeploymentConfig{Mode: types.ModeLocal},
		Server:     config.ServerConfig{Address: ":0"},
		Logging:    config.LoggingConfig{Level: types.LogLevelInfo},
		Catalog:    config.CatalogSource{Path: "catalog.yaml"},
	}
	s.config = cfg

	var err error
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.registry = addon.NewRegistry()
	s.stores = Stores{
		BaselineRepo: NewInMemoryBaselineStore(),
		TierRepo:     NewInMemoryTierStore(),
		BundleRepo:   NewInMemoryBundleStore(),
		TemplateRepo: NewInMemoryTemplateStore(),
		CouponRepo:   NewInMemoryCouponStore(),
	}
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {}

// ClearStores resets every in-memory store
func (s *BaseServiceTestSuite) ClearStores() {
	s.stores.BaselineRepo.(*InMemoryBaselineStore).Clear()
	s.stores.TierRepo.(*InMemoryTierStore).Clear()
	s.stores.BundleRepo.(*InMemoryBundleStore).Clear()
	s.stores.TemplateRepo.(*InMemoryTemplateStore).Clear()
	s.stores.CouponRepo.(*InMemoryCouponStore).Clear()
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

func (s *BaseServiceTestSuite) GetRegistry() *addon.Registry {
	return s.registry
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}
