package service

import (
	"github.com/hireloop/pricing-engine/internal/config"
	"github.com/hireloop/pricing-engine/internal/domain/addon"
	"github.com/hireloop/pricing-engine/internal/domain/baseline"
	"github.com/hireloop/pricing-engine/internal/domain/billing"
	"github.com/hireloop/pricing-engine/internal/domain/bundle"
	"github.com/hireloop/pricing-engine/internal/domain/coupon"
	"github.com/hireloop/pricing-engine/internal/domain/tier"
	"github.com/hireloop/pricing-engine/internal/logger"
)

// ServiceParams holds the dependencies shared by the pricing services.
// Tests construct it with in-memory stores, the server with the catalog
// backed store.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	Registry *addon.Registry

	BaselineRepo baseline.Repository
	TierRepo     tier.Repository
	BundleRepo   bundle.Repository
	TemplateRepo billing.TemplateRepository
	CouponRepo   coupon.Repository
}
