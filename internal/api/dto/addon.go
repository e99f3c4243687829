package dto

import (
	"github.com/hireloop/pricing-engine/internal/domain/addon"
	"github.com/hireloop/pricing-engine/internal/domain/baseline"
)

// AddonResponse wraps a registered addon definition
type AddonResponse struct {
	*addon.AddonDefinition
}

// ListAddonsResponse lists the registered addons in registration order
type ListAddonsResponse struct {
	Addons []AddonResponse `json:"addons"`
	Total  int             `json:"total"`
}

// BaselineResponse wraps a business unit's resolved pricing baseline
type BaselineResponse struct {
	*baseline.PricingBaseline
}
