package types

import (
	ierr "github.com/hireloop/pricing-engine/internal/errors"
	"github.com/samber/lo"
)

// MilestoneTrigger is the contract event that makes a payment milestone due
type MilestoneTrigger string

const (
	MilestoneTriggerOnSignature MilestoneTrigger = "on_signature"
	MilestoneTriggerOnStart     MilestoneTrigger = "on_start"
	MilestoneTriggerOnDelivery  MilestoneTrigger = "on_delivery"
	MilestoneTriggerCustomDate  MilestoneTrigger = "custom_date"
)

func (t MilestoneTrigger) String() string {
	return string(t)
}

func (t MilestoneTrigger) Validate() error {
	allowedValues := []MilestoneTrigger{
		MilestoneTriggerOnSignature,
		MilestoneTriggerOnStart,
		MilestoneTriggerOnDelivery,
		MilestoneTriggerCustomDate,
	}

	if !lo.Contains(allowedValues, t) {
		return ierr.NewError("invalid milestone trigger").
			WithHint("Invalid milestone trigger condition").
			WithReportableDetails(map[string]any{
				"allowed_values": allowedValues,
				"provided_value": t,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}
