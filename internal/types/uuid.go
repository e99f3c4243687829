package types

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex brk_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

const (
	// Prefixes for all domains and entities

	UUID_PREFIX_OPPORTUNITY     = "opp"
	UUID_PREFIX_PRICE_BREAKDOWN = "brk"
	UUID_PREFIX_MILESTONE       = "mls"
	UUID_PREFIX_ADDON           = "addon"
	UUID_PREFIX_BUNDLE          = "bndl"
	UUID_PREFIX_COUPON          = "coup"
	UUID_PREFIX_BUSINESS_UNIT   = "bu"
)
