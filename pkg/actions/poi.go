package actions

import (
	"fmt"

	"github.com/indexer-tools/actionq/pkg/types"
	"github.com/indexer-tools/actionq/pkg/validator"
)

// NormalizePOI replaces the shorthand zero values "0" and "0x0" with the
// full 32-byte all-zero hash. Any other value passes through unchanged;
// format checking is ValidatePOI's job.
func NormalizePOI(poi string) string {
	if poi == "0" || poi == "0x0" {
		return types.ZeroPOI
	}
	return poi
}

// ValidatePOI normalizes and format-checks a proof of indexing.
func ValidatePOI(poi string) (string, error) {
	normalized := NormalizePOI(poi)
	if !validator.IsValidPOI(normalized) {
		return "", fmt.Errorf("invalid proof of indexing %q: expected a 0x-prefixed 32-byte hash", poi)
	}
	return normalized, nil
}
