package validator

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// CIDv0 deployment hash, e.g. QmZZ8f5oJXRifkf3Qoq2e5tq2VwDYtVcCRTF3kSAgSBrHx
	deploymentIDPattern = regexp.MustCompile("^Qm[1-9A-HJ-NP-Za-km-z]{44}$")
	hexDeploymentID     = regexp.MustCompile("^0x[0-9a-fA-F]{64}$")
)

func IsEmpty(value string) bool {
	return value == ""
}

// IsValidDeploymentID accepts both the IPFS (Qm...) and the 32-byte hex
// representation of a subgraph deployment hash.
func IsValidDeploymentID(id string) bool {
	return deploymentIDPattern.MatchString(id) || hexDeploymentID.MatchString(id)
}

// IsValidAllocationID checks for a 20-byte hex allocation address.
func IsValidAllocationID(id string) bool {
	return common.IsHexAddress(id)
}

// IsValidPOI checks for a 0x-prefixed 32-byte proof-of-indexing hash.
func IsValidPOI(poi string) bool {
	if !strings.HasPrefix(poi, "0x") {
		return false
	}
	matched, _ := regexp.MatchString("^0x[0-9a-fA-F]{64}$", poi)
	return matched
}

// IsValidAmount checks for a decimal token amount, with an optional
// fractional part.
func IsValidAmount(amount string) bool {
	matched, _ := regexp.MatchString(`^[0-9]+(\.[0-9]+)?$`, amount)
	return matched
}

func IsValidRPCAddress(rpcAddress string) bool {
	matched, _ := regexp.MatchString("^https?://", rpcAddress)
	return matched
}
