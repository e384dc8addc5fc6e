package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDeploymentID(t *testing.T) {
	assert.True(t, IsValidDeploymentID("QmZZ8f5oJXRifkf3Qoq2e5tq2VwDYtVcCRTF3kSAgSBrHx"))
	assert.True(t, IsValidDeploymentID("0x"+strings.Repeat("ab", 32)))
	assert.False(t, IsValidDeploymentID("Qmtooshort"))
	assert.False(t, IsValidDeploymentID(""))
	assert.False(t, IsValidDeploymentID("0x1234"))
}

func TestIsValidAllocationID(t *testing.T) {
	assert.True(t, IsValidAllocationID("0x3071F58e2a2d24Aa16b3D88Eb8849e9e415EeF80"))
	assert.False(t, IsValidAllocationID("0x1234"))
	assert.False(t, IsValidAllocationID("not-an-address"))
}

func TestIsValidPOI(t *testing.T) {
	assert.True(t, IsValidPOI("0x"+strings.Repeat("00", 32)))
	assert.True(t, IsValidPOI("0x"+strings.Repeat("aB", 32)))
	assert.False(t, IsValidPOI(strings.Repeat("00", 32)))
	assert.False(t, IsValidPOI("0x0"))
	assert.False(t, IsValidPOI(""))
}

func TestIsValidAmount(t *testing.T) {
	assert.True(t, IsValidAmount("1000"))
	assert.True(t, IsValidAmount("12.5"))
	assert.False(t, IsValidAmount("-1"))
	assert.False(t, IsValidAmount("1e18"))
	assert.False(t, IsValidAmount(""))
}

func TestIsValidRPCAddress(t *testing.T) {
	assert.True(t, IsValidRPCAddress("http://localhost:8000"))
	assert.True(t, IsValidRPCAddress("https://indexer.example.com"))
	assert.False(t, IsValidRPCAddress("localhost:8000"))
}
