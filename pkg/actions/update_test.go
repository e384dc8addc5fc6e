package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indexer-tools/actionq/pkg/types"
)

func TestParseActionUpdateInput_Amount(t *testing.T) {
	update, err := ParseActionUpdateInput(map[string]interface{}{"amount": "12.5"})
	require.NoError(t, err)
	require.NotNil(t, update.Amount)
	assert.Equal(t, "12500000000000000000", update.Amount.String())
}

func TestParseActionUpdateInput_UnknownField(t *testing.T) {
	update, err := ParseActionUpdateInput(map[string]interface{}{"bogusField": "x"})
	assert.Nil(t, update)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "bogusField", parseErr.Field)
	assert.Contains(t, err.Error(), "bogusField")
}

func TestParseActionUpdateInput_FailFast(t *testing.T) {
	// Keys are visited in sorted order, so "amount" fails before "status"
	// is ever attempted.
	update, err := ParseActionUpdateInput(map[string]interface{}{
		"status": "approved",
		"amount": "not-a-number",
	})
	assert.Nil(t, update)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "amount", parseErr.Field)
}

func TestParseActionUpdateInput_Enums(t *testing.T) {
	update, err := ParseActionUpdateInput(map[string]interface{}{
		"type":   "unallocate",
		"status": "Approved",
	})
	require.NoError(t, err)
	require.NotNil(t, update.Type)
	require.NotNil(t, update.Status)
	assert.Equal(t, types.ActionTypeUnallocate, *update.Type)
	assert.Equal(t, types.ActionStatusApproved, *update.Status)

	_, err = ParseActionUpdateInput(map[string]interface{}{"status": "done"})
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "status", parseErr.Field)

	var enumErr *types.InvalidEnumError
	assert.ErrorAs(t, err, &enumErr)
}

func TestParseActionUpdateInput_POI(t *testing.T) {
	update, err := ParseActionUpdateInput(map[string]interface{}{"poi": "0x0"})
	require.NoError(t, err)
	require.NotNil(t, update.POI)
	assert.Equal(t, types.ZeroPOI, *update.POI)

	_, err = ParseActionUpdateInput(map[string]interface{}{"poi": "0xnotahash"})
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "poi", parseErr.Field)
}

func TestParseActionUpdateInput_Force(t *testing.T) {
	update, err := ParseActionUpdateInput(map[string]interface{}{"force": true})
	require.NoError(t, err)
	require.NotNil(t, update.Force)
	assert.True(t, *update.Force)

	update, err = ParseActionUpdateInput(map[string]interface{}{"force": "false"})
	require.NoError(t, err)
	require.NotNil(t, update.Force)
	assert.False(t, *update.Force)

	_, err = ParseActionUpdateInput(map[string]interface{}{"force": "maybe"})
	assert.Error(t, err)
}

func TestParseActionUpdateInput_NullableFields(t *testing.T) {
	update, err := ParseActionUpdateInput(map[string]interface{}{
		"deploymentID": nil,
		"amount":       nil,
		"poi":          nil,
		"reason":       nil,
		"id":           nil,
	})
	require.NoError(t, err)
	assert.Nil(t, update.DeploymentID)
	assert.Nil(t, update.Amount)
	assert.Nil(t, update.POI)
	assert.Nil(t, update.Reason)
	assert.Nil(t, update.ID)
}

func TestParseActionUpdateInput_ID(t *testing.T) {
	update, err := ParseActionUpdateInput(map[string]interface{}{"id": "17"})
	require.NoError(t, err)
	require.NotNil(t, update.ID)
	assert.Equal(t, int64(17), *update.ID)
}

func TestParseActionUpdateInput_Empty(t *testing.T) {
	update, err := ParseActionUpdateInput(map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, &types.ActionUpdateInput{}, update)
}

func TestParseTokenAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "1000000000000000000"},
		{"12.5", "12500000000000000000"},
		{"0.000000000000000001", "1"},
		{"1000", "1000000000000000000000"},
	}
	for _, tc := range tests {
		amount, err := ParseTokenAmount(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, amount.String(), tc.in)
	}

	for _, bad := range []string{"", "-1", "1e18", "1.2.3", "0.0000000000000000001"} {
		_, err := ParseTokenAmount(bad)
		assert.Error(t, err, bad)
	}
}
