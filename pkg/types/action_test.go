package types

import (
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateActionType(t *testing.T) {
	for _, text := range []string{"allocate", "ALLOCATE", "Allocate"} {
		actionType, err := ValidateActionType(text)
		require.NoError(t, err, text)
		assert.Equal(t, ActionTypeAllocate, actionType)
	}

	_, err := ValidateActionType("deallocate")
	require.Error(t, err)
	var enumErr *InvalidEnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "ActionType", enumErr.Enum)
	assert.Equal(t, []string{"ALLOCATE", "UNALLOCATE", "REALLOCATE"}, enumErr.Valid)
	assert.Contains(t, err.Error(), "must be one of [ALLOCATE, UNALLOCATE, REALLOCATE]")
}

func TestValidateActionStatus(t *testing.T) {
	status, err := ValidateActionStatus("queued")
	require.NoError(t, err)
	assert.Equal(t, ActionStatusQueued, status)

	status, err = ValidateActionStatus("CanCeleD")
	require.NoError(t, err)
	assert.Equal(t, ActionStatusCanceled, status)

	_, err = ValidateActionStatus("done")
	var enumErr *InvalidEnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "ActionStatus", enumErr.Enum)
}

func TestZeroPOI(t *testing.T) {
	assert.Equal(t, "0x"+strings.Repeat("00", 32), ZeroPOI)
}

func TestActionFilterIsEmpty(t *testing.T) {
	assert.True(t, ActionFilter{}.IsEmpty())

	source := "indexerAgent"
	assert.False(t, ActionFilter{Source: &source}.IsEmpty())

	id := int64(1)
	assert.False(t, ActionFilter{ID: &id}.IsEmpty())
}

func TestBigIntJSONRoundTrip(t *testing.T) {
	amount, ok := new(big.Int).SetString("12500000000000000000", 10)
	require.True(t, ok)

	data, err := json.Marshal(NewBigInt(amount))
	require.NoError(t, err)
	assert.Equal(t, `"12500000000000000000"`, string(data))

	var decoded BigInt
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Zero(t, decoded.Cmp(amount))
}

func TestBigIntRejectsBareNumbers(t *testing.T) {
	var decoded BigInt
	assert.Error(t, json.Unmarshal([]byte(`12500000000000000000`), &decoded))
}

func TestBigIntNull(t *testing.T) {
	var decoded BigInt
	require.NoError(t, json.Unmarshal([]byte(`null`), &decoded))
	assert.Nil(t, decoded.Int)
}
