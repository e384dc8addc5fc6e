package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indexer-tools/actionq/pkg/types"
)

func TestBuildActionFilter_Empty(t *testing.T) {
	_, err := BuildActionFilter("", "", "", "", "")
	assert.ErrorIs(t, err, ErrEmptyFilter)
}

func TestBuildActionFilter_SourceOnly(t *testing.T) {
	filter, err := BuildActionFilter("", "", "", "x", "")
	require.NoError(t, err)

	require.NotNil(t, filter.Source)
	assert.Equal(t, "x", *filter.Source)
	assert.Nil(t, filter.ID)
	assert.Nil(t, filter.Type)
	assert.Nil(t, filter.Status)
	assert.Nil(t, filter.Reason)
}

func TestBuildActionFilter_AllCriteria(t *testing.T) {
	filter, err := BuildActionFilter("42", "allocate", "queued", "indexerAgent", "manual")
	require.NoError(t, err)

	require.NotNil(t, filter.ID)
	assert.Equal(t, int64(42), *filter.ID)
	assert.Equal(t, types.ActionTypeAllocate, *filter.Type)
	assert.Equal(t, types.ActionStatusQueued, *filter.Status)
	assert.Equal(t, "indexerAgent", *filter.Source)
	assert.Equal(t, "manual", *filter.Reason)
}

func TestBuildActionFilter_BadID(t *testing.T) {
	_, err := BuildActionFilter("not-a-number", "", "", "", "")
	assert.Error(t, err)
}

func TestBuildActionFilter_BadEnum(t *testing.T) {
	_, err := BuildActionFilter("", "deallocate", "", "", "")
	var enumErr *types.InvalidEnumError
	require.ErrorAs(t, err, &enumErr)

	_, err = BuildActionFilter("", "", "done", "", "")
	require.ErrorAs(t, err, &enumErr)
}
