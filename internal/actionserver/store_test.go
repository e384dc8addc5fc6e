package actionserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indexer-tools/actionq/pkg/types"
)

func queueOne(t *testing.T, store *Store, actionType types.ActionType) types.ActionResult {
	t.Helper()
	results := store.Queue([]types.ActionInput{{
		DeploymentID:    "QmZZ8f5oJXRifkf3Qoq2e5tq2VwDYtVcCRTF3kSAgSBrHx",
		Amount:          "1000",
		Type:            actionType,
		Source:          "indexerAgent",
		Status:          types.ActionStatusQueued,
		ProtocolNetwork: "arbitrum-one",
	}})
	require.Len(t, results, 1)
	return results[0]
}

func TestStoreLifecycle(t *testing.T) {
	store := NewStore()

	queued := queueOne(t, store, types.ActionTypeAllocate)
	assert.Equal(t, int64(1), queued.ID)
	assert.Equal(t, types.ActionStatusQueued, queued.Status)

	approved, err := store.Approve([]int64{queued.ID})
	require.NoError(t, err)
	assert.Equal(t, types.ActionStatusApproved, approved[0].Status)

	executed := store.ExecuteApproved()
	require.Len(t, executed, 1)
	assert.Equal(t, types.ActionStatusSuccess, executed[0].Status)
	assert.NotEmpty(t, executed[0].Transaction)

	// Nothing left to execute
	assert.Empty(t, store.ExecuteApproved())
}

func TestStoreQueueEmptyBatch(t *testing.T) {
	store := NewStore()
	assert.Empty(t, store.Queue(nil))
	assert.Empty(t, store.Queue([]types.ActionInput{}))
}

func TestStoreCancelAndDelete(t *testing.T) {
	store := NewStore()
	queued := queueOne(t, store, types.ActionTypeAllocate)

	canceled, err := store.Cancel([]int64{queued.ID})
	require.NoError(t, err)
	assert.Equal(t, types.ActionStatusCanceled, canceled[0].Status)

	_, err = store.Delete([]int64{queued.ID})
	require.NoError(t, err)

	_, err = store.Get(queued.ID)
	assert.Error(t, err)

	_, err = store.Delete([]int64{999})
	assert.Error(t, err)
}

func TestStoreListFilterAndPaging(t *testing.T) {
	store := NewStore()
	for i := 0; i < 5; i++ {
		queueOne(t, store, types.ActionTypeAllocate)
	}
	queueOne(t, store, types.ActionTypeUnallocate)

	allocate := types.ActionTypeAllocate
	results := store.List(types.ActionFilter{Type: &allocate}, 0, "")
	assert.Len(t, results, 5)

	results = store.List(types.ActionFilter{Type: &allocate}, 2, "")
	require.Len(t, results, 2)
	assert.Equal(t, int64(1), results[0].ID)

	results = store.List(types.ActionFilter{Type: &allocate}, 2, types.OrderDirectionDesc)
	require.Len(t, results, 2)
	assert.Equal(t, int64(5), results[0].ID)
}

func TestStoreUpdate(t *testing.T) {
	store := NewStore()
	queueOne(t, store, types.ActionTypeAllocate)
	queueOne(t, store, types.ActionTypeAllocate)

	queued := types.ActionStatusQueued
	approved := types.ActionStatusApproved
	reason := "batch-approval"

	results := store.Update(
		types.ActionFilter{Status: &queued},
		types.ActionUpdateInput{Status: &approved, Reason: &reason},
	)
	require.Len(t, results, 2)
	for _, result := range results {
		assert.Equal(t, types.ActionStatusApproved, result.Status)
		assert.Equal(t, "batch-approval", result.Reason)
	}
}
