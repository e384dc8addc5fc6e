package actionserver

import (
	"fmt"
	"sort"
	"sync"

	"github.com/indexer-tools/actionq/pkg/types"
)

// Store is an in-memory action queue with the lifecycle semantics of the
// real management service: QUEUED -> APPROVED -> SUCCESS. It backs the
// reference server used for local development and client tests; nothing is
// persisted.
type Store struct {
	mu      sync.Mutex
	nextID  int64
	actions map[int64]*types.ActionResult
}

func NewStore() *Store {
	return &Store{
		nextID:  1,
		actions: make(map[int64]*types.ActionResult),
	}
}

// Queue adds every input to the queue and returns the stored records.
func (s *Store) Queue(inputs []types.ActionInput) []types.ActionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]types.ActionResult, 0, len(inputs))
	for _, input := range inputs {
		status := input.Status
		if status == "" {
			status = types.ActionStatusQueued
		}
		action := &types.ActionResult{
			ID:              s.nextID,
			DeploymentID:    input.DeploymentID,
			AllocationID:    input.AllocationID,
			Amount:          input.Amount,
			POI:             input.POI,
			Force:           input.Force,
			Type:            input.Type,
			Source:          input.Source,
			Reason:          input.Reason,
			Status:          status,
			Priority:        input.Priority,
			ProtocolNetwork: input.ProtocolNetwork,
		}
		s.actions[action.ID] = action
		s.nextID++
		results = append(results, *action)
	}
	return results
}

// Approve marks the given actions approved for execution.
func (s *Store) Approve(ids []int64) ([]types.ActionResult, error) {
	return s.transition(ids, types.ActionStatusApproved)
}

// Cancel marks the given actions canceled.
func (s *Store) Cancel(ids []int64) ([]types.ActionResult, error) {
	return s.transition(ids, types.ActionStatusCanceled)
}

func (s *Store) transition(ids []int64, status types.ActionStatus) ([]types.ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]types.ActionResult, 0, len(ids))
	for _, id := range ids {
		action, ok := s.actions[id]
		if !ok {
			return nil, fmt.Errorf("action %d not found", id)
		}
		action.Status = status
		results = append(results, *action)
	}
	return results, nil
}

// ExecuteApproved transitions every approved action to SUCCESS with a
// synthetic transaction reference.
func (s *Store) ExecuteApproved() []types.ActionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []types.ActionResult
	for _, action := range s.actions {
		if action.Status == types.ActionStatusApproved {
			action.Status = types.ActionStatusSuccess
			action.Transaction = fmt.Sprintf("0x%064x", action.ID)
			results = append(results, *action)
		}
	}
	sortByID(results)
	return results
}

// Delete removes the given actions from the queue.
func (s *Store) Delete(ids []int64) ([]types.ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]types.ActionResult, 0, len(ids))
	for _, id := range ids {
		action, ok := s.actions[id]
		if !ok {
			return nil, fmt.Errorf("action %d not found", id)
		}
		results = append(results, *action)
		delete(s.actions, id)
	}
	return results, nil
}

// Get returns the action with the given id.
func (s *Store) Get(id int64) (*types.ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	action, ok := s.actions[id]
	if !ok {
		return nil, fmt.Errorf("action %d not found", id)
	}
	copied := *action
	return &copied, nil
}

// List returns every action matching the filter, ordered by id. A first
// value of 0 means no limit; direction "desc" reverses the ordering.
func (s *Store) List(filter types.ActionFilter, first int, orderDirection string) []types.ActionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []types.ActionResult
	for _, action := range s.actions {
		if matches(filter, action) {
			results = append(results, *action)
		}
	}
	sortByID(results)
	if orderDirection == types.OrderDirectionDesc {
		for i, j := 0, len(results)-1; i < j; i, j = i+1, j-1 {
			results[i], results[j] = results[j], results[i]
		}
	}
	if first > 0 && len(results) > first {
		results = results[:first]
	}
	return results
}

// Update applies the partial update to every matching action.
func (s *Store) Update(filter types.ActionFilter, update types.ActionUpdateInput) []types.ActionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var results []types.ActionResult
	for _, action := range s.actions {
		if !matches(filter, action) {
			continue
		}
		applyUpdate(action, update)
		results = append(results, *action)
	}
	sortByID(results)
	return results
}

func matches(filter types.ActionFilter, action *types.ActionResult) bool {
	if filter.ID != nil && *filter.ID != action.ID {
		return false
	}
	if filter.Type != nil && *filter.Type != action.Type {
		return false
	}
	if filter.Status != nil && *filter.Status != action.Status {
		return false
	}
	if filter.Source != nil && *filter.Source != action.Source {
		return false
	}
	if filter.Reason != nil && *filter.Reason != action.Reason {
		return false
	}
	return true
}

func applyUpdate(action *types.ActionResult, update types.ActionUpdateInput) {
	if update.DeploymentID != nil {
		action.DeploymentID = *update.DeploymentID
	}
	if update.AllocationID != nil {
		action.AllocationID = *update.AllocationID
	}
	if update.Amount != nil {
		action.Amount = update.Amount.String()
	}
	if update.POI != nil {
		action.POI = *update.POI
	}
	if update.Force != nil {
		action.Force = *update.Force
	}
	if update.Type != nil {
		action.Type = *update.Type
	}
	if update.Status != nil {
		action.Status = *update.Status
	}
	if update.Reason != nil {
		action.Reason = *update.Reason
	}
}

func sortByID(actions []types.ActionResult) {
	sort.Slice(actions, func(i, j int) bool { return actions[i].ID < actions[j].ID })
}
