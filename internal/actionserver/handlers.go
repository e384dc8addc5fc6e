package actionserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/indexer-tools/actionq/pkg/logging"
	"github.com/indexer-tools/actionq/pkg/types"
)

type Handler struct {
	store  *Store
	logger logging.Logger
}

func NewHandler(store *Store, logger logging.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

func (h *Handler) QueueActions(w http.ResponseWriter, r *http.Request) {
	var req types.QueueActionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	results := h.store.Queue(req.Actions)
	h.writeActions(w, results)
}

func (h *Handler) ApproveActions(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.store.Approve)
}

func (h *Handler) CancelActions(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.store.Cancel)
}

func (h *Handler) DeleteActions(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.store.Delete)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, op func([]int64) ([]types.ActionResult, error)) {
	var req types.ActionIDsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	results, err := op(req.IDs)
	if err != nil {
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	h.writeActions(w, results)
}

func (h *Handler) ExecuteApprovedActions(w http.ResponseWriter, r *http.Request) {
	h.writeActions(w, h.store.ExecuteApproved())
}

func (h *Handler) UpdateActions(w http.ResponseWriter, r *http.Request) {
	var req types.UpdateActionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Filter.IsEmpty() {
		h.writeError(w, http.StatusBadRequest, "update filter cannot be empty")
		return
	}
	h.writeActions(w, h.store.Update(req.Filter, req.Update))
}

func (h *Handler) GetAction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid action id")
		return
	}
	action, err := h.store.Get(id)
	if err != nil {
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, types.ActionResponse{Action: *action})
}

func (h *Handler) ListActions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter types.ActionFilter
	if raw := query.Get("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid action id")
			return
		}
		filter.ID = &id
	}
	if raw := query.Get("type"); raw != "" {
		actionType, err := types.ValidateActionType(raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		filter.Type = &actionType
	}
	if raw := query.Get("status"); raw != "" {
		status, err := types.ValidateActionStatus(raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		filter.Status = &status
	}
	if raw := query.Get("source"); raw != "" {
		filter.Source = &raw
	}
	if raw := query.Get("reason"); raw != "" {
		filter.Reason = &raw
	}

	first := 0
	if raw := query.Get("first"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.writeError(w, http.StatusBadRequest, "invalid first parameter")
			return
		}
		first = parsed
	}

	h.writeActions(w, h.store.List(filter, first, query.Get("orderDirection")))
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, types.HealthCheckResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   "actionserver",
		Version:   Version,
	})
}

func (h *Handler) writeActions(w http.ResponseWriter, actions []types.ActionResult) {
	if actions == nil {
		actions = []types.ActionResult{}
	}
	h.writeJSON(w, http.StatusOK, types.ActionsResponse{Actions: actions})
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.logger.Warnf("request failed: %s", message)
	h.writeJSON(w, status, types.ErrorResponse{Error: message})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Errorf("Failed to encode response: %v", err)
	}
}
