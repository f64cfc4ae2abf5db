package leave

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Acon1tum/hris-test-sub000/internal/transport"
	"github.com/Acon1tum/hris-test-sub000/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListTypes() ([]LeaveType, error)
	GetType(id int64) (*LeaveType, error)
	CreateType(dto CreateLeaveTypeDTO) (*LeaveType, error)
	UpdateType(id int64, dto UpdateLeaveTypeDTO) (*LeaveType, error)
	DeleteType(id int64) error

	ListPolicies() ([]LeavePolicy, error)
	GetPolicy(id int64) (*LeavePolicy, error)
	CreatePolicy(dto CreateLeavePolicyDTO) (*LeavePolicy, error)
	UpdatePolicy(id int64, dto UpdateLeavePolicyDTO) (*LeavePolicy, error)
	DeletePolicy(id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.L()),
		Service:     svc,
	}
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// ---- leave types ----

func (h *Handler) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Service.ListTypes()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, types)
}

func (h *Handler) GetType(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	t, err := h.Service.GetType(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, t)
}

func (h *Handler) CreateType(w http.ResponseWriter, r *http.Request) {
	var dto CreateLeaveTypeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	t, err := h.Service.CreateType(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusCreated, t)
}

func (h *Handler) UpdateType(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var dto UpdateLeaveTypeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	t, err := h.Service.UpdateType(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, t)
}

func (h *Handler) DeleteType(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.Service.DeleteType(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteMessage(w, http.StatusOK, "leave type deleted", nil)
}

// ---- leave policies ----

func (h *Handler) ListPolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := h.Service.ListPolicies()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, policies)
}

func (h *Handler) GetPolicy(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	p, err := h.Service.GetPolicy(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, p)
}

func (h *Handler) CreatePolicy(w http.ResponseWriter, r *http.Request) {
	var dto CreateLeavePolicyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.Service.CreatePolicy(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusCreated, p)
}

func (h *Handler) UpdatePolicy(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var dto UpdateLeavePolicyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.Service.UpdatePolicy(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, p)
}

func (h *Handler) DeletePolicy(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.Service.DeletePolicy(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteMessage(w, http.StatusOK, "leave policy deleted", nil)
}
