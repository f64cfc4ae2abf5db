package employment

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Acon1tum/hris-test-sub000/internal/transport"
	"github.com/Acon1tum/hris-test-sub000/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListTypes() ([]EmploymentType, error)
	GetType(id int64) (*EmploymentType, error)
	CreateType(dto CreateEmploymentTypeDTO) (*EmploymentType, error)
	UpdateType(id int64, dto UpdateEmploymentTypeDTO) (*EmploymentType, error)
	DeleteType(id int64) error

	ListGrades() ([]Grade, error)
	GetGrade(id int64) (*Grade, error)
	CreateGrade(dto CreateGradeDTO) (*Grade, error)
	UpdateGrade(id int64, dto UpdateGradeDTO) (*Grade, error)
	DeleteGrade(id int64) error
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

// ---- employment types ----

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
	var dto CreateEmploymentTypeDTO
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
	var dto UpdateEmploymentTypeDTO
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
	h.WriteMessage(w, http.StatusOK, "employment type deleted", nil)
}

// ---- grades ----

func (h *Handler) ListGrades(w http.ResponseWriter, r *http.Request) {
	grades, err := h.Service.ListGrades()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, grades)
}

func (h *Handler) GetGrade(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	g, err := h.Service.GetGrade(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, g)
}

func (h *Handler) CreateGrade(w http.ResponseWriter, r *http.Request) {
	var dto CreateGradeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	g, err := h.Service.CreateGrade(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusCreated, g)
}

func (h *Handler) UpdateGrade(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var dto UpdateGradeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	g, err := h.Service.UpdateGrade(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, g)
}

func (h *Handler) DeleteGrade(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.Service.DeleteGrade(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteMessage(w, http.StatusOK, "grade deleted", nil)
}
