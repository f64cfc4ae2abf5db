package schedule

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Acon1tum/hris-test-sub000/internal/transport"
	"github.com/Acon1tum/hris-test-sub000/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListShifts() ([]Shift, error)
	GetShift(id int64) (*Shift, error)
	CreateShift(dto CreateShiftDTO) (*Shift, error)
	UpdateShift(id int64, dto UpdateShiftDTO) (*Shift, error)
	DeleteShift(id int64) error

	ListHolidays(orgID int64) ([]Holiday, error)
	GetHoliday(id int64) (*Holiday, error)
	CreateHoliday(dto CreateHolidayDTO) (*Holiday, error)
	UpdateHoliday(id int64, dto UpdateHolidayDTO) (*Holiday, error)
	DeleteHoliday(id int64) error

	GetGraceTime(orgID int64) (*GraceTime, error)
	UpdateGraceTime(id int64, dto UpdateGraceTimeDTO) (*GraceTime, error)
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

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// ---- shifts ----

func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.Service.ListShifts()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, shifts)
}

func (h *Handler) GetShift(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	sh, err := h.Service.GetShift(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, sh)
}

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var dto CreateShiftDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sh, err := h.Service.CreateShift(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusCreated, sh)
}

func (h *Handler) UpdateShift(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var dto UpdateShiftDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sh, err := h.Service.UpdateShift(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, sh)
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Service.DeleteShift(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteMessage(w, http.StatusOK, "shift deleted", nil)
}

// ---- holidays ----

func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	orgID, err := strconv.ParseInt(r.URL.Query().Get("organization_id"), 10, 64)
	if err != nil || orgID <= 0 {
		h.WriteError(w, http.StatusBadRequest, "organization_id query parameter is required")
		return
	}
	holidays, err := h.Service.ListHolidays(orgID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, holidays)
}

func (h *Handler) GetHoliday(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	holiday, err := h.Service.GetHoliday(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, holiday)
}

func (h *Handler) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var dto CreateHolidayDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	holiday, err := h.Service.CreateHoliday(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusCreated, holiday)
}

func (h *Handler) UpdateHoliday(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var dto UpdateHolidayDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	holiday, err := h.Service.UpdateHoliday(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, holiday)
}

func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Service.DeleteHoliday(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteMessage(w, http.StatusOK, "holiday deleted", nil)
}

// ---- grace time ----

func (h *Handler) GetGraceTime(w http.ResponseWriter, r *http.Request) {
	orgID, ok := h.pathID(w, r, "organizationID")
	if !ok {
		return
	}
	g, err := h.Service.GetGraceTime(orgID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, g)
}

func (h *Handler) UpdateGraceTime(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var dto UpdateGraceTimeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	g, err := h.Service.UpdateGraceTime(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, g)
}
