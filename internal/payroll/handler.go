package payroll

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Acon1tum/hris-test-sub000/internal/transport"
	"github.com/Acon1tum/hris-test-sub000/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListOvertimePolicies() ([]OvertimePolicy, error)
	GetOvertimePolicy(id int64) (*OvertimePolicy, error)
	CreateOvertimePolicy(dto CreateOvertimePolicyDTO) (*OvertimePolicy, error)
	UpdateOvertimePolicy(id int64, dto UpdateOvertimePolicyDTO) (*OvertimePolicy, error)
	DeleteOvertimePolicy(id int64) error

	ListConfigs() ([]PayrollConfig, error)
	GetConfig(id int64) (*PayrollConfig, error)
	CreateConfig(dto CreatePayrollConfigDTO) (*PayrollConfig, error)
	UpdateConfig(id int64, dto UpdatePayrollConfigDTO) (*PayrollConfig, error)
	DeleteConfig(id int64) error

	ListAccounts() ([]ExpenseAccount, error)
	GetAccount(id int64) (*ExpenseAccount, error)
	CreateAccount(dto CreateExpenseAccountDTO) (*ExpenseAccount, error)
	UpdateAccount(id int64, dto UpdateExpenseAccountDTO) (*ExpenseAccount, error)
	DeleteAccount(id int64) error

	ListComponents() ([]EmployerTaxableComponent, error)
	GetComponent(id int64) (*EmployerTaxableComponent, error)
	CreateComponent(dto CreateTaxableComponentDTO) (*EmployerTaxableComponent, error)
	UpdateComponent(id int64, dto UpdateTaxableComponentDTO) (*EmployerTaxableComponent, error)
	DeleteComponent(id int64) error
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

// ---- overtime policies ----

func (h *Handler) ListOvertimePolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := h.Service.ListOvertimePolicies()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, policies)
}

func (h *Handler) GetOvertimePolicy(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	p, err := h.Service.GetOvertimePolicy(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, p)
}

func (h *Handler) CreateOvertimePolicy(w http.ResponseWriter, r *http.Request) {
	var dto CreateOvertimePolicyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.Service.CreateOvertimePolicy(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusCreated, p)
}

func (h *Handler) UpdateOvertimePolicy(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var dto UpdateOvertimePolicyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p, err := h.Service.UpdateOvertimePolicy(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, p)
}

func (h *Handler) DeleteOvertimePolicy(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.Service.DeleteOvertimePolicy(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteMessage(w, http.StatusOK, "overtime policy deleted", nil)
}

// ---- payroll configs ----

func (h *Handler) ListConfigs(w http.ResponseWriter, r *http.Request) {
	configs, err := h.Service.ListConfigs()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, configs)
}

func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	c, err := h.Service.GetConfig(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, c)
}

func (h *Handler) CreateConfig(w http.ResponseWriter, r *http.Request) {
	var dto CreatePayrollConfigDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.Service.CreateConfig(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusCreated, c)
}

func (h *Handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var dto UpdatePayrollConfigDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.Service.UpdateConfig(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, c)
}

func (h *Handler) DeleteConfig(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.Service.DeleteConfig(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteMessage(w, http.StatusOK, "payroll config deleted", nil)
}

// ---- expense accounts ----

func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.Service.ListAccounts()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, accounts)
}

func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	a, err := h.Service.GetAccount(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, a)
}

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var dto CreateExpenseAccountDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a, err := h.Service.CreateAccount(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusCreated, a)
}

func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var dto UpdateExpenseAccountDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a, err := h.Service.UpdateAccount(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, a)
}

func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.Service.DeleteAccount(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteMessage(w, http.StatusOK, "expense account deleted", nil)
}

// ---- employer taxable components ----

func (h *Handler) ListComponents(w http.ResponseWriter, r *http.Request) {
	components, err := h.Service.ListComponents()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, components)
}

func (h *Handler) GetComponent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	c, err := h.Service.GetComponent(id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, c)
}

func (h *Handler) CreateComponent(w http.ResponseWriter, r *http.Request) {
	var dto CreateTaxableComponentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.Service.CreateComponent(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusCreated, c)
}

func (h *Handler) UpdateComponent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var dto UpdateTaxableComponentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.Service.UpdateComponent(id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteData(w, http.StatusOK, c)
}

func (h *Handler) DeleteComponent(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.Service.DeleteComponent(id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteMessage(w, http.StatusOK, "taxable component deleted", nil)
}
