package payroll

import (
	"log/slog"

	"github.com/Acon1tum/hris-test-sub000/internal"
)

type RepositoryAPI interface {
	GetAllOvertimePolicies() ([]OvertimePolicy, error)
	GetOvertimePolicyByID(id int64) (*OvertimePolicy, error)
	GetOvertimePolicyByName(name string) (*OvertimePolicy, error)
	CreateOvertimePolicy(p *OvertimePolicy) error
	UpdateOvertimePolicy(p *OvertimePolicy) error
	DeleteOvertimePolicy(id int64) error

	GetAllConfigs() ([]PayrollConfig, error)
	GetConfigByID(id int64) (*PayrollConfig, error)
	GetConfigByOrganization(orgID int64) (*PayrollConfig, error)
	CreateConfig(c *PayrollConfig) error
	UpdateConfig(c *PayrollConfig) error
	DeleteConfig(id int64) error
	OrganizationExists(orgID int64) (bool, error)

	GetAllAccounts() ([]ExpenseAccount, error)
	GetAccountByID(id int64) (*ExpenseAccount, error)
	GetAccountByCode(code string) (*ExpenseAccount, error)
	CreateAccount(a *ExpenseAccount) error
	UpdateAccount(a *ExpenseAccount) error
	DeleteAccount(id int64) error

	GetAllComponents() ([]EmployerTaxableComponent, error)
	GetComponentByID(id int64) (*EmployerTaxableComponent, error)
	GetComponentByName(name string) (*EmployerTaxableComponent, error)
	CreateComponent(c *EmployerTaxableComponent) error
	UpdateComponent(c *EmployerTaxableComponent) error
	DeleteComponent(id int64) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ---- overtime policies ----

func (s *Service) ListOvertimePolicies() ([]OvertimePolicy, error) {
	return s.repo.GetAllOvertimePolicies()
}

func (s *Service) GetOvertimePolicy(id int64) (*OvertimePolicy, error) {
	p, err := s.repo.GetOvertimePolicyByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch overtime policy").WithCause(err)
	}
	if p == nil {
		return nil, ErrOvertimeNotFound
	}
	return p, nil
}

func (s *Service) CreateOvertimePolicy(dto CreateOvertimePolicyDTO) (*OvertimePolicy, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	dup, err := s.repo.GetOvertimePolicyByName(dto.Name)
	if err != nil {
		return nil, internal.NewInternalError("failed to check overtime policy name").WithCause(err)
	}
	if dup != nil {
		return nil, ErrOvertimeNameTaken
	}

	p := &OvertimePolicy{
		Name:             dto.Name,
		Multiplier:       dto.Multiplier,
		MaxHoursPerMonth: dto.MaxHoursPerMonth,
		Description:      dto.Description,
		IsActive:         true,
	}
	if err := s.repo.CreateOvertimePolicy(p); err != nil {
		return nil, internal.NewInternalError("failed to create overtime policy").WithCause(err)
	}
	s.logger.Info("overtime policy created", "overtime_policy_id", p.ID, "name", p.Name)
	return p, nil
}

func (s *Service) UpdateOvertimePolicy(id int64, dto UpdateOvertimePolicyDTO) (*OvertimePolicy, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	p, err := s.GetOvertimePolicy(id)
	if err != nil {
		return nil, err
	}
	if dto.Name != nil && *dto.Name != p.Name {
		dup, err := s.repo.GetOvertimePolicyByName(*dto.Name)
		if err != nil {
			return nil, internal.NewInternalError("failed to check overtime policy name").WithCause(err)
		}
		if dup != nil && dup.ID != id {
			return nil, ErrOvertimeNameTaken
		}
		p.Name = *dto.Name
	}
	if dto.Multiplier != nil {
		p.Multiplier = *dto.Multiplier
	}
	if dto.MaxHoursPerMonth != nil {
		p.MaxHoursPerMonth = *dto.MaxHoursPerMonth
	}
	if dto.Description != nil {
		p.Description = *dto.Description
	}
	if dto.IsActive != nil {
		p.IsActive = *dto.IsActive
	}
	if err := s.repo.UpdateOvertimePolicy(p); err != nil {
		return nil, internal.NewInternalError("failed to update overtime policy").WithCause(err)
	}
	return p, nil
}

func (s *Service) DeleteOvertimePolicy(id int64) error {
	if _, err := s.GetOvertimePolicy(id); err != nil {
		return err
	}
	if err := s.repo.DeleteOvertimePolicy(id); err != nil {
		return internal.NewInternalError("failed to delete overtime policy").WithCause(err)
	}
	s.logger.Info("overtime policy deleted", "overtime_policy_id", id)
	return nil
}

// ---- payroll configs ----

func (s *Service) ListConfigs() ([]PayrollConfig, error) {
	return s.repo.GetAllConfigs()
}

func (s *Service) GetConfig(id int64) (*PayrollConfig, error) {
	c, err := s.repo.GetConfigByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch payroll config").WithCause(err)
	}
	if c == nil {
		return nil, ErrConfigNotFound
	}
	return c, nil
}

func (s *Service) CreateConfig(dto CreatePayrollConfigDTO) (*PayrollConfig, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	exists, err := s.repo.OrganizationExists(dto.OrganizationID)
	if err != nil {
		return nil, internal.NewInternalError("failed to check organization").WithCause(err)
	}
	if !exists {
		return nil, ErrUnknownOrg
	}
	dup, err := s.repo.GetConfigByOrganization(dto.OrganizationID)
	if err != nil {
		return nil, internal.NewInternalError("failed to check payroll config").WithCause(err)
	}
	if dup != nil {
		return nil, ErrConfigExists
	}

	c := &PayrollConfig{
		OrganizationID: dto.OrganizationID,
		PayCycle:       dto.PayCycle,
		PayDay:         dto.PayDay,
		CurrencyCode:   dto.CurrencyCode,
		IsActive:       true,
	}
	if err := s.repo.CreateConfig(c); err != nil {
		return nil, internal.NewInternalError("failed to create payroll config").WithCause(err)
	}
	s.logger.Info("payroll config created", "payroll_config_id", c.ID, "organization_id", c.OrganizationID)
	return c, nil
}

func (s *Service) UpdateConfig(id int64, dto UpdatePayrollConfigDTO) (*PayrollConfig, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	c, err := s.GetConfig(id)
	if err != nil {
		return nil, err
	}
	if dto.PayCycle != nil {
		c.PayCycle = *dto.PayCycle
	}
	if dto.PayDay != nil {
		c.PayDay = *dto.PayDay
	}
	if dto.CurrencyCode != nil {
		c.CurrencyCode = *dto.CurrencyCode
	}
	if dto.IsActive != nil {
		c.IsActive = *dto.IsActive
	}
	if err := s.repo.UpdateConfig(c); err != nil {
		return nil, internal.NewInternalError("failed to update payroll config").WithCause(err)
	}
	return c, nil
}

func (s *Service) DeleteConfig(id int64) error {
	if _, err := s.GetConfig(id); err != nil {
		return err
	}
	if err := s.repo.DeleteConfig(id); err != nil {
		return internal.NewInternalError("failed to delete payroll config").WithCause(err)
	}
	s.logger.Info("payroll config deleted", "payroll_config_id", id)
	return nil
}

// ---- expense accounts ----

func (s *Service) ListAccounts() ([]ExpenseAccount, error) {
	return s.repo.GetAllAccounts()
}

func (s *Service) GetAccount(id int64) (*ExpenseAccount, error) {
	a, err := s.repo.GetAccountByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch expense account").WithCause(err)
	}
	if a == nil {
		return nil, ErrAccountNotFound
	}
	return a, nil
}

func (s *Service) CreateAccount(dto CreateExpenseAccountDTO) (*ExpenseAccount, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	dup, err := s.repo.GetAccountByCode(dto.Code)
	if err != nil {
		return nil, internal.NewInternalError("failed to check expense account code").WithCause(err)
	}
	if dup != nil {
		return nil, ErrAccountCodeTaken
	}

	a := &ExpenseAccount{
		Code:        dto.Code,
		Name:        dto.Name,
		Description: dto.Description,
		IsActive:    true,
	}
	if err := s.repo.CreateAccount(a); err != nil {
		return nil, internal.NewInternalError("failed to create expense account").WithCause(err)
	}
	s.logger.Info("expense account created", "expense_account_id", a.ID, "code", a.Code)
	return a, nil
}

func (s *Service) UpdateAccount(id int64, dto UpdateExpenseAccountDTO) (*ExpenseAccount, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	a, err := s.GetAccount(id)
	if err != nil {
		return nil, err
	}
	if dto.Code != nil && *dto.Code != a.Code {
		dup, err := s.repo.GetAccountByCode(*dto.Code)
		if err != nil {
			return nil, internal.NewInternalError("failed to check expense account code").WithCause(err)
		}
		if dup != nil && dup.ID != id {
			return nil, ErrAccountCodeTaken
		}
		a.Code = *dto.Code
	}
	if dto.Name != nil {
		a.Name = *dto.Name
	}
	if dto.Description != nil {
		a.Description = *dto.Description
	}
	if dto.IsActive != nil {
		a.IsActive = *dto.IsActive
	}
	if err := s.repo.UpdateAccount(a); err != nil {
		return nil, internal.NewInternalError("failed to update expense account").WithCause(err)
	}
	return a, nil
}

func (s *Service) DeleteAccount(id int64) error {
	if _, err := s.GetAccount(id); err != nil {
		return err
	}
	if err := s.repo.DeleteAccount(id); err != nil {
		return internal.NewInternalError("failed to delete expense account").WithCause(err)
	}
	s.logger.Info("expense account deleted", "expense_account_id", id)
	return nil
}

// ---- employer taxable components ----

func (s *Service) ListComponents() ([]EmployerTaxableComponent, error) {
	return s.repo.GetAllComponents()
}

func (s *Service) GetComponent(id int64) (*EmployerTaxableComponent, error) {
	c, err := s.repo.GetComponentByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch taxable component").WithCause(err)
	}
	if c == nil {
		return nil, ErrComponentNotFound
	}
	return c, nil
}

func (s *Service) CreateComponent(dto CreateTaxableComponentDTO) (*EmployerTaxableComponent, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	dup, err := s.repo.GetComponentByName(dto.Name)
	if err != nil {
		return nil, internal.NewInternalError("failed to check taxable component name").WithCause(err)
	}
	if dup != nil {
		return nil, ErrComponentNameTaken
	}

	c := &EmployerTaxableComponent{
		Name:        dto.Name,
		Rate:        dto.Rate,
		Description: dto.Description,
		IsActive:    true,
	}
	if err := s.repo.CreateComponent(c); err != nil {
		return nil, internal.NewInternalError("failed to create taxable component").WithCause(err)
	}
	s.logger.Info("taxable component created", "taxable_component_id", c.ID, "name", c.Name)
	return c, nil
}

func (s *Service) UpdateComponent(id int64, dto UpdateTaxableComponentDTO) (*EmployerTaxableComponent, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	c, err := s.GetComponent(id)
	if err != nil {
		return nil, err
	}
	if dto.Name != nil && *dto.Name != c.Name {
		dup, err := s.repo.GetComponentByName(*dto.Name)
		if err != nil {
			return nil, internal.NewInternalError("failed to check taxable component name").WithCause(err)
		}
		if dup != nil && dup.ID != id {
			return nil, ErrComponentNameTaken
		}
		c.Name = *dto.Name
	}
	if dto.Rate != nil {
		c.Rate = *dto.Rate
	}
	if dto.Description != nil {
		c.Description = *dto.Description
	}
	if dto.IsActive != nil {
		c.IsActive = *dto.IsActive
	}
	if err := s.repo.UpdateComponent(c); err != nil {
		return nil, internal.NewInternalError("failed to update taxable component").WithCause(err)
	}
	return c, nil
}

func (s *Service) DeleteComponent(id int64) error {
	if _, err := s.GetComponent(id); err != nil {
		return err
	}
	if err := s.repo.DeleteComponent(id); err != nil {
		return internal.NewInternalError("failed to delete taxable component").WithCause(err)
	}
	s.logger.Info("taxable component deleted", "taxable_component_id", id)
	return nil
}
