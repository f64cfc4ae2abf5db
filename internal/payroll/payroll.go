package payroll

import (
	"time"

	"github.com/Acon1tum/hris-test-sub000/internal"
	"github.com/Acon1tum/hris-test-sub000/internal/core/common/validation"
)

type OvertimePolicy struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"column:name;uniqueIndex;not null"`
	Multiplier       float64   `json:"multiplier" gorm:"column:multiplier;not null"`
	MaxHoursPerMonth int       `json:"max_hours_per_month" gorm:"column:max_hours_per_month"`
	Description      string    `json:"description" gorm:"column:description"`
	IsActive         bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (OvertimePolicy) TableName() string { return "overtime_policies" }

// PayrollConfig is a per-organization singleton.
type PayrollConfig struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	OrganizationID int64     `json:"organization_id" gorm:"column:organization_id;uniqueIndex;not null"`
	PayCycle       string    `json:"pay_cycle" gorm:"column:pay_cycle;not null"`
	PayDay         int       `json:"pay_day" gorm:"column:pay_day;not null"`
	CurrencyCode   string    `json:"currency_code" gorm:"column:currency_code;not null"`
	IsActive       bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (PayrollConfig) TableName() string { return "payroll_configs" }

type ExpenseAccount struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Code        string    `json:"code" gorm:"column:code;uniqueIndex;not null"`
	Name        string    `json:"name" gorm:"column:name;not null"`
	Description string    `json:"description" gorm:"column:description"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (ExpenseAccount) TableName() string { return "expense_accounts" }

type EmployerTaxableComponent struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"column:name;uniqueIndex;not null"`
	Rate        float64   `json:"rate" gorm:"column:rate;not null"`
	Description string    `json:"description" gorm:"column:description"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (EmployerTaxableComponent) TableName() string { return "employer_taxable_components" }

// Supported pay cycles.
const (
	PayCycleMonthly     = "monthly"
	PayCycleSemiMonthly = "semi_monthly"
	PayCycleBiWeekly    = "bi_weekly"
	PayCycleWeekly      = "weekly"
)

func validPayCycle(cycle string) bool {
	switch cycle {
	case PayCycleMonthly, PayCycleSemiMonthly, PayCycleBiWeekly, PayCycleWeekly:
		return true
	}
	return false
}

type CreateOvertimePolicyDTO struct {
	Name             string  `json:"name"`
	Multiplier       float64 `json:"multiplier"`
	MaxHoursPerMonth int     `json:"max_hours_per_month"`
	Description      string  `json:"description"`
}

func (d CreateOvertimePolicyDTO) Validate() error {
	return validation.NewValidator().
		Require("name", d.Name).
		MaxLength("name", d.Name, 100).
		Custom("multiplier", d.Multiplier >= 1, "multiplier must be at least 1").
		MinInt("max_hours_per_month", d.MaxHoursPerMonth, 0).
		Validate()
}

type UpdateOvertimePolicyDTO struct {
	Name             *string  `json:"name"`
	Multiplier       *float64 `json:"multiplier"`
	MaxHoursPerMonth *int     `json:"max_hours_per_month"`
	Description      *string  `json:"description"`
	IsActive         *bool    `json:"is_active"`
}

func (d UpdateOvertimePolicyDTO) Validate() error {
	v := validation.NewValidator()
	if d.Name != nil {
		v.Require("name", *d.Name).MaxLength("name", *d.Name, 100)
	}
	if d.Multiplier != nil {
		v.Custom("multiplier", *d.Multiplier >= 1, "multiplier must be at least 1")
	}
	if d.MaxHoursPerMonth != nil {
		v.MinInt("max_hours_per_month", *d.MaxHoursPerMonth, 0)
	}
	return v.Validate()
}

type CreatePayrollConfigDTO struct {
	OrganizationID int64  `json:"organization_id"`
	PayCycle       string `json:"pay_cycle"`
	PayDay         int    `json:"pay_day"`
	CurrencyCode   string `json:"currency_code"`
}

func (d CreatePayrollConfigDTO) Validate() error {
	return validation.NewValidator().
		RequireID("organization_id", d.OrganizationID).
		Require("pay_cycle", d.PayCycle).
		Custom("pay_cycle", validPayCycle(d.PayCycle), "pay_cycle must be one of monthly, semi_monthly, bi_weekly, weekly").
		MinInt("pay_day", d.PayDay, 1).
		MaxInt("pay_day", d.PayDay, 31).
		Require("currency_code", d.CurrencyCode).
		Custom("currency_code", len(d.CurrencyCode) == 3, "currency_code must be a 3-letter ISO code").
		Validate()
}

type UpdatePayrollConfigDTO struct {
	PayCycle     *string `json:"pay_cycle"`
	PayDay       *int    `json:"pay_day"`
	CurrencyCode *string `json:"currency_code"`
	IsActive     *bool   `json:"is_active"`
}

func (d UpdatePayrollConfigDTO) Validate() error {
	v := validation.NewValidator()
	if d.PayCycle != nil {
		v.Custom("pay_cycle", validPayCycle(*d.PayCycle), "pay_cycle must be one of monthly, semi_monthly, bi_weekly, weekly")
	}
	if d.PayDay != nil {
		v.MinInt("pay_day", *d.PayDay, 1).MaxInt("pay_day", *d.PayDay, 31)
	}
	if d.CurrencyCode != nil {
		v.Custom("currency_code", len(*d.CurrencyCode) == 3, "currency_code must be a 3-letter ISO code")
	}
	return v.Validate()
}

type CreateExpenseAccountDTO struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (d CreateExpenseAccountDTO) Validate() error {
	return validation.NewValidator().
		Require("code", d.Code).
		MaxLength("code", d.Code, 50).
		Require("name", d.Name).
		MaxLength("name", d.Name, 200).
		Validate()
}

type UpdateExpenseAccountDTO struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

func (d UpdateExpenseAccountDTO) Validate() error {
	v := validation.NewValidator()
	if d.Code != nil {
		v.Require("code", *d.Code).MaxLength("code", *d.Code, 50)
	}
	if d.Name != nil {
		v.Require("name", *d.Name).MaxLength("name", *d.Name, 200)
	}
	return v.Validate()
}

type CreateTaxableComponentDTO struct {
	Name        string  `json:"name"`
	Rate        float64 `json:"rate"`
	Description string  `json:"description"`
}

func (d CreateTaxableComponentDTO) Validate() error {
	return validation.NewValidator().
		Require("name", d.Name).
		MaxLength("name", d.Name, 100).
		Custom("rate", d.Rate >= 0 && d.Rate <= 100, "rate must be between 0 and 100").
		Validate()
}

type UpdateTaxableComponentDTO struct {
	Name        *string  `json:"name"`
	Rate        *float64 `json:"rate"`
	Description *string  `json:"description"`
	IsActive    *bool    `json:"is_active"`
}

func (d UpdateTaxableComponentDTO) Validate() error {
	v := validation.NewValidator()
	if d.Name != nil {
		v.Require("name", *d.Name).MaxLength("name", *d.Name, 100)
	}
	if d.Rate != nil {
		v.Custom("rate", *d.Rate >= 0 && *d.Rate <= 100, "rate must be between 0 and 100")
	}
	return v.Validate()
}

var (
	ErrOvertimeNotFound   = internal.NewNotFoundError("overtime policy not found", internal.ErrCodeRecordNotFound)
	ErrOvertimeNameTaken  = internal.NewConflictError("an overtime policy with this name already exists", internal.ErrCodeDuplicateName)
	ErrConfigNotFound     = internal.NewNotFoundError("payroll config not found", internal.ErrCodeRecordNotFound)
	ErrConfigExists       = internal.NewConflictError("a payroll config already exists for this organization", internal.ErrCodeDuplicateName)
	ErrAccountNotFound    = internal.NewNotFoundError("expense account not found", internal.ErrCodeRecordNotFound)
	ErrAccountCodeTaken   = internal.NewConflictError("an expense account with this code already exists", internal.ErrCodeDuplicateCode)
	ErrComponentNotFound  = internal.NewNotFoundError("taxable component not found", internal.ErrCodeRecordNotFound)
	ErrComponentNameTaken = internal.NewConflictError("a taxable component with this name already exists", internal.ErrCodeDuplicateName)
	ErrUnknownOrg         = internal.NewBadRequestError("organization does not exist", internal.ErrCodeInvalidReference)
)
