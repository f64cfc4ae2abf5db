package leave

import (
	"time"

	"github.com/Acon1tum/hris-test-sub000/internal"
	"github.com/Acon1tum/hris-test-sub000/internal/core/common/validation"
)

type LeaveType struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"column:name;uniqueIndex;not null"`
	Description      string    `json:"description" gorm:"column:description"`
	IsPaid           bool      `json:"is_paid" gorm:"column:is_paid;default:true"`
	RequiresApproval bool      `json:"requires_approval" gorm:"column:requires_approval;default:true"`
	IsActive         bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (LeaveType) TableName() string { return "leave_types" }

type LeavePolicy struct {
	ID               int64     `json:"id" gorm:"primaryKey"`
	LeaveTypeID      int64     `json:"leave_type_id" gorm:"column:leave_type_id;not null;index"`
	EmploymentTypeID int64     `json:"employment_type_id" gorm:"column:employment_type_id;not null;index"`
	DaysPerYear      int       `json:"days_per_year" gorm:"column:days_per_year;not null"`
	MaxCarryOverDays int       `json:"max_carry_over_days" gorm:"column:max_carry_over_days"`
	IsActive         bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (LeavePolicy) TableName() string { return "leave_policies" }

type CreateLeaveTypeDTO struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	IsPaid           *bool  `json:"is_paid"`
	RequiresApproval *bool  `json:"requires_approval"`
}

func (d CreateLeaveTypeDTO) Validate() error {
	return validation.NewValidator().
		Require("name", d.Name).
		MaxLength("name", d.Name, 100).
		Validate()
}

type UpdateLeaveTypeDTO struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	IsPaid           *bool   `json:"is_paid"`
	RequiresApproval *bool   `json:"requires_approval"`
	IsActive         *bool   `json:"is_active"`
}

func (d UpdateLeaveTypeDTO) Validate() error {
	v := validation.NewValidator()
	if d.Name != nil {
		v.Require("name", *d.Name).MaxLength("name", *d.Name, 100)
	}
	return v.Validate()
}

type CreateLeavePolicyDTO struct {
	LeaveTypeID      int64 `json:"leave_type_id"`
	EmploymentTypeID int64 `json:"employment_type_id"`
	DaysPerYear      int   `json:"days_per_year"`
	MaxCarryOverDays int   `json:"max_carry_over_days"`
}

func (d CreateLeavePolicyDTO) Validate() error {
	return validation.NewValidator().
		RequireID("leave_type_id", d.LeaveTypeID).
		RequireID("employment_type_id", d.EmploymentTypeID).
		MinInt("days_per_year", d.DaysPerYear, 0).
		MaxInt("days_per_year", d.DaysPerYear, 366).
		MinInt("max_carry_over_days", d.MaxCarryOverDays, 0).
		Validate()
}

type UpdateLeavePolicyDTO struct {
	DaysPerYear      *int  `json:"days_per_year"`
	MaxCarryOverDays *int  `json:"max_carry_over_days"`
	IsActive         *bool `json:"is_active"`
}

func (d UpdateLeavePolicyDTO) Validate() error {
	v := validation.NewValidator()
	if d.DaysPerYear != nil {
		v.MinInt("days_per_year", *d.DaysPerYear, 0).MaxInt("days_per_year", *d.DaysPerYear, 366)
	}
	if d.MaxCarryOverDays != nil {
		v.MinInt("max_carry_over_days", *d.MaxCarryOverDays, 0)
	}
	return v.Validate()
}

var (
	ErrTypeNotFound      = internal.NewNotFoundError("leave type not found", internal.ErrCodeRecordNotFound)
	ErrTypeNameTaken     = internal.NewConflictError("a leave type with this name already exists", internal.ErrCodeDuplicateName)
	ErrTypeInUse         = internal.NewConflictError("leave type still has policies defined", internal.ErrCodeRecordInUse)
	ErrPolicyNotFound    = internal.NewNotFoundError("leave policy not found", internal.ErrCodeRecordNotFound)
	ErrPolicyExists      = internal.NewConflictError("a policy for this leave type and employment type already exists", internal.ErrCodeDuplicateName)
	ErrUnknownLeaveType  = internal.NewBadRequestError("leave type does not exist", internal.ErrCodeInvalidReference)
	ErrUnknownEmployment = internal.NewBadRequestError("employment type does not exist", internal.ErrCodeInvalidReference)
)
