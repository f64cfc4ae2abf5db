package employment

import (
	"time"

	"github.com/Acon1tum/hris-test-sub000/internal"
	"github.com/Acon1tum/hris-test-sub000/internal/core/common/validation"
)

type EmploymentType struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"column:name;uniqueIndex;not null"`
	Description string    `json:"description" gorm:"column:description"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (EmploymentType) TableName() string { return "employment_types" }

type Grade struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"column:name;uniqueIndex;not null"`
	Code        string    `json:"code" gorm:"column:code;uniqueIndex;not null"`
	MinSalary   float64   `json:"min_salary" gorm:"column:min_salary"`
	MaxSalary   float64   `json:"max_salary" gorm:"column:max_salary"`
	Description string    `json:"description" gorm:"column:description"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Grade) TableName() string { return "grades" }

type CreateEmploymentTypeDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (d CreateEmploymentTypeDTO) Validate() error {
	return validation.NewValidator().
		Require("name", d.Name).
		MaxLength("name", d.Name, 100).
		Validate()
}

type UpdateEmploymentTypeDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

func (d UpdateEmploymentTypeDTO) Validate() error {
	v := validation.NewValidator()
	if d.Name != nil {
		v.Require("name", *d.Name).MaxLength("name", *d.Name, 100)
	}
	return v.Validate()
}

type CreateGradeDTO struct {
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	MinSalary   float64 `json:"min_salary"`
	MaxSalary   float64 `json:"max_salary"`
	Description string  `json:"description"`
}

func (d CreateGradeDTO) Validate() error {
	return validation.NewValidator().
		Require("name", d.Name).
		MaxLength("name", d.Name, 100).
		Require("code", d.Code).
		MaxLength("code", d.Code, 50).
		Custom("min_salary", d.MinSalary >= 0, "min_salary cannot be negative").
		Custom("max_salary", d.MaxSalary >= d.MinSalary, "max_salary must be greater than or equal to min_salary").
		Validate()
}

type UpdateGradeDTO struct {
	Name        *string  `json:"name"`
	Code        *string  `json:"code"`
	MinSalary   *float64 `json:"min_salary"`
	MaxSalary   *float64 `json:"max_salary"`
	Description *string  `json:"description"`
	IsActive    *bool    `json:"is_active"`
}

func (d UpdateGradeDTO) Validate() error {
	v := validation.NewValidator()
	if d.Name != nil {
		v.Require("name", *d.Name).MaxLength("name", *d.Name, 100)
	}
	if d.Code != nil {
		v.Require("code", *d.Code).MaxLength("code", *d.Code, 50)
	}
	if d.MinSalary != nil {
		v.Custom("min_salary", *d.MinSalary >= 0, "min_salary cannot be negative")
	}
	return v.Validate()
}

var (
	ErrTypeNotFound       = internal.NewNotFoundError("employment type not found", internal.ErrCodeRecordNotFound)
	ErrTypeNameTaken      = internal.NewConflictError("an employment type with this name already exists", internal.ErrCodeDuplicateName)
	ErrTypeInUse          = internal.NewConflictError("employment type still has users assigned", internal.ErrCodeRecordInUse)
	ErrGradeNotFound      = internal.NewNotFoundError("grade not found", internal.ErrCodeRecordNotFound)
	ErrGradeNameTaken     = internal.NewConflictError("a grade with this name already exists", internal.ErrCodeDuplicateName)
	ErrGradeCodeTaken     = internal.NewConflictError("a grade with this code already exists", internal.ErrCodeDuplicateCode)
	ErrGradeInUse         = internal.NewConflictError("grade still has users assigned", internal.ErrCodeRecordInUse)
	ErrInvalidSalaryRange = internal.NewValidationError("max_salary must be greater than or equal to min_salary")
)
