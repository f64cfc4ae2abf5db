package department

import (
	"time"

	"github.com/Acon1tum/hris-test-sub000/internal"
	"github.com/Acon1tum/hris-test-sub000/internal/core/common/validation"
)

type Department struct {
	ID                 int64     `json:"id" gorm:"primaryKey"`
	Name               string    `json:"name" gorm:"column:name;uniqueIndex;not null"`
	Code               string    `json:"code" gorm:"column:code;uniqueIndex;not null"`
	Description        string    `json:"description" gorm:"column:description"`
	ParentDepartmentID *int64    `json:"parent_department_id" gorm:"column:parent_department_id;index"`
	DepartmentHeadID   *int64    `json:"department_head_id" gorm:"column:department_head_id"`
	IsActive           bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt          time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Department) TableName() string { return "departments" }

type CreateDepartmentDTO struct {
	Name               string `json:"name"`
	Code               string `json:"code"`
	Description        string `json:"description"`
	ParentDepartmentID *int64 `json:"parent_department_id"`
	DepartmentHeadID   *int64 `json:"department_head_id"`
}

func (d CreateDepartmentDTO) Validate() error {
	v := validation.NewValidator().
		Require("name", d.Name).
		MaxLength("name", d.Name, 200).
		Require("code", d.Code).
		MaxLength("code", d.Code, 50)
	if d.ParentDepartmentID != nil {
		v.RequireID("parent_department_id", *d.ParentDepartmentID)
	}
	if d.DepartmentHeadID != nil {
		v.RequireID("department_head_id", *d.DepartmentHeadID)
	}
	return v.Validate()
}

type UpdateDepartmentDTO struct {
	Name               *string `json:"name"`
	Code               *string `json:"code"`
	Description        *string `json:"description"`
	ParentDepartmentID *int64  `json:"parent_department_id"`
	ClearParent        bool    `json:"clear_parent"`
	DepartmentHeadID   *int64  `json:"department_head_id"`
	ClearHead          bool    `json:"clear_head"`
	IsActive           *bool   `json:"is_active"`
}

func (d UpdateDepartmentDTO) Validate() error {
	v := validation.NewValidator()
	if d.Name != nil {
		v.Require("name", *d.Name).MaxLength("name", *d.Name, 200)
	}
	if d.Code != nil {
		v.Require("code", *d.Code).MaxLength("code", *d.Code, 50)
	}
	if d.ParentDepartmentID != nil {
		v.RequireID("parent_department_id", *d.ParentDepartmentID)
	}
	if d.DepartmentHeadID != nil {
		v.RequireID("department_head_id", *d.DepartmentHeadID)
	}
	return v.Validate()
}

var (
	ErrNotFound      = internal.NewNotFoundError("department not found", internal.ErrCodeRecordNotFound)
	ErrNameTaken     = internal.NewConflictError("a department with this name already exists", internal.ErrCodeDuplicateName)
	ErrCodeTaken     = internal.NewConflictError("a department with this code already exists", internal.ErrCodeDuplicateCode)
	ErrUnknownParent = internal.NewBadRequestError("parent department does not exist", internal.ErrCodeInvalidReference)
	ErrUnknownHead   = internal.NewBadRequestError("department head user does not exist", internal.ErrCodeInvalidReference)
	ErrCycle         = internal.NewConflictError("department hierarchy would form a cycle", internal.ErrCodeDepartmentCycle)
	ErrHasChildren   = internal.NewConflictError("department still has sub-departments", internal.ErrCodeRecordInUse)
	ErrUsersAssigned = internal.NewConflictError("department still has users assigned", internal.ErrCodeRecordInUse)
	ErrSelfParent    = internal.NewConflictError("a department cannot be its own parent", internal.ErrCodeDepartmentCycle)
)
