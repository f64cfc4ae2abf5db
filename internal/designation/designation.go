package designation

import (
	"time"

	"github.com/Acon1tum/hris-test-sub000/internal"
	"github.com/Acon1tum/hris-test-sub000/internal/core/common/validation"
)

type Designation struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	DepartmentID int64     `json:"department_id" gorm:"column:department_id;not null;index"`
	Name         string    `json:"name" gorm:"column:name;not null"`
	Description  string    `json:"description" gorm:"column:description"`
	IsActive     bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`

	PermissionIDs []int64 `json:"permission_ids" gorm:"-"`
}

func (Designation) TableName() string { return "designations" }

type DesignationPermission struct {
	ID            int64 `json:"id" gorm:"primaryKey"`
	DesignationID int64 `json:"designation_id" gorm:"column:designation_id;not null;index"`
	PermissionID  int64 `json:"permission_id" gorm:"column:permission_id;not null;index"`
}

func (DesignationPermission) TableName() string { return "designation_permissions" }

type CreateDesignationDTO struct {
	DepartmentID  int64   `json:"department_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	PermissionIDs []int64 `json:"permission_ids"`
}

func (d CreateDesignationDTO) Validate() error {
	v := validation.NewValidator().
		RequireID("department_id", d.DepartmentID).
		Require("name", d.Name).
		MaxLength("name", d.Name, 200)
	for _, id := range d.PermissionIDs {
		v.RequireID("permission_ids", id)
	}
	return v.Validate()
}

type UpdateDesignationDTO struct {
	DepartmentID  *int64   `json:"department_id"`
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	IsActive      *bool    `json:"is_active"`
	PermissionIDs *[]int64 `json:"permission_ids"`
}

func (d UpdateDesignationDTO) Validate() error {
	v := validation.NewValidator()
	if d.DepartmentID != nil {
		v.RequireID("department_id", *d.DepartmentID)
	}
	if d.Name != nil {
		v.Require("name", *d.Name).MaxLength("name", *d.Name, 200)
	}
	if d.PermissionIDs != nil {
		for _, id := range *d.PermissionIDs {
			v.RequireID("permission_ids", id)
		}
	}
	return v.Validate()
}

var (
	ErrNotFound          = internal.NewNotFoundError("designation not found", internal.ErrCodeRecordNotFound)
	ErrNameTaken         = internal.NewConflictError("a designation with this name already exists in the department", internal.ErrCodeDuplicateName)
	ErrUnknownDepartment = internal.NewBadRequestError("department does not exist", internal.ErrCodeInvalidReference)
	ErrUnknownPermission = internal.NewBadRequestError("one or more permissions do not exist", internal.ErrCodeInvalidReference)
	ErrUsersAssigned     = internal.NewConflictError("designation still has users assigned", internal.ErrCodeRecordInUse)
)
