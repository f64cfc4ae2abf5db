package rbac

import (
	"time"

	"github.com/Acon1tum/hris-test-sub000/internal"
)

// Role is a named bundle of capability. Priority orders role lists in the
// dashboard; system roles cannot be deleted.
type Role struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"column:name;uniqueIndex;not null"`
	Description string    `json:"description" gorm:"column:description"`
	Priority    int       `json:"priority" gorm:"column:priority;default:0"`
	IsSystem    bool      `json:"is_system" gorm:"column:is_system;default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Role) TableName() string { return "roles" }

// Permission is an atomic capability identified by a resource:action slug.
// Every permission belongs to exactly one module.
type Permission struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Slug        string    `json:"slug" gorm:"column:slug;uniqueIndex;not null"`
	Description string    `json:"description" gorm:"column:description"`
	ModuleID    int64     `json:"module_id" gorm:"column:module_id;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (Permission) TableName() string { return "permissions" }

// Module is a sluggable feature area of the dashboard.
type Module struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"column:name;not null"`
	Slug         string    `json:"slug" gorm:"column:slug;uniqueIndex;not null"`
	Description  string    `json:"description" gorm:"column:description"`
	IsActive     bool      `json:"is_active" gorm:"column:is_active;default:true"`
	DisplayOrder int       `json:"display_order" gorm:"column:display_order;default:0"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Module) TableName() string { return "modules" }

// RolePermission grants a permission to a role. The only supported update is
// replacing the full set for a role.
type RolePermission struct {
	ID           int64 `json:"id" gorm:"primaryKey"`
	RoleID       int64 `json:"role_id" gorm:"column:role_id;not null;index"`
	PermissionID int64 `json:"permission_id" gorm:"column:permission_id;not null;index"`
}

func (RolePermission) TableName() string { return "role_permissions" }

// RoleModule grants a role visibility of a module. Rows with CanAccess=false
// exist as a soft-disable and never grant access.
type RoleModule struct {
	ID        int64 `json:"id" gorm:"primaryKey"`
	RoleID    int64 `json:"role_id" gorm:"column:role_id;not null;index"`
	ModuleID  int64 `json:"module_id" gorm:"column:module_id;not null;index"`
	CanAccess bool  `json:"can_access" gorm:"column:can_access;default:true"`
}

func (RoleModule) TableName() string { return "role_modules" }

// UserRole assigns a role to a user, replace-all on update like the other
// join sets.
type UserRole struct {
	ID     int64 `json:"id" gorm:"primaryKey"`
	UserID int64 `json:"user_id" gorm:"column:user_id;not null;index"`
	RoleID int64 `json:"role_id" gorm:"column:role_id;not null;index"`
}

func (UserRole) TableName() string { return "user_roles" }

// Access is the effective capability view of one user: role names, the union
// of permission slugs over all roles, and the union of module slugs where the
// grant is enabled and the module active. Order never affects membership.
type Access struct {
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
	Modules     []string `json:"modules"`
}

var (
	ErrRoleNotFound        = internal.NewNotFoundError("role not found", internal.ErrCodeRecordNotFound)
	ErrRoleNameTaken       = internal.NewConflictError("a role with this name already exists", internal.ErrCodeDuplicateName)
	ErrSystemRoleProtected = internal.NewForbiddenError("system roles cannot be deleted", internal.ErrCodeSystemRoleProtected)

	ErrPermissionNotFound      = internal.NewNotFoundError("permission not found", internal.ErrCodeRecordNotFound)
	ErrPermissionSlugTaken     = internal.NewConflictError("a permission with this slug already exists", internal.ErrCodeDuplicateSlug)
	ErrPermissionSlugImmutable = internal.NewConflictError("permission slug cannot change while roles reference it", internal.ErrCodePermissionInUse)
	ErrPermissionInUse         = internal.NewConflictError("permission is assigned to one or more roles", internal.ErrCodePermissionInUse)

	ErrModuleNotFound  = internal.NewNotFoundError("module not found", internal.ErrCodeModuleNotFound)
	ErrModuleSlugTaken = internal.NewConflictError("a module with this slug already exists", internal.ErrCodeDuplicateSlug)
	ErrModuleInUse     = internal.NewConflictError("module still owns permissions", internal.ErrCodeRecordInUse)

	ErrModuleAccessDenied = internal.NewForbiddenError("module access denied", internal.ErrCodeModuleAccessDenied)
	ErrPermissionDenied   = internal.NewForbiddenError("insufficient permissions", internal.ErrCodePermissionDenied)

	ErrUnknownPermission = internal.NewBadRequestError("one or more permission ids do not exist", internal.ErrCodeInvalidReference)
	ErrUnknownModule     = internal.NewBadRequestError("one or more module ids do not exist", internal.ErrCodeInvalidReference)
	ErrUnknownRole       = internal.NewBadRequestError("one or more role ids do not exist", internal.ErrCodeInvalidReference)
	ErrUnknownUser       = internal.NewBadRequestError("user does not exist", internal.ErrCodeInvalidReference)
)
