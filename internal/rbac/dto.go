package rbac

import "github.com/Acon1tum/hris-test-sub000/internal/core/common/validation"

type CreateRoleDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
}

func (d CreateRoleDTO) Validate() error {
	return validation.NewValidator().
		Require("name", d.Name).
		MaxLength("name", d.Name, 100).
		MaxLength("description", d.Description, 500).
		Validate()
}

type UpdateRoleDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Priority    *int    `json:"priority"`
}

func (d UpdateRoleDTO) Validate() error {
	v := validation.NewValidator()
	if d.Name != nil {
		v.Require("name", *d.Name).MaxLength("name", *d.Name, 100)
	}
	if d.Description != nil {
		v.MaxLength("description", *d.Description, 500)
	}
	return v.Validate()
}

type CreatePermissionDTO struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ModuleID    int64  `json:"module_id"`
}

func (d CreatePermissionDTO) Validate() error {
	return validation.NewValidator().
		Require("slug", d.Slug).
		PermissionSlug("slug", d.Slug).
		RequireID("module_id", d.ModuleID).
		MaxLength("description", d.Description, 500).
		Validate()
}

type UpdatePermissionDTO struct {
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	ModuleID    *int64  `json:"module_id"`
}

func (d UpdatePermissionDTO) Validate() error {
	v := validation.NewValidator()
	if d.Slug != nil {
		v.Require("slug", *d.Slug).PermissionSlug("slug", *d.Slug)
	}
	if d.ModuleID != nil {
		v.RequireID("module_id", *d.ModuleID)
	}
	return v.Validate()
}

type CreateModuleDTO struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

func (d CreateModuleDTO) Validate() error {
	return validation.NewValidator().
		Require("name", d.Name).
		MaxLength("name", d.Name, 100).
		Require("slug", d.Slug).
		Slug("slug", d.Slug).
		Validate()
}

type UpdateModuleDTO struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

func (d UpdateModuleDTO) Validate() error {
	v := validation.NewValidator()
	if d.Name != nil {
		v.Require("name", *d.Name).MaxLength("name", *d.Name, 100)
	}
	return v.Validate()
}

type AssignPermissionsDTO struct {
	PermissionIDs []int64 `json:"permission_ids"`
}

type AssignModulesDTO struct {
	ModuleIDs []int64 `json:"module_ids"`
}

type AssignRolesDTO struct {
	RoleIDs []int64 `json:"role_ids"`
}
