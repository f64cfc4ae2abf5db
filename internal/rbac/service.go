package rbac

import (
	"log/slog"
	"sort"
)

// RepositoryAPI is the storage contract for roles, permissions, modules and
// their join sets. Replace* methods run delete-then-insert inside a single
// transaction; a failure never leaves a mixed old/new state.
type RepositoryAPI interface {
	GetAllRoles() ([]*Role, error)
	GetRoleByID(id int64) (*Role, error)
	GetRoleByName(name string) (*Role, error)
	CreateRole(role *Role) error
	UpdateRole(role *Role) error
	DeleteRole(id int64) error

	GetAllPermissions() ([]*Permission, error)
	GetPermissionByID(id int64) (*Permission, error)
	GetPermissionBySlug(slug string) (*Permission, error)
	GetPermissionsByIDs(ids []int64) ([]*Permission, error)
	CreatePermission(p *Permission) error
	UpdatePermission(p *Permission) error
	DeletePermission(id int64) error
	CountRolesWithPermission(permissionID int64) (int64, error)

	GetAllModules() ([]*Module, error)
	GetModuleByID(id int64) (*Module, error)
	GetModuleBySlug(slug string) (*Module, error)
	GetModulesByIDs(ids []int64) ([]*Module, error)
	CreateModule(m *Module) error
	UpdateModule(m *Module) error
	DeleteModule(id int64) error
	CountPermissionsInModule(moduleID int64) (int64, error)

	ReplaceRolePermissions(roleID int64, permissionIDs []int64) error
	ReplaceRoleModules(roleID int64, moduleIDs []int64) error
	ReplaceUserRoles(userID int64, roleIDs []int64) error

	GetRolePermissions(roleID int64) ([]*Permission, error)
	GetRoleModules(roleID int64) ([]*Module, error)
	GetRolesForUser(userID int64) ([]*Role, error)
	GetPermissionSlugsForRoles(roleIDs []int64) ([]string, error)
	GetAccessibleModuleSlugsForRoles(roleIDs []int64) ([]string, error)
	UserHasModuleAccess(userID int64, moduleSlug string) (bool, error)
	UserExists(userID int64) (bool, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ---- roles ----

func (s *Service) ListRoles() ([]*Role, error) {
	return s.repo.GetAllRoles()
}

func (s *Service) GetRole(id int64) (*Role, error) {
	role, err := s.repo.GetRoleByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}
	return role, nil
}

func (s *Service) CreateRole(dto CreateRoleDTO) (*Role, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetRoleByName(dto.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrRoleNameTaken
	}

	role := &Role{
		Name:        dto.Name,
		Description: dto.Description,
		Priority:    dto.Priority,
	}
	if err := s.repo.CreateRole(role); err != nil {
		s.logger.Error("failed to create role", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("role created", "role_id", role.ID, "name", role.Name)
	return role, nil
}

func (s *Service) UpdateRole(id int64, dto UpdateRoleDTO) (*Role, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	role, err := s.GetRole(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil && *dto.Name != role.Name {
		existing, err := s.repo.GetRoleByName(*dto.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrRoleNameTaken
		}
		role.Name = *dto.Name
	}
	if dto.Description != nil {
		role.Description = *dto.Description
	}
	if dto.Priority != nil {
		role.Priority = *dto.Priority
	}

	if err := s.repo.UpdateRole(role); err != nil {
		s.logger.Error("failed to update role", "error", err, "role_id", id)
		return nil, err
	}
	return role, nil
}

// DeleteRole removes a role and, through the storage cascade, its permission,
// module and user assignments. System roles are immutable to deletion.
func (s *Service) DeleteRole(id int64) error {
	role, err := s.GetRole(id)
	if err != nil {
		return err
	}
	if role.IsSystem {
		s.logger.Warn("refused to delete system role", "role_id", id, "name", role.Name)
		return ErrSystemRoleProtected
	}

	if err := s.repo.DeleteRole(id); err != nil {
		s.logger.Error("failed to delete role", "error", err, "role_id", id)
		return err
	}

	s.logger.Info("role deleted", "role_id", id, "name", role.Name)
	return nil
}

// ---- permissions ----

func (s *Service) ListPermissions() ([]*Permission, error) {
	return s.repo.GetAllPermissions()
}

func (s *Service) GetPermission(id int64) (*Permission, error) {
	p, err := s.repo.GetPermissionByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPermissionNotFound
	}
	return p, nil
}

func (s *Service) CreatePermission(dto CreatePermissionDTO) (*Permission, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetPermissionBySlug(dto.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPermissionSlugTaken
	}

	module, err := s.repo.GetModuleByID(dto.ModuleID)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, ErrUnknownModule
	}

	p := &Permission{
		Slug:        dto.Slug,
		Description: dto.Description,
		ModuleID:    dto.ModuleID,
	}
	if err := s.repo.CreatePermission(p); err != nil {
		s.logger.Error("failed to create permission", "error", err, "slug", dto.Slug)
		return nil, err
	}
	return p, nil
}

func (s *Service) UpdatePermission(id int64, dto UpdatePermissionDTO) (*Permission, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	p, err := s.GetPermission(id)
	if err != nil {
		return nil, err
	}

	if dto.Slug != nil && *dto.Slug != p.Slug {
		// slug is immutable once any role references the permission
		refs, err := s.repo.CountRolesWithPermission(id)
		if err != nil {
			return nil, err
		}
		if refs > 0 {
			return nil, ErrPermissionSlugImmutable
		}

		existing, err := s.repo.GetPermissionBySlug(*dto.Slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrPermissionSlugTaken
		}
		p.Slug = *dto.Slug
	}
	if dto.Description != nil {
		p.Description = *dto.Description
	}
	if dto.ModuleID != nil && *dto.ModuleID != p.ModuleID {
		module, err := s.repo.GetModuleByID(*dto.ModuleID)
		if err != nil {
			return nil, err
		}
		if module == nil {
			return nil, ErrUnknownModule
		}
		p.ModuleID = *dto.ModuleID
	}

	if err := s.repo.UpdatePermission(p); err != nil {
		s.logger.Error("failed to update permission", "error", err, "permission_id", id)
		return nil, err
	}
	return p, nil
}

func (s *Service) DeletePermission(id int64) error {
	if _, err := s.GetPermission(id); err != nil {
		return err
	}

	refs, err := s.repo.CountRolesWithPermission(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrPermissionInUse
	}

	return s.repo.DeletePermission(id)
}

// ---- modules ----

func (s *Service) ListModules() ([]*Module, error) {
	return s.repo.GetAllModules()
}

func (s *Service) GetModule(id int64) (*Module, error) {
	m, err := s.repo.GetModuleByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrModuleNotFound
	}
	return m, nil
}

func (s *Service) GetModuleBySlug(slug string) (*Module, error) {
	return s.repo.GetModuleBySlug(slug)
}

func (s *Service) CreateModule(dto CreateModuleDTO) (*Module, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetModuleBySlug(dto.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrModuleSlugTaken
	}

	active := true
	if dto.IsActive != nil {
		active = *dto.IsActive
	}
	m := &Module{
		Name:         dto.Name,
		Slug:         dto.Slug,
		Description:  dto.Description,
		DisplayOrder: dto.DisplayOrder,
		IsActive:     active,
	}
	if err := s.repo.CreateModule(m); err != nil {
		s.logger.Error("failed to create module", "error", err, "slug", dto.Slug)
		return nil, err
	}
	return m, nil
}

func (s *Service) UpdateModule(id int64, dto UpdateModuleDTO) (*Module, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	m, err := s.GetModule(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		m.Name = *dto.Name
	}
	if dto.Description != nil {
		m.Description = *dto.Description
	}
	if dto.DisplayOrder != nil {
		m.DisplayOrder = *dto.DisplayOrder
	}
	if dto.IsActive != nil {
		m.IsActive = *dto.IsActive
	}

	if err := s.repo.UpdateModule(m); err != nil {
		s.logger.Error("failed to update module", "error", err, "module_id", id)
		return nil, err
	}
	return m, nil
}

func (s *Service) DeleteModule(id int64) error {
	if _, err := s.GetModule(id); err != nil {
		return err
	}

	owned, err := s.repo.CountPermissionsInModule(id)
	if err != nil {
		return err
	}
	if owned > 0 {
		return ErrModuleInUse
	}

	return s.repo.DeleteModule(id)
}

// ---- assignments (replace-all) ----

func (s *Service) GetRolePermissions(roleID int64) ([]*Permission, error) {
	if _, err := s.GetRole(roleID); err != nil {
		return nil, err
	}
	return s.repo.GetRolePermissions(roleID)
}

func (s *Service) GetRoleModules(roleID int64) ([]*Module, error) {
	if _, err := s.GetRole(roleID); err != nil {
		return nil, err
	}
	return s.repo.GetRoleModules(roleID)
}

func (s *Service) AssignPermissionsToRole(roleID int64, permissionIDs []int64) error {
	if _, err := s.GetRole(roleID); err != nil {
		return err
	}

	found, err := s.repo.GetPermissionsByIDs(permissionIDs)
	if err != nil {
		return err
	}
	if len(found) != len(dedupe(permissionIDs)) {
		return ErrUnknownPermission
	}

	if err := s.repo.ReplaceRolePermissions(roleID, permissionIDs); err != nil {
		s.logger.Error("failed to replace role permissions", "error", err, "role_id", roleID)
		return err
	}

	s.logger.Info("role permissions replaced", "role_id", roleID, "count", len(permissionIDs))
	return nil
}

func (s *Service) AssignModulesToRole(roleID int64, moduleIDs []int64) error {
	if _, err := s.GetRole(roleID); err != nil {
		return err
	}

	found, err := s.repo.GetModulesByIDs(moduleIDs)
	if err != nil {
		return err
	}
	if len(found) != len(dedupe(moduleIDs)) {
		return ErrUnknownModule
	}

	if err := s.repo.ReplaceRoleModules(roleID, moduleIDs); err != nil {
		s.logger.Error("failed to replace role modules", "error", err, "role_id", roleID)
		return err
	}

	s.logger.Info("role modules replaced", "role_id", roleID, "count", len(moduleIDs))
	return nil
}

func (s *Service) AssignRolesToUser(userID int64, roleIDs []int64) error {
	exists, err := s.repo.UserExists(userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUnknownUser
	}

	for _, id := range dedupe(roleIDs) {
		role, err := s.repo.GetRoleByID(id)
		if err != nil {
			return err
		}
		if role == nil {
			return ErrUnknownRole
		}
	}

	if err := s.repo.ReplaceUserRoles(userID, roleIDs); err != nil {
		s.logger.Error("failed to replace user roles", "error", err, "user_id", userID)
		return err
	}

	s.logger.Info("user roles replaced", "user_id", userID, "count", len(roleIDs))
	return nil
}

// AssignRoleByName grants exactly one role looked up by name, used for the
// default role at registration. A missing role is not an error.
func (s *Service) AssignRoleByName(userID int64, roleName string) error {
	role, err := s.repo.GetRoleByName(roleName)
	if err != nil {
		return err
	}
	if role == nil {
		s.logger.Warn("default role not found, skipping assignment", "role", roleName, "user_id", userID)
		return nil
	}
	return s.repo.ReplaceUserRoles(userID, []int64{role.ID})
}

// ---- effective access ----

// ComputeEffectiveAccess builds the caller's capability view: the union of
// permission slugs over every assigned role, and the union of module slugs
// where the role grant is enabled and the module itself is active. Login and
// the per-request middleware both go through here so the two views can never
// drift apart.
func (s *Service) ComputeEffectiveAccess(userID int64) (*Access, error) {
	roles, err := s.repo.GetRolesForUser(userID)
	if err != nil {
		return nil, err
	}

	access := &Access{
		Roles:       []string{},
		Permissions: []string{},
		Modules:     []string{},
	}
	if len(roles) == 0 {
		return access, nil
	}

	roleIDs := make([]int64, 0, len(roles))
	for _, r := range roles {
		access.Roles = append(access.Roles, r.Name)
		roleIDs = append(roleIDs, r.ID)
	}

	perms, err := s.repo.GetPermissionSlugsForRoles(roleIDs)
	if err != nil {
		return nil, err
	}
	modules, err := s.repo.GetAccessibleModuleSlugsForRoles(roleIDs)
	if err != nil {
		return nil, err
	}

	access.Permissions = uniqueSorted(perms)
	access.Modules = uniqueSorted(modules)
	return access, nil
}

// UserCanAccessModule re-fetches the caller's role-module links so that a
// revocation takes effect on the very next request.
func (s *Service) UserCanAccessModule(userID int64, moduleSlug string) (bool, error) {
	return s.repo.UserHasModuleAccess(userID, moduleSlug)
}

func uniqueSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
