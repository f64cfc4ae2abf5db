package postgres

import (
	"github.com/Acon1tum/hris-test-sub000/internal/rbac"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) rbac.RepositoryAPI {
	return &Repository{db: db}
}

// ---- roles ----

func (r *Repository) GetAllRoles() ([]*rbac.Role, error) {
	var roles []*rbac.Role
	err := r.db.Order("priority ASC, name ASC").Find(&roles).Error
	return roles, err
}

func (r *Repository) GetRoleByID(id int64) (*rbac.Role, error) {
	var role rbac.Role
	err := r.db.Where("id = ?", id).First(&role).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (r *Repository) GetRoleByName(name string) (*rbac.Role, error) {
	var role rbac.Role
	err := r.db.Where("name = ?", name).First(&role).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (r *Repository) CreateRole(role *rbac.Role) error {
	return r.db.Create(role).Error
}

func (r *Repository) UpdateRole(role *rbac.Role) error {
	return r.db.Save(role).Error
}

// DeleteRole removes the role and its join rows in one transaction, matching
// the storage-level cascade.
func (r *Repository) DeleteRole(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", id).Delete(&rbac.RolePermission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("role_id = ?", id).Delete(&rbac.RoleModule{}).Error; err != nil {
			return err
		}
		if err := tx.Where("role_id = ?", id).Delete(&rbac.UserRole{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&rbac.Role{}).Error
	})
}

// ---- permissions ----

func (r *Repository) GetAllPermissions() ([]*rbac.Permission, error) {
	var perms []*rbac.Permission
	err := r.db.Order("slug ASC").Find(&perms).Error
	return perms, err
}

func (r *Repository) GetPermissionByID(id int64) (*rbac.Permission, error) {
	var p rbac.Permission
	err := r.db.Where("id = ?", id).First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repository) GetPermissionBySlug(slug string) (*rbac.Permission, error) {
	var p rbac.Permission
	err := r.db.Where("slug = ?", slug).First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repository) GetPermissionsByIDs(ids []int64) ([]*rbac.Permission, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var perms []*rbac.Permission
	err := r.db.Where("id IN ?", ids).Find(&perms).Error
	return perms, err
}

func (r *Repository) CreatePermission(p *rbac.Permission) error {
	return r.db.Create(p).Error
}

func (r *Repository) UpdatePermission(p *rbac.Permission) error {
	return r.db.Save(p).Error
}

func (r *Repository) DeletePermission(id int64) error {
	return r.db.Where("id = ?", id).Delete(&rbac.Permission{}).Error
}

func (r *Repository) CountRolesWithPermission(permissionID int64) (int64, error) {
	var n int64
	err := r.db.Model(&rbac.RolePermission{}).Where("permission_id = ?", permissionID).Count(&n).Error
	return n, err
}

// ---- modules ----

func (r *Repository) GetAllModules() ([]*rbac.Module, error) {
	var modules []*rbac.Module
	err := r.db.Order("display_order ASC, name ASC").Find(&modules).Error
	return modules, err
}

func (r *Repository) GetModuleByID(id int64) (*rbac.Module, error) {
	var m rbac.Module
	err := r.db.Where("id = ?", id).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *Repository) GetModuleBySlug(slug string) (*rbac.Module, error) {
	var m rbac.Module
	err := r.db.Where("slug = ?", slug).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *Repository) GetModulesByIDs(ids []int64) ([]*rbac.Module, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var modules []*rbac.Module
	err := r.db.Where("id IN ?", ids).Find(&modules).Error
	return modules, err
}

func (r *Repository) CreateModule(m *rbac.Module) error {
	return r.db.Create(m).Error
}

func (r *Repository) UpdateModule(m *rbac.Module) error {
	return r.db.Save(m).Error
}

func (r *Repository) DeleteModule(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("module_id = ?", id).Delete(&rbac.RoleModule{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&rbac.Module{}).Error
	})
}

func (r *Repository) CountPermissionsInModule(moduleID int64) (int64, error) {
	var n int64
	err := r.db.Model(&rbac.Permission{}).Where("module_id = ?", moduleID).Count(&n).Error
	return n, err
}

// ---- join replacement ----

// ReplaceRolePermissions deletes every permission grant for the role and
// inserts the new set. Delete and insert share one transaction so a failure
// can never leave the role with a partial grant set.
func (r *Repository) ReplaceRolePermissions(roleID int64, permissionIDs []int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", roleID).Delete(&rbac.RolePermission{}).Error; err != nil {
			return err
		}
		for _, pid := range permissionIDs {
			if err := tx.Create(&rbac.RolePermission{RoleID: roleID, PermissionID: pid}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceRoleModules always inserts with can_access=true; disabled rows only
// appear when an admin soft-disables a grant directly.
func (r *Repository) ReplaceRoleModules(roleID int64, moduleIDs []int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", roleID).Delete(&rbac.RoleModule{}).Error; err != nil {
			return err
		}
		for _, mid := range moduleIDs {
			if err := tx.Create(&rbac.RoleModule{RoleID: roleID, ModuleID: mid, CanAccess: true}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repository) ReplaceUserRoles(userID int64, roleIDs []int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&rbac.UserRole{}).Error; err != nil {
			return err
		}
		for _, rid := range roleIDs {
			if err := tx.Create(&rbac.UserRole{UserID: userID, RoleID: rid}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ---- effective access ----

func (r *Repository) GetRolePermissions(roleID int64) ([]*rbac.Permission, error) {
	var perms []*rbac.Permission
	err := r.db.
		Joins("JOIN role_permissions rp ON rp.permission_id = permissions.id").
		Where("rp.role_id = ?", roleID).
		Order("permissions.slug ASC").
		Find(&perms).Error
	return perms, err
}

func (r *Repository) GetRoleModules(roleID int64) ([]*rbac.Module, error) {
	var modules []*rbac.Module
	err := r.db.
		Joins("JOIN role_modules rm ON rm.module_id = modules.id").
		Where("rm.role_id = ? AND rm.can_access = ?", roleID, true).
		Order("modules.display_order ASC").
		Find(&modules).Error
	return modules, err
}

func (r *Repository) GetRolesForUser(userID int64) ([]*rbac.Role, error) {
	var roles []*rbac.Role
	err := r.db.
		Joins("JOIN user_roles ur ON ur.role_id = roles.id").
		Where("ur.user_id = ?", userID).
		Order("roles.priority ASC").
		Find(&roles).Error
	return roles, err
}

func (r *Repository) GetPermissionSlugsForRoles(roleIDs []int64) ([]string, error) {
	if len(roleIDs) == 0 {
		return nil, nil
	}
	var slugs []string
	err := r.db.Model(&rbac.Permission{}).
		Joins("JOIN role_permissions rp ON rp.permission_id = permissions.id").
		Where("rp.role_id IN ?", roleIDs).
		Distinct().
		Pluck("permissions.slug", &slugs).Error
	return slugs, err
}

// GetAccessibleModuleSlugsForRoles only returns modules that are active and
// whose grant has can_access enabled.
func (r *Repository) GetAccessibleModuleSlugsForRoles(roleIDs []int64) ([]string, error) {
	if len(roleIDs) == 0 {
		return nil, nil
	}
	var slugs []string
	err := r.db.Model(&rbac.Module{}).
		Joins("JOIN role_modules rm ON rm.module_id = modules.id").
		Where("rm.role_id IN ? AND rm.can_access = ? AND modules.is_active = ?", roleIDs, true, true).
		Distinct().
		Pluck("modules.slug", &slugs).Error
	return slugs, err
}

func (r *Repository) UserHasModuleAccess(userID int64, moduleSlug string) (bool, error) {
	var n int64
	err := r.db.Model(&rbac.RoleModule{}).
		Joins("JOIN user_roles ur ON ur.role_id = role_modules.role_id").
		Joins("JOIN modules m ON m.id = role_modules.module_id").
		Where("ur.user_id = ? AND m.slug = ? AND role_modules.can_access = ? AND m.is_active = ?",
			userID, moduleSlug, true, true).
		Count(&n).Error
	return n > 0, err
}

func (r *Repository) UserExists(userID int64) (bool, error) {
	var n int64
	err := r.db.Table("users").Where("id = ?", userID).Count(&n).Error
	return n > 0, err
}
