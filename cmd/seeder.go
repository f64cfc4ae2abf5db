package cmd

import (
	"fmt"
	"log"

	"github.com/Acon1tum/hris-test-sub000/internal/auth"
	"github.com/Acon1tum/hris-test-sub000/internal/rbac"
	"github.com/Acon1tum/hris-test-sub000/internal/transport/rest"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with baseline access control data",
	Long:  `Seed modules, permissions, system roles and an initial admin user. Safe to run repeatedly.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlDB.Close()

		db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if err := runSeed(db); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		fmt.Println("seed complete")
	},
}

// Seeded modules, ordered for sidebar display.
var seedModules = []rbac.Module{
	{Name: "Organizations", Slug: rest.ModuleOrganizations, IsActive: true, DisplayOrder: 1},
	{Name: "Offices", Slug: rest.ModuleOffices, IsActive: true, DisplayOrder: 2},
	{Name: "Departments", Slug: rest.ModuleDepartments, IsActive: true, DisplayOrder: 3},
	{Name: "Designations", Slug: rest.ModuleDesignations, IsActive: true, DisplayOrder: 4},
	{Name: "Employment", Slug: rest.ModuleEmployment, IsActive: true, DisplayOrder: 5},
	{Name: "Leave", Slug: rest.ModuleLeave, IsActive: true, DisplayOrder: 6},
	{Name: "Schedule", Slug: rest.ModuleSchedule, IsActive: true, DisplayOrder: 7},
	{Name: "Payroll", Slug: rest.ModulePayroll, IsActive: true, DisplayOrder: 8},
	{Name: "Access Control", Slug: rest.ModuleAccessControl, IsActive: true, DisplayOrder: 9},
}

// resources maps each permission resource to the module that owns it.
var seedResources = map[string][]string{
	rest.ModuleOrganizations: {"organization"},
	rest.ModuleOffices:       {"office"},
	rest.ModuleDepartments:   {"department"},
	rest.ModuleDesignations:  {"designation"},
	rest.ModuleEmployment:    {"employment_type", "grade"},
	rest.ModuleLeave:         {"leave_type", "leave_policy"},
	rest.ModuleSchedule:      {"shift", "holiday", "grace_time"},
	rest.ModulePayroll:       {"overtime_policy", "payroll_config", "expense_account", "taxable_component"},
	rest.ModuleAccessControl: {"role", "permission", "module"},
}

var seedActions = []string{"read", "create", "update", "delete"}

func runSeed(db *gorm.DB) error {
	moduleIDs := make(map[string]int64)
	for _, m := range seedModules {
		var existing rbac.Module
		err := db.Where("slug = ?", m.Slug).FirstOrCreate(&existing, m).Error
		if err != nil {
			return fmt.Errorf("seed module %s: %w", m.Slug, err)
		}
		moduleIDs[m.Slug] = existing.ID
	}

	permissionIDs := make(map[string]int64)
	addPermission := func(slug, description string, moduleID int64) error {
		var existing rbac.Permission
		p := rbac.Permission{Slug: slug, Description: description, ModuleID: moduleID}
		if err := db.Where("slug = ?", slug).FirstOrCreate(&existing, p).Error; err != nil {
			return fmt.Errorf("seed permission %s: %w", slug, err)
		}
		permissionIDs[slug] = existing.ID
		return nil
	}

	for moduleSlug, resources := range seedResources {
		for _, resource := range resources {
			for _, action := range seedActions {
				slug := resource + ":" + action
				if err := addPermission(slug, slug, moduleIDs[moduleSlug]); err != nil {
					return err
				}
			}
		}
	}
	// Extra permissions outside the resource/action grid.
	for _, slug := range []string{"role:assign", "user:assign_roles", "user:read_access"} {
		if err := addPermission(slug, slug, moduleIDs[rest.ModuleAccessControl]); err != nil {
			return err
		}
	}

	allPermissions := make([]string, 0, len(permissionIDs))
	for slug := range permissionIDs {
		allPermissions = append(allPermissions, slug)
	}

	readOnly := make([]string, 0)
	for _, resources := range seedResources {
		for _, resource := range resources {
			readOnly = append(readOnly, resource+":read")
		}
	}

	hrManager := make([]string, 0)
	for moduleSlug, resources := range seedResources {
		if moduleSlug == rest.ModuleAccessControl {
			continue
		}
		for _, resource := range resources {
			for _, action := range seedActions {
				hrManager = append(hrManager, resource+":"+action)
			}
		}
	}

	roles := []struct {
		role        rbac.Role
		permissions []string
		modules     []string
	}{
		{
			role:        rbac.Role{Name: "Super Admin", Description: "Full access to every module", Priority: 100, IsSystem: true},
			permissions: allPermissions,
			modules:     allModuleSlugs(),
		},
		{
			role:        rbac.Role{Name: "HR Manager", Description: "Manages reference data, no access control administration", Priority: 50, IsSystem: true},
			permissions: hrManager,
			modules:     allModuleSlugsExcept(rest.ModuleAccessControl),
		},
		{
			role:        rbac.Role{Name: auth.DefaultRoleName, Description: "Default read-only role for new accounts", Priority: 10, IsSystem: true},
			permissions: readOnly,
			modules:     allModuleSlugsExcept(rest.ModuleAccessControl),
		},
	}

	for _, entry := range roles {
		var role rbac.Role
		if err := db.Where("name = ?", entry.role.Name).FirstOrCreate(&role, entry.role).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", entry.role.Name, err)
		}
		for _, slug := range entry.permissions {
			rp := rbac.RolePermission{RoleID: role.ID, PermissionID: permissionIDs[slug]}
			if err := db.Where("role_id = ? AND permission_id = ?", rp.RoleID, rp.PermissionID).
				FirstOrCreate(&rbac.RolePermission{}, rp).Error; err != nil {
				return fmt.Errorf("grant %s to %s: %w", slug, role.Name, err)
			}
		}
		for _, moduleSlug := range entry.modules {
			rm := rbac.RoleModule{RoleID: role.ID, ModuleID: moduleIDs[moduleSlug], CanAccess: true}
			if err := db.Where("role_id = ? AND module_id = ?", rm.RoleID, rm.ModuleID).
				FirstOrCreate(&rbac.RoleModule{}, rm).Error; err != nil {
				return fmt.Errorf("grant module %s to %s: %w", moduleSlug, role.Name, err)
			}
		}
	}

	return seedAdminUser(db)
}

func seedAdminUser(db *gorm.DB) error {
	const adminEmail = "admin@hris.local"

	hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	var admin auth.User
	seed := auth.User{
		Email:        adminEmail,
		FirstName:    "System",
		LastName:     "Administrator",
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := db.Where("email = ?", adminEmail).FirstOrCreate(&admin, seed).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	var superAdmin rbac.Role
	if err := db.Where("name = ?", "Super Admin").First(&superAdmin).Error; err != nil {
		return fmt.Errorf("lookup Super Admin role: %w", err)
	}

	ur := rbac.UserRole{UserID: admin.ID, RoleID: superAdmin.ID}
	if err := db.Where("user_id = ? AND role_id = ?", ur.UserID, ur.RoleID).
		FirstOrCreate(&rbac.UserRole{}, ur).Error; err != nil {
		return fmt.Errorf("assign Super Admin to admin user: %w", err)
	}

	fmt.Println("seeded admin user:", adminEmail)
	return nil
}

func allModuleSlugs() []string {
	slugs := make([]string, 0, len(seedModules))
	for _, m := range seedModules {
		slugs = append(slugs, m.Slug)
	}
	return slugs
}

func allModuleSlugsExcept(excluded string) []string {
	slugs := make([]string, 0, len(seedModules))
	for _, m := range seedModules {
		if m.Slug != excluded {
			slugs = append(slugs, m.Slug)
		}
	}
	return slugs
}
