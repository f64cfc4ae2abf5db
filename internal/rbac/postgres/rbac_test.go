package postgres_test

import (
	"testing"

	"github.com/Acon1tum/hris-test-sub000/internal/rbac"
	rbacPostgres "github.com/Acon1tum/hris-test-sub000/internal/rbac/postgres"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestRBACPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "RBAC Postgres Suite")
}

// SQLiteUser backs the users table the repository probes in UserExists.
type SQLiteUser struct {
	ID    int64  `gorm:"primaryKey"`
	Email string `gorm:"column:email;uniqueIndex;not null"`
}

func (SQLiteUser) TableName() string {
	return "users"
}

var _ = Describe("RBAC PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo rbac.RepositoryAPI
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(
			&rbac.Role{},
			&rbac.Permission{},
			&rbac.Module{},
			&rbac.RolePermission{},
			&rbac.RoleModule{},
			&rbac.UserRole{},
			&SQLiteUser{},
		)
		Expect(err).NotTo(HaveOccurred())

		repo = rbacPostgres.NewRepository(db)
	})

	Describe("Roles", func() {
		It("should create a role and assign an id", func() {
			role := &rbac.Role{Name: "HR Manager", Description: "Runs the HR desk", Priority: 2}

			err := repo.CreateRole(role)
			Expect(err).NotTo(HaveOccurred())
			Expect(role.ID).To(BeNumerically(">", 0))
			Expect(role.CreatedAt).NotTo(BeZero())
		})

		It("should enforce the unique name constraint", func() {
			err := repo.CreateRole(&rbac.Role{Name: "Admin"})
			Expect(err).NotTo(HaveOccurred())

			err = repo.CreateRole(&rbac.Role{Name: "Admin"})
			Expect(err).To(HaveOccurred())
		})

		It("should return nil for an unknown role id", func() {
			role, err := repo.GetRoleByID(404)
			Expect(err).NotTo(HaveOccurred())
			Expect(role).To(BeNil())
		})

		It("should look up roles by exact name", func() {
			err := repo.CreateRole(&rbac.Role{Name: "Employee"})
			Expect(err).NotTo(HaveOccurred())

			role, err := repo.GetRoleByName("Employee")
			Expect(err).NotTo(HaveOccurred())
			Expect(role).NotTo(BeNil())
			Expect(role.Name).To(Equal("Employee"))

			missing, err := repo.GetRoleByName("employee")
			Expect(err).NotTo(HaveOccurred())
			Expect(missing).To(BeNil())
		})

		It("should order roles by priority then name", func() {
			Expect(repo.CreateRole(&rbac.Role{Name: "Zeta", Priority: 1})).To(Succeed())
			Expect(repo.CreateRole(&rbac.Role{Name: "Alpha", Priority: 2})).To(Succeed())
			Expect(repo.CreateRole(&rbac.Role{Name: "Beta", Priority: 1})).To(Succeed())

			roles, err := repo.GetAllRoles()
			Expect(err).NotTo(HaveOccurred())
			Expect(roles).To(HaveLen(3))
			Expect(roles[0].Name).To(Equal("Beta"))
			Expect(roles[1].Name).To(Equal("Zeta"))
			Expect(roles[2].Name).To(Equal("Alpha"))
		})

		It("should delete a role together with its join rows", func() {
			role := &rbac.Role{Name: "Payroll Clerk"}
			Expect(repo.CreateRole(role)).To(Succeed())

			module := &rbac.Module{Name: "Payroll", Slug: "payroll", IsActive: true}
			Expect(repo.CreateModule(module)).To(Succeed())
			perm := &rbac.Permission{Slug: "payroll:read", ModuleID: module.ID}
			Expect(repo.CreatePermission(perm)).To(Succeed())

			Expect(db.Create(&SQLiteUser{Email: "clerk@example.com"}).Error).To(Succeed())
			Expect(repo.ReplaceRolePermissions(role.ID, []int64{perm.ID})).To(Succeed())
			Expect(repo.ReplaceRoleModules(role.ID, []int64{module.ID})).To(Succeed())
			Expect(repo.ReplaceUserRoles(1, []int64{role.ID})).To(Succeed())

			err := repo.DeleteRole(role.ID)
			Expect(err).NotTo(HaveOccurred())

			var permRows, moduleRows, userRows int64
			Expect(db.Model(&rbac.RolePermission{}).Where("role_id = ?", role.ID).Count(&permRows).Error).To(Succeed())
			Expect(db.Model(&rbac.RoleModule{}).Where("role_id = ?", role.ID).Count(&moduleRows).Error).To(Succeed())
			Expect(db.Model(&rbac.UserRole{}).Where("role_id = ?", role.ID).Count(&userRows).Error).To(Succeed())
			Expect(permRows).To(BeZero())
			Expect(moduleRows).To(BeZero())
			Expect(userRows).To(BeZero())
		})
	})

	Describe("Permissions", func() {
		var module *rbac.Module

		BeforeEach(func() {
			module = &rbac.Module{Name: "Organization", Slug: "organization", IsActive: true}
			Expect(repo.CreateModule(module)).To(Succeed())
		})

		It("should enforce the unique slug constraint", func() {
			Expect(repo.CreatePermission(&rbac.Permission{Slug: "organization:read", ModuleID: module.ID})).To(Succeed())

			err := repo.CreatePermission(&rbac.Permission{Slug: "organization:read", ModuleID: module.ID})
			Expect(err).To(HaveOccurred())
		})

		It("should fetch permissions by id set", func() {
			read := &rbac.Permission{Slug: "organization:read", ModuleID: module.ID}
			update := &rbac.Permission{Slug: "organization:update", ModuleID: module.ID}
			Expect(repo.CreatePermission(read)).To(Succeed())
			Expect(repo.CreatePermission(update)).To(Succeed())

			perms, err := repo.GetPermissionsByIDs([]int64{read.ID, update.ID, 9999})
			Expect(err).NotTo(HaveOccurred())
			Expect(perms).To(HaveLen(2))
		})

		It("should count roles referencing a permission", func() {
			perm := &rbac.Permission{Slug: "organization:delete", ModuleID: module.ID}
			Expect(repo.CreatePermission(perm)).To(Succeed())

			n, err := repo.CountRolesWithPermission(perm.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(BeZero())

			role := &rbac.Role{Name: "Admin"}
			Expect(repo.CreateRole(role)).To(Succeed())
			Expect(repo.ReplaceRolePermissions(role.ID, []int64{perm.ID})).To(Succeed())

			n, err = repo.CountRolesWithPermission(perm.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(1)))
		})
	})

	Describe("Modules", func() {
		It("should count permissions owned by a module", func() {
			module := &rbac.Module{Name: "Leave", Slug: "leave", IsActive: true}
			Expect(repo.CreateModule(module)).To(Succeed())
			Expect(repo.CreatePermission(&rbac.Permission{Slug: "leave:read", ModuleID: module.ID})).To(Succeed())
			Expect(repo.CreatePermission(&rbac.Permission{Slug: "leave:create", ModuleID: module.ID})).To(Succeed())

			n, err := repo.CountPermissionsInModule(module.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(int64(2)))
		})

		It("should delete a module and its role grants", func() {
			module := &rbac.Module{Name: "Reports", Slug: "reports", IsActive: true}
			Expect(repo.CreateModule(module)).To(Succeed())
			role := &rbac.Role{Name: "Viewer"}
			Expect(repo.CreateRole(role)).To(Succeed())
			Expect(repo.ReplaceRoleModules(role.ID, []int64{module.ID})).To(Succeed())

			err := repo.DeleteModule(module.ID)
			Expect(err).NotTo(HaveOccurred())

			var grants int64
			Expect(db.Model(&rbac.RoleModule{}).Where("module_id = ?", module.ID).Count(&grants).Error).To(Succeed())
			Expect(grants).To(BeZero())
		})
	})

	Describe("Join replacement", func() {
		var (
			role   *rbac.Role
			orgMod *rbac.Module
			read   *rbac.Permission
			write  *rbac.Permission
		)

		BeforeEach(func() {
			role = &rbac.Role{Name: "HR Manager"}
			Expect(repo.CreateRole(role)).To(Succeed())
			orgMod = &rbac.Module{Name: "Organization", Slug: "organization", IsActive: true}
			Expect(repo.CreateModule(orgMod)).To(Succeed())
			read = &rbac.Permission{Slug: "organization:read", ModuleID: orgMod.ID}
			write = &rbac.Permission{Slug: "organization:update", ModuleID: orgMod.ID}
			Expect(repo.CreatePermission(read)).To(Succeed())
			Expect(repo.CreatePermission(write)).To(Succeed())
		})

		It("should replace the full permission set for a role", func() {
			Expect(repo.ReplaceRolePermissions(role.ID, []int64{read.ID, write.ID})).To(Succeed())

			perms, err := repo.GetRolePermissions(role.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(perms).To(HaveLen(2))

			Expect(repo.ReplaceRolePermissions(role.ID, []int64{write.ID})).To(Succeed())

			perms, err = repo.GetRolePermissions(role.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(perms).To(HaveLen(1))
			Expect(perms[0].Slug).To(Equal("organization:update"))
		})

		It("should clear the set when given an empty list", func() {
			Expect(repo.ReplaceRolePermissions(role.ID, []int64{read.ID})).To(Succeed())
			Expect(repo.ReplaceRolePermissions(role.ID, nil)).To(Succeed())

			perms, err := repo.GetRolePermissions(role.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(perms).To(BeEmpty())
		})

		It("should insert module grants with can_access enabled", func() {
			Expect(repo.ReplaceRoleModules(role.ID, []int64{orgMod.ID})).To(Succeed())

			modules, err := repo.GetRoleModules(role.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(modules).To(HaveLen(1))
			Expect(modules[0].Slug).To(Equal("organization"))
		})

		It("should replace user role assignments wholesale", func() {
			other := &rbac.Role{Name: "Employee"}
			Expect(repo.CreateRole(other)).To(Succeed())

			Expect(repo.ReplaceUserRoles(7, []int64{role.ID, other.ID})).To(Succeed())
			roles, err := repo.GetRolesForUser(7)
			Expect(err).NotTo(HaveOccurred())
			Expect(roles).To(HaveLen(2))

			Expect(repo.ReplaceUserRoles(7, []int64{other.ID})).To(Succeed())
			roles, err = repo.GetRolesForUser(7)
			Expect(err).NotTo(HaveOccurred())
			Expect(roles).To(HaveLen(1))
			Expect(roles[0].Name).To(Equal("Employee"))
		})
	})

	Describe("Effective access queries", func() {
		var (
			hr       *rbac.Role
			payroll  *rbac.Role
			orgMod   *rbac.Module
			leaveMod *rbac.Module
		)

		BeforeEach(func() {
			hr = &rbac.Role{Name: "HR Manager"}
			payroll = &rbac.Role{Name: "Payroll Clerk"}
			Expect(repo.CreateRole(hr)).To(Succeed())
			Expect(repo.CreateRole(payroll)).To(Succeed())

			orgMod = &rbac.Module{Name: "Organization", Slug: "organization", IsActive: true}
			leaveMod = &rbac.Module{Name: "Leave", Slug: "leave", IsActive: true}
			Expect(repo.CreateModule(orgMod)).To(Succeed())
			Expect(repo.CreateModule(leaveMod)).To(Succeed())

			orgRead := &rbac.Permission{Slug: "organization:read", ModuleID: orgMod.ID}
			leaveRead := &rbac.Permission{Slug: "leave:read", ModuleID: leaveMod.ID}
			Expect(repo.CreatePermission(orgRead)).To(Succeed())
			Expect(repo.CreatePermission(leaveRead)).To(Succeed())

			// both roles carry organization:read; only HR carries leave:read
			Expect(repo.ReplaceRolePermissions(hr.ID, []int64{orgRead.ID, leaveRead.ID})).To(Succeed())
			Expect(repo.ReplaceRolePermissions(payroll.ID, []int64{orgRead.ID})).To(Succeed())
			Expect(repo.ReplaceRoleModules(hr.ID, []int64{orgMod.ID, leaveMod.ID})).To(Succeed())
			Expect(repo.ReplaceRoleModules(payroll.ID, []int64{orgMod.ID})).To(Succeed())
		})

		It("should return distinct permission slugs across roles", func() {
			slugs, err := repo.GetPermissionSlugsForRoles([]int64{hr.ID, payroll.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(slugs).To(ConsistOf("organization:read", "leave:read"))
		})

		It("should return nothing for an empty role set", func() {
			slugs, err := repo.GetPermissionSlugsForRoles(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(slugs).To(BeEmpty())
		})

		It("should skip modules whose grant is disabled", func() {
			err := db.Model(&rbac.RoleModule{}).
				Where("role_id = ? AND module_id = ?", hr.ID, leaveMod.ID).
				Update("can_access", false).Error
			Expect(err).NotTo(HaveOccurred())

			slugs, err := repo.GetAccessibleModuleSlugsForRoles([]int64{hr.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(slugs).To(ConsistOf("organization"))
		})

		It("should skip inactive modules", func() {
			leaveMod.IsActive = false
			Expect(repo.UpdateModule(leaveMod)).To(Succeed())

			slugs, err := repo.GetAccessibleModuleSlugsForRoles([]int64{hr.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(slugs).To(ConsistOf("organization"))
		})

		It("should resolve module access through user roles", func() {
			Expect(repo.ReplaceUserRoles(3, []int64{payroll.ID})).To(Succeed())

			ok, err := repo.UserHasModuleAccess(3, "organization")
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			ok, err = repo.UserHasModuleAccess(3, "leave")
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})
	})

	Describe("UserExists", func() {
		It("should report presence from the users table", func() {
			Expect(db.Create(&SQLiteUser{Email: "ana@example.com"}).Error).To(Succeed())

			ok, err := repo.UserExists(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())

			ok, err = repo.UserExists(404)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeFalse())
		})
	})
})
