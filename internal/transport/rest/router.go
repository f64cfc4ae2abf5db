package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/Acon1tum/hris-test-sub000/internal/auth"
	"github.com/Acon1tum/hris-test-sub000/internal/department"
	"github.com/Acon1tum/hris-test-sub000/internal/designation"
	"github.com/Acon1tum/hris-test-sub000/internal/employment"
	"github.com/Acon1tum/hris-test-sub000/internal/leave"
	"github.com/Acon1tum/hris-test-sub000/internal/office"
	"github.com/Acon1tum/hris-test-sub000/internal/organization"
	"github.com/Acon1tum/hris-test-sub000/internal/payroll"
	"github.com/Acon1tum/hris-test-sub000/internal/rbac"
	"github.com/Acon1tum/hris-test-sub000/internal/schedule"
	"github.com/Acon1tum/hris-test-sub000/internal/transport/middleware"
	"github.com/Acon1tum/hris-test-sub000/internal/transport/swagger"
	"github.com/go-chi/chi"
)

// Module slugs gating each route group.
const (
	ModuleOrganizations = "organizations"
	ModuleOffices       = "offices"
	ModuleDepartments   = "departments"
	ModuleDesignations  = "designations"
	ModuleEmployment    = "employment"
	ModuleLeave         = "leave"
	ModuleSchedule      = "schedule"
	ModulePayroll       = "payroll"
	ModuleAccessControl = "access_control"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth        *auth.Handler
	RBAC        *rbac.Handler
	Guard       *rbac.Guard
	Org         *organization.Handler
	Office      *office.Handler
	Department  *department.Handler
	Designation *designation.Handler
	Employment  *employment.Handler
	Leave       *leave.Handler
	Schedule    *schedule.Handler
	Payroll     *payroll.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)
	guard := h.Guard

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging(logger))
	router.Use(middleware.Recovery(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/register", h.Auth.Register)
			sr.Post("/refresh", h.Auth.RefreshToken)

			sr.Group(func(ar chi.Router) {
				ar.Use(h.Auth.AuthMiddleware)
				ar.Post("/logout", h.Auth.Logout)
				ar.Get("/me", h.Auth.Me)
			})
		})

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Route("/organizations", func(er chi.Router) {
				er.Use(guard.RequireModuleAccess(ModuleOrganizations))
				er.With(guard.RequirePermission("organization:read")).Get("/", h.Org.List)
				er.With(guard.RequirePermission("organization:read")).Get("/{id}", h.Org.Get)
				er.With(guard.RequirePermission("organization:create")).Post("/", h.Org.Create)
				er.With(guard.RequirePermission("organization:update")).Patch("/{id}", h.Org.Update)
				er.With(guard.RequirePermission("organization:delete")).Delete("/{id}", h.Org.Delete)
			})

			pr.Route("/offices", func(er chi.Router) {
				er.Use(guard.RequireModuleAccess(ModuleOffices))
				er.With(guard.RequirePermission("office:read")).Get("/", h.Office.List)
				er.With(guard.RequirePermission("office:read")).Get("/{id}", h.Office.Get)
				er.With(guard.RequirePermission("office:create")).Post("/", h.Office.Create)
				er.With(guard.RequirePermission("office:update")).Patch("/{id}", h.Office.Update)
				er.With(guard.RequirePermission("office:delete")).Delete("/{id}", h.Office.Delete)
			})

			pr.Route("/departments", func(er chi.Router) {
				er.Use(guard.RequireModuleAccess(ModuleDepartments))
				er.With(guard.RequirePermission("department:read")).Get("/", h.Department.List)
				er.With(guard.RequirePermission("department:read")).Get("/{id}", h.Department.Get)
				er.With(guard.RequirePermission("department:create")).Post("/", h.Department.Create)
				er.With(guard.RequirePermission("department:update")).Patch("/{id}", h.Department.Update)
				er.With(guard.RequirePermission("department:delete")).Delete("/{id}", h.Department.Delete)
			})

			pr.Route("/designations", func(er chi.Router) {
				er.Use(guard.RequireModuleAccess(ModuleDesignations))
				er.With(guard.RequirePermission("designation:read")).Get("/", h.Designation.List)
				er.With(guard.RequirePermission("designation:read")).Get("/{id}", h.Designation.Get)
				er.With(guard.RequirePermission("designation:create")).Post("/", h.Designation.Create)
				er.With(guard.RequirePermission("designation:update")).Patch("/{id}", h.Designation.Update)
				er.With(guard.RequirePermission("designation:delete")).Delete("/{id}", h.Designation.Delete)
			})

			pr.Group(func(er chi.Router) {
				er.Use(guard.RequireModuleAccess(ModuleEmployment))

				er.Route("/employment-types", func(tr chi.Router) {
					tr.With(guard.RequirePermission("employment_type:read")).Get("/", h.Employment.ListTypes)
					tr.With(guard.RequirePermission("employment_type:read")).Get("/{id}", h.Employment.GetType)
					tr.With(guard.RequirePermission("employment_type:create")).Post("/", h.Employment.CreateType)
					tr.With(guard.RequirePermission("employment_type:update")).Patch("/{id}", h.Employment.UpdateType)
					tr.With(guard.RequirePermission("employment_type:delete")).Delete("/{id}", h.Employment.DeleteType)
				})
				er.Route("/grades", func(gr chi.Router) {
					gr.With(guard.RequirePermission("grade:read")).Get("/", h.Employment.ListGrades)
					gr.With(guard.RequirePermission("grade:read")).Get("/{id}", h.Employment.GetGrade)
					gr.With(guard.RequirePermission("grade:create")).Post("/", h.Employment.CreateGrade)
					gr.With(guard.RequirePermission("grade:update")).Patch("/{id}", h.Employment.UpdateGrade)
					gr.With(guard.RequirePermission("grade:delete")).Delete("/{id}", h.Employment.DeleteGrade)
				})
			})

			pr.Group(func(er chi.Router) {
				er.Use(guard.RequireModuleAccess(ModuleLeave))

				er.Route("/leave-types", func(tr chi.Router) {
					tr.With(guard.RequirePermission("leave_type:read")).Get("/", h.Leave.ListTypes)
					tr.With(guard.RequirePermission("leave_type:read")).Get("/{id}", h.Leave.GetType)
					tr.With(guard.RequirePermission("leave_type:create")).Post("/", h.Leave.CreateType)
					tr.With(guard.RequirePermission("leave_type:update")).Patch("/{id}", h.Leave.UpdateType)
					tr.With(guard.RequirePermission("leave_type:delete")).Delete("/{id}", h.Leave.DeleteType)
				})
				er.Route("/leave-policies", func(lr chi.Router) {
					lr.With(guard.RequirePermission("leave_policy:read")).Get("/", h.Leave.ListPolicies)
					lr.With(guard.RequirePermission("leave_policy:read")).Get("/{id}", h.Leave.GetPolicy)
					lr.With(guard.RequirePermission("leave_policy:create")).Post("/", h.Leave.CreatePolicy)
					lr.With(guard.RequirePermission("leave_policy:update")).Patch("/{id}", h.Leave.UpdatePolicy)
					lr.With(guard.RequirePermission("leave_policy:delete")).Delete("/{id}", h.Leave.DeletePolicy)
				})
			})

			pr.Group(func(er chi.Router) {
				er.Use(guard.RequireModuleAccess(ModuleSchedule))

				er.Route("/shifts", func(sr chi.Router) {
					sr.With(guard.RequirePermission("shift:read")).Get("/", h.Schedule.ListShifts)
					sr.With(guard.RequirePermission("shift:read")).Get("/{id}", h.Schedule.GetShift)
					sr.With(guard.RequirePermission("shift:create")).Post("/", h.Schedule.CreateShift)
					sr.With(guard.RequirePermission("shift:update")).Patch("/{id}", h.Schedule.UpdateShift)
					sr.With(guard.RequirePermission("shift:delete")).Delete("/{id}", h.Schedule.DeleteShift)
				})
				er.Route("/holidays", func(hr chi.Router) {
					hr.With(guard.RequirePermission("holiday:read")).Get("/", h.Schedule.ListHolidays)
					hr.With(guard.RequirePermission("holiday:read")).Get("/{id}", h.Schedule.GetHoliday)
					hr.With(guard.RequirePermission("holiday:create")).Post("/", h.Schedule.CreateHoliday)
					hr.With(guard.RequirePermission("holiday:update")).Patch("/{id}", h.Schedule.UpdateHoliday)
					hr.With(guard.RequirePermission("holiday:delete")).Delete("/{id}", h.Schedule.DeleteHoliday)
				})
				er.Route("/grace-times", func(gr chi.Router) {
					gr.With(guard.RequirePermission("grace_time:read")).Get("/organization/{organizationID}", h.Schedule.GetGraceTime)
					gr.With(guard.RequirePermission("grace_time:update")).Patch("/{id}", h.Schedule.UpdateGraceTime)
				})
			})

			pr.Group(func(er chi.Router) {
				er.Use(guard.RequireModuleAccess(ModulePayroll))

				er.Route("/overtime-policies", func(or chi.Router) {
					or.With(guard.RequirePermission("overtime_policy:read")).Get("/", h.Payroll.ListOvertimePolicies)
					or.With(guard.RequirePermission("overtime_policy:read")).Get("/{id}", h.Payroll.GetOvertimePolicy)
					or.With(guard.RequirePermission("overtime_policy:create")).Post("/", h.Payroll.CreateOvertimePolicy)
					or.With(guard.RequirePermission("overtime_policy:update")).Patch("/{id}", h.Payroll.UpdateOvertimePolicy)
					or.With(guard.RequirePermission("overtime_policy:delete")).Delete("/{id}", h.Payroll.DeleteOvertimePolicy)
				})
				er.Route("/payroll-configs", func(cr chi.Router) {
					cr.With(guard.RequirePermission("payroll_config:read")).Get("/", h.Payroll.ListConfigs)
					cr.With(guard.RequirePermission("payroll_config:read")).Get("/{id}", h.Payroll.GetConfig)
					cr.With(guard.RequirePermission("payroll_config:create")).Post("/", h.Payroll.CreateConfig)
					cr.With(guard.RequirePermission("payroll_config:update")).Patch("/{id}", h.Payroll.UpdateConfig)
					cr.With(guard.RequirePermission("payroll_config:delete")).Delete("/{id}", h.Payroll.DeleteConfig)
				})
				er.Route("/expense-accounts", func(ar chi.Router) {
					ar.With(guard.RequirePermission("expense_account:read")).Get("/", h.Payroll.ListAccounts)
					ar.With(guard.RequirePermission("expense_account:read")).Get("/{id}", h.Payroll.GetAccount)
					ar.With(guard.RequirePermission("expense_account:create")).Post("/", h.Payroll.CreateAccount)
					ar.With(guard.RequirePermission("expense_account:update")).Patch("/{id}", h.Payroll.UpdateAccount)
					ar.With(guard.RequirePermission("expense_account:delete")).Delete("/{id}", h.Payroll.DeleteAccount)
				})
				er.Route("/employer-taxable-components", func(tr chi.Router) {
					tr.With(guard.RequirePermission("taxable_component:read")).Get("/", h.Payroll.ListComponents)
					tr.With(guard.RequirePermission("taxable_component:read")).Get("/{id}", h.Payroll.GetComponent)
					tr.With(guard.RequirePermission("taxable_component:create")).Post("/", h.Payroll.CreateComponent)
					tr.With(guard.RequirePermission("taxable_component:update")).Patch("/{id}", h.Payroll.UpdateComponent)
					tr.With(guard.RequirePermission("taxable_component:delete")).Delete("/{id}", h.Payroll.DeleteComponent)
				})
			})

			pr.Route("/rbac", func(er chi.Router) {
				er.Use(guard.RequireModuleAccess(ModuleAccessControl))

				er.Route("/roles", func(rr chi.Router) {
					rr.With(guard.RequirePermission("role:read")).Get("/", h.RBAC.ListRoles)
					rr.With(guard.RequirePermission("role:read")).Get("/{id}", h.RBAC.GetRole)
					rr.With(guard.RequirePermission("role:create")).Post("/", h.RBAC.CreateRole)
					rr.With(guard.RequirePermission("role:update")).Patch("/{id}", h.RBAC.UpdateRole)
					rr.With(guard.RequirePermission("role:delete")).Delete("/{id}", h.RBAC.DeleteRole)
					rr.With(guard.RequirePermission("role:read")).Get("/{id}/permissions", h.RBAC.GetRolePermissions)
					rr.With(guard.RequirePermission("role:assign")).Put("/{id}/permissions", h.RBAC.AssignRolePermissions)
					rr.With(guard.RequirePermission("role:read")).Get("/{id}/modules", h.RBAC.GetRoleModules)
					rr.With(guard.RequirePermission("role:assign")).Put("/{id}/modules", h.RBAC.AssignRoleModules)
				})
				er.Route("/permissions", func(pp chi.Router) {
					pp.With(guard.RequirePermission("permission:read")).Get("/", h.RBAC.ListPermissions)
					pp.With(guard.RequirePermission("permission:read")).Get("/{id}", h.RBAC.GetPermission)
					pp.With(guard.RequirePermission("permission:create")).Post("/", h.RBAC.CreatePermission)
					pp.With(guard.RequirePermission("permission:update")).Patch("/{id}", h.RBAC.UpdatePermission)
					pp.With(guard.RequirePermission("permission:delete")).Delete("/{id}", h.RBAC.DeletePermission)
				})
				er.Route("/modules", func(mm chi.Router) {
					mm.With(guard.RequirePermission("module:read")).Get("/", h.RBAC.ListModules)
					mm.With(guard.RequirePermission("module:read")).Get("/{id}", h.RBAC.GetModule)
					mm.With(guard.RequirePermission("module:create")).Post("/", h.RBAC.CreateModule)
					mm.With(guard.RequirePermission("module:update")).Patch("/{id}", h.RBAC.UpdateModule)
					mm.With(guard.RequirePermission("module:delete")).Delete("/{id}", h.RBAC.DeleteModule)
				})
				er.Route("/users", func(ur chi.Router) {
					ur.With(guard.RequirePermission("user:assign_roles")).Put("/{id}/roles", h.RBAC.AssignUserRoles)
					ur.With(guard.RequirePermission("user:read_access")).Get("/{id}/access", h.RBAC.GetUserAccess)
				})
			})
		})
	})
}
