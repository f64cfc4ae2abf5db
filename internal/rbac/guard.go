package rbac

import (
	"log/slog"
	"net/http"

	"github.com/Acon1tum/hris-test-sub000/internal"
	"github.com/Acon1tum/hris-test-sub000/internal/transport"
)

// AccessChecker is the slice of the rbac service the guards depend on.
type AccessChecker interface {
	GetModuleBySlug(slug string) (*Module, error)
	UserCanAccessModule(userID int64, moduleSlug string) (bool, error)
}

// Guard builds the authorization middleware applied in front of controllers:
// module access and the three permission variants. All of them expect the
// auth middleware to have attached a Principal to the request context.
type Guard struct {
	*transport.BaseHandler
	checker AccessChecker
	logger  *slog.Logger
}

func NewGuard(checker AccessChecker, logger *slog.Logger) *Guard {
	return &Guard{
		BaseHandler: transport.NewBaseHandler(logger),
		checker:     checker,
		logger:      logger,
	}
}

// RequireModuleAccess rejects with 404 when the module does not exist or is
// inactive, and with 403 when none of the caller's roles grant it. The
// role-module links are re-fetched on every request, not read from a token.
func (g *Guard) RequireModuleAccess(moduleSlug string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := internal.PrincipalFromContext(r.Context())
			if !ok || principal == nil {
				g.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			module, err := g.checker.GetModuleBySlug(moduleSlug)
			if err != nil {
				g.logger.Error("module lookup failed", "error", err, "module", moduleSlug)
				g.WriteError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			if module == nil || !module.IsActive {
				g.WriteError(w, http.StatusNotFound, "module not found")
				return
			}

			allowed, err := g.checker.UserCanAccessModule(principal.ID, moduleSlug)
			if err != nil {
				g.logger.Error("module access check failed", "error", err, "user_id", principal.ID, "module", moduleSlug)
				g.WriteError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			if !allowed {
				g.logger.Warn("access denied: no role grants module",
					"user_id", principal.ID,
					"module", moduleSlug)
				g.HandleServiceError(w, ErrModuleAccessDenied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission rejects unless the caller holds every one of exactly
// these permission slugs.
func (g *Guard) RequirePermission(slugs ...string) func(http.Handler) http.Handler {
	return g.permissionGuard("permission", func(p *internal.Principal) bool {
		return p.HasAllPermissions(slugs...)
	}, slugs)
}

// RequireAnyPermission rejects unless the caller holds at least one of the
// given permission slugs.
func (g *Guard) RequireAnyPermission(slugs ...string) func(http.Handler) http.Handler {
	return g.permissionGuard("any-permission", func(p *internal.Principal) bool {
		return p.HasAnyPermission(slugs...)
	}, slugs)
}

// RequireAllPermissions rejects unless the caller holds all of the given
// permission slugs.
func (g *Guard) RequireAllPermissions(slugs ...string) func(http.Handler) http.Handler {
	return g.permissionGuard("all-permissions", func(p *internal.Principal) bool {
		return p.HasAllPermissions(slugs...)
	}, slugs)
}

func (g *Guard) permissionGuard(kind string, allowed func(*internal.Principal) bool, slugs []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := internal.PrincipalFromContext(r.Context())
			if !ok || principal == nil {
				g.WriteError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			if !allowed(principal) {
				g.logger.Warn("access denied: insufficient permissions",
					"check", kind,
					"user_id", principal.ID,
					"required", slugs)
				g.HandleServiceError(w, ErrPermissionDenied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
