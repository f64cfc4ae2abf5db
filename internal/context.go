package internal

import (
	"context"
	"time"
)

type ctxKey string

const ContextPrincipalKey ctxKey = "principal"

// Principal is the authenticated caller attached to the request context by the
// auth middleware. Roles, permissions and modules are re-resolved from storage
// on every request, never read from token claims.
type Principal struct {
	ID          int64    `json:"id"`
	Email       string   `json:"email"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
	Modules     []string `json:"modules"`
}

func (p *Principal) HasPermission(slug string) bool {
	for _, s := range p.Permissions {
		if s == slug {
			return true
		}
	}
	return false
}

func (p *Principal) HasAnyPermission(slugs ...string) bool {
	for _, s := range slugs {
		if p.HasPermission(s) {
			return true
		}
	}
	return false
}

func (p *Principal) HasAllPermissions(slugs ...string) bool {
	for _, s := range slugs {
		if !p.HasPermission(s) {
			return false
		}
	}
	return true
}

func (p *Principal) CanAccessModule(slug string) bool {
	for _, s := range p.Modules {
		if s == slug {
			return true
		}
	}
	return false
}

func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(ContextPrincipalKey).(*Principal)
	return p, ok
}

func ContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, ContextPrincipalKey, p)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if
// duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
