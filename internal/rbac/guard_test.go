package rbac_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/Acon1tum/hris-test-sub000/internal"
	"github.com/Acon1tum/hris-test-sub000/internal/rbac"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// MockAccessChecker implements rbac.AccessChecker for guard specs.
type MockAccessChecker struct {
	modules map[string]*rbac.Module
	allowed map[int64]map[string]bool
}

func NewMockAccessChecker() *MockAccessChecker {
	return &MockAccessChecker{
		modules: make(map[string]*rbac.Module),
		allowed: make(map[int64]map[string]bool),
	}
}

func (m *MockAccessChecker) AddModule(slug string, active bool) {
	m.modules[slug] = &rbac.Module{ID: int64(len(m.modules) + 1), Name: slug, Slug: slug, IsActive: active}
}

func (m *MockAccessChecker) Allow(userID int64, slug string) {
	if m.allowed[userID] == nil {
		m.allowed[userID] = make(map[string]bool)
	}
	m.allowed[userID][slug] = true
}

func (m *MockAccessChecker) GetModuleBySlug(slug string) (*rbac.Module, error) {
	return m.modules[slug], nil
}

func (m *MockAccessChecker) UserCanAccessModule(userID int64, moduleSlug string) (bool, error) {
	return m.allowed[userID][moduleSlug], nil
}

var _ = Describe("Guard", func() {
	var (
		checker *MockAccessChecker
		guard   *rbac.Guard
		next    http.Handler
		called  bool
	)

	principal := &internal.Principal{
		ID:          1,
		Email:       "ana@example.com",
		Permissions: []string{"organization:read"},
	}

	serve := func(mw func(http.Handler) http.Handler, p *internal.Principal) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if p != nil {
			req = req.WithContext(internal.ContextWithPrincipal(req.Context(), p))
		}
		rec := httptest.NewRecorder()
		mw(next).ServeHTTP(rec, req)
		return rec
	}

	decode := func(rec *httptest.ResponseRecorder) internal.Envelope {
		var env internal.Envelope
		Expect(json.Unmarshal(rec.Body.Bytes(), &env)).To(Succeed())
		return env
	}

	BeforeEach(func() {
		checker = NewMockAccessChecker()
		guard = rbac.NewGuard(checker, slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})))
		called = false
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
		})
	})

	Describe("RequireModuleAccess", func() {
		It("should pass through when a role grants the module", func() {
			checker.AddModule("organizations", true)
			checker.Allow(principal.ID, "organizations")

			rec := serve(guard.RequireModuleAccess("organizations"), principal)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(called).To(BeTrue())
		})

		It("should reject with 403 when no role grants the module", func() {
			checker.AddModule("organizations", true)

			rec := serve(guard.RequireModuleAccess("organizations"), principal)
			Expect(rec.Code).To(Equal(http.StatusForbidden))
			Expect(called).To(BeFalse())

			env := decode(rec)
			Expect(env.Success).To(BeFalse())
			Expect(env.Error).To(Equal(rbac.ErrModuleAccessDenied.Message))
		})

		It("should reject with 404 when the module does not exist", func() {
			rec := serve(guard.RequireModuleAccess("payroll"), principal)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(called).To(BeFalse())
		})

		It("should reject with 404 when the module is inactive", func() {
			checker.AddModule("payroll", false)
			checker.Allow(principal.ID, "payroll")

			rec := serve(guard.RequireModuleAccess("payroll"), principal)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(called).To(BeFalse())
		})

		It("should reject with 401 when no principal is attached", func() {
			checker.AddModule("organizations", true)

			rec := serve(guard.RequireModuleAccess("organizations"), nil)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(called).To(BeFalse())
		})
	})

	Describe("RequirePermission", func() {
		It("should pass through when the caller holds the permission", func() {
			rec := serve(guard.RequirePermission("organization:read"), principal)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(called).To(BeTrue())
		})

		It("should reject with 403 when the permission is missing", func() {
			rec := serve(guard.RequirePermission("organization:delete"), principal)
			Expect(rec.Code).To(Equal(http.StatusForbidden))
			Expect(called).To(BeFalse())

			env := decode(rec)
			Expect(env.Success).To(BeFalse())
			Expect(env.Error).To(Equal(rbac.ErrPermissionDenied.Message))
		})
	})

	Describe("RequireAnyPermission", func() {
		It("should pass through when at least one permission matches", func() {
			rec := serve(guard.RequireAnyPermission("organization:delete", "organization:read"), principal)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(called).To(BeTrue())
		})

		It("should reject when none match", func() {
			rec := serve(guard.RequireAnyPermission("organization:delete", "organization:update"), principal)
			Expect(rec.Code).To(Equal(http.StatusForbidden))
			Expect(called).To(BeFalse())
		})
	})
})
