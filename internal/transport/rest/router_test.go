package rest_test

import (
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/Acon1tum/hris-test-sub000/internal/transport/rest"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestRouter(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Router Suite")
}

var _ = Describe("RegisterAllRoutes", func() {
	var (
		routes []string
		paths  []string
	)

	BeforeEach(func() {
		router := chi.NewRouter()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		rest.RegisterAllRoutes(router, nil, rest.Handlers{}, "*", logger)

		routes = nil
		paths = nil
		err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			routes = append(routes, method+" "+route)
			paths = append(paths, route)
			return nil
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("should expose the unauthenticated endpoints", func() {
		Expect(routes).To(ContainElement("GET /api/v1/health"))
		Expect(routes).To(ContainElement("GET /api/v1/ping"))
		Expect(routes).To(ContainElement("POST /api/v1/auth/login"))
		Expect(routes).To(ContainElement("POST /api/v1/auth/register"))
	})

	It("should mount employer taxable components under their full resource name", func() {
		Expect(routes).To(ContainElement("GET /api/v1/employer-taxable-components/"))
		Expect(routes).To(ContainElement("POST /api/v1/employer-taxable-components/"))
		Expect(routes).To(ContainElement("PATCH /api/v1/employer-taxable-components/{id}"))
		Expect(routes).To(ContainElement("DELETE /api/v1/employer-taxable-components/{id}"))
		Expect(paths).NotTo(ContainElement(HavePrefix("/api/v1/taxable-components")))
	})

	It("should mount access control under the rbac prefix", func() {
		Expect(routes).To(ContainElement("GET /api/v1/rbac/roles/"))
		Expect(routes).To(ContainElement("PUT /api/v1/rbac/roles/{id}/permissions"))
		Expect(routes).To(ContainElement("PUT /api/v1/rbac/roles/{id}/modules"))
		Expect(routes).To(ContainElement("PUT /api/v1/rbac/users/{id}/roles"))
		Expect(routes).To(ContainElement("GET /api/v1/rbac/users/{id}/access"))
		Expect(paths).NotTo(ContainElement(HavePrefix("/api/v1/roles")))
	})

	It("should mount every reference-data collection", func() {
		for _, resource := range []string{
			"organizations", "offices", "departments", "designations",
			"employment-types", "grades", "leave-types", "leave-policies",
			"shifts", "holidays", "overtime-policies", "payroll-configs",
			"expense-accounts", "employer-taxable-components",
		} {
			Expect(routes).To(ContainElement("GET /api/v1/"+resource+"/"), resource)
		}
		Expect(routes).To(ContainElement("GET /api/v1/grace-times/organization/{organizationID}"))
		Expect(routes).To(ContainElement("PATCH /api/v1/grace-times/{id}"))
	})
})
