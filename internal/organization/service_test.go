package organization_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/Acon1tum/hris-test-sub000/internal/organization"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestOrganizationService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Organization Service Suite")
}

type MockRepository struct {
	organizations map[int64]*organization.Organization
	officeCounts  map[int64]int64
	nextID        int64
	shouldFail    bool
	failError     error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		organizations: make(map[int64]*organization.Organization),
		officeCounts:  make(map[int64]int64),
		nextID:        1,
	}
}

func (m *MockRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

func (m *MockRepository) GetAll() ([]organization.Organization, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	out := make([]organization.Organization, 0, len(m.organizations))
	for _, org := range m.organizations {
		out = append(out, *org)
	}
	return out, nil
}

func (m *MockRepository) GetByID(id int64) (*organization.Organization, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	return m.organizations[id], nil
}

func (m *MockRepository) GetByName(name string) (*organization.Organization, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	for _, org := range m.organizations {
		if org.Name == name {
			return org, nil
		}
	}
	return nil, nil
}

func (m *MockRepository) GetBySlug(slug string) (*organization.Organization, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	for _, org := range m.organizations {
		if org.Slug == slug {
			return org, nil
		}
	}
	return nil, nil
}

func (m *MockRepository) Create(org *organization.Organization) error {
	if m.shouldFail {
		return m.failError
	}
	org.ID = m.nextID
	m.nextID++
	m.organizations[org.ID] = org
	return nil
}

func (m *MockRepository) Update(org *organization.Organization) error {
	if m.shouldFail {
		return m.failError
	}
	m.organizations[org.ID] = org
	return nil
}

func (m *MockRepository) Delete(id int64) error {
	if m.shouldFail {
		return m.failError
	}
	delete(m.organizations, id)
	return nil
}

func (m *MockRepository) CountOffices(orgID int64) (int64, error) {
	if m.shouldFail {
		return 0, m.failError
	}
	return m.officeCounts[orgID], nil
}

var _ = Describe("Organization Service", func() {
	var (
		mockRepo *MockRepository
		service  *organization.Service
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = organization.NewService(mockRepo, logger)
	})

	Describe("Create", func() {
		It("should create an active organization", func() {
			org, err := service.Create(organization.CreateOrganizationDTO{
				Name:         "Acme Corp",
				Slug:         "acme-corp",
				CurrencyCode: "PHP",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(org.ID).NotTo(BeZero())
			Expect(org.IsActive).To(BeTrue())
		})

		It("should reject a duplicate name", func() {
			_, err := service.Create(organization.CreateOrganizationDTO{Name: "Acme Corp", Slug: "acme", CurrencyCode: "PHP"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(organization.CreateOrganizationDTO{Name: "Acme Corp", Slug: "acme-2", CurrencyCode: "PHP"})
			Expect(err).To(MatchError(organization.ErrNameTaken))
		})

		It("should reject a duplicate slug", func() {
			_, err := service.Create(organization.CreateOrganizationDTO{Name: "Acme Corp", Slug: "acme", CurrencyCode: "PHP"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(organization.CreateOrganizationDTO{Name: "Acme Two", Slug: "acme", CurrencyCode: "PHP"})
			Expect(err).To(MatchError(organization.ErrSlugTaken))
		})

		It("should reject a currency code that is not three letters", func() {
			_, err := service.Create(organization.CreateOrganizationDTO{Name: "Acme Corp", Slug: "acme", CurrencyCode: "PESO"})
			Expect(err).To(HaveOccurred())
		})

		It("should reject a slug with spaces", func() {
			_, err := service.Create(organization.CreateOrganizationDTO{Name: "Acme Corp", Slug: "acme corp", CurrencyCode: "PHP"})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Update", func() {
		It("should keep its own name and slug on a no-op update", func() {
			org, err := service.Create(organization.CreateOrganizationDTO{Name: "Acme Corp", Slug: "acme", CurrencyCode: "PHP"})
			Expect(err).NotTo(HaveOccurred())

			name, slug := "Acme Corp", "acme"
			updated, err := service.Update(org.ID, organization.UpdateOrganizationDTO{Name: &name, Slug: &slug})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Acme Corp"))
		})

		It("should reject renaming onto another organization", func() {
			_, err := service.Create(organization.CreateOrganizationDTO{Name: "Acme Corp", Slug: "acme", CurrencyCode: "PHP"})
			Expect(err).NotTo(HaveOccurred())
			other, err := service.Create(organization.CreateOrganizationDTO{Name: "Globex", Slug: "globex", CurrencyCode: "USD"})
			Expect(err).NotTo(HaveOccurred())

			name := "Acme Corp"
			_, err = service.Update(other.ID, organization.UpdateOrganizationDTO{Name: &name})
			Expect(err).To(MatchError(organization.ErrNameTaken))
		})

		It("should return not found for an unknown id", func() {
			name := "Acme Corp"
			_, err := service.Update(404, organization.UpdateOrganizationDTO{Name: &name})
			Expect(err).To(MatchError(organization.ErrNotFound))
		})
	})

	Describe("Delete", func() {
		It("should refuse while offices exist", func() {
			org, err := service.Create(organization.CreateOrganizationDTO{Name: "Acme Corp", Slug: "acme", CurrencyCode: "PHP"})
			Expect(err).NotTo(HaveOccurred())
			mockRepo.officeCounts[org.ID] = 2

			Expect(service.Delete(org.ID)).To(MatchError(organization.ErrInUse))
		})

		It("should delete an organization with no offices", func() {
			org, err := service.Create(organization.CreateOrganizationDTO{Name: "Acme Corp", Slug: "acme", CurrencyCode: "PHP"})
			Expect(err).NotTo(HaveOccurred())
			Expect(service.Delete(org.ID)).To(Succeed())
			Expect(mockRepo.organizations).NotTo(HaveKey(org.ID))
		})
	})
})
