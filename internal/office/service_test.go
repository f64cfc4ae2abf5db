package office_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/Acon1tum/hris-test-sub000/internal/office"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestOfficeService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Office Service Suite")
}

type MockRepository struct {
	offices       map[int64]*office.Office
	orgs          map[int64]bool
	assignedUsers map[int64]int64 // officeID -> user count
	nextID        int64
	shouldFail    bool
	failError     error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		offices:       make(map[int64]*office.Office),
		orgs:          make(map[int64]bool),
		assignedUsers: make(map[int64]int64),
		nextID:        1,
	}
}

func (m *MockRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

func (m *MockRepository) GetAll() ([]office.Office, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	out := make([]office.Office, 0, len(m.offices))
	for _, o := range m.offices {
		out = append(out, *o)
	}
	return out, nil
}

func (m *MockRepository) GetByID(id int64) (*office.Office, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	if o, ok := m.offices[id]; ok {
		copied := *o
		return &copied, nil
	}
	return nil, nil
}

func (m *MockRepository) GetByNameInOrganization(orgID int64, name string) (*office.Office, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	for _, o := range m.offices {
		if o.OrganizationID == orgID && o.Name == name {
			return o, nil
		}
	}
	return nil, nil
}

func (m *MockRepository) CreateWithContacts(o *office.Office) error {
	if m.shouldFail {
		return m.failError
	}
	o.ID = m.nextID
	m.nextID++
	for i := range o.Phones {
		o.Phones[i].OfficeID = o.ID
	}
	for i := range o.Emails {
		o.Emails[i].OfficeID = o.ID
	}
	copied := *o
	m.offices[o.ID] = &copied
	return nil
}

func (m *MockRepository) UpdateWithContacts(o *office.Office, replacePhones, replaceEmails bool) error {
	if m.shouldFail {
		return m.failError
	}
	stored := m.offices[o.ID]
	updated := *o
	if !replacePhones {
		updated.Phones = stored.Phones
	}
	if !replaceEmails {
		updated.Emails = stored.Emails
	}
	m.offices[o.ID] = &updated
	return nil
}

func (m *MockRepository) Delete(id int64) error {
	if m.shouldFail {
		return m.failError
	}
	delete(m.offices, id)
	return nil
}

func (m *MockRepository) OrganizationExists(orgID int64) (bool, error) {
	if m.shouldFail {
		return false, m.failError
	}
	return m.orgs[orgID], nil
}

func (m *MockRepository) CountAssignedUsers(officeID int64) (int64, error) {
	if m.shouldFail {
		return 0, m.failError
	}
	return m.assignedUsers[officeID], nil
}

func (m *MockRepository) AddOrganization(orgID int64) {
	m.orgs[orgID] = true
}

var _ = Describe("Office Service", func() {
	var (
		mockRepo *MockRepository
		service  *office.Service
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = office.NewService(mockRepo, logger)
		mockRepo.AddOrganization(1)
	})

	Describe("Create", func() {
		It("should create an office with nested contacts", func() {
			o, err := service.Create(office.CreateOfficeDTO{
				OrganizationID: 1,
				Name:           "HQ",
				City:           "Manila",
				Phones:         []office.ContactDTO{{Value: "+63-2-1234", Label: "main"}},
				Emails:         []office.ContactDTO{{Value: "hq@hris.local", Label: "front desk"}},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(o.Phones).To(HaveLen(1))
			Expect(o.Phones[0].OfficeID).To(Equal(o.ID))
			Expect(o.Emails).To(HaveLen(1))
			Expect(o.Emails[0].Email).To(Equal("hq@hris.local"))
		})

		It("should reject an unknown organization", func() {
			_, err := service.Create(office.CreateOfficeDTO{OrganizationID: 99, Name: "HQ"})
			Expect(err).To(MatchError(office.ErrUnknownOrg))
		})

		It("should reject a duplicate name within the organization", func() {
			_, err := service.Create(office.CreateOfficeDTO{OrganizationID: 1, Name: "HQ"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(office.CreateOfficeDTO{OrganizationID: 1, Name: "HQ"})
			Expect(err).To(MatchError(office.ErrNameTaken))
		})

		It("should reject an invalid contact email", func() {
			_, err := service.Create(office.CreateOfficeDTO{
				OrganizationID: 1,
				Name:           "HQ",
				Emails:         []office.ContactDTO{{Value: "not-an-email"}},
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Update", func() {
		var created *office.Office

		BeforeEach(func() {
			var err error
			created, err = service.Create(office.CreateOfficeDTO{
				OrganizationID: 1,
				Name:           "HQ",
				Phones:         []office.ContactDTO{{Value: "+63-2-1234", Label: "main"}, {Value: "+63-2-5678", Label: "fax"}},
				Emails:         []office.ContactDTO{{Value: "hq@hris.local"}},
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should replace the phone list wholesale when provided", func() {
			phones := []office.ContactDTO{{Value: "+63-2-9999", Label: "new main"}}
			updated, err := service.Update(created.ID, office.UpdateOfficeDTO{Phones: &phones})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Phones).To(HaveLen(1))
			Expect(updated.Phones[0].PhoneNumber).To(Equal("+63-2-9999"))
		})

		It("should leave emails untouched when only phones are patched", func() {
			phones := []office.ContactDTO{{Value: "+63-2-9999"}}
			updated, err := service.Update(created.ID, office.UpdateOfficeDTO{Phones: &phones})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Emails).To(HaveLen(1))
			Expect(updated.Emails[0].Email).To(Equal("hq@hris.local"))
		})

		It("should clear a contact list when given an empty one", func() {
			phones := []office.ContactDTO{}
			updated, err := service.Update(created.ID, office.UpdateOfficeDTO{Phones: &phones})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Phones).To(BeEmpty())
		})

		It("should update plain fields without touching contacts", func() {
			city := "Cebu"
			updated, err := service.Update(created.ID, office.UpdateOfficeDTO{City: &city})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.City).To(Equal("Cebu"))
			Expect(updated.Phones).To(HaveLen(2))
			Expect(updated.Emails).To(HaveLen(1))
		})

		It("should reject renaming onto a sibling office", func() {
			_, err := service.Create(office.CreateOfficeDTO{OrganizationID: 1, Name: "Branch"})
			Expect(err).NotTo(HaveOccurred())

			name := "Branch"
			_, err = service.Update(created.ID, office.UpdateOfficeDTO{Name: &name})
			Expect(err).To(MatchError(office.ErrNameTaken))
		})
	})

	Describe("Delete", func() {
		It("should refuse while users are assigned", func() {
			created, err := service.Create(office.CreateOfficeDTO{OrganizationID: 1, Name: "HQ"})
			Expect(err).NotTo(HaveOccurred())
			mockRepo.assignedUsers[created.ID] = 2

			Expect(service.Delete(created.ID)).To(MatchError(office.ErrUsersAssigned))
		})

		It("should delete an unreferenced office", func() {
			created, err := service.Create(office.CreateOfficeDTO{OrganizationID: 1, Name: "HQ"})
			Expect(err).NotTo(HaveOccurred())
			Expect(service.Delete(created.ID)).To(Succeed())
			Expect(mockRepo.offices).NotTo(HaveKey(created.ID))
		})

		It("should return not found for an unknown id", func() {
			Expect(service.Delete(404)).To(MatchError(office.ErrNotFound))
		})
	})
})
