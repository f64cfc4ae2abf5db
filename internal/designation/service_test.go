package designation_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/Acon1tum/hris-test-sub000/internal/designation"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestDesignationService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Designation Service Suite")
}

type MockRepository struct {
	designations  map[int64]*designation.Designation
	permissionSet map[int64][]int64 // designationID -> permission IDs
	departments   map[int64]bool
	permissions   map[int64]bool
	assignedUsers map[int64]int64
	nextID        int64
	shouldFail    bool
	failError     error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		designations:  make(map[int64]*designation.Designation),
		permissionSet: make(map[int64][]int64),
		departments:   make(map[int64]bool),
		permissions:   make(map[int64]bool),
		assignedUsers: make(map[int64]int64),
		nextID:        1,
	}
}

func (m *MockRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

func (m *MockRepository) GetAll() ([]designation.Designation, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	out := make([]designation.Designation, 0, len(m.designations))
	for _, d := range m.designations {
		out = append(out, *d)
	}
	return out, nil
}

func (m *MockRepository) GetByID(id int64) (*designation.Designation, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	if d, ok := m.designations[id]; ok {
		copied := *d
		return &copied, nil
	}
	return nil, nil
}

func (m *MockRepository) GetByNameInDepartment(departmentID int64, name string) (*designation.Designation, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	for _, d := range m.designations {
		if d.DepartmentID == departmentID && d.Name == name {
			return d, nil
		}
	}
	return nil, nil
}

func (m *MockRepository) CreateWithPermissions(desig *designation.Designation, permissionIDs []int64) error {
	if m.shouldFail {
		return m.failError
	}
	desig.ID = m.nextID
	m.nextID++
	copied := *desig
	m.designations[desig.ID] = &copied
	m.permissionSet[desig.ID] = append([]int64(nil), permissionIDs...)
	return nil
}

func (m *MockRepository) UpdateWithPermissions(desig *designation.Designation, permissionIDs []int64, replacePermissions bool) error {
	if m.shouldFail {
		return m.failError
	}
	copied := *desig
	m.designations[desig.ID] = &copied
	if replacePermissions {
		m.permissionSet[desig.ID] = append([]int64(nil), permissionIDs...)
	}
	return nil
}

func (m *MockRepository) Delete(id int64) error {
	if m.shouldFail {
		return m.failError
	}
	delete(m.designations, id)
	delete(m.permissionSet, id)
	return nil
}

func (m *MockRepository) GetPermissionIDs(designationID int64) ([]int64, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	return append([]int64(nil), m.permissionSet[designationID]...), nil
}

func (m *MockRepository) DepartmentExists(departmentID int64) (bool, error) {
	if m.shouldFail {
		return false, m.failError
	}
	return m.departments[departmentID], nil
}

func (m *MockRepository) CountExistingPermissions(ids []int64) (int64, error) {
	if m.shouldFail {
		return 0, m.failError
	}
	var n int64
	for _, id := range ids {
		if m.permissions[id] {
			n++
		}
	}
	return n, nil
}

func (m *MockRepository) CountAssignedUsers(designationID int64) (int64, error) {
	if m.shouldFail {
		return 0, m.failError
	}
	return m.assignedUsers[designationID], nil
}

func (m *MockRepository) AddDepartment(id int64) {
	m.departments[id] = true
}

func (m *MockRepository) AddPermission(id int64) {
	m.permissions[id] = true
}

var _ = Describe("Designation Service", func() {
	var (
		mockRepo *MockRepository
		service  *designation.Service
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = designation.NewService(mockRepo, logger)
		mockRepo.AddDepartment(1)
		mockRepo.AddPermission(10)
		mockRepo.AddPermission(11)
	})

	Describe("Create", func() {
		It("should create a designation and grant the given permissions", func() {
			desig, err := service.Create(designation.CreateDesignationDTO{
				DepartmentID:  1,
				Name:          "Senior Engineer",
				PermissionIDs: []int64{10, 11},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(desig.IsActive).To(BeTrue())
			Expect(desig.PermissionIDs).To(ConsistOf(int64(10), int64(11)))
		})

		It("should deduplicate repeated permission ids", func() {
			desig, err := service.Create(designation.CreateDesignationDTO{
				DepartmentID:  1,
				Name:          "Senior Engineer",
				PermissionIDs: []int64{10, 10, 11},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(desig.PermissionIDs).To(HaveLen(2))
		})

		It("should reject an unknown department", func() {
			_, err := service.Create(designation.CreateDesignationDTO{DepartmentID: 99, Name: "Senior Engineer"})
			Expect(err).To(MatchError(designation.ErrUnknownDepartment))
		})

		It("should reject unknown permission ids", func() {
			_, err := service.Create(designation.CreateDesignationDTO{
				DepartmentID:  1,
				Name:          "Senior Engineer",
				PermissionIDs: []int64{10, 999},
			})
			Expect(err).To(MatchError(designation.ErrUnknownPermission))
		})

		It("should reject a duplicate name within the department", func() {
			_, err := service.Create(designation.CreateDesignationDTO{DepartmentID: 1, Name: "Senior Engineer"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(designation.CreateDesignationDTO{DepartmentID: 1, Name: "Senior Engineer"})
			Expect(err).To(MatchError(designation.ErrNameTaken))
		})

		It("should allow the same name in a different department", func() {
			mockRepo.AddDepartment(2)
			_, err := service.Create(designation.CreateDesignationDTO{DepartmentID: 1, Name: "Senior Engineer"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Create(designation.CreateDesignationDTO{DepartmentID: 2, Name: "Senior Engineer"})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Update", func() {
		var created *designation.Designation

		BeforeEach(func() {
			var err error
			created, err = service.Create(designation.CreateDesignationDTO{
				DepartmentID:  1,
				Name:          "Senior Engineer",
				PermissionIDs: []int64{10},
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should replace the permission set when provided", func() {
			perms := []int64{11}
			updated, err := service.Update(created.ID, designation.UpdateDesignationDTO{PermissionIDs: &perms})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.PermissionIDs).To(ConsistOf(int64(11)))
		})

		It("should keep the permission set when the field is absent", func() {
			desc := "leads a squad"
			updated, err := service.Update(created.ID, designation.UpdateDesignationDTO{Description: &desc})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Description).To(Equal("leads a squad"))
			Expect(updated.PermissionIDs).To(ConsistOf(int64(10)))
		})

		It("should clear the permission set when given an empty list", func() {
			perms := []int64{}
			updated, err := service.Update(created.ID, designation.UpdateDesignationDTO{PermissionIDs: &perms})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.PermissionIDs).To(BeEmpty())
		})

		It("should reject moving into an unknown department", func() {
			deptID := int64(99)
			_, err := service.Update(created.ID, designation.UpdateDesignationDTO{DepartmentID: &deptID})
			Expect(err).To(MatchError(designation.ErrUnknownDepartment))
		})
	})

	Describe("Delete", func() {
		It("should refuse while users hold the designation", func() {
			created, err := service.Create(designation.CreateDesignationDTO{DepartmentID: 1, Name: "Senior Engineer"})
			Expect(err).NotTo(HaveOccurred())
			mockRepo.assignedUsers[created.ID] = 1

			Expect(service.Delete(created.ID)).To(MatchError(designation.ErrUsersAssigned))
		})

		It("should delete an unassigned designation with its permission rows", func() {
			created, err := service.Create(designation.CreateDesignationDTO{DepartmentID: 1, Name: "Senior Engineer", PermissionIDs: []int64{10}})
			Expect(err).NotTo(HaveOccurred())
			Expect(service.Delete(created.ID)).To(Succeed())
			Expect(mockRepo.permissionSet).NotTo(HaveKey(created.ID))
		})
	})
})
