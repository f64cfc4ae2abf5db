package leave_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/Acon1tum/hris-test-sub000/internal/leave"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestLeaveService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Leave Service Suite")
}

type MockRepository struct {
	types           map[int64]*leave.LeaveType
	policies        map[int64]*leave.LeavePolicy
	employmentTypes map[int64]bool
	nextID          int64
	shouldFail      bool
	failError       error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		types:           make(map[int64]*leave.LeaveType),
		policies:        make(map[int64]*leave.LeavePolicy),
		employmentTypes: make(map[int64]bool),
		nextID:          1,
	}
}

func (m *MockRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

func (m *MockRepository) GetAllTypes() ([]leave.LeaveType, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	out := make([]leave.LeaveType, 0, len(m.types))
	for _, t := range m.types {
		out = append(out, *t)
	}
	return out, nil
}

func (m *MockRepository) GetTypeByID(id int64) (*leave.LeaveType, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	return m.types[id], nil
}

func (m *MockRepository) GetTypeByName(name string) (*leave.LeaveType, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	for _, t := range m.types {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}

func (m *MockRepository) CreateType(t *leave.LeaveType) error {
	if m.shouldFail {
		return m.failError
	}
	t.ID = m.nextID
	m.nextID++
	m.types[t.ID] = t
	return nil
}

func (m *MockRepository) UpdateType(t *leave.LeaveType) error {
	if m.shouldFail {
		return m.failError
	}
	m.types[t.ID] = t
	return nil
}

func (m *MockRepository) DeleteType(id int64) error {
	if m.shouldFail {
		return m.failError
	}
	delete(m.types, id)
	return nil
}

func (m *MockRepository) CountPoliciesOfType(leaveTypeID int64) (int64, error) {
	if m.shouldFail {
		return 0, m.failError
	}
	var n int64
	for _, p := range m.policies {
		if p.LeaveTypeID == leaveTypeID {
			n++
		}
	}
	return n, nil
}

func (m *MockRepository) GetAllPolicies() ([]leave.LeavePolicy, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	out := make([]leave.LeavePolicy, 0, len(m.policies))
	for _, p := range m.policies {
		out = append(out, *p)
	}
	return out, nil
}

func (m *MockRepository) GetPolicyByID(id int64) (*leave.LeavePolicy, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	return m.policies[id], nil
}

func (m *MockRepository) GetPolicyByPair(leaveTypeID, employmentTypeID int64) (*leave.LeavePolicy, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	for _, p := range m.policies {
		if p.LeaveTypeID == leaveTypeID && p.EmploymentTypeID == employmentTypeID {
			return p, nil
		}
	}
	return nil, nil
}

func (m *MockRepository) CreatePolicy(p *leave.LeavePolicy) error {
	if m.shouldFail {
		return m.failError
	}
	p.ID = m.nextID
	m.nextID++
	m.policies[p.ID] = p
	return nil
}

func (m *MockRepository) UpdatePolicy(p *leave.LeavePolicy) error {
	if m.shouldFail {
		return m.failError
	}
	m.policies[p.ID] = p
	return nil
}

func (m *MockRepository) DeletePolicy(id int64) error {
	if m.shouldFail {
		return m.failError
	}
	delete(m.policies, id)
	return nil
}

func (m *MockRepository) EmploymentTypeExists(id int64) (bool, error) {
	if m.shouldFail {
		return false, m.failError
	}
	return m.employmentTypes[id], nil
}

func (m *MockRepository) AddEmploymentType(id int64) {
	m.employmentTypes[id] = true
}

func boolPtr(v bool) *bool { return &v }

var _ = Describe("Leave Service", func() {
	var (
		mockRepo *MockRepository
		service  *leave.Service
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = leave.NewService(mockRepo, logger)
	})

	Describe("CreateType", func() {
		It("should default to paid and requiring approval", func() {
			t, err := service.CreateType(leave.CreateLeaveTypeDTO{Name: "Annual Leave"})
			Expect(err).NotTo(HaveOccurred())
			Expect(t.IsPaid).To(BeTrue())
			Expect(t.RequiresApproval).To(BeTrue())
			Expect(t.IsActive).To(BeTrue())
		})

		It("should honor explicit false flags", func() {
			t, err := service.CreateType(leave.CreateLeaveTypeDTO{
				Name:             "Unpaid Leave",
				IsPaid:           boolPtr(false),
				RequiresApproval: boolPtr(false),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(t.IsPaid).To(BeFalse())
			Expect(t.RequiresApproval).To(BeFalse())
		})

		It("should reject a duplicate name", func() {
			_, err := service.CreateType(leave.CreateLeaveTypeDTO{Name: "Annual Leave"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateType(leave.CreateLeaveTypeDTO{Name: "Annual Leave"})
			Expect(err).To(MatchError(leave.ErrTypeNameTaken))
		})
	})

	Describe("DeleteType", func() {
		It("should refuse while policies reference the type", func() {
			t, err := service.CreateType(leave.CreateLeaveTypeDTO{Name: "Annual Leave"})
			Expect(err).NotTo(HaveOccurred())
			mockRepo.AddEmploymentType(1)
			_, err = service.CreatePolicy(leave.CreateLeavePolicyDTO{LeaveTypeID: t.ID, EmploymentTypeID: 1, DaysPerYear: 15})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteType(t.ID)).To(MatchError(leave.ErrTypeInUse))
		})

		It("should delete an unreferenced type", func() {
			t, err := service.CreateType(leave.CreateLeaveTypeDTO{Name: "Annual Leave"})
			Expect(err).NotTo(HaveOccurred())
			Expect(service.DeleteType(t.ID)).To(Succeed())
		})
	})

	Describe("CreatePolicy", func() {
		var leaveType *leave.LeaveType

		BeforeEach(func() {
			var err error
			leaveType, err = service.CreateType(leave.CreateLeaveTypeDTO{Name: "Annual Leave"})
			Expect(err).NotTo(HaveOccurred())
			mockRepo.AddEmploymentType(1)
		})

		It("should create a policy for a valid pair", func() {
			p, err := service.CreatePolicy(leave.CreateLeavePolicyDTO{
				LeaveTypeID:      leaveType.ID,
				EmploymentTypeID: 1,
				DaysPerYear:      15,
				MaxCarryOverDays: 5,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(p.IsActive).To(BeTrue())
		})

		It("should reject a second policy for the same pair", func() {
			_, err := service.CreatePolicy(leave.CreateLeavePolicyDTO{LeaveTypeID: leaveType.ID, EmploymentTypeID: 1, DaysPerYear: 15})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreatePolicy(leave.CreateLeavePolicyDTO{LeaveTypeID: leaveType.ID, EmploymentTypeID: 1, DaysPerYear: 20})
			Expect(err).To(MatchError(leave.ErrPolicyExists))
		})

		It("should allow the same leave type for a different employment type", func() {
			mockRepo.AddEmploymentType(2)
			_, err := service.CreatePolicy(leave.CreateLeavePolicyDTO{LeaveTypeID: leaveType.ID, EmploymentTypeID: 1, DaysPerYear: 15})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreatePolicy(leave.CreateLeavePolicyDTO{LeaveTypeID: leaveType.ID, EmploymentTypeID: 2, DaysPerYear: 10})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject an unknown leave type", func() {
			_, err := service.CreatePolicy(leave.CreateLeavePolicyDTO{LeaveTypeID: 999, EmploymentTypeID: 1, DaysPerYear: 15})
			Expect(err).To(MatchError(leave.ErrUnknownLeaveType))
		})

		It("should reject an unknown employment type", func() {
			_, err := service.CreatePolicy(leave.CreateLeavePolicyDTO{LeaveTypeID: leaveType.ID, EmploymentTypeID: 999, DaysPerYear: 15})
			Expect(err).To(MatchError(leave.ErrUnknownEmployment))
		})

		It("should reject more than 366 days per year", func() {
			_, err := service.CreatePolicy(leave.CreateLeavePolicyDTO{LeaveTypeID: leaveType.ID, EmploymentTypeID: 1, DaysPerYear: 400})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("UpdatePolicy", func() {
		It("should patch only the provided fields", func() {
			leaveType, err := service.CreateType(leave.CreateLeaveTypeDTO{Name: "Annual Leave"})
			Expect(err).NotTo(HaveOccurred())
			mockRepo.AddEmploymentType(1)
			p, err := service.CreatePolicy(leave.CreateLeavePolicyDTO{LeaveTypeID: leaveType.ID, EmploymentTypeID: 1, DaysPerYear: 15, MaxCarryOverDays: 5})
			Expect(err).NotTo(HaveOccurred())

			days := 20
			updated, err := service.UpdatePolicy(p.ID, leave.UpdateLeavePolicyDTO{DaysPerYear: &days})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.DaysPerYear).To(Equal(20))
			Expect(updated.MaxCarryOverDays).To(Equal(5))
		})
	})
})
