package leave

import (
	"log/slog"

	"github.com/Acon1tum/hris-test-sub000/internal"
)

type RepositoryAPI interface {
	GetAllTypes() ([]LeaveType, error)
	GetTypeByID(id int64) (*LeaveType, error)
	GetTypeByName(name string) (*LeaveType, error)
	CreateType(t *LeaveType) error
	UpdateType(t *LeaveType) error
	DeleteType(id int64) error
	CountPoliciesOfType(leaveTypeID int64) (int64, error)

	GetAllPolicies() ([]LeavePolicy, error)
	GetPolicyByID(id int64) (*LeavePolicy, error)
	GetPolicyByPair(leaveTypeID, employmentTypeID int64) (*LeavePolicy, error)
	CreatePolicy(p *LeavePolicy) error
	UpdatePolicy(p *LeavePolicy) error
	DeletePolicy(id int64) error
	EmploymentTypeExists(id int64) (bool, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ---- leave types ----

func (s *Service) ListTypes() ([]LeaveType, error) {
	return s.repo.GetAllTypes()
}

func (s *Service) GetType(id int64) (*LeaveType, error) {
	t, err := s.repo.GetTypeByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch leave type").WithCause(err)
	}
	if t == nil {
		return nil, ErrTypeNotFound
	}
	return t, nil
}

func (s *Service) CreateType(dto CreateLeaveTypeDTO) (*LeaveType, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	dup, err := s.repo.GetTypeByName(dto.Name)
	if err != nil {
		return nil, internal.NewInternalError("failed to check leave type name").WithCause(err)
	}
	if dup != nil {
		return nil, ErrTypeNameTaken
	}

	t := &LeaveType{
		Name:             dto.Name,
		Description:      dto.Description,
		IsPaid:           true,
		RequiresApproval: true,
		IsActive:         true,
	}
	if dto.IsPaid != nil {
		t.IsPaid = *dto.IsPaid
	}
	if dto.RequiresApproval != nil {
		t.RequiresApproval = *dto.RequiresApproval
	}
	if err := s.repo.CreateType(t); err != nil {
		return nil, internal.NewInternalError("failed to create leave type").WithCause(err)
	}
	s.logger.Info("leave type created", "leave_type_id", t.ID, "name", t.Name)
	return t, nil
}

func (s *Service) UpdateType(id int64, dto UpdateLeaveTypeDTO) (*LeaveType, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	t, err := s.GetType(id)
	if err != nil {
		return nil, err
	}
	if dto.Name != nil && *dto.Name != t.Name {
		dup, err := s.repo.GetTypeByName(*dto.Name)
		if err != nil {
			return nil, internal.NewInternalError("failed to check leave type name").WithCause(err)
		}
		if dup != nil && dup.ID != id {
			return nil, ErrTypeNameTaken
		}
		t.Name = *dto.Name
	}
	if dto.Description != nil {
		t.Description = *dto.Description
	}
	if dto.IsPaid != nil {
		t.IsPaid = *dto.IsPaid
	}
	if dto.RequiresApproval != nil {
		t.RequiresApproval = *dto.RequiresApproval
	}
	if dto.IsActive != nil {
		t.IsActive = *dto.IsActive
	}
	if err := s.repo.UpdateType(t); err != nil {
		return nil, internal.NewInternalError("failed to update leave type").WithCause(err)
	}
	return t, nil
}

func (s *Service) DeleteType(id int64) error {
	if _, err := s.GetType(id); err != nil {
		return err
	}
	policies, err := s.repo.CountPoliciesOfType(id)
	if err != nil {
		return internal.NewInternalError("failed to check leave type usage").WithCause(err)
	}
	if policies > 0 {
		return ErrTypeInUse
	}
	if err := s.repo.DeleteType(id); err != nil {
		return internal.NewInternalError("failed to delete leave type").WithCause(err)
	}
	s.logger.Info("leave type deleted", "leave_type_id", id)
	return nil
}

// ---- leave policies ----

func (s *Service) ListPolicies() ([]LeavePolicy, error) {
	return s.repo.GetAllPolicies()
}

func (s *Service) GetPolicy(id int64) (*LeavePolicy, error) {
	p, err := s.repo.GetPolicyByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch leave policy").WithCause(err)
	}
	if p == nil {
		return nil, ErrPolicyNotFound
	}
	return p, nil
}

func (s *Service) CreatePolicy(dto CreateLeavePolicyDTO) (*LeavePolicy, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	lt, err := s.repo.GetTypeByID(dto.LeaveTypeID)
	if err != nil {
		return nil, internal.NewInternalError("failed to check leave type").WithCause(err)
	}
	if lt == nil {
		return nil, ErrUnknownLeaveType
	}
	exists, err := s.repo.EmploymentTypeExists(dto.EmploymentTypeID)
	if err != nil {
		return nil, internal.NewInternalError("failed to check employment type").WithCause(err)
	}
	if !exists {
		return nil, ErrUnknownEmployment
	}

	// One policy per leave-type / employment-type pair.
	dup, err := s.repo.GetPolicyByPair(dto.LeaveTypeID, dto.EmploymentTypeID)
	if err != nil {
		return nil, internal.NewInternalError("failed to check leave policy").WithCause(err)
	}
	if dup != nil {
		return nil, ErrPolicyExists
	}

	p := &LeavePolicy{
		LeaveTypeID:      dto.LeaveTypeID,
		EmploymentTypeID: dto.EmploymentTypeID,
		DaysPerYear:      dto.DaysPerYear,
		MaxCarryOverDays: dto.MaxCarryOverDays,
		IsActive:         true,
	}
	if err := s.repo.CreatePolicy(p); err != nil {
		return nil, internal.NewInternalError("failed to create leave policy").WithCause(err)
	}
	s.logger.Info("leave policy created", "leave_policy_id", p.ID, "leave_type_id", p.LeaveTypeID, "employment_type_id", p.EmploymentTypeID)
	return p, nil
}

func (s *Service) UpdatePolicy(id int64, dto UpdateLeavePolicyDTO) (*LeavePolicy, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	p, err := s.GetPolicy(id)
	if err != nil {
		return nil, err
	}
	if dto.DaysPerYear != nil {
		p.DaysPerYear = *dto.DaysPerYear
	}
	if dto.MaxCarryOverDays != nil {
		p.MaxCarryOverDays = *dto.MaxCarryOverDays
	}
	if dto.IsActive != nil {
		p.IsActive = *dto.IsActive
	}
	if err := s.repo.UpdatePolicy(p); err != nil {
		return nil, internal.NewInternalError("failed to update leave policy").WithCause(err)
	}
	return p, nil
}

func (s *Service) DeletePolicy(id int64) error {
	if _, err := s.GetPolicy(id); err != nil {
		return err
	}
	if err := s.repo.DeletePolicy(id); err != nil {
		return internal.NewInternalError("failed to delete leave policy").WithCause(err)
	}
	s.logger.Info("leave policy deleted", "leave_policy_id", id)
	return nil
}
