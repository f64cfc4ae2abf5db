package employment

import (
	"log/slog"

	"github.com/Acon1tum/hris-test-sub000/internal"
)

type RepositoryAPI interface {
	GetAllTypes() ([]EmploymentType, error)
	GetTypeByID(id int64) (*EmploymentType, error)
	GetTypeByName(name string) (*EmploymentType, error)
	CreateType(t *EmploymentType) error
	UpdateType(t *EmploymentType) error
	DeleteType(id int64) error
	CountUsersOfType(id int64) (int64, error)

	GetAllGrades() ([]Grade, error)
	GetGradeByID(id int64) (*Grade, error)
	GetGradeByName(name string) (*Grade, error)
	GetGradeByCode(code string) (*Grade, error)
	CreateGrade(g *Grade) error
	UpdateGrade(g *Grade) error
	DeleteGrade(id int64) error
	CountUsersOfGrade(id int64) (int64, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ---- employment types ----

func (s *Service) ListTypes() ([]EmploymentType, error) {
	return s.repo.GetAllTypes()
}

func (s *Service) GetType(id int64) (*EmploymentType, error) {
	t, err := s.repo.GetTypeByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch employment type").WithCause(err)
	}
	if t == nil {
		return nil, ErrTypeNotFound
	}
	return t, nil
}

func (s *Service) CreateType(dto CreateEmploymentTypeDTO) (*EmploymentType, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	dup, err := s.repo.GetTypeByName(dto.Name)
	if err != nil {
		return nil, internal.NewInternalError("failed to check employment type name").WithCause(err)
	}
	if dup != nil {
		return nil, ErrTypeNameTaken
	}

	t := &EmploymentType{Name: dto.Name, Description: dto.Description, IsActive: true}
	if err := s.repo.CreateType(t); err != nil {
		return nil, internal.NewInternalError("failed to create employment type").WithCause(err)
	}
	s.logger.Info("employment type created", "employment_type_id", t.ID, "name", t.Name)
	return t, nil
}

func (s *Service) UpdateType(id int64, dto UpdateEmploymentTypeDTO) (*EmploymentType, error) {
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
			return nil, internal.NewInternalError("failed to check employment type name").WithCause(err)
		}
		if dup != nil && dup.ID != id {
			return nil, ErrTypeNameTaken
		}
		t.Name = *dto.Name
	}
	if dto.Description != nil {
		t.Description = *dto.Description
	}
	if dto.IsActive != nil {
		t.IsActive = *dto.IsActive
	}
	if err := s.repo.UpdateType(t); err != nil {
		return nil, internal.NewInternalError("failed to update employment type").WithCause(err)
	}
	return t, nil
}

func (s *Service) DeleteType(id int64) error {
	if _, err := s.GetType(id); err != nil {
		return err
	}
	users, err := s.repo.CountUsersOfType(id)
	if err != nil {
		return internal.NewInternalError("failed to check employment type usage").WithCause(err)
	}
	if users > 0 {
		return ErrTypeInUse
	}
	if err := s.repo.DeleteType(id); err != nil {
		return internal.NewInternalError("failed to delete employment type").WithCause(err)
	}
	s.logger.Info("employment type deleted", "employment_type_id", id)
	return nil
}

// ---- grades ----

func (s *Service) ListGrades() ([]Grade, error) {
	return s.repo.GetAllGrades()
}

func (s *Service) GetGrade(id int64) (*Grade, error) {
	g, err := s.repo.GetGradeByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch grade").WithCause(err)
	}
	if g == nil {
		return nil, ErrGradeNotFound
	}
	return g, nil
}

func (s *Service) CreateGrade(dto CreateGradeDTO) (*Grade, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkGradeUnique(dto.Name, dto.Code, 0); err != nil {
		return nil, err
	}

	g := &Grade{
		Name:        dto.Name,
		Code:        dto.Code,
		MinSalary:   dto.MinSalary,
		MaxSalary:   dto.MaxSalary,
		Description: dto.Description,
		IsActive:    true,
	}
	if err := s.repo.CreateGrade(g); err != nil {
		return nil, internal.NewInternalError("failed to create grade").WithCause(err)
	}
	s.logger.Info("grade created", "grade_id", g.ID, "code", g.Code)
	return g, nil
}

func (s *Service) UpdateGrade(id int64, dto UpdateGradeDTO) (*Grade, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	g, err := s.GetGrade(id)
	if err != nil {
		return nil, err
	}

	name, code := g.Name, g.Code
	if dto.Name != nil {
		name = *dto.Name
	}
	if dto.Code != nil {
		code = *dto.Code
	}
	if err := s.checkGradeUnique(name, code, id); err != nil {
		return nil, err
	}

	g.Name = name
	g.Code = code
	if dto.MinSalary != nil {
		g.MinSalary = *dto.MinSalary
	}
	if dto.MaxSalary != nil {
		g.MaxSalary = *dto.MaxSalary
	}
	if g.MaxSalary < g.MinSalary {
		return nil, ErrInvalidSalaryRange
	}
	if dto.Description != nil {
		g.Description = *dto.Description
	}
	if dto.IsActive != nil {
		g.IsActive = *dto.IsActive
	}
	if err := s.repo.UpdateGrade(g); err != nil {
		return nil, internal.NewInternalError("failed to update grade").WithCause(err)
	}
	return g, nil
}

func (s *Service) DeleteGrade(id int64) error {
	if _, err := s.GetGrade(id); err != nil {
		return err
	}
	users, err := s.repo.CountUsersOfGrade(id)
	if err != nil {
		return internal.NewInternalError("failed to check grade usage").WithCause(err)
	}
	if users > 0 {
		return ErrGradeInUse
	}
	if err := s.repo.DeleteGrade(id); err != nil {
		return internal.NewInternalError("failed to delete grade").WithCause(err)
	}
	s.logger.Info("grade deleted", "grade_id", id)
	return nil
}

func (s *Service) checkGradeUnique(name, code string, selfID int64) error {
	existing, err := s.repo.GetGradeByName(name)
	if err != nil {
		return internal.NewInternalError("failed to check grade name").WithCause(err)
	}
	if existing != nil && existing.ID != selfID {
		return ErrGradeNameTaken
	}
	existing, err = s.repo.GetGradeByCode(code)
	if err != nil {
		return internal.NewInternalError("failed to check grade code").WithCause(err)
	}
	if existing != nil && existing.ID != selfID {
		return ErrGradeCodeTaken
	}
	return nil
}
