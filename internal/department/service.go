package department

import (
	"log/slog"

	"github.com/Acon1tum/hris-test-sub000/internal"
)

// maxHierarchyDepth bounds the parent-chain walk so a corrupted
// hierarchy cannot loop forever.
const maxHierarchyDepth = 100

type RepositoryAPI interface {
	GetAll() ([]Department, error)
	GetByID(id int64) (*Department, error)
	GetByName(name string) (*Department, error)
	GetByCode(code string) (*Department, error)
	Create(dept *Department) error
	Update(dept *Department) error
	Delete(id int64) error
	CountChildren(id int64) (int64, error)
	CountAssignedUsers(id int64) (int64, error)
	UserExists(userID int64) (bool, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List() ([]Department, error) {
	return s.repo.GetAll()
}

func (s *Service) Get(id int64) (*Department, error) {
	dept, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch department").WithCause(err)
	}
	if dept == nil {
		return nil, ErrNotFound
	}
	return dept, nil
}

func (s *Service) Create(dto CreateDepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkUnique(dto.Name, dto.Code, 0); err != nil {
		return nil, err
	}
	if dto.ParentDepartmentID != nil {
		parent, err := s.repo.GetByID(*dto.ParentDepartmentID)
		if err != nil {
			return nil, internal.NewInternalError("failed to check parent department").WithCause(err)
		}
		if parent == nil {
			return nil, ErrUnknownParent
		}
	}
	if err := s.checkHead(dto.DepartmentHeadID); err != nil {
		return nil, err
	}

	dept := &Department{
		Name:               dto.Name,
		Code:               dto.Code,
		Description:        dto.Description,
		ParentDepartmentID: dto.ParentDepartmentID,
		DepartmentHeadID:   dto.DepartmentHeadID,
		IsActive:           true,
	}
	if err := s.repo.Create(dept); err != nil {
		return nil, internal.NewInternalError("failed to create department").WithCause(err)
	}
	s.logger.Info("department created", "department_id", dept.ID, "name", dept.Name)
	return dept, nil
}

func (s *Service) Update(id int64, dto UpdateDepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	dept, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	name, code := dept.Name, dept.Code
	if dto.Name != nil {
		name = *dto.Name
	}
	if dto.Code != nil {
		code = *dto.Code
	}
	if err := s.checkUnique(name, code, id); err != nil {
		return nil, err
	}

	switch {
	case dto.ClearParent:
		dept.ParentDepartmentID = nil
	case dto.ParentDepartmentID != nil:
		if err := s.checkParentChain(id, *dto.ParentDepartmentID); err != nil {
			return nil, err
		}
		dept.ParentDepartmentID = dto.ParentDepartmentID
	}

	switch {
	case dto.ClearHead:
		dept.DepartmentHeadID = nil
	case dto.DepartmentHeadID != nil:
		if err := s.checkHead(dto.DepartmentHeadID); err != nil {
			return nil, err
		}
		dept.DepartmentHeadID = dto.DepartmentHeadID
	}

	dept.Name = name
	dept.Code = code
	if dto.Description != nil {
		dept.Description = *dto.Description
	}
	if dto.IsActive != nil {
		dept.IsActive = *dto.IsActive
	}

	if err := s.repo.Update(dept); err != nil {
		return nil, internal.NewInternalError("failed to update department").WithCause(err)
	}
	return dept, nil
}

func (s *Service) Delete(id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	children, err := s.repo.CountChildren(id)
	if err != nil {
		return internal.NewInternalError("failed to check sub-departments").WithCause(err)
	}
	if children > 0 {
		return ErrHasChildren
	}
	assigned, err := s.repo.CountAssignedUsers(id)
	if err != nil {
		return internal.NewInternalError("failed to check department usage").WithCause(err)
	}
	if assigned > 0 {
		return ErrUsersAssigned
	}
	if err := s.repo.Delete(id); err != nil {
		return internal.NewInternalError("failed to delete department").WithCause(err)
	}
	s.logger.Info("department deleted", "department_id", id)
	return nil
}

// checkParentChain verifies the proposed parent exists and that walking
// the ancestor chain from it never reaches the department being updated.
func (s *Service) checkParentChain(id, parentID int64) error {
	if parentID == id {
		return ErrSelfParent
	}
	visited := map[int64]bool{id: true}
	current := parentID
	for depth := 0; depth < maxHierarchyDepth; depth++ {
		node, err := s.repo.GetByID(current)
		if err != nil {
			return internal.NewInternalError("failed to walk department hierarchy").WithCause(err)
		}
		if node == nil {
			if current == parentID {
				return ErrUnknownParent
			}
			// Dangling ancestor reference terminates the chain.
			return nil
		}
		if visited[node.ID] {
			return ErrCycle
		}
		visited[node.ID] = true
		if node.ParentDepartmentID == nil {
			return nil
		}
		current = *node.ParentDepartmentID
	}
	return ErrCycle
}

func (s *Service) checkHead(headID *int64) error {
	if headID == nil {
		return nil
	}
	exists, err := s.repo.UserExists(*headID)
	if err != nil {
		return internal.NewInternalError("failed to check department head").WithCause(err)
	}
	if !exists {
		return ErrUnknownHead
	}
	return nil
}

func (s *Service) checkUnique(name, code string, selfID int64) error {
	existing, err := s.repo.GetByName(name)
	if err != nil {
		return internal.NewInternalError("failed to check department name").WithCause(err)
	}
	if existing != nil && existing.ID != selfID {
		return ErrNameTaken
	}
	existing, err = s.repo.GetByCode(code)
	if err != nil {
		return internal.NewInternalError("failed to check department code").WithCause(err)
	}
	if existing != nil && existing.ID != selfID {
		return ErrCodeTaken
	}
	return nil
}
