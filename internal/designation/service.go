package designation

import (
	"log/slog"

	"github.com/Acon1tum/hris-test-sub000/internal"
)

type RepositoryAPI interface {
	GetAll() ([]Designation, error)
	GetByID(id int64) (*Designation, error)
	GetByNameInDepartment(departmentID int64, name string) (*Designation, error)
	CreateWithPermissions(desig *Designation, permissionIDs []int64) error
	UpdateWithPermissions(desig *Designation, permissionIDs []int64, replacePermissions bool) error
	Delete(id int64) error
	GetPermissionIDs(designationID int64) ([]int64, error)
	DepartmentExists(departmentID int64) (bool, error)
	CountExistingPermissions(ids []int64) (int64, error)
	CountAssignedUsers(designationID int64) (int64, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List() ([]Designation, error) {
	desigs, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range desigs {
		ids, err := s.repo.GetPermissionIDs(desigs[i].ID)
		if err != nil {
			return nil, internal.NewInternalError("failed to fetch designation permissions").WithCause(err)
		}
		desigs[i].PermissionIDs = ids
	}
	return desigs, nil
}

func (s *Service) Get(id int64) (*Designation, error) {
	desig, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch designation").WithCause(err)
	}
	if desig == nil {
		return nil, ErrNotFound
	}
	ids, err := s.repo.GetPermissionIDs(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch designation permissions").WithCause(err)
	}
	desig.PermissionIDs = ids
	return desig, nil
}

func (s *Service) Create(dto CreateDesignationDTO) (*Designation, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.DepartmentExists(dto.DepartmentID)
	if err != nil {
		return nil, internal.NewInternalError("failed to check department").WithCause(err)
	}
	if !exists {
		return nil, ErrUnknownDepartment
	}

	dup, err := s.repo.GetByNameInDepartment(dto.DepartmentID, dto.Name)
	if err != nil {
		return nil, internal.NewInternalError("failed to check designation name").WithCause(err)
	}
	if dup != nil {
		return nil, ErrNameTaken
	}

	permissionIDs := dedupe(dto.PermissionIDs)
	if err := s.checkPermissions(permissionIDs); err != nil {
		return nil, err
	}

	desig := &Designation{
		DepartmentID: dto.DepartmentID,
		Name:         dto.Name,
		Description:  dto.Description,
		IsActive:     true,
	}
	if err := s.repo.CreateWithPermissions(desig, permissionIDs); err != nil {
		return nil, internal.NewInternalError("failed to create designation").WithCause(err)
	}
	desig.PermissionIDs = permissionIDs
	s.logger.Info("designation created", "designation_id", desig.ID, "department_id", desig.DepartmentID)
	return desig, nil
}

func (s *Service) Update(id int64, dto UpdateDesignationDTO) (*Designation, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	desig, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if dto.DepartmentID != nil && *dto.DepartmentID != desig.DepartmentID {
		exists, err := s.repo.DepartmentExists(*dto.DepartmentID)
		if err != nil {
			return nil, internal.NewInternalError("failed to check department").WithCause(err)
		}
		if !exists {
			return nil, ErrUnknownDepartment
		}
		desig.DepartmentID = *dto.DepartmentID
	}
	if dto.Name != nil {
		desig.Name = *dto.Name
	}
	if dto.Description != nil {
		desig.Description = *dto.Description
	}
	if dto.IsActive != nil {
		desig.IsActive = *dto.IsActive
	}

	dup, err := s.repo.GetByNameInDepartment(desig.DepartmentID, desig.Name)
	if err != nil {
		return nil, internal.NewInternalError("failed to check designation name").WithCause(err)
	}
	if dup != nil && dup.ID != id {
		return nil, ErrNameTaken
	}

	var permissionIDs []int64
	replace := dto.PermissionIDs != nil
	if replace {
		permissionIDs = dedupe(*dto.PermissionIDs)
		if err := s.checkPermissions(permissionIDs); err != nil {
			return nil, err
		}
	}

	// Field changes and the permission set swap commit together.
	if err := s.repo.UpdateWithPermissions(desig, permissionIDs, replace); err != nil {
		return nil, internal.NewInternalError("failed to update designation").WithCause(err)
	}
	return s.Get(id)
}

func (s *Service) Delete(id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	assigned, err := s.repo.CountAssignedUsers(id)
	if err != nil {
		return internal.NewInternalError("failed to check designation usage").WithCause(err)
	}
	if assigned > 0 {
		return ErrUsersAssigned
	}
	if err := s.repo.Delete(id); err != nil {
		return internal.NewInternalError("failed to delete designation").WithCause(err)
	}
	s.logger.Info("designation deleted", "designation_id", id)
	return nil
}

func (s *Service) checkPermissions(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	count, err := s.repo.CountExistingPermissions(ids)
	if err != nil {
		return internal.NewInternalError("failed to check permissions").WithCause(err)
	}
	if count != int64(len(ids)) {
		return ErrUnknownPermission
	}
	return nil
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
