package organization

import (
	"log/slog"

	"github.com/Acon1tum/hris-test-sub000/internal"
)

type RepositoryAPI interface {
	GetAll() ([]Organization, error)
	GetByID(id int64) (*Organization, error)
	GetByName(name string) (*Organization, error)
	GetBySlug(slug string) (*Organization, error)
	Create(org *Organization) error
	Update(org *Organization) error
	Delete(id int64) error
	CountOffices(orgID int64) (int64, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List() ([]Organization, error) {
	return s.repo.GetAll()
}

func (s *Service) Get(id int64) (*Organization, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch organization").WithCause(err)
	}
	if org == nil {
		return nil, ErrNotFound
	}
	return org, nil
}

func (s *Service) Create(dto CreateOrganizationDTO) (*Organization, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkUnique(dto.Name, dto.Slug, 0); err != nil {
		return nil, err
	}

	org := &Organization{
		Name:         dto.Name,
		Slug:         dto.Slug,
		CurrencyCode: dto.CurrencyCode,
		Address:      dto.Address,
		IsActive:     true,
	}
	if err := s.repo.Create(org); err != nil {
		return nil, internal.NewInternalError("failed to create organization").WithCause(err)
	}
	s.logger.Info("organization created", "organization_id", org.ID, "name", org.Name)
	return org, nil
}

func (s *Service) Update(id int64, dto UpdateOrganizationDTO) (*Organization, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	org, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	name, slug := org.Name, org.Slug
	if dto.Name != nil {
		name = *dto.Name
	}
	if dto.Slug != nil {
		slug = *dto.Slug
	}
	if err := s.checkUnique(name, slug, id); err != nil {
		return nil, err
	}

	org.Name = name
	org.Slug = slug
	if dto.CurrencyCode != nil {
		org.CurrencyCode = *dto.CurrencyCode
	}
	if dto.Address != nil {
		org.Address = *dto.Address
	}
	if dto.IsActive != nil {
		org.IsActive = *dto.IsActive
	}
	if err := s.repo.Update(org); err != nil {
		return nil, internal.NewInternalError("failed to update organization").WithCause(err)
	}
	return org, nil
}

func (s *Service) Delete(id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	offices, err := s.repo.CountOffices(id)
	if err != nil {
		return internal.NewInternalError("failed to check organization usage").WithCause(err)
	}
	if offices > 0 {
		return ErrInUse
	}
	if err := s.repo.Delete(id); err != nil {
		return internal.NewInternalError("failed to delete organization").WithCause(err)
	}
	s.logger.Info("organization deleted", "organization_id", id)
	return nil
}

func (s *Service) checkUnique(name, slug string, selfID int64) error {
	existing, err := s.repo.GetByName(name)
	if err != nil {
		return internal.NewInternalError("failed to check organization name").WithCause(err)
	}
	if existing != nil && existing.ID != selfID {
		return ErrNameTaken
	}
	existing, err = s.repo.GetBySlug(slug)
	if err != nil {
		return internal.NewInternalError("failed to check organization slug").WithCause(err)
	}
	if existing != nil && existing.ID != selfID {
		return ErrSlugTaken
	}
	return nil
}
