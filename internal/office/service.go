package office

import (
	"log/slog"

	"github.com/Acon1tum/hris-test-sub000/internal"
)

type RepositoryAPI interface {
	GetAll() ([]Office, error)
	GetByID(id int64) (*Office, error)
	GetByNameInOrganization(orgID int64, name string) (*Office, error)
	CreateWithContacts(office *Office) error
	UpdateWithContacts(office *Office, replacePhones, replaceEmails bool) error
	Delete(id int64) error
	OrganizationExists(orgID int64) (bool, error)
	CountAssignedUsers(officeID int64) (int64, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List() ([]Office, error) {
	return s.repo.GetAll()
}

func (s *Service) Get(id int64) (*Office, error) {
	office, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch office").WithCause(err)
	}
	if office == nil {
		return nil, ErrNotFound
	}
	return office, nil
}

func (s *Service) Create(dto CreateOfficeDTO) (*Office, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.OrganizationExists(dto.OrganizationID)
	if err != nil {
		return nil, internal.NewInternalError("failed to check organization").WithCause(err)
	}
	if !exists {
		return nil, ErrUnknownOrg
	}

	dup, err := s.repo.GetByNameInOrganization(dto.OrganizationID, dto.Name)
	if err != nil {
		return nil, internal.NewInternalError("failed to check office name").WithCause(err)
	}
	if dup != nil {
		return nil, ErrNameTaken
	}

	office := &Office{
		OrganizationID: dto.OrganizationID,
		Name:           dto.Name,
		Address:        dto.Address,
		City:           dto.City,
		Country:        dto.Country,
		IsActive:       true,
		Phones:         buildPhones(0, dto.Phones),
		Emails:         buildEmails(0, dto.Emails),
	}
	if err := s.repo.CreateWithContacts(office); err != nil {
		return nil, internal.NewInternalError("failed to create office").WithCause(err)
	}
	s.logger.Info("office created", "office_id", office.ID, "organization_id", office.OrganizationID)
	return office, nil
}

func (s *Service) Update(id int64, dto UpdateOfficeDTO) (*Office, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	office, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil && *dto.Name != office.Name {
		dup, err := s.repo.GetByNameInOrganization(office.OrganizationID, *dto.Name)
		if err != nil {
			return nil, internal.NewInternalError("failed to check office name").WithCause(err)
		}
		if dup != nil && dup.ID != id {
			return nil, ErrNameTaken
		}
		office.Name = *dto.Name
	}
	if dto.Address != nil {
		office.Address = *dto.Address
	}
	if dto.City != nil {
		office.City = *dto.City
	}
	if dto.Country != nil {
		office.Country = *dto.Country
	}
	if dto.IsActive != nil {
		office.IsActive = *dto.IsActive
	}

	// When a contact list is present, the stored set is replaced wholesale
	// inside the same transaction as the field update.
	replacePhones := dto.Phones != nil
	replaceEmails := dto.Emails != nil
	if replacePhones {
		office.Phones = buildPhones(office.ID, *dto.Phones)
	}
	if replaceEmails {
		office.Emails = buildEmails(office.ID, *dto.Emails)
	}

	if err := s.repo.UpdateWithContacts(office, replacePhones, replaceEmails); err != nil {
		return nil, internal.NewInternalError("failed to update office").WithCause(err)
	}
	return s.Get(id)
}

func (s *Service) Delete(id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	assigned, err := s.repo.CountAssignedUsers(id)
	if err != nil {
		return internal.NewInternalError("failed to check office usage").WithCause(err)
	}
	if assigned > 0 {
		return ErrUsersAssigned
	}
	if err := s.repo.Delete(id); err != nil {
		return internal.NewInternalError("failed to delete office").WithCause(err)
	}
	s.logger.Info("office deleted", "office_id", id)
	return nil
}

func buildPhones(officeID int64, contacts []ContactDTO) []OfficePhone {
	phones := make([]OfficePhone, 0, len(contacts))
	for _, c := range contacts {
		phones = append(phones, OfficePhone{OfficeID: officeID, PhoneNumber: c.Value, Label: c.Label})
	}
	return phones
}

func buildEmails(officeID int64, contacts []ContactDTO) []OfficeEmail {
	emails := make([]OfficeEmail, 0, len(contacts))
	for _, c := range contacts {
		emails = append(emails, OfficeEmail{OfficeID: officeID, Email: c.Value, Label: c.Label})
	}
	return emails
}
