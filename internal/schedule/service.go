package schedule

import (
	"log/slog"

	"github.com/Acon1tum/hris-test-sub000/internal"
)

type RepositoryAPI interface {
	GetAllShifts() ([]Shift, error)
	GetShiftByID(id int64) (*Shift, error)
	GetShiftByName(name string) (*Shift, error)
	CreateShift(sh *Shift) error
	UpdateShift(sh *Shift) error
	DeleteShift(id int64) error
	CountUsersOnShift(id int64) (int64, error)

	GetAllHolidays(orgID int64) ([]Holiday, error)
	GetHolidayByID(id int64) (*Holiday, error)
	GetHolidayByNameAndDate(orgID int64, name, date string) (*Holiday, error)
	CreateHoliday(h *Holiday) error
	UpdateHoliday(h *Holiday) error
	DeleteHoliday(id int64) error

	GetGraceTimeByOrganization(orgID int64) (*GraceTime, error)
	GetGraceTimeByID(id int64) (*GraceTime, error)
	CreateGraceTime(g *GraceTime) error
	UpdateGraceTime(g *GraceTime) error
	OrganizationExists(orgID int64) (bool, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ---- shifts ----

func (s *Service) ListShifts() ([]Shift, error) {
	return s.repo.GetAllShifts()
}

func (s *Service) GetShift(id int64) (*Shift, error) {
	sh, err := s.repo.GetShiftByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch shift").WithCause(err)
	}
	if sh == nil {
		return nil, ErrShiftNotFound
	}
	return sh, nil
}

func (s *Service) CreateShift(dto CreateShiftDTO) (*Shift, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	dup, err := s.repo.GetShiftByName(dto.Name)
	if err != nil {
		return nil, internal.NewInternalError("failed to check shift name").WithCause(err)
	}
	if dup != nil {
		return nil, ErrShiftNameTaken
	}

	sh := &Shift{
		Name:         dto.Name,
		StartTime:    dto.StartTime,
		EndTime:      dto.EndTime,
		BreakMinutes: dto.BreakMinutes,
		IsFlexible:   dto.IsFlexible,
		IsActive:     true,
	}
	if err := s.repo.CreateShift(sh); err != nil {
		return nil, internal.NewInternalError("failed to create shift").WithCause(err)
	}
	s.logger.Info("shift created", "shift_id", sh.ID, "name", sh.Name)
	return sh, nil
}

func (s *Service) UpdateShift(id int64, dto UpdateShiftDTO) (*Shift, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	sh, err := s.GetShift(id)
	if err != nil {
		return nil, err
	}
	if dto.Name != nil && *dto.Name != sh.Name {
		dup, err := s.repo.GetShiftByName(*dto.Name)
		if err != nil {
			return nil, internal.NewInternalError("failed to check shift name").WithCause(err)
		}
		if dup != nil && dup.ID != id {
			return nil, ErrShiftNameTaken
		}
		sh.Name = *dto.Name
	}
	if dto.StartTime != nil {
		sh.StartTime = *dto.StartTime
	}
	if dto.EndTime != nil {
		sh.EndTime = *dto.EndTime
	}
	if dto.BreakMinutes != nil {
		sh.BreakMinutes = *dto.BreakMinutes
	}
	if dto.IsFlexible != nil {
		sh.IsFlexible = *dto.IsFlexible
	}
	if dto.IsActive != nil {
		sh.IsActive = *dto.IsActive
	}
	if err := s.repo.UpdateShift(sh); err != nil {
		return nil, internal.NewInternalError("failed to update shift").WithCause(err)
	}
	return sh, nil
}

func (s *Service) DeleteShift(id int64) error {
	if _, err := s.GetShift(id); err != nil {
		return err
	}
	users, err := s.repo.CountUsersOnShift(id)
	if err != nil {
		return internal.NewInternalError("failed to check shift usage").WithCause(err)
	}
	if users > 0 {
		return ErrShiftInUse
	}
	if err := s.repo.DeleteShift(id); err != nil {
		return internal.NewInternalError("failed to delete shift").WithCause(err)
	}
	s.logger.Info("shift deleted", "shift_id", id)
	return nil
}

// ---- holidays ----

func (s *Service) ListHolidays(orgID int64) ([]Holiday, error) {
	return s.repo.GetAllHolidays(orgID)
}

func (s *Service) GetHoliday(id int64) (*Holiday, error) {
	h, err := s.repo.GetHolidayByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch holiday").WithCause(err)
	}
	if h == nil {
		return nil, ErrHolidayNotFound
	}
	return h, nil
}

func (s *Service) CreateHoliday(dto CreateHolidayDTO) (*Holiday, error) {
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
	dup, err := s.repo.GetHolidayByNameAndDate(dto.OrganizationID, dto.Name, dto.Date)
	if err != nil {
		return nil, internal.NewInternalError("failed to check holiday").WithCause(err)
	}
	if dup != nil {
		return nil, ErrHolidayExists
	}

	h := &Holiday{
		OrganizationID: dto.OrganizationID,
		Name:           dto.Name,
		Date:           dto.Date,
		IsRecurring:    dto.IsRecurring,
	}
	if err := s.repo.CreateHoliday(h); err != nil {
		return nil, internal.NewInternalError("failed to create holiday").WithCause(err)
	}
	s.logger.Info("holiday created", "holiday_id", h.ID, "organization_id", h.OrganizationID)
	return h, nil
}

func (s *Service) UpdateHoliday(id int64, dto UpdateHolidayDTO) (*Holiday, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	h, err := s.GetHoliday(id)
	if err != nil {
		return nil, err
	}

	name, date := h.Name, h.Date
	if dto.Name != nil {
		name = *dto.Name
	}
	if dto.Date != nil {
		date = *dto.Date
	}
	if name != h.Name || date != h.Date {
		dup, err := s.repo.GetHolidayByNameAndDate(h.OrganizationID, name, date)
		if err != nil {
			return nil, internal.NewInternalError("failed to check holiday").WithCause(err)
		}
		if dup != nil && dup.ID != id {
			return nil, ErrHolidayExists
		}
	}

	h.Name = name
	h.Date = date
	if dto.IsRecurring != nil {
		h.IsRecurring = *dto.IsRecurring
	}
	if err := s.repo.UpdateHoliday(h); err != nil {
		return nil, internal.NewInternalError("failed to update holiday").WithCause(err)
	}
	return h, nil
}

func (s *Service) DeleteHoliday(id int64) error {
	if _, err := s.GetHoliday(id); err != nil {
		return err
	}
	if err := s.repo.DeleteHoliday(id); err != nil {
		return internal.NewInternalError("failed to delete holiday").WithCause(err)
	}
	s.logger.Info("holiday deleted", "holiday_id", id)
	return nil
}

// ---- grace time ----

// GetGraceTime returns the organization's grace time settings, creating
// the record with defaults on first read.
func (s *Service) GetGraceTime(orgID int64) (*GraceTime, error) {
	exists, err := s.repo.OrganizationExists(orgID)
	if err != nil {
		return nil, internal.NewInternalError("failed to check organization").WithCause(err)
	}
	if !exists {
		return nil, ErrUnknownOrg
	}

	g, err := s.repo.GetGraceTimeByOrganization(orgID)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch grace time settings").WithCause(err)
	}
	if g != nil {
		return g, nil
	}

	g = &GraceTime{
		OrganizationID:      orgID,
		ArrivalGraceTime:    DefaultArrivalGrace,
		DepartureGraceTime:  DefaultDepartureGrace,
		BreakGraceTime:      DefaultBreakGrace,
		EarlyLeaveGraceTime: DefaultEarlyLeaveGrace,
	}
	if err := s.repo.CreateGraceTime(g); err != nil {
		return nil, internal.NewInternalError("failed to create grace time settings").WithCause(err)
	}
	s.logger.Info("grace time settings created with defaults", "organization_id", orgID)
	return g, nil
}

func (s *Service) UpdateGraceTime(id int64, dto UpdateGraceTimeDTO) (*GraceTime, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	g, err := s.repo.GetGraceTimeByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to fetch grace time settings").WithCause(err)
	}
	if g == nil {
		return nil, ErrGraceTimeNotFound
	}

	if dto.ArrivalGraceTime != nil {
		g.ArrivalGraceTime = *dto.ArrivalGraceTime
	}
	if dto.DepartureGraceTime != nil {
		g.DepartureGraceTime = *dto.DepartureGraceTime
	}
	if dto.BreakGraceTime != nil {
		g.BreakGraceTime = *dto.BreakGraceTime
	}
	if dto.EarlyLeaveGraceTime != nil {
		g.EarlyLeaveGraceTime = *dto.EarlyLeaveGraceTime
	}
	if err := s.repo.UpdateGraceTime(g); err != nil {
		return nil, internal.NewInternalError("failed to update grace time settings").WithCause(err)
	}
	return g, nil
}
