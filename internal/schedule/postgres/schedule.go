package postgres

import (
	"errors"

	"github.com/Acon1tum/hris-test-sub000/internal/schedule"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAllShifts() ([]schedule.Shift, error) {
	var shifts []schedule.Shift
	if err := r.db.Order("name ASC").Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *Repository) GetShiftByID(id int64) (*schedule.Shift, error) {
	var sh schedule.Shift
	err := r.db.First(&sh, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sh, nil
}

func (r *Repository) GetShiftByName(name string) (*schedule.Shift, error) {
	var sh schedule.Shift
	err := r.db.First(&sh, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sh, nil
}

func (r *Repository) CreateShift(sh *schedule.Shift) error {
	return r.db.Create(sh).Error
}

func (r *Repository) UpdateShift(sh *schedule.Shift) error {
	return r.db.Save(sh).Error
}

func (r *Repository) DeleteShift(id int64) error {
	return r.db.Delete(&schedule.Shift{}, "id = ?", id).Error
}

func (r *Repository) CountUsersOnShift(id int64) (int64, error) {
	var count int64
	err := r.db.Table("users").Where("shift_id = ?", id).Count(&count).Error
	return count, err
}

func (r *Repository) GetAllHolidays(orgID int64) ([]schedule.Holiday, error) {
	var holidays []schedule.Holiday
	err := r.db.Where("organization_id = ?", orgID).Order("date ASC").Find(&holidays).Error
	if err != nil {
		return nil, err
	}
	return holidays, nil
}

func (r *Repository) GetHolidayByID(id int64) (*schedule.Holiday, error) {
	var h schedule.Holiday
	err := r.db.First(&h, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *Repository) GetHolidayByNameAndDate(orgID int64, name, date string) (*schedule.Holiday, error) {
	var h schedule.Holiday
	err := r.db.First(&h, "organization_id = ? AND name = ? AND date = ?", orgID, name, date).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *Repository) CreateHoliday(h *schedule.Holiday) error {
	return r.db.Create(h).Error
}

func (r *Repository) UpdateHoliday(h *schedule.Holiday) error {
	return r.db.Save(h).Error
}

func (r *Repository) DeleteHoliday(id int64) error {
	return r.db.Delete(&schedule.Holiday{}, "id = ?", id).Error
}

func (r *Repository) GetGraceTimeByOrganization(orgID int64) (*schedule.GraceTime, error) {
	var g schedule.GraceTime
	err := r.db.First(&g, "organization_id = ?", orgID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *Repository) GetGraceTimeByID(id int64) (*schedule.GraceTime, error) {
	var g schedule.GraceTime
	err := r.db.First(&g, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *Repository) CreateGraceTime(g *schedule.GraceTime) error {
	return r.db.Create(g).Error
}

func (r *Repository) UpdateGraceTime(g *schedule.GraceTime) error {
	return r.db.Save(g).Error
}

func (r *Repository) OrganizationExists(orgID int64) (bool, error) {
	var count int64
	err := r.db.Table("organizations").Where("id = ?", orgID).Count(&count).Error
	return count > 0, err
}
