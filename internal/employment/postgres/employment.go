package postgres

import (
	"errors"

	"github.com/Acon1tum/hris-test-sub000/internal/employment"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAllTypes() ([]employment.EmploymentType, error) {
	var types []employment.EmploymentType
	if err := r.db.Order("name ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *Repository) GetTypeByID(id int64) (*employment.EmploymentType, error) {
	var t employment.EmploymentType
	err := r.db.First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) GetTypeByName(name string) (*employment.EmploymentType, error) {
	var t employment.EmploymentType
	err := r.db.First(&t, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) CreateType(t *employment.EmploymentType) error {
	return r.db.Create(t).Error
}

func (r *Repository) UpdateType(t *employment.EmploymentType) error {
	return r.db.Save(t).Error
}

func (r *Repository) DeleteType(id int64) error {
	return r.db.Delete(&employment.EmploymentType{}, "id = ?", id).Error
}

func (r *Repository) CountUsersOfType(id int64) (int64, error) {
	var count int64
	err := r.db.Table("users").Where("employment_type_id = ?", id).Count(&count).Error
	return count, err
}

func (r *Repository) GetAllGrades() ([]employment.Grade, error) {
	var grades []employment.Grade
	if err := r.db.Order("code ASC").Find(&grades).Error; err != nil {
		return nil, err
	}
	return grades, nil
}

func (r *Repository) GetGradeByID(id int64) (*employment.Grade, error) {
	var g employment.Grade
	err := r.db.First(&g, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *Repository) GetGradeByName(name string) (*employment.Grade, error) {
	var g employment.Grade
	err := r.db.First(&g, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *Repository) GetGradeByCode(code string) (*employment.Grade, error) {
	var g employment.Grade
	err := r.db.First(&g, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *Repository) CreateGrade(g *employment.Grade) error {
	return r.db.Create(g).Error
}

func (r *Repository) UpdateGrade(g *employment.Grade) error {
	return r.db.Save(g).Error
}

func (r *Repository) DeleteGrade(id int64) error {
	return r.db.Delete(&employment.Grade{}, "id = ?", id).Error
}

func (r *Repository) CountUsersOfGrade(id int64) (int64, error) {
	var count int64
	err := r.db.Table("users").Where("grade_id = ?", id).Count(&count).Error
	return count, err
}
