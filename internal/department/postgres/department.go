package postgres

import (
	"errors"

	"github.com/Acon1tum/hris-test-sub000/internal/department"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]department.Department, error) {
	var depts []department.Department
	if err := r.db.Order("name ASC").Find(&depts).Error; err != nil {
		return nil, err
	}
	return depts, nil
}

func (r *Repository) GetByID(id int64) (*department.Department, error) {
	var dept department.Department
	err := r.db.First(&dept, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *Repository) GetByName(name string) (*department.Department, error) {
	var dept department.Department
	err := r.db.First(&dept, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *Repository) GetByCode(code string) (*department.Department, error) {
	var dept department.Department
	err := r.db.First(&dept, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *Repository) Create(dept *department.Department) error {
	return r.db.Create(dept).Error
}

func (r *Repository) Update(dept *department.Department) error {
	// Save skips nil pointer columns, so cleared parent/head references
	// are written explicitly.
	return r.db.Model(dept).Select("*").Omit("id", "created_at").Updates(dept).Error
}

func (r *Repository) Delete(id int64) error {
	return r.db.Delete(&department.Department{}, "id = ?", id).Error
}

func (r *Repository) CountChildren(id int64) (int64, error) {
	var count int64
	err := r.db.Model(&department.Department{}).Where("parent_department_id = ?", id).Count(&count).Error
	return count, err
}

func (r *Repository) CountAssignedUsers(id int64) (int64, error) {
	var count int64
	err := r.db.Table("users").Where("department_id = ?", id).Count(&count).Error
	return count, err
}

func (r *Repository) UserExists(userID int64) (bool, error) {
	var count int64
	err := r.db.Table("users").Where("id = ?", userID).Count(&count).Error
	return count > 0, err
}
