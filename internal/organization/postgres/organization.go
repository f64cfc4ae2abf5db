package postgres

import (
	"errors"

	"github.com/Acon1tum/hris-test-sub000/internal/organization"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]organization.Organization, error) {
	var orgs []organization.Organization
	if err := r.db.Order("name ASC").Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

func (r *Repository) GetByID(id int64) (*organization.Organization, error) {
	var org organization.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *Repository) GetByName(name string) (*organization.Organization, error) {
	var org organization.Organization
	err := r.db.First(&org, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *Repository) GetBySlug(slug string) (*organization.Organization, error) {
	var org organization.Organization
	err := r.db.First(&org, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *Repository) Create(org *organization.Organization) error {
	return r.db.Create(org).Error
}

func (r *Repository) Update(org *organization.Organization) error {
	return r.db.Save(org).Error
}

func (r *Repository) Delete(id int64) error {
	return r.db.Delete(&organization.Organization{}, "id = ?", id).Error
}

func (r *Repository) CountOffices(orgID int64) (int64, error) {
	var count int64
	err := r.db.Table("offices").Where("organization_id = ?", orgID).Count(&count).Error
	return count, err
}
