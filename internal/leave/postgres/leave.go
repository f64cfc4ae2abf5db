package postgres

import (
	"errors"

	"github.com/Acon1tum/hris-test-sub000/internal/leave"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAllTypes() ([]leave.LeaveType, error) {
	var types []leave.LeaveType
	if err := r.db.Order("name ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *Repository) GetTypeByID(id int64) (*leave.LeaveType, error) {
	var t leave.LeaveType
	err := r.db.First(&t, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) GetTypeByName(name string) (*leave.LeaveType, error) {
	var t leave.LeaveType
	err := r.db.First(&t, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) CreateType(t *leave.LeaveType) error {
	return r.db.Create(t).Error
}

func (r *Repository) UpdateType(t *leave.LeaveType) error {
	return r.db.Save(t).Error
}

func (r *Repository) DeleteType(id int64) error {
	return r.db.Delete(&leave.LeaveType{}, "id = ?", id).Error
}

func (r *Repository) CountPoliciesOfType(leaveTypeID int64) (int64, error) {
	var count int64
	err := r.db.Model(&leave.LeavePolicy{}).Where("leave_type_id = ?", leaveTypeID).Count(&count).Error
	return count, err
}

func (r *Repository) GetAllPolicies() ([]leave.LeavePolicy, error) {
	var policies []leave.LeavePolicy
	if err := r.db.Order("id ASC").Find(&policies).Error; err != nil {
		return nil, err
	}
	return policies, nil
}

func (r *Repository) GetPolicyByID(id int64) (*leave.LeavePolicy, error) {
	var p leave.LeavePolicy
	err := r.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) GetPolicyByPair(leaveTypeID, employmentTypeID int64) (*leave.LeavePolicy, error) {
	var p leave.LeavePolicy
	err := r.db.First(&p, "leave_type_id = ? AND employment_type_id = ?", leaveTypeID, employmentTypeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) CreatePolicy(p *leave.LeavePolicy) error {
	return r.db.Create(p).Error
}

func (r *Repository) UpdatePolicy(p *leave.LeavePolicy) error {
	return r.db.Save(p).Error
}

func (r *Repository) DeletePolicy(id int64) error {
	return r.db.Delete(&leave.LeavePolicy{}, "id = ?", id).Error
}

func (r *Repository) EmploymentTypeExists(id int64) (bool, error) {
	var count int64
	err := r.db.Table("employment_types").Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
