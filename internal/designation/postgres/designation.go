package postgres

import (
	"errors"

	"github.com/Acon1tum/hris-test-sub000/internal/designation"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]designation.Designation, error) {
	var desigs []designation.Designation
	if err := r.db.Order("name ASC").Find(&desigs).Error; err != nil {
		return nil, err
	}
	return desigs, nil
}

func (r *Repository) GetByID(id int64) (*designation.Designation, error) {
	var desig designation.Designation
	err := r.db.First(&desig, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &desig, nil
}

func (r *Repository) GetByNameInDepartment(departmentID int64, name string) (*designation.Designation, error) {
	var desig designation.Designation
	err := r.db.First(&desig, "department_id = ? AND name = ?", departmentID, name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &desig, nil
}

func (r *Repository) CreateWithPermissions(desig *designation.Designation, permissionIDs []int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(desig).Error; err != nil {
			return err
		}
		return insertPermissions(tx, desig.ID, permissionIDs)
	})
}

func (r *Repository) UpdateWithPermissions(desig *designation.Designation, permissionIDs []int64, replacePermissions bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(desig).Error; err != nil {
			return err
		}
		if !replacePermissions {
			return nil
		}
		if err := tx.Where("designation_id = ?", desig.ID).Delete(&designation.DesignationPermission{}).Error; err != nil {
			return err
		}
		return insertPermissions(tx, desig.ID, permissionIDs)
	})
}

func insertPermissions(tx *gorm.DB, designationID int64, permissionIDs []int64) error {
	if len(permissionIDs) == 0 {
		return nil
	}
	rows := make([]designation.DesignationPermission, 0, len(permissionIDs))
	for _, pid := range permissionIDs {
		rows = append(rows, designation.DesignationPermission{DesignationID: designationID, PermissionID: pid})
	}
	return tx.Create(&rows).Error
}

func (r *Repository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("designation_id = ?", id).Delete(&designation.DesignationPermission{}).Error; err != nil {
			return err
		}
		return tx.Delete(&designation.Designation{}, "id = ?", id).Error
	})
}

func (r *Repository) GetPermissionIDs(designationID int64) ([]int64, error) {
	var ids []int64
	err := r.db.Model(&designation.DesignationPermission{}).
		Where("designation_id = ?", designationID).
		Order("permission_id ASC").
		Pluck("permission_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *Repository) DepartmentExists(departmentID int64) (bool, error) {
	var count int64
	err := r.db.Table("departments").Where("id = ?", departmentID).Count(&count).Error
	return count > 0, err
}

func (r *Repository) CountExistingPermissions(ids []int64) (int64, error) {
	var count int64
	err := r.db.Table("permissions").Where("id IN ?", ids).Count(&count).Error
	return count, err
}

func (r *Repository) CountAssignedUsers(designationID int64) (int64, error) {
	var count int64
	err := r.db.Table("users").Where("designation_id = ?", designationID).Count(&count).Error
	return count, err
}
