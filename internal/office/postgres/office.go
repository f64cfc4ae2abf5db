package postgres

import (
	"errors"

	"github.com/Acon1tum/hris-test-sub000/internal/office"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAll() ([]office.Office, error) {
	var offices []office.Office
	err := r.db.Preload("Phones").Preload("Emails").Order("name ASC").Find(&offices).Error
	if err != nil {
		return nil, err
	}
	return offices, nil
}

func (r *Repository) GetByID(id int64) (*office.Office, error) {
	var o office.Office
	err := r.db.Preload("Phones").Preload("Emails").First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) GetByNameInOrganization(orgID int64, name string) (*office.Office, error) {
	var o office.Office
	err := r.db.First(&o, "organization_id = ? AND name = ?", orgID, name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) CreateWithContacts(o *office.Office) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		phones, emails := o.Phones, o.Emails
		o.Phones, o.Emails = nil, nil
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		for i := range phones {
			phones[i].OfficeID = o.ID
		}
		for i := range emails {
			emails[i].OfficeID = o.ID
		}
		if len(phones) > 0 {
			if err := tx.Create(&phones).Error; err != nil {
				return err
			}
		}
		if len(emails) > 0 {
			if err := tx.Create(&emails).Error; err != nil {
				return err
			}
		}
		o.Phones, o.Emails = phones, emails
		return nil
	})
}

func (r *Repository) UpdateWithContacts(o *office.Office, replacePhones, replaceEmails bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		phones, emails := o.Phones, o.Emails
		o.Phones, o.Emails = nil, nil
		if err := tx.Omit("Phones", "Emails").Save(o).Error; err != nil {
			return err
		}
		if replacePhones {
			if err := tx.Where("office_id = ?", o.ID).Delete(&office.OfficePhone{}).Error; err != nil {
				return err
			}
			for i := range phones {
				phones[i].ID = 0
				phones[i].OfficeID = o.ID
			}
			if len(phones) > 0 {
				if err := tx.Create(&phones).Error; err != nil {
					return err
				}
			}
		}
		if replaceEmails {
			if err := tx.Where("office_id = ?", o.ID).Delete(&office.OfficeEmail{}).Error; err != nil {
				return err
			}
			for i := range emails {
				emails[i].ID = 0
				emails[i].OfficeID = o.ID
			}
			if len(emails) > 0 {
				if err := tx.Create(&emails).Error; err != nil {
					return err
				}
			}
		}
		o.Phones, o.Emails = phones, emails
		return nil
	})
}

func (r *Repository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("office_id = ?", id).Delete(&office.OfficePhone{}).Error; err != nil {
			return err
		}
		if err := tx.Where("office_id = ?", id).Delete(&office.OfficeEmail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&office.Office{}, "id = ?", id).Error
	})
}

func (r *Repository) OrganizationExists(orgID int64) (bool, error) {
	var count int64
	err := r.db.Table("organizations").Where("id = ?", orgID).Count(&count).Error
	return count > 0, err
}

func (r *Repository) CountAssignedUsers(officeID int64) (int64, error) {
	var count int64
	err := r.db.Table("users").Where("office_id = ?", officeID).Count(&count).Error
	return count, err
}
