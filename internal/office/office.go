package office

import (
	"time"

	"github.com/Acon1tum/hris-test-sub000/internal"
	"github.com/Acon1tum/hris-test-sub000/internal/core/common/validation"
)

type Office struct {
	ID             int64         `json:"id" gorm:"primaryKey"`
	OrganizationID int64         `json:"organization_id" gorm:"column:organization_id;not null;index"`
	Name           string        `json:"name" gorm:"column:name;not null"`
	Address        string        `json:"address" gorm:"column:address"`
	City           string        `json:"city" gorm:"column:city"`
	Country        string        `json:"country" gorm:"column:country"`
	IsActive       bool          `json:"is_active" gorm:"column:is_active;default:true"`
	Phones         []OfficePhone `json:"phones" gorm:"foreignKey:OfficeID"`
	Emails         []OfficeEmail `json:"emails" gorm:"foreignKey:OfficeID"`
	CreatedAt      time.Time     `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time     `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Office) TableName() string { return "offices" }

type OfficePhone struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	OfficeID    int64  `json:"office_id" gorm:"column:office_id;not null;index"`
	PhoneNumber string `json:"phone_number" gorm:"column:phone_number;not null"`
	Label       string `json:"label" gorm:"column:label"`
}

func (OfficePhone) TableName() string { return "office_phones" }

type OfficeEmail struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	OfficeID int64  `json:"office_id" gorm:"column:office_id;not null;index"`
	Email    string `json:"email" gorm:"column:email;not null"`
	Label    string `json:"label" gorm:"column:label"`
}

func (OfficeEmail) TableName() string { return "office_emails" }

type ContactDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type CreateOfficeDTO struct {
	OrganizationID int64        `json:"organization_id"`
	Name           string       `json:"name"`
	Address        string       `json:"address"`
	City           string       `json:"city"`
	Country        string       `json:"country"`
	Phones         []ContactDTO `json:"phones"`
	Emails         []ContactDTO `json:"emails"`
}

func (d CreateOfficeDTO) Validate() error {
	v := validation.NewValidator().
		RequireID("organization_id", d.OrganizationID).
		Require("name", d.Name).
		MaxLength("name", d.Name, 200)
	for _, p := range d.Phones {
		v.Require("phones", p.Value)
	}
	for _, e := range d.Emails {
		v.Require("emails", e.Value).Email("emails", e.Value)
	}
	return v.Validate()
}

type UpdateOfficeDTO struct {
	Name     *string       `json:"name"`
	Address  *string       `json:"address"`
	City     *string       `json:"city"`
	Country  *string       `json:"country"`
	IsActive *bool         `json:"is_active"`
	Phones   *[]ContactDTO `json:"phones"`
	Emails   *[]ContactDTO `json:"emails"`
}

func (d UpdateOfficeDTO) Validate() error {
	v := validation.NewValidator()
	if d.Name != nil {
		v.Require("name", *d.Name).MaxLength("name", *d.Name, 200)
	}
	if d.Phones != nil {
		for _, p := range *d.Phones {
			v.Require("phones", p.Value)
		}
	}
	if d.Emails != nil {
		for _, e := range *d.Emails {
			v.Require("emails", e.Value).Email("emails", e.Value)
		}
	}
	return v.Validate()
}

var (
	ErrNotFound      = internal.NewNotFoundError("office not found", internal.ErrCodeRecordNotFound)
	ErrNameTaken     = internal.NewConflictError("an office with this name already exists in the organization", internal.ErrCodeDuplicateName)
	ErrUnknownOrg    = internal.NewBadRequestError("organization does not exist", internal.ErrCodeInvalidReference)
	ErrUsersAssigned = internal.NewConflictError("office still has users assigned", internal.ErrCodeRecordInUse)
)
