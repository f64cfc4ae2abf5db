package organization

import (
	"time"

	"github.com/Acon1tum/hris-test-sub000/internal"
	"github.com/Acon1tum/hris-test-sub000/internal/core/common/validation"
)

type Organization struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"column:name;uniqueIndex;not null"`
	Slug         string    `json:"slug" gorm:"column:slug;uniqueIndex;not null"`
	CurrencyCode string    `json:"currency_code" gorm:"column:currency_code;not null"`
	Address      string    `json:"address" gorm:"column:address"`
	IsActive     bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Organization) TableName() string { return "organizations" }

type CreateOrganizationDTO struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	CurrencyCode string `json:"currency_code"`
	Address      string `json:"address"`
}

func (d CreateOrganizationDTO) Validate() error {
	return validation.NewValidator().
		Require("name", d.Name).
		MaxLength("name", d.Name, 200).
		Require("slug", d.Slug).
		Slug("slug", d.Slug).
		Require("currency_code", d.CurrencyCode).
		Custom("currency_code", len(d.CurrencyCode) == 3, "currency_code must be a 3-letter ISO code").
		Validate()
}

type UpdateOrganizationDTO struct {
	Name         *string `json:"name"`
	Slug         *string `json:"slug"`
	CurrencyCode *string `json:"currency_code"`
	Address      *string `json:"address"`
	IsActive     *bool   `json:"is_active"`
}

func (d UpdateOrganizationDTO) Validate() error {
	v := validation.NewValidator()
	if d.Name != nil {
		v.Require("name", *d.Name).MaxLength("name", *d.Name, 200)
	}
	if d.Slug != nil {
		v.Require("slug", *d.Slug).Slug("slug", *d.Slug)
	}
	if d.CurrencyCode != nil {
		v.Custom("currency_code", len(*d.CurrencyCode) == 3, "currency_code must be a 3-letter ISO code")
	}
	return v.Validate()
}

var (
	ErrNotFound  = internal.NewNotFoundError("organization not found", internal.ErrCodeRecordNotFound)
	ErrNameTaken = internal.NewConflictError("an organization with this name already exists", internal.ErrCodeDuplicateName)
	ErrSlugTaken = internal.NewConflictError("an organization with this slug already exists", internal.ErrCodeDuplicateSlug)
	ErrInUse     = internal.NewConflictError("organization still has offices", internal.ErrCodeRecordInUse)
)
