package postgres

import (
	"errors"

	"github.com/Acon1tum/hris-test-sub000/internal/payroll"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func firstOrNil[T any](db *gorm.DB, conds ...interface{}) (*T, error) {
	var out T
	err := db.First(&out, conds...).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Repository) GetAllOvertimePolicies() ([]payroll.OvertimePolicy, error) {
	var policies []payroll.OvertimePolicy
	if err := r.db.Order("name ASC").Find(&policies).Error; err != nil {
		return nil, err
	}
	return policies, nil
}

func (r *Repository) GetOvertimePolicyByID(id int64) (*payroll.OvertimePolicy, error) {
	return firstOrNil[payroll.OvertimePolicy](r.db, "id = ?", id)
}

func (r *Repository) GetOvertimePolicyByName(name string) (*payroll.OvertimePolicy, error) {
	return firstOrNil[payroll.OvertimePolicy](r.db, "name = ?", name)
}

func (r *Repository) CreateOvertimePolicy(p *payroll.OvertimePolicy) error {
	return r.db.Create(p).Error
}

func (r *Repository) UpdateOvertimePolicy(p *payroll.OvertimePolicy) error {
	return r.db.Save(p).Error
}

func (r *Repository) DeleteOvertimePolicy(id int64) error {
	return r.db.Delete(&payroll.OvertimePolicy{}, "id = ?", id).Error
}

func (r *Repository) GetAllConfigs() ([]payroll.PayrollConfig, error) {
	var configs []payroll.PayrollConfig
	if err := r.db.Order("id ASC").Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

func (r *Repository) GetConfigByID(id int64) (*payroll.PayrollConfig, error) {
	return firstOrNil[payroll.PayrollConfig](r.db, "id = ?", id)
}

func (r *Repository) GetConfigByOrganization(orgID int64) (*payroll.PayrollConfig, error) {
	return firstOrNil[payroll.PayrollConfig](r.db, "organization_id = ?", orgID)
}

func (r *Repository) CreateConfig(c *payroll.PayrollConfig) error {
	return r.db.Create(c).Error
}

func (r *Repository) UpdateConfig(c *payroll.PayrollConfig) error {
	return r.db.Save(c).Error
}

func (r *Repository) DeleteConfig(id int64) error {
	return r.db.Delete(&payroll.PayrollConfig{}, "id = ?", id).Error
}

func (r *Repository) OrganizationExists(orgID int64) (bool, error) {
	var count int64
	err := r.db.Table("organizations").Where("id = ?", orgID).Count(&count).Error
	return count > 0, err
}

func (r *Repository) GetAllAccounts() ([]payroll.ExpenseAccount, error) {
	var accounts []payroll.ExpenseAccount
	if err := r.db.Order("code ASC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *Repository) GetAccountByID(id int64) (*payroll.ExpenseAccount, error) {
	return firstOrNil[payroll.ExpenseAccount](r.db, "id = ?", id)
}

func (r *Repository) GetAccountByCode(code string) (*payroll.ExpenseAccount, error) {
	return firstOrNil[payroll.ExpenseAccount](r.db, "code = ?", code)
}

func (r *Repository) CreateAccount(a *payroll.ExpenseAccount) error {
	return r.db.Create(a).Error
}

func (r *Repository) UpdateAccount(a *payroll.ExpenseAccount) error {
	return r.db.Save(a).Error
}

func (r *Repository) DeleteAccount(id int64) error {
	return r.db.Delete(&payroll.ExpenseAccount{}, "id = ?", id).Error
}

func (r *Repository) GetAllComponents() ([]payroll.EmployerTaxableComponent, error) {
	var components []payroll.EmployerTaxableComponent
	if err := r.db.Order("name ASC").Find(&components).Error; err != nil {
		return nil, err
	}
	return components, nil
}

func (r *Repository) GetComponentByID(id int64) (*payroll.EmployerTaxableComponent, error) {
	return firstOrNil[payroll.EmployerTaxableComponent](r.db, "id = ?", id)
}

func (r *Repository) GetComponentByName(name string) (*payroll.EmployerTaxableComponent, error) {
	return firstOrNil[payroll.EmployerTaxableComponent](r.db, "name = ?", name)
}

func (r *Repository) CreateComponent(c *payroll.EmployerTaxableComponent) error {
	return r.db.Create(c).Error
}

func (r *Repository) UpdateComponent(c *payroll.EmployerTaxableComponent) error {
	return r.db.Save(c).Error
}

func (r *Repository) DeleteComponent(id int64) error {
	return r.db.Delete(&payroll.EmployerTaxableComponent{}, "id = ?", id).Error
}
