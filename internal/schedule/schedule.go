package schedule

import (
	"time"

	"github.com/Acon1tum/hris-test-sub000/internal"
	"github.com/Acon1tum/hris-test-sub000/internal/core/common/validation"
)

// Default grace minutes applied when an organization has no grace time
// record yet.
const (
	DefaultArrivalGrace    = 10
	DefaultDepartureGrace  = 15
	DefaultBreakGrace      = 5
	DefaultEarlyLeaveGrace = 30
)

type Shift struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"column:name;uniqueIndex;not null"`
	StartTime    string    `json:"start_time" gorm:"column:start_time;not null"`
	EndTime      string    `json:"end_time" gorm:"column:end_time;not null"`
	BreakMinutes int       `json:"break_minutes" gorm:"column:break_minutes"`
	IsFlexible   bool      `json:"is_flexible" gorm:"column:is_flexible;default:false"`
	IsActive     bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Shift) TableName() string { return "shifts" }

type Holiday struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	OrganizationID int64     `json:"organization_id" gorm:"column:organization_id;not null;index"`
	Name           string    `json:"name" gorm:"column:name;not null"`
	Date           string    `json:"date" gorm:"column:date;not null"`
	IsRecurring    bool      `json:"is_recurring" gorm:"column:is_recurring;default:false"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (Holiday) TableName() string { return "holidays" }

// GraceTime is a per-organization singleton. Reads create the record
// with defaults when it is missing.
type GraceTime struct {
	ID                  int64     `json:"id" gorm:"primaryKey"`
	OrganizationID      int64     `json:"organization_id" gorm:"column:organization_id;uniqueIndex;not null"`
	ArrivalGraceTime    int       `json:"arrival_grace_time" gorm:"column:arrival_grace_time"`
	DepartureGraceTime  int       `json:"departure_grace_time" gorm:"column:departure_grace_time"`
	BreakGraceTime      int       `json:"break_grace_time" gorm:"column:break_grace_time"`
	EarlyLeaveGraceTime int       `json:"early_leave_grace_time" gorm:"column:early_leave_grace_time"`
	CreatedAt           time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (GraceTime) TableName() string { return "grace_times" }

type CreateShiftDTO struct {
	Name         string `json:"name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	BreakMinutes int    `json:"break_minutes"`
	IsFlexible   bool   `json:"is_flexible"`
}

func (d CreateShiftDTO) Validate() error {
	return validation.NewValidator().
		Require("name", d.Name).
		MaxLength("name", d.Name, 100).
		Require("start_time", d.StartTime).
		TimeOfDay("start_time", d.StartTime).
		Require("end_time", d.EndTime).
		TimeOfDay("end_time", d.EndTime).
		MinInt("break_minutes", d.BreakMinutes, 0).
		MaxInt("break_minutes", d.BreakMinutes, 480).
		Validate()
}

type UpdateShiftDTO struct {
	Name         *string `json:"name"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	BreakMinutes *int    `json:"break_minutes"`
	IsFlexible   *bool   `json:"is_flexible"`
	IsActive     *bool   `json:"is_active"`
}

func (d UpdateShiftDTO) Validate() error {
	v := validation.NewValidator()
	if d.Name != nil {
		v.Require("name", *d.Name).MaxLength("name", *d.Name, 100)
	}
	if d.StartTime != nil {
		v.TimeOfDay("start_time", *d.StartTime)
	}
	if d.EndTime != nil {
		v.TimeOfDay("end_time", *d.EndTime)
	}
	if d.BreakMinutes != nil {
		v.MinInt("break_minutes", *d.BreakMinutes, 0).MaxInt("break_minutes", *d.BreakMinutes, 480)
	}
	return v.Validate()
}

type CreateHolidayDTO struct {
	OrganizationID int64  `json:"organization_id"`
	Name           string `json:"name"`
	Date           string `json:"date"`
	IsRecurring    bool   `json:"is_recurring"`
}

func (d CreateHolidayDTO) Validate() error {
	v := validation.NewValidator().
		RequireID("organization_id", d.OrganizationID).
		Require("name", d.Name).
		MaxLength("name", d.Name, 200).
		Require("date", d.Date)
	if d.Date != "" {
		_, err := time.Parse("2006-01-02", d.Date)
		v.Custom("date", err == nil, "date must be in YYYY-MM-DD format")
	}
	return v.Validate()
}

type UpdateHolidayDTO struct {
	Name        *string `json:"name"`
	Date        *string `json:"date"`
	IsRecurring *bool   `json:"is_recurring"`
}

func (d UpdateHolidayDTO) Validate() error {
	v := validation.NewValidator()
	if d.Name != nil {
		v.Require("name", *d.Name).MaxLength("name", *d.Name, 200)
	}
	if d.Date != nil {
		_, err := time.Parse("2006-01-02", *d.Date)
		v.Custom("date", err == nil, "date must be in YYYY-MM-DD format")
	}
	return v.Validate()
}

type UpdateGraceTimeDTO struct {
	ArrivalGraceTime    *int `json:"arrival_grace_time"`
	DepartureGraceTime  *int `json:"departure_grace_time"`
	BreakGraceTime      *int `json:"break_grace_time"`
	EarlyLeaveGraceTime *int `json:"early_leave_grace_time"`
}

func (d UpdateGraceTimeDTO) Validate() error {
	v := validation.NewValidator()
	check := func(field string, val *int) {
		if val != nil {
			v.MinInt(field, *val, 0).MaxInt(field, *val, 240)
		}
	}
	check("arrival_grace_time", d.ArrivalGraceTime)
	check("departure_grace_time", d.DepartureGraceTime)
	check("break_grace_time", d.BreakGraceTime)
	check("early_leave_grace_time", d.EarlyLeaveGraceTime)
	return v.Validate()
}

var (
	ErrShiftNotFound     = internal.NewNotFoundError("shift not found", internal.ErrCodeRecordNotFound)
	ErrShiftNameTaken    = internal.NewConflictError("a shift with this name already exists", internal.ErrCodeDuplicateName)
	ErrShiftInUse        = internal.NewConflictError("shift still has users assigned", internal.ErrCodeRecordInUse)
	ErrHolidayNotFound   = internal.NewNotFoundError("holiday not found", internal.ErrCodeRecordNotFound)
	ErrHolidayExists     = internal.NewConflictError("a holiday with this name and date already exists in the organization", internal.ErrCodeDuplicateName)
	ErrGraceTimeNotFound = internal.NewNotFoundError("grace time settings not found", internal.ErrCodeRecordNotFound)
	ErrUnknownOrg        = internal.NewBadRequestError("organization does not exist", internal.ErrCodeInvalidReference)
)
