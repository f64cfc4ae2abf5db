package auth

import (
	"time"

	"github.com/Acon1tum/hris-test-sub000/internal"
	"github.com/golang-jwt/jwt/v5"
)

// User is the identity record. Assignment columns point at the reference-data
// records a person belongs to and back the "in use" delete checks over there.
type User struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	Email        string     `json:"email" gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"column:password_hash;not null"`
	FirstName    string     `json:"first_name" gorm:"column:first_name"`
	LastName     string     `json:"last_name" gorm:"column:last_name"`
	IsActive     bool       `json:"is_active" gorm:"column:is_active;default:true"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty" gorm:"column:last_login_at"`

	DepartmentID     *int64 `json:"department_id,omitempty" gorm:"column:department_id"`
	OfficeID         *int64 `json:"office_id,omitempty" gorm:"column:office_id"`
	DesignationID    *int64 `json:"designation_id,omitempty" gorm:"column:designation_id"`
	EmploymentTypeID *int64 `json:"employment_type_id,omitempty" gorm:"column:employment_type_id"`
	GradeID          *int64 `json:"grade_id,omitempty" gorm:"column:grade_id"`
	ShiftID          *int64 `json:"shift_id,omitempty" gorm:"column:shift_id"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string { return "users" }

// DefaultRoleName is assigned at registration when the role exists.
const DefaultRoleName = "Employee"

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserProfile is the identity view returned by login, register and /me,
// carrying the effective access alongside the identity fields.
type UserProfile struct {
	ID          int64    `json:"id"`
	Email       string   `json:"email"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	IsActive    bool     `json:"is_active"`
	Roles       []string `json:"roles"`
	Permissions []string `json:"permissions"`
	Modules     []string `json:"modules"`
}

type LoginResult struct {
	User         UserProfile `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
}

// Claims are the JWT claims. Deliberately identity-only: permissions are
// re-resolved from storage on every request so revocation is immediate.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type TokenGeneratorAPI interface {
	GenerateAccessToken(userID int64, email string) (string, error)
	GenerateRefreshToken(userID int64, email string) (string, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ValidateRefreshToken(tokenString string) (*Claims, error)
}

type ServiceAPI interface {
	Login(dto LoginDTO) (*LoginResult, error)
	Register(dto RegisterDTO) (*UserProfile, error)
	RefreshTokens(refreshToken string) (AuthTokens, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ResolvePrincipal(userID int64) (*internal.Principal, error)
	GetProfile(userID int64) (*UserProfile, error)
}

var ErrEmailTaken = internal.NewConflictError("an account with this email already exists", internal.ErrCodeEmailTaken)
