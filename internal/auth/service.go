package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/Acon1tum/hris-test-sub000/internal"
	"github.com/Acon1tum/hris-test-sub000/internal/rbac"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type RepositoryAPI interface {
	GetByEmail(email string) (*User, error)
	GetByID(id int64) (*User, error)
	Create(user *User) error
	RecordLogin(userID int64, at time.Time) error
}

// AccessProvider is the slice of the rbac service the auth flow needs: the
// same effective-access computation used by the per-request middleware, and
// the default role grant at registration.
type AccessProvider interface {
	ComputeEffectiveAccess(userID int64) (*rbac.Access, error)
	AssignRoleByName(userID int64, roleName string) error
}

type Service struct {
	repo       RepositoryAPI
	access     AccessProvider
	tokens     TokenGeneratorAPI
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, access AccessProvider, tokens TokenGeneratorAPI, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		access:     access,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Login authenticates credentials and returns the identity with its effective
// access plus a token pair. Unknown email and wrong password produce the same
// error; an inactive account gets its own.
func (s *Service) Login(dto LoginDTO) (*LoginResult, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, internal.ErrInvalidCredentials
	}
	if !user.IsActive {
		s.logger.Warn("login rejected: inactive account", "user_id", user.ID)
		return nil, internal.ErrUserInactive
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)) != nil {
		return nil, internal.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.repo.RecordLogin(user.ID, now); err != nil {
		s.logger.Warn("failed to record login time", "error", err, "user_id", user.ID)
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	profile, err := s.buildProfile(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return &LoginResult{
		User:         *profile,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Register creates an account and grants the default Employee role when one
// exists in the system.
func (s *Service) Register(dto RegisterDTO) (*UserProfile, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		Email:        dto.Email,
		PasswordHash: string(hash),
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		IsActive:     true,
	}
	if err := s.repo.Create(user); err != nil {
		s.logger.Error("failed to create user", "error", err, "email", dto.Email)
		return nil, err
	}

	if err := s.access.AssignRoleByName(user.ID, DefaultRoleName); err != nil {
		s.logger.Error("failed to assign default role", "error", err, "user_id", user.ID)
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return s.buildProfile(user)
}

func (s *Service) RefreshTokens(refreshToken string) (AuthTokens, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return AuthTokens{}, err
	}

	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		return AuthTokens{}, internal.ErrInvalidToken
	}

	user, err := s.repo.GetByID(userID)
	if err != nil {
		return AuthTokens{}, err
	}
	if user == nil {
		return AuthTokens{}, internal.ErrInvalidToken
	}
	if !user.IsActive {
		return AuthTokens{}, internal.ErrUserInactive
	}

	accessToken, err := s.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return AuthTokens{}, err
	}
	newRefreshToken, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokens.ValidateAccessToken(tokenString)
}

// ResolvePrincipal loads the user and recomputes roles, permissions and
// modules from storage. Called on every authenticated request so a revocation
// or deactivation takes effect on the next request, not at token expiry.
func (s *Service) ResolvePrincipal(userID int64) (*internal.Principal, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, internal.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, internal.ErrUserInactive
	}

	access, err := s.access.ComputeEffectiveAccess(user.ID)
	if err != nil {
		return nil, err
	}

	return &internal.Principal{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Roles:       access.Roles,
		Permissions: access.Permissions,
		Modules:     access.Modules,
	}, nil
}

func (s *Service) GetProfile(userID int64) (*UserProfile, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, internal.NewNotFoundError("user not found", internal.ErrCodeRecordNotFound)
	}
	return s.buildProfile(user)
}

func (s *Service) buildProfile(user *User) (*UserProfile, error) {
	access, err := s.access.ComputeEffectiveAccess(user.ID)
	if err != nil {
		return nil, err
	}
	return &UserProfile{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		IsActive:    user.IsActive,
		Roles:       access.Roles,
		Permissions: access.Permissions,
		Modules:     access.Modules,
	}, nil
}

// ---- JWT token generator ----

type JWTTokenGenerator struct {
	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}

func NewJWTTokenGenerator(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTTokenGenerator {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &JWTTokenGenerator{
		AccessTokenSecret:  []byte(accessSecret),
		RefreshTokenSecret: []byte(refreshSecret),
		AccessTokenTTL:     accessTTL,
		RefreshTokenTTL:    refreshTTL,
	}
}

func (j *JWTTokenGenerator) GenerateAccessToken(userID int64, email string) (string, error) {
	return j.sign(userID, email, j.AccessTokenTTL, j.AccessTokenSecret)
}

func (j *JWTTokenGenerator) GenerateRefreshToken(userID int64, email string) (string, error) {
	return j.sign(userID, email, j.RefreshTokenTTL, j.RefreshTokenSecret)
}

func (j *JWTTokenGenerator) sign(userID int64, email string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: strconv.FormatInt(userID, 10),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   strconv.FormatInt(userID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func (j *JWTTokenGenerator) ValidateAccessToken(tokenString string) (*Claims, error) {
	return j.parse(tokenString, j.AccessTokenSecret)
}

func (j *JWTTokenGenerator) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return j.parse(tokenString, j.RefreshTokenSecret)
}

func (j *JWTTokenGenerator) parse(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, internal.ErrInvalidToken
}
