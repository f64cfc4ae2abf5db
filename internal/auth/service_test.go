package auth_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/Acon1tum/hris-test-sub000/internal"
	"github.com/Acon1tum/hris-test-sub000/internal/auth"
	"github.com/Acon1tum/hris-test-sub000/internal/rbac"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Service Suite")
}

// MockRepository implements auth.RepositoryAPI backed by a map keyed on email.
type MockRepository struct {
	users      map[string]*auth.User
	nextID     int64
	shouldFail bool
	failError  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{users: make(map[string]*auth.User), nextID: 1}
}

func (m *MockRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

func (m *MockRepository) GetByEmail(email string) (*auth.User, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	return m.users[email], nil
}

func (m *MockRepository) GetByID(id int64) (*auth.User, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockRepository) Create(user *auth.User) error {
	if m.shouldFail {
		return m.failError
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.Email] = user
	return nil
}

func (m *MockRepository) RecordLogin(userID int64, at time.Time) error {
	if m.shouldFail {
		return m.failError
	}
	for _, u := range m.users {
		if u.ID == userID {
			t := at
			u.LastLoginAt = &t
		}
	}
	return nil
}

func (m *MockRepository) AddUser(user *auth.User) *auth.User {
	if user.ID == 0 {
		user.ID = m.nextID
		m.nextID++
	}
	m.users[user.Email] = user
	return user
}

// MockAccessProvider implements auth.AccessProvider.
type MockAccessProvider struct {
	access      map[int64]*rbac.Access
	assignments map[int64]string
	shouldFail  bool
	failError   error
}

func NewMockAccessProvider() *MockAccessProvider {
	return &MockAccessProvider{
		access:      make(map[int64]*rbac.Access),
		assignments: make(map[int64]string),
	}
}

func (m *MockAccessProvider) ComputeEffectiveAccess(userID int64) (*rbac.Access, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	if a, ok := m.access[userID]; ok {
		return a, nil
	}
	return &rbac.Access{Roles: []string{}, Permissions: []string{}, Modules: []string{}}, nil
}

func (m *MockAccessProvider) AssignRoleByName(userID int64, roleName string) error {
	if m.shouldFail {
		return m.failError
	}
	m.assignments[userID] = roleName
	return nil
}

func hashPassword(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	Expect(err).NotTo(HaveOccurred())
	return string(hash)
}

var _ = Describe("Auth Service", func() {
	var (
		mockRepo   *MockRepository
		mockAccess *MockAccessProvider
		tokens     *auth.JWTTokenGenerator
		service    *auth.Service
		logger     *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		mockAccess = NewMockAccessProvider()
		tokens = auth.NewJWTTokenGenerator("access-secret", "refresh-secret", time.Minute, time.Hour)
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = auth.NewService(mockRepo, mockAccess, tokens, bcrypt.MinCost, logger)
	})

	Describe("Login", func() {
		BeforeEach(func() {
			mockRepo.AddUser(&auth.User{
				Email:        "jane@hris.local",
				PasswordHash: hashPassword("correct-horse"),
				FirstName:    "Jane",
				LastName:     "Doe",
				IsActive:     true,
			})
		})

		It("should return tokens and profile on valid credentials", func() {
			mockAccess.access[1] = &rbac.Access{
				Roles:       []string{"Employee"},
				Permissions: []string{"organization:read"},
				Modules:     []string{"organizations"},
			}

			result, err := service.Login(auth.LoginDTO{Email: "jane@hris.local", Password: "correct-horse"})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.AccessToken).NotTo(BeEmpty())
			Expect(result.RefreshToken).NotTo(BeEmpty())
			Expect(result.User.Email).To(Equal("jane@hris.local"))
			Expect(result.User.Roles).To(ConsistOf("Employee"))
			Expect(result.User.Permissions).To(ConsistOf("organization:read"))
		})

		It("should record the login time", func() {
			_, err := service.Login(auth.LoginDTO{Email: "jane@hris.local", Password: "correct-horse"})
			Expect(err).NotTo(HaveOccurred())
			user, _ := mockRepo.GetByEmail("jane@hris.local")
			Expect(user.LastLoginAt).NotTo(BeNil())
		})

		It("should return the same error for unknown email and wrong password", func() {
			_, unknownErr := service.Login(auth.LoginDTO{Email: "nobody@hris.local", Password: "whatever1"})
			_, wrongErr := service.Login(auth.LoginDTO{Email: "jane@hris.local", Password: "wrong-password"})
			Expect(unknownErr).To(MatchError(internal.ErrInvalidCredentials))
			Expect(wrongErr).To(MatchError(internal.ErrInvalidCredentials))
		})

		It("should reject an inactive account before checking the password", func() {
			mockRepo.AddUser(&auth.User{
				Email:        "gone@hris.local",
				PasswordHash: hashPassword("correct-horse"),
				IsActive:     false,
			})
			_, err := service.Login(auth.LoginDTO{Email: "gone@hris.local", Password: "correct-horse"})
			Expect(err).To(MatchError(internal.ErrUserInactive))
		})

	})

	Describe("Register", func() {
		It("should create the account and grant the default role", func() {
			profile, err := service.Register(auth.RegisterDTO{
				Email:     "new@hris.local",
				Password:  "longenough1",
				FirstName: "New",
				LastName:  "Hire",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(profile.ID).NotTo(BeZero())
			Expect(profile.IsActive).To(BeTrue())
			Expect(mockAccess.assignments[profile.ID]).To(Equal(auth.DefaultRoleName))
		})

		It("should store a bcrypt hash, never the raw password", func() {
			_, err := service.Register(auth.RegisterDTO{
				Email:     "new@hris.local",
				Password:  "longenough1",
				FirstName: "New",
				LastName:  "Hire",
			})
			Expect(err).NotTo(HaveOccurred())

			user, _ := mockRepo.GetByEmail("new@hris.local")
			Expect(user.PasswordHash).NotTo(Equal("longenough1"))
			Expect(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("longenough1"))).To(Succeed())
		})

		It("should reject a duplicate email", func() {
			mockRepo.AddUser(&auth.User{Email: "taken@hris.local", IsActive: true})
			_, err := service.Register(auth.RegisterDTO{
				Email:     "taken@hris.local",
				Password:  "longenough1",
				FirstName: "New",
				LastName:  "Hire",
			})
			Expect(err).To(MatchError(auth.ErrEmailTaken))
		})

		It("should reject a short password", func() {
			_, err := service.Register(auth.RegisterDTO{
				Email:     "new@hris.local",
				Password:  "short",
				FirstName: "New",
				LastName:  "Hire",
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("RefreshTokens", func() {
		It("should issue a new pair for a valid refresh token", func() {
			user := mockRepo.AddUser(&auth.User{Email: "jane@hris.local", IsActive: true})
			refresh, err := tokens.GenerateRefreshToken(user.ID, user.Email)
			Expect(err).NotTo(HaveOccurred())

			pair, err := service.RefreshTokens(refresh)
			Expect(err).NotTo(HaveOccurred())
			Expect(pair.AccessToken).NotTo(BeEmpty())
			Expect(pair.RefreshToken).NotTo(BeEmpty())
		})

		It("should reject an access token used as a refresh token", func() {
			user := mockRepo.AddUser(&auth.User{Email: "jane@hris.local", IsActive: true})
			access, err := tokens.GenerateAccessToken(user.ID, user.Email)
			Expect(err).NotTo(HaveOccurred())

			_, refreshErr := service.RefreshTokens(access)
			Expect(refreshErr).To(MatchError(internal.ErrInvalidToken))
		})

		It("should reject when the account was deactivated since issuance", func() {
			user := mockRepo.AddUser(&auth.User{Email: "jane@hris.local", IsActive: true})
			refresh, err := tokens.GenerateRefreshToken(user.ID, user.Email)
			Expect(err).NotTo(HaveOccurred())

			user.IsActive = false
			_, refreshErr := service.RefreshTokens(refresh)
			Expect(refreshErr).To(MatchError(internal.ErrUserInactive))
		})

		It("should reject garbage input", func() {
			_, err := service.RefreshTokens("not-a-token")
			Expect(err).To(MatchError(internal.ErrInvalidToken))
		})
	})

	Describe("ResolvePrincipal", func() {
		It("should carry the freshly computed access sets", func() {
			user := mockRepo.AddUser(&auth.User{Email: "jane@hris.local", FirstName: "Jane", IsActive: true})
			mockAccess.access[user.ID] = &rbac.Access{
				Roles:       []string{"HR Manager"},
				Permissions: []string{"department:read", "department:update"},
				Modules:     []string{"departments"},
			}

			principal, err := service.ResolvePrincipal(user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(principal.Email).To(Equal("jane@hris.local"))
			Expect(principal.Permissions).To(ConsistOf("department:read", "department:update"))
			Expect(principal.Modules).To(ConsistOf("departments"))
		})

		It("should reject an inactive account", func() {
			user := mockRepo.AddUser(&auth.User{Email: "gone@hris.local", IsActive: false})
			_, err := service.ResolvePrincipal(user.ID)
			Expect(err).To(MatchError(internal.ErrUserInactive))
		})

		It("should reject an unknown user id", func() {
			_, err := service.ResolvePrincipal(404)
			Expect(err).To(MatchError(internal.ErrInvalidToken))
		})
	})

	Describe("JWTTokenGenerator", func() {
		It("should reject an expired token", func() {
			expired := &auth.JWTTokenGenerator{
				AccessTokenSecret: []byte("access-secret"),
				AccessTokenTTL:    -time.Minute,
			}
			token, err := expired.GenerateAccessToken(1, "jane@hris.local")
			Expect(err).NotTo(HaveOccurred())

			_, parseErr := tokens.ValidateAccessToken(token)
			Expect(parseErr).To(MatchError(internal.ErrTokenExpired))
		})

		It("should reject a token signed with a different secret", func() {
			other := auth.NewJWTTokenGenerator("other-secret", "other-refresh", time.Minute, time.Hour)
			token, err := other.GenerateAccessToken(1, "jane@hris.local")
			Expect(err).NotTo(HaveOccurred())

			_, parseErr := tokens.ValidateAccessToken(token)
			Expect(parseErr).To(MatchError(internal.ErrInvalidToken))
		})

		It("should round-trip claims on a valid token", func() {
			token, err := tokens.GenerateAccessToken(42, "jane@hris.local")
			Expect(err).NotTo(HaveOccurred())

			claims, err := tokens.ValidateAccessToken(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal("42"))
			Expect(claims.Email).To(Equal("jane@hris.local"))
		})
	})
})
