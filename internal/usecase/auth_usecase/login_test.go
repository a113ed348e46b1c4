package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/raven-ibanez/Yong-Convenient-Store/internal/domain/model"
	auth "github.com/raven-ibanez/Yong-Convenient-Store/internal/usecase/auth_usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type issuerMock struct{ mock.Mock }

func (m *issuerMock) Issue(userID string, role model.Role, now time.Time) (string, time.Time, error) {
	args := m.Called(userID, role, now)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

type idGenStub struct{}

func (g *idGenStub) NewID() string { return "user-1" }

func adminUser(t *testing.T, password string) *model.User {
	t.Helper()
	hasher := auth.NewBcryptPasswordHasher(4)
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	return &model.User{
		ID:           "user-1",
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         model.RoleAdmin,
		IsActive:     true,
	}
}

func TestLoginUsecase_Execute_Success(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	user := adminUser(t, "secret123")

	uRepo := new(UserRepoMock)
	uRepo.On("FindByEmail", mock.Anything, "admin@example.com").Return(user, nil)
	uRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

	issuer := new(issuerMock)
	issuer.On("Issue", "user-1", model.RoleAdmin, now).Return("token", now.Add(12*time.Hour), nil)

	uc := auth.NewLoginUsecase(uRepo, auth.NewBcryptPasswordVerifier(), issuer, &fixedClock{t: now})

	out, err := uc.Execute(ctx, auth.LoginInput{Email: " admin@example.com ", Password: "secret123"})
	assert.NoError(t, err)
	assert.Equal(t, "token", out.Token.AccessToken)
	assert.Equal(t, int(12*time.Hour/time.Second), out.Token.ExpiresIn)
	assert.NotNil(t, out.User.LastLoginAt)

	uRepo.AssertExpectations(t)
	issuer.AssertExpectations(t)
}

func TestLoginUsecase_Execute_WrongPassword(t *testing.T) {
	user := adminUser(t, "secret123")

	uRepo := new(UserRepoMock)
	uRepo.On("FindByEmail", mock.Anything, "admin@example.com").Return(user, nil)

	uc := auth.NewLoginUsecase(uRepo, auth.NewBcryptPasswordVerifier(), new(issuerMock), &fixedClock{t: time.Now()})

	_, err := uc.Execute(context.Background(), auth.LoginInput{Email: "admin@example.com", Password: "wrong"})
	assert.Equal(t, auth.ErrInvalidCredentials, err)
}

func TestLoginUsecase_Execute_UnknownEmail(t *testing.T) {
	uRepo := new(UserRepoMock)
	uRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	uc := auth.NewLoginUsecase(uRepo, auth.NewBcryptPasswordVerifier(), new(issuerMock), &fixedClock{t: time.Now()})

	_, err := uc.Execute(context.Background(), auth.LoginInput{Email: "ghost@example.com", Password: "x"})
	assert.Equal(t, auth.ErrInvalidCredentials, err)
}

func TestLoginUsecase_Execute_InactiveUser(t *testing.T) {
	user := adminUser(t, "secret123")
	user.IsActive = false

	uRepo := new(UserRepoMock)
	uRepo.On("FindByEmail", mock.Anything, "admin@example.com").Return(user, nil)

	uc := auth.NewLoginUsecase(uRepo, auth.NewBcryptPasswordVerifier(), new(issuerMock), &fixedClock{t: time.Now()})

	_, err := uc.Execute(context.Background(), auth.LoginInput{Email: "admin@example.com", Password: "secret123"})
	assert.Equal(t, auth.ErrUserInactive, err)
}

func TestLoginUsecase_Execute_EmptyInput(t *testing.T) {
	uc := auth.NewLoginUsecase(new(UserRepoMock), auth.NewBcryptPasswordVerifier(), new(issuerMock), &fixedClock{t: time.Now()})

	_, err := uc.Execute(context.Background(), auth.LoginInput{Email: "", Password: "x"})
	assert.Equal(t, auth.ErrInvalidCredentials, err)
}

func TestEnsureAdminUser_CreatesWhenMissing(t *testing.T) {
	uRepo := new(UserRepoMock)
	uRepo.On("FindByEmail", mock.Anything, "admin@example.com").Return(nil, nil)
	uRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Email == "admin@example.com" && u.Role == model.RoleAdmin && u.IsActive && u.PasswordHash != ""
	})).Return(nil)

	err := auth.EnsureAdminUser(context.Background(), uRepo, auth.NewBcryptPasswordHasher(4), &idGenStub{}, "admin@example.com", "secret123")
	assert.NoError(t, err)

	uRepo.AssertExpectations(t)
}

func TestEnsureAdminUser_NoopWhenExists(t *testing.T) {
	user := adminUser(t, "secret123")

	uRepo := new(UserRepoMock)
	uRepo.On("FindByEmail", mock.Anything, "admin@example.com").Return(user, nil)

	err := auth.EnsureAdminUser(context.Background(), uRepo, auth.NewBcryptPasswordHasher(4), &idGenStub{}, "admin@example.com", "secret123")
	assert.NoError(t, err)

	uRepo.AssertNotCalled(t, "Create")
}
