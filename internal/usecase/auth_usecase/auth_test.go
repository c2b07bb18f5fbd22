package auth_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/domain/model"
	"shop/internal/repository"
	auth "shop/internal/usecase/auth_usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 7
	}
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) UpdateProfile(ctx context.Context, userID int64, firstName, lastName, phone string) error {
	args := m.Called(ctx, userID, firstName, lastName, phone)
	return args.Error(0)
}

func (m *UserRepoMock) List(ctx context.Context, page int, limit int) ([]model.User, int64, error) {
	args := m.Called(ctx, page, limit)
	users, _ := args.Get(0).([]model.User)
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *UserRepoMock) Delete(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// 形式チェックは validator パッケージ側で検証済みなのでここでは素通しする
type passValidator struct{}

func (v *passValidator) ValidateRegister(in auth.RegisterUserInput) error  { return nil }
func (v *passValidator) ValidateLogin(email string, password string) error { return nil }

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type stubIssuer struct{}

func (i *stubIssuer) Issue(userID int64, email string, role model.Role, now time.Time) (string, time.Time, error) {
	return "signed-token", now.Add(24 * time.Hour), nil
}

func registerInput() auth.RegisterUserInput {
	return auth.RegisterUserInput{
		FirstName: "Taro",
		LastName:  "Yamada",
		Email:     "Taro@Example.com",
		Password:  "Str0ng!Pass",
		Phone:     "090-1234-5678",
	}
}

func TestRegisterUser_Success(t *testing.T) {
	users := &UserRepoMock{}
	hasher := auth.NewBcryptPasswordHasher(4)
	uc := auth.NewRegisterUserUsecase(users, &passValidator{}, hasher)
	ctx := context.Background()

	//emailは小文字化して照会・保存する
	users.On("FindByEmail", ctx, "taro@example.com").Return(nil, repository.ErrUserNotFound)
	users.On("Create", ctx, mock.AnythingOfType("*model.User")).Return(nil)

	out, err := uc.Execute(ctx, registerInput())

	assert.NoError(t, err)
	assert.Equal(t, int64(7), out.User.ID)
	assert.Equal(t, "taro@example.com", out.User.Email)
	assert.Equal(t, model.RoleCustomer, out.User.Role)

	//平文は保存しない
	assert.NotEqual(t, "Str0ng!Pass", out.User.PasswordHash)
	assert.NotEmpty(t, out.User.PasswordHash)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	users := &UserRepoMock{}
	uc := auth.NewRegisterUserUsecase(users, &passValidator{}, auth.NewBcryptPasswordHasher(4))
	ctx := context.Background()

	users.On("FindByEmail", ctx, "taro@example.com").Return(&model.User{ID: 3}, nil)

	_, err := uc.Execute(ctx, registerInput())

	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	users := &UserRepoMock{}
	hasher := auth.NewBcryptPasswordHasher(4)
	hashed, err := hasher.Hash("Str0ng!Pass")
	assert.NoError(t, err)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := auth.NewLoginUsecase(users, &passValidator{}, auth.NewBcryptPasswordVerifier(), &stubIssuer{}, &fixedClock{now: now})
	ctx := context.Background()

	users.On("FindByEmail", ctx, "taro@example.com").Return(&model.User{
		ID: 7, Email: "taro@example.com", PasswordHash: hashed, Role: model.RoleCustomer,
	}, nil)

	out, err := uc.Execute(ctx, auth.LoginInput{Email: "taro@example.com", Password: "Str0ng!Pass"})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token.AccessToken)
	assert.Equal(t, int(24*time.Hour/time.Second), out.Token.ExpiresIn)
	assert.Equal(t, int64(7), out.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := &UserRepoMock{}
	hasher := auth.NewBcryptPasswordHasher(4)
	hashed, err := hasher.Hash("Str0ng!Pass")
	assert.NoError(t, err)

	uc := auth.NewLoginUsecase(users, &passValidator{}, auth.NewBcryptPasswordVerifier(), &stubIssuer{}, &fixedClock{now: time.Now()})
	ctx := context.Background()

	users.On("FindByEmail", ctx, "taro@example.com").Return(&model.User{
		ID: 7, Email: "taro@example.com", PasswordHash: hashed,
	}, nil)

	_, err = uc.Execute(ctx, auth.LoginInput{Email: "taro@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail_SameError(t *testing.T) {
	users := &UserRepoMock{}
	uc := auth.NewLoginUsecase(users, &passValidator{}, auth.NewBcryptPasswordVerifier(), &stubIssuer{}, &fixedClock{now: time.Now()})
	ctx := context.Background()

	users.On("FindByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := uc.Execute(ctx, auth.LoginInput{Email: "nobody@example.com", Password: "whatever"})

	//存在しないemailでもメッセージを変えない
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestProfile_Update_InvalidName(t *testing.T) {
	users := &UserRepoMock{}
	uc := auth.NewProfileUsecase(users)

	_, err := uc.Update(context.Background(), 7, auth.UpdateProfileInput{
		FirstName: "T", LastName: "Yamada",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidProfileInput)
	users.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProfile_Update_Success(t *testing.T) {
	users := &UserRepoMock{}
	uc := auth.NewProfileUsecase(users)
	ctx := context.Background()

	users.On("UpdateProfile", ctx, int64(7), "Taro", "Suzuki", "090-1234-5678").Return(nil)
	users.On("FindByID", ctx, int64(7)).Return(&model.User{
		ID: 7, FirstName: "Taro", LastName: "Suzuki", Phone: "090-1234-5678",
	}, nil)

	user, err := uc.Update(ctx, 7, auth.UpdateProfileInput{
		FirstName: "Taro", LastName: "Suzuki", Phone: "090-1234-5678",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Suzuki", user.LastName)
}
