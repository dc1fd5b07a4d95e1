package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pet-shop-api/internal/config"
	domainUser "pet-shop-api/internal/domain/user"
	appErrors "pet-shop-api/pkg/errors"
	"pet-shop-api/pkg/utils"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestService(repo *MockUserRepository, issuer *MockIssuer, mailer *MockMailer) *Service {
	cfg := &config.Config{Auth: config.AuthConfig{TokenTTL: 24 * time.Hour, ResetTokenTTL: time.Hour}}
	s := NewService(repo, issuer, mailer, cfg)
	s.now = func() time.Time { return fixedNow }
	return s
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := utils.HashPassword(password)
	require.NoError(t, err)
	return h
}

func requireAppError(t *testing.T, err error, code, message string) *appErrors.AppError {
	t.Helper()
	var appErr *appErrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	if message != "" {
		assert.Equal(t, message, appErr.Message)
	}
	return appErr
}

func TestLoginSuccess(t *testing.T) {
	repo, issuer := new(MockUserRepository), new(MockIssuer)
	u := &domainUser.User{UUID: uuid.New(), Email: "admin@buckhill.co.uk", PasswordHashed: hashed(t, "admin123"), Role: domainUser.RoleAdmin}

	repo.On("GetByEmail", mock.Anything, "admin@buckhill.co.uk").Return(u, nil)
	repo.On("TouchLastLogin", mock.Anything, u.UUID, fixedNow).Return(nil)
	issuer.On("Issue", u.UUID).Return("signed.jwt.token", nil)

	resp, err := newTestService(repo, issuer, nil).Login(context.Background(),
		&LoginRequest{Email: "admin@buckhill.co.uk", Password: "admin123"}, domainUser.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", resp.Token)
	repo.AssertExpectations(t)
	issuer.AssertExpectations(t)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domainUser.ErrUserNotFound)

	_, err := newTestService(repo, new(MockIssuer), nil).Login(context.Background(),
		&LoginRequest{Email: "ghost@example.com", Password: "whatever"}, domainUser.RoleCustomer)

	requireAppError(t, err, appErrors.CodeValidation, MsgIncorrectEmail)
}

func TestLoginWrongRoleIsUnknownEmail(t *testing.T) {
	repo := new(MockUserRepository)
	u := &domainUser.User{UUID: uuid.New(), Email: "jane@example.com", PasswordHashed: hashed(t, "userpass1"), Role: domainUser.RoleCustomer}
	repo.On("GetByEmail", mock.Anything, "jane@example.com").Return(u, nil)

	_, err := newTestService(repo, new(MockIssuer), nil).Login(context.Background(),
		&LoginRequest{Email: "jane@example.com", Password: "userpass1"}, domainUser.RoleAdmin)

	requireAppError(t, err, appErrors.CodeValidation, MsgIncorrectEmail)
}

func TestLoginWrongPassword(t *testing.T) {
	repo, issuer := new(MockUserRepository), new(MockIssuer)
	u := &domainUser.User{UUID: uuid.New(), Email: "jane@example.com", PasswordHashed: hashed(t, "userpass1"), Role: domainUser.RoleCustomer}
	repo.On("GetByEmail", mock.Anything, "jane@example.com").Return(u, nil)

	_, err := newTestService(repo, issuer, nil).Login(context.Background(),
		&LoginRequest{Email: "jane@example.com", Password: "nope"}, domainUser.RoleCustomer)

	requireAppError(t, err, appErrors.CodeValidation, MsgIncorrectPassword)
	issuer.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := new(MockUserRepository)
	var stored *domainUser.User
	repo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domainUser.User) }).
		Return(nil)

	resp, err := newTestService(repo, nil, nil).Register(context.Background(), &CreateUserRequest{
		FirstName:            "Jane",
		LastName:             "Doe",
		Email:                "Jane@Example.com",
		Password:             "userpass1",
		PasswordConfirmation: "userpass1",
		Address:              "1 Main St",
		PhoneNumber:          "+1 555 0100",
		IsMarketing:          true,
	}, domainUser.RoleCustomer)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "jane@example.com", stored.Email)
	assert.NotEqual(t, "userpass1", stored.PasswordHashed)
	assert.True(t, utils.CheckPassword(stored.PasswordHashed, "userpass1"))
	assert.Equal(t, "user", resp.Role)
	assert.True(t, resp.IsMarketing)
}

func TestRegisterAdminNeedsAvatar(t *testing.T) {
	_, err := newTestService(new(MockUserRepository), nil, nil).Register(context.Background(), &CreateUserRequest{
		FirstName:            "Ada",
		LastName:             "Admin",
		Email:                "ada@example.com",
		Password:             "adminpass",
		PasswordConfirmation: "adminpass",
		Address:              "HQ",
		PhoneNumber:          "+44 20 7946 0958",
	}, domainUser.RoleAdmin)

	appErr := requireAppError(t, err, appErrors.CodeValidation, "")
	assert.Contains(t, appErr.Fields, "avatar")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(domainUser.ErrUserAlreadyExists)

	_, err := newTestService(repo, nil, nil).Register(context.Background(), &CreateUserRequest{
		FirstName:            "Jane",
		LastName:             "Doe",
		Email:                "jane@example.com",
		Password:             "userpass1",
		PasswordConfirmation: "userpass1",
		Address:              "1 Main St",
		PhoneNumber:          "+1 555 0100",
	}, domainUser.RoleCustomer)

	appErr := requireAppError(t, err, appErrors.CodeValidation, "")
	assert.Contains(t, appErr.Fields, "email")
}

func TestForgotPasswordIssuesToken(t *testing.T) {
	repo, mailer := new(MockUserRepository), new(MockMailer)
	u := &domainUser.User{UUID: uuid.New(), Email: "jane@example.com", Role: domainUser.RoleCustomer}

	repo.On("GetByEmail", mock.Anything, "jane@example.com").Return(u, nil)
	repo.On("UpsertPasswordResetToken", mock.Anything, mock.MatchedBy(func(tok *domainUser.PasswordResetToken) bool {
		return tok.Email == "jane@example.com" && len(tok.Token) == resetTokenLength && tok.CreatedAt.Equal(fixedNow)
	})).Return(nil)
	mailer.On("SendPasswordReset", mock.Anything, "jane@example.com", mock.Anything).Return(errors.New("smtp down"))

	resp, err := newTestService(repo, nil, mailer).ForgotPassword(context.Background(), &ForgotPasswordRequest{Email: "jane@example.com"})

	require.NoError(t, err)
	assert.Len(t, resp.Token, resetTokenLength)
	repo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domainUser.ErrUserNotFound)

	_, err := newTestService(repo, nil, new(MockMailer)).ForgotPassword(context.Background(), &ForgotPasswordRequest{Email: "ghost@example.com"})

	requireAppError(t, err, appErrors.CodeValidation, MsgIncorrectEmail)
}

func TestForgotPasswordRejectsAdmins(t *testing.T) {
	repo, mailer := new(MockUserRepository), new(MockMailer)
	admin := &domainUser.User{UUID: uuid.New(), Email: "admin@buckhill.co.uk", Role: domainUser.RoleAdmin}
	repo.On("GetByEmail", mock.Anything, "admin@buckhill.co.uk").Return(admin, nil)

	resp, err := newTestService(repo, nil, mailer).ForgotPassword(context.Background(), &ForgotPasswordRequest{Email: "admin@buckhill.co.uk"})

	assert.Nil(t, resp)
	requireAppError(t, err, appErrors.CodeValidation, MsgIncorrectEmail)
	repo.AssertNotCalled(t, "UpsertPasswordResetToken", mock.Anything, mock.Anything)
	mailer.AssertNotCalled(t, "SendPasswordReset", mock.Anything, mock.Anything, mock.Anything)
}

func TestForgotPasswordMailsTokenWhenSMTPConfigured(t *testing.T) {
	repo, mailer := new(MockUserRepository), new(MockMailer)
	u := &domainUser.User{UUID: uuid.New(), Email: "jane@example.com", Role: domainUser.RoleCustomer}

	repo.On("GetByEmail", mock.Anything, "jane@example.com").Return(u, nil)
	repo.On("UpsertPasswordResetToken", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendPasswordReset", mock.Anything, "jane@example.com", mock.MatchedBy(func(tok string) bool {
		return len(tok) == resetTokenLength
	})).Return(nil)

	svc := newTestService(repo, nil, mailer)
	svc.config.SMTP = config.SMTPConfig{Host: "smtp.example.com", Port: 587, From: "shop@example.com"}

	resp, err := svc.ForgotPassword(context.Background(), &ForgotPasswordRequest{Email: "jane@example.com"})

	require.NoError(t, err)
	assert.Empty(t, resp.Token)
	mailer.AssertExpectations(t)
}

func TestResetPasswordRejectsAdmins(t *testing.T) {
	repo := new(MockUserRepository)
	admin := &domainUser.User{UUID: uuid.New(), Email: "admin@buckhill.co.uk", Role: domainUser.RoleAdmin}
	tok := &domainUser.PasswordResetToken{Email: "admin@buckhill.co.uk", Token: "tok", CreatedAt: fixedNow}

	repo.On("GetPasswordResetToken", mock.Anything, "admin@buckhill.co.uk", "tok").Return(tok, nil)
	repo.On("GetByEmail", mock.Anything, "admin@buckhill.co.uk").Return(admin, nil)

	err := newTestService(repo, nil, nil).ResetPassword(context.Background(), &ResetPasswordRequest{
		Email: "admin@buckhill.co.uk", Token: "tok", Password: "takeover123", PasswordConfirmation: "takeover123",
	})

	requireAppError(t, err, appErrors.CodeValidation, MsgIncorrectEmail)
	repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestResetPasswordConsumesToken(t *testing.T) {
	repo := new(MockUserRepository)
	u := &domainUser.User{UUID: uuid.New(), Email: "jane@example.com", Role: domainUser.RoleCustomer}
	tok := &domainUser.PasswordResetToken{Email: "jane@example.com", Token: "tok", CreatedAt: fixedNow.Add(-10 * time.Minute)}

	repo.On("GetPasswordResetToken", mock.Anything, "jane@example.com", "tok").Return(tok, nil).Once()
	repo.On("GetByEmail", mock.Anything, "jane@example.com").Return(u, nil)
	repo.On("UpdatePassword", mock.Anything, u.UUID, mock.MatchedBy(func(h string) bool {
		return utils.CheckPassword(h, "newpass123")
	})).Return(nil)
	repo.On("DeletePasswordResetToken", mock.Anything, "jane@example.com").Return(nil)

	svc := newTestService(repo, nil, nil)
	req := &ResetPasswordRequest{Email: "jane@example.com", Token: "tok", Password: "newpass123", PasswordConfirmation: "newpass123"}

	require.NoError(t, svc.ResetPassword(context.Background(), req))

	// Second use finds nothing.
	repo.On("GetPasswordResetToken", mock.Anything, "jane@example.com", "tok").Return(nil, domainUser.ErrResetTokenNotFound)
	err := svc.ResetPassword(context.Background(), req)
	requireAppError(t, err, appErrors.CodeValidation, MsgInvalidResetToken)
	repo.AssertNumberOfCalls(t, "UpdatePassword", 1)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	repo := new(MockUserRepository)
	tok := &domainUser.PasswordResetToken{Email: "jane@example.com", Token: "tok", CreatedAt: fixedNow.Add(-2 * time.Hour)}

	repo.On("GetPasswordResetToken", mock.Anything, "jane@example.com", "tok").Return(tok, nil)
	repo.On("DeletePasswordResetToken", mock.Anything, "jane@example.com").Return(nil)

	err := newTestService(repo, nil, nil).ResetPassword(context.Background(), &ResetPasswordRequest{
		Email: "jane@example.com", Token: "tok", Password: "newpass123", PasswordConfirmation: "newpass123",
	})

	requireAppError(t, err, appErrors.CodeValidation, MsgInvalidResetToken)
	repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestResetPasswordConfirmationMismatch(t *testing.T) {
	err := newTestService(new(MockUserRepository), nil, nil).ResetPassword(context.Background(), &ResetPasswordRequest{
		Email: "jane@example.com", Token: "tok", Password: "newpass123", PasswordConfirmation: "different1",
	})

	appErr := requireAppError(t, err, appErrors.CodeValidation, "")
	assert.Contains(t, appErr.Fields, "password_confirmation")
}

func TestListCustomersForcesCustomerRole(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("List", mock.Anything, mock.MatchedBy(func(f domainUser.Filter) bool {
		return f.Role == domainUser.RoleCustomer && f.Page == 1 && f.Limit == 10 && f.Email == "example"
	})).Return([]*domainUser.User{{UUID: uuid.New(), Role: domainUser.RoleCustomer}}, int64(1), nil)

	resp, err := newTestService(repo, nil, nil).ListCustomers(context.Background(), &ListUsersRequest{Email: "example"})

	require.NoError(t, err)
	assert.Len(t, resp.Users, 1)
	assert.Equal(t, int64(1), resp.Total)
}
