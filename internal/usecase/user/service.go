package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pet-shop-api/internal/config"
	domainUser "pet-shop-api/internal/domain/user"
	"pet-shop-api/internal/infrastructure/mail"
	"pet-shop-api/internal/logger"
	appErrors "pet-shop-api/pkg/errors"
	"pet-shop-api/pkg/pagination"
	"pet-shop-api/pkg/utils"
)

const resetTokenLength = 128

const (
	MsgIncorrectEmail    = "Incorrect Email"
	MsgIncorrectPassword = "Incorrect Password"
	MsgInvalidResetToken = "Invalid or expired token"
)

// TokenIssuer signs access tokens for a user uuid.
type TokenIssuer interface {
	Issue(userUUID uuid.UUID) (string, error)
}

type Service struct {
	userRepo domainUser.Repository
	issuer   TokenIssuer
	mailer   mail.Mailer
	config   *config.Config
	now      func() time.Time
}

func NewService(
	userRepo domainUser.Repository,
	issuer TokenIssuer,
	mailer mail.Mailer,
	cfg *config.Config,
) *Service {
	return &Service{
		userRepo: userRepo,
		issuer:   issuer,
		mailer:   mailer,
		config:   cfg,
		now:      time.Now,
	}
}

// Login authenticates an account of the given role and returns a signed token.
// Accounts of the other role are reported as unknown emails.
func (s *Service) Login(ctx context.Context, req *LoginRequest, role domainUser.Role) (*LoginResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, appErrors.NewValidationError("Invalid input", fields)
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if u == nil || u.Role != role {
		logger.Warn("Login attempt with unknown email",
			zap.String("email", req.Email),
			zap.String("role", role.String()),
			zap.String("event", "login_failed_email"),
		)
		return nil, appErrors.NewValidationError(MsgIncorrectEmail, nil)
	}

	if !utils.CheckPassword(u.PasswordHashed, req.Password) {
		logger.Warn("Login attempt with wrong password",
			zap.String("user_uuid", u.UUID.String()),
			zap.String("event", "login_failed_password"),
		)
		return nil, appErrors.NewValidationError(MsgIncorrectPassword, nil)
	}

	token, err := s.issuer.Issue(u.UUID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if err := s.userRepo.TouchLastLogin(ctx, u.UUID, s.now().UTC()); err != nil {
		logger.Warn("Failed to record last login", zap.String("user_uuid", u.UUID.String()), zap.Error(err))
	}

	logger.Info("User logged in",
		zap.String("user_uuid", u.UUID.String()),
		zap.String("role", u.Role.String()),
		zap.String("event", "login_success"),
	)

	return &LoginResponse{Token: token}, nil
}

// Register creates an account with the given role. Admin accounts need an avatar.
func (s *Service) Register(ctx context.Context, req *CreateUserRequest, role domainUser.Role) (*UserResponse, error) {
	fields := utils.ValidateStruct(req)
	if role == domainUser.RoleAdmin && req.Avatar == nil {
		if fields == nil {
			fields = map[string]string{}
		}
		fields["avatar"] = "The avatar field is required."
	}
	if fields != nil {
		return nil, appErrors.NewValidationError("Invalid input", fields)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &domainUser.User{
		UUID:           uuid.New(),
		FirstName:      utils.SanitizeString(req.FirstName),
		LastName:       utils.SanitizeString(req.LastName),
		Email:          utils.SanitizeEmail(req.Email),
		PasswordHashed: hashedPassword,
		Role:           role,
		Avatar:         req.Avatar,
		Address:        utils.SanitizeString(req.Address),
		PhoneNumber:    utils.SanitizePhone(req.PhoneNumber),
		IsMarketing:    req.IsMarketing && role == domainUser.RoleCustomer,
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, domainUser.ErrUserAlreadyExists) {
			return nil, appErrors.NewValidationError("Invalid input", map[string]string{
				"email": "The email has already been taken.",
			})
		}
		return nil, err
	}

	logger.Info("User registered",
		zap.String("user_uuid", u.UUID.String()),
		zap.String("role", role.String()),
		zap.String("event", "user_registered"),
	)

	return ToUserResponse(u), nil
}

func (s *Service) GetProfile(ctx context.Context, userUUID uuid.UUID) (*UserResponse, error) {
	u, err := s.userRepo.GetByUUID(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userUUID uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, appErrors.NewValidationError("Invalid input", fields)
	}

	u, err := s.userRepo.GetByUUID(ctx, userUUID)
	if err != nil {
		return nil, err
	}

	u.FirstName = utils.SanitizeString(req.FirstName)
	u.LastName = utils.SanitizeString(req.LastName)
	u.Email = utils.SanitizeEmail(req.Email)
	u.Avatar = req.Avatar
	u.Address = utils.SanitizeString(req.Address)
	u.PhoneNumber = utils.SanitizePhone(req.PhoneNumber)
	u.IsMarketing = req.IsMarketing

	if req.Password != "" {
		hashedPassword, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		u.PasswordHashed = hashedPassword
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		if errors.Is(err, domainUser.ErrUserAlreadyExists) {
			return nil, appErrors.NewValidationError("Invalid input", map[string]string{
				"email": "The email has already been taken.",
			})
		}
		return nil, err
	}

	logger.Info("Profile updated",
		zap.String("user_uuid", u.UUID.String()),
		zap.Bool("password_changed", req.Password != ""),
		zap.String("event", "profile_updated"),
	)

	u.UpdatedAt = s.now().UTC()
	return ToUserResponse(u), nil
}

func (s *Service) DeleteAccount(ctx context.Context, userUUID uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, userUUID); err != nil {
		return err
	}

	logger.Info("User deleted",
		zap.String("user_uuid", userUUID.String()),
		zap.String("event", "user_deleted"),
	)
	return nil
}

// ListCustomers backs the admin user listing.
func (s *Service) ListCustomers(ctx context.Context, req *ListUsersRequest) (*UserListResponse, error) {
	params := pagination.Params{Page: req.Page, Limit: req.Limit}.Normalize()

	users, total, err := s.userRepo.List(ctx, domainUser.Filter{
		Role:        domainUser.RoleCustomer,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		IsMarketing: req.IsMarketing,
		Page:        params.Page,
		Limit:       params.Limit,
		SortBy:      req.SortBy,
		Desc:        req.Desc,
	})
	if err != nil {
		return nil, err
	}

	resp := &UserListResponse{
		Users: make([]*UserResponse, len(users)),
		Total: total,
		Page:  params.Page,
		Limit: params.Limit,
	}
	for i, u := range users {
		resp.Users[i] = ToUserResponse(u)
	}

	return resp, nil
}

// ForgotPassword stores a fresh reset token for the email, replacing any
// previous one, and returns it. It is also mailed when SMTP is configured.
func (s *Service) ForgotPassword(ctx context.Context, req *ForgotPasswordRequest) (*ForgotPasswordResponse, error) {
	if fields := utils.ValidateStruct(req); fields != nil {
		return nil, appErrors.NewValidationError("Invalid input", fields)
	}

	email := utils.SanitizeEmail(req.Email)
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	// admins cannot reset through the public endpoints
	if u == nil || u.Role != domainUser.RoleCustomer {
		logger.Warn("Password reset requested for unknown email",
			zap.String("email", email),
			zap.String("event", "password_reset_rejected"),
		)
		return nil, appErrors.NewValidationError(MsgIncorrectEmail, nil)
	}

	token, err := utils.RandomToken(resetTokenLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reset token: %w", err)
	}

	if err := s.userRepo.UpsertPasswordResetToken(ctx, &domainUser.PasswordResetToken{
		Email:     u.Email,
		Token:     token,
		CreatedAt: s.now().UTC(),
	}); err != nil {
		return nil, err
	}

	if err := s.mailer.SendPasswordReset(ctx, u.Email, token); err != nil {
		logger.Error("Failed to send password reset mail",
			zap.String("user_uuid", u.UUID.String()),
			zap.Error(err),
		)
	}

	logger.Info("Password reset requested",
		zap.String("user_uuid", u.UUID.String()),
		zap.String("event", "password_reset_requested"),
	)

	// the token only travels by mail once SMTP is configured
	if s.config.SMTP.Enabled() {
		return &ForgotPasswordResponse{}, nil
	}
	return &ForgotPasswordResponse{Token: token}, nil
}

// ResetPassword consumes the reset token; a token works once.
func (s *Service) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	if fields := utils.ValidateStruct(req); fields != nil {
		return appErrors.NewValidationError("Invalid input", fields)
	}

	email := utils.SanitizeEmail(req.Email)
	resetToken, err := s.userRepo.GetPasswordResetToken(ctx, email, req.Token)
	if errors.Is(err, domainUser.ErrResetTokenNotFound) {
		return appErrors.NewValidationError(MsgInvalidResetToken, nil)
	}
	if err != nil {
		return err
	}

	if resetToken.IsExpired(s.now(), s.config.Auth.ResetTokenTTL) {
		if err := s.userRepo.DeletePasswordResetToken(ctx, email); err != nil {
			logger.Warn("Failed to drop expired reset token", zap.Error(err))
		}
		return appErrors.NewValidationError(MsgInvalidResetToken, nil)
	}

	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domainUser.ErrUserNotFound) {
		return err
	}
	if u == nil || u.Role != domainUser.RoleCustomer {
		return appErrors.NewValidationError(MsgIncorrectEmail, nil)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, u.UUID, hashedPassword); err != nil {
		return err
	}
	if err := s.userRepo.DeletePasswordResetToken(ctx, email); err != nil {
		return err
	}

	logger.Info("Password reset completed",
		zap.String("user_uuid", u.UUID.String()),
		zap.String("event", "password_reset_success"),
	)

	return nil
}
