package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pet-shop-api/internal/domain/user"
	"pet-shop-api/internal/infrastructure/database/postgres/models"
	"pet-shop-api/pkg/pagination"
)

var userSortable = map[string]string{
	"first_name": "first_name",
	"last_name":  "last_name",
	"email":      "email",
	"created_at": "created_at",
	"last_login": "last_login_at",
}

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if u.UUID == uuid.Nil {
		u.UUID = uuid.New()
	}

	dbModel := toUserModel(u)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	u.ID = dbModel.ID
	u.CreatedAt = dbModel.CreatedAt
	u.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserRepository) GetByUUID(ctx context.Context, userUUID uuid.UUID) (*user.User, error) {
	return r.first(ctx, "uuid = ?", userUUID)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *UserRepository) first(ctx context.Context, query string, args ...interface{}) (*user.User, error) {
	var dbModel models.UserModel
	err := r.db.DB.WithContext(ctx).Where(query, args...).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUserEntity(&dbModel), nil
}

func (r *UserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
	query := r.db.DB.WithContext(ctx).Model(&models.UserModel{})

	switch filter.Role {
	case user.RoleAdmin:
		query = query.Where("is_admin = ?", true)
	case user.RoleCustomer:
		query = query.Where("is_admin = ?", false)
	}
	if filter.FirstName != "" {
		query = query.Where("first_name ILIKE ?", likePattern(filter.FirstName))
	}
	if filter.LastName != "" {
		query = query.Where("last_name ILIKE ?", likePattern(filter.LastName))
	}
	if filter.Email != "" {
		query = query.Where("email ILIKE ?", likePattern(filter.Email))
	}
	if filter.PhoneNumber != "" {
		query = query.Where("phone_number ILIKE ?", likePattern(filter.PhoneNumber))
	}
	if filter.Address != "" {
		query = query.Where("address ILIKE ?", likePattern(filter.Address))
	}
	if filter.IsMarketing != nil {
		query = query.Where("is_marketing = ?", *filter.IsMarketing)
	}

	params := pagination.Params{Page: filter.Page, Limit: filter.Limit, SortBy: filter.SortBy, Desc: filter.Desc}
	paged, total, err := page(query, params, userSortable, "created_at desc")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var dbModels []models.UserModel
	if err := paged.Find(&dbModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, len(dbModels))
	for i := range dbModels {
		users[i] = toUserEntity(&dbModels[i])
	}

	return users, total, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	result := r.db.DB.WithContext(ctx).Model(&models.UserModel{}).
		Where("uuid = ?", u.UUID).
		Updates(map[string]interface{}{
			"first_name":   u.FirstName,
			"last_name":    u.LastName,
			"email":        u.Email,
			"password":     u.PasswordHashed,
			"avatar":       u.Avatar,
			"address":      u.Address,
			"phone_number": u.PhoneNumber,
			"is_marketing": u.IsMarketing,
			"updated_at":   time.Now().UTC(),
		})

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return user.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userUUID uuid.UUID, passwordHash string) error {
	result := r.db.DB.WithContext(ctx).Model(&models.UserModel{}).
		Where("uuid = ?", userUUID).
		Updates(map[string]interface{}{
			"password":   passwordHash,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, userUUID uuid.UUID, at time.Time) error {
	err := r.db.DB.WithContext(ctx).Model(&models.UserModel{}).
		Where("uuid = ?", userUUID).
		UpdateColumn("last_login_at", at).Error
	if err != nil {
		return fmt.Errorf("failed to record login: %w", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, userUUID uuid.UUID) error {
	result := r.db.DB.WithContext(ctx).Delete(&models.UserModel{}, "uuid = ?", userUUID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) UpsertPasswordResetToken(ctx context.Context, token *user.PasswordResetToken) error {
	dbModel := &models.PasswordResetTokenModel{
		Email:     token.Email,
		Token:     token.Token,
		CreatedAt: token.CreatedAt,
	}

	err := r.db.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "created_at"}),
	}).Create(dbModel).Error
	if err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	return nil
}

func (r *UserRepository) GetPasswordResetToken(ctx context.Context, email, token string) (*user.PasswordResetToken, error) {
	var dbModel models.PasswordResetTokenModel
	err := r.db.DB.WithContext(ctx).
		Where("email = ? AND token = ?", email, token).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, user.ErrResetTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reset token: %w", err)
	}

	return &user.PasswordResetToken{
		Email:     dbModel.Email,
		Token:     dbModel.Token,
		CreatedAt: dbModel.CreatedAt,
	}, nil
}

func (r *UserRepository) DeletePasswordResetToken(ctx context.Context, email string) error {
	err := r.db.DB.WithContext(ctx).Delete(&models.PasswordResetTokenModel{}, "email = ?", email).Error
	if err != nil {
		return fmt.Errorf("failed to delete reset token: %w", err)
	}
	return nil
}

func toUserModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:          u.ID,
		UUID:        u.UUID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		IsAdmin:     u.Role == user.RoleAdmin,
		Email:       u.Email,
		Password:    u.PasswordHashed,
		Avatar:      u.Avatar,
		Address:     u.Address,
		PhoneNumber: u.PhoneNumber,
		IsMarketing: u.IsMarketing,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func toUserEntity(m *models.UserModel) *user.User {
	role := user.RoleCustomer
	if m.IsAdmin {
		role = user.RoleAdmin
	}

	return &user.User{
		ID:             m.ID,
		UUID:           m.UUID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Email:          m.Email,
		PasswordHashed: m.Password,
		Role:           role,
		Avatar:         m.Avatar,
		Address:        m.Address,
		PhoneNumber:    m.PhoneNumber,
		IsMarketing:    m.IsMarketing,
		LastLoginAt:    m.LastLoginAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
