package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tunecraft/auth-service/internal/domain/entities"
	"github.com/tunecraft/auth-service/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userModel := mapToModel(user.GetUser())

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		// The unique index on email is the real uniqueness guarantee; the
		// caller's pre-check only covers the common case.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, repositories.ErrDuplicateEmail
		}
		return nil, err
	}

	return r.FindById(ctx, userModel.Id)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	userModel := mapToModel(user.GetUser())

	if err := r.db.WithContext(ctx).Save(&userModel).Error; err != nil {
		return nil, err
	}

	return r.FindById(ctx, userModel.Id)
}

func (r *UserRepository) FindById(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByResetToken(ctx context.Context, token string, now time.Time) (*entities.User, error) {
	if token == "" {
		return nil, nil
	}

	var userModel UserModel
	err := r.db.WithContext(ctx).
		Where("reset_token = ? AND reset_token_expiry > ?", token, now).
		First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapToEntity(&userModel), nil
}

func mapToModel(user *entities.User) UserModel {
	var expiry *time.Time
	if !user.ResetTokenExpiry.IsZero() {
		t := user.ResetTokenExpiry
		expiry = &t
	}

	return UserModel{
		Id:                 user.Id,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		Email:              user.Email,
		Password:           user.Password,
		EmailVerified:      user.EmailVerified,
		ResetToken:         user.ResetToken,
		ResetTokenExpiry:   expiry,
		ProfilePicture:     user.ProfilePicture,
		StripeCustomerID:   user.StripeCustomerID,
		Country:            user.Country,
		Profession:         user.Profession,
		Industry:           user.Industry,
		CompanyName:        user.CompanyName,
		IsUpgradedPlan:     user.IsUpgradedPlan,
		FavouriteTemplates: user.FavouriteTemplates,
	}
}

func mapToEntity(userModel *UserModel) *entities.User {
	var expiry time.Time
	if userModel.ResetTokenExpiry != nil {
		expiry = *userModel.ResetTokenExpiry
	}

	return &entities.User{
		Id:                 userModel.Id,
		CreatedAt:          userModel.CreatedAt,
		UpdatedAt:          userModel.UpdatedAt,
		FirstName:          userModel.FirstName,
		LastName:           userModel.LastName,
		Email:              userModel.Email,
		Password:           userModel.Password,
		EmailVerified:      userModel.EmailVerified,
		ResetToken:         userModel.ResetToken,
		ResetTokenExpiry:   expiry,
		ProfilePicture:     userModel.ProfilePicture,
		StripeCustomerID:   userModel.StripeCustomerID,
		Country:            userModel.Country,
		Profession:         userModel.Profession,
		Industry:           userModel.Industry,
		CompanyName:        userModel.CompanyName,
		IsUpgradedPlan:     userModel.IsUpgradedPlan,
		FavouriteTemplates: userModel.FavouriteTemplates,
	}
}
