package mapper

import (
	"github.com/tunecraft/auth-service/internal/application/common"
	"github.com/tunecraft/auth-service/internal/domain/entities"
)

func NewUserResultFromEntity(user *entities.User) *common.UserResult {
	return &common.UserResult{
		Id:                 user.Id,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
		FirstName:          user.FirstName,
		LastName:           user.LastName,
		Email:              user.Email,
		EmailVerified:      user.EmailVerified,
		ProfilePicture:     user.ProfilePicture,
		Country:            user.Country,
		Profession:         user.Profession,
		Industry:           user.Industry,
		CompanyName:        user.CompanyName,
		IsUpgradedPlan:     user.IsUpgradedPlan,
		FavouriteTemplates: user.FavouriteTemplates,
	}
}
