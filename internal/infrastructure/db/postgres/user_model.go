package postgres

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	Id                 uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	FirstName          string `gorm:"not null"`
	LastName           string
	Email              string `gorm:"uniqueIndex;not null"`
	Password           string // empty for social-only accounts
	EmailVerified      bool   `gorm:"default:false"`
	ResetToken         string `gorm:"index"`
	ResetTokenExpiry   *time.Time
	ProfilePicture     string
	StripeCustomerID   string
	Country            string
	Profession         string
	Industry           string
	CompanyName        string
	IsUpgradedPlan     bool     `gorm:"default:false"`
	FavouriteTemplates []string `gorm:"serializer:json"`
}

func (UserModel) TableName() string {
	return "users"
}
