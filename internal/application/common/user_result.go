package common

import (
	"time"

	"github.com/google/uuid"
)

// UserResult is the response-safe projection of a user record. The password
// hash and the reset ticket never cross this boundary.
type UserResult struct {
	Id                 uuid.UUID `json:"id"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	Email              string    `json:"email"`
	EmailVerified      bool      `json:"emailVerified"`
	ProfilePicture     string    `json:"profilePicture,omitempty"`
	Country            string    `json:"country,omitempty"`
	Profession         string    `json:"profession,omitempty"`
	Industry           string    `json:"industry,omitempty"`
	CompanyName        string    `json:"companyName,omitempty"`
	IsUpgradedPlan     bool      `json:"isUpgradedPlan"`
	FavouriteTemplates []string  `json:"favouriteTemplates"`
}
