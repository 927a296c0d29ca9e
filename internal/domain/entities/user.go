package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost matches the 12 rounds the existing hashes were generated with.
const BcryptCost = 12

type User struct {
	Id                 uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
	FirstName          string
	LastName           string
	Email              string
	Password           string // bcrypt hash; empty for social-only accounts
	EmailVerified      bool
	ResetToken         string
	ResetTokenExpiry   time.Time
	ProfilePicture     string
	StripeCustomerID   string
	Country            string
	Profession         string
	Industry           string
	CompanyName        string
	IsUpgradedPlan     bool
	FavouriteTemplates []string
}

func NewUser(firstName, lastName, email, password string) *User {
	now := time.Now()
	return &User{
		Id:                 uuid.New(),
		CreatedAt:          now,
		UpdatedAt:          now,
		FirstName:          firstName,
		LastName:           lastName,
		Email:              NormalizeEmail(email),
		Password:           password,
		EmailVerified:      false,
		FavouriteTemplates: make([]string, 0),
	}
}

// NewSocialUser builds a user from an externally-asserted identity. The
// verified flag is trusted as given; this service performs no independent
// verification of it. The full name is split on the first space only, so a
// single-word name leaves LastName empty and anything after the first space
// ends up in LastName as-is.
func NewSocialUser(fullName, email string, emailVerified bool, profilePicture string) *User {
	firstName, lastName := SplitFullName(fullName)
	user := NewUser(firstName, lastName, email, "")
	user.EmailVerified = emailVerified
	user.ProfilePicture = profilePicture
	return user
}

func SplitFullName(fullName string) (firstName, lastName string) {
	firstName, lastName, _ = strings.Cut(fullName, " ")
	return firstName, lastName
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) validate() error {
	if u.FirstName == "" {
		return errors.New("first name must not be empty")
	}
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return errors.New("created_at must be before updated_at")
	}
	if (u.ResetToken == "") != u.ResetTokenExpiry.IsZero() {
		return errors.New("reset token and expiry must be set together")
	}
	return nil
}

// HashPassword derives a bcrypt hash from a plaintext password.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// HashPassword replaces the plaintext currently held in Password with its
// bcrypt hash.
func (u *User) HashPassword() error {
	hashed, err := HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return nil
}

// CheckPassword reports whether the plaintext matches the stored hash. A
// social-only account with no stored hash never matches.
func (u *User) CheckPassword(password string) error {
	if u.Password == "" {
		return bcrypt.ErrMismatchedHashAndPassword
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

// HasPassword reports whether the account can authenticate with a password
// at all, as opposed to relying entirely on its social identity.
func (u *User) HasPassword() bool {
	return u.Password != ""
}

// HasValidResetTicket reports whether the stored reset ticket is usable at
// the given instant. An expired ticket stays stored but is inert.
func (u *User) HasValidResetTicket(now time.Time) bool {
	return u.ResetToken != "" && now.Before(u.ResetTokenExpiry)
}

// IssueResetTicket stores a fresh reset ticket, replacing any previous one.
func (u *User) IssueResetTicket(token string, expiry time.Time) {
	u.ResetToken = token
	u.ResetTokenExpiry = expiry
	u.UpdatedAt = time.Now()
}

// ConsumeResetTicket replaces the password hash and clears the ticket so it
// cannot be used a second time.
func (u *User) ConsumeResetTicket(hashedPassword string) {
	u.Password = hashedPassword
	u.ResetToken = ""
	u.ResetTokenExpiry = time.Time{}
	u.UpdatedAt = time.Now()
}

func (u *User) MarkAsVerified() {
	u.EmailVerified = true
	u.UpdatedAt = time.Now()
}
