// Package validation checks request fields before they reach the credential
// manager. Each Validate function is pure: it inspects a command and returns
// the list of field errors, or nil when the input is acceptable.
package validation

import (
	"regexp"
	"strings"

	"github.com/tunecraft/auth-service/internal/application/command"
	"github.com/tunecraft/auth-service/internal/domain/autherrors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type violations []autherrors.FieldError

func (v *violations) add(field, message string) {
	*v = append(*v, autherrors.FieldError{Field: field, Message: message})
}

func (v *violations) required(field, value, message string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, message)
	}
}

func (v *violations) email(field, value string) {
	if !emailPattern.MatchString(strings.TrimSpace(value)) {
		v.add(field, "Invalid email address.")
	}
}

func (v *violations) password(value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		v.add("password", "Password cannot be empty.")
		return
	}
	if !isAlphanumeric(trimmed) {
		v.add("password", "Password should be alpha-numeric.")
	}
	if len(trimmed) < 6 {
		v.add("password", "Password should be at least 6 characters long.")
	}
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

func ValidateRegister(cmd *command.RegisterUserCommand) []autherrors.FieldError {
	var v violations
	v.required("firstName", cmd.FirstName, "First name cannot be empty.")
	v.required("lastName", cmd.LastName, "Last name cannot be empty.")
	v.email("email", cmd.Email)
	v.password(cmd.Password)
	return v
}

func ValidateLogin(cmd *command.LoginUserCommand) []autherrors.FieldError {
	var v violations
	v.email("email", cmd.Email)
	v.password(cmd.Password)
	return v
}

func ValidateSocialAuth(cmd *command.SocialAuthCommand) []autherrors.FieldError {
	var v violations
	v.required("fullName", cmd.FullName, "Full name cannot be empty.")
	v.email("email", cmd.Email)
	return v
}

func ValidateForgotPassword(cmd *command.ForgotPasswordCommand) []autherrors.FieldError {
	var v violations
	v.email("email", cmd.Email)
	return v
}

func ValidateResetPassword(cmd *command.ResetPasswordCommand) []autherrors.FieldError {
	var v violations
	v.required("tokenId", cmd.Token, "Token id cannot be empty.")
	v.password(cmd.Password)
	return v
}

func ValidateLogout(cmd *command.LogoutUserCommand) []autherrors.FieldError {
	var v violations
	v.required("userId", cmd.UserId, "User ID cannot be empty.")
	return v
}
