// Package autherrors defines the error taxonomy for the credential
// lifecycle. Every failure an operation can produce is a tagged *Error
// carrying its kind and the HTTP status the delivery layer should use;
// anything else bubbling up is treated as unexpected and reported
// generically, without internal detail.
package autherrors

import "net/http"

type Kind string

const (
	KindValidation            Kind = "validation_failed"
	KindDuplicateEmail        Kind = "duplicate_email"
	KindUserNotFound          Kind = "user_not_found"
	KindInvalidCredentials    Kind = "invalid_credentials"
	KindInvalidOrExpiredToken Kind = "invalid_or_expired_token"
	KindUnexpected            Kind = "unexpected"
)

// FieldError describes a single invalid request field, mirroring the shape
// returned to clients in the validation failure envelope.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Kind    Kind
	Status  int
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(fields []FieldError) *Error {
	return &Error{
		Kind:    KindValidation,
		Status:  http.StatusUnprocessableEntity,
		Message: "Validation failed entered data is incorrect.",
		Fields:  fields,
	}
}

func DuplicateEmail() *Error {
	return &Error{
		Kind:    KindDuplicateEmail,
		Status:  http.StatusUnprocessableEntity,
		Message: "User already exists. Please try again with other email address.",
	}
}

// UserNotFound takes the status because login paths answer 401 while
// forgot-password answers 422.
func UserNotFound(status int, message string) *Error {
	return &Error{
		Kind:    KindUserNotFound,
		Status:  status,
		Message: message,
	}
}

func InvalidCredentials() *Error {
	return &Error{
		Kind:    KindInvalidCredentials,
		Status:  http.StatusUnauthorized,
		Message: "Wrong password. Please try again with the correct password.",
	}
}

func InvalidOrExpiredToken() *Error {
	return &Error{
		Kind:    KindInvalidOrExpiredToken,
		Status:  http.StatusUnprocessableEntity,
		Message: "Reset token is invalid or has expired.",
	}
}

func Unexpected() *Error {
	return &Error{
		Kind:    KindUnexpected,
		Status:  http.StatusInternalServerError,
		Message: "Something went wrong. Please try again later.",
	}
}
