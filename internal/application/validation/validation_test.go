package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tunecraft/auth-service/internal/application/command"
	"github.com/tunecraft/auth-service/internal/domain/autherrors"
)

func fieldsOf(errs []autherrors.FieldError) []string {
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name       string
		cmd        command.RegisterUserCommand
		wantFields []string
	}{
		{
			name: "valid",
			cmd:  command.RegisterUserCommand{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "secret123"},
		},
		{
			name:       "all empty",
			cmd:        command.RegisterUserCommand{},
			wantFields: []string{"firstName", "lastName", "email", "password"},
		},
		{
			name:       "blank names",
			cmd:        command.RegisterUserCommand{FirstName: "   ", LastName: "\t", Email: "ada@example.com", Password: "secret123"},
			wantFields: []string{"firstName", "lastName"},
		},
		{
			name:       "bad email",
			cmd:        command.RegisterUserCommand{FirstName: "Ada", LastName: "Lovelace", Email: "not-an-email", Password: "secret123"},
			wantFields: []string{"email"},
		},
		{
			name:       "short password",
			cmd:        command.RegisterUserCommand{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "ab1"},
			wantFields: []string{"password"},
		},
		{
			name:       "non alphanumeric password",
			cmd:        command.RegisterUserCommand{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "secret-123!"},
			wantFields: []string{"password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateRegister(&tt.cmd)
			if len(tt.wantFields) == 0 {
				assert.Empty(t, errs)
				return
			}
			assert.ElementsMatch(t, tt.wantFields, fieldsOf(errs))
		})
	}
}

func TestValidateLogin(t *testing.T) {
	errs := ValidateLogin(&command.LoginUserCommand{Email: "ada@example.com", Password: "secret123"})
	assert.Empty(t, errs)

	errs = ValidateLogin(&command.LoginUserCommand{Email: "nope", Password: ""})
	assert.ElementsMatch(t, []string{"email", "password"}, fieldsOf(errs))
}

func TestValidateSocialAuth(t *testing.T) {
	errs := ValidateSocialAuth(&command.SocialAuthCommand{FullName: "Ada Lovelace", Email: "ada@example.com"})
	assert.Empty(t, errs)

	errs = ValidateSocialAuth(&command.SocialAuthCommand{FullName: " ", Email: "bad"})
	assert.ElementsMatch(t, []string{"fullName", "email"}, fieldsOf(errs))
}

func TestValidateForgotPassword(t *testing.T) {
	assert.Empty(t, ValidateForgotPassword(&command.ForgotPasswordCommand{Email: "ada@example.com"}))
	assert.NotEmpty(t, ValidateForgotPassword(&command.ForgotPasswordCommand{Email: "bad"}))
}

func TestValidateResetPassword(t *testing.T) {
	errs := ValidateResetPassword(&command.ResetPasswordCommand{Token: "tok", Password: "secret123"})
	assert.Empty(t, errs)

	errs = ValidateResetPassword(&command.ResetPasswordCommand{Token: "", Password: "bad"})
	assert.ElementsMatch(t, []string{"tokenId", "password"}, fieldsOf(errs))
}

func TestValidateLogout(t *testing.T) {
	assert.Empty(t, ValidateLogout(&command.LogoutUserCommand{UserId: "abc"}))
	assert.NotEmpty(t, ValidateLogout(&command.LogoutUserCommand{UserId: "  "}))
}

func TestPasswordShortAndSymbolReportsBoth(t *testing.T) {
	errs := ValidateLogin(&command.LoginUserCommand{Email: "ada@example.com", Password: "a!"})
	assert.Len(t, errs, 2)
}
