package interfaces

import (
	"context"

	"github.com/tunecraft/auth-service/internal/application/command"
)

// AuthService owns every transition of a user's authentication state.
type AuthService interface {
	Register(ctx context.Context, cmd *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error)
	SocialAuth(ctx context.Context, cmd *command.SocialAuthCommand) (*command.SocialAuthCommandResult, error)
	Login(ctx context.Context, cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error)
	ForgotPassword(ctx context.Context, cmd *command.ForgotPasswordCommand) (*command.ForgotPasswordCommandResult, error)
	ResetPassword(ctx context.Context, cmd *command.ResetPasswordCommand) (*command.ResetPasswordCommandResult, error)
	Logout(ctx context.Context, cmd *command.LogoutUserCommand) (*command.LogoutUserCommandResult, error)
}
