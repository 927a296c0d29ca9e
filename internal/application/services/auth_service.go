package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tunecraft/auth-service/internal/application/command"
	"github.com/tunecraft/auth-service/internal/application/interfaces"
	"github.com/tunecraft/auth-service/internal/application/mapper"
	"github.com/tunecraft/auth-service/internal/domain/autherrors"
	"github.com/tunecraft/auth-service/internal/domain/entities"
	"github.com/tunecraft/auth-service/internal/domain/repositories"
)

// Options carries the policy knobs the credential manager needs at
// construction, instead of reading process-wide environment state.
type Options struct {
	// SessionTokenTTL bounds how long an issued session token is accepted.
	SessionTokenTTL time.Duration
	// ResetTokenTTL bounds how long an issued reset ticket stays usable.
	ResetTokenTTL time.Duration
	// AppBaseURL is the public origin embedded in reset links.
	AppBaseURL string
	// NotifyTimeout bounds the background mail dispatch.
	NotifyTimeout time.Duration
}

type AuthService struct {
	userRepo    repositories.UserRepository
	tokenIssuer interfaces.TokenIssuer
	notifier    interfaces.Notifier
	resetTokens interfaces.ResetTokenGenerator
	tokenCache  interfaces.TokenCache
	opts        Options

	now func() time.Time
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokenIssuer interfaces.TokenIssuer,
	notifier interfaces.Notifier,
	resetTokens interfaces.ResetTokenGenerator,
	tokenCache interfaces.TokenCache,
	opts Options,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		tokenIssuer: tokenIssuer,
		notifier:    notifier,
		resetTokens: resetTokens,
		tokenCache:  tokenCache,
		opts:        opts,
		now:         time.Now,
	}
}

// Register creates a password-backed account. The email must be unseen; the
// store's uniqueness constraint backs up the pre-check for concurrent
// registrations.
func (s *AuthService) Register(ctx context.Context, cmd *command.RegisterUserCommand) (*command.RegisterUserCommandResult, error) {
	existing, err := s.userRepo.FindByEmail(ctx, entities.NormalizeEmail(cmd.Email))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherrors.DuplicateEmail()
	}

	user := entities.NewUser(cmd.FirstName, cmd.LastName, cmd.Email, cmd.Password)
	if err := user.HashPassword(); err != nil {
		return nil, err
	}

	validated, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, err
	}

	created, err := s.userRepo.Create(ctx, validated)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, autherrors.DuplicateEmail()
		}
		return nil, err
	}

	return &command.RegisterUserCommandResult{
		User: mapper.NewUserResultFromEntity(created),
	}, nil
}

// SocialAuth backs both the social register and social login routes. A known
// email is a login; an unseen one provisions a passwordless account carrying
// the caller's emailVerified assertion. The assertion is a trust boundary:
// nothing here verifies it independently.
func (s *AuthService) SocialAuth(ctx context.Context, cmd *command.SocialAuthCommand) (*command.SocialAuthCommandResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, entities.NormalizeEmail(cmd.Email))
	if err != nil {
		return nil, err
	}

	created := false
	if user == nil {
		newUser := entities.NewSocialUser(cmd.FullName, cmd.Email, cmd.EmailVerified, cmd.ProfilePicture)
		validated, err := entities.NewValidatedUser(newUser)
		if err != nil {
			return nil, err
		}

		user, err = s.userRepo.Create(ctx, validated)
		if err == nil {
			created = true
		} else if errors.Is(err, repositories.ErrDuplicateEmail) {
			// Lost a registration race; the account exists now, so this
			// call degrades to a login like any other repeat.
			user, err = s.userRepo.FindByEmail(ctx, entities.NormalizeEmail(cmd.Email))
			if err != nil {
				return nil, err
			}
			if user == nil {
				return nil, autherrors.Unexpected()
			}
		} else {
			return nil, err
		}
	}

	token, err := s.tokenIssuer.Issue(user.Id, user.Email)
	if err != nil {
		return nil, err
	}
	s.cacheTokenAsync(token, user.Id)

	return &command.SocialAuthCommandResult{
		Token:   token,
		User:    mapper.NewUserResultFromEntity(user),
		Created: created,
	}, nil
}

// Login verifies a password credential and issues a session token. A social
// only account with no stored hash fails the same way a wrong password does.
func (s *AuthService) Login(ctx context.Context, cmd *command.LoginUserCommand) (*command.LoginUserCommandResult, error) {
	email := entities.NormalizeEmail(cmd.Email)
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherrors.UserNotFound(http.StatusUnauthorized,
			fmt.Sprintf("A user with %s could not be found.", email))
	}

	if err := user.CheckPassword(cmd.Password); err != nil {
		return nil, autherrors.InvalidCredentials()
	}

	token, err := s.tokenIssuer.Issue(user.Id, user.Email)
	if err != nil {
		return nil, err
	}
	s.cacheTokenAsync(token, user.Id)

	return &command.LoginUserCommandResult{
		Token: token,
		User:  mapper.NewUserResultFromEntity(user),
	}, nil
}

// ForgotPassword issues a reset ticket and mails a reset link. The request
// succeeds once the ticket is persisted; mail delivery is best-effort and
// runs off the request path.
func (s *AuthService) ForgotPassword(ctx context.Context, cmd *command.ForgotPasswordCommand) (*command.ForgotPasswordCommandResult, error) {
	email := entities.NormalizeEmail(cmd.Email)
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherrors.UserNotFound(http.StatusUnprocessableEntity,
			fmt.Sprintf("A user with %s could not be found.", email))
	}

	token, err := s.resetTokens.Generate()
	if err != nil {
		return nil, err
	}

	user.IssueResetTicket(token, s.now().Add(s.opts.ResetTokenTTL))
	validated, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.Update(ctx, validated); err != nil {
		return nil, err
	}

	s.sendResetLinkAsync(user.Email, token)

	return &command.ForgotPasswordCommandResult{
		Message: "A password reset link has been sent to your email address.",
	}, nil
}

// ResetPassword consumes a reset ticket: the new password replaces the
// stored hash and the ticket is cleared so it cannot be replayed. Expired
// and unknown tokens are deliberately indistinguishable to the caller.
func (s *AuthService) ResetPassword(ctx context.Context, cmd *command.ResetPasswordCommand) (*command.ResetPasswordCommandResult, error) {
	user, err := s.userRepo.FindByResetToken(ctx, cmd.Token, s.now())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherrors.InvalidOrExpiredToken()
	}

	hashed, err := entities.HashPassword(cmd.Password)
	if err != nil {
		return nil, err
	}
	user.ConsumeResetTicket(hashed)

	validated, err := entities.NewValidatedUser(user)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.Update(ctx, validated); err != nil {
		return nil, err
	}

	return &command.ResetPasswordCommandResult{
		Message: "Password successfully updated.",
	}, nil
}

// Logout confirms the user exists and reports success with no token. No
// server-side invalidation happens: tokens stay valid until they expire, so
// actual session termination is the client discarding its copy. Known
// limitation, kept deliberately.
func (s *AuthService) Logout(ctx context.Context, cmd *command.LogoutUserCommand) (*command.LogoutUserCommandResult, error) {
	id, err := uuid.Parse(cmd.UserId)
	if err != nil {
		return nil, autherrors.UserNotFound(http.StatusUnauthorized,
			"A user with this id could not be found.")
	}

	user, err := s.userRepo.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherrors.UserNotFound(http.StatusUnauthorized,
			"A user with this id could not be found.")
	}

	return &command.LogoutUserCommandResult{
		Message: "User successfully logged out.",
	}, nil
}

func (s *AuthService) cacheTokenAsync(token string, userID uuid.UUID) {
	if s.tokenCache == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.tokenCache.CacheToken(ctx, token, userID.String(), s.opts.SessionTokenTTL); err != nil {
			log.Printf("Failed to cache session token: %v", err)
		}
	}()
}

func (s *AuthService) sendResetLinkAsync(email, token string) {
	link := fmt.Sprintf("%s/v1/reset-password/%s", s.opts.AppBaseURL, token)
	body := fmt.Sprintf("You requested a password reset.\n\nFollow this link to choose a new password: %s\n\nThe link expires in %s. If you did not request this, you can ignore this email.",
		link, s.opts.ResetTokenTTL)

	timeout := s.opts.NotifyTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := s.notifier.Send(ctx, email, "Reset your password", body); err != nil {
			log.Printf("Failed to send password reset email to %s: %v", email, err)
		}
	}()
}
