package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tunecraft/auth-service/internal/application/command"
	"github.com/tunecraft/auth-service/internal/application/interfaces"
	"github.com/tunecraft/auth-service/internal/application/validation"
	"github.com/tunecraft/auth-service/internal/domain/autherrors"
	"github.com/tunecraft/auth-service/internal/domain/entities"
	"github.com/tunecraft/auth-service/internal/infrastructure"
)

type Handler struct {
	auth         interfaces.AuthService
	resetLimiter *infrastructure.RateLimiter
}

func NewHandler(auth interfaces.AuthService, resetLimiter *infrastructure.RateLimiter) *Handler {
	return &Handler{
		auth:         auth,
		resetLimiter: resetLimiter,
	}
}

func bind(c echo.Context, cmd any) error {
	if err := c.Bind(cmd); err != nil {
		return autherrors.Validation([]autherrors.FieldError{
			{Field: "body", Message: "Malformed request body."},
		})
	}
	return nil
}

func (h *Handler) Register(c echo.Context) error {
	cmd := new(command.RegisterUserCommand)
	if err := bind(c, cmd); err != nil {
		return err
	}
	if fields := validation.ValidateRegister(cmd); len(fields) > 0 {
		return autherrors.Validation(fields)
	}

	result, err := h.auth.Register(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, Response{
		Success:    true,
		StatusCode: http.StatusCreated,
		Message:    "User successfully created.",
		Data:       result.User,
	})
}

// SocialAuth serves both /v1/register/social and /v1/login/social: the
// transition is the same, only the route name differs. A repeat call with a
// known email is a login, not an error.
func (h *Handler) SocialAuth(c echo.Context) error {
	cmd := new(command.SocialAuthCommand)
	if err := bind(c, cmd); err != nil {
		return err
	}
	if fields := validation.ValidateSocialAuth(cmd); len(fields) > 0 {
		return autherrors.Validation(fields)
	}

	result, err := h.auth.SocialAuth(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	status := http.StatusOK
	message := "User successfully logged in."
	if result.Created {
		status = http.StatusCreated
		message = "User successfully created."
	}

	return c.JSON(status, Response{
		Success:    true,
		StatusCode: status,
		Message:    message,
		Data:       result.User,
		Token:      result.Token,
	})
}

func (h *Handler) Login(c echo.Context) error {
	cmd := new(command.LoginUserCommand)
	if err := bind(c, cmd); err != nil {
		return err
	}
	if fields := validation.ValidateLogin(cmd); len(fields) > 0 {
		return autherrors.Validation(fields)
	}

	result, err := h.auth.Login(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    "User successfully logged in.",
		Data:       result.User,
		Token:      result.Token,
	})
}

func (h *Handler) ForgotPassword(c echo.Context) error {
	cmd := new(command.ForgotPasswordCommand)
	if err := bind(c, cmd); err != nil {
		return err
	}
	if fields := validation.ValidateForgotPassword(cmd); len(fields) > 0 {
		return autherrors.Validation(fields)
	}

	if h.resetLimiter != nil && !h.resetLimiter.Allow(entities.NormalizeEmail(cmd.Email)) {
		return echo.NewHTTPError(http.StatusTooManyRequests,
			"Too many password reset requests. Please try again later.")
	}

	result, err := h.auth.ForgotPassword(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    result.Message,
	})
}

func (h *Handler) ResetPassword(c echo.Context) error {
	cmd := new(command.ResetPasswordCommand)
	if err := bind(c, cmd); err != nil {
		return err
	}
	cmd.Token = c.Param("tokenId")
	if fields := validation.ValidateResetPassword(cmd); len(fields) > 0 {
		return autherrors.Validation(fields)
	}

	result, err := h.auth.ResetPassword(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, Response{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    result.Message,
	})
}

func (h *Handler) Logout(c echo.Context) error {
	cmd := new(command.LogoutUserCommand)
	if err := bind(c, cmd); err != nil {
		return err
	}
	if fields := validation.ValidateLogout(cmd); len(fields) > 0 {
		return autherrors.Validation(fields)
	}

	result, err := h.auth.Logout(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, logoutResponse{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    result.Message,
		Token:      nil,
	})
}

func (h *Handler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, Response{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    "Welcome to TuneCraft. Let's generate some music.",
	})
}
