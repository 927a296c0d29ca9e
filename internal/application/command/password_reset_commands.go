package command

type ForgotPasswordCommand struct {
	Email string `json:"email"`
}

type ForgotPasswordCommandResult struct {
	Message string `json:"message"`
}

type ResetPasswordCommand struct {
	Token    string `json:"-"` // from the URL, not the body
	Password string `json:"password"`
}

type ResetPasswordCommandResult struct {
	Message string `json:"message"`
}
