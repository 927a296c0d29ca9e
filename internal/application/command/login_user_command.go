package command

import "github.com/tunecraft/auth-service/internal/application/common"

type LoginUserCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginUserCommandResult struct {
	Token string             `json:"token"`
	User  *common.UserResult `json:"user"`
}
