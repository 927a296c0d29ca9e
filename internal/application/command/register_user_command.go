package command

import "github.com/tunecraft/auth-service/internal/application/common"

type RegisterUserCommand struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type RegisterUserCommandResult struct {
	User *common.UserResult `json:"user"`
}
