package command

type LogoutUserCommand struct {
	UserId string `json:"userId"`
}

type LogoutUserCommandResult struct {
	Message string `json:"message"`
}
