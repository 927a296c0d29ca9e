package command

import "github.com/tunecraft/auth-service/internal/application/common"

// SocialAuthCommand serves both the social register and social login routes:
// the two operations are deliberately the same transition. An unseen email
// creates the account, a known email just logs in.
type SocialAuthCommand struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	EmailVerified  bool   `json:"emailVerified"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

type SocialAuthCommandResult struct {
	Token   string             `json:"token"`
	User    *common.UserResult `json:"user"`
	Created bool               `json:"-"` // true when a new account was provisioned
}
