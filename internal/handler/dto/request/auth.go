package request

import (
	"invoice-dashboard/internal/usecase/commands"
)

// LoginRequest binds presence only; format checks happen in the sign-in flow
// so a malformed email gets the same answer as a wrong password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToForm() commands.LoginForm {
	return commands.LoginForm{
		Email:    r.Email,
		Password: r.Password,
	}
}

// RefreshRequest is optional in the body; the refresh token cookie takes
// precedence when present.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
