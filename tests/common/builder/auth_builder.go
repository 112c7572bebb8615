//go:build unit

package builder

import (
	reqdto "invoice-dashboard/internal/handler/dto/request"
	"invoice-dashboard/internal/usecase/commands"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildForm() commands.LoginForm {
	return commands.LoginForm{
		Email:    a.Email,
		Password: a.Password,
	}
}
