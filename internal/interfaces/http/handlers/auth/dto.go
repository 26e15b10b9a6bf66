package auth

import "litrevu/internal/application/user/usecases"

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (r *LoginRequest) ToCommand() usecases.AuthenticateUserCommand {
	return usecases.AuthenticateUserCommand{
		Username: r.Username,
		Password: r.Password,
	}
}

type SignupRequest struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"omitempty,email"`
	Password string `form:"password" binding:"required"`
	// PasswordConfirm mirrors the two-field signup form.
	PasswordConfirm string `form:"password_confirm" binding:"required"`
}

func (r *SignupRequest) ToCommand() usecases.RegisterUserCommand {
	return usecases.RegisterUserCommand{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}
