package domain

import (
	"errors"
	"time"
)

var (
	MessageFailedRegister       = "registration failed"
	MessageFailedLogin          = "login failed"
	MessageFailedGetProfile     = "failed to get profile"
	MessageFailedForgotPassword = "failed to send reset email"
	MessageFailedResetPassword  = "failed to reset password"

	ErrUsernameRequired       = errors.New("username, email, and password are required")
	ErrCredentialsRequired    = errors.New("email and password are required")
	ErrEmailAlreadyExists     = errors.New("email already registered")
	ErrUsernameAlreadyExists  = errors.New("username already taken")
	ErrCredentialsNotMatched  = errors.New("invalid email or password")
	ErrUserNotFound           = errors.New("user not found")
	ErrResetPasswordEmailFail = errors.New("failed to send password reset email")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=32"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=6"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Username  string    `json:"username"`
		Email     string    `json:"email"`
		CreatedAt time.Time `json:"created_at"`
	}

	AuthResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
)
