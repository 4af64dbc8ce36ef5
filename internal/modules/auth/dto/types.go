package dto

import "time"

type LoginInput struct {
	Email    string
	Password string
}

type RegisterInput struct {
	Email    string
	Password string
}

type RegisterOutput struct {
	Email   string
	Message string
}

type SessionOutput struct {
	UserID    string
	Email     string
	LoggedIn  bool
	ExpiresAt time.Time
	Message   string
}
