package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the authenticated identity persisted across runs. A session is
// only considered logged in when all three fields are present; a partial
// triple left behind by an older run counts as logged out.
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func (s Session) LoggedIn() bool {
	return strings.TrimSpace(s.Token) != "" &&
		strings.TrimSpace(s.UserID) != "" &&
		strings.TrimSpace(s.Email) != ""
}

func (s Session) Validate() error {
	if !s.LoggedIn() {
		return fmt.Errorf("session is missing token, user id, or email")
	}
	return nil
}

// Claims is the displayed subset of the bearer token's JWT claims. The token
// is never verified client-side; an expired token simply fails at the next
// authenticated call.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

func (s Session) Claims() (Claims, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(s.Token, claims); err != nil {
		return Claims{}, fmt.Errorf("parse token claims: %w", err)
	}
	out := Claims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
