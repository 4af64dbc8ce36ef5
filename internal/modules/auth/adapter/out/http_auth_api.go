package out

import (
	"context"
	"encoding/json"

	"studyplanner/internal/modules/auth/domain"
	authout "studyplanner/internal/modules/auth/port/out"
	"studyplanner/internal/platform/rest"
)

type HTTPAuthAPI struct {
	client *rest.Client
}

func NewHTTPAuthAPI(client *rest.Client) *HTTPAuthAPI {
	return &HTTPAuthAPI{client: client}
}

var _ authout.AuthAPI = (*HTTPAuthAPI)(nil)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// The backend serialises user ids as numbers; json.Number keeps them intact
// while the rest of the client treats ids as strings.
type authResponse struct {
	Token   string      `json:"token"`
	UserID  json.Number `json:"userId"`
	Email   string      `json:"email"`
	Message string      `json:"message"`
}

func (a *HTTPAuthAPI) Login(ctx context.Context, email, password string) (domain.Session, string, error) {
	var resp authResponse
	err := a.client.Post(ctx, "/auth/login", credentialsRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return domain.Session{}, "", err
	}
	session := domain.Session{Token: resp.Token, UserID: resp.UserID.String(), Email: resp.Email}
	return session, resp.Message, nil
}

func (a *HTTPAuthAPI) Register(ctx context.Context, email, password string) (string, error) {
	var resp authResponse
	err := a.client.Post(ctx, "/auth/register", credentialsRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (a *HTTPAuthAPI) Ping(ctx context.Context) error {
	return a.client.Get(ctx, "/auth/ping", nil)
}
