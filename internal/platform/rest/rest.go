package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "studyplanner/internal/platform/errors"
)

// TokenSource yields the current bearer token, or "" when logged out.
type TokenSource func() string

// Client is a thin JSON-over-HTTP client shared by all four service
// adapters. It injects the bearer token, decodes the backend's
// {error, message} envelope into apperrors.APIError on non-2xx responses,
// and rejects malformed success bodies with a decoding error instead of
// letting half-parsed data reach the caller.
type Client struct {
	base  string
	http  *http.Client
	token TokenSource
}

func New(baseURL string, token TokenSource) *Client {
	return &Client{base: baseURL, http: &http.Client{}, token: token}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		envelope := errorEnvelope{}
		payload, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(payload, &envelope)
		return apperrors.NewAPIError(resp.StatusCode, envelope.Error, envelope.Message)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}
