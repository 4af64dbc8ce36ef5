package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "studyplanner/internal/platform/errors"
)

func TestBearerTokenInjection(t *testing.T) {
	t.Parallel()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := New(server.URL, func() string { return "token-123" })
	var out struct {
		OK bool `json:"ok"`
	}
	if err := client.Get(context.Background(), "/ping", &out); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if gotAuth != "Bearer token-123" {
		t.Fatalf("Authorization = %q, want Bearer token-123", gotAuth)
	}
	if !out.OK {
		t.Fatalf("response not decoded")
	}
}

func TestNoAuthHeaderWhenLoggedOut(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var hasAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := New(server.URL, func() string { return "" })
	if err := client.Get(context.Background(), "/ping", nil); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if hasAuth {
		t.Fatalf("Authorization header sent while logged out: %q", gotAuth)
	}
}

func TestErrorEnvelopeBecomesAPIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"DUPLICATE_COURSE","message":"Course already planned"}`))
	}))
	defer server.Close()

	client := New(server.URL, nil)
	err := client.Post(context.Background(), "/semester-courses", map[string]string{}, nil)
	if err == nil {
		t.Fatalf("Post() succeeded, want error")
	}

	var apiErr *apperrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *apperrors.APIError", err)
	}
	if apiErr.StatusCode != http.StatusConflict || apiErr.Code != "DUPLICATE_COURSE" {
		t.Fatalf("APIError = %+v", apiErr)
	}
	if apiErr.Message != "Course already planned" {
		t.Fatalf("Message = %q", apiErr.Message)
	}
}

func TestNonJSONErrorBodyStillYieldsAPIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := New(server.URL, nil)
	err := client.Get(context.Background(), "/study-plans/my", nil)

	var apiErr *apperrors.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T, want *apperrors.APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("StatusCode = %d, want 502", apiErr.StatusCode)
	}
}

func TestNilOutSkipsBodyDecode(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	client := New(server.URL, nil)
	if err := client.Delete(context.Background(), "/study-plans/7"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}

func TestMalformedSuccessBodyIsAnError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id": "truncated`))
	}))
	defer server.Close()

	client := New(server.URL, nil)
	var out struct {
		ID string `json:"id"`
	}
	if err := client.Get(context.Background(), "/study-plans/7", &out); err == nil {
		t.Fatalf("Get() succeeded on malformed body, want error")
	}
}
