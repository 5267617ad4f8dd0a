//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"room-booking/internal/pkg/cookie"

	"github.com/stretchr/testify/require"
)

// Option decorates the request before it is served.
type Option func(*http.Request)

// WithBearer authenticates against the api; an empty token sends nothing.
func WithBearer(token string) Option {
	return func(r *http.Request) {
		if token != "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

// WithSession sends token as the front-end session cookie.
func WithSession(token string) Option {
	return func(r *http.Request) {
		if token != "" {
			r.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: token})
		}
	}
}

// WithCookiesFrom replays the cookies a previous response set, the way a browser would.
func WithCookiesFrom(w *httptest.ResponseRecorder) Option {
	return func(r *http.Request) {
		for _, c := range w.Result().Cookies() {
			r.AddCookie(c)
		}
	}
}

// Perform serves one request. A url.Values body is posted as an HTML form,
// anything else non-nil is sent as JSON.
func Perform(t *testing.T, h http.Handler, method, path string, body any, opts ...Option) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody
	contentType := ""
	switch b := body.(type) {
	case nil:
	case url.Values:
		reader = strings.NewReader(b.Encode())
		contentType = "application/x-www-form-urlencoded"
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reader = bytes.NewReader(raw)
		contentType = "application/json"
	}

	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, opt := range opts {
		opt(req)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// PerformRequest calls the api with an optional bearer token.
func PerformRequest(t *testing.T, h http.Handler, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return Perform(t, h, method, path, body, WithBearer(authToken))
}

// PerformForm posts a form to the front-end with an optional session.
func PerformForm(t *testing.T, h http.Handler, path string, form url.Values, session string) *httptest.ResponseRecorder {
	t.Helper()
	return Perform(t, h, http.MethodPost, path, form, WithSession(session))
}

// PerformPage requests a page, or one of the JSON endpoints of the front-end.
func PerformPage(t *testing.T, h http.Handler, method, path, session string) *httptest.ResponseRecorder {
	t.Helper()
	return Perform(t, h, method, path, nil, WithSession(session))
}
