//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"room-booking/internal/handler/httperr"
	"room-booking/internal/pkg/cookie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "Failed to decode response JSON: %s", w.Body.String())
}

// AssertSuccessResponse checks the status and decodes a 2xx body into target when given.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code, "Response: %s", w.Body.String()) {
		return
	}
	if target != nil && w.Code >= 200 && w.Code < 300 {
		DecodeJSON(t, w, target)
	}
}

// AssertErrorResponse checks the {"error": ...} body; msg may be a fragment of the message.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, msg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "Response: %s", w.Body.String())

	var res httperr.Response
	DecodeJSON(t, w, &res)
	if msg != "" {
		assert.Contains(t, res.Error, msg)
	}
}

// AssertRedirect checks the 303 the front-end answers after forms and for missing sessions.
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()

	assert.Equal(t, http.StatusSeeOther, w.Code, w.Body.String())
	assert.Equal(t, location, w.Header().Get("Location"))
}

// SessionCookie returns the session cookie a login response set, or nil.
func SessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == cookie.AccessTokenCookieName {
			return c
		}
	}
	return nil
}
