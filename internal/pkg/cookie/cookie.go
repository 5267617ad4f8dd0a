package cookie

import (
	"net/http"
	"strings"
	"time"

	"room-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// AccessTokenCookieName holds the api token of a logged-in console user.
const AccessTokenCookieName = "access_token"

// SetAccessToken starts the console session of the web front-end.
func SetAccessToken(c *gin.Context, cfg config.CookieConfig, accessToken string) {
	http.SetCookie(c.Writer, session(cfg, accessToken, cfg.MaxAge))
}

// ClearAccessToken ends the session on logout.
func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	http.SetCookie(c.Writer, session(cfg, "", -1))
}

func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return token
}

func session(cfg config.CookieConfig, value string, maxAge time.Duration) *http.Cookie {
	sameSite := parseSameSite(cfg.SameSite)
	ck := &http.Cookie{
		Name:     AccessTokenCookieName,
		Value:    value,
		Path:     "/",
		Domain:   cfg.Domain,
		HttpOnly: true,
		// browsers drop SameSite=None cookies that are not Secure
		Secure:   cfg.Secure || sameSite == http.SameSiteNoneMode,
		SameSite: sameSite,
	}
	if maxAge < 0 {
		ck.MaxAge = -1
		ck.Expires = time.Unix(0, 0)
		return ck
	}
	ck.MaxAge = int(maxAge.Seconds())
	return ck
}

func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
