package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"room-booking/internal/domain/showtime"
	"room-booking/internal/handler/httperr"
	"room-booking/internal/infra/apiclient"
	"room-booking/internal/pkg/cookie"
	"room-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"dayName": func(d int) string {
		day, err := showtime.NewDayOfWeek(d)
		if err != nil {
			return strconv.Itoa(d)
		}
		return day.String()
	},
	"days": func() []int { return []int{0, 1, 2, 3, 4, 5, 6} },
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

func LoadTemplates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

func StaticFiles() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("static assets missing: " + err.Error())
	}
	return http.FS(sub)
}

// page is the data every template receives; Data holds the view's own fields.
type page struct {
	Title    string
	Nav      string
	LoggedIn bool
	Data     any
}

func render(c *gin.Context, status int, name, title, nav string, data any) {
	c.HTML(status, name, page{
		Title:    title,
		Nav:      nav,
		LoggedIn: cookie.GetAccessToken(c) != "",
		Data:     data,
	})
}

type errorView struct {
	Message string
}

// fail renders an api failure; an expired session sends the user back to the login form.
func fail(c *gin.Context, err error) {
	if apiclient.IsUnauthorized(err) {
		c.Redirect(http.StatusSeeOther, "/login?next="+url.QueryEscape(c.Request.URL.Path))
		c.Abort()
		return
	}
	_ = c.Error(err)
	render(c, apiStatus(err), "error.html", "Error", "", errorView{Message: apiclient.Message(err)})
	c.Abort()
}

func notFound(c *gin.Context) {
	render(c, http.StatusNotFound, "error.html", "Not found", "", errorView{Message: "Page not found"})
	c.Abort()
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		notFound(c)
		return 0, false
	}
	return id, true
}

// apiStatus passes api statuses through; transport failures become 502.
func apiStatus(err error) int {
	var apiErr *apiclient.APIError
	if errs.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusBadGateway
}

func jsonError(c *gin.Context, err error) {
	httperr.AbortWithError(c, apiStatus(err), err, apiclient.Message(err), nil)
}

// deleted answers the JSON DELETE calls made by the list views.
func deleted(c *gin.Context, err error) {
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/rooms"
}
