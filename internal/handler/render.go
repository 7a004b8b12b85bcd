package handler

import (
	"html/template"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
)

// Renderer adapts html/template to Echo's Renderer interface. All
// templates are parsed once at startup; a parse error is a deploy
// problem and surfaces immediately.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses every template matching the glob pattern.
func NewRenderer(pattern string) (*Renderer, error) {
	t, err := template.ParseGlob(pattern)
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render executes the named template.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

const flashCookie = "flash"

// setFlash queues a one-shot message for the next rendered page. The
// message rides in a short-lived cookie because flashes must survive a
// redirect and must work for anonymous visitors who have no session.
func setFlash(c echo.Context, msg string) {
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
}

// popFlash returns the pending flash message, if any, and clears it so
// it renders exactly once.
func popFlash(c echo.Context) string {
	cookie, err := c.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}
	msg, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		msg = ""
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})
	return msg
}
