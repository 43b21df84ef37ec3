package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/templui/folio/internal/ctxkeys"
	"github.com/templui/folio/internal/web/theme"
)

type ThemeHandler struct {
	secure bool
}

func NewThemeHandler(secure bool) *ThemeHandler {
	return &ThemeHandler{secure: secure}
}

// Toggle flips the theme cookie and sends the visitor back to where the form
// was submitted from. This is the path taken without script.
func (h *ThemeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	next := theme.Parse(ctxkeys.Theme(r.Context())).Toggle()

	http.SetCookie(w, &http.Cookie{
		Name:     theme.StorageKey,
		Value:    next.String(),
		Path:     "/",
		Expires:  time.Now().AddDate(1, 0, 0),
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
		// read by the client as well
		HttpOnly: false,
	})

	http.Redirect(w, r, localRedirect(r.FormValue("redirect")), http.StatusSeeOther)
}

// localRedirect accepts only same-site absolute paths.
func localRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}
