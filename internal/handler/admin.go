package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/templui/folio/internal/ctxkeys"
	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/service"
	"github.com/templui/folio/internal/store"
	"github.com/templui/folio/internal/ui"
	"github.com/templui/folio/internal/ui/pages"
	"github.com/templui/folio/internal/validation"
)

const (
	msgLoginOK    = "Login successful. You can now add portfolio entries."
	msgSaved      = "Saved successfully."
	msgDeleted    = "Entry deleted."
	msgRefreshed  = "Entries refreshed."
	msgStaleCache = "Signed in, but the entries could not be loaded: "
)

type AdminHandler struct {
	admin    *service.AdminService
	sessions *service.SessionService
}

func NewAdminHandler(admin *service.AdminService, sessions *service.SessionService) *AdminHandler {
	return &AdminHandler{
		admin:    admin,
		sessions: sessions,
	}
}

func (h *AdminHandler) AdminPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, ctxkeys.Session(r.Context()), &pages.AdminView{})
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	session, err := h.admin.SignIn(r.Context(), email, password)
	var refreshErr *service.RefreshError
	if err != nil && !errors.As(err, &refreshErr) {
		if !errors.Is(err, store.ErrNotConfigured) && !errors.Is(err, validation.ErrRequired) {
			slog.Info("admin login failed", "email", email, "error", err)
		}
		h.render(w, r, nil, &pages.AdminView{
			Message: "Login failed: " + err.Error(),
			Error:   true,
			Email:   email,
		})
		return
	}

	token, err2 := h.sessions.GenerateJWT(session)
	if err2 != nil {
		slog.Error("failed to sign admin session", "error", err2)
		h.render(w, r, nil, &pages.AdminView{Message: "Login failed: could not create session", Error: true, Email: email})
		return
	}
	h.sessions.SetCookie(w, token, h.sessions.Expiry(session))

	view := &pages.AdminView{Message: msgLoginOK}
	if refreshErr != nil {
		view.Message, view.Error = msgStaleCache+refreshErr.Error(), true
	}
	h.render(w, r, session, view)
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if session := ctxkeys.Session(r.Context()); session != nil {
		err := h.admin.SignOut(r.Context(), session)
		if err != nil {
			slog.Warn("failed to drop admin cache", "error", err)
		}
	}
	h.sessions.ClearCookie(w)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	session := ctxkeys.Session(r.Context())
	view := &pages.AdminView{Message: msgRefreshed}

	_, err := h.admin.RefreshCache(r.Context(), session)
	if err != nil {
		view.Message, view.Error = "Could not refresh entries: "+err.Error(), true
	}
	h.render(w, r, session, view)
}

// Submit creates or updates an item. On failure the form is rendered again
// with what was typed; on success it is cleared.
func (h *AdminHandler) Submit(w http.ResponseWriter, r *http.Request) {
	session := ctxkeys.Session(r.Context())

	form := model.ItemForm{
		ID:     model.ItemID(strings.TrimSpace(r.FormValue("id"))),
		Type:   model.Category(r.FormValue("type")),
		Title:  r.FormValue("title"),
		URL:    r.FormValue("url"),
		Body:   r.FormValue("body"),
		Format: r.FormValue("format"),
	}

	err := h.admin.Submit(r.Context(), session, form)
	var refreshErr *service.RefreshError
	switch {
	case errors.As(err, &refreshErr):
		h.render(w, r, session, &pages.AdminView{
			Message: "Saved, but the list could not be refreshed: " + refreshErr.Error(),
			Error:   true,
		})
	case err != nil:
		view := &pages.AdminView{Message: "Could not save entry: " + err.Error(), Error: true}
		if form.Type.Valid() {
			view.Forms = map[model.Category]model.ItemForm{form.Type: form}
		}
		h.render(w, r, session, view)
	default:
		h.render(w, r, session, &pages.AdminView{Message: msgSaved})
	}
}

// Edit fills the item's category form from the cached list.
func (h *AdminHandler) Edit(w http.ResponseWriter, r *http.Request) {
	session := ctxkeys.Session(r.Context())

	form, err := h.admin.BeginEdit(r.Context(), session, model.ItemID(r.PathValue("id")))
	if err != nil {
		h.render(w, r, session, &pages.AdminView{Message: err.Error(), Error: true})
		return
	}
	h.render(w, r, session, &pages.AdminView{
		Forms: map[model.Category]model.ItemForm{form.Type: form},
	})
}

func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session := ctxkeys.Session(r.Context())

	err := h.admin.Delete(r.Context(), session, model.ItemID(r.PathValue("id")))
	var refreshErr *service.RefreshError
	switch {
	case errors.As(err, &refreshErr):
		h.render(w, r, session, &pages.AdminView{Message: msgDeleted + " The list could not be refreshed: " + refreshErr.Error(), Error: true})
	case err != nil:
		h.render(w, r, session, &pages.AdminView{Message: "Could not delete entry: " + err.Error(), Error: true})
	default:
		h.render(w, r, session, &pages.AdminView{Message: msgDeleted})
	}
}

// DeleteAPI is the script-facing delete: no page, just a status.
func (h *AdminHandler) DeleteAPI(w http.ResponseWriter, r *http.Request) {
	session := ctxkeys.Session(r.Context())

	err := h.admin.Delete(r.Context(), session, model.ItemID(r.PathValue("id")))
	var refreshErr *service.RefreshError
	if err != nil && !errors.As(err, &refreshErr) {
		http.Error(w, err.Error(), errorStatus(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Cancel resets one category's form without touching the store.
func (h *AdminHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	session := ctxkeys.Session(r.Context())

	c, err := model.ParseCategory(r.PathValue("type"))
	if err != nil {
		h.render(w, r, session, &pages.AdminView{Message: err.Error(), Error: true})
		return
	}
	h.render(w, r, session, &pages.AdminView{
		Forms: map[model.Category]model.ItemForm{c: h.admin.CancelEdit(c)},
	})
}

// render fills in what every admin view needs: whether the admin is
// available, the session and the cached items.
func (h *AdminHandler) render(w http.ResponseWriter, r *http.Request, session *model.Session, view *pages.AdminView) {
	view.Enabled = h.admin.Enabled()
	view.Session = session

	if view.Enabled && session != nil {
		items, err := h.admin.Items(r.Context(), session)
		if err != nil && view.Message == "" {
			view.Message, view.Error = "Could not load entries: "+err.Error(), true
		}
		view.Items = items
	}

	ui.Render(w, r, pages.Admin(view))
}

func errorStatus(err error) int {
	var storeErr *store.Error
	switch {
	case errors.Is(err, store.ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, service.ErrNoItemID):
		return http.StatusBadRequest
	case errors.As(err, &storeErr) && storeErr.Status >= 400 && storeErr.Status < 500:
		return storeErr.Status
	}
	return http.StatusBadGateway
}
