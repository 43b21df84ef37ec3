package handler

import (
	"net/http"

	"github.com/templui/folio/internal/service"
	"github.com/templui/folio/internal/ui"
	"github.com/templui/folio/internal/ui/pages"
)

type HomeHandler struct {
	portfolio *service.PortfolioService
}

func NewHomeHandler(portfolio *service.PortfolioService) *HomeHandler {
	return &HomeHandler{portfolio: portfolio}
}

func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Home(h.portfolio.Load(r.Context())))
}

func (h *HomeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
}
