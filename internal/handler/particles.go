package handler

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/templui/folio/internal/web/particles"
)

const (
	defaultSVGWidth  = 1280
	defaultSVGHeight = 720
	maxSVGWidth      = 3840
	maxSVGHeight     = 2160
)

type ParticlesHandler struct{}

func NewParticlesHandler() *ParticlesHandler {
	return &ParticlesHandler{}
}

// SVG serves the animated particle background used when script is off. The
// field is seeded from its size, so a given size always renders the same.
func (h *ParticlesHandler) SVG(w http.ResponseWriter, r *http.Request) {
	width := dimension(r.URL.Query().Get("w"), defaultSVGWidth, maxSVGWidth)
	height := dimension(r.URL.Query().Get("h"), defaultSVGHeight, maxSVGHeight)

	var buf bytes.Buffer
	rnd := rand.New(rand.NewPCG(uint64(width), uint64(height)))
	err := particles.WriteSVG(&buf, float64(width), float64(height), rnd)
	if err != nil {
		slog.Error("failed to render particles", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(buf.Bytes())
}

func dimension(raw string, def, limit int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return min(n, limit)
}
