// Package export writes a static snapshot of the public site to storage.
// Pages are rendered by the live handler, so the snapshot matches what the
// server would serve at that moment.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"net/http"
	"net/http/httptest"
	"path"
	"time"

	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/service"
	"github.com/templui/folio/internal/storage"
)

// Page maps a request path on the handler to the file it is saved as.
type Page struct {
	Path string
	File string
}

// Pages is what a snapshot contains besides assets and items.json.
var Pages = []Page{
	{Path: "/", File: "index.html"},
	{Path: "/particles.svg?w=1280&h=720", File: "particles.svg"},
	{Path: "/sitemap.xml", File: "sitemap.xml"},
	{Path: "/robots.txt", File: "robots.txt"},
}

type Exporter struct {
	handler   http.Handler
	assets    fs.FS
	portfolio *service.PortfolioService
	storage   storage.Storage
}

func New(handler http.Handler, assets fs.FS, portfolio *service.PortfolioService, store storage.Storage) *Exporter {
	return &Exporter{
		handler:   handler,
		assets:    assets,
		portfolio: portfolio,
		storage:   store,
	}
}

// Run writes every page, every asset under assets/ and items.json, and
// returns the number of files saved.
func (e *Exporter) Run(ctx context.Context) (int, error) {
	saved := 0

	for _, page := range Pages {
		body, contentType, err := e.render(ctx, page.Path)
		if err != nil {
			return saved, err
		}
		err = e.storage.Save(ctx, page.File, contentType, bytes.NewReader(body))
		if err != nil {
			return saved, err
		}
		saved++
	}

	n, err := e.copyAssets(ctx)
	saved += n
	if err != nil {
		return saved, err
	}

	err = e.saveItems(ctx)
	if err != nil {
		return saved, err
	}
	saved++

	slog.Info("site exported", "files", saved, "index", e.storage.URL("index.html"))
	return saved, nil
}

func (e *Exporter) render(ctx context.Context, target string) ([]byte, string, error) {
	req := httptest.NewRequest(http.MethodGet, target, nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		return nil, "", fmt.Errorf("render %s: status %d", target, rec.Code)
	}
	return rec.Body.Bytes(), rec.Header().Get("Content-Type"), nil
}

func (e *Exporter) copyAssets(ctx context.Context) (int, error) {
	saved := 0
	err := fs.WalkDir(e.assets, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || path.Base(name) == ".gitkeep" {
			return err
		}

		data, err := fs.ReadFile(e.assets, name)
		if err != nil {
			return err
		}
		contentType := mime.TypeByExtension(path.Ext(name))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		err = e.storage.Save(ctx, path.Join("assets", name), contentType, bytes.NewReader(data))
		if err != nil {
			return err
		}
		saved++
		return nil
	})
	if err != nil {
		return saved, fmt.Errorf("failed to copy assets: %w", err)
	}
	return saved, nil
}

type exportedItem struct {
	ID          string         `json:"id"`
	Type        model.Category `json:"type"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	HTML        string         `json:"description_html,omitempty"`
	URL         string         `json:"url,omitempty"`
	CreatedAt   string         `json:"created_at,omitempty"`
}

func (e *Exporter) saveItems(ctx context.Context) error {
	portfolio := e.portfolio.Load(ctx)

	items := []exportedItem{}
	for _, section := range portfolio.Sections {
		for _, it := range section.Items {
			out := exportedItem{
				ID:          it.ID.String(),
				Type:        it.Type,
				Title:       it.Title,
				Description: it.Description,
				HTML:        it.DescriptionHTML,
				URL:         it.Link(),
			}
			if !it.CreatedAt.IsZero() {
				out.CreatedAt = it.CreatedAt.UTC().Format(time.RFC3339)
			}
			items = append(items, out)
		}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}
	return e.storage.Save(ctx, "items.json", "application/json", bytes.NewReader(data))
}
