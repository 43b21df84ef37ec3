package export

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/folio/internal/service"
	"github.com/templui/folio/internal/storage"
)

func stubSite() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<h1>home</h1>"))
	})
	for _, p := range []string{"/particles.svg", "/sitemap.xml", "/robots.txt"} {
		mux.HandleFunc("GET "+p, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(r.URL.String()))
		})
	}
	return mux
}

func TestExporterRun(t *testing.T) {
	dir := t.TempDir()
	assets := fstest.MapFS{
		"css/site.css":  {Data: []byte("body{}")},
		"wasm/.gitkeep": {Data: []byte{}},
		"js/boot.js":    {Data: []byte("boot()")},
	}

	e := New(stubSite(), assets, service.NewPortfolioService(nil), storage.NewLocalStorage(dir))
	n, err := e.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(Pages)+2+1, n)

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<h1>home</h1>", string(index))

	svg, err := os.ReadFile(filepath.Join(dir, "particles.svg"))
	require.NoError(t, err)
	assert.Equal(t, "/particles.svg?w=1280&h=720", string(svg))

	css, err := os.ReadFile(filepath.Join(dir, "assets", "css", "site.css"))
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(css))
	assert.NoFileExists(t, filepath.Join(dir, "assets", "wasm", ".gitkeep"))

	data, err := os.ReadFile(filepath.Join(dir, "items.json"))
	require.NoError(t, err)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(data, &items))
	assert.Empty(t, items)
}

func TestExporterFailsOnBadPage(t *testing.T) {
	mux := http.NewServeMux()
	e := New(mux, fstest.MapFS{}, service.NewPortfolioService(nil), storage.NewLocalStorage(t.TempDir()))

	n, err := e.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, n)
	assert.Contains(t, err.Error(), "status 404")
}
