package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/store"
)

func writeEntry(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, "portfolio", name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestImportServiceForms(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "a-tinypkg.md", "---\ntype: python_packages\ntitle: tinypkg\nurl: https://pypi.org/project/tinypkg\n---\nA *tiny* package\n")
	writeEntry(t, dir, "b-site.md", "---\ntype: web_apps\ntitle: Site\n---\nHello\n")

	forms, err := NewImportService(nil, dir).Forms()
	require.NoError(t, err)
	require.Len(t, forms, 2)

	assert.Equal(t, model.CategoryPythonPackages, forms[0].Type)
	assert.Equal(t, "tinypkg", forms[0].Title)
	assert.Equal(t, "https://pypi.org/project/tinypkg", forms[0].URL)
	assert.Equal(t, "<p>A <em>tiny</em> package</p>", forms[0].Body)
	assert.Equal(t, model.FormatHTML, forms[0].Format)

	assert.Equal(t, model.CategoryWebApps, forms[1].Type)
	assert.Empty(t, forms[1].URL)
}

func TestImportServiceRejectsUnknownCategory(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "bad.md", "---\ntype: blog\ntitle: Nope\n---\nbody\n")

	_, err := NewImportService(nil, dir).Forms()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.md")
}

func TestImportServiceImport(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "one.md", "---\ntype: projects\ntitle: One\nurl: https://example.com\n---\nFirst **project**\n")

	items := &fakeItems{}
	backend := store.NewBackend("fake", items, &fakeAuth{}, nil)
	n, err := NewImportService(backend, dir).Import(context.Background(), &model.Session{ID: "s", AccessToken: "user-token"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.Len(t, items.inserts, 1)
	got := items.inserts[0]
	assert.Equal(t, model.CategoryProjects, got.Type)
	assert.Equal(t, "First project", got.Description)
	assert.Equal(t, "<p>First <strong>project</strong></p>", got.DescriptionHTML)
	assert.Equal(t, "https://example.com", got.Link())
	assert.Equal(t, []string{"user-token"}, items.tokens)
}

func TestImportServiceStopsOnInsertFailure(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "one.md", "---\ntype: projects\ntitle: One\n---\nx\n")

	items := &fakeItems{insertErr: errors.New("boom")}
	backend := store.NewBackend("fake", items, &fakeAuth{}, nil)
	n, err := NewImportService(backend, dir).Import(context.Background(), &model.Session{ID: "s"})
	require.Error(t, err)
	assert.Equal(t, 0, n)
}

func TestImportServiceNeedsBackend(t *testing.T) {
	_, err := NewImportService(nil, t.TempDir()).Import(context.Background(), &model.Session{})
	assert.ErrorIs(t, err, store.ErrNotConfigured)
}
