package service

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/templui/folio/internal/markdown"
	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/store"
)

// ImportService loads portfolio entries from markdown files under
// <contentPath>/portfolio. Each file carries its category, title and url in
// front matter; the body becomes the item's rich description.
type ImportService struct {
	parser      *markdown.Parser
	backend     *store.Backend
	contentPath string
}

type entryMeta struct {
	Type  string `yaml:"type"`
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

func NewImportService(backend *store.Backend, contentPath string) *ImportService {
	return &ImportService{
		parser:      markdown.NewParser(),
		backend:     backend,
		contentPath: contentPath,
	}
}

// Forms parses every entry file in name order. Files that fail to parse
// abort the whole batch so nothing is half imported.
func (s *ImportService) Forms() ([]model.ItemForm, error) {
	pattern := filepath.Join(s.contentPath, "portfolio", "*.md")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	forms := make([]model.ItemForm, 0, len(files))
	for _, file := range files {
		form, err := s.parse(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(file), err)
		}
		forms = append(forms, form)
	}
	return forms, nil
}

func (s *ImportService) parse(path string) (model.ItemForm, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return model.ItemForm{}, err
	}

	var meta entryMeta
	body, err := s.parser.ParseWithFrontmatter(content, &meta)
	if err != nil {
		return model.ItemForm{}, err
	}

	c, err := model.ParseCategory(meta.Type)
	if err != nil {
		return model.ItemForm{}, err
	}

	return model.ItemForm{
		Type:   c,
		Title:  meta.Title,
		URL:    meta.URL,
		Body:   strings.TrimSpace(string(body)),
		Format: model.FormatHTML,
	}, nil
}

// Import inserts every parsed entry as session's admin and returns how many
// were written. It stops at the first store failure.
func (s *ImportService) Import(ctx context.Context, session *model.Session) (int, error) {
	if !s.backend.Configured() {
		return 0, store.ErrNotConfigured
	}

	forms, err := s.Forms()
	if err != nil {
		return 0, err
	}

	ctx = store.WithToken(ctx, session.AccessToken)
	for i, form := range forms {
		item, err := itemFromForm(form)
		if err != nil {
			return i, err
		}
		_, err = s.backend.Items.Insert(ctx, item)
		if err != nil {
			return i, fmt.Errorf("failed to insert %q: %w", form.Title, err)
		}
	}

	slog.Info("portfolio imported", "count", len(forms), "backend", s.backend.Name)
	return len(forms), nil
}
