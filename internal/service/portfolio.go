package service

import (
	"context"
	"log/slog"

	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/store"
)

// Section is one category's list on the public page.
type Section struct {
	Category model.Category
	Items    []model.Item
}

// Portfolio is everything the public page shows from the store.
type Portfolio struct {
	Configured bool
	Sections   []Section
}

// Count is the number of items in the category, or 0 when it has none.
func (p *Portfolio) Count(c model.Category) int {
	for _, s := range p.Sections {
		if s.Category == c {
			return len(s.Items)
		}
	}
	return 0
}

func (p *Portfolio) Total() int {
	total := 0
	for _, s := range p.Sections {
		total += len(s.Items)
	}
	return total
}

type PortfolioService struct {
	backend *store.Backend
}

func NewPortfolioService(backend *store.Backend) *PortfolioService {
	return &PortfolioService{backend: backend}
}

// Load fetches every item and partitions it by category, newest first. A
// missing backend, a failed query, and an empty response all produce the same
// result: three empty sections.
func (s *PortfolioService) Load(ctx context.Context) *Portfolio {
	p := &Portfolio{Configured: s.backend.Configured()}
	if !p.Configured {
		p.Sections = sections(nil)
		return p
	}

	items, err := s.backend.Items.List(ctx)
	if err != nil {
		slog.Warn("failed to load portfolio", "error", err, "backend", s.backend.Name)
		p.Sections = sections(nil)
		return p
	}

	p.Sections = sections(items)
	return p
}

func sections(items []model.Item) []Section {
	parts := model.Partition(items)
	out := make([]Section, 0, len(model.Categories))
	for _, c := range model.Categories {
		out = append(out, Section{Category: c, Items: parts[c]})
	}
	return out
}
