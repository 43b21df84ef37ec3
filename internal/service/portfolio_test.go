package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/folio/internal/model"
	"github.com/templui/folio/internal/store"
)

func TestLoadWithoutBackend(t *testing.T) {
	p := NewPortfolioService(nil).Load(context.Background())

	assert.False(t, p.Configured)
	require.Len(t, p.Sections, 3)
	for i, s := range p.Sections {
		assert.Equal(t, model.Categories[i], s.Category)
		assert.Empty(t, s.Items)
		assert.Equal(t, 0, p.Count(s.Category))
	}
	assert.Equal(t, 0, p.Total())
}

func TestLoadFailureRendersEmpty(t *testing.T) {
	for name, items := range map[string]*fakeItems{
		"error":   {listErr: errors.New("boom")},
		"no data": {nullList: true},
	} {
		t.Run(name, func(t *testing.T) {
			svc := NewPortfolioService(store.NewBackend("fake", items, nil, nil))
			p := svc.Load(context.Background())

			assert.True(t, p.Configured)
			require.Len(t, p.Sections, 3)
			assert.Equal(t, 0, p.Total())
		})
	}
}

func TestLoadPartitionsNewestFirst(t *testing.T) {
	items := &fakeItems{rows: []model.Item{
		row("1", model.CategoryWebApps, "old app", 1),
		row("2", model.CategoryProjects, "project", 2),
		row("3", model.CategoryWebApps, "new app", 3),
		row("4", model.CategoryPythonPackages, "pkg", 4),
		row("5", "unknown", "ignored", 5),
	}}
	svc := NewPortfolioService(store.NewBackend("fake", items, nil, nil))

	p := svc.Load(context.Background())

	require.Len(t, p.Sections, 3)
	webApps := p.Sections[0]
	assert.Equal(t, model.CategoryWebApps, webApps.Category)
	require.Len(t, webApps.Items, 2)
	assert.Equal(t, "new app", webApps.Items[0].Title)
	assert.Equal(t, "old app", webApps.Items[1].Title)

	assert.Equal(t, 2, p.Count(model.CategoryWebApps))
	assert.Equal(t, 1, p.Count(model.CategoryProjects))
	assert.Equal(t, 1, p.Count(model.CategoryPythonPackages))
	assert.Equal(t, 4, p.Total())
}
