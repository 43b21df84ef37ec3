package service

import (
	"context"
	"encoding/xml"
	"strings"
	"time"

	"github.com/templui/folio/internal/model"
)

// publicRoutes are the pages worth indexing. The admin page is not one.
var publicRoutes = []struct {
	Path       string
	Priority   string
	ChangeFreq string
}{
	{"/", "1.0", "weekly"},
}

type SitemapService struct {
	portfolio *PortfolioService
	baseURL   string
}

func NewSitemapService(portfolio *PortfolioService, baseURL string) *SitemapService {
	return &SitemapService{
		portfolio: portfolio,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
	}
}

// GenerateSitemap lists the public routes. The home page's lastmod is the
// newest portfolio entry, or today when there are none.
func (s *SitemapService) GenerateSitemap(ctx context.Context) ([]byte, error) {
	lastMod := s.lastModified(ctx).Format("2006-01-02")

	sitemap := model.Sitemap{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]model.SitemapURL, 0, len(publicRoutes)),
	}
	for _, route := range publicRoutes {
		sitemap.URLs = append(sitemap.URLs, model.SitemapURL{
			Loc:        s.baseURL + route.Path,
			LastMod:    lastMod,
			ChangeFreq: route.ChangeFreq,
			Priority:   route.Priority,
		})
	}

	output, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}
	return []byte(xml.Header + string(output)), nil
}

func (s *SitemapService) lastModified(ctx context.Context) time.Time {
	var newest time.Time
	for _, section := range s.portfolio.Load(ctx).Sections {
		// sections are newest first
		if len(section.Items) > 0 && section.Items[0].CreatedAt.After(newest) {
			newest = section.Items[0].CreatedAt
		}
	}
	if newest.IsZero() {
		return time.Now()
	}
	return newest
}
