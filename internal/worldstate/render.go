package worldstate

import (
	"strings"
	"time"

	"github.com/ordis/cephalon/internal/models"
)

// RenderNews joins the rendered items with blank lines, newest-known
// first in feed order.
func RenderNews(items []models.NewsItem, now time.Time) string {
	parts := make([]string, len(items))
	for i, n := range items {
		parts[i] = n.Render(now)
	}
	return strings.Join(parts, "\n\n")
}

// CondensedNews renders only the first limit items, or everything when
// the feed is shorter than that.
func CondensedNews(items []models.NewsItem, limit int, now time.Time) string {
	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}
	return RenderNews(items, now)
}

// RenderInvasions joins the rendered invasions with blank lines.
func RenderInvasions(invasions []models.Invasion) string {
	parts := make([]string, len(invasions))
	for i, inv := range invasions {
		parts[i] = inv.Render()
	}
	return strings.Join(parts, "\n\n")
}

// RenderFissures renders one fissure per line.
func RenderFissures(fissures []models.Fissure, now time.Time) string {
	parts := make([]string, len(fissures))
	for i, f := range fissures {
		parts[i] = f.Render(now)
	}
	return strings.Join(parts, "\n")
}
