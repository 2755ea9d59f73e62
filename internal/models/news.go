package models

import (
	"fmt"
	"time"

	"github.com/ordis/cephalon/internal/utils"
)

// NewsItem is one line of the raw news feed.
type NewsItem struct {
	ID       string
	Link     string
	PostedAt time.Time
	Text     string
}

// Render formats the item for chat, with its age relative to now.
func (n NewsItem) Render(now time.Time) string {
	return fmt.Sprintf("[%s ago]: **%s**: *<%s>*",
		utils.FormatDuration(now.Sub(n.PostedAt)), n.Text, n.Link)
}
