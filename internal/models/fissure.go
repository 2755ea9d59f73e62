package models

import (
	"fmt"
	"time"

	"github.com/ordis/cephalon/internal/utils"
)

// Fissure is one active void fissure mission. Modifier is the
// two-character tier code derived from the feed's longer modifier string
// ("VoidT1" becomes "T1").
type Fissure struct {
	Region    int
	Seed      int64
	Node      string
	Modifier  string
	ExpiresAt time.Time
}

// Render formats the fissure for chat with its remaining time relative
// to now.
func (f Fissure) Render(now time.Time) string {
	return fmt.Sprintf("%s | **%s**  [%s left]",
		f.Modifier, f.Node, utils.FormatDuration(f.ExpiresAt.Sub(now)))
}
