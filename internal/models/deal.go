package models

import (
	"fmt"
	"time"
)

// Deal is the current storefront daily discount.
type Deal struct {
	Item          string
	Discount      int
	OriginalPrice int
	SalePrice     int
	AmountTotal   int
	AmountSold    int
	ExpiresAt     time.Time
}

// AmountLeft is the stock still available.
func (d Deal) AmountLeft() int {
	return d.AmountTotal - d.AmountSold
}

// Render formats the deal summary line for chat.
func (d Deal) Render() string {
	return fmt.Sprintf("**%s**: %dp (%d%% off) | %d/%d left",
		d.Item, d.SalePrice, d.Discount, d.AmountLeft(), d.AmountTotal)
}
