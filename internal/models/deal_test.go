package models

import (
	"testing"
	"time"
)

func TestDealRender(t *testing.T) {
	deal := Deal{
		Item:          "Orokin Catalyst",
		Discount:      50,
		OriginalPrice: 20,
		SalePrice:     10,
		AmountTotal:   300,
		AmountSold:    256,
		ExpiresAt:     time.Unix(1700000000, 0),
	}

	if got := deal.AmountLeft(); got != 44 {
		t.Errorf("AmountLeft() = %d, want 44", got)
	}

	want := "**Orokin Catalyst**: 10p (50% off) | 44/300 left"
	if got := deal.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestFissureRender(t *testing.T) {
	now := time.Unix(1700000000, 0)
	f := Fissure{
		Region:    14,
		Seed:      987654,
		Node:      "SolNode401",
		Modifier:  "T3",
		ExpiresAt: now.Add(42 * time.Minute),
	}

	want := "T3 | **SolNode401**  [42m left]"
	if got := f.Render(now); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	// Already expired missions say so instead of showing a negative count.
	f.ExpiresAt = now.Add(-time.Minute)
	want = "T3 | **SolNode401**  [expired left]"
	if got := f.Render(now); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
