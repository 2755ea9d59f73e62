package market

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordis/cephalon/internal/fetch"
)

const orderBookFixture = `{
  "response": {
    "sell": [
      {"ingame_name": "TennoTrader", "online_ingame": true, "price": 20},
      {"ingame_name": "Offline_Joe", "online_ingame": false, "price": 5},
      {"ingame_name": "VoidRunner", "online_ingame": true, "price": 10},
      {"ingame_name": "LateBird", "online_ingame": true, "price": 30}
    ]
  }
}`

func newAggregator(t *testing.T, orderBody string) (*Aggregator, *string) {
	t.Helper()
	var lastPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/get_all_items_v2" {
			w.Write([]byte(itemsFixture))
			return
		}
		lastPath = r.URL.EscapedPath()
		w.Write([]byte(orderBody))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(fetch.NewClient(5*time.Second), srv.URL)
	catalog := NewCatalog(client)
	require.NoError(t, catalog.Reload(context.Background()))
	return NewAggregator(client, catalog), &lastPath
}

func TestPriceCheck(t *testing.T) {
	agg, lastPath := newAggregator(t, orderBookFixture)

	sum, err := agg.PriceCheck(context.Background(), "fluctus stock")
	require.NoError(t, err)

	// Offline sellers are excluded even when they undercut everyone.
	assert.Equal(t, 10, sum.Lowest.Price)
	assert.Equal(t, "VoidRunner", sum.Lowest.Seller)
	assert.Equal(t, 20.0, sum.AveragePrice)
	assert.Equal(t, 3, sum.OnlineOffers)

	// The order-book route uses title-cased, path-escaped segments.
	assert.Equal(t, "/get_orders/Blueprint/Fluctus%20Stock", *lastPath)
}

func TestPriceCheckAverageRounding(t *testing.T) {
	agg, _ := newAggregator(t, `{"response": {"sell": [
		{"ingame_name": "A", "online_ingame": true, "price": 10},
		{"ingame_name": "B", "online_ingame": true, "price": 11},
		{"ingame_name": "C", "online_ingame": true, "price": 11}
	]}}`)

	sum, err := agg.PriceCheck(context.Background(), "fluctus stock")
	require.NoError(t, err)
	assert.Equal(t, 10.7, sum.AveragePrice)
}

func TestPriceCheckLowestTieKeepsFirst(t *testing.T) {
	agg, _ := newAggregator(t, `{"response": {"sell": [
		{"ingame_name": "First", "online_ingame": true, "price": 12},
		{"ingame_name": "Second", "online_ingame": true, "price": 12}
	]}}`)

	sum, err := agg.PriceCheck(context.Background(), "fluctus stock")
	require.NoError(t, err)
	assert.Equal(t, "First", sum.Lowest.Seller)
}

func TestPriceCheckUnknownItem(t *testing.T) {
	agg, _ := newAggregator(t, orderBookFixture)

	_, err := agg.PriceCheck(context.Background(), "no such thing")
	var unknown *UnknownItemError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "no such thing", unknown.Item)
}

func TestPriceCheckVoidRelicExcluded(t *testing.T) {
	agg, _ := newAggregator(t, orderBookFixture)

	// The relic is literally present in the catalog but still refused.
	_, err := agg.PriceCheck(context.Background(), "Lith F1")
	var unknown *UnknownItemError
	require.ErrorAs(t, err, &unknown)
}

func TestPriceCheckNoOnlineSellers(t *testing.T) {
	agg, _ := newAggregator(t, `{"response": {"sell": [
		{"ingame_name": "Offline_Joe", "online_ingame": false, "price": 5},
		{"ingame_name": "Gone_Fishing", "online_ingame": false, "price": 8}
	]}}`)

	_, err := agg.PriceCheck(context.Background(), "fluctus stock")
	var nobody *NoOnlineSellersError
	require.ErrorAs(t, err, &nobody)
	assert.Equal(t, "fluctus stock", nobody.Item)
}

func TestPriceCheckEmptyOrderBook(t *testing.T) {
	agg, _ := newAggregator(t, `{"response": {"sell": []}}`)

	_, err := agg.PriceCheck(context.Background(), "fluctus stock")
	require.Error(t, err)
	assert.True(t, fetch.IsKind(err, fetch.KindEmptyResponse))
	var nobody *NoOnlineSellersError
	assert.False(t, errors.As(err, &nobody), "empty book is a fetch failure, not a seller condition")
}
