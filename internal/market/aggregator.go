package market

import (
	"context"
	"math"

	"github.com/ordis/cephalon/internal/models"
)

// PriceSummary is the result of a price check over online sellers.
type PriceSummary struct {
	Lowest       models.Order
	AveragePrice float64 // rounded to one decimal place
	OnlineOffers int
}

// Aggregator resolves an item through the catalog and aggregates its
// live sell orders.
type Aggregator struct {
	client  *Client
	catalog *Catalog
}

func NewAggregator(client *Client, catalog *Catalog) *Aggregator {
	return &Aggregator{client: client, catalog: catalog}
}

// PriceCheck returns the lowest and average sell price across sellers
// that are online right now. Ties on the lowest price keep the order
// that appeared first in the book.
func (a *Aggregator) PriceCheck(ctx context.Context, item string) (PriceSummary, error) {
	itemType, ok := a.catalog.Lookup(item)
	if !ok || itemType == typeVoidRelic {
		return PriceSummary{}, &UnknownItemError{Item: item}
	}

	orders, err := a.client.SellOrders(ctx, itemType, item)
	if err != nil {
		return PriceSummary{}, err
	}

	var online []models.Order
	for _, o := range orders {
		if o.Online {
			online = append(online, o)
		}
	}
	if len(online) == 0 {
		return PriceSummary{}, &NoOnlineSellersError{Item: item}
	}

	lowest := online[0]
	total := 0
	for _, o := range online {
		total += o.Price
		if o.Price < lowest.Price {
			lowest = o
		}
	}

	avg := math.Round(float64(total)/float64(len(online))*10) / 10
	return PriceSummary{
		Lowest:       lowest,
		AveragePrice: avg,
		OnlineOffers: len(online),
	}, nil
}
