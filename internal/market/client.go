package market

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ordis/cephalon/internal/fetch"
	"github.com/ordis/cephalon/internal/models"
)

// Item is one entry of the tradable-item directory.
type Item struct {
	Name string `json:"item_name"`
	Type string `json:"item_type"`
}

type orderJSON struct {
	Seller string `json:"ingame_name"`
	Online bool   `json:"online_ingame"`
	Price  int    `json:"price"`
}

type orderBookJSON struct {
	Response struct {
		Sell []orderJSON `json:"sell"`
	} `json:"response"`
}

// Client talks to the market API.
type Client struct {
	http    *resty.Client
	baseURL string
}

func NewClient(httpClient *resty.Client, baseURL string) *Client {
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Items fetches the full tradable-item directory.
func (c *Client) Items(ctx context.Context) ([]Item, error) {
	u := c.baseURL + "/get_all_items_v2"
	body, err := fetch.GetBytes(ctx, c.http, u)
	if err != nil {
		return nil, err
	}

	var items []Item
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fetch.Malformed(u, err)
	}
	if len(items) == 0 {
		return nil, fetch.EmptyResponse(u)
	}
	return items, nil
}

// ordersURL builds the order-book route. The upstream wants the type and
// item name title-cased; escaping is left to the URL encoder. The caser
// is built per call: a cases.Caser carries transformer state and is not
// safe to share between concurrent price checks.
func (c *Client) ordersURL(itemType, item string) string {
	caser := cases.Title(language.English)
	return c.baseURL + "/get_orders/" +
		url.PathEscape(caser.String(itemType)) + "/" +
		url.PathEscape(caser.String(item))
}

// SellOrders fetches the current sell side of the order book for an item
// of the given type.
func (c *Client) SellOrders(ctx context.Context, itemType, item string) ([]models.Order, error) {
	u := c.ordersURL(itemType, item)
	body, err := fetch.GetBytes(ctx, c.http, u)
	if err != nil {
		return nil, err
	}

	var book orderBookJSON
	if err := json.Unmarshal(body, &book); err != nil {
		return nil, fetch.Malformed(u, err)
	}
	if len(book.Response.Sell) == 0 {
		return nil, fetch.EmptyResponse(u)
	}

	orders := make([]models.Order, 0, len(book.Response.Sell))
	for _, o := range book.Response.Sell {
		orders = append(orders, models.Order{
			Seller: o.Seller,
			Online: o.Online,
			Price:  o.Price,
		})
	}
	return orders, nil
}
