package worldstate

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ordis/cephalon/internal/fetch"
	"github.com/ordis/cephalon/internal/models"
)

const (
	newsPath     = "/news_raw.txt"
	invasionPath = "/invasion.json"
	fissurePath  = "/activemissions.json"
	dealPath     = "/daily_deals.json"
)

// Client fetches the public worldstate feeds (news, invasions, fissures,
// daily deals). It holds no state between calls.
type Client struct {
	http    *resty.Client
	baseURL string
}

func New(httpClient *resty.Client, baseURL string) *Client {
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// expiry matches the {"sec": ...} timestamp wrapper the JSON feeds use.
type expiry struct {
	Sec int64 `json:"sec"`
}

func (e expiry) Time() time.Time {
	return time.Unix(e.Sec, 0)
}

type invasionSideJSON struct {
	Faction     string `json:"Faction"`
	MissionType string `json:"MissionType"`
	Reward      string `json:"Reward"`
	MinLevel    int    `json:"MinLevel"`
	MaxLevel    int    `json:"MaxLevel"`
}

type invasionJSON struct {
	ID           string           `json:"Id"`
	Node         string           `json:"Node"`
	Region       string           `json:"Region"`
	InvaderInfo  invasionSideJSON `json:"InvaderInfo"`
	DefenderInfo invasionSideJSON `json:"DefenderInfo"`
	Percentage   float64          `json:"Percentage"`
	Eta          string           `json:"Eta"`
	Description  string           `json:"Description"`
}

type fissureJSON struct {
	Region   int    `json:"Region"`
	Seed     int64  `json:"Seed"`
	Node     string `json:"Node"`
	Modifier string `json:"Modifier"`
	Expiry   expiry `json:"Expiry"`
}

type dealJSON struct {
	StoreItem     string `json:"StoreItem"`
	Discount      int    `json:"Discount"`
	OriginalPrice int    `json:"OriginalPrice"`
	SalePrice     int    `json:"SalePrice"`
	AmountTotal   int    `json:"AmountTotal"`
	AmountSold    int    `json:"AmountSold"`
	Expiry        expiry `json:"Expiry"`
}

// News retrieves and parses the pipe-delimited news feed.
func (c *Client) News(ctx context.Context) ([]models.NewsItem, error) {
	url := c.baseURL + newsPath
	body, err := fetch.GetBytes(ctx, c.http, url)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(body), "\n")
	// The feed ends with a trailing newline, so the last element is the
	// empty line after it.
	lines = lines[:len(lines)-1]
	if len(lines) == 0 {
		return nil, fetch.EmptyResponse(url)
	}

	items := make([]models.NewsItem, 0, len(lines))
	for _, line := range lines {
		item, err := parseNewsLine(line)
		if err != nil {
			return nil, fetch.Malformed(url, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func parseNewsLine(line string) (models.NewsItem, error) {
	fields := strings.Split(line, "|")
	if len(fields) != 4 {
		return models.NewsItem{}, fmt.Errorf("want 4 fields, got %d in %q", len(fields), line)
	}
	ts, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return models.NewsItem{}, fmt.Errorf("parsing timestamp %q: %w", fields[2], err)
	}
	return models.NewsItem{
		ID:       fields[0],
		Link:     fields[1],
		PostedAt: time.Unix(ts, 0),
		Text:     fields[3],
	}, nil
}

// Invasions retrieves all currently active faction invasions.
func (c *Client) Invasions(ctx context.Context) ([]models.Invasion, error) {
	var raw []invasionJSON
	url, err := c.getJSON(ctx, invasionPath, &raw)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fetch.EmptyResponse(url)
	}

	invasions := make([]models.Invasion, 0, len(raw))
	for _, r := range raw {
		invasions = append(invasions, models.Invasion{
			ID:          r.ID,
			Node:        r.Node,
			Planet:      r.Region,
			Invader:     models.InvasionSide(r.InvaderInfo),
			Defender:    models.InvasionSide(r.DefenderInfo),
			Completion:  r.Percentage,
			ETA:         r.Eta,
			Description: r.Description,
		})
	}
	return invasions, nil
}

// Fissures retrieves all currently active void fissure missions.
func (c *Client) Fissures(ctx context.Context) ([]models.Fissure, error) {
	var raw []fissureJSON
	url, err := c.getJSON(ctx, fissurePath, &raw)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fetch.EmptyResponse(url)
	}

	fissures := make([]models.Fissure, 0, len(raw))
	for _, r := range raw {
		fissures = append(fissures, models.Fissure{
			Region:    r.Region,
			Seed:      r.Seed,
			Node:      r.Node,
			Modifier:  tierCode(r.Modifier),
			ExpiresAt: r.Expiry.Time(),
		})
	}
	return fissures, nil
}

// tierCode reduces a feed modifier like "VoidT1" to its trailing
// two-character tier code.
func tierCode(modifier string) string {
	if len(modifier) <= 2 {
		return modifier
	}
	return modifier[len(modifier)-2:]
}

// DailyDeal retrieves the current storefront deal. The feed is an array
// but only its first entry is ever shown.
func (c *Client) DailyDeal(ctx context.Context) (models.Deal, error) {
	var raw []dealJSON
	url, err := c.getJSON(ctx, dealPath, &raw)
	if err != nil {
		return models.Deal{}, err
	}
	if len(raw) == 0 {
		return models.Deal{}, fetch.EmptyResponse(url)
	}

	d := raw[0]
	return models.Deal{
		Item:          d.StoreItem,
		Discount:      d.Discount,
		OriginalPrice: d.OriginalPrice,
		SalePrice:     d.SalePrice,
		AmountTotal:   d.AmountTotal,
		AmountSold:    d.AmountSold,
		ExpiresAt:     d.Expiry.Time(),
	}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) (string, error) {
	url := c.baseURL + path
	body, err := fetch.GetBytes(ctx, c.http, url)
	if err != nil {
		return url, err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return url, fetch.Malformed(url, err)
	}
	return url, nil
}
