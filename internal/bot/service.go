package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ordis/cephalon/internal/logger"
	"github.com/ordis/cephalon/internal/market"
	"github.com/ordis/cephalon/internal/worldstate"
)

// Service wires the worldstate fetchers and the market aggregator behind
// the chat command surface.
type Service struct {
	world     *worldstate.Client
	catalog   *market.Catalog
	agg       *market.Aggregator
	newsLimit int
	now       func() time.Time
}

func NewService(world *worldstate.Client, catalog *market.Catalog, agg *market.Aggregator, newsLimit int) *Service {
	return &Service{
		world:     world,
		catalog:   catalog,
		agg:       agg,
		newsLimit: newsLimit,
		now:       time.Now,
	}
}

// Router returns a router with every chat command registered.
func (s *Service) Router() *Router {
	r := NewRouter()
	r.Register("news", s.News)
	r.Register("invasion", s.Invasions)
	r.Register("fissures", s.Fissures)
	r.Register("deals", s.Deals)
	r.Register("refreshtrades", s.RefreshTrades)
	r.Register("price", s.PriceCheck)
	return r
}

// News replies with the most recent news items, condensed.
func (s *Service) News(ctx context.Context, _ string) (string, error) {
	items, err := s.world.News(ctx)
	if err != nil {
		return "", err
	}
	return worldstate.CondensedNews(items, s.newsLimit, s.now()), nil
}

// Invasions replies with every active invasion.
func (s *Service) Invasions(ctx context.Context, _ string) (string, error) {
	invasions, err := s.world.Invasions(ctx)
	if err != nil {
		return "", err
	}
	return worldstate.RenderInvasions(invasions), nil
}

// Fissures replies with every active void fissure.
func (s *Service) Fissures(ctx context.Context, _ string) (string, error) {
	fissures, err := s.world.Fissures(ctx)
	if err != nil {
		return "", err
	}
	return worldstate.RenderFissures(fissures, s.now()), nil
}

// Deals replies with the current daily deal.
func (s *Service) Deals(ctx context.Context, _ string) (string, error) {
	deal, err := s.world.DailyDeal(ctx)
	if err != nil {
		return "", err
	}
	return "Here's what Darvo's got today:\n" + deal.Render(), nil
}

// RefreshTrades reloads the tradable-item directory.
func (s *Service) RefreshTrades(ctx context.Context, _ string) (string, error) {
	if err := s.catalog.Reload(ctx); err != nil {
		return "", err
	}
	logger.Get().Info().Int("items", s.catalog.Len()).Msg("trade items reloaded")
	return "Trade items have been reloaded!", nil
}

// PriceCheck replies with the lowest and average sell price for the item
// named in args.
func (s *Service) PriceCheck(ctx context.Context, args string) (string, error) {
	item := strings.TrimSpace(args)
	if item == "" {
		return "", errors.New("price needs an item name")
	}

	sum, err := s.agg.PriceCheck(ctx, item)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("*Average Price*: **%.1fp** from *%d* online offers \n*Lowest Available Price*: **%dp** from *%s*",
		sum.AveragePrice, sum.OnlineOffers, sum.Lowest.Price, sum.Lowest.Seller), nil
}
