package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"rate-aggregator/pkg/logger"
)

// BestChange is the peer-aggregator marketplace. It addresses assets by
// opaque internal IDs rather than ticker symbols, so only pairs present in
// the ID table are quotable; anything else is unavailable without a
// network call.
type BestChange struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     *logger.Logger
	ids     map[string]int
}

type bestchangeRatesResponse struct {
	Rates map[string][]struct {
		Rate float64 `json:"rate"`
	} `json:"rates"`
}

func NewBestChange(baseURL, apiKey string, timeout time.Duration, log *logger.Logger) *BestChange {
	return &BestChange{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		log:     log,
		ids: map[string]int{
			"BTC":  93,
			"USDT": 115,
			"ETH":  139,
			"RUB":  643,
		},
	}
}

func (b *BestChange) Name() string { return "BestChange" }

func (b *BestChange) Fetch(ctx context.Context, from, to string) (float64, bool) {
	fromID, fromOK := b.ids[from]
	toID, toOK := b.ids[to]
	if !fromOK || !toOK {
		b.log.Debug("BestChange has no ID for pair", "pair", from+"/"+to)
		return 0, false
	}

	url := fmt.Sprintf("%s/%s/rates/%d-%d", b.baseURL, b.apiKey, fromID, toID)

	var resp bestchangeRatesResponse
	if err := getJSON(ctx, b.client, url, &resp); err != nil {
		b.log.Debug("BestChange fetch failed", "pair", from+"/"+to, "error", err)
		return 0, false
	}

	// Offers come sorted best-first; the head of the list is the tightest
	// spread currently on the marketplace.
	offers := resp.Rates[fmt.Sprintf("%d-%d", fromID, toID)]
	if len(offers) == 0 || offers[0].Rate <= 0 {
		b.log.Debug("BestChange has no offers", "pair", from+"/"+to)
		return 0, false
	}

	return offers[0].Rate, true
}
