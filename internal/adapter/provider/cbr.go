package provider

import (
	"context"
	"net/http"
	"time"

	"rate-aggregator/internal/domain/model"
	"rate-aggregator/pkg/logger"
)

// CBR serves the central bank's official daily quotes. It only quotes
// pairs with RUB on one side and sits outside the crypto fallback chain;
// the aggregator consults it solely on explicit caller preference.
type CBR struct {
	url    string
	client *http.Client
	log    *logger.Logger
}

type cbrDailyResponse struct {
	Valute map[string]struct {
		Nominal float64 `json:"Nominal"`
		Value   float64 `json:"Value"`
	} `json:"Valute"`
}

func NewCBR(url string, timeout time.Duration, log *logger.Logger) *CBR {
	return &CBR{
		url:    url,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

func (c *CBR) Name() string { return "CBR" }

// Fetch returns the official rate for a RUB pair. The daily feed quotes
// Value rubles per Nominal units of the foreign currency, so the RUB-first
// direction needs the inversion while the RUB-last direction does not.
func (c *CBR) Fetch(ctx context.Context, from, to string) (float64, bool) {
	var resp cbrDailyResponse
	if err := getJSON(ctx, c.client, c.url, &resp); err != nil {
		c.log.Debug("CBR fetch failed", "pair", from+"/"+to, "error", err)
		return 0, false
	}

	switch {
	case from == model.OfficialFiat:
		quote, ok := resp.Valute[to]
		if !ok || quote.Value <= 0 || quote.Nominal <= 0 {
			c.log.Debug("CBR has no quote", "currency", to)
			return 0, false
		}
		return quote.Nominal / quote.Value, true

	case to == model.OfficialFiat:
		quote, ok := resp.Valute[from]
		if !ok || quote.Value <= 0 || quote.Nominal <= 0 {
			c.log.Debug("CBR has no quote", "currency", from)
			return 0, false
		}
		return quote.Value / quote.Nominal, true

	default:
		return 0, false
	}
}
