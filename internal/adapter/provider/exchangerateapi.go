package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"rate-aggregator/pkg/logger"
)

// ExchangeRateAPI is the fiat provider. One request returns every rate for
// a base currency; the adapter indexes into that map for the single pair it
// was asked about.
type ExchangeRateAPI struct {
	baseURL string
	client  *http.Client
	log     *logger.Logger
}

type exchangeRateAPIResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func NewExchangeRateAPI(baseURL string, timeout time.Duration, log *logger.Logger) *ExchangeRateAPI {
	return &ExchangeRateAPI{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (e *ExchangeRateAPI) Name() string { return "ExchangeRate-API" }

func (e *ExchangeRateAPI) Fetch(ctx context.Context, from, to string) (float64, bool) {
	url := fmt.Sprintf("%s/%s", e.baseURL, from)

	var resp exchangeRateAPIResponse
	if err := getJSON(ctx, e.client, url, &resp); err != nil {
		e.log.Debug("Fiat rate fetch failed", "pair", from+"/"+to, "error", err)
		return 0, false
	}

	rate, ok := resp.Rates[to]
	if !ok || rate <= 0 {
		e.log.Debug("Fiat rate not listed", "pair", from+"/"+to)
		return 0, false
	}

	return rate, true
}
