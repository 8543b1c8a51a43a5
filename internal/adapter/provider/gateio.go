package provider

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"rate-aggregator/pkg/logger"
)

type Gateio struct {
	baseURL string
	client  *http.Client
	log     *logger.Logger
}

type gateioTicker struct {
	CurrencyPair string `json:"currency_pair"`
	Last         string `json:"last"`
}

func NewGateio(baseURL string, timeout time.Duration, log *logger.Logger) *Gateio {
	return &Gateio{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (g *Gateio) Name() string { return "Gate.io" }

func (g *Gateio) Fetch(ctx context.Context, from, to string) (float64, bool) {
	url := fmt.Sprintf("%s/api/v4/spot/tickers?currency_pair=%s_%s", g.baseURL, from, to)

	var resp []gateioTicker
	if err := getJSON(ctx, g.client, url, &resp); err != nil {
		g.log.Debug("Gate.io fetch failed", "pair", from+"/"+to, "error", err)
		return 0, false
	}

	if len(resp) == 0 {
		g.log.Debug("Gate.io has no quote", "pair", from+"/"+to)
		return 0, false
	}

	price, err := strconv.ParseFloat(resp[0].Last, 64)
	if err != nil || price <= 0 {
		g.log.Debug("Gate.io returned unusable price", "pair", from+"/"+to, "price", resp[0].Last)
		return 0, false
	}

	return price, true
}
