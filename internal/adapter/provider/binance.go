package provider

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"rate-aggregator/pkg/logger"
)

type Binance struct {
	baseURL string
	client  *http.Client
	log     *logger.Logger
}

type binanceTickerResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

func NewBinance(baseURL string, timeout time.Duration, log *logger.Logger) *Binance {
	return &Binance{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (b *Binance) Name() string { return "Binance" }

func (b *Binance) Fetch(ctx context.Context, from, to string) (float64, bool) {
	url := fmt.Sprintf("%s/api/v3/ticker/price?symbol=%s%s", b.baseURL, from, to)

	var resp binanceTickerResponse
	if err := getJSON(ctx, b.client, url, &resp); err != nil {
		b.log.Debug("Binance fetch failed", "pair", from+"/"+to, "error", err)
		return 0, false
	}

	price, err := strconv.ParseFloat(resp.Price, 64)
	if err != nil || price <= 0 {
		b.log.Debug("Binance returned unusable price", "pair", from+"/"+to, "price", resp.Price)
		return 0, false
	}

	return price, true
}
