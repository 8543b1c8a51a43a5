package provider

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"rate-aggregator/pkg/logger"
)

type Bybit struct {
	baseURL string
	client  *http.Client
	log     *logger.Logger
}

type bybitTickersResponse struct {
	RetCode int `json:"retCode"`
	Result  struct {
		List []struct {
			LastPrice string `json:"lastPrice"`
		} `json:"list"`
	} `json:"result"`
}

func NewBybit(baseURL string, timeout time.Duration, log *logger.Logger) *Bybit {
	return &Bybit{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (b *Bybit) Name() string { return "Bybit" }

func (b *Bybit) Fetch(ctx context.Context, from, to string) (float64, bool) {
	url := fmt.Sprintf("%s/v5/market/tickers?category=spot&symbol=%s%s", b.baseURL, from, to)

	var resp bybitTickersResponse
	if err := getJSON(ctx, b.client, url, &resp); err != nil {
		b.log.Debug("Bybit fetch failed", "pair", from+"/"+to, "error", err)
		return 0, false
	}

	if resp.RetCode != 0 || len(resp.Result.List) == 0 {
		b.log.Debug("Bybit has no quote", "pair", from+"/"+to, "ret_code", resp.RetCode)
		return 0, false
	}

	price, err := strconv.ParseFloat(resp.Result.List[0].LastPrice, 64)
	if err != nil || price <= 0 {
		b.log.Debug("Bybit returned unusable price", "pair", from+"/"+to, "price", resp.Result.List[0].LastPrice)
		return 0, false
	}

	return price, true
}
