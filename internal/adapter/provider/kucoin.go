package provider

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"rate-aggregator/pkg/logger"
)

type KuCoin struct {
	baseURL string
	client  *http.Client
	log     *logger.Logger
}

type kucoinLevel1Response struct {
	Code string `json:"code"`
	Data struct {
		Price string `json:"price"`
	} `json:"data"`
}

func NewKuCoin(baseURL string, timeout time.Duration, log *logger.Logger) *KuCoin {
	return &KuCoin{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (k *KuCoin) Name() string { return "KuCoin" }

func (k *KuCoin) Fetch(ctx context.Context, from, to string) (float64, bool) {
	url := fmt.Sprintf("%s/api/v1/market/orderbook/level1?symbol=%s-%s", k.baseURL, from, to)

	var resp kucoinLevel1Response
	if err := getJSON(ctx, k.client, url, &resp); err != nil {
		k.log.Debug("KuCoin fetch failed", "pair", from+"/"+to, "error", err)
		return 0, false
	}

	if resp.Code != "200000" {
		k.log.Debug("KuCoin has no quote", "pair", from+"/"+to, "code", resp.Code)
		return 0, false
	}

	price, err := strconv.ParseFloat(resp.Data.Price, 64)
	if err != nil || price <= 0 {
		k.log.Debug("KuCoin returned unusable price", "pair", from+"/"+to, "price", resp.Data.Price)
		return 0, false
	}

	return price, true
}
