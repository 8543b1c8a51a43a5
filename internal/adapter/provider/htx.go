package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"rate-aggregator/pkg/logger"
)

type HTX struct {
	baseURL string
	client  *http.Client
	log     *logger.Logger
}

type htxMergedResponse struct {
	Status string `json:"status"`
	Tick   struct {
		Close float64 `json:"close"`
	} `json:"tick"`
}

func NewHTX(baseURL string, timeout time.Duration, log *logger.Logger) *HTX {
	return &HTX{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (h *HTX) Name() string { return "HTX" }

func (h *HTX) Fetch(ctx context.Context, from, to string) (float64, bool) {
	// HTX quotes symbols in lowercase, e.g. btcusdt.
	symbol := strings.ToLower(from + to)
	url := fmt.Sprintf("%s/market/detail/merged?symbol=%s", h.baseURL, symbol)

	var resp htxMergedResponse
	if err := getJSON(ctx, h.client, url, &resp); err != nil {
		h.log.Debug("HTX fetch failed", "pair", from+"/"+to, "error", err)
		return 0, false
	}

	if resp.Status != "ok" || resp.Tick.Close <= 0 {
		h.log.Debug("HTX has no quote", "pair", from+"/"+to, "status", resp.Status)
		return 0, false
	}

	return resp.Tick.Close, true
}
