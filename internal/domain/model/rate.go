package model

import (
	"fmt"
	"time"
)

// CurrencyPair is an ordered (from, to) combination. Ordering matters:
// (A,B) and (B,A) are distinct cache entries, there is no implicit
// reciprocal caching.
type CurrencyPair struct {
	From string
	To   string
}

func (p CurrencyPair) String() string {
	return fmt.Sprintf("%s/%s", p.From, p.To)
}

// CacheKey is the directional key used by the rate cache.
func (p CurrencyPair) CacheKey() string {
	return p.From + "_" + p.To
}

// RateSample is one cached quote. Immutable once stored; a refresh replaces
// the whole sample.
type RateSample struct {
	Value     float64
	FetchedAt time.Time
}

// ProviderRate is a single provider's quote, used by the comparison path.
type ProviderRate struct {
	Provider string  `json:"provider"`
	Rate     float64 `json:"rate"`
}

// OfficialSource selects where RUB quotes come from.
type OfficialSource string

const (
	OfficialSourceMarket      OfficialSource = "market"
	OfficialSourceCentralBank OfficialSource = "cbr"
)

// CallerContext carries the per-caller preferences the aggregation core
// reads. It is supplied by the surrounding application and never persisted
// here.
type CallerContext struct {
	// EnabledProviders maps provider name to enabled flag. A nil map means
	// all providers are enabled; names absent from a non-nil map default
	// to enabled.
	EnabledProviders map[string]bool

	// RubSource picks the official central-bank quote for RUB pairs when
	// set to OfficialSourceCentralBank.
	RubSource OfficialSource
}

// ProviderEnabled reports whether the caller allows the named provider.
func (c CallerContext) ProviderEnabled(name string) bool {
	if c.EnabledProviders == nil {
		return true
	}
	enabled, ok := c.EnabledProviders[name]
	return !ok || enabled
}
