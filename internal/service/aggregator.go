package service

import (
	"context"
	"sync"

	"rate-aggregator/internal/domain/model"
	"rate-aggregator/internal/domain/ports"
	"rate-aggregator/pkg/logger"
)

// RateAggregator composes the cache, the provider selector and the bridging
// logic into the single GetRate contract every consumer calls. Failures are
// uniform: callers get (0, false) and cannot tell a timeout from an
// unsupported pair, because the remediation is the same either way.
type RateAggregator struct {
	cache    ports.RateCache
	selector *ProviderSelector
	fiat     ports.Provider
	official ports.Provider
	log      *logger.Logger
}

func NewRateAggregator(
	cache ports.RateCache,
	selector *ProviderSelector,
	fiat ports.Provider,
	official ports.Provider,
	log *logger.Logger,
) *RateAggregator {
	return &RateAggregator{
		cache:    cache,
		selector: selector,
		fiat:     fiat,
		official: official,
		log:      log,
	}
}

// GetRate returns the spot rate for from -> to. Cache first; on a miss the
// pair is resolved through the providers and written through. Total
// provider exhaustion returns (0, false) and caches nothing, so the very
// next call retries instead of sitting on a TTL-long negative result.
func (a *RateAggregator) GetRate(ctx context.Context, from, to string, caller model.CallerContext) (float64, bool) {
	from = model.NormalizeSymbol(from)
	to = model.NormalizeSymbol(to)

	if from == to {
		return 1.0, true
	}

	pair := model.CurrencyPair{From: from, To: to}
	if sample, ok := a.cache.Get(pair); ok {
		return sample.Value, true
	}

	// Caller preference for the official RUB quote. When CBR cannot quote
	// the pair the request falls through to the market path.
	if caller.RubSource == model.OfficialSourceCentralBank &&
		(from == model.OfficialFiat || to == model.OfficialFiat) {
		if rate, ok := a.official.Fetch(ctx, from, to); ok {
			a.cache.Set(pair, rate)
			a.log.Info("Official rate fetched", "pair", pair.String(), "rate", rate, "provider", a.official.Name())
			return rate, true
		}
	}

	rate, ok := a.resolve(ctx, from, to, caller)
	if !ok {
		a.log.Warn("Rate unavailable", "pair", pair.String())
		return 0, false
	}

	a.cache.Set(pair, rate)
	return rate, true
}

// Convert applies the pair's rate to an amount.
func (a *RateAggregator) Convert(ctx context.Context, amount float64, from, to string, caller model.CallerContext) (float64, bool) {
	rate, ok := a.GetRate(ctx, from, to, caller)
	if !ok {
		return 0, false
	}
	return amount * rate, true
}

// GetAllRates queries every enabled crypto provider concurrently and
// returns whichever quotes arrived, in registry order. It bypasses the
// cache entirely: the comparison feature needs the spread across venues,
// not a single blended value.
func (a *RateAggregator) GetAllRates(ctx context.Context, from, to string, caller model.CallerContext) []model.ProviderRate {
	from = model.NormalizeSymbol(from)
	to = model.NormalizeSymbol(to)

	providers := a.selector.Select(caller)

	values := make([]float64, len(providers))
	found := make([]bool, len(providers))

	var wg sync.WaitGroup
	for i, p := range providers {
		wg.Add(1)
		go func(i int, p ports.Provider) {
			defer wg.Done()
			if rate, ok := p.Fetch(ctx, from, to); ok {
				values[i] = rate
				found[i] = true
			}
		}(i, p)
	}
	wg.Wait()

	rates := make([]model.ProviderRate, 0, len(providers))
	for i, p := range providers {
		if found[i] {
			rates = append(rates, model.ProviderRate{Provider: p.Name(), Rate: values[i]})
		}
	}
	return rates
}
