package service

import (
	"context"

	"rate-aggregator/internal/domain/model"
)

// resolve classifies the pair and routes it to the single-domain lookup or
// the pivot composition. A bridged rate compounds two bid/ask spreads and
// is an accepted approximation of a hypothetical direct quote, not a
// guarantee of one.
func (a *RateAggregator) resolve(ctx context.Context, from, to string, caller model.CallerContext) (float64, bool) {
	fromCrypto := model.IsCrypto(from)
	toCrypto := model.IsCrypto(to)

	switch {
	case fromCrypto && !toCrypto:
		// crypto -> fiat: crypto/USDT times USD/fiat.
		cryptoUsdt, ok := a.cryptoRate(ctx, from, model.PivotCrypto, caller)
		if !ok {
			return 0, false
		}
		usdFiat, ok := a.fiatRate(ctx, model.PivotFiat, to)
		if !ok {
			return 0, false
		}
		return cryptoUsdt * usdFiat, true

	case !fromCrypto && toCrypto:
		// fiat -> crypto: fiat/USD divided by crypto/USDT.
		fiatUsd, ok := a.fiatRate(ctx, from, model.PivotFiat)
		if !ok {
			return 0, false
		}
		cryptoUsdt, ok := a.cryptoRate(ctx, to, model.PivotCrypto, caller)
		if !ok || cryptoUsdt == 0 {
			return 0, false
		}
		return fiatUsd / cryptoUsdt, true

	case fromCrypto && toCrypto:
		// Crypto pairs are assumed directly quotable on the exchanges.
		return a.cryptoRate(ctx, from, to, caller)

	default:
		return a.fiatRate(ctx, from, to)
	}
}

// cryptoRate walks the caller's provider chain for a direct crypto quote,
// first success wins. The leg caches under its own pair key so a shared
// pivot leg is reused across different bridged pairs.
func (a *RateAggregator) cryptoRate(ctx context.Context, from, to string, caller model.CallerContext) (float64, bool) {
	if from == to {
		return 1.0, true
	}

	pair := model.CurrencyPair{From: from, To: to}
	if sample, ok := a.cache.Get(pair); ok {
		return sample.Value, true
	}

	for _, p := range a.selector.Select(caller) {
		rate, ok := p.Fetch(ctx, from, to)
		if !ok {
			continue
		}
		a.cache.Set(pair, rate)
		a.log.Info("Crypto rate fetched", "pair", pair.String(), "rate", rate, "provider", p.Name())
		return rate, true
	}

	return 0, false
}

// fiatRate fetches a direct fiat quote, cached under the leg's own key.
func (a *RateAggregator) fiatRate(ctx context.Context, from, to string) (float64, bool) {
	if from == to {
		return 1.0, true
	}

	pair := model.CurrencyPair{From: from, To: to}
	if sample, ok := a.cache.Get(pair); ok {
		return sample.Value, true
	}

	rate, ok := a.fiat.Fetch(ctx, from, to)
	if !ok {
		return 0, false
	}

	a.cache.Set(pair, rate)
	a.log.Info("Fiat rate fetched", "pair", pair.String(), "rate", rate)
	return rate, true
}
