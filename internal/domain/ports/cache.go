package ports

import (
	"rate-aggregator/internal/domain/model"
)

// RateCache is a TTL-bounded in-memory store of rate samples. Get treats
// an expired entry exactly like a missing one; callers cannot tell the two
// apart because the remediation (re-fetch) is identical.
type RateCache interface {
	Get(pair model.CurrencyPair) (model.RateSample, bool)
	Set(pair model.CurrencyPair, value float64)
	ClearExpired() int
}
