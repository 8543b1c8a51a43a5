package service

import (
	"rate-aggregator/internal/domain/model"
	"rate-aggregator/internal/domain/ports"
)

// ProviderSelector turns the static provider registry into the ordered
// list a particular caller is allowed to use. The registry order is a
// policy decision: the peer aggregator first for its tight spreads, then
// the order-book exchanges. Selection is pure and does no I/O.
type ProviderSelector struct {
	registry []ports.Provider
}

func NewProviderSelector(registry []ports.Provider) *ProviderSelector {
	return &ProviderSelector{registry: registry}
}

// Select filters out providers the caller disabled, preserving registry
// order for the rest.
func (s *ProviderSelector) Select(caller model.CallerContext) []ports.Provider {
	if caller.EnabledProviders == nil {
		return s.registry
	}

	selected := make([]ports.Provider, 0, len(s.registry))
	for _, p := range s.registry {
		if caller.ProviderEnabled(p.Name()) {
			selected = append(selected, p)
		}
	}
	return selected
}
