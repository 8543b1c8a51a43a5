package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rate-aggregator/internal/domain/model"
	"rate-aggregator/internal/domain/ports"
)

func registryNames(providers []ports.Provider) []string {
	names := make([]string, 0, len(providers))
	for _, p := range providers {
		names = append(names, p.Name())
	}
	return names
}

func TestProviderSelector_Select(t *testing.T) {
	registry := []ports.Provider{
		&mockProvider{name: "BestChange"},
		&mockProvider{name: "Binance"},
		&mockProvider{name: "Bybit"},
	}
	selector := NewProviderSelector(registry)

	testCases := []struct {
		name     string
		caller   model.CallerContext
		expected []string
	}{
		{
			name:     "no preference keeps full registry order",
			caller:   model.CallerContext{},
			expected: []string{"BestChange", "Binance", "Bybit"},
		},
		{
			name: "disabled provider is filtered, order preserved",
			caller: model.CallerContext{
				EnabledProviders: map[string]bool{"Binance": false},
			},
			expected: []string{"BestChange", "Bybit"},
		},
		{
			name: "unknown names in the preference map change nothing",
			caller: model.CallerContext{
				EnabledProviders: map[string]bool{"Kraken": false},
			},
			expected: []string{"BestChange", "Binance", "Bybit"},
		},
		{
			name: "everything disabled yields an empty chain",
			caller: model.CallerContext{
				EnabledProviders: map[string]bool{
					"BestChange": false, "Binance": false, "Bybit": false,
				},
			},
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			selected := selector.Select(tc.caller)
			require.Len(t, selected, len(tc.expected))
			assert.Equal(t, tc.expected, registryNames(selected))
		})
	}
}
