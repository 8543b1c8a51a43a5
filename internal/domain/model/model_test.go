package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCrypto(t *testing.T) {
	assert.True(t, IsCrypto("BTC"))
	assert.True(t, IsCrypto("USDT"))
	assert.False(t, IsCrypto("USD"))
	assert.False(t, IsCrypto("RUB"))
	assert.False(t, IsCrypto("btc"), "classification is case-sensitive; symbols are normalized upstream")
}

func TestNormalizeSymbol(t *testing.T) {
	assert.Equal(t, "BTC", NormalizeSymbol(" btc "))
	assert.Equal(t, "EUR", NormalizeSymbol("EUR"))
}

func TestCurrencyPair_CacheKeyIsDirectional(t *testing.T) {
	ab := CurrencyPair{From: "BTC", To: "USD"}
	ba := CurrencyPair{From: "USD", To: "BTC"}

	assert.Equal(t, "BTC_USD", ab.CacheKey())
	assert.NotEqual(t, ab.CacheKey(), ba.CacheKey())
}

func TestCallerContext_ProviderEnabled(t *testing.T) {
	var defaultCaller CallerContext
	assert.True(t, defaultCaller.ProviderEnabled("Binance"), "nil map enables everything")

	caller := CallerContext{EnabledProviders: map[string]bool{"Binance": false}}
	assert.False(t, caller.ProviderEnabled("Binance"))
	assert.True(t, caller.ProviderEnabled("Bybit"), "names absent from the map default to enabled")
}
