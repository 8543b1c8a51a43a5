package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rate-aggregator/pkg/logger"
)

var testLog = logger.NewLogger("error")

const testTimeout = 2 * time.Second

func jsonServer(t *testing.T, wantPath, wantQuery, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantPath, r.URL.Path)
		if wantQuery != "" {
			assert.Equal(t, wantQuery, r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestBinance_Fetch(t *testing.T) {
	srv := jsonServer(t, "/api/v3/ticker/price", "symbol=BTCUSDT",
		`{"symbol":"BTCUSDT","price":"50000.12"}`)

	b := NewBinance(srv.URL, testTimeout, testLog)

	rate, ok := b.Fetch(context.Background(), "BTC", "USDT")
	require.True(t, ok)
	assert.InDelta(t, 50000.12, rate, 1e-9)
}

func TestBinance_FetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such symbol", http.StatusBadRequest)
	}))
	t.Cleanup(srv.Close)

	b := NewBinance(srv.URL, testTimeout, testLog)

	_, ok := b.Fetch(context.Background(), "BTC", "XYZ")
	assert.False(t, ok)
}

func TestBinance_FetchMalformedBody(t *testing.T) {
	srv := jsonServer(t, "/api/v3/ticker/price", "", `{"symbol":`)

	b := NewBinance(srv.URL, testTimeout, testLog)

	_, ok := b.Fetch(context.Background(), "BTC", "USDT")
	assert.False(t, ok)
}

func TestBinance_FetchUnreachable(t *testing.T) {
	b := NewBinance("http://127.0.0.1:1", 100*time.Millisecond, testLog)

	_, ok := b.Fetch(context.Background(), "BTC", "USDT")
	assert.False(t, ok)
}

func TestBybit_Fetch(t *testing.T) {
	srv := jsonServer(t, "/v5/market/tickers", "category=spot&symbol=ETHUSDT",
		`{"retCode":0,"result":{"list":[{"lastPrice":"3000.5"}]}}`)

	b := NewBybit(srv.URL, testTimeout, testLog)

	rate, ok := b.Fetch(context.Background(), "ETH", "USDT")
	require.True(t, ok)
	assert.InDelta(t, 3000.5, rate, 1e-9)
}

func TestBybit_FetchErrorCode(t *testing.T) {
	srv := jsonServer(t, "/v5/market/tickers", "",
		`{"retCode":10001,"result":{"list":[]}}`)

	b := NewBybit(srv.URL, testTimeout, testLog)

	_, ok := b.Fetch(context.Background(), "ETH", "USDT")
	assert.False(t, ok)
}

func TestHTX_FetchLowercasesSymbol(t *testing.T) {
	srv := jsonServer(t, "/market/detail/merged", "symbol=btcusdt",
		`{"status":"ok","tick":{"close":49999.9}}`)

	h := NewHTX(srv.URL, testTimeout, testLog)

	rate, ok := h.Fetch(context.Background(), "BTC", "USDT")
	require.True(t, ok)
	assert.InDelta(t, 49999.9, rate, 1e-9)
}

func TestHTX_FetchErrorStatus(t *testing.T) {
	srv := jsonServer(t, "/market/detail/merged", "",
		`{"status":"error","err-msg":"invalid symbol"}`)

	h := NewHTX(srv.URL, testTimeout, testLog)

	_, ok := h.Fetch(context.Background(), "BTC", "XYZ")
	assert.False(t, ok)
}

func TestKuCoin_Fetch(t *testing.T) {
	srv := jsonServer(t, "/api/v1/market/orderbook/level1", "symbol=BTC-USDT",
		`{"code":"200000","data":{"price":"50100.0"}}`)

	k := NewKuCoin(srv.URL, testTimeout, testLog)

	rate, ok := k.Fetch(context.Background(), "BTC", "USDT")
	require.True(t, ok)
	assert.InDelta(t, 50100.0, rate, 1e-9)
}

func TestKuCoin_FetchErrorCode(t *testing.T) {
	srv := jsonServer(t, "/api/v1/market/orderbook/level1", "",
		`{"code":"400100","data":null}`)

	k := NewKuCoin(srv.URL, testTimeout, testLog)

	_, ok := k.Fetch(context.Background(), "BTC", "XYZ")
	assert.False(t, ok)
}

func TestGateio_Fetch(t *testing.T) {
	srv := jsonServer(t, "/api/v4/spot/tickers", "currency_pair=BTC_USDT",
		`[{"currency_pair":"BTC_USDT","last":"50050.3"}]`)

	g := NewGateio(srv.URL, testTimeout, testLog)

	rate, ok := g.Fetch(context.Background(), "BTC", "USDT")
	require.True(t, ok)
	assert.InDelta(t, 50050.3, rate, 1e-9)
}

func TestGateio_FetchEmptyList(t *testing.T) {
	srv := jsonServer(t, "/api/v4/spot/tickers", "", `[]`)

	g := NewGateio(srv.URL, testTimeout, testLog)

	_, ok := g.Fetch(context.Background(), "BTC", "XYZ")
	assert.False(t, ok)
}

func TestBestChange_Fetch(t *testing.T) {
	srv := jsonServer(t, "/key/rates/93-115", "",
		`{"rates":{"93-115":[{"rate":50200.0},{"rate":50150.0}]}}`)

	b := NewBestChange(srv.URL, "key", testTimeout, testLog)

	rate, ok := b.Fetch(context.Background(), "BTC", "USDT")
	require.True(t, ok)
	assert.InDelta(t, 50200.0, rate, 1e-9, "best offer comes first")
}

func TestBestChange_UnknownSymbolSkipsNetwork(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	t.Cleanup(srv.Close)

	b := NewBestChange(srv.URL, "key", testTimeout, testLog)

	_, ok := b.Fetch(context.Background(), "DOGE", "USDT")
	assert.False(t, ok)
	assert.Equal(t, int32(0), requests.Load(), "pairs outside the ID table must not hit the API")
}

func TestExchangeRateAPI_Fetch(t *testing.T) {
	srv := jsonServer(t, "/USD", "",
		`{"base":"USD","rates":{"EUR":0.9,"JPY":150.2}}`)

	e := NewExchangeRateAPI(srv.URL, testTimeout, testLog)

	rate, ok := e.Fetch(context.Background(), "USD", "EUR")
	require.True(t, ok)
	assert.InDelta(t, 0.9, rate, 1e-9)
}

func TestExchangeRateAPI_FetchUnlistedCurrency(t *testing.T) {
	srv := jsonServer(t, "/USD", "",
		`{"base":"USD","rates":{"EUR":0.9}}`)

	e := NewExchangeRateAPI(srv.URL, testTimeout, testLog)

	_, ok := e.Fetch(context.Background(), "USD", "XXX")
	assert.False(t, ok)
}

func TestCBR_FetchInversionIsReciprocal(t *testing.T) {
	srv := jsonServer(t, "/daily_json.js", "",
		`{"Valute":{"USD":{"Nominal":1,"Value":90.5},"JPY":{"Nominal":100,"Value":60.1}}}`)

	c := NewCBR(srv.URL+"/daily_json.js", testTimeout, testLog)

	usdRub, ok := c.Fetch(context.Background(), "USD", "RUB")
	require.True(t, ok)
	assert.InDelta(t, 90.5, usdRub, 1e-9)

	rubUsd, ok := c.Fetch(context.Background(), "RUB", "USD")
	require.True(t, ok)
	assert.InDelta(t, 1.0, usdRub*rubUsd, 1e-9)

	// Nominal of 100 means Value covers 100 units.
	jpyRub, ok := c.Fetch(context.Background(), "JPY", "RUB")
	require.True(t, ok)
	assert.InDelta(t, 0.601, jpyRub, 1e-9)
}

func TestCBR_FetchNonRubPair(t *testing.T) {
	srv := jsonServer(t, "/daily_json.js", "",
		`{"Valute":{"USD":{"Nominal":1,"Value":90.5}}}`)

	c := NewCBR(srv.URL+"/daily_json.js", testTimeout, testLog)

	_, ok := c.Fetch(context.Background(), "USD", "EUR")
	assert.False(t, ok, "CBR only quotes pairs with RUB on one side")
}

func TestCBR_FetchUnknownCurrency(t *testing.T) {
	srv := jsonServer(t, "/daily_json.js", "", `{"Valute":{}}`)

	c := NewCBR(srv.URL+"/daily_json.js", testTimeout, testLog)

	_, ok := c.Fetch(context.Background(), "USD", "RUB")
	assert.False(t, ok)
}
