package model

import "strings"

// Bridging constants. Every supported crypto has a liquid USDT quote and
// every fiat has a USD quote, so a mixed pair is always resolvable through
// this pivot without a full matrix of direct pairs.
const (
	PivotCrypto = "USDT"
	PivotFiat   = "USD"

	// OfficialFiat is the one fiat currency for which callers may prefer
	// the central-bank official quote over the market rate.
	OfficialFiat = "RUB"
)

var cryptoSymbols = map[string]struct{}{
	"BTC": {}, "ETH": {}, "USDT": {}, "BNB": {}, "SOL": {},
	"XRP": {}, "ADA": {}, "DOGE": {}, "DOT": {}, "MATIC": {},
	"SHIB": {}, "AVAX": {}, "TRX": {}, "LINK": {}, "UNI": {},
	"ATOM": {}, "LTC": {}, "XLM": {}, "BCH": {}, "ALGO": {},
}

// IsCrypto reports whether the symbol belongs to the supported crypto set.
// Anything outside the set is treated as fiat.
func IsCrypto(symbol string) bool {
	_, ok := cryptoSymbols[symbol]
	return ok
}

// NormalizeSymbol uppercases a caller-supplied symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
