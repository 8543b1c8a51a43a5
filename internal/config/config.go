package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Server    ServerConfig
	Cache     CacheConfig
	Providers ProvidersConfig
}

type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" env-default:"120s"`
}

type CacheConfig struct {
	TTL time.Duration `env:"CACHE_TTL" env-default:"60s"`
	// SweepInterval enables the optional background eviction sweep; zero
	// leaves eviction fully lazy.
	SweepInterval time.Duration `env:"CACHE_SWEEP_INTERVAL" env-default:"0s"`
}

type ProvidersConfig struct {
	ExchangeTimeout time.Duration `env:"PROVIDER_TIMEOUT" env-default:"5s"`

	BestChangeBaseURL string `env:"BESTCHANGE_BASE_URL" env-default:"https://www.bestchange.app/v2"`
	BestChangeAPIKey  string `env:"BESTCHANGE_API_KEY" env-default:""`
	BinanceBaseURL    string `env:"BINANCE_BASE_URL" env-default:"https://api.binance.com"`
	BybitBaseURL      string `env:"BYBIT_BASE_URL" env-default:"https://api.bybit.com"`
	HTXBaseURL        string `env:"HTX_BASE_URL" env-default:"https://api.huobi.pro"`
	KuCoinBaseURL     string `env:"KUCOIN_BASE_URL" env-default:"https://api.kucoin.com"`
	GateioBaseURL     string `env:"GATEIO_BASE_URL" env-default:"https://api.gateio.ws"`

	FiatBaseURL string        `env:"FIAT_API_BASE_URL" env-default:"https://api.exchangerate-api.com/v4/latest"`
	CBRURL      string        `env:"CBR_API_URL" env-default:"https://www.cbr-xml-daily.ru/daily_json.js"`
	CBRTimeout  time.Duration `env:"CBR_TIMEOUT" env-default:"10s"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
