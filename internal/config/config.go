package config

import (
	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/dperaltab/tienda-admin/internal/middlewares/logger"
)

type Config struct {
	Address string `env:"RUN_ADDRESS"`

	StoreAPIURL   string `env:"STORE_API_URL"`
	StoreAPIToken string `env:"STORE_API_TOKEN"`

	JWTSecret string `env:"JWT_SECRET"`

	LogLevel string `env:"LOG_LEVEL"`

	ReceiptPageSize int `env:"RECEIPT_PAGE_SIZE" envDefault:"20"`
}

func InitConfig() *Config {
	_ = godotenv.Load()

	flags := Flags{}
	flags.Init()

	cfg := Config{
		Address:     flags.address,
		StoreAPIURL: flags.storeAPIURL,
		LogLevel:    flags.logLevel,
	}
	cfg.parseEnv()

	return &cfg
}

func (cfg *Config) parseEnv() {
	err := env.Parse(cfg)
	if err != nil {
		logger.Log.Warn("Getting an error while parsing the configuration", zap.String("err", err.Error()))
	}
}
