package env

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const prefix = "APP"

type Cfg struct {
	Port     int    `envconfig:"PORT" default:"8080"`
	BankName string `envconfig:"BANK_NAME" default:"Banco Pichincha"`
	Currency string `envconfig:"CURRENCY" default:"USD"`
	MaxScale int    `envconfig:"MAX_SCALE" default:"8"`

	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

func GetEnvCfg() (Cfg, error) {
	var cfg Cfg

	if err := envconfig.Process(prefix, &cfg); err != nil {
		return Cfg{}, errors.Wrap(err, "parse environment variables")
	}

	if !Supported(cfg.Currency) {
		return Cfg{}, errors.Errorf("currency %q is not supported", cfg.Currency)
	}

	if cfg.MaxScale < 0 {
		return Cfg{}, errors.Errorf("max scale %d can't be negative", cfg.MaxScale)
	}

	return cfg, nil
}

func Supported(currency string) bool {
	return currency == "EUR" || currency == "GBP" || currency == "USD"
}
