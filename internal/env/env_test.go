package env

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvCfgDefaults(t *testing.T) {
	unset(t, "APP_PORT", "APP_BANK_NAME", "APP_CURRENCY", "APP_MAX_SCALE", "APP_READ_TIMEOUT", "APP_WRITE_TIMEOUT", "APP_SHUTDOWN_TIMEOUT")

	cfg, err := GetEnvCfg()

	assert.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "Banco Pichincha", cfg.BankName)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, 8, cfg.MaxScale)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestGetEnvCfgOverrides(t *testing.T) {
	set(t, map[string]string{
		"APP_PORT":          "9090",
		"APP_BANK_NAME":     "Banco Guayaquil",
		"APP_CURRENCY":      "EUR",
		"APP_MAX_SCALE":     "2",
		"APP_WRITE_TIMEOUT": "1m",
	})

	cfg, err := GetEnvCfg()

	assert.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "Banco Guayaquil", cfg.BankName)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, 2, cfg.MaxScale)
	assert.Equal(t, time.Minute, cfg.WriteTimeout)
}

func TestGetEnvCfgUnsupportedCurrency(t *testing.T) {
	set(t, map[string]string{"APP_CURRENCY": "JPY"})

	_, err := GetEnvCfg()

	assert.EqualError(t, err, `currency "JPY" is not supported`)
}

func TestGetEnvCfgNegativeMaxScale(t *testing.T) {
	set(t, map[string]string{"APP_MAX_SCALE": "-1"})

	_, err := GetEnvCfg()

	assert.EqualError(t, err, "max scale -1 can't be negative")
}

func TestGetEnvCfgInvalidPort(t *testing.T) {
	set(t, map[string]string{"APP_PORT": "http"})

	_, err := GetEnvCfg()

	assert.Error(t, err)
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("EUR"))
	assert.True(t, Supported("GBP"))
	assert.True(t, Supported("USD"))
	assert.False(t, Supported("usd"))
	assert.False(t, Supported(""))
}

func set(t *testing.T, vars map[string]string) {
	t.Helper()

	for k, v := range vars {
		old, ok := os.LookupEnv(k)
		if err := os.Setenv(k, v); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}

		k := k
		t.Cleanup(func() {
			if ok {
				_ = os.Setenv(k, old)
			} else {
				_ = os.Unsetenv(k)
			}
		})
	}
}

func unset(t *testing.T, keys ...string) {
	t.Helper()

	for _, k := range keys {
		old, ok := os.LookupEnv(k)
		_ = os.Unsetenv(k)

		k := k
		t.Cleanup(func() {
			if ok {
				_ = os.Setenv(k, old)
			}
		})
	}
}
