package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	models "github.com/pix-donation-gateway/internal/application/payment/models"
)

const (
	defaultProviderURL     = "https://api.nivuspayments.com.br"
	defaultProviderTimeout = "10s"
	defaultPort            = "9999"
)

type Config struct {
	Credentials     models.Credentials
	ProviderURL     string
	ProviderTimeout time.Duration
	Port            int
}

// Load reads the environment once. Missing credentials are not an error here:
// the gateway reports them on every request so the process can still answer
// pre-flight and health checks.
func Load() (Config, error) {
	rawTimeout := getEnv("PROVIDER_TIMEOUT", defaultProviderTimeout)
	if _, err := strconv.ParseFloat(strings.TrimSpace(rawTimeout), 64); err == nil {
		return Config{}, fmt.Errorf("invalid PROVIDER_TIMEOUT: %q has no unit, use a duration like 10s", rawTimeout)
	}
	timeout, err := cast.ToDurationE(rawTimeout)
	if err != nil {
		return Config{}, fmt.Errorf("invalid PROVIDER_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return Config{}, fmt.Errorf("invalid PROVIDER_TIMEOUT: must be positive, got %s", timeout)
	}

	port, err := cast.ToIntE(getEnv("PORT", defaultPort))
	if err != nil {
		return Config{}, fmt.Errorf("invalid PORT: %w", err)
	}

	return Config{
		Credentials: models.Credentials{
			PublicKey: os.Getenv("NIVUS_PUBLIC_KEY"),
			SecretKey: os.Getenv("NIVUS_SECRET_KEY"),
		},
		ProviderURL:     getEnv("NIVUS_API_URL", defaultProviderURL),
		ProviderTimeout: timeout,
		Port:            port,
	}, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return defaultValue
	}
	return value
}
