package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string
	BaseURL    string

	DB struct {
		DSN string
	}

	Auth struct {
		// Bcrypt hash of the owner API token. Plaintext tokens are never stored.
		TokenHash string
	}

	Import struct {
		FetchTimeout time.Duration
		FeeRates     map[string]float64
	}

	WeeksPerYear int

	PrometheusEnabled bool
	TrustedProxies    []string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.ListenAddr = getenvDefault("APP_LISTEN_ADDR", ":8080")
	cfg.BaseURL = getenvDefault("APP_BASE_URL", "http://localhost:8080")
	cfg.DB.DSN = os.Getenv("APP_DB_DSN")

	if cfg.DB.DSN == "" {
		host := os.Getenv("APP_DB_HOST")
		name := os.Getenv("APP_DB_NAME")
		user := os.Getenv("APP_DB_USER")
		password := os.Getenv("APP_DB_PASSWORD")
		port := getenvDefault("APP_DB_PORT", "5432")
		sslmode := getenvDefault("APP_DB_SSLMODE", "disable")

		var missing []string
		if host == "" {
			missing = append(missing, "APP_DB_HOST")
		}
		if name == "" {
			missing = append(missing, "APP_DB_NAME")
		}
		if user == "" {
			missing = append(missing, "APP_DB_USER")
		}
		if password == "" {
			missing = append(missing, "APP_DB_PASSWORD")
		}

		if len(missing) == 0 {
			cfg.DB.DSN = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, password, host, port, name, sslmode)
		}
	}

	cfg.Auth.TokenHash = os.Getenv("APP_API_TOKEN_HASH")
	cfg.Import.FetchTimeout = getenvDuration("APP_FEED_FETCH_TIMEOUT", 15*time.Second)
	cfg.Import.FeeRates = getenvRates("APP_PLATFORM_FEE_RATES")
	cfg.WeeksPerYear = getenvInt("APP_WEEKS_PER_YEAR", 52)
	cfg.PrometheusEnabled = getenvBool("APP_PROMETHEUS_ENDPOINT_ENABLED", false)
	cfg.TrustedProxies = getenvList("APP_TRUSTED_PROXIES")

	if cfg.DB.DSN == "" {
		return nil, errors.New("APP_DB_DSN is required (or set APP_DB_HOST, APP_DB_NAME, APP_DB_USER, and APP_DB_PASSWORD)")
	}
	if cfg.Auth.TokenHash == "" {
		return nil, errors.New("APP_API_TOKEN_HASH is required (bcrypt hash of the owner API token)")
	}
	if cfg.WeeksPerYear < 1 || cfg.WeeksPerYear > 53 {
		return nil, fmt.Errorf("APP_WEEKS_PER_YEAR must be between 1 and 53 (got %d)", cfg.WeeksPerYear)
	}

	if len(cfg.TrustedProxies) == 0 {
		fmt.Println("WARNING: No APP_TRUSTED_PROXIES configured. HostLedger will trust all proxies - Not recommended for public environments.")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func getenvList(key string) []string {
	if v := os.Getenv(key); v != "" {
		var result []string
		for _, item := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return nil
}

// getenvRates parses "airbnb=0.03,vrbo=0.05" style overrides. Malformed
// pairs are ignored.
func getenvRates(key string) map[string]float64 {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	rates := map[string]float64{}
	for _, pair := range strings.Split(v, ",") {
		name, val, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil || rate < 0 || rate >= 1 {
			continue
		}
		rates[strings.ToLower(strings.TrimSpace(name))] = rate
	}
	if len(rates) == 0 {
		return nil
	}
	return rates
}
