// Package config reads the service settings from the environment. A .env
// file is loaded by cmd/api through godotenv/autoload before Load runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

type Config struct {
	Port        string
	CORSOrigins []string

	AWS       AWSConfig
	Redis     RedisConfig
	AuthDB    AuthDBConfig
	JWT       JWTConfig
	Payments  PaymentsConfig
	Dashboard DashboardConfig

	CartTTL   time.Duration
	GuardTTL  time.Duration
	RateLimit string
	Location  *time.Location
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthDBConfig struct {
	Driver string
	DSN    string
}

type JWTConfig struct {
	Secret     string
	TTL        time.Duration
	Issuer     string
	BcryptCost int
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string
	Mock                   bool
	TestPayerEmail         string
	TestPayerUserID        string
}

type DashboardConfig struct {
	ProductMargin float64
	ServiceMargin float64
}

// Load builds the Config from environment variables, applying local-friendly
// defaults.
func Load() (Config, error) {
	var errs []string
	parseDuration := func(key, def string) time.Duration {
		d, err := time.ParseDuration(getenvDefault(key, def))
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
		return d
	}
	parseInt := func(key string, def int) int {
		v, err := strconv.Atoi(getenvDefault(key, strconv.Itoa(def)))
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
		return v
	}
	parseFloat := func(key string, def float64) float64 {
		v, err := strconv.ParseFloat(getenvDefault(key, strconv.FormatFloat(def, 'f', -1, 64)), 64)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
		return v
	}

	cfg := Config{
		Port:        getenvDefault("PORT", "8080"),
		CORSOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		AWS: AWSConfig{
			Region:           getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:      getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:  getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		},
		Redis: RedisConfig{
			Addr:     getenvDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       parseInt("REDIS_DB", 0),
		},
		AuthDB: AuthDBConfig{
			Driver: strings.ToLower(getenvDefault("AUTH_DB_DRIVER", "postgres")),
			DSN:    os.Getenv("AUTH_DB_DSN"),
		},
		JWT: JWTConfig{
			Secret:     os.Getenv("JWT_SECRET"),
			TTL:        parseDuration("JWT_TTL", "24h"),
			Issuer:     getenvDefault("JWT_ISSUER", "bahia_gestao"),
			BcryptCost: parseInt("BCRYPT_COST", 10),
		},
		Payments: PaymentsConfig{
			MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
			Mock:                   isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),
			TestPayerEmail:         os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"),
			TestPayerUserID:        os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"),
		},
		Dashboard: DashboardConfig{
			ProductMargin: parseFloat("DASHBOARD_PRODUCT_MARGIN", 0.2),
			ServiceMargin: parseFloat("DASHBOARD_SERVICE_MARGIN", 0.3),
		},
		CartTTL:   parseDuration("CART_TTL", "24h"),
		GuardTTL:  parseDuration("GUARD_TTL", "30s"),
		RateLimit: getenvDefault("AUTH_RATE_LIMIT", "10-M"),
	}

	loc, err := time.LoadLocation(getenvDefault("APP_TIMEZONE", "America/Bahia"))
	if err != nil {
		errs = append(errs, fmt.Sprintf("APP_TIMEZONE: %v", err))
		loc = time.UTC
	}
	cfg.Location = loc

	switch cfg.AuthDB.Driver {
	case "postgres", "mysql":
	default:
		errs = append(errs, fmt.Sprintf("AUTH_DB_DRIVER: unsupported driver %q", cfg.AuthDB.Driver))
	}
	if cfg.JWT.Secret == "" {
		errs = append(errs, "JWT_SECRET is required")
	}
	if len(errs) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
