package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Hubnet     Hubnet
	Datahubnet Datahubnet

	Fulfillment Fulfillment
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

// Hubnet is the volume-based reseller. Delivery confirmations arrive over its
// webhook; WebhookURL is handed to the provider on every submission.
type Hubnet struct {
	Enabled       bool
	APIKey        string
	BaseURL       string `validate:"required,url"`
	WebhookURL    string `validate:"omitempty,url"`
	WebhookSecret string

	// NetworkMap extends the built-in category-to-network table.
	NetworkMap map[string]string
}

// Datahubnet is the capacity-based reseller. It has no webhook; delivery is
// confirmed by polling check-status. It is a single-carrier reseller, so one
// network code covers every category routed to it.
type Datahubnet struct {
	Enabled          bool
	APIKey           string
	BaseURL          string `validate:"required,url"`
	AuthScheme       string `validate:"required"`
	AuthSchemeStatus string
	Network          string `validate:"required"`

	// CapacityMap overrides parsed capacity, keyed by product slug or by
	// resolved volume in MB.
	CapacityMap map[string]int
}

type Fulfillment struct {
	// DispatchInterval drives the dispatcher tick and doubles as the retry
	// backoff window. Floored at MinDispatchInterval.
	DispatchInterval time.Duration `validate:"gte=5s"`
	CallTimeout      time.Duration `validate:"gt=0"`

	// ProviderMap routes category slugs to a provider tag; unlisted
	// categories go to hubnet.
	ProviderMap map[string]string `validate:"dive,oneof=hubnet datahubnet"`
}

const MinDispatchInterval = 5 * time.Second

func New() (Config, error) {
	networkMap, err := envJSONMap[string]("HUBNET_NETWORK_MAP")
	if err != nil {
		return Config{}, fmt.Errorf("invalid HUBNET_NETWORK_MAP: %w", err)
	}
	capacityMap, err := envJSONMap[int]("DATAHUBNET_CAPACITY_MAP")
	if err != nil {
		return Config{}, fmt.Errorf("invalid DATAHUBNET_CAPACITY_MAP: %w", err)
	}
	providerMap, err := envJSONMap[string]("FULFILLMENT_PROVIDER_MAP")
	if err != nil {
		return Config{}, fmt.Errorf("invalid FULFILLMENT_PROVIDER_MAP: %w", err)
	}

	interval := envDuration("DISPATCH_INTERVAL", 13*time.Second)
	if interval < MinDispatchInterval {
		interval = MinDispatchInterval
	}

	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "fulfillment-service"),
			Topic:   env("KAFKA_TOPIC", "payment-confirmations"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "fulfillment"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Hubnet: Hubnet{
			Enabled:       envBool("HUBNET_ENABLED", true),
			APIKey:        env("HUBNET_API_KEY", ""),
			BaseURL:       env("HUBNET_BASE_URL", "https://console.hubnet.app/live/api/context/business/transaction"),
			WebhookURL:    env("HUBNET_WEBHOOK_URL", ""),
			WebhookSecret: env("HUBNET_WEBHOOK_SECRET", ""),
			NetworkMap:    networkMap,
		},

		Datahubnet: Datahubnet{
			Enabled:          envBool("DATAHUBNET_ENABLED", true),
			APIKey:           env("DATAHUBNET_API_KEY", ""),
			BaseURL:          env("DATAHUBNET_BASE_URL", "https://www.datahubnet.online/api"),
			AuthScheme:       env("DATAHUBNET_AUTH_SCHEME", "Api-Key"),
			AuthSchemeStatus: env("DATAHUBNET_AUTH_SCHEME_STATUS", ""),
			Network:          env("DATAHUBNET_TELECEL_NETWORK", "telecel"),
			CapacityMap:      capacityMap,
		},

		Fulfillment: Fulfillment{
			DispatchInterval: interval,
			CallTimeout:      envDuration("DISPATCH_CALL_TIMEOUT", 30*time.Second),
			ProviderMap:      providerMap,
		},
	}, nil
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// Configured reports whether the provider can actually be called.
func (h Hubnet) Configured() bool {
	return h.Enabled && h.APIKey != ""
}

func (d Datahubnet) Configured() bool {
	return d.Enabled && d.APIKey != ""
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if len(fallback) == 0 {
		return ""
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		return strings.EqualFold(strings.TrimSpace(value), "true")
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

// envJSONMap parses a JSON object env var into a typed map. Unlike the other
// helpers it does not fall back on bad input: a malformed mapping must stop
// startup, not silently route items nowhere.
func envJSONMap[V any](key string) (map[string]V, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return map[string]V{}, nil
	}
	var m map[string]V
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, err
	}
	return m, nil
}
