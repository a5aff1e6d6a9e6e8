package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Redis Redis

	Dedup Dedup

	Payments Payments `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID            string   `validate:"required"`
	Brokers            []string `validate:"required,min=1,dive,hostname_port"`
	NotificationsTopic string   `validate:"required"`
	EventsTopic        string   `validate:"required"`

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

// Redis пустой Addr означает in-memory дедупликацию
type Redis struct {
	Addr     string `validate:"omitempty,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`
}

// Dedup держит ключ ClaimTTL, пока уведомление обрабатывается, и TTL после коммита
type Dedup struct {
	TTL      time.Duration `validate:"gt=0"`
	ClaimTTL time.Duration `validate:"gt=0,ltefield=TTL"`
	Capacity int           `validate:"gte=1"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Payments struct {
	Currency       string          `validate:"required,len=3,lowercase"`
	DeliveryCharge decimal.Decimal `validate:"-"` // знак проверяет validateConfig

	CheckoutOrderTTL    time.Duration `validate:"gt=0"`
	ExpirySweepInterval time.Duration `validate:"gt=0"`

	Stripe   Stripe   `validate:"required"`
	Razorpay Razorpay `validate:"required"`
}

type Stripe struct {
	SecretKey             string `validate:"required"`
	WebhookSecret         string
	AllowUnsignedWebhooks bool
}

type Razorpay struct {
	KeyID     string `validate:"required"`
	KeySecret string `validate:"required"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "4000"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:5173"), ","),
		},

		Kafka: Kafka{
			GroupID:            env("KAFKA_GROUP_ID", "storefront-order-service"),
			NotificationsTopic: env("KAFKA_NOTIFICATIONS_TOPIC", "payment-notifications"),
			EventsTopic:        env("KAFKA_EVENTS_TOPIC", "order-events"),
			Brokers:            strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "storefront"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", ""),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
		},

		Dedup: Dedup{
			TTL:      envDuration("DEDUP_TTL", 72*time.Hour),
			ClaimTTL: envDuration("DEDUP_CLAIM_TTL", time.Minute),
			Capacity: envInt("DEDUP_CAPACITY", 10000),
		},

		Payments: Payments{
			Currency:       strings.ToLower(env("CURRENCY", "usd")),
			DeliveryCharge: envDecimal("DELIVERY_CHARGE", decimal.NewFromInt(10)),

			CheckoutOrderTTL:    envDuration("CHECKOUT_ORDER_TTL", 24*time.Hour),
			ExpirySweepInterval: envDuration("EXPIRY_SWEEP_INTERVAL", time.Minute),

			Stripe: Stripe{
				SecretKey:             env("STRIPE_SECRET_KEY", ""),
				WebhookSecret:         env("STRIPE_WEBHOOK_SECRET", ""),
				AllowUnsignedWebhooks: envBool("STRIPE_ALLOW_UNSIGNED_WEBHOOKS", false),
			},
			Razorpay: Razorpay{
				KeyID:     env("RAZORPAY_KEY_ID", ""),
				KeySecret: env("RAZORPAY_KEY_SECRET", ""),
			},
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	validate.RegisterStructValidation(validateConfig, Config{})
	return validate.Struct(c)
}

func validateConfig(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)
	stripe := c.Payments.Stripe

	if stripe.AllowUnsignedWebhooks && c.Env == "production" {
		sl.ReportError(stripe.AllowUnsignedWebhooks, "AllowUnsignedWebhooks", "AllowUnsignedWebhooks", "notinproduction", "")
	}
	if stripe.WebhookSecret == "" && !stripe.AllowUnsignedWebhooks {
		sl.ReportError(stripe.WebhookSecret, "WebhookSecret", "WebhookSecret", "required", "")
	}
	if c.Payments.DeliveryCharge.IsNegative() {
		sl.ReportError(c.Payments.DeliveryCharge.String(), "DeliveryCharge", "DeliveryCharge", "gte", "0")
	}
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
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
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
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

func envDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	if value, ok := os.LookupEnv(key); ok {
		d, err := decimal.NewFromString(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
