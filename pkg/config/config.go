package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "costanzo"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "COSTANZO_DB_DSN"
	EnvDBHost = "COSTANZO_DB_HOST"
	EnvDBUser = "COSTANZO_DB_USER"
	EnvDBName = "COSTANZO_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Stripe       StripeConfig
	Checkout     CheckoutConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"COSTANZO_APP_ENV" required:"true"`
	Port         string `envconfig:"COSTANZO_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"COSTANZO_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"COSTANZO_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"COSTANZO_DB_DSN"`
	Driver string `envconfig:"COSTANZO_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"COSTANZO_DB_HOST"`
	LegacyPort     int    `envconfig:"COSTANZO_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"COSTANZO_DB_USER"`
	LegacyPassword string `envconfig:"COSTANZO_DB_PASSWORD"`
	LegacyName     string `envconfig:"COSTANZO_DB_NAME"`
	LegacySSLMode  string `envconfig:"COSTANZO_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"COSTANZO_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"COSTANZO_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"COSTANZO_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"COSTANZO_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"COSTANZO_REDIS_URL" required:"true"`
	Address      string        `envconfig:"COSTANZO_REDIS_ADDR"`
	Password     string        `envconfig:"COSTANZO_REDIS_PASSWORD"`
	DB           int           `envconfig:"COSTANZO_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"COSTANZO_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"COSTANZO_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"COSTANZO_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"COSTANZO_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"COSTANZO_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"COSTANZO_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"COSTANZO_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"COSTANZO_JWT_EXPIRATION_MINUTES" default:"60"`
	SessionTTLMinutes int    `envconfig:"COSTANZO_SESSION_TTL_MINUTES" default:"43200"`
}

// SessionTTL returns the redis session TTL configured in minutes.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

type StripeConfig struct {
	APIKey string `envconfig:"COSTANZO_STRIPE_API_KEY"`
	Env    string `envconfig:"COSTANZO_STRIPE_ENV" default:"test"`
}

// Environment returns the normalized Stripe environment (test/live).
func (s StripeConfig) Environment() string {
	env := strings.TrimSpace(strings.ToLower(s.Env))
	if env == "" {
		return "test"
	}
	return env
}

type CheckoutConfig struct {
	TaxRate  float64 `envconfig:"COSTANZO_CHECKOUT_TAX_RATE" default:"0.16"`
	Currency string  `envconfig:"COSTANZO_CHECKOUT_CURRENCY" default:"mxn"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"COSTANZO_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"COSTANZO_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
