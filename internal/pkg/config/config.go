package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (credentials, DB connection, etc.)
// - default: Values common across all environments (port, timezone, collections, etc.)
// Driver-specific requirements are checked in Validate, since envconfig cannot
// express "required only when STORE_DRIVER=x".
// -----------------------------------------------------------------------------

const (
	DriverFirestore = "firestore"
	DriverPostgres  = "postgres"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Firestore FirestoreConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Metrics   MetricsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"3000"`
}

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"firestore"`
}

type FirestoreConfig struct {
	CredentialsBase64     string `envconfig:"FIREBASE_SERVICE_ACCOUNT_BASE64"`
	ProjectID             string `envconfig:"FIREBASE_PROJECT_ID"`
	EmulatorHost          string `envconfig:"FIRESTORE_EMULATOR_HOST"`
	OrdersCollection      string `envconfig:"FIRESTORE_ORDERS_COLLECTION" default:"orders"`
	DrawResultsCollection string `envconfig:"FIRESTORE_DRAW_RESULTS_COLLECTION" default:"drawResults"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Request-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type MetricsConfig struct {
	Enabled bool `envconfig:"METRICS_ENABLED" default:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverFirestore:
		if c.Firestore.CredentialsBase64 == "" && c.Firestore.EmulatorHost == "" {
			return fmt.Errorf("FIREBASE_SERVICE_ACCOUNT_BASE64 is required when STORE_DRIVER=%s", DriverFirestore)
		}
	case DriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required when STORE_DRIVER=%s", DriverPostgres)
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.Store.Driver)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadDBConfig reads only the database settings, for tools that never touch
// the rest of the service configuration.
func LoadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.User == "" || cfg.DBName == "" {
		return DBConfig{}, fmt.Errorf("DB_USER and DB_NAME are required")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver: DriverPostgres,
		},
		Firestore: FirestoreConfig{
			OrdersCollection:      "orders",
			DrawResultsCollection: "drawResults",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}
