package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// StorageConfig selects the storage provider and carries the settings
// shared by all of them.
type StorageConfig struct {
	// Provider is one of csv, mongodb, cosmosdb, sql.
	Provider string

	// LegacyTenantField, when set, is honored as a read fallback for
	// records written before the tenant field was renamed.
	LegacyTenantField string
}

// CSVConfig holds flat-file provider configuration
type CSVConfig struct {
	BasePath string
}

// MongoConfig holds document store configuration
type MongoConfig struct {
	ConnectionString string
	DatabaseName     string
}

// CosmosConfig holds partition-keyed store configuration
type CosmosConfig struct {
	Endpoint          string
	Key               string
	DatabaseName      string
	ProductsContainer string
	AlertsContainer   string
	UsersContainer    string
}

// DBConfig holds relational database configuration
type DBConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	LogLevel        logger.LogLevel
}

// GetDSN returns the PostgreSQL connection string
func (c *DBConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// AuthConfig holds token validation configuration
type AuthConfig struct {
	GoogleClientID string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics configuration
type MetricsConfig struct {
	Prefix string
}

// Config holds all configuration
type Config struct {
	ServiceName string
	Server      ServerConfig
	Storage     StorageConfig
	CSV         CSVConfig
	Mongo       MongoConfig
	Cosmos      CosmosConfig
	DB          DBConfig
	Auth        AuthConfig
	Log         LogConfig
	Metrics     MetricsConfig
}

// Load loads configuration from environment variables
func Load(serviceName string) (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: .env file not found, using environment variables\n")
	}

	config := &Config{
		ServiceName: serviceName,
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Storage: StorageConfig{
			Provider:          strings.ToLower(getEnv("STORAGE_PROVIDER", "csv")),
			LegacyTenantField: getEnv("TENANT_LEGACY_FIELD", ""),
		},
		CSV: CSVConfig{
			BasePath: getEnv("CSV_BASE_PATH", "./data"),
		},
		Mongo: MongoConfig{
			ConnectionString: getEnv("MONGO_CONNECTION_STRING", ""),
			DatabaseName:     getEnv("MONGO_DATABASE_NAME", "slashalert"),
		},
		Cosmos: CosmosConfig{
			Endpoint:          getEnv("COSMOS_ENDPOINT", ""),
			Key:               getEnv("COSMOS_KEY", ""),
			DatabaseName:      getEnv("COSMOS_DATABASE_NAME", "slashalert"),
			ProductsContainer: getEnv("COSMOS_PRODUCTS_CONTAINER", "products"),
			AlertsContainer:   getEnv("COSMOS_ALERTS_CONTAINER", "alerts"),
			UsersContainer:    getEnv("COSMOS_USERS_CONTAINER", "users"),
		},
		DB: DBConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "password"),
			DBName:          getEnv("DB_NAME", serviceName),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 1*time.Hour),
			LogLevel:        getEnvAsLogLevel("DB_LOG_LEVEL", logger.Info),
		},
		Auth: AuthConfig{
			GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", serviceName),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that the descriptor for the selected storage provider
// is present. Descriptors for other providers may be absent; only the
// active one is required.
func (c *Config) Validate() error {
	switch c.Storage.Provider {
	case "csv":
		if c.CSV.BasePath == "" {
			return fmt.Errorf("storage provider csv requires CSV_BASE_PATH")
		}
	case "mongodb":
		if c.Mongo.ConnectionString == "" {
			return fmt.Errorf("storage provider mongodb requires MONGO_CONNECTION_STRING")
		}
	case "cosmosdb":
		if c.Cosmos.Endpoint == "" || c.Cosmos.Key == "" {
			return fmt.Errorf("storage provider cosmosdb requires COSMOS_ENDPOINT and COSMOS_KEY")
		}
	case "sql":
		// The relational descriptor has usable defaults.
	default:
		return fmt.Errorf("unknown storage provider %q", c.Storage.Provider)
	}

	if c.Auth.GoogleClientID == "" {
		return fmt.Errorf("GOOGLE_CLIENT_ID is required")
	}
	return nil
}

// LogConfig returns the configuration as a zap logger-friendly format
func (c *Config) LogConfig() []zap.Field {
	return []zap.Field{
		zap.String("service", c.ServiceName),
		zap.String("environment", c.Server.Env),
		zap.String("storage_provider", c.Storage.Provider),
		zap.String("server_port", c.Server.Port),
	}
}

// Helper function to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as integers
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as durations
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// Helper function to get environment variables as log levels
func getEnvAsLogLevel(key string, defaultValue logger.LogLevel) logger.LogLevel {
	valueStr := getEnv(key, "")
	switch valueStr {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "warn":
		return logger.Warn
	case "info":
		return logger.Info
	default:
		return defaultValue
	}
}
