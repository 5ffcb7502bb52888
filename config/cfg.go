package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/jekabolt/stockroom/internal/api/http"
	"github.com/jekabolt/stockroom/internal/dashboard"
	"github.com/jekabolt/stockroom/internal/store"
	"github.com/jekabolt/stockroom/internal/store/mongostore"
	"github.com/jekabolt/stockroom/log"
	"github.com/spf13/viper"
)

const (
	DriverMongo = "mongo"
	DriverMySQL = "mysql"
)

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
}

// Config represents the global configuration for the service.
type Config struct {
	Store     StoreConfig       `mapstructure:"store"`
	Mongo     mongostore.Config `mapstructure:"mongo"`
	DB        store.Config      `mapstructure:"mysql"`
	Logger    log.Config        `mapstructure:"logger"`
	HTTP      httpapi.Config    `mapstructure:"http"`
	Dashboard dashboard.Config  `mapstructure:"dashboard"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested keys use double underscore, e.g. MONGO__URI for mongo.uri, flat names
// such as MONGO_URI are bound explicitly in bindEnvVars.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	setDefaults(v)
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			// If config file doesn't exist, continue with env vars only
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/stockroom")
		v.AddConfigPath("/etc/stockroom")
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	// Build the MySQL DSN from its parts when only those are set
	if config.DB.DSN == "" {
		mysqlHost := os.Getenv("MYSQL_HOST")
		mysqlPort := os.Getenv("MYSQL_PORT")
		mysqlUser := os.Getenv("MYSQL_USER")
		mysqlPassword := os.Getenv("MYSQL_PASSWORD")
		mysqlDatabase := os.Getenv("MYSQL_DATABASE")

		if mysqlHost != "" {
			if mysqlPort == "" {
				mysqlPort = "3306"
			}
			if mysqlUser != "" && mysqlPassword != "" && mysqlDatabase != "" {
				config.DB.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true",
					mysqlUser, mysqlPassword, mysqlHost, mysqlPort, mysqlDatabase)
			}
		}
	}

	switch config.Store.Driver {
	case DriverMongo, DriverMySQL:
	default:
		return nil, fmt.Errorf("unknown store driver %q", config.Store.Driver)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.driver", DriverMongo)
	v.SetDefault("mongo.database", "stockroom")
	v.SetDefault("mysql.automigrate", true)
	v.SetDefault("mysql.max_open_connections", 10)
	v.SetDefault("mysql.max_idle_connections", 5)
	v.SetDefault("http.port", "3333")
	v.SetDefault("http.allowed_origins", []string{"*"})
	v.SetDefault("http.rate_limit", 100)
	v.SetDefault("http.rate_window", "1m")
	v.SetDefault("dashboard.malformed_amounts", string(dashboard.MalformedReject))
	v.SetDefault("dashboard.timezone", "Local")
}

// bindEnvVars binds flat environment variables to config keys.
func bindEnvVars(v *viper.Viper) {
	v.BindEnv("store.driver", "STORE_DRIVER")

	// Mongo
	v.BindEnv("mongo.uri", "MONGO_URI")
	v.BindEnv("mongo.database", "MONGO_DB_NAME")

	// MySQL
	v.BindEnv("mysql.dsn", "MYSQL_DSN")
	v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT", "PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.rate_limit", "HTTP_RATE_LIMIT")
	v.BindEnv("http.rate_window", "HTTP_RATE_WINDOW")

	// Dashboard
	v.BindEnv("dashboard.year_aware_day_key", "DASHBOARD_YEAR_AWARE_DAY_KEY")
	v.BindEnv("dashboard.malformed_amounts", "DASHBOARD_MALFORMED_AMOUNTS")
	v.BindEnv("dashboard.timezone", "DASHBOARD_TIMEZONE")
}
