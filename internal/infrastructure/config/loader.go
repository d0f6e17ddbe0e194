package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "PB"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return decode(v, env)
}

// LoadFromViper decodes an already populated viper instance. Tests use it
// to build a Config without touching the filesystem.
func LoadFromViper(v *viper.Viper, env string) (*Config, error) {
	setDefaults(v)
	return decode(v, env)
}

func decode(v *viper.Viper, env string) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 15)
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30)
	v.SetDefault("database.connMaxIdleTime", 15)
	v.SetDefault("database.queryTimeout", 5)
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 2)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("auth.issuer", "people-bets")
	v.SetDefault("auth.tokenTTL", 60)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.statsTTL", 600)

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.topic", "people-bets.events")
	v.SetDefault("kafka.writeTimeout", 5)

	// 00:00 UTC every day
	v.SetDefault("leaderboard.schedule", "0 0 0 * * *")
	v.SetDefault("leaderboard.timezone", "UTC")
	v.SetDefault("leaderboard.rebuildOnStart", false)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.namespace", "people_bets")
}

// getEnvironment determines the environment to use based on PB_ENV
func getEnvironment() string {
	env := os.Getenv("PB_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes environment variables win over file values for
// keys whose env names do not follow the nested key path
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"PB_DB_DRIVER":             "database.driver",
		"PB_DB_URL":                "database.url",
		"PB_DB_HOST":               "database.host",
		"PB_DB_PORT":               "database.port",
		"PB_DB_USERNAME":           "database.username",
		"PB_DB_PASSWORD":           "database.password",
		"PB_DB_NAME":               "database.database",
		"PB_DB_SSL_MODE":           "database.sslMode",
		"PB_SERVER_HOST":           "server.host",
		"PB_SERVER_PORT":           "server.port",
		"PB_LOGGER_LEVEL":          "logger.level",
		"PB_AUTH_SECRET":           "auth.secret",
		"PB_AUTH_ISSUER":           "auth.issuer",
		"PB_REDIS_ADDR":            "redis.addr",
		"PB_REDIS_PASSWORD":        "redis.password",
		"PB_KAFKA_TOPIC":           "kafka.topic",
		"PB_LEADERBOARD_ADMIN_KEY": "leaderboard.adminKey",
		"PB_LEADERBOARD_SCHEDULE":  "leaderboard.schedule",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	if brokers := os.Getenv("PB_KAFKA_BROKERS"); brokers != "" {
		v.Set("kafka.brokers", strings.Split(brokers, ","))
	}

	boolOverrides := map[string]string{
		"PB_REDIS_ENABLED":   "redis.enabled",
		"PB_KAFKA_ENABLED":   "kafka.enabled",
		"PB_METRICS_ENABLED": "metrics.enabled",
	}
	for env, key := range boolOverrides {
		if value := os.Getenv(env); value != "" {
			if b, err := strconv.ParseBool(value); err == nil {
				v.Set(key, b)
			}
		}
	}

	if maxOpenConns := getEnvInt("PB_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("PB_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if queryTimeout := getEnvInt("PB_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if retryAttempts := getEnvInt("PB_DB_RETRY_ATTEMPTS", 0); retryAttempts > 0 {
		v.Set("database.retryAttempts", retryAttempts)
	}
	if redisDB := getEnvInt("PB_REDIS_DB", -1); redisDB >= 0 {
		v.Set("redis.db", redisDB)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts the raw numbers in duration fields to their units
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Minute
	config.Redis.StatsTTL = time.Duration(config.Redis.StatsTTL) * time.Second
	config.Kafka.WriteTimeout = time.Duration(config.Kafka.WriteTimeout) * time.Second
}
