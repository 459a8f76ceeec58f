package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/spf13/viper"
)

type AppConfig struct {
	AppPort   int
	LogLevel  string
	LogFormat string

	DbHost     string
	DbUser     string
	DbPassword string
	DbName     string
	DbPort     int
	DbSSLMode  string

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CacheTTLSeconds int

	AuthAPIBase string
	AuthAPIKey  string

	MaxResults int
}

var (
	lock      = &sync.Mutex{}
	appConfig *AppConfig
)

func GetConfig() (*AppConfig, error) {
	if appConfig != nil {
		return appConfig, nil
	}

	lock.Lock()
	defer lock.Unlock()

	if appConfig != nil {
		return appConfig, nil
	}

	appConfig, err := initConfig()
	return appConfig, err
}

func initConfig() (*AppConfig, error) {
	var finalConfig AppConfig

	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.SetConfigName("app.config")
	viper.SetConfigType("json")
	err := viper.ReadInConfig()
	if err != nil {
		finalConfig.AppPort = getEnvIntOrDefault("APP_PORT", 8080)
		finalConfig.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")
		finalConfig.LogFormat = getEnvOrDefault("LOG_FORMAT", "json")
		finalConfig.DbHost = getEnvOrDefault("DB_HOST", "postgres")
		finalConfig.DbPort = getEnvIntOrDefault("DB_PORT", 5432)
		finalConfig.DbUser = getEnvOrDefault("DB_USER", "postgres")
		finalConfig.DbPassword = getEnvOrDefault("DB_PASSWORD", "1")
		finalConfig.DbName = getEnvOrDefault("DB_NAME", "trusttravel")
		finalConfig.DbSSLMode = getEnvOrDefault("DB_SSLMODE", "disable")
		finalConfig.RedisAddr = getEnvOrDefault("REDIS_ADDR", "redis:6379")
		finalConfig.RedisPassword = getEnvOrDefault("REDIS_PASSWORD", "")
		finalConfig.RedisDB = getEnvIntOrDefault("REDIS_DB", 0)
		finalConfig.CacheTTLSeconds = getEnvIntOrDefault("CACHE_TTL_SECONDS", 300)
		finalConfig.AuthAPIBase = getEnvOrDefault("AUTH_API_BASE", "https://auth.trusttravel.app")
		finalConfig.AuthAPIKey = getEnvOrDefault("AUTH_API_KEY", "")
		finalConfig.MaxResults = getEnvIntOrDefault("MAX_RESULTS", 20)
		return &finalConfig, nil
	}

	finalConfig.AppPort = viper.GetInt("server.port")
	finalConfig.LogLevel = viper.GetString("server.loglevel")
	finalConfig.LogFormat = viper.GetString("server.logformat")
	finalConfig.DbHost = viper.GetString("database.host")
	finalConfig.DbPort = viper.GetInt("database.port")
	finalConfig.DbUser = viper.GetString("database.username")
	finalConfig.DbPassword = viper.GetString("database.password")
	finalConfig.DbName = viper.GetString("database.dbname")
	finalConfig.DbSSLMode = viper.GetString("database.sslmode")
	finalConfig.RedisAddr = viper.GetString("redis.addr")
	finalConfig.RedisPassword = viper.GetString("redis.password")
	finalConfig.RedisDB = viper.GetInt("redis.db")
	finalConfig.CacheTTLSeconds = viper.GetInt("redis.cachettl")
	finalConfig.AuthAPIBase = viper.GetString("auth.apibase")
	finalConfig.AuthAPIKey = viper.GetString("auth.apikey")
	finalConfig.MaxResults = viper.GetInt("recommend.maxresults")

	fmt.Printf("Using config file: %s\n\n", viper.ConfigFileUsed())

	return &finalConfig, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
