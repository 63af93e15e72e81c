package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application level configuration. Values come from an optional
// gatekeeper.yaml in the working directory, overridden by GATEKEEPER_*
// environment variables.
type Config struct {
	ServerPort string

	MySQLDSN string

	RedisAddr string
	RedisDB   int
	RedisPass string

	CacheEnabled bool
	CacheTimeout time.Duration
	UserTTL      time.Duration
	TokenTTL     time.Duration
	ScopesTTL    time.Duration

	TokenLifetime time.Duration

	LogLevel  string
	LogFormat string

	TestRoutes bool
}

// Load reads configuration with sensible defaults.
func Load() *Config {
	v := viper.New()
	v.SetConfigName("gatekeeper")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("GATEKEEPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("mysql.dsn", "user:password@tcp(localhost:3306)/gatekeeper?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.password", "")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.timeout", 250*time.Millisecond)
	v.SetDefault("cache.user_ttl", 5*time.Minute)
	v.SetDefault("cache.token_ttl", 5*time.Minute)
	v.SetDefault("cache.scopes_ttl", 5*time.Minute)
	v.SetDefault("token.lifetime", time.Hour)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("test.routes", false)

	_ = v.ReadInConfig() // config file is optional

	return &Config{
		ServerPort:    v.GetString("server.port"),
		MySQLDSN:      v.GetString("mysql.dsn"),
		RedisAddr:     v.GetString("redis.addr"),
		RedisDB:       v.GetInt("redis.db"),
		RedisPass:     v.GetString("redis.password"),
		CacheEnabled:  v.GetBool("cache.enabled"),
		CacheTimeout:  v.GetDuration("cache.timeout"),
		UserTTL:       v.GetDuration("cache.user_ttl"),
		TokenTTL:      v.GetDuration("cache.token_ttl"),
		ScopesTTL:     v.GetDuration("cache.scopes_ttl"),
		TokenLifetime: v.GetDuration("token.lifetime"),
		LogLevel:      v.GetString("log.level"),
		LogFormat:     v.GetString("log.format"),
		TestRoutes:    v.GetBool("test.routes"),
	}
}
