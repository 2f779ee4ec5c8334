// Package config loads application configuration from a YAML file layered
// under environment variables, following the teacher's viper-based
// Load/bindEnvVars/setDefaults shape with the env prefix RESUMEGEN_
// (spec.md §6).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from YAML files and environment variables.
// Environment variables take precedence over YAML values.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("app")
	v.SetConfigType("yaml")

	v.AddConfigPath("./settings")
	v.AddConfigPath("../settings")
	v.AddConfigPath("../../settings")
	v.AddConfigPath(".")

	v.SetEnvPrefix("RESUMEGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	bindEnvVars(v)
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Server.Port == "" {
		if port := os.Getenv("PORT"); port != "" {
			cfg.Server.Port = port
		}
	}

	return &cfg, nil
}

// bindEnvVars explicitly binds environment variables to config keys, using
// the literal spec.md §6 names where one exists (e.g. REDIS_HOST,
// RATE_LIMIT_PER_MINUTE) and the RESUMEGEN_-prefixed name otherwise, rather
// than relying solely on AutomaticEnv, which viper doesn't apply reliably
// through Unmarshal.
func bindEnvVars(v *viper.Viper) {
	v.BindEnv("server.port")
	v.BindEnv("server.read_timeout")
	v.BindEnv("server.write_timeout")
	v.BindEnv("server.shutdown_timeout")
	v.BindEnv("server.request_timeout_seconds", "REQUEST_TIMEOUT_SECONDS")
	v.BindEnv("server.max_pdf_size_bytes", "MAX_PDF_SIZE_BYTES")

	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.db", "REDIS_DB")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.ssl", "REDIS_SSL")

	v.BindEnv("cache.enabled", "CACHE_ENABLED")
	v.BindEnv("cache.pdf_cache_ttl_seconds", "PDF_CACHE_TTL")
	v.BindEnv("cache.typst_cache_ttl_seconds", "TYPST_CACHE_TTL")

	v.BindEnv("rate_limit.per_minute", "RATE_LIMIT_PER_MINUTE")
	v.BindEnv("rate_limit.burst", "RATE_LIMIT_BURST")

	v.BindEnv("workers.max_workers", "MAX_WORKERS")
	v.BindEnv("workers.job_workers", "JOB_WORKERS")

	v.BindEnv("logging.level")
	v.BindEnv("logging.format")

	v.BindEnv("typst.bin_path")
	v.BindEnv("typst.timeout_seconds")
	v.BindEnv("typst.max_concurrent")

	v.BindEnv("environment")
}

// setDefaults sets the spec.md §6 default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.shutdown_timeout", 10)
	v.SetDefault("server.request_timeout_seconds", 120)
	v.SetDefault("server.max_pdf_size_bytes", 26214400)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ssl", false)

	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.pdf_cache_ttl_seconds", 86400)
	v.SetDefault("cache.typst_cache_ttl_seconds", 43200)

	v.SetDefault("rate_limit.per_minute", 60)
	v.SetDefault("rate_limit.burst", 20)

	v.SetDefault("workers.max_workers", 4)
	v.SetDefault("workers.job_workers", 32)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("typst.bin_path", "typst")
	v.SetDefault("typst.timeout_seconds", 10)
	v.SetDefault("typst.max_concurrent", 4)

	v.SetDefault("environment", "development")
}

// MustLoad loads configuration and panics on error. Use only in main().
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
