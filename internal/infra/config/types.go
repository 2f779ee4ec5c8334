package config

import (
	"strconv"
	"time"
)

// Config is the complete application configuration (spec.md §6).
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Redis       RedisConfig    `mapstructure:"redis"`
	Cache       CacheConfig    `mapstructure:"cache"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
	Logging     LoggingConfig  `mapstructure:"logging"`
	Typst       TypstConfig    `mapstructure:"typst"`
	Workers     WorkersConfig  `mapstructure:"workers"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port                   string `mapstructure:"port"`
	ReadTimeout            int    `mapstructure:"read_timeout"`
	WriteTimeout           int    `mapstructure:"write_timeout"`
	ShutdownTimeout        int    `mapstructure:"shutdown_timeout"`
	RequestTimeoutSeconds  int    `mapstructure:"request_timeout_seconds"`
	MaxPDFSizeBytes        int64  `mapstructure:"max_pdf_size_bytes"`
}

func (s ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

func (s ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

func (s ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(s.ShutdownTimeout) * time.Second
}

func (s ServerConfig) RequestTimeoutDuration() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// RedisConfig holds the cache/queue/rate-limit backend connection.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	DB       int    `mapstructure:"db"`
	Password string `mapstructure:"password"`
	SSL      bool   `mapstructure:"ssl"`
}

func (r RedisConfig) Addr() string {
	if r.Port == 0 {
		return r.Host
	}
	return r.Host + ":" + strconv.Itoa(r.Port)
}

// CacheConfig holds the two-tier document cache settings (spec.md §4.7).
type CacheConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	PDFCacheTTL     int  `mapstructure:"pdf_cache_ttl_seconds"`
	TypstCacheTTL   int  `mapstructure:"typst_cache_ttl_seconds"`
}

func (c CacheConfig) PDFCacheTTLDuration() time.Duration {
	return time.Duration(c.PDFCacheTTL) * time.Second
}

func (c CacheConfig) TypstCacheTTLDuration() time.Duration {
	return time.Duration(c.TypstCacheTTL) * time.Second
}

// RateLimitConfig holds the per-client request budget (spec.md §4.10).
type RateLimitConfig struct {
	PerMinute int `mapstructure:"per_minute"`
	Burst     int `mapstructure:"burst"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TypstConfig holds the Typst CLI compiler binding (spec.md §4.5).
type TypstConfig struct {
	BinPath       string   `mapstructure:"bin_path"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
	FontDirs      []string `mapstructure:"font_dirs"`
	MaxConcurrent int      `mapstructure:"max_concurrent"`
}

func (t TypstConfig) TimeoutDuration() time.Duration {
	return time.Duration(t.TimeoutSeconds) * time.Second
}

// WorkersConfig holds pool sizing for the sync and async render paths.
type WorkersConfig struct {
	MaxWorkers int `mapstructure:"max_workers"`
	JobWorkers int `mapstructure:"job_workers"`
}
