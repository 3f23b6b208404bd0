package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr  string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:""`
	JWTSecret   string `env:"JWT_SECRET" envDefault:"secret"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	JWTSecret   string
	DatabaseDSN string
}

// RefreshConfig модель настроек фонового обновления панели.
// Интервалы повторяют периоды автообновления исходных страниц.
type RefreshConfig struct {
	MarketsInterval  time.Duration
	RequestsInterval time.Duration
}

// Config модель настроек сервиса
type Config struct {
	Server  ServerConfig
	Refresh RefreshConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret   = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		markets  = pflag.DurationP("markets_refresh", "m", 2*time.Minute, "Markets stats refresh interval.")
		requests = pflag.DurationP("requests_refresh", "r", 5*time.Minute, "Money requests stats refresh interval.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
			JWTSecret:   *secret,
		},
		Refresh: RefreshConfig{
			MarketsInterval:  *markets,
			RequestsInterval: *requests,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
		},
		Refresh: RefreshConfig{
			MarketsInterval:  2 * time.Minute,
			RequestsInterval: 5 * time.Minute,
		},
	}
}
