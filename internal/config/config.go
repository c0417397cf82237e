package config

import (
	"flag"
	"net"
	"os"
	"strconv"
	"time"
)

const (
	defaultHost            = "0.0.0.0"
	defaultPort            = 8000
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	Host            string
	Port            int
	LogLevel        string
	ShutdownTimeout time.Duration
}

// Load resolves configuration with flags taking precedence over environment
// variables, which take precedence over defaults. Unparseable env values
// fall back silently to the default.
func Load(args []string) Config {
	flags := flag.NewFlagSet("ipcalcd", flag.ExitOnError)
	host := flags.String("host", envOr("IPCALC_HOST", defaultHost), "listen host")
	port := flags.Int("port", envOrInt("IPCALC_PORT", defaultPort), "listen port")
	logLevel := flags.String("log-level", envOr("IPCALC_LOG_LEVEL", defaultLogLevel), "log level (debug/info/warn/error)")
	shutdownTimeout := flags.Duration("shutdown-timeout",
		envOrDuration("IPCALC_SHUTDOWN_TIMEOUT", defaultShutdownTimeout), "graceful shutdown timeout")
	flags.Parse(args)

	cfg := Config{
		Host:            *host,
		Port:            *port,
		LogLevel:        *logLevel,
		ShutdownTimeout: *shutdownTimeout,
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		cfg.Port = defaultPort
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	return cfg
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envOrDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
