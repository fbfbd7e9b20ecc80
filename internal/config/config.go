// Package config reads the service configuration from the environment.
//
// Every setting has a hard-coded default. Missing or malformed values are
// replaced by that default, so loading never fails.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
)

const (
	EnvPort             = "PORT"
	EnvCountdownSeconds = "COUNTDOWN_SECONDS"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvLogOutput        = "LOG_OUTPUT"
	EnvMetricsPort      = "METRICS_PORT"
)

const (
	DefaultPort             uint16 = 8080
	DefaultCountdownSeconds uint   = 10
	DefaultLogLevel                = "info"
	DefaultLogFormat               = "text"
	DefaultLogOutput               = "stderr"
	DefaultMetricsPort      uint16 = 0

	// BindHost is the interface every listener binds to.
	BindHost = "0.0.0.0"
)

// LookupFunc returns the value of an environment variable and whether it was set.
// os.LookupEnv satisfies it.
type LookupFunc func(string) (string, bool)

// Config holds the settings read once at startup. It is not modified afterwards.
type Config struct {
	Port             uint16
	CountdownSeconds uint
	LogLevel         string
	LogFormat        string
	LogOutput        string
	MetricsPort      uint16

	// Fallbacks lists the variables that were set but could not be parsed.
	Fallbacks []Fallback
}

// Fallback records a variable whose value was replaced by its default.
type Fallback struct {
	Name  string
	Value string
}

// Load reads the configuration from the process environment.
func Load() *Config {
	return LoadFrom(os.LookupEnv)
}

// LoadFrom reads the configuration using the provided lookup function.
func LoadFrom(lookup LookupFunc) *Config {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	r := &reader{lookup: lookup}
	cfg := &Config{
		Port:             read(r, EnvPort, DefaultPort, parseListenPort),
		CountdownSeconds: read(r, EnvCountdownSeconds, DefaultCountdownSeconds, parseSeconds),
		LogLevel:         read(r, EnvLogLevel, DefaultLogLevel, parseLogLevel),
		LogFormat:        read(r, EnvLogFormat, DefaultLogFormat, parseLogFormat),
		LogOutput:        read(r, EnvLogOutput, DefaultLogOutput, parseNonEmpty),
		MetricsPort:      read(r, EnvMetricsPort, DefaultMetricsPort, parsePort),
	}
	cfg.Fallbacks = r.fallbacks

	if cfg.MetricsPort == cfg.Port {
		cfg.MetricsPort = 0
	}
	return cfg
}

// ListenAddr is the address of the main HTTP listener.
func (c *Config) ListenAddr() string {
	return hostPort(c.Port)
}

// MetricsEnabled reports whether the metrics listener should run.
func (c *Config) MetricsEnabled() bool {
	return c.MetricsPort > 0
}

// MetricsAddr is the address of the metrics listener. Empty when disabled.
func (c *Config) MetricsAddr() string {
	if !c.MetricsEnabled() {
		return ""
	}
	return hostPort(c.MetricsPort)
}

func hostPort(port uint16) string {
	return net.JoinHostPort(BindHost, strconv.FormatUint(uint64(port), 10))
}

// Describe returns a one-line summary for log output.
func (c *Config) Describe() string {
	return fmt.Sprintf("port=%d countdown=%ds metrics_port=%d", c.Port, c.CountdownSeconds, c.MetricsPort)
}
