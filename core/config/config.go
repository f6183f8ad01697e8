package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/anoideaopen/fna/core/logger"
	"github.com/anoideaopen/fna/core/stringsx"
	"github.com/sirupsen/logrus"
)

// Environment variables read by FromEnv.
const (
	EnvLoggingLevel  = "FNA_LOGGING_LEVEL"
	EnvLoggingFormat = "FNA_LOGGING_FORMAT"
	EnvTraceEndpoint = "FNA_TRACE_ENDPOINT"
	EnvServiceName   = "FNA_SERVICE_NAME"
)

const (
	defaultLogLevel    = "warning"
	defaultLogFormat   = "text"
	defaultServiceName = "fna"
)

var (
	ErrCfgBytesEmpty    = errors.New("config bytes is empty")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// Config holds the runtime settings of the wrapper's ambient services.
type Config struct {
	LogLevel      string `json:"logLevel,omitempty"`      // logrus level name
	LogFormat     string `json:"logFormat,omitempty"`     // "text" or "json"
	TraceEndpoint string `json:"traceEndpoint,omitempty"` // OTLP/HTTP collector, tracing is disabled when empty
	ServiceName   string `json:"serviceName,omitempty"`   // service name reported with traces
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:    defaultLogLevel,
		LogFormat:   defaultLogFormat,
		ServiceName: defaultServiceName,
	}
}

// FromEnv reads the configuration from the environment, keeping defaults
// for unset variables.
func FromEnv() (Config, error) {
	cfg := Default()

	if v, ok := os.LookupEnv(EnvLoggingLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvLoggingFormat); ok && v != "" {
		cfg.LogFormat = v
	}
	if v, ok := os.LookupEnv(EnvTraceEndpoint); ok {
		cfg.TraceEndpoint = v
	}
	if v, ok := os.LookupEnv(EnvServiceName); ok && v != "" {
		cfg.ServiceName = v
	}

	return cfg, cfg.Validate()
}

// FromBytes parses a JSON encoded configuration over the defaults.
func FromBytes(cfgBytes []byte) (Config, error) {
	if len(cfgBytes) == 0 {
		return Config{}, ErrCfgBytesEmpty
	}

	cfg := Default()
	if err := json.Unmarshal(cfgBytes, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the log level and format.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: '%s'", ErrInvalidLogLevel, c.LogLevel)
	}

	if !stringsx.OneOf(strings.ToLower(c.LogFormat), "text", "json") {
		return fmt.Errorf("%w: '%s'", ErrInvalidLogFormat, c.LogFormat)
	}

	return nil
}

// Apply sets the level and formatter of l.
func (c Config) Apply(l *logrus.Logger) error {
	if err := c.Validate(); err != nil {
		return err
	}

	level, _ := logrus.ParseLevel(c.LogLevel)
	l.SetLevel(level)
	l.SetFormatter(logger.Formatter(c.LogFormat))

	return nil
}
