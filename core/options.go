package core

import (
	"errors"

	"github.com/anoideaopen/fna/core/config"
	"github.com/anoideaopen/fna/core/logger"
	"github.com/anoideaopen/fna/core/reflectx"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

// ErrNilRegistry is returned by WithRegistry(nil).
var ErrNilRegistry = errors.New("registry is nil")

// WrapperOption represents a function that applies configuration options to
// a wrapperOptions object.
type WrapperOption func(opts *wrapperOptions) error

// wrapperOptions holds the collaborators of a Wrapper.
type wrapperOptions struct {
	Registry       *reflectx.Registry   // Registry resolves textual and static candidates.
	Logger         logrus.FieldLogger   // Logger receives debug records, logger.Logger() when nil.
	TracerProvider trace.TracerProvider // TracerProvider creates invocation spans, the global provider when nil.
}

// WithRegistry selects the registry candidates are resolved against
// instead of reflectx.DefaultRegistry.
func WithRegistry(r *reflectx.Registry) WrapperOption {
	return func(o *wrapperOptions) error {
		if r == nil {
			return ErrNilRegistry
		}
		o.Registry = r
		return nil
	}
}

// WithLogger sets the logger of the wrapper.
func WithLogger(l logrus.FieldLogger) WrapperOption {
	return func(o *wrapperOptions) error {
		o.Logger = l
		return nil
	}
}

// WithTracerProvider sets the provider invocation spans are created with.
func WithTracerProvider(tp trace.TracerProvider) WrapperOption {
	return func(o *wrapperOptions) error {
		o.TracerProvider = tp
		return nil
	}
}

// WithConfig builds the logger of the wrapper from cfg. Tracing is not
// touched: install a provider once per process with
// telemetry.InstallTraceProvider and pass it with WithTracerProvider.
func WithConfig(cfg config.Config) WrapperOption {
	return func(o *wrapperOptions) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		o.Logger = logger.New(cfg.LogLevel, cfg.LogFormat)

		return nil
	}
}
