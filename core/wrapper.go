package core

import (
	"context"

	"github.com/anoideaopen/fna/core/arguments"
	"github.com/anoideaopen/fna/core/logger"
	"github.com/anoideaopen/fna/core/reflectx"
	"github.com/anoideaopen/fna/core/telemetry"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

const spanInvoke = "fna.Invoke"

// Wrapper owns one resolved invocable and calls it with positional or
// named argument collections. Descriptors are resolved once by NewWrapper
// and never change, so a Wrapper may be invoked any number of times,
// concurrently if the invocable allows it.
type Wrapper struct {
	callable *reflectx.Callable
	params   []reflectx.Param
	log      logrus.FieldLogger
	tracing  *telemetry.TracingHandler
}

// NewWrapper resolves candidate and returns a wrapper around it.
//
// candidate may be the name of a registered function, a "Type::Method"
// reference to a registered type, a function value (bare or declared with
// reflectx.Closure), a reflectx.Pair of target and method name, or a value
// implementing reflectx.Invoker. Anything else fails with
// reflectx.ErrInvalidCallback.
//
// Example:
//
//	w, err := core.NewWrapper(reflectx.Closure(
//	    func(a, b, c string) string { return a + b + c },
//	    reflectx.Required("a"), reflectx.Required("b"), reflectx.Optional("c", "D"),
//	))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := w.CallNamed(map[string]any{"b": "B", "a": "A"}) // "ABD"
func NewWrapper(candidate any, opts ...WrapperOption) (*Wrapper, error) {
	o := wrapperOptions{
		Registry: reflectx.DefaultRegistry,
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	if o.Logger == nil {
		o.Logger = logger.Logger()
	}

	callable, err := o.Registry.Resolve(candidate)
	if err != nil {
		o.Logger.WithError(err).Debugf("resolving callback of type %T", candidate)
		return nil, err
	}

	log := o.Logger.WithFields(logrus.Fields{
		"callback": callable.Name(),
		"kind":     callable.Kind().String(),
	})
	log.Debugf("resolved callback with %d parameters", len(callable.Params()))

	return &Wrapper{
		callable: callable,
		params:   callable.Params(),
		log:      log,
		tracing:  telemetry.NewTracingHandler(o.TracerProvider),
	}, nil
}

// Kind returns the classification of the wrapped invocable.
func (w *Wrapper) Kind() reflectx.Kind {
	return w.callable.Kind()
}

// Name returns a readable reference to the wrapped invocable.
func (w *Wrapper) Name() string {
	return w.callable.Name()
}

// Params returns a copy of the cached parameter descriptors.
func (w *Wrapper) Params() []reflectx.Param {
	out := make([]reflectx.Param, len(w.params))
	copy(out, w.params)
	return out
}

// Invoke calls the wrapped invocable with c. See InvokeContext.
func (w *Wrapper) Invoke(c arguments.Collection) (any, error) {
	return w.InvokeContext(context.Background(), c)
}

// Call invokes the wrapped invocable with positional values.
func (w *Wrapper) Call(values ...any) (any, error) {
	return w.Invoke(arguments.List(values...))
}

// CallNamed invokes the wrapped invocable with values bound by parameter name.
func (w *Wrapper) CallNamed(values map[string]any) (any, error) {
	return w.Invoke(arguments.Dict(values))
}

// InvokeContext reconciles c against the cached descriptors and calls the
// wrapped invocable with the resulting positional vector. ctx only parents
// the tracing span.
//
// Reconciliation errors are arguments.ErrMixedArguments and
// *arguments.MissingParameterError. A trailing error result of the
// invocable is returned as is; the remaining results yield nil, the single
// value, or a []any of all values. Panics are not recovered.
func (w *Wrapper) InvokeContext(ctx context.Context, c arguments.Collection) (result any, err error) {
	var (
		callID = uuid.NewString()
		shape  = arguments.Classify(c)
		log    = w.log.WithFields(logrus.Fields{
			"call_id": callID,
			"shape":   shape.String(),
		})
	)

	_, span := w.tracing.StartNewSpan(ctx, spanInvoke, trace.WithAttributes(
		telemetry.CallbackName(w.callable.Name()),
		telemetry.CallbackKind(w.callable.Kind().String()),
		telemetry.ArgumentShape(shape.String()),
		telemetry.ArgumentCount(len(c)),
		telemetry.CallID(callID),
	))
	defer func() {
		telemetry.EndSpan(span, err)
	}()

	span.AddEvent("reconcile arguments")
	prepared, err := arguments.Reconcile(w.params, c)
	if err != nil {
		log.WithError(err).Debug("reconciling arguments")
		return nil, err
	}

	span.AddEvent("dispatch")
	output, err := w.callable.Call(prepared)
	if err != nil {
		log.WithError(err).Debug("dispatching call")
		return nil, err
	}

	result, err = results(output, w.callable.ReturnsError())
	if err != nil {
		log.WithError(err).Debug("callback returned an error")
	}

	return result, err
}

// results shapes the outputs of a call: a trailing error is split off and
// returned verbatim.
func results(output []any, returnsError bool) (any, error) {
	if returnsError {
		if errorValue := output[len(output)-1]; errorValue != nil {
			return nil, errorValue.(error) //nolint:forcetypeassert
		}

		output = output[:len(output)-1]
	}

	switch len(output) {
	case 0:
		return nil, nil
	case 1:
		return output[0], nil
	default:
		return output, nil
	}
}
