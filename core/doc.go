// Package core wraps an invocable so it can be called with arguments
// supplied either by position or by parameter name.
//
// Invocables:
//
// A Wrapper accepts any of the invocable shapes understood by
// [github.com/anoideaopen/fna/core/reflectx]:
//
//   - "foo": a function registered with reflectx.Registry.Func;
//   - "Dummy::Foo": a method on a prototype registered with reflectx.Registry.Type;
//   - reflectx.Pair{Target: obj, Method: "Foo"}: a method bound to obj;
//   - a function value, bare or declared with reflectx.Closure;
//   - a value implementing reflectx.Invoker.
//
// Go keeps no parameter names at run time, so names and defaults are
// declared next to the invocable:
//
//	reg := reflectx.NewRegistry()
//	_ = reg.Type("Dummy", Dummy{})
//	_ = reg.Method(Dummy{}, "Foo",
//	    reflectx.Required("a"),
//	    reflectx.Required("b"),
//	    reflectx.Optional("c", "default value"),
//	)
//
//	w, err := core.NewWrapper("Dummy::Foo", core.WithRegistry(reg))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Arguments:
//
// An [arguments.Collection] is an ordered sequence of entries, each either
// positional or named. Positional collections are passed to the invocable
// unchanged. Named collections are mapped onto the declared parameters by
// name, taking declared defaults for omitted parameters:
//
//	w.CallNamed(map[string]any{"b": "B", "a": "A"}) // Foo("A", "B", "default value")
//	w.Call("a", "b", "c")                           // Foo("a", "b", "c")
//
// Collections mixing both kinds of entries are rejected with
// arguments.ErrMixedArguments.
//
// Error Handling:
//
// Construction fails with reflectx.ErrInvalidCallback for values that are
// not invocable. A named call that omits a parameter without default fails
// with *arguments.MissingParameterError. Errors returned by the invocable
// reach the caller unchanged, and panics are not recovered.
//
// Observability:
//
// Every invocation runs in an OpenTelemetry span named "fna.Invoke" and
// logs failures at debug level through logrus; see WithTracerProvider,
// WithLogger and WithConfig.
package core
