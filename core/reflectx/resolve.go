package reflectx

import (
	"fmt"
	"reflect"
	"strings"
)

// IsInvocable reports whether candidate can be resolved against the registry.
func (r *Registry) IsInvocable(candidate any) bool {
	switch c := candidate.(type) {
	case nil:
		return false
	case string:
		if typeName, method, ok := strings.Cut(c, ScopeSeparator); ok {
			return r.hasMethod(Pair{Target: typeName, Method: method})
		}
		_, ok := r.function(c)
		return ok
	case *ClosureFunc:
		if c == nil {
			return false
		}
		return isFunc(c.fn)
	case Pair:
		return r.hasMethod(c)
	}

	if isFunc(candidate) {
		return true
	}

	_, ok := candidate.(Invoker)
	return ok
}

// Resolve classifies candidate and extracts its parameter descriptors.
// It returns ErrInvalidCallback when candidate is not invocable.
func (r *Registry) Resolve(candidate any) (*Callable, error) {
	if !r.IsInvocable(candidate) {
		return nil, ErrInvalidCallback
	}

	switch c := candidate.(type) {
	case string:
		if typeName, method, ok := strings.Cut(c, ScopeSeparator); ok {
			return r.method(Pair{Target: typeName, Method: method})
		}
		f, _ := r.function(c)
		return &Callable{kind: KindFunction, name: c, params: f.params, fn: f.fn}, nil
	case *ClosureFunc:
		return c.callable()
	case Pair:
		return r.method(c)
	}

	if isFunc(candidate) {
		return Closure(candidate).callable()
	}

	if inv, ok := candidate.(Invoker); ok {
		return r.method(Pair{Target: inv, Method: CallOperator})
	}

	panic("reflectx: found something invocable that cannot be introspected")
}

// Resolve resolves candidate against DefaultRegistry.
func Resolve(candidate any) (*Callable, error) {
	return DefaultRegistry.Resolve(candidate)
}

func (r *Registry) hasMethod(p Pair) bool {
	recv, ok := r.receiver(p.Target)
	if !ok {
		return false
	}

	if isCallOperator(recv, p.Method) {
		return true
	}

	_, _, ok = lookupMethod(reflect.ValueOf(recv), p.Method)
	return ok
}

// receiver returns the value p.Target methods are looked up on.
func (r *Registry) receiver(target any) (any, bool) {
	switch t := target.(type) {
	case nil:
		return nil, false
	case string:
		return r.Prototype(t)
	default:
		return target, true
	}
}

func (r *Registry) method(p Pair) (*Callable, error) {
	recv, ok := r.receiver(p.Target)
	if !ok {
		return nil, ErrInvalidCallback
	}

	kind := KindMethod
	name := reflect.TypeOf(recv).String() + "." + p.Method
	if typeName, static := p.Target.(string); static {
		kind = KindStatic
		name = typeName + ScopeSeparator + p.Method
	}

	if isCallOperator(recv, p.Method) {
		if kind == KindMethod {
			kind = KindObject
		}

		params, err := r.methodParams(reflect.ValueOf(recv), CallOperator, -1)
		if err != nil {
			return nil, err
		}

		return &Callable{kind: kind, name: name, params: params, invoker: recv.(Invoker)}, nil //nolint:forcetypeassert
	}

	fn, method, ok := lookupMethod(reflect.ValueOf(recv), p.Method)
	if !ok {
		return nil, ErrInvalidCallback
	}
	if fn.Type().IsVariadic() {
		return nil, fmt.Errorf("%w: variadic parameters are not supported: %s", ErrSignatureMismatch, name)
	}

	params, err := r.methodParams(reflect.ValueOf(recv), method, fn.Type().NumIn())
	if err != nil {
		return nil, err
	}

	return &Callable{kind: kind, name: name, params: params, fn: fn}, nil
}

// methodParams returns the declared parameters of recv's method. numIn is
// the method's input count, or -1 for the variadic call operator.
func (r *Registry) methodParams(recv reflect.Value, method string, numIn int) ([]Param, error) {
	if params, ok := r.signature(recv.Type(), method); ok {
		return params, nil
	}

	if signer, ok := recv.Interface().(Signer); ok {
		if params, ok := signer.Signature(method); ok {
			if numIn < 0 {
				return Signature(params...)
			}
			return declare(recv.MethodByName(method).Type(), params, true)
		}
	}

	if numIn < 0 {
		return []Param{}, nil
	}

	return positional(numIn), nil
}

func (c *ClosureFunc) callable() (*Callable, error) {
	fn := reflect.ValueOf(c.fn)
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return nil, ErrInvalidCallback
	}

	params, err := declare(fn.Type(), c.params, c.declared)
	if err != nil {
		return nil, err
	}

	return &Callable{kind: KindClosure, name: fn.Type().String(), params: params, fn: fn}, nil
}

func isFunc(v any) bool {
	fn := reflect.ValueOf(v)
	return fn.Kind() == reflect.Func && !fn.IsNil()
}

func isCallOperator(recv any, method string) bool {
	if _, ok := recv.(Invoker); !ok {
		return false
	}
	return method == CallOperator || method == "invoke"
}
