package reflectx

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	// ErrAlreadyRegistered is returned when a name is registered twice.
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrNotAFunction is returned when a non-function value is registered as a function.
	ErrNotAFunction = errors.New("not a function")
)

// DefaultRegistry is used when no registry is given.
var DefaultRegistry = NewRegistry()

type registeredFunc struct {
	fn     reflect.Value
	params []Param
}

type methodKey struct {
	t    reflect.Type
	name string
}

// Registry holds the named functions, type prototypes and method signatures
// that textual and static candidates are resolved against.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	funcs   map[string]registeredFunc
	types   map[string]any
	methods map[methodKey][]Param
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		funcs:   make(map[string]registeredFunc),
		types:   make(map[string]any),
		methods: make(map[methodKey][]Param),
	}
}

// Func registers fn under name. Without params the descriptors are
// synthesized as arg0..argN-1.
func (r *Registry) Func(name string, fn any, params ...Param) error {
	v := reflect.ValueOf(fn)
	if name == "" || v.Kind() != reflect.Func || v.IsNil() {
		return fmt.Errorf("%w: %s", ErrNotAFunction, name)
	}

	declared, err := declare(v.Type(), params, len(params) > 0)
	if err != nil {
		return fmt.Errorf("%w: function %s", err, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.funcs[name]; ok {
		return fmt.Errorf("%w: function %s", ErrAlreadyRegistered, name)
	}
	r.funcs[name] = registeredFunc{fn: v, params: declared}

	return nil
}

// Type registers prototype as the receiver of static method references to name.
func (r *Registry) Type(name string, prototype any) error {
	if name == "" || prototype == nil {
		return fmt.Errorf("%w: type '%s' has no prototype", ErrInvalidCallback, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.types[name]; ok {
		return fmt.Errorf("%w: type %s", ErrAlreadyRegistered, name)
	}
	r.types[name] = prototype

	return nil
}

// Method declares the parameters of receiver's method. The declaration
// applies to every value of the receiver's type, pointer or not.
func (r *Registry) Method(receiver any, method string, params ...Param) error {
	if receiver == nil {
		return fmt.Errorf("%w: %s", ErrMethodNotFound, method)
	}

	recv := reflect.ValueOf(receiver)
	key := methodKey{t: indirect(recv.Type())}

	var (
		declared []Param
		err      error
	)
	if isCallOperator(receiver, method) {
		key.name = CallOperator
		declared, err = Signature(params...)
	} else {
		fn, name, ok := lookupMethod(recv, method)
		if !ok {
			return fmt.Errorf("%w: %s: available %v", ErrMethodNotFound, method, Methods(receiver))
		}
		key.name = name
		declared, err = declare(fn.Type(), params, true)
	}
	if err != nil {
		return fmt.Errorf("%w: method %s", err, method)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.methods[key] = declared

	return nil
}

// Function returns the function registered under name.
func (r *Registry) Function(name string) (any, bool) {
	f, ok := r.function(name)
	if !ok {
		return nil, false
	}
	return f.fn.Interface(), true
}

// Prototype returns the prototype registered under name.
func (r *Registry) Prototype(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.types[name]
	return p, ok
}

func (r *Registry) function(name string) (registeredFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.funcs[name]
	return f, ok
}

func (r *Registry) signature(t reflect.Type, method string) ([]Param, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.methods[methodKey{t: indirect(t), name: method}]
	return p, ok
}

// RegisterFunc registers fn in DefaultRegistry.
func RegisterFunc(name string, fn any, params ...Param) error {
	return DefaultRegistry.Func(name, fn, params...)
}

// RegisterType registers prototype in DefaultRegistry.
func RegisterType(name string, prototype any) error {
	return DefaultRegistry.Type(name, prototype)
}

// RegisterMethod declares a method signature in DefaultRegistry.
func RegisterMethod(receiver any, method string, params ...Param) error {
	return DefaultRegistry.Method(receiver, method, params...)
}

// declare checks a parameter declaration against the function type t.
func declare(t reflect.Type, params []Param, declared bool) ([]Param, error) {
	if t.IsVariadic() {
		return nil, fmt.Errorf("%w: variadic parameters are not supported", ErrSignatureMismatch)
	}

	if !declared {
		return positional(t.NumIn()), nil
	}

	out, err := Signature(params...)
	if err != nil {
		return nil, err
	}

	if len(out) != t.NumIn() {
		return nil, fmt.Errorf(
			"%w: declared %d parameters but function takes %d",
			ErrSignatureMismatch,
			len(out),
			t.NumIn(),
		)
	}

	return out, nil
}
