package reflectx

import (
	"errors"
	"fmt"
	"reflect"
)

// Error types.
var (
	ErrInvalidCallback        = errors.New("Invalid callback") //nolint:stylecheck
	ErrIncorrectArgumentCount = errors.New("incorrect number of arguments")
	ErrInvalidArgumentValue   = errors.New("invalid argument value")
	ErrMethodNotFound         = errors.New("method not found")
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Callable is a resolved invocable together with its parameter descriptors.
// It is immutable and safe for concurrent use when the underlying function is.
type Callable struct {
	kind    Kind
	name    string
	params  []Param
	fn      reflect.Value
	invoker Invoker
}

// Kind returns the invocable's classification.
func (c *Callable) Kind() Kind {
	return c.kind
}

// Name returns a human readable reference to the invocable.
func (c *Callable) Name() string {
	return c.name
}

// Params returns a copy of the parameter descriptors in position order.
func (c *Callable) Params() []Param {
	out := make([]Param, len(c.params))
	copy(out, c.params)
	return out
}

// ReturnsError reports whether the last result of the invocable is an error.
func (c *Callable) ReturnsError() bool {
	if c.invoker != nil {
		return true
	}

	t := c.fn.Type()
	return t.NumOut() > 0 && t.Out(t.NumOut()-1) == errorType
}

// Call invokes the underlying function with args in order.
// The only checks performed are the ones the call site itself requires: the
// number of arguments and their assignability to the parameter types. Values
// are never converted; a nil argument becomes the zero value of a nillable
// parameter type.
//
// The function returns the results of the call, including a trailing error
// result if the function declares one. Panics raised by the function are not
// recovered.
//
// Example:
//
//	c, _ := Resolve(Closure(func(a, b string) string { return a + b }, Required("a"), Required("b")))
//	out, err := c.Call([]any{"A", "B"})
//	fmt.Println(out[0]) // Output: AB
func (c *Callable) Call(args []any) ([]any, error) {
	if c.invoker != nil {
		res, err := c.invoker.Invoke(args...)
		return []any{res, err}, nil
	}

	fnType := c.fn.Type()
	if fnType.NumIn() != len(args) {
		return nil, fmt.Errorf(
			"%w: found %d but expected %d: call %s",
			ErrIncorrectArgumentCount,
			len(args),
			fnType.NumIn(),
			c.name,
		)
	}

	var (
		in  = make([]reflect.Value, len(args))
		err error
	)
	for i, arg := range args {
		if in[i], err = valueOf(arg, fnType.In(i)); err != nil {
			return nil, fmt.Errorf("%w: call %s, argument %d", err, c.name, i)
		}
	}

	output := make([]any, fnType.NumOut())
	for i, res := range c.fn.Call(in) {
		output[i] = res.Interface()
	}

	return output, nil
}
