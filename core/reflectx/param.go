package reflectx

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrSignatureMismatch is returned when a declared signature does not describe the function it is attached to.
var ErrSignatureMismatch = errors.New("signature mismatch")

// Param describes one formal parameter of an invocable.
type Param struct {
	Name       string // Name is the parameter name used by named calls.
	Position   int    // Position is the zero-based position in the call vector.
	HasDefault bool   // HasDefault reports whether Default is declared.
	Default    any    // Default is used when a named call omits the parameter.
}

// Required declares a parameter without a default value.
func Required(name string) Param {
	return Param{Name: name}
}

// Optional declares a parameter with a default value.
func Optional(name string, def any) Param {
	return Param{Name: name, HasDefault: true, Default: def}
}

// Signature assigns positions to the given parameters in declaration order
// and checks that the names are unique and non-empty.
func Signature(params ...Param) ([]Param, error) {
	out := make([]Param, len(params))
	seen := make(map[string]struct{}, len(params))

	for i, p := range params {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: parameter %d has no name", ErrSignatureMismatch, i)
		}
		if _, ok := seen[p.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate parameter '%s'", ErrSignatureMismatch, p.Name)
		}
		seen[p.Name] = struct{}{}

		p.Position = i
		out[i] = p
	}

	return out, nil
}

// positional synthesizes descriptors arg0..argN-1 for functions declared without names.
func positional(n int) []Param {
	out := make([]Param, n)
	for i := range out {
		out[i] = Param{Name: "arg" + strconv.Itoa(i), Position: i}
	}
	return out
}
