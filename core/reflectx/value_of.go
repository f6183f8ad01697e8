package reflectx

import (
	"fmt"
	"reflect"
)

// valueOf returns arg as a reflect.Value passable to a parameter of type t.
// nil is accepted for nillable kinds only; any other value must be
// assignable to t as is.
func valueOf(arg any, t reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch t.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(t), nil
		default:
			return reflect.Value{}, fmt.Errorf("%w: nil for type '%s'", ErrInvalidArgumentValue, t.String())
		}
	}

	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf(
			"%w: '%v' of type '%s' for type '%s'",
			ErrInvalidArgumentValue,
			arg,
			v.Type().String(),
			t.String(),
		)
	}

	return v, nil
}
