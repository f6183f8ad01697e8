package reflectx

import (
	"reflect"
	"sort"

	"github.com/anoideaopen/fna/core/stringsx"
)

// Methods inspects the type of the given value 'v' using reflection and returns a slice of strings
// containing the names of all methods that are defined on its type. This function only considers
// exported methods (those starting with an uppercase letter) due to Go's visibility rules in reflection.
//
// Parameters:
//   - v: The value whose type's methods are to be listed.
//
// Returns:
//   - []string: A slice containing the names of all methods associated with the type of 'v'.
func Methods(v any) []string {
	methodNames := make([]string, 0)
	if v == nil {
		return methodNames
	}

	t := reflect.TypeOf(v)
	for i := 0; i < t.NumMethod(); i++ {
		methodNames = append(methodNames, t.Method(i).Name)
	}

	sort.Strings(methodNames)

	return methodNames
}

// lookupMethod returns the bound method 'name' of v and its canonical name.
// A name starting with a lower case letter is retried with the first letter upper cased,
// so "Dummy::foo" resolves Dummy.Foo.
func lookupMethod(v reflect.Value, name string) (reflect.Value, string, bool) {
	if !v.IsValid() || name == "" {
		return reflect.Value{}, "", false
	}

	for _, candidate := range []string{name, stringsx.UpperFirstChar(name)} {
		if m := v.MethodByName(candidate); m.IsValid() {
			return m, candidate, true
		}
	}

	return reflect.Value{}, "", false
}

// indirect returns the element type of pointer types.
func indirect(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}
