package arguments

import (
	"errors"
	"fmt"

	"github.com/anoideaopen/fna/core/reflectx"
)

var (
	// ErrMixedArguments is returned for collections that mix positional and named entries.
	ErrMixedArguments = errors.New("Unable to handle mixed arrays") //nolint:stylecheck

	// ErrMissingParameter matches every *MissingParameterError.
	ErrMissingParameter = errors.New("missing parameter")
)

// MissingParameterError reports a required parameter a named call omitted.
type MissingParameterError struct {
	Name     string
	Position int
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("Missing parameter '%s' on position %d", e.Name, e.Position)
}

// Is makes errors.Is(err, ErrMissingParameter) hold.
func (e *MissingParameterError) Is(target error) bool {
	return target == ErrMissingParameter
}

// Reconcile builds the positional call vector for params from c.
//
// List collections are returned as is, whatever their length. Dict
// collections are mapped onto params by name in position order; a missing
// name takes the declared default or fails with *MissingParameterError for
// the first such parameter. Names that match no parameter are ignored.
// Mixed collections fail with ErrMixedArguments.
func Reconcile(params []reflectx.Param, c Collection) ([]any, error) {
	switch Classify(c) {
	case ShapeList:
		return c.Values(), nil
	case ShapeDict:
		prepared := make([]any, 0, len(params))
		for _, p := range params {
			value, ok := c.Lookup(p.Name)
			switch {
			case ok:
			case p.HasDefault:
				value = p.Default
			default:
				return nil, &MissingParameterError{Name: p.Name, Position: p.Position}
			}
			prepared = append(prepared, value)
		}
		return prepared, nil
	default:
		return nil, ErrMixedArguments
	}
}
