package arguments

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ErrUnsupportedPayload is returned for payloads that are neither a list nor an object.
var ErrUnsupportedPayload = errors.New("unsupported argument payload")

// FromStruct returns a named collection of the struct fields.
func FromStruct(s *structpb.Struct) Collection {
	return Dict(s.AsMap())
}

// FromListValue returns a positional collection of the list values.
func FromListValue(l *structpb.ListValue) Collection {
	return List(l.AsSlice()...)
}

// FromValue accepts a list value, a struct value or a null value; null
// yields an empty collection.
func FromValue(v *structpb.Value) (Collection, error) {
	switch k := v.GetKind().(type) {
	case *structpb.Value_ListValue:
		return FromListValue(k.ListValue), nil
	case *structpb.Value_StructValue:
		return FromStruct(k.StructValue), nil
	case *structpb.Value_NullValue, nil:
		return Collection{}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedPayload, k)
	}
}

// FromJSON decodes a JSON array into a positional collection and a JSON
// object into a named one, the way JSON-RPC carries params. Numbers decode
// to float64 and are not converted further.
func FromJSON(data []byte) (Collection, error) {
	v := new(structpb.Value)
	if err := protojson.Unmarshal(data, v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedPayload, err)
	}

	return FromValue(v)
}
