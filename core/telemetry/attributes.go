package telemetry

import "go.opentelemetry.io/otel/attribute"

// Attribute keys set on invocation spans.
const (
	KeyCallbackKind  = attribute.Key("fna.callback.kind")
	KeyCallbackName  = attribute.Key("fna.callback.name")
	KeyArgumentShape = attribute.Key("fna.arguments.shape")
	KeyArgumentCount = attribute.Key("fna.arguments.count")
	KeyCallID        = attribute.Key("fna.call_id")
)

// CallbackKind returns the kind attribute of the invoked callback.
func CallbackKind(kind string) attribute.KeyValue {
	return KeyCallbackKind.String(kind)
}

// CallbackName returns the name attribute of the invoked callback.
func CallbackName(name string) attribute.KeyValue {
	return KeyCallbackName.String(name)
}

// ArgumentShape returns the shape attribute of the argument collection.
func ArgumentShape(shape string) attribute.KeyValue {
	return KeyArgumentShape.String(shape)
}

// ArgumentCount returns the number of supplied arguments as an attribute.
func ArgumentCount(n int) attribute.KeyValue {
	return KeyArgumentCount.Int(n)
}

// CallID returns the invocation id attribute.
func CallID(id string) attribute.KeyValue {
	return KeyCallID.String(id)
}
