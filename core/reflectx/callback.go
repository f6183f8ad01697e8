package reflectx

// Kind classifies an invocable.
type Kind int

const (
	KindUnknown Kind = iota
	KindFunction
	KindClosure
	KindMethod
	KindStatic
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindClosure:
		return "closure"
	case KindMethod:
		return "method"
	case KindStatic:
		return "static"
	case KindObject:
		return "object"
	case KindUnknown:
		fallthrough
	default:
		return "unknown"
	}
}

const (
	// ScopeSeparator splits a textual static method reference such as "Type::Method".
	ScopeSeparator = "::"

	// CallOperator is the method name an Invoker is dispatched through.
	CallOperator = "Invoke"
)

// Pair references a method on a target. Target is either an object
// instance or the name of a type registered with Registry.Type.
type Pair struct {
	Target any
	Method string
}

// Invoker is implemented by objects that can be called directly.
// Parameter names for the call operator are declared with Signer or
// Registry.Method(obj, CallOperator, ...).
type Invoker interface {
	Invoke(args ...any) (any, error)
}

// Signer is implemented by receivers that declare the parameters of their
// own methods. ok is false when the method is not described.
type Signer interface {
	Signature(method string) (params []Param, ok bool)
}

// ClosureFunc is a function value with an optional parameter declaration.
type ClosureFunc struct {
	fn       any
	params   []Param
	declared bool
}

// Closure wraps fn together with its parameter declaration. Without
// params the descriptors are synthesized as arg0..argN-1, which only
// suits positional calls.
func Closure(fn any, params ...Param) *ClosureFunc {
	return &ClosureFunc{
		fn:       fn,
		params:   params,
		declared: len(params) > 0,
	}
}
