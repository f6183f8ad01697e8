package arguments

// Shape classifies the key space of a collection.
type Shape int

const (
	ShapeMixed Shape = iota - 1
	ShapeList
	ShapeDict
)

func (s Shape) String() string {
	switch s {
	case ShapeList:
		return "list"
	case ShapeDict:
		return "dict"
	case ShapeMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// Classify returns ShapeList for empty or all positional collections,
// ShapeDict when every entry is named and ShapeMixed otherwise.
func Classify(c Collection) Shape {
	named := 0
	for _, e := range c {
		if e.Named {
			named++
		}
	}

	switch named {
	case 0:
		return ShapeList
	case len(c):
		return ShapeDict
	default:
		return ShapeMixed
	}
}
