package arguments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		c    Collection
		want Shape
	}{
		{name: "list", c: List(1, 2, 3), want: ShapeList},
		{name: "dict", c: Dict(map[string]any{"one": 1, "two": "2", "three": "3"}), want: ShapeDict},
		{name: "mixed", c: Of(Named("one", "1"), Positional("2"), Named("three", "3")), want: ShapeMixed},
		{name: "empty", c: Of(), want: ShapeList},
		{name: "nil", c: nil, want: ShapeList},
		{name: "empty dict is a list", c: Dict(map[string]any{}), want: ShapeList},
		{name: "empty name is still named", c: Of(Named("", 1)), want: ShapeDict},
		{name: "mixed positional first", c: Of(Positional("b"), Named("a", "a")), want: ShapeMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.c))
		})
	}
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "list", ShapeList.String())
	assert.Equal(t, "dict", ShapeDict.String())
	assert.Equal(t, "mixed", ShapeMixed.String())
	assert.Equal(t, "unknown", Shape(7).String())
}

func TestCollection(t *testing.T) {
	c := Dict(map[string]any{"b": 2, "a": 1})
	assert.Equal(t, Of(Named("a", 1), Named("b", 2)), c)
	assert.Equal(t, []any{1, 2}, c.Values())

	v, ok := Of(Named("a", 1), Named("a", 2)).Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = List("a").Lookup("a")
	assert.False(t, ok)
}
