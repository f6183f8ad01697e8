package arguments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestFromJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Collection
		wantErr bool
	}{
		{
			name: "array",
			data: `["a", 1, true, null]`,
			want: List("a", float64(1), true, nil),
		},
		{
			name: "object",
			data: `{"b": "B", "a": "A"}`,
			want: Of(Named("a", "A"), Named("b", "B")),
		},
		{
			name: "null",
			data: `null`,
			want: Collection{},
		},
		{
			name: "nested values are kept",
			data: `{"a": [1, 2], "b": {"c": "d"}}`,
			want: Of(Named("a", []any{float64(1), float64(2)}), Named("b", map[string]any{"c": "d"})),
		},
		{
			name:    "scalar",
			data:    `"a"`,
			wantErr: true,
		},
		{
			name:    "invalid",
			data:    `[`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromJSON([]byte(tt.data))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedPayload)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromStruct(t *testing.T) {
	s, err := structpb.NewStruct(map[string]any{"a": "A", "b": 2})
	require.NoError(t, err)

	c := FromStruct(s)
	assert.Equal(t, ShapeDict, Classify(c))
	assert.Equal(t, Of(Named("a", "A"), Named("b", float64(2))), c)
}

func TestFromListValue(t *testing.T) {
	l, err := structpb.NewList([]any{"a", "b"})
	require.NoError(t, err)

	c := FromListValue(l)
	assert.Equal(t, ShapeList, Classify(c))
	assert.Equal(t, List("a", "b"), c)
}

func TestFromValue(t *testing.T) {
	c, err := FromValue(nil)
	require.NoError(t, err)
	assert.Empty(t, c)

	_, err = FromValue(structpb.NewNumberValue(1))
	require.ErrorIs(t, err, ErrUnsupportedPayload)
}
