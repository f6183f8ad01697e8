package arguments

import (
	"errors"
	"testing"

	"github.com/anoideaopen/fna/core/reflectx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams(t *testing.T) []reflectx.Param {
	t.Helper()

	params, err := reflectx.Signature(
		reflectx.Required("a"),
		reflectx.Required("b"),
		reflectx.Optional("c", "D"),
	)
	require.NoError(t, err)

	return params
}

func TestReconcile(t *testing.T) {
	params := testParams(t)

	tests := []struct {
		name    string
		c       Collection
		want    []any
		wantErr string
	}{
		{
			name: "dict out of order with default",
			c:    Dict(map[string]any{"b": "B", "a": "A"}),
			want: []any{"A", "B", "D"},
		},
		{
			name: "dict complete",
			c:    Dict(map[string]any{"a": "a", "b": "b", "c": "c"}),
			want: []any{"a", "b", "c"},
		},
		{
			name: "list complete",
			c:    List("a", "b", "c"),
			want: []any{"a", "b", "c"},
		},
		{
			name: "list shorter than params is passed through",
			c:    List("a"),
			want: []any{"a"},
		},
		{
			name: "list longer than params is passed through",
			c:    List("a", "b", "c", "d"),
			want: []any{"a", "b", "c", "d"},
		},
		{
			name: "empty is a list",
			c:    Of(),
			want: []any{},
		},
		{
			name: "dict ignores unknown names",
			c:    Dict(map[string]any{"a": "a", "b": "b", "z": "z"}),
			want: []any{"a", "b", "D"},
		},
		{
			name: "dict keeps nil values",
			c:    Dict(map[string]any{"a": nil, "b": "b", "c": nil}),
			want: []any{nil, "b", nil},
		},
		{
			name: "dict repeated name takes the last value",
			c:    Of(Named("a", "first"), Named("b", "b"), Named("a", "last")),
			want: []any{"last", "b", "D"},
		},
		{
			name:    "dict misses the first required parameter",
			c:       Dict(map[string]any{"b": "b"}),
			wantErr: "Missing parameter 'a' on position 0",
		},
		{
			name:    "dict misses the second required parameter",
			c:       Dict(map[string]any{"a": "a", "c": "c"}),
			wantErr: "Missing parameter 'b' on position 1",
		},
		{
			name:    "mixed",
			c:       Of(Named("a", "a"), Positional("b")),
			wantErr: "Unable to handle mixed arrays",
		},
		{
			name:    "mixed positional first",
			c:       Of(Positional("a"), Named("b", "b"), Named("c", "c")),
			wantErr: "Unable to handle mixed arrays",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Reconcile(params, tt.c)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconcileErrors(t *testing.T) {
	params := testParams(t)

	_, err := Reconcile(params, Dict(map[string]any{"b": "b"}))
	require.ErrorIs(t, err, ErrMissingParameter)

	var missing *MissingParameterError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "a", missing.Name)
	assert.Equal(t, 0, missing.Position)

	_, err = Reconcile(params, Of(Named("a", "a"), Positional("b")))
	require.ErrorIs(t, err, ErrMixedArguments)
	require.NotErrorIs(t, err, ErrMissingParameter)
}

func TestReconcileIsDeterministic(t *testing.T) {
	params := testParams(t)
	c := Dict(map[string]any{"b": "B", "a": "A"})

	first, err := Reconcile(params, c)
	require.NoError(t, err)
	second, err := Reconcile(params, c)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, testParams(t), params)
}

func TestReconcileWithoutParams(t *testing.T) {
	got, err := Reconcile(nil, Dict(map[string]any{"a": 1}))
	require.NoError(t, err)
	assert.Empty(t, got)
}
