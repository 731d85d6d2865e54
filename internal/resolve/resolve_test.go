package resolve

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbsmedya/pojocheck/checkerr"
)

type record struct {
	Name string
}

type unproxied interface {
	Hidden()
}

func TestResolveConcreteTypes(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
	}{
		{"int", reflect.TypeOf(0)},
		{"string", reflect.TypeOf("")},
		{"float64", reflect.TypeOf(0.0)},
		{"struct", reflect.TypeOf(record{})},
		{"func", reflect.TypeOf(func() {})},
		{"pointer to struct", reflect.TypeOf(&record{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Resolve(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, r.Type)
			assert.Empty(t, r.Args)
		})
	}
}

func TestResolveCollections(t *testing.T) {
	r, err := Resolve(reflect.TypeOf([]string{}))
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf([]string{}), r.Type)
	assert.Equal(t, []reflect.Type{reflect.TypeOf("")}, r.ArgTypes())

	r, err = Resolve(reflect.TypeOf([3]int{}))
	require.NoError(t, err)
	assert.Equal(t, []reflect.Type{reflect.TypeOf(0)}, r.ArgTypes())

	r, err = Resolve(reflect.TypeOf(map[string]int{}))
	require.NoError(t, err)
	assert.Equal(t, []reflect.Type{reflect.TypeOf(""), reflect.TypeOf(0)}, r.ArgTypes())

	r, err = Resolve(reflect.TypeOf(make(chan int)))
	require.NoError(t, err)
	assert.Equal(t, []reflect.Type{reflect.TypeOf(0)}, r.ArgTypes())
}

func TestResolveNestedCollections(t *testing.T) {
	r, err := Resolve(reflect.TypeOf(map[string][]record{}))
	require.NoError(t, err)
	require.Len(t, r.Args, 2)
	assert.Equal(t, reflect.TypeOf([]record{}), r.Args[1].Type)
	assert.Equal(t, []reflect.Type{reflect.TypeOf(record{})}, r.Args[1].ArgTypes())
}

func TestResolveBareEmptyInterface(t *testing.T) {
	r, err := Resolve(reflect.TypeOf((*any)(nil)).Elem())
	require.NoError(t, err)
	assert.Equal(t, Placeholder, r.Type)
}

func TestResolveRawCollections(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
	}{
		{"slice of any", reflect.TypeOf([]any{})},
		{"array of any", reflect.TypeOf([2]any{})},
		{"map with any value", reflect.TypeOf(map[string]any{})},
		{"map with any key", reflect.TypeOf(map[any]int{})},
		{"chan of any", reflect.TypeOf(make(chan any))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.typ)
			require.Error(t, err)

			var rawErr *checkerr.RawUseError
			require.ErrorAs(t, err, &rawErr)
			assert.Equal(t, tt.typ, rawErr.Type)
		})
	}
}

func TestResolveLiftsNestedRawUse(t *testing.T) {
	outer := reflect.TypeOf([][]any{})
	_, err := Resolve(outer)
	require.Error(t, err)

	var rawErr *checkerr.RawUseError
	require.ErrorAs(t, err, &rawErr)
	assert.Equal(t, outer, rawErr.Type, "failure should name the outermost declared collection")

	outer = reflect.TypeOf(map[string][]any{})
	_, err = Resolve(outer)
	require.ErrorAs(t, err, &rawErr)
	assert.Equal(t, outer, rawErr.Type)
}

func TestResolvePointerToRawCollection(t *testing.T) {
	outer := reflect.TypeOf((*[]any)(nil))
	_, err := Resolve(outer)
	require.Error(t, err)

	var rawErr *checkerr.RawUseError
	require.ErrorAs(t, err, &rawErr)
	assert.Equal(t, outer, rawErr.Type)
}

func TestResolveProxiedInterface(t *testing.T) {
	stringer := reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	r, err := Resolve(stringer)
	require.NoError(t, err)
	assert.Equal(t, stringer, r.Type)
}

func TestResolveUnproxiedInterface(t *testing.T) {
	_, err := Resolve(reflect.TypeOf((*unproxied)(nil)).Elem())
	require.Error(t, err)

	var unres *checkerr.UnresolvableTypeError
	require.ErrorAs(t, err, &unres)
	assert.Contains(t, err.Error(), "Unable to resolve type:")
}
