package randgen

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profile struct {
	name   string
	age    int
	scores []float64
	labels map[string]string
}

type node struct {
	value int
	next  *node
}

func TestCreateScalars(t *testing.T) {
	g := New()

	tests := []struct {
		name string
		typ  reflect.Type
		kind reflect.Kind
	}{
		{"bool", reflect.TypeOf(true), reflect.Bool},
		{"int", reflect.TypeOf(0), reflect.Int},
		{"int32", reflect.TypeOf(int32(0)), reflect.Int32},
		{"uint16", reflect.TypeOf(uint16(0)), reflect.Uint16},
		{"float64", reflect.TypeOf(0.0), reflect.Float64},
		{"complex128", reflect.TypeOf(complex128(0)), reflect.Complex128},
		{"string", reflect.TypeOf(""), reflect.String},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := g.Create(tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.typ, v.Type())
		})
	}
}

func TestCreateDefinedScalarType(t *testing.T) {
	type severity int
	g := New()

	v, err := g.Create(reflect.TypeOf(severity(0)))
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(severity(0)), v.Type())
}

func TestCreateStringIsNonEmpty(t *testing.T) {
	g := New()
	v, err := g.Create(reflect.TypeOf(""))
	require.NoError(t, err)
	assert.NotEmpty(t, v.String())
}

func TestCreateTime(t *testing.T) {
	g := New()
	v, err := g.Create(reflect.TypeOf(time.Time{}))
	require.NoError(t, err)
	assert.False(t, v.Interface().(time.Time).IsZero())
}

func TestCreatePointer(t *testing.T) {
	g := New()
	v, err := g.Create(reflect.TypeOf((*int)(nil)))
	require.NoError(t, err)
	require.Equal(t, reflect.Pointer, v.Kind())
	assert.False(t, v.IsNil())
}

func TestCreateSliceBounds(t *testing.T) {
	g := New()
	v, err := g.Create(reflect.TypeOf([]string{}))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v.Len(), 2)
	assert.LessOrEqual(t, v.Len(), 5)
	for i := 0; i < v.Len(); i++ {
		assert.NotEmpty(t, v.Index(i).String())
	}
}

func TestCreateArray(t *testing.T) {
	g := New()
	v, err := g.Create(reflect.TypeOf([4]int{}))
	require.NoError(t, err)
	assert.Equal(t, 4, v.Len())
}

func TestCreateMapBounds(t *testing.T) {
	g := New()
	v, err := g.Create(reflect.TypeOf(map[string]int{}))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, v.Len(), 1)
	assert.LessOrEqual(t, v.Len(), 5)
}

func TestCreateChan(t *testing.T) {
	g := New()
	v, err := g.Create(reflect.TypeOf(make(chan int)))
	require.NoError(t, err)
	assert.Equal(t, reflect.Chan, v.Kind())
	assert.Equal(t, 1, v.Cap())
}

func TestCreateStructPopulatesUnexportedFields(t *testing.T) {
	g := New()
	v, err := g.Create(reflect.TypeOf(profile{}))
	require.NoError(t, err)

	p := v.Interface().(profile)
	assert.NotEmpty(t, p.name)
	assert.NotEmpty(t, p.scores)
	assert.NotEmpty(t, p.labels)
}

func TestCreateSelfReferentialTypeTerminates(t *testing.T) {
	g := New()
	v, err := g.Create(reflect.TypeOf(node{}))
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(node{}), v.Type())
}

func TestWithSeedIsDeterministic(t *testing.T) {
	a := New(WithSeed(99))
	b := New(WithSeed(99))

	for i := 0; i < 10; i++ {
		va, err := a.Create(reflect.TypeOf(""))
		require.NoError(t, err)
		vb, err := b.Create(reflect.TypeOf(""))
		require.NoError(t, err)
		assert.Equal(t, va.String(), vb.String())
	}
}

func TestInterfaceWithoutFallbackIsZero(t *testing.T) {
	g := New()
	v, err := g.Create(reflect.TypeOf((*error)(nil)).Elem())
	require.NoError(t, err)
	assert.True(t, v.IsZero())
}

func TestFallbackHook(t *testing.T) {
	sentinel := "from the hook"
	g := New(WithFallback(func(t reflect.Type) (reflect.Value, bool, error) {
		if t.Kind() == reflect.Interface {
			return reflect.ValueOf(sentinel), true, nil
		}
		return reflect.Value{}, false, nil
	}))

	v, err := g.Create(reflect.TypeOf((*any)(nil)).Elem())
	require.NoError(t, err)
	assert.Equal(t, sentinel, v.Interface())
}

func TestCreateWithTypeArgs(t *testing.T) {
	g := New()

	v, err := g.CreateWithTypeArgs(reflect.TypeOf([]any{}), []reflect.Type{reflect.TypeOf("")})
	require.NoError(t, err)
	require.Equal(t, reflect.Slice, v.Kind())
	for i := 0; i < v.Len(); i++ {
		assert.Equal(t, reflect.String, v.Index(i).Elem().Kind())
	}

	v, err = g.CreateWithTypeArgs(reflect.TypeOf(map[string]any{}),
		[]reflect.Type{reflect.TypeOf(""), reflect.TypeOf(0)})
	require.NoError(t, err)
	require.Equal(t, reflect.Map, v.Kind())
	for _, key := range v.MapKeys() {
		assert.Equal(t, reflect.Int, v.MapIndex(key).Elem().Kind())
	}
}

func TestCreateWithTypeArgsArity(t *testing.T) {
	g := New()

	_, err := g.CreateWithTypeArgs(reflect.TypeOf([]any{}), nil)
	assert.Error(t, err)

	_, err = g.CreateWithTypeArgs(reflect.TypeOf(map[string]any{}), []reflect.Type{reflect.TypeOf("")})
	assert.Error(t, err)
}

func TestCreateWithTypeArgsIgnoredForScalars(t *testing.T) {
	g := New()
	v, err := g.CreateWithTypeArgs(reflect.TypeOf(0), []reflect.Type{reflect.TypeOf("")})
	require.NoError(t, err)
	assert.Equal(t, reflect.Int, v.Kind())
}
