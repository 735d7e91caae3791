package derive

import (
	"errors"
	"testing"

	"github.com/npillmayer/eot"
	"github.com/npillmayer/eot/adt"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Person struct {
	Name string `eot:"name"`
	Age  int    `eot:"age"`
}

type Shape interface{ isShape() }

type Circle struct{ Radius int }
type Rect struct{ W, H int }

func (Circle) isShape() {}
func (Rect) isShape()   {}

func TestStructMetadata(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "eot.derive")
	defer teardown()
	//
	g, err := Struct[Person]()
	require.NoError(t, err)
	want := adt.Datatype{
		Name: "Person",
		Constructors: []adt.Constructor{
			{Name: "Person", Fields: adt.Selectors{"name", "age"}},
		},
	}
	assert.True(t, g.Meta().Equal(want), "metadata = %s", g.Meta())
}

func TestStructRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "eot.derive")
	defer teardown()
	//
	g, err := Struct[Person]()
	require.NoError(t, err)
	p := Person{Name: "Paul", Age: 77}
	back, err := g.Reconstruct(g.Deconstruct(p))
	require.NoError(t, err)
	assert.Equal(t, p, back)
}

func TestStructRejectsNonStruct(t *testing.T) {
	_, err := Struct[int]()
	assert.True(t, errors.Is(err, ErrCannotDerive), "err = %v", err)
}

func TestStructRejectsUnexportedFields(t *testing.T) {
	type hidden struct {
		a int
	}
	_ = hidden{a: 1}
	_, err := Struct[hidden]()
	assert.True(t, errors.Is(err, ErrCannotDerive), "err = %v", err)
}

func TestSumMetadata(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "eot.derive")
	defer teardown()
	//
	g, err := Sum[Shape]("Shape", Circle{}, Rect{})
	require.NoError(t, err)
	want := adt.Datatype{
		Name: "Shape",
		Constructors: []adt.Constructor{
			{Name: "Circle", Fields: adt.Selectors{"Radius"}},
			{Name: "Rect", Fields: adt.Selectors{"W", "H"}},
		},
	}
	assert.True(t, g.Meta().Equal(want), "metadata = %s", g.Meta())
}

func TestSumRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "eot.derive")
	defer teardown()
	//
	g, err := Sum[Shape]("Shape", Circle{}, Rect{})
	require.NoError(t, err)
	for _, v := range []Shape{Circle{Radius: 7}, Rect{W: 3, H: 4}} {
		back, err := g.Reconstruct(g.Deconstruct(v))
		require.NoError(t, err)
		assert.Equal(t, v, back)
	}
}

// Metadata and representation are two views of one shape: for every
// constructor, the declared arity must equal the field count of the
// alternative at the same depth.
func TestSumShapeAgreement(t *testing.T) {
	g, err := Sum[Shape]("Shape", Circle{}, Rect{})
	require.NoError(t, err)
	values := []Shape{Circle{}, Rect{}}
	for i, c := range g.Meta().Constructors {
		depth, fs, ok := eot.Split(g.Deconstruct(values[i]))
		require.True(t, ok)
		assert.Equal(t, i, depth, "constructor %q", c.Name)
		assert.Equal(t, c.Fields.Arity(), eot.Arity(fs), "constructor %q", c.Name)
	}
}

func TestSumRejectsNonInterface(t *testing.T) {
	_, err := Sum[Circle]("Circle", Circle{})
	assert.True(t, errors.Is(err, ErrCannotDerive), "err = %v", err)
}

func TestSumRejectsEmptyVariantList(t *testing.T) {
	_, err := Sum[Shape]("Shape")
	assert.True(t, errors.Is(err, ErrCannotDerive), "err = %v", err)
}
