package generic

import (
	"errors"
	"fmt"

	"github.com/npillmayer/eot"
	"github.com/npillmayer/eot/adt"
)

// ErrMalformed is reported by Reconstruct for a representation value whose
// shape corresponds to no declared constructor: either the alternative depth
// runs past the last constructor, or the field count disagrees with the
// constructor's arity. Test with errors.Is.
var ErrMalformed = errors.New("malformed representation")

// ErrDescription is reported by Done for an incomplete or contradictory
// datatype description.
var ErrDescription = errors.New("invalid datatype description")

// Generic is the registered triple for one algebraic data type T: its shape
// metadata plus the two inverse conversions between T and the universal
// representation. A Generic is immutable after Done and safe to share
// between goroutines.
type Generic[T any] struct {
	meta  adt.Datatype
	ctors []converter[T]
}

// converter holds the value-level half of one constructor's registration.
// match reports whether a value was built by this constructor and, if so,
// delivers its fields in declaration order. build is the inverse.
type converter[T any] struct {
	match func(T) ([]interface{}, bool)
	build func([]interface{}) T
}

// Meta returns the shape metadata of T.
func (g Generic[T]) Meta() adt.Datatype {
	return g.meta
}

// Deconstruct converts a value of T into its universal representation. It is
// total: every value of T was built by exactly one declared constructor, so
// exactly one match function claims it. No constructor claiming v means the
// registration was inconsistent, which fails fast.
func (g Generic[T]) Deconstruct(v T) eot.Value {
	for i, c := range g.ctors {
		fields, ok := c.match(v)
		if !ok {
			continue
		}
		arity := g.meta.Constructors[i].Fields.Arity()
		assertThat(len(fields) == arity, "constructor %q of %q delivered %d fields, metadata says %d",
			g.meta.Constructors[i].Name, g.meta.Name, len(fields), arity)
		tracer().Debugf("deconstruct %q: constructor %q at depth %d", g.meta.Name,
			g.meta.Constructors[i].Name, i)
		return eot.Inject(i, eot.List(fields...))
	}
	assertThat(false, "no constructor of %q claims value %v", g.meta.Name, v)
	return eot.Void{} // not reached
}

// Reconstruct converts a representation value back into a value of T. For
// every e produced by Deconstruct, Reconstruct(e) succeeds and yields the
// original value. A hand-built e whose alternative depth or field count
// matches no declared constructor yields ErrMalformed.
func (g Generic[T]) Reconstruct(e eot.Value) (T, error) {
	var none T
	depth, fs, ok := eot.Split(e)
	if !ok || depth >= len(g.ctors) {
		return none, fmt.Errorf("%w: alternative depth %d, but %q has %d constructors",
			ErrMalformed, depth, g.meta.Name, len(g.ctors))
	}
	c := g.meta.Constructors[depth]
	fields := eot.Slice(fs)
	if len(fields) != c.Fields.Arity() {
		return none, fmt.Errorf("%w: constructor %q of %q takes %d fields, representation carries %d",
			ErrMalformed, c.Name, g.meta.Name, c.Fields.Arity(), len(fields))
	}
	tracer().Debugf("reconstruct %q: constructor %q at depth %d", g.meta.Name, c.Name, depth)
	return g.ctors[depth].build(fields), nil
}

// --- Registration ----------------------------------------------------------

// Builder collects the per-constructor registrations for one datatype.
// Obtain one with Describe, add constructors in declaration order, finish
// with Done.
type Builder[T any] struct {
	name  string
	meta  []adt.Constructor
	ctors []converter[T]
}

// Describe starts the registration of an algebraic data type. This is the
// explicit stand-in for compiler-derived structural conversion: clients (or
// generated code) register, per constructor, the field metadata together
// with the match/build pair.
//
//	g, err := generic.Describe[Shape]("Shape").
//		Constructor("Circle", adt.Selectors{"radius"},
//			func(s Shape) ([]interface{}, bool) { … },
//			func(fields []interface{}) Shape { … }).
//		Done()
//
func Describe[T any](name string) *Builder[T] {
	return &Builder[T]{name: name}
}

// Constructor registers the next constructor: its name, its field metadata,
// and the match/build conversion pair. match reports whether a value was
// built by this constructor and delivers its fields in declaration order;
// build is the exact inverse.
func (b *Builder[T]) Constructor(name string, fields adt.Fields,
	match func(T) ([]interface{}, bool), build func([]interface{}) T) *Builder[T] {
	//
	b.meta = append(b.meta, adt.Constructor{Name: name, Fields: fields})
	b.ctors = append(b.ctors, converter[T]{match: match, build: build})
	return b
}

// Done checks the collected description for consistency and returns the
// finished Generic. The checks cover what can be seen without values: names
// present, at least one constructor, field metadata and conversions present,
// no negative arity. Agreement between declared arity and the fields a
// conversion actually delivers is asserted per call in Deconstruct.
func (b *Builder[T]) Done() (Generic[T], error) {
	var none Generic[T]
	if b.name == "" {
		return none, fmt.Errorf("%w: datatype has no name", ErrDescription)
	}
	if len(b.meta) == 0 {
		return none, fmt.Errorf("%w: datatype %q has no constructors", ErrDescription, b.name)
	}
	for i, c := range b.meta {
		if c.Name == "" {
			return none, fmt.Errorf("%w: constructor #%d of %q has no name", ErrDescription, i, b.name)
		}
		if c.Fields == nil {
			return none, fmt.Errorf("%w: constructor %q of %q has no field description",
				ErrDescription, c.Name, b.name)
		}
		if c.Fields.Arity() < 0 {
			return none, fmt.Errorf("%w: constructor %q of %q has negative arity",
				ErrDescription, c.Name, b.name)
		}
		if b.ctors[i].match == nil || b.ctors[i].build == nil {
			return none, fmt.Errorf("%w: constructor %q of %q misses a conversion",
				ErrDescription, c.Name, b.name)
		}
	}
	tracer().Debugf("registered datatype %q with %d constructors", b.name, len(b.meta))
	return Generic[T]{
		meta:  adt.Datatype{Name: b.name, Constructors: b.meta},
		ctors: b.ctors,
	}, nil
}
