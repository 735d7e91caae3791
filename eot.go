package eot

import (
	"fmt"
	"reflect"
)

// Value is a value in the universal representation. It is a right-nested
// choice: a chain of There wrappers, one per constructor that did not build
// the value, around a single Here holding the fields of the constructor that
// did. The length of the There chain is the alternative depth, i.e. the
// zero-based index of the constructor.
//
// Values are ephemeral: they are produced per conversion call and consumed
// immediately by a generic algorithm or by reconstruction. They carry no
// identity and are never persisted.
type Value interface {
	fmt.Stringer
	value()
}

// Here carries the fields of the constructor that built a value. It sits at
// the alternative depth of that constructor.
type Here struct {
	Fields Fields
}

// There defers to the alternatives of later constructors.
type There struct {
	Value Value
}

// Void terminates the list of alternatives. A well-formed Value never
// reaches it: the chain of Theres ends in a Here first. Dispatch code
// encountering a Void is looking at a representation that corresponds to no
// declared constructor.
type Void struct{}

func (h Here) value()  {}
func (t There) value() {}
func (v Void) value()  {}

func (h Here) String() string  { return h.Fields.String() }
func (t There) String() string { return "▷" + t.Value.String() }
func (v Void) String() string  { return "∅" }

// Inject places fields at the given alternative depth, i.e. wraps a Here in
// index There wrappers. Inject is purely mechanical: it does not know how
// many constructors the target type has, so it will happily build a Value
// that Reconstruct later rejects.
func Inject(index int, fs Fields) Value {
	var v Value = Here{Fields: fs}
	for i := 0; i < index; i++ {
		v = There{Value: v}
	}
	return v
}

// Split walks the There chain of v and returns the alternative depth
// together with the fields found at the Here. ok is false if the chain ends
// in Void instead, in which case depth reports the number of Theres walked.
func Split(v Value) (depth int, fs Fields, ok bool) {
	for {
		switch t := v.(type) {
		case Here:
			return depth, t.Fields, true
		case There:
			depth++
			v = t.Value
		case Void:
			return depth, nil, false
		default:
			assertThat(false, "unknown alternative shape %T", v)
		}
	}
}

// Index returns the alternative depth of a well-formed Value: the zero-based
// index of the constructor that built it. Calling Index on a malformed Value
// (one whose chain ends in Void) is a programming error.
func Index(v Value) int {
	depth, _, ok := Split(v)
	assertThat(ok, "alternative chain of depth %d ends in the uninhabited terminator", depth)
	return depth
}

// Equal compares two representation values structurally, including the
// field values held in Cons cells.
func Equal(a, b Value) bool {
	return reflect.DeepEqual(a, b)
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("eot: "+msg, msgargs...)
		panic(msg)
	}
}
