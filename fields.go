package eot

import (
	"fmt"
	"strings"
)

// Fields is the field list of one constructor in the universal
// representation: a right-nested pair sequence ending in Unit. The number of
// Cons cells is the arity of the constructor.
type Fields interface {
	fmt.Stringer
	fields()
}

// Cons is one field followed by the rest of the field list.
type Cons struct {
	Head interface{}
	Tail Fields
}

// Unit marks the end of a field list. A nullary constructor carries a bare
// Unit.
type Unit struct{}

func (c Cons) fields() {}
func (u Unit) fields() {}

func (c Cons) String() string {
	b := strings.Builder{}
	b.WriteString("⟨")
	var fs Fields = c
	first := true
	for {
		cons, ok := fs.(Cons)
		if !ok {
			break
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(fmt.Sprintf("%v", cons.Head))
		fs = cons.Tail
	}
	b.WriteString("⟩")
	return b.String()
}

func (u Unit) String() string { return "⟨⟩" }

// List builds a field list from values, in order.
func List(fields ...interface{}) Fields {
	var fs Fields = Unit{}
	for i := len(fields) - 1; i >= 0; i-- {
		fs = Cons{Head: fields[i], Tail: fs}
	}
	return fs
}

// Slice flattens a field list into a Go slice, in order. Slice of a bare
// Unit is nil.
func Slice(fs Fields) []interface{} {
	var out []interface{}
	for {
		switch t := fs.(type) {
		case Cons:
			out = append(out, t.Head)
			fs = t.Tail
		case Unit:
			return out
		default:
			assertThat(false, "unknown field-list shape %T", fs)
		}
	}
}

// Arity counts the Cons cells of a field list.
func Arity(fs Fields) int {
	n := 0
	for {
		switch t := fs.(type) {
		case Cons:
			n++
			fs = t.Tail
		case Unit:
			return n
		default:
			assertThat(false, "unknown field-list shape %T", fs)
		}
	}
}
