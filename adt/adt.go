package adt

import (
	"fmt"
	"strconv"
	"strings"
)

// Datatype is the metadata of one algebraic data type. Constructors is never
// empty, and its order matches both the declaration order of the described
// type and the alternative order of the type's universal representation.
type Datatype struct {
	Name         string
	Constructors []Constructor
}

// Constructor is the metadata of a single constructor.
type Constructor struct {
	Name   string
	Fields Fields
}

// Fields describes the fields of one constructor. It is a closed variant:
// either Selectors (named fields) or NoSelectors (a count of positional
// fields).
type Fields interface {
	// Arity is the number of fields.
	Arity() int
	// Named reports whether the fields carry selector names.
	Named() bool
	fmt.Stringer
	fields()
}

// Selectors lists named fields, in declaration order.
type Selectors []string

// NoSelectors is the field count of a constructor with unnamed, positional
// fields; 0 describes a nullary constructor.
type NoSelectors int

func (s Selectors) Arity() int    { return len(s) }
func (s Selectors) Named() bool   { return true }
func (s Selectors) fields()       {}
func (n NoSelectors) Arity() int  { return int(n) }
func (n NoSelectors) Named() bool { return false }
func (n NoSelectors) fields()     {}

func (s Selectors) String() string {
	return "{" + strings.Join(s, ", ") + "}"
}

func (n NoSelectors) String() string {
	return "(" + strconv.Itoa(int(n)) + ")"
}

func (c Constructor) String() string {
	if c.Fields == nil {
		return c.Name
	}
	return c.Name + c.Fields.String()
}

func (d Datatype) String() string {
	b := strings.Builder{}
	b.WriteString(d.Name)
	b.WriteString(" = ")
	for i, c := range d.Constructors {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(c.String())
	}
	return b.String()
}

// Equal compares two descriptions structurally.
func (d Datatype) Equal(other Datatype) bool {
	if d.Name != other.Name || len(d.Constructors) != len(other.Constructors) {
		return false
	}
	for i, c := range d.Constructors {
		if !c.Equal(other.Constructors[i]) {
			return false
		}
	}
	return true
}

// Equal compares two constructor descriptions structurally.
func (c Constructor) Equal(other Constructor) bool {
	return c.Name == other.Name && FieldsEqual(c.Fields, other.Fields)
}

// FieldsEqual compares two field descriptions: same variant, same names
// respectively same count.
func FieldsEqual(a, b Fields) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch fa := a.(type) {
	case Selectors:
		fb, ok := b.(Selectors)
		if !ok || len(fa) != len(fb) {
			return false
		}
		for i, name := range fa {
			if name != fb[i] {
				return false
			}
		}
		return true
	case NoSelectors:
		fb, ok := b.(NoSelectors)
		return ok && fa == fb
	}
	return false
}
