package generic

import (
	"github.com/npillmayer/eot"
	"github.com/npillmayer/eot/adt"
)

// Rules bundles the structural-recursion rules of a generic algorithm, one
// rule per shape of the universal representation:
//
//   - Constructor fires when the matched alternative is reached, with the
//     zero-based constructor index; it produces the initial accumulator.
//   - Field fires once per field, in declaration order. Field values have
//     the concrete field types of the source ADT, so a generic algorithm
//     pairs Rules with its own per-field capability (a type switch, a codec
//     lookup, …).
//   - Done, if set, fires after the last field.
//
// The recursion into later alternatives and into the tail of the field list
// is carried out by Fold itself; rules never see There, Cons or Unit.
type Rules[R any] struct {
	Constructor func(index int) R
	Field       func(acc R, field interface{}) R
	Done        func(acc R) R
}

// Fold reduces a representation value with the given rules. The value must
// be well-formed (produced by Deconstruct, or hand-built with a valid
// alternative depth): reaching the uninhabited terminator is a logic error
// and fails fast.
func Fold[R any](v eot.Value, rules Rules[R]) R {
	depth, fs, ok := eot.Split(v)
	assertThat(ok, "dispatch reached the uninhabited terminator at depth %d", depth)
	acc := rules.Constructor(depth)
	for {
		cons, more := fs.(eot.Cons)
		if !more {
			break
		}
		acc = rules.Field(acc, cons.Head)
		fs = cons.Tail
	}
	if rules.Done != nil {
		acc = rules.Done(acc)
	}
	return acc
}

// MetaRules is the metadata-aware variant of Rules: the fold threads the
// datatype description alongside the representation value, consuming one
// constructor description per alternative step and one selector name per
// field step, so names and values stay paired by construction. For
// positional fields the name is empty.
type MetaRules[R any] struct {
	Constructor func(c adt.Constructor, index int) R
	Field       func(acc R, name string, field interface{}) R
	Done        func(acc R) R
}

// FoldMeta reduces a representation value together with its datatype
// description. Divergence between the two — depth past the last constructor,
// arity mismatch — means the registration step produced inconsistent halves,
// which fails fast.
func FoldMeta[R any](d adt.Datatype, v eot.Value, rules MetaRules[R]) R {
	depth, fs, ok := eot.Split(v)
	assertThat(ok && depth < len(d.Constructors),
		"representation of %q diverges from metadata: alternative depth %d of %d",
		d.Name, depth, len(d.Constructors))
	c := d.Constructors[depth]
	var names adt.Selectors
	if sel, named := c.Fields.(adt.Selectors); named {
		names = sel
	}
	acc := rules.Constructor(c, depth)
	at := 0
	for {
		cons, more := fs.(eot.Cons)
		if !more {
			break
		}
		name := ""
		if names != nil {
			assertThat(at < len(names), "constructor %q of %q: more fields than selectors",
				c.Name, d.Name)
			name = names[at]
		}
		acc = rules.Field(acc, name, cons.Head)
		at++
		fs = cons.Tail
	}
	assertThat(at == c.Fields.Arity(), "constructor %q of %q: %d fields, metadata says %d",
		c.Name, d.Name, at, c.Fields.Arity())
	if rules.Done != nil {
		acc = rules.Done(acc)
	}
	return acc
}
