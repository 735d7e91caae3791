/*
Package generic ties concrete Go types to the universal sum-of-products
representation of package eot.

For every algebraic data type a client wants to process generically, a
Generic[T] bundles three things: the type's shape metadata (package adt) and
the two total, inverse conversions Deconstruct and Reconstruct between
values of T and representation values. The triple is produced either by the
explicit registration builder in this package (Describe … Constructor … Done)
or by the reflection helpers in package derive.

Generic algorithms themselves are structural recursions over representation
values, with one rule per shape. The Fold and FoldMeta functions implement
that recursion scheme; clients only supply the rules.

Two failure classes are kept strictly apart, following the conversion
contract: a representation value whose shape matches no declared constructor
makes Reconstruct return ErrMalformed — such values cannot be produced by
Deconstruct, only by hand (typically a deserializer fed corrupt input), and
the caller is expected to recover. A registration that is inconsistent with
itself, on the other hand, is a programming error and fails fast by
assertion.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package generic

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'eot.generic'.
func tracer() tracing.Trace {
	return tracing.Select("eot.generic")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("generic: "+msg, msgargs...)
		panic(msg)
	}
}
