/*
Package serialize is a worked example of a generic algorithm: a positional
integer serialization for arbitrary registered datatypes. It exists to show
the dispatch discipline in both directions, not to be a wire format.

A value is encoded as a flat sequence of integers: the zero-based index of
the constructor that built it, followed by the constructor's fields in
declaration order, each length-prefixed by its own codec. Decoding runs the
same rules in reverse and hands the rebuilt representation to Reconstruct,
so corrupt input surfaces as inspectable errors, never as a crash.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package serialize

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'eot.serialize'.
func tracer() tracing.Trace {
	return tracing.Select("eot.serialize")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("serialize: "+msg, msgargs...)
		panic(msg)
	}
}
