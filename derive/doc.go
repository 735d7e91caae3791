/*
Package derive produces the conversion triple of package generic from Go
type definitions by reflection, so that clients need not hand-write the
registration for the common cases.

Two layouts are covered. A plain struct is a single-constructor datatype
whose selectors are the exported field names (overridable with an `eot:"…"`
struct tag). A Go-style sum — an interface with one struct type per variant —
is a multi-constructor datatype; the dynamic type of a value selects the
constructor.

Derived Generics obey the same laws as hand-registered ones and can be
cached with generic.Register like any other.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package derive

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'eot.derive'.
func tracer() tracing.Trace {
	return tracing.Select("eot.derive")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("derive: "+msg, msgargs...)
		panic(msg)
	}
}
