/*
Package schema is a worked example of a metadata-driven generic algorithm:
generating a SQL CREATE TABLE statement for a registered datatype.

Only datatypes with a single constructor and named fields map onto a table:
one column per selector, typed after the field's Go type. Anything else —
multiple constructors, positional fields, field types without a column type —
is rejected before any output is produced.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package schema

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'eot.schema'.
func tracer() tracing.Trace {
	return tracing.Select("eot.schema")
}
