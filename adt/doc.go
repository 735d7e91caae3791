/*
Package adt describes the shape of algebraic data types: the name of a type,
its constructors in declaration order, and for each constructor either the
names of its fields (selectors) or a bare count of positional fields.

Metadata is passive data. It is constructed once per type, at registration
time, and only read thereafter; being immutable it may be shared freely
between goroutines. Metadata carries no behavior beyond construction,
structural read access, equality and printing — in particular it is not
validated here: a description whose selector count disagrees with the arity
of the described constructor is a bug in its producer, and shows up as a
fail-fast assertion when the description meets a representation value in
package generic.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package adt
