/*
Package eot implements a universal sum-of-products representation for
algebraic data types (ADTs), i.e. types built from a fixed list of named
constructors, where each constructor holds an ordered list of fields.

Algorithms like serializers, default-value producers or schema generators
usually have to be written once per concrete type. This package — together
with its sub-packages — lets them be written once, full stop: every
registered ADT is convertible to and from one canonical shape, and generic
algorithms recurse over that shape instead of over concrete types.

The canonical shape is the "either of tuples" form. A type with constructors
C₁…Cₙ, where constructor Cᵢ holds fields Fᵢ, is represented as a right-nested
choice

	⟨F₁⟩ | ⟨F₂⟩ | … | ⟨Fₙ⟩ | ∅

with the uninhabited terminator ∅ closing the list of alternatives, and each
field list ⟨Fᵢ⟩ being a right-nested pair sequence ending in the empty tuple.

Go has no type-level recursion over constructor lists, so the nesting lives
at the value level: a small closed set of variant types (Here, There, Void on
the sum side; Cons, Unit on the product side) with the shape invariants
checked at runtime where a richer type system would check them statically.

Sub-packages:

	adt        shape metadata: type name, constructor names, selectors
	generic    the conversion contract and the generic-dispatch folds
	derive     reflection-based derivation of the conversion contract
	serialize  a worked example: positional integer serialization
	schema     a worked example: SQL table generation

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package eot
