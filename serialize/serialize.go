package serialize

import (
	"errors"
	"fmt"

	"github.com/npillmayer/eot"
	"github.com/npillmayer/eot/generic"
)

// ErrUnsupported is reported by New for a layout that does not cover the
// datatype: wrong constructor count or wrong arity. This is a usage error on
// the client side, not a property of the input data.
var ErrUnsupported = errors.New("layout does not cover datatype")

// ErrCorrupt is reported by Decode for input that cannot be read back:
// truncated sequences, trailing integers, or field data a codec rejects. A
// constructor tag past the declared constructors is reported by Reconstruct
// as generic.ErrMalformed instead.
var ErrCorrupt = errors.New("corrupt input")

// FieldCodec is the per-field capability of this algorithm: it encodes a
// single field value onto an integer sequence and decodes it back. Append
// and Take must agree on the length prefix.
type FieldCodec interface {
	Append(buf []int, field interface{}) ([]int, error)
	Take(data []int) (field interface{}, rest []int, err error)
}

// Predefined field codecs. String encodes as rune count followed by the
// char codes; Int as [1, n]; Bool as [1, 0] or [1, 1].
var (
	String FieldCodec = stringCodec{}
	Int    FieldCodec = intCodec{}
	Bool   FieldCodec = boolCodec{}
)

// Layout assigns a field codec to every field of every constructor, in
// declaration order.
type Layout [][]FieldCodec

// Serializer encodes and decodes values of one registered datatype.
type Serializer[T any] struct {
	g      generic.Generic[T]
	layout Layout
}

// New checks a layout against the datatype's metadata and returns the
// serializer. A layout with the wrong constructor count or the wrong arity
// for some constructor is rejected with ErrUnsupported.
func New[T any](g generic.Generic[T], layout Layout) (*Serializer[T], error) {
	meta := g.Meta()
	if len(layout) != len(meta.Constructors) {
		return nil, fmt.Errorf("%w: layout covers %d constructors, %q has %d",
			ErrUnsupported, len(layout), meta.Name, len(meta.Constructors))
	}
	for i, c := range meta.Constructors {
		if len(layout[i]) != c.Fields.Arity() {
			return nil, fmt.Errorf("%w: layout gives %d codecs to constructor %q, arity is %d",
				ErrUnsupported, len(layout[i]), c.Name, c.Fields.Arity())
		}
	}
	return &Serializer[T]{g: g, layout: layout}, nil
}

// Encode serializes a value: the constructor index first, then each field
// length-prefixed, in declaration order.
func (s *Serializer[T]) Encode(v T) ([]int, error) {
	type state struct {
		buf   []int
		index int
		at    int
		err   error
	}
	out := generic.Fold(s.g.Deconstruct(v), generic.Rules[state]{
		Constructor: func(index int) state {
			return state{buf: []int{index}, index: index}
		},
		Field: func(acc state, field interface{}) state {
			if acc.err != nil {
				return acc
			}
			assertThat(acc.at < len(s.layout[acc.index]),
				"constructor %d delivered more fields than its checked layout", acc.index)
			codec := s.layout[acc.index][acc.at]
			acc.at++
			acc.buf, acc.err = codec.Append(acc.buf, field)
			return acc
		},
	})
	if out.err != nil {
		return nil, out.err
	}
	tracer().Debugf("encoded %q value as %v", s.g.Meta().Name, out.buf)
	return out.buf, nil
}

// Decode deserializes an integer sequence produced by Encode. The rebuilt
// representation is handed to Reconstruct, so a constructor tag past the
// declared constructors reports generic.ErrMalformed; any other unreadable
// input reports ErrCorrupt.
func (s *Serializer[T]) Decode(data []int) (T, error) {
	var none T
	if len(data) == 0 {
		return none, fmt.Errorf("%w: empty input", ErrCorrupt)
	}
	index, rest := data[0], data[1:]
	if index < 0 {
		return none, fmt.Errorf("%w: negative constructor tag %d", ErrCorrupt, index)
	}
	if index >= len(s.layout) {
		// no codecs to run; let Reconstruct report the shape mismatch
		return s.g.Reconstruct(eot.Inject(index, eot.Unit{}))
	}
	fields := make([]interface{}, 0, len(s.layout[index]))
	for _, codec := range s.layout[index] {
		field, r, err := codec.Take(rest)
		if err != nil {
			return none, err
		}
		fields = append(fields, field)
		rest = r
	}
	if len(rest) > 0 {
		return none, fmt.Errorf("%w: %d trailing integers", ErrCorrupt, len(rest))
	}
	return s.g.Reconstruct(eot.Inject(index, eot.List(fields...)))
}

// --- Field codecs ----------------------------------------------------------

type stringCodec struct{}

func (stringCodec) Append(buf []int, field interface{}) ([]int, error) {
	s, ok := field.(string)
	if !ok {
		return nil, fmt.Errorf("%w: field %v is not a string", ErrUnsupported, field)
	}
	runes := []rune(s)
	buf = append(buf, len(runes))
	for _, r := range runes {
		buf = append(buf, int(r))
	}
	return buf, nil
}

func (stringCodec) Take(data []int) (interface{}, []int, error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("%w: missing string length", ErrCorrupt)
	}
	n := data[0]
	if n < 0 || n > len(data)-1 {
		return nil, nil, fmt.Errorf("%w: string length %d exceeds remaining input", ErrCorrupt, n)
	}
	runes := make([]rune, n)
	for i := 0; i < n; i++ {
		runes[i] = rune(data[1+i])
	}
	return string(runes), data[n+1:], nil
}

type intCodec struct{}

func (intCodec) Append(buf []int, field interface{}) ([]int, error) {
	n, ok := field.(int)
	if !ok {
		return nil, fmt.Errorf("%w: field %v is not an int", ErrUnsupported, field)
	}
	return append(buf, 1, n), nil
}

func (intCodec) Take(data []int) (interface{}, []int, error) {
	if len(data) < 2 || data[0] != 1 {
		return nil, nil, fmt.Errorf("%w: expected length-1 int field", ErrCorrupt)
	}
	return data[1], data[2:], nil
}

type boolCodec struct{}

func (boolCodec) Append(buf []int, field interface{}) ([]int, error) {
	b, ok := field.(bool)
	if !ok {
		return nil, fmt.Errorf("%w: field %v is not a bool", ErrUnsupported, field)
	}
	if b {
		return append(buf, 1, 1), nil
	}
	return append(buf, 1, 0), nil
}

func (boolCodec) Take(data []int) (interface{}, []int, error) {
	if len(data) < 2 || data[0] != 1 || (data[1] != 0 && data[1] != 1) {
		return nil, nil, fmt.Errorf("%w: expected length-1 bool field", ErrCorrupt)
	}
	return data[1] == 1, data[2:], nil
}
