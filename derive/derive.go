package derive

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/npillmayer/eot/adt"
	"github.com/npillmayer/eot/generic"
)

// ErrCannotDerive is reported for Go types outside the supported layouts:
// non-struct types for Struct, non-interface types or non-struct variants
// for Sum, and structs with unexported fields. Test with errors.Is.
var ErrCannotDerive = errors.New("cannot derive conversion")

// Struct derives the Generic for a single-constructor datatype given as a
// plain struct. Selector names are the exported field names in declaration
// order; a field tag `eot:"name"` overrides the selector name:
//
//	type Person struct {
//		Name string `eot:"name"`
//		Age  int    `eot:"age"`
//	}
//	g, err := derive.Struct[Person]()
//
func Struct[T any]() (generic.Generic[T], error) {
	var none generic.Generic[T]
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		return none, fmt.Errorf("%w: %s is not a struct", ErrCannotDerive, t)
	}
	sel, err := selectors(t)
	if err != nil {
		return none, err
	}
	tracer().Debugf("deriving single-constructor datatype %q%v", t.Name(), sel)
	return generic.Describe[T](t.Name()).
		Constructor(t.Name(), sel,
			func(v T) ([]interface{}, bool) {
				return fieldValues(reflect.ValueOf(v)), true
			},
			func(fields []interface{}) T {
				return construct(t, fields).Interface().(T)
			}).
		Done()
}

// Sum derives the Generic for a multi-constructor datatype given as an
// interface T with one struct type per variant. Variants are passed as
// (typically zero) values of their struct types; their order fixes the
// constructor order and thereby the alternative order of the
// representation:
//
//	g, err := derive.Sum[Shape]("Shape", Circle{}, Rect{})
//
func Sum[T any](name string, variants ...T) (generic.Generic[T], error) {
	var none generic.Generic[T]
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Interface {
		return none, fmt.Errorf("%w: %s is not an interface", ErrCannotDerive, t)
	}
	if len(variants) == 0 {
		return none, fmt.Errorf("%w: sum type %q without variants", ErrCannotDerive, name)
	}
	b := generic.Describe[T](name)
	for _, variant := range variants {
		vt := reflect.TypeOf(variant)
		if vt == nil || vt.Kind() != reflect.Struct {
			return none, fmt.Errorf("%w: variant %v of %q is not a struct value",
				ErrCannotDerive, variant, name)
		}
		sel, err := selectors(vt)
		if err != nil {
			return none, err
		}
		b.Constructor(vt.Name(), sel,
			func(v T) ([]interface{}, bool) {
				if reflect.TypeOf(v) != vt {
					return nil, false
				}
				return fieldValues(reflect.ValueOf(v)), true
			},
			func(fields []interface{}) T {
				return construct(vt, fields).Interface().(T)
			})
	}
	tracer().Debugf("deriving sum datatype %q with %d variants", name, len(variants))
	return b.Done()
}

// --- Reflection helpers ----------------------------------------------------

func selectors(t reflect.Type) (adt.Selectors, error) {
	names := make(adt.Selectors, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" { // unexported: reflection cannot read it back
			return nil, fmt.Errorf("%w: field %s.%s is unexported", ErrCannotDerive, t.Name(), f.Name)
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("eot"); ok && tag != "" {
			name = tag
		}
		names = append(names, name)
	}
	return names, nil
}

func fieldValues(v reflect.Value) []interface{} {
	fields := make([]interface{}, v.NumField())
	for i := range fields {
		fields[i] = v.Field(i).Interface()
	}
	return fields
}

// construct builds a struct value of type t from fields. Arity has been
// checked by Reconstruct before we get here; field values of the wrong
// dynamic type are a caller bug and fail fast inside reflect.Set.
func construct(t reflect.Type, fields []interface{}) reflect.Value {
	assertThat(len(fields) == t.NumField(), "%d fields for struct %s with %d", len(fields), t, t.NumField())
	v := reflect.New(t).Elem()
	for i, field := range fields {
		v.Field(i).Set(reflect.ValueOf(field))
	}
	return v
}
