package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/npillmayer/eot/adt"
	"github.com/npillmayer/eot/generic"
)

// ErrUnsupported is reported for datatypes that do not map onto a table:
// more than one constructor, positional fields, or a field type without a
// column type. Test with errors.Is.
var ErrUnsupported = errors.New("datatype does not map onto a table")

// CreateTable generates a CREATE TABLE statement for a single-constructor
// datatype with named fields. T must be the struct the datatype describes;
// column types are taken from its field types:
//
//	CREATE TABLE "Person" ("name" TEXT, "age" INTEGER);
//
// Datatypes outside this shape are rejected whole, never rendered partially.
func CreateTable[T any](g generic.Generic[T]) (string, error) {
	meta := g.Meta()
	if len(meta.Constructors) != 1 {
		return "", fmt.Errorf("%w: %q has %d constructors, a table needs exactly one",
			ErrUnsupported, meta.Name, len(meta.Constructors))
	}
	c := meta.Constructors[0]
	sel, named := c.Fields.(adt.Selectors)
	if !named {
		return "", fmt.Errorf("%w: constructor %q of %q has no selectors",
			ErrUnsupported, c.Name, meta.Name)
	}
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Struct || t.NumField() != len(sel) {
		return "", fmt.Errorf("%w: cannot read column types for %q from %s",
			ErrUnsupported, meta.Name, t)
	}
	b := strings.Builder{}
	fmt.Fprintf(&b, "CREATE TABLE %q (", meta.Name)
	for i, name := range sel {
		col, err := columnType(t.Field(i).Type)
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q %s", name, col)
	}
	b.WriteString(");")
	tracer().Debugf("table for %q: %s", meta.Name, b.String())
	return b.String(), nil
}

func columnType(t reflect.Type) (string, error) {
	switch t.Kind() {
	case reflect.String:
		return "TEXT", nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "INTEGER", nil
	case reflect.Bool:
		return "BOOLEAN", nil
	case reflect.Float32, reflect.Float64:
		return "REAL", nil
	}
	return "", fmt.Errorf("%w: no column type for Go type %s", ErrUnsupported, t)
}
