package generic

import (
	"errors"
	"testing"

	"github.com/npillmayer/eot"
	"github.com/npillmayer/eot/adt"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// status is a hand-registered sample ADT with two constructors:
//
//	status = active{since} | banned{reason, perm}
//
type status interface{ isStatus() }

type active struct{ since int }
type banned struct {
	reason string
	perm   bool
}

func (active) isStatus() {}
func (banned) isStatus() {}

func statusGeneric(t *testing.T) Generic[status] {
	g, err := Describe[status]("status").
		Constructor("active", adt.Selectors{"since"},
			func(s status) ([]interface{}, bool) {
				a, ok := s.(active)
				if !ok {
					return nil, false
				}
				return []interface{}{a.since}, true
			},
			func(fields []interface{}) status {
				return active{since: fields[0].(int)}
			}).
		Constructor("banned", adt.Selectors{"reason", "perm"},
			func(s status) ([]interface{}, bool) {
				b, ok := s.(banned)
				if !ok {
					return nil, false
				}
				return []interface{}{b.reason, b.perm}, true
			},
			func(fields []interface{}) status {
				return banned{reason: fields[0].(string), perm: fields[1].(bool)}
			}).
		Done()
	if err != nil {
		t.Fatalf("cannot register sample datatype: %v", err)
	}
	return g
}

func TestMetadata(t *testing.T) {
	g := statusGeneric(t)
	meta := g.Meta()
	if meta.Name != "status" || len(meta.Constructors) != 2 {
		t.Logf("meta = %s", meta)
		t.Error("expected metadata with 2 constructors for 'status'")
	}
	if !meta.Constructors[1].Fields.Named() || meta.Constructors[1].Fields.Arity() != 2 {
		t.Logf("meta = %s", meta)
		t.Error("expected constructor 'banned' to have 2 named fields")
	}
}

func TestDeconstructShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "eot.generic")
	defer teardown()
	//
	g := statusGeneric(t)
	e := g.Deconstruct(banned{reason: "spam", perm: true})
	depth, fs, ok := eot.Split(e)
	if !ok || depth != 1 {
		t.Logf("representation = %s", e)
		t.Errorf("expected 'banned' value at alternative depth 1, is at %d (ok=%v)", depth, ok)
	}
	if eot.Arity(fs) != 2 {
		t.Logf("representation = %s", e)
		t.Errorf("expected 2 fields, have %d", eot.Arity(fs))
	}
	e = g.Deconstruct(active{since: 1999})
	if eot.Index(e) != 0 {
		t.Logf("representation = %s", e)
		t.Errorf("expected 'active' value at alternative depth 0, is at %d", eot.Index(e))
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "eot.generic")
	defer teardown()
	//
	g := statusGeneric(t)
	for _, v := range []status{active{since: 1999}, banned{reason: "spam", perm: true}, banned{}} {
		back, err := g.Reconstruct(g.Deconstruct(v))
		if err != nil {
			t.Fatalf("expected round-trip of %v to succeed, got %v", v, err)
		}
		if back != v {
			t.Errorf("expected round-trip to return %v, returned %v", v, back)
		}
	}
}

func TestRoundTripRepresentation(t *testing.T) {
	g := statusGeneric(t)
	e := eot.Inject(1, eot.List("spam", false))
	v, err := g.Reconstruct(e)
	if err != nil {
		t.Fatalf("expected reconstruction from valid shape to succeed, got %v", err)
	}
	if !eot.Equal(g.Deconstruct(v), e) {
		t.Errorf("expected deconstruct∘reconstruct to be the identity on valid shapes, got %s", g.Deconstruct(v))
	}
}

func TestReconstructMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "eot.generic")
	defer teardown()
	//
	g := statusGeneric(t)
	cases := []struct {
		name string
		e    eot.Value
	}{
		{"depth past last constructor", eot.Inject(5, eot.Unit{})},
		{"chain ending in Void", eot.There{Value: eot.There{Value: eot.Void{}}}},
		{"too many fields", eot.Inject(0, eot.List(1999, "extra"))},
		{"too few fields", eot.Inject(1, eot.List("spam"))},
	}
	for _, c := range cases {
		_, err := g.Reconstruct(c.e)
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: expected ErrMalformed, got %v", c.name, err)
		}
	}
}

func TestDescriptionErrors(t *testing.T) {
	if _, err := Describe[status]("").Done(); !errors.Is(err, ErrDescription) {
		t.Errorf("expected unnamed datatype to be rejected, got %v", err)
	}
	if _, err := Describe[status]("status").Done(); !errors.Is(err, ErrDescription) {
		t.Errorf("expected datatype without constructors to be rejected, got %v", err)
	}
	_, err := Describe[status]("status").
		Constructor("active", adt.Selectors{"since"}, nil, nil).
		Done()
	if !errors.Is(err, ErrDescription) {
		t.Errorf("expected constructor without conversions to be rejected, got %v", err)
	}
	_, err = Describe[status]("status").
		Constructor("active", nil,
			func(status) ([]interface{}, bool) { return nil, true },
			func([]interface{}) status { return active{} }).
		Done()
	if !errors.Is(err, ErrDescription) {
		t.Errorf("expected constructor without field description to be rejected, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	if _, ok := Of[status](); ok {
		t.Fatal("expected no Generic for 'status' before registration")
	}
	g := statusGeneric(t)
	Register(g)
	cached, ok := Of[status]()
	if !ok {
		t.Fatal("expected registered Generic to be found")
	}
	if !cached.Meta().Equal(g.Meta()) {
		t.Error("expected cached Generic to carry the registered metadata")
	}
}
