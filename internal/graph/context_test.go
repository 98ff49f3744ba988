package graph

import (
	"testing"

	"github.com/cwbudde/go-exprcore/internal/value"
)

func TestEmptyContextResolvesNothing(t *testing.T) {
	if _, ok := Empty().Get(TagFromName("a")); ok {
		t.Fatal("empty context must never resolve a tag")
	}
}

func TestMapContextBindAndGet(t *testing.T) {
	ctx := NewMapContext()
	self := value.FromPrimitive(value.I64(1))
	elem := NewMapElement(self, map[string]value.Value{
		"name": value.NewString("alice"),
	})
	ctx.Bind(TagFromName("a"), elem)

	got, ok := ctx.Get(TagFromName("a"))
	if !ok {
		t.Fatal("expected binding for tag a")
	}
	if got.SelfAsValue().Value().Format() != "1" {
		t.Fatalf("self value mismatch: %s", got.SelfAsValue().Value().Format())
	}

	details, ok := got.Details()
	if !ok {
		t.Fatal("expected a property bag")
	}
	name, ok := details.Get("name")
	if !ok || name.Value().Format() != "alice" {
		t.Fatalf("property lookup mismatch: %v, %v", name, ok)
	}

	if _, ok := details.Get("missing"); ok {
		t.Fatal("unknown property key must miss")
	}
}

func TestMapContextUnboundTagMisses(t *testing.T) {
	ctx := NewMapContext()
	if _, ok := ctx.Get(TagFromID(5)); ok {
		t.Fatal("unbound tag must miss")
	}
}

func TestElementWithoutPropertyBag(t *testing.T) {
	elem := NewMapElement(value.Bool(true), nil)
	if _, ok := elem.Details(); ok {
		t.Fatal("element with no properties must report no details")
	}
}

func TestTagEquality(t *testing.T) {
	a := TagFromName("x")
	b := TagFromName("x")
	if a.String() != b.String() {
		t.Fatal("identical name tags must render identically")
	}
	if TagFromID(1).String() == TagFromID(2).String() {
		t.Fatal("distinct id tags must render differently")
	}
}
