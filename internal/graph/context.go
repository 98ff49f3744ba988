// Package graph defines the evaluator's variable-resolution capability:
// a Context that maps a Tag to an Element exposing a property bag and a
// self-value view. The evaluator core never depends on a concrete graph
// store; production callers supply their own Context implementation.
package graph

import (
	"fmt"

	"github.com/cwbudde/go-exprcore/internal/value"
)

// Tag identifies a bound variable, either by name or by a small integer
// id, matching the wire form's NameOrId.
type Tag struct {
	name   string
	id     int32
	isName bool
}

// TagFromName builds a name-form Tag.
func TagFromName(name string) Tag { return Tag{name: name, isName: true} }

// TagFromID builds an id-form Tag.
func TagFromID(id int32) Tag { return Tag{id: id, isName: false} }

// IsName reports whether the tag is name-form.
func (t Tag) IsName() bool { return t.isName }

// Name returns the tag's name. Only meaningful when IsName is true.
func (t Tag) Name() string { return t.name }

// ID returns the tag's id. Only meaningful when IsName is false.
func (t Tag) ID() int32 { return t.id }

// String renders the tag for diagnostics.
func (t Tag) String() string {
	if t.isName {
		return t.name
	}
	return fmt.Sprintf("#%d", t.id)
}

// PropertyKey identifies a property on a graph element. It is opaque to
// the evaluator; callers and Context implementations agree on its
// meaning out of band.
type PropertyKey string

// PropertyBag is a key->value lookup on an Element.
type PropertyBag interface {
	Get(key PropertyKey) (value.BorrowedValue, bool)
}

// Element is a graph vertex/edge reference exposed to the evaluator
// through a Context. It carries an intrinsic value (e.g. its id) and an
// optional property bag.
type Element interface {
	SelfAsValue() value.BorrowedValue
	Details() (PropertyBag, bool)
}

// Context resolves a Tag to an Element. Implementations are supplied
// per-evaluation and must remain valid for the duration of a single
// Eval call, since BorrowedValues on the evaluator's stack may point
// into elements reachable through it.
type Context interface {
	Get(tag Tag) (Element, bool)
}

// emptyContext never resolves any tag.
type emptyContext struct{}

func (emptyContext) Get(Tag) (Element, bool) { return nil, false }

// Empty returns the trivial context that resolves no tags. An evaluator
// given Empty (or a nil Context) whose program contains a Var fails with
// MissingContext.
func Empty() Context { return emptyContext{} }
