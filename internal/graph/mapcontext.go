package graph

import "github.com/cwbudde/go-exprcore/internal/value"

// MapContext is an in-memory reference implementation of Context, backed
// by plain Go maps. It exists so the evaluator's "pluggable lookup" has
// at least one concrete, testable implementation; production callers
// backed by a real graph store implement Context directly instead.
type MapContext struct {
	elements map[Tag]*MapElement
}

// NewMapContext builds an empty MapContext.
func NewMapContext() *MapContext {
	return &MapContext{elements: make(map[Tag]*MapElement)}
}

// Bind registers elem under tag, overwriting any previous binding.
func (c *MapContext) Bind(tag Tag, elem *MapElement) {
	c.elements[tag] = elem
}

// Get implements Context.
func (c *MapContext) Get(tag Tag) (Element, bool) {
	elem, ok := c.elements[tag]
	if !ok {
		return nil, false
	}
	return elem, true
}

// MapElement is a graph element backed by a self-value and a property
// map. A nil Self means the element exposes no intrinsic value beyond
// its properties.
type MapElement struct {
	self  *value.Value
	props *MapBag
}

// NewMapElement builds an element with the given self-value and
// properties. Either argument may be nil/empty.
func NewMapElement(self value.Value, props map[string]value.Value) *MapElement {
	e := &MapElement{self: &self}
	if props != nil {
		e.props = NewMapBag(props)
	}
	return e
}

// SelfAsValue implements Element.
func (e *MapElement) SelfAsValue() value.BorrowedValue {
	if e.self == nil {
		v := value.Null()
		return v.Borrow()
	}
	return e.self.Borrow()
}

// Details implements Element.
func (e *MapElement) Details() (PropertyBag, bool) {
	if e.props == nil {
		return nil, false
	}
	return e.props, true
}

// MapBag is a PropertyBag backed by a map.
type MapBag struct {
	values map[string]*value.Value
}

// NewMapBag builds a MapBag from a plain value map.
func NewMapBag(props map[string]value.Value) *MapBag {
	values := make(map[string]*value.Value, len(props))
	for k, v := range props {
		v := v
		values[k] = &v
	}
	return &MapBag{values: values}
}

// Get implements PropertyBag.
func (b *MapBag) Get(key PropertyKey) (value.BorrowedValue, bool) {
	v, ok := b.values[string(key)]
	if !ok {
		return value.BorrowedValue{}, false
	}
	return v.Borrow(), true
}
