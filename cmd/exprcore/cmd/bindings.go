package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cwbudde/go-exprcore/internal/graph"
	"github.com/cwbudde/go-exprcore/internal/program"
	"github.com/cwbudde/go-exprcore/internal/value"
	"github.com/cwbudde/go-exprcore/internal/wire"
)

// elementJSON is the on-disk shape of one bound element: an optional
// self-value and a property map, both using the wire package's scalar
// value encoding so a bindings file can be hand-written next to a
// program file without inventing a second value syntax.
type elementJSON struct {
	Self  *wire.Value            `json:"self,omitempty"`
	Props map[string]*wire.Value `json:"props,omitempty"`
}

// bindingsFile maps a tag name to its bound element.
type bindingsFile map[string]elementJSON

// loadBindings reads a bindings JSON file from path and builds a
// graph.MapContext from it, reusing program.ValueFromWire for the same
// scalar translation the program loader uses.
func loadBindings(path string) (*graph.MapContext, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var bf bindingsFile
	if err := json.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("decoding bindings: %w", err)
	}

	ctx := graph.NewMapContext()
	for tagName, elem := range bf {
		var self value.Value
		if elem.Self != nil {
			v, err := program.ValueFromWire(elem.Self)
			if err != nil {
				return nil, fmt.Errorf("tag %q: self: %w", tagName, err)
			}
			if v != nil {
				self = *v
			} else {
				self = value.Null()
			}
		} else {
			self = value.Null()
		}

		var props map[string]value.Value
		if len(elem.Props) > 0 {
			props = make(map[string]value.Value, len(elem.Props))
			for key, raw := range elem.Props {
				v, err := program.ValueFromWire(raw)
				if err != nil {
					return nil, fmt.Errorf("tag %q: property %q: %w", tagName, key, err)
				}
				if v != nil {
					props[key] = *v
				} else {
					props[key] = value.Null()
				}
			}
		}

		ctx.Bind(graph.TagFromName(tagName), graph.NewMapElement(self, props))
	}
	return ctx, nil
}
