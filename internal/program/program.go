// Package program builds the evaluator's internal postfix program from
// the upstream wire form. Construction is total up to InvalidProgramError
// and never evaluates anything.
package program

import (
	"github.com/cwbudde/go-exprcore/internal/evalerr"
	"github.com/cwbudde/go-exprcore/internal/graph"
	"github.com/cwbudde/go-exprcore/internal/operator"
	"github.com/cwbudde/go-exprcore/internal/value"
	"github.com/cwbudde/go-exprcore/internal/wire"
)

// UnitKind identifies which of Unit's variants is populated.
type UnitKind uint8

const (
	UnitConst UnitKind = iota
	UnitVar
	UnitArith
	UnitLogical
)

// Unit is one element of a Program: a constant, a variable reference, or
// an operator. Exactly the fields matching Kind are meaningful.
type Unit struct {
	Kind UnitKind

	// UnitConst: Const is nil for an explicit null literal, or a
	// non-nil *value.Value (which may itself hold Null, a form that
	// must evaluate identically to the nil case).
	Const *value.Value

	// UnitVar
	Tag     graph.Tag
	PropKey *graph.PropertyKey

	// UnitArith / UnitLogical
	Arith   operator.Arithmetic
	Logical operator.Logical
}

// IsOperand reports whether the unit pushes a value rather than
// consuming operands.
func (u Unit) IsOperand() bool {
	return u.Kind == UnitConst || u.Kind == UnitVar
}

// Program is a finite ordered sequence of units in postfix order.
type Program []Unit

// FromWire translates a wire-level program into a Program. Translation
// is total: every recognized shape succeeds, every unrecognized or
// incomplete shape fails with an *evalerr.InvalidProgramError, and the
// Program is never partially built.
func FromWire(src wire.Program) (Program, error) {
	out := make(Program, 0, len(src.Units))
	for _, u := range src.Units {
		unit, err := fromWireUnit(u)
		if err != nil {
			return nil, err
		}
		out = append(out, unit)
	}
	return out, nil
}

func fromWireUnit(u wire.Unit) (Unit, error) {
	switch {
	case u.Logical != nil:
		l, ok := operator.LogicalFromCode(*u.Logical)
		if !ok {
			return Unit{}, evalerr.InvalidPb("unknown op")
		}
		return Unit{Kind: UnitLogical, Logical: l}, nil
	case u.Arith != nil:
		a, ok := operator.ArithmeticFromCode(*u.Arith)
		if !ok {
			return Unit{}, evalerr.InvalidPb("unknown op")
		}
		return Unit{Kind: UnitArith, Arith: a}, nil
	case u.Const != nil:
		return fromWireConst(u.Const)
	case u.Var != nil:
		return fromWireVar(u.Var)
	default:
		return Unit{}, evalerr.InvalidPb("empty unit")
	}
}

func fromWireConst(c *wire.Const) (Unit, error) {
	if c.Value == nil {
		return Unit{}, evalerr.InvalidPb("empty unit")
	}
	val, err := ValueFromWire(c.Value)
	if err != nil {
		return Unit{}, err
	}
	return Unit{Kind: UnitConst, Const: val}, nil
}

// ValueFromWire translates a wire-level constant payload into an owned
// *value.Value, or nil for the explicit null literal. It is exported so
// callers outside this package (e.g. the CLI's context-binding loader)
// can reuse the same scalar translation without duplicating it.
func ValueFromWire(v *wire.Value) (*value.Value, error) {
	switch {
	case v.Bool != nil:
		val := value.Bool(*v.Bool)
		return &val, nil
	case v.I32 != nil:
		val := value.FromPrimitive(value.I32(*v.I32))
		return &val, nil
	case v.I64 != nil:
		val := value.FromPrimitive(value.I64(*v.I64))
		return &val, nil
	case v.F64 != nil:
		val := value.FromPrimitive(value.F64(*v.F64))
		return &val, nil
	case v.Str != nil:
		val := value.NewString(*v.Str)
		return &val, nil
	case v.Blob != nil:
		val := value.NewBlob(v.Blob)
		return &val, nil
	case v.Null:
		return nil, nil
	case v.I32Array != nil, v.I64Array != nil, v.F64Array != nil, v.StrArray != nil:
		return nil, evalerr.InvalidPb("unsupported const kind")
	default:
		return nil, evalerr.InvalidPb("empty unit")
	}
}

func fromWireVar(v *wire.Var) (Unit, error) {
	if v.Tag == nil {
		return Unit{}, evalerr.InvalidPb("missing tag")
	}
	var tag graph.Tag
	switch {
	case v.Tag.Name != nil:
		tag = graph.TagFromName(*v.Tag.Name)
	case v.Tag.ID != nil:
		tag = graph.TagFromID(*v.Tag.ID)
	default:
		return Unit{}, evalerr.InvalidPb("missing tag")
	}
	var propKey *graph.PropertyKey
	if v.Property != nil {
		k := graph.PropertyKey(*v.Property)
		propKey = &k
	}
	return Unit{Kind: UnitVar, Tag: tag, PropKey: propKey}, nil
}
