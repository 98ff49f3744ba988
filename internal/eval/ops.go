package eval

import (
	"github.com/cwbudde/go-exprcore/internal/evalerr"
	"github.com/cwbudde/go-exprcore/internal/operator"
	"github.com/cwbudde/go-exprcore/internal/value"
)

// applyArith applies a binary arithmetic operator to (a, b), converting
// both to Primitive first. Arithmetic never accepts Bool or Null
// operands: as_primitive rejects them with TypeMismatch.
func applyArith(op operator.Arithmetic, a, b value.BorrowedValue) (value.Value, error) {
	av, err := a.Value().AsPrimitive()
	if err != nil {
		return value.Value{}, err
	}
	bv, err := b.Value().AsPrimitive()
	if err != nil {
		return value.Value{}, err
	}

	switch op {
	case operator.Add:
		return value.FromPrimitive(value.Add(av, bv)), nil
	case operator.Sub:
		return value.FromPrimitive(value.Sub(av, bv)), nil
	case operator.Mul:
		return value.FromPrimitive(value.Mul(av, bv)), nil
	case operator.Div:
		res, err := value.Div(av, bv)
		if err != nil {
			return value.Value{}, err
		}
		return value.FromPrimitive(res), nil
	case operator.Mod:
		res, err := value.Mod(av, bv)
		if err != nil {
			return value.Value{}, err
		}
		return value.FromPrimitive(res), nil
	case operator.Exp:
		return value.FromPrimitive(value.Exp(av, bv)), nil
	default:
		return value.Value{}, evalerr.Newf(evalerr.InvalidExpression, "unknown arithmetic operator %s", op)
	}
}

// applyLogical applies a logical/comparison operator. If op is Not, b is
// ignored (hasB is false) and a is negated. Otherwise both a (the left
// operand) and b must be present.
func applyLogical(op operator.Logical, a, b value.BorrowedValue, hasB bool) (value.Value, error) {
	if op == operator.Not {
		av, err := a.Value().AsBool()
		if err != nil {
			return value.Value{}, err
		}
		return value.Bool(!av), nil
	}

	if !hasB {
		return value.Value{}, evalerr.New(evalerr.MissingOperands, "")
	}

	av := a.Value()
	bv := b.Value()

	switch op {
	case operator.Eq:
		res, err := value.Equal(av, bv)
		return value.Bool(res), err
	case operator.Ne:
		res, err := value.NotEqual(av, bv)
		return value.Bool(res), err
	case operator.Lt:
		res, err := value.Less(av, bv)
		return value.Bool(res), err
	case operator.Le:
		res, err := value.LessOrEqual(av, bv)
		return value.Bool(res), err
	case operator.Gt:
		res, err := value.Greater(av, bv)
		return value.Bool(res), err
	case operator.Ge:
		res, err := value.GreaterOrEqual(av, bv)
		return value.Bool(res), err
	case operator.And:
		ab, err := av.AsBool()
		if err != nil {
			return value.Value{}, err
		}
		bb, err := bv.AsBool()
		if err != nil {
			return value.Value{}, err
		}
		return value.Bool(ab && bb), nil
	case operator.Or:
		ab, err := av.AsBool()
		if err != nil {
			return value.Value{}, err
		}
		bb, err := bv.AsBool()
		if err != nil {
			return value.Value{}, err
		}
		return value.Bool(ab || bb), nil
	default:
		if op.IsReserved() {
			return value.Value{}, evalerr.Newf(evalerr.Unimplemented, "%s is not implemented", op)
		}
		return value.Value{}, evalerr.Newf(evalerr.InvalidExpression, "unknown logical operator %s", op)
	}
}
