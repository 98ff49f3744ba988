// Package eval implements the postfix expression machine: operand push,
// operator pop-apply-push, single-value result. It includes a
// stackless fast path for programs of three units or fewer.
package eval

import (
	"github.com/cwbudde/go-exprcore/internal/evalerr"
	"github.com/cwbudde/go-exprcore/internal/graph"
	"github.com/cwbudde/go-exprcore/internal/operator"
	"github.com/cwbudde/go-exprcore/internal/program"
	"github.com/cwbudde/go-exprcore/internal/value"
)

// state tracks the evaluator's per-call lifecycle: Idle -> Running ->
// (Done | Failed), with Reset returning Done/Failed to Idle.
type state uint8

const (
	stateIdle state = iota
	stateRunning
	stateDone
	stateFailed
)

// Evaluator owns a compiled Program and a scratch operand stack sized at
// most len(program). Programs are compile-once, evaluate-many: the same
// Program may back multiple Evaluators, but a single Evaluator is not
// safe for concurrent Eval calls.
type Evaluator struct {
	program program.Program
	stack   []value.BorrowedValue
	state   state
}

// New builds an Evaluator over a well-typed Program. Construction is
// infallible; structural problems in the program surface as
// InvalidExpression when the program actually runs.
func New(p program.Program) *Evaluator {
	return &Evaluator{
		program: p,
		stack:   make([]value.BorrowedValue, 0, len(p)),
	}
}

// Reset clears the internal stack and returns the evaluator to Idle.
// Cheap: it never reallocates the backing array.
func (e *Evaluator) Reset() {
	e.stack = e.stack[:0]
	e.state = stateIdle
}

// Eval runs the program against ctx (which may be nil, equivalent to
// graph.Empty) and returns a single value. The stack is guaranteed empty
// again by the time Eval returns, on both the success and error paths.
func (e *Evaluator) Eval(ctx graph.Context) (value.Value, error) {
	e.state = stateRunning
	result, err := e.run(ctx)
	e.stack = e.stack[:0]
	if err != nil {
		e.state = stateFailed
		return value.Value{}, err
	}
	e.state = stateDone
	return result, nil
}

func (e *Evaluator) run(ctx graph.Context) (value.Value, error) {
	if len(e.program) <= 3 {
		return e.evalFastPath(ctx)
	}
	return e.evalGeneral(ctx)
}

// evalFastPath avoids stack allocation for very small programs, per
// spec §4.5.
func (e *Evaluator) evalFastPath(ctx graph.Context) (value.Value, error) {
	switch len(e.program) {
	case 0:
		return value.Value{}, evalerr.New(evalerr.EmptyExpression, "")
	case 1:
		u := e.program[0]
		if !u.IsOperand() {
			return value.Value{}, evalerr.New(evalerr.InvalidExpression, "expected an operand")
		}
		operand, err := e.resolveOperand(ctx, u)
		if err != nil {
			return value.Value{}, err
		}
		return operand.Value(), nil
	case 2:
		first := e.program[0]
		op := e.program[1]
		if !first.IsOperand() || op.Kind != program.UnitLogical || !op.Logical.IsUnary() {
			return value.Value{}, evalerr.New(evalerr.InvalidExpression, "expected [operand, Not]")
		}
		a, err := e.resolveOperand(ctx, first)
		if err != nil {
			return value.Value{}, err
		}
		return applyLogical(operator.Not, a, value.BorrowedValue{}, false)
	case 3:
		left, right, op := e.program[0], e.program[1], e.program[2]
		if !left.IsOperand() || !right.IsOperand() {
			return value.Value{}, evalerr.New(evalerr.InvalidExpression, "expected [operand, operand, op]")
		}
		a, err := e.resolveOperand(ctx, left)
		if err != nil {
			return value.Value{}, err
		}
		b, err := e.resolveOperand(ctx, right)
		if err != nil {
			return value.Value{}, err
		}
		switch op.Kind {
		case program.UnitArith:
			return applyArith(op.Arith, a, b)
		case program.UnitLogical:
			if op.Logical.IsUnary() {
				// [a, b, Not] leaves two values behind on the general path;
				// report it the same way so both paths agree.
				return value.Value{}, evalerr.New(evalerr.InvalidExpression, "program did not reduce to a single value")
			}
			return applyLogical(op.Logical, a, b, true)
		default:
			return value.Value{}, evalerr.New(evalerr.InvalidExpression, "expected a binary operator")
		}
	default:
		return value.Value{}, evalerr.New(evalerr.InvalidExpression, "fast path only handles programs of length <= 3")
	}
}

// evalGeneral walks the program once, pushing operands and popping
// operators, per spec §4.5.
func (e *Evaluator) evalGeneral(ctx graph.Context) (value.Value, error) {
	e.stack = e.stack[:0]
	for _, u := range e.program {
		if u.IsOperand() {
			operand, err := e.resolveOperand(ctx, u)
			if err != nil {
				return value.Value{}, err
			}
			e.push(operand)
			continue
		}

		first, ok := e.pop()
		if !ok {
			return value.Value{}, evalerr.New(evalerr.MissingOperands, "")
		}

		var result value.Value
		var err error
		switch u.Kind {
		case program.UnitLogical:
			if u.Logical.IsUnary() {
				result, err = applyLogical(u.Logical, first, value.BorrowedValue{}, false)
			} else {
				second, ok := e.pop()
				if !ok {
					return value.Value{}, evalerr.New(evalerr.MissingOperands, "")
				}
				// The earlier push is the left operand.
				result, err = applyLogical(u.Logical, second, first, true)
			}
		case program.UnitArith:
			second, ok := e.pop()
			if !ok {
				return value.Value{}, evalerr.New(evalerr.MissingOperands, "")
			}
			result, err = applyArith(u.Arith, second, first)
		default:
			return value.Value{}, evalerr.New(evalerr.InvalidExpression, "operator unit where operand was expected")
		}
		if err != nil {
			return value.Value{}, err
		}
		e.push(asBorrowed(result))
	}

	if len(e.stack) != 1 {
		return value.Value{}, evalerr.New(evalerr.InvalidExpression, "program did not reduce to a single value")
	}
	return e.stack[0].Value(), nil
}

func (e *Evaluator) push(v value.BorrowedValue) {
	e.stack = append(e.stack, v)
}

func (e *Evaluator) pop() (value.BorrowedValue, bool) {
	if len(e.stack) == 0 {
		return value.BorrowedValue{}, false
	}
	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	return top, true
}

// resolveOperand resolves a Const or Var unit to a borrowed value,
// applying the null/missing-context/missing-property edge policies of
// spec §4.5.
func (e *Evaluator) resolveOperand(ctx graph.Context, u program.Unit) (value.BorrowedValue, error) {
	switch u.Kind {
	case program.UnitConst:
		if u.Const == nil || u.Const.Kind() == value.KindNull {
			return value.BorrowedValue{}, evalerr.New(evalerr.NoneOperand, "")
		}
		return u.Const.Borrow(), nil
	case program.UnitVar:
		if ctx == nil {
			return value.BorrowedValue{}, evalerr.New(evalerr.MissingContext, "missing context for evaluating variables")
		}
		elem, ok := ctx.Get(u.Tag)
		if !ok {
			return value.BorrowedValue{}, evalerr.New(evalerr.MissingContext, "missing context for evaluating variables")
		}
		if u.PropKey == nil {
			return elem.SelfAsValue(), nil
		}
		details, ok := elem.Details()
		if !ok {
			return value.BorrowedValue{}, evalerr.New(evalerr.NoneOperand, "")
		}
		prop, ok := details.Get(*u.PropKey)
		if !ok {
			return value.BorrowedValue{}, evalerr.New(evalerr.NoneOperand, "")
		}
		return prop, nil
	default:
		return value.BorrowedValue{}, evalerr.New(evalerr.InvalidExpression, "expected an operand")
	}
}

// asBorrowed wraps a freshly-computed owned Value for pushing onto the
// stack. v is addressable as a parameter, so Borrow takes its address
// without an extra allocation at the call site.
func asBorrowed(v value.Value) value.BorrowedValue {
	return v.Borrow()
}
