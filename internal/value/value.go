// Package value implements the evaluator's dynamic value model: a closed,
// tagged sum type (Null, Bool, Primitive, String, Blob) with numeric
// promotion, comparison, and arithmetic, plus a non-owning BorrowedValue
// view used on the evaluator's stack so operator application never copies
// string or blob bodies.
package value

import (
	"fmt"
	"math"

	"github.com/cwbudde/go-exprcore/internal/evalerr"
)

// Kind identifies a Value's dynamic type.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindPrimitive
	KindString
	KindBlob
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindPrimitive:
		return "primitive"
	case KindString:
		return "string"
	case KindBlob:
		return "blob"
	default:
		return "unknown"
	}
}

// PrimitiveKind identifies a Primitive's numeric subtype. The ordering of
// the constants is load-bearing: promotion always widens towards the
// larger constant, with F64 dominating any integer subtype.
type PrimitiveKind uint8

const (
	KindI32 PrimitiveKind = iota
	KindI64
	KindU64
	KindF64
)

func (k PrimitiveKind) String() string {
	switch k {
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindU64:
		return "u64"
	case KindF64:
		return "f64"
	default:
		return "unknown"
	}
}

// Primitive is an internally tagged numeric value. Only one of the
// payload fields is meaningful, selected by Kind.
type Primitive struct {
	Kind PrimitiveKind
	i32  int32
	i64  int64
	u64  uint64
	f64  float64
}

// I32 builds a Primitive carrying a 32-bit signed integer.
func I32(v int32) Primitive { return Primitive{Kind: KindI32, i32: v} }

// I64 builds a Primitive carrying a 64-bit signed integer.
func I64(v int64) Primitive { return Primitive{Kind: KindI64, i64: v} }

// U64 builds a Primitive carrying a 64-bit unsigned integer.
func U64(v uint64) Primitive { return Primitive{Kind: KindU64, u64: v} }

// F64 builds a Primitive carrying a 64-bit float.
func F64(v float64) Primitive { return Primitive{Kind: KindF64, f64: v} }

// Float returns the primitive widened to float64, regardless of subtype.
func (p Primitive) Float() float64 {
	switch p.Kind {
	case KindI32:
		return float64(p.i32)
	case KindI64:
		return float64(p.i64)
	case KindU64:
		return float64(p.u64)
	default:
		return p.f64
	}
}

// AsI64 returns the primitive widened to int64. Used when combining with
// another integer subtype during promotion; U64 values above
// math.MaxInt64 wrap, mirroring the raw reinterpretation the upstream
// engine performs at this layer.
func (p Primitive) AsI64() int64 {
	switch p.Kind {
	case KindI32:
		return int64(p.i32)
	case KindI64:
		return p.i64
	case KindU64:
		return int64(p.u64)
	default:
		return int64(p.f64)
	}
}

// AsU64 returns the primitive widened to uint64.
func (p Primitive) AsU64() uint64 {
	switch p.Kind {
	case KindI32:
		return uint64(p.i32)
	case KindI64:
		return uint64(p.i64)
	case KindU64:
		return p.u64
	default:
		return uint64(p.f64)
	}
}

// IsZero reports whether the primitive's numeric value is exactly zero.
func (p Primitive) IsZero() bool {
	if p.Kind == KindF64 {
		return p.f64 == 0
	}
	return p.AsI64() == 0 && p.AsU64() == 0
}

// IsNegative reports whether the primitive's numeric value is negative.
func (p Primitive) IsNegative() bool {
	switch p.Kind {
	case KindU64:
		return false
	case KindF64:
		return p.f64 < 0
	default:
		return p.AsI64() < 0
	}
}

// IsInteger reports whether the primitive's subtype is one of the integer
// kinds (I32, I64, U64).
func (p Primitive) IsInteger() bool {
	return p.Kind != KindF64
}

func promoteKind(a, b PrimitiveKind) PrimitiveKind {
	if a > b {
		return a
	}
	return b
}

// binaryNumeric applies intOp/uintOp/floatOp to a, b after promoting to
// the widest of their two subtypes, per the I32 < I64 < U64 < F64 order.
func binaryNumeric(a, b Primitive, intOp func(x, y int64) int64, uintOp func(x, y uint64) uint64, floatOp func(x, y float64) float64) Primitive {
	switch promoteKind(a.Kind, b.Kind) {
	case KindF64:
		return F64(floatOp(a.Float(), b.Float()))
	case KindU64:
		return U64(uintOp(a.AsU64(), b.AsU64()))
	case KindI64:
		return I64(intOp(a.AsI64(), b.AsI64()))
	default:
		return I32(int32(intOp(a.AsI64(), b.AsI64())))
	}
}

// Add returns a + b with numeric promotion.
func Add(a, b Primitive) Primitive {
	return binaryNumeric(a, b,
		func(x, y int64) int64 { return x + y },
		func(x, y uint64) uint64 { return x + y },
		func(x, y float64) float64 { return x + y })
}

// Sub returns a - b with numeric promotion.
func Sub(a, b Primitive) Primitive {
	return binaryNumeric(a, b,
		func(x, y int64) int64 { return x - y },
		func(x, y uint64) uint64 { return x - y },
		func(x, y float64) float64 { return x - y })
}

// Mul returns a * b with numeric promotion.
func Mul(a, b Primitive) Primitive {
	return binaryNumeric(a, b,
		func(x, y int64) int64 { return x * y },
		func(x, y uint64) uint64 { return x * y },
		func(x, y float64) float64 { return x * y })
}

// Div returns a / b with numeric promotion. Integer division truncates
// toward zero; if either operand is a float the result is a float.
// A zero divisor is checked before promotion and reported as
// DivisionByZero.
func Div(a, b Primitive) (Primitive, error) {
	if b.IsZero() {
		return Primitive{}, evalerr.New(evalerr.DivisionByZero, "")
	}
	return binaryNumeric(a, b,
		func(x, y int64) int64 { return x / y },
		func(x, y uint64) uint64 { return x / y },
		func(x, y float64) float64 { return x / y }), nil
}

// Mod returns a % b with numeric promotion, truncating like Div.
func Mod(a, b Primitive) (Primitive, error) {
	if b.IsZero() {
		return Primitive{}, evalerr.New(evalerr.DivisionByZero, "")
	}
	return binaryNumeric(a, b,
		func(x, y int64) int64 { return x % y },
		func(x, y uint64) uint64 { return x % y },
		func(x, y float64) float64 { return math.Mod(x, y) }), nil
}

// Exp returns base^exp. When both operands are integers and exp is
// non-negative the result stays integer; a negative integer exponent
// promotes the result to float64 (e.g. 7^-3 == 1.0/343.0).
func Exp(base, exp Primitive) Primitive {
	if !base.IsInteger() || !exp.IsInteger() || exp.IsNegative() {
		return F64(math.Pow(base.Float(), exp.Float()))
	}
	if exp.Kind == KindU64 || base.Kind == KindU64 {
		return U64(uintPow(base.AsU64(), exp.AsU64()))
	}
	result := intPow(base.AsI64(), exp.AsI64())
	if base.Kind == KindI32 && exp.Kind == KindI32 {
		return I32(int32(result))
	}
	return I64(result)
}

func intPow(base, exp int64) int64 {
	var result int64 = 1
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

func uintPow(base, exp uint64) uint64 {
	var result uint64 = 1
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// Compare orders two primitives by numeric value after promotion,
// returning -1, 0, or 1.
func Compare(a, b Primitive) int {
	switch promoteKind(a.Kind, b.Kind) {
	case KindF64:
		af, bf := a.Float(), b.Float()
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	case KindU64:
		au, bu := a.AsU64(), b.AsU64()
		switch {
		case au < bu:
			return -1
		case au > bu:
			return 1
		default:
			return 0
		}
	default:
		ai, bi := a.AsI64(), b.AsI64()
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		default:
			return 0
		}
	}
}

// Value is the evaluator's dynamic value: exactly one of Null, Bool,
// Primitive, String, or Blob, selected by Kind.
type Value struct {
	kind Kind
	b    bool
	p    Primitive
	s    string
	blob []byte
}

// Null returns the Null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a Bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// FromPrimitive returns a Primitive value.
func FromPrimitive(p Primitive) Value { return Value{kind: KindPrimitive, p: p} }

// NewString returns an owned String value. Named to avoid clashing with the
// Kind.String() convention, NewString mirrors the pb::Const translation
// naming used by the upstream wire form.
func NewString(s string) Value { return Value{kind: KindString, s: s} }

// NewBlob returns an owned Blob value. The byte slice is not copied; the
// caller must not mutate it afterwards.
func NewBlob(b []byte) Value { return Value{kind: KindBlob, blob: b} }

// Kind returns the value's dynamic type.
func (v Value) Kind() Kind { return v.kind }

// AsPrimitive returns the value as a Primitive. Bool and Null are
// rejected explicitly: booleans are never coerced to numbers for
// arithmetic.
func (v Value) AsPrimitive() (Primitive, error) {
	if v.kind != KindPrimitive {
		return Primitive{}, evalerr.Newf(evalerr.TypeMismatch, "expected primitive, got %s", v.kind)
	}
	return v.p, nil
}

// AsBool converts the value to bool: Bool(b) -> b, Primitive(n) -> n != 0,
// anything else is a TypeMismatch.
func (v Value) AsBool() (bool, error) {
	switch v.kind {
	case KindBool:
		return v.b, nil
	case KindPrimitive:
		return !v.p.IsZero(), nil
	default:
		return false, evalerr.Newf(evalerr.TypeMismatch, "expected bool, got %s", v.kind)
	}
}

// sameFamily reports whether a and b belong to the same comparable
// family (both Primitive, both String, both Blob, or both Bool).
func sameFamily(a, b Value) bool {
	return a.kind == b.kind && a.kind != KindNull
}

// Equal implements ==. Null is never equal to anything, including
// another Null. Cross-family comparisons (Primitive vs String, etc.)
// fail with TypeMismatch.
func Equal(a, b Value) (bool, error) {
	if a.kind == KindNull || b.kind == KindNull {
		return false, nil
	}
	if !sameFamily(a, b) {
		return false, evalerr.Newf(evalerr.TypeMismatch, "cannot compare %s and %s", a.kind, b.kind)
	}
	switch a.kind {
	case KindBool:
		return a.b == b.b, nil
	case KindPrimitive:
		return Compare(a.p, b.p) == 0, nil
	case KindString:
		return a.s == b.s, nil
	case KindBlob:
		return string(a.blob) == string(b.blob), nil
	default:
		return false, nil
	}
}

// NotEqual implements !=.
func NotEqual(a, b Value) (bool, error) {
	eq, err := Equal(a, b)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// Order compares a and b, returning -1, 0, or 1. Ordering with Null, or
// across incompatible families, fails with TypeMismatch.
func Order(a, b Value) (int, error) {
	if a.kind == KindNull || b.kind == KindNull {
		return 0, evalerr.New(evalerr.TypeMismatch, "cannot order null")
	}
	if !sameFamily(a, b) {
		return 0, evalerr.Newf(evalerr.TypeMismatch, "cannot order %s and %s", a.kind, b.kind)
	}
	switch a.kind {
	case KindBool:
		switch {
		case a.b == b.b:
			return 0, nil
		case !a.b:
			return -1, nil
		default:
			return 1, nil
		}
	case KindPrimitive:
		return Compare(a.p, b.p), nil
	case KindString:
		switch {
		case a.s < b.s:
			return -1, nil
		case a.s > b.s:
			return 1, nil
		default:
			return 0, nil
		}
	case KindBlob:
		switch {
		case string(a.blob) < string(b.blob):
			return -1, nil
		case string(a.blob) > string(b.blob):
			return 1, nil
		default:
			return 0, nil
		}
	default:
		return 0, evalerr.Newf(evalerr.TypeMismatch, "cannot order %s", a.kind)
	}
}

// Less reports whether a < b.
func Less(a, b Value) (bool, error) {
	c, err := Order(a, b)
	return c < 0, err
}

// LessOrEqual reports whether a <= b.
func LessOrEqual(a, b Value) (bool, error) {
	c, err := Order(a, b)
	return c <= 0, err
}

// Greater reports whether a > b.
func Greater(a, b Value) (bool, error) {
	c, err := Order(a, b)
	return c > 0, err
}

// GreaterOrEqual reports whether a >= b.
func GreaterOrEqual(a, b Value) (bool, error) {
	c, err := Order(a, b)
	return c >= 0, err
}

// Format renders the value for debugging/CLI display. It is not used as
// the evaluator's result type; callers inspect Kind/AsPrimitive/etc.
func (v Value) Format() string {
	switch v.kind {
	case KindNull:
		return "<null>"
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindPrimitive:
		switch v.p.Kind {
		case KindI32:
			return fmt.Sprintf("%d", v.p.i32)
		case KindI64:
			return fmt.Sprintf("%d", v.p.i64)
		case KindU64:
			return fmt.Sprintf("%d", v.p.u64)
		default:
			return fmt.Sprintf("%v", v.p.f64)
		}
	case KindString:
		return v.s
	case KindBlob:
		return fmt.Sprintf("%x", v.blob)
	default:
		return "?"
	}
}

// Borrow returns a non-owning BorrowedValue view of v, suitable for
// pushing onto the evaluator's stack without copying string/blob bodies.
func (v *Value) Borrow() BorrowedValue { return BorrowedValue{v: v} }

// BorrowedValue is a non-owning view over a Value, used on the
// evaluator's operand stack. Every owned Value produces a BorrowedValue
// via Borrow; BorrowedValue.Value copies only the (small) tag/payload
// struct, never the underlying string or byte slice it points at.
type BorrowedValue struct {
	v *Value
}

// Value dereferences the borrowed view.
func (b BorrowedValue) Value() Value {
	if b.v == nil {
		return Null()
	}
	return *b.v
}

// Kind returns the borrowed value's dynamic type.
func (b BorrowedValue) Kind() Kind { return b.Value().Kind() }
