package value

import "testing"

func TestPrimitiveArithmeticPromotion(t *testing.T) {
	cases := []struct {
		name string
		a, b Primitive
		op   func(a, b Primitive) Primitive
		want Primitive
	}{
		{"i32+i32", I32(2), I32(3), Add, I32(5)},
		{"i32+i64 promotes to i64", I32(2), I64(3), Add, I64(5)},
		{"i64+u64 promotes to u64", I64(2), U64(3), Add, U64(5)},
		{"i32+f64 promotes to f64", I32(2), F64(0.5), Add, F64(2.5)},
		{"mul", I64(6), I64(7), Mul, I64(42)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.op(tc.a, tc.b)
			if got.Kind != tc.want.Kind {
				t.Fatalf("kind = %s, want %s", got.Kind, tc.want.Kind)
			}
			if got.Float() != tc.want.Float() {
				t.Fatalf("value = %v, want %v", got.Float(), tc.want.Float())
			}
		})
	}
}

func TestDivIntegerTruncates(t *testing.T) {
	got, err := Div(I64(7), I64(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != KindI64 || got.AsI64() != 2 {
		t.Fatalf("7/3 = %v (%s), want 2 (i64)", got.Float(), got.Kind)
	}
}

func TestDivMixedIntFloatIsFloat(t *testing.T) {
	got, err := Div(F64(2), I64(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != KindF64 {
		t.Fatalf("expected float result, got %s", got.Kind)
	}
	if got.Float() != 0.4 {
		t.Fatalf("2.0/5 = %v, want 0.4", got.Float())
	}
}

func TestDivByZero(t *testing.T) {
	if _, err := Div(I64(1), I64(0)); err == nil {
		t.Fatal("expected DivisionByZero error")
	}
	if _, err := Mod(I64(1), I64(0)); err == nil {
		t.Fatal("expected DivisionByZero error")
	}
}

func TestExpNegativeExponentPromotesToFloat(t *testing.T) {
	got := Exp(I64(7), I64(-3))
	if got.Kind != KindF64 {
		t.Fatalf("7^-3 should promote to float, got %s", got.Kind)
	}
	want := 1.0 / 343.0
	if got.Float() != want {
		t.Fatalf("7^-3 = %v, want %v", got.Float(), want)
	}
}

func TestExpPositiveIntegerStaysInteger(t *testing.T) {
	got := Exp(I64(7), I64(3))
	if got.Kind != KindI64 {
		t.Fatalf("7^3 should stay integer, got %s", got.Kind)
	}
	if got.AsI64() != 343 {
		t.Fatalf("7^3 = %d, want 343", got.AsI64())
	}
}

func TestAsBoolOnPrimitive(t *testing.T) {
	v10 := FromPrimitive(I64(10))
	b, err := v10.AsBool()
	if err != nil || b != true {
		t.Fatalf("10 as bool = %v, %v; want true, nil", b, err)
	}

	v0 := FromPrimitive(I64(0))
	b, err = v0.AsBool()
	if err != nil || b != false {
		t.Fatalf("0 as bool = %v, %v; want false, nil", b, err)
	}
}

func TestAsBoolRejectsStringAndNull(t *testing.T) {
	if _, err := NewString("x").AsBool(); err == nil {
		t.Fatal("expected TypeMismatch converting string to bool")
	}
	if _, err := Null().AsBool(); err == nil {
		t.Fatal("expected TypeMismatch converting null to bool")
	}
}

func TestAsPrimitiveRejectsBoolAndNull(t *testing.T) {
	if _, err := Bool(true).AsPrimitive(); err == nil {
		t.Fatal("bool must not coerce to a primitive for arithmetic")
	}
	if _, err := Null().AsPrimitive(); err == nil {
		t.Fatal("null must not coerce to a primitive for arithmetic")
	}
}

func TestNullEqualityIsNeverTrue(t *testing.T) {
	eq, err := Equal(Null(), Null())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eq {
		t.Fatal("Null == Null must be false")
	}

	ne, err := NotEqual(Null(), Null())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ne {
		t.Fatal("Null != Null must be true")
	}
}

func TestOrderingWithNullIsTypeMismatch(t *testing.T) {
	if _, err := Less(Null(), FromPrimitive(I64(1))); err == nil {
		t.Fatal("expected TypeMismatch ordering against null")
	}
}

func TestCrossTypeComparisonIsTypeMismatch(t *testing.T) {
	if _, err := Equal(FromPrimitive(I64(1)), NewString("1")); err == nil {
		t.Fatal("expected TypeMismatch comparing primitive and string")
	}
	if _, err := Less(FromPrimitive(I64(1)), NewString("1")); err == nil {
		t.Fatal("expected TypeMismatch ordering primitive and string")
	}
}

func TestOrderingConsistency(t *testing.T) {
	a := FromPrimitive(I64(1))
	b := FromPrimitive(I64(2))

	lt, err := Less(a, b)
	if err != nil || !lt {
		t.Fatalf("1 < 2 should be true, got %v, %v", lt, err)
	}
	gt, err := Greater(b, a)
	if err != nil || !gt {
		t.Fatalf("2 > 1 should be true, got %v, %v", gt, err)
	}
	le, err := LessOrEqual(a, b)
	if err != nil || !le {
		t.Fatalf("1 <= 2 should be true, got %v, %v", le, err)
	}
	ge, err := GreaterOrEqual(a, b)
	if err != nil || ge {
		t.Fatalf("1 >= 2 should be false, got %v, %v", ge, err)
	}
	ne, err := NotEqual(a, b)
	if err != nil || !ne {
		t.Fatalf("1 != 2 should be true, got %v, %v", ne, err)
	}
}

func TestBoolOrderingFalseLessThanTrue(t *testing.T) {
	lt, err := Less(Bool(false), Bool(true))
	if err != nil || !lt {
		t.Fatalf("false < true should be true, got %v, %v", lt, err)
	}
}

func TestStringAndBlobLexicographicOrdering(t *testing.T) {
	lt, err := Less(NewString("abc"), NewString("abd"))
	if err != nil || !lt {
		t.Fatalf(`"abc" < "abd" should be true, got %v, %v`, lt, err)
	}
	lt, err = Less(NewBlob([]byte{1, 2}), NewBlob([]byte{1, 3}))
	if err != nil || !lt {
		t.Fatalf("blob ordering should be lexicographic, got %v, %v", lt, err)
	}
}

func TestBorrowedValueDoesNotCopyString(t *testing.T) {
	v := NewString("borrowed body")
	bv := v.Borrow()
	if bv.v != &v {
		t.Fatal("borrowed view must point at the original value, not a copy")
	}
	if bv.Value().Format() != "borrowed body" {
		t.Fatalf("borrowed string mismatch: %q", bv.Value().Format())
	}
}
