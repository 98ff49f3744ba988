package eval

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/go-exprcore/internal/graph"
	"github.com/cwbudde/go-exprcore/internal/operator"
	"github.com/cwbudde/go-exprcore/internal/program"
	"github.com/cwbudde/go-exprcore/internal/value"
)

// TestEvalFixtures snapshots the formatted result of a battery of
// programs drawn from the evaluator's documented end-to-end scenarios,
// the same way the teacher's interpreter snapshots fixture output.
func TestEvalFixtures(t *testing.T) {
	cases := []struct {
		name string
		prog program.Program
	}{
		{"add", program.Program{constI64(7), constI64(3), arith(operator.Add)}},
		{"div_truncates", program.Program{constI64(7), constI64(3), arith(operator.Div)}},
		{"exp_positive", program.Program{constI64(7), constI64(3), arith(operator.Exp)}},
		{"exp_negative_promotes_float", program.Program{constI64(7), constI64(-3), arith(operator.Exp)}},
		{"mod", program.Program{constI64(7), constI64(3), arith(operator.Mod)}},
		{"not_ten", program.Program{constI64(10), logical(operator.Not)}},
		{"not_zero", program.Program{constI64(0), logical(operator.Not)}},
		{"and", program.Program{constBool(true), constBool(false), logical(operator.And)}},
		{"or", program.Program{constBool(true), constBool(false), logical(operator.Or)}},
		{"paren_a", parenProgramA()},
		{"paren_b", parenProgramB()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := New(tc.prog).Eval(nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_result", tc.name), v.Format())
		})
	}
}

// TestEvalFixturesWithContext snapshots variable-resolution scenarios
// against an in-memory MapContext.
func TestEvalFixturesWithContext(t *testing.T) {
	ctx := graph.NewMapContext()
	ctx.Bind(graph.TagFromName("a"), graph.NewMapElement(value.Null(), map[string]value.Value{
		"age": value.FromPrimitive(value.I64(42)),
	}))

	p := program.Program{varUnit("a", "age"), constI64(30), logical(operator.Gt)}
	v, err := New(p).Eval(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snaps.MatchSnapshot(t, "age_gt_30", v.Format())
}
