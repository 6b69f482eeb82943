package engine

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/ext"

	"github.com/suderio/greed/internal/greed"
)

// Evaluator wraps a CEL environment configured for ruleset formulas.
//
// Formulas see three variables:
//
//	counts   list of remaining dice per face, indexed by face (index 0 is unused)
//	points   points scored so far
//	leftover list of the remaining dice
type Evaluator struct {
	env *cel.Env
}

// NewEvaluator creates a CEL environment with all variables and functions needed
// for ruleset formula evaluation.
func NewEvaluator() (*Evaluator, error) {
	env, err := cel.NewEnv(
		ext.Strings(),
		ext.Lists(),

		cel.Variable("counts", cel.ListType(cel.IntType)),
		cel.Variable("points", cel.IntType),
		cel.Variable("leftover", cel.ListType(cel.IntType)),

		cel.Function("triplet_points",
			cel.Overload("triplet_points_int",
				[]*cel.Type{cel.IntType},
				cel.IntType,
				cel.UnaryBinding(func(val ref.Val) ref.Val {
					face := val.Value().(int64)
					return types.Int(greed.DefaultTripletPoints(int(face)))
				}),
			),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	return &Evaluator{env: env}, nil
}

// Compile type-checks a formula and returns a reusable program. When want is
// not nil the formula must produce that type (or dyn).
func (ev *Evaluator) Compile(formula string, want *cel.Type) (cel.Program, error) {
	ast, issues := ev.env.Compile(formula)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("CEL compile error: %w", issues.Err())
	}

	if want != nil {
		out := ast.OutputType()
		if !out.IsExactType(want) && !out.IsExactType(cel.DynType) {
			return nil, fmt.Errorf("CEL formula %q returns %s, expected %s", formula, out, want)
		}
	}

	prg, err := ev.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("CEL program error: %w", err)
	}
	return prg, nil
}

// Eval compiles and evaluates a formula against the given context.
func (ev *Evaluator) Eval(formula string, ctx map[string]any) (any, error) {
	prg, err := ev.Compile(formula, nil)
	if err != nil {
		return nil, err
	}
	return Run(prg, ctx)
}

// Run evaluates a compiled program and converts the result to native Go values.
func Run(prg cel.Program, ctx map[string]any) (any, error) {
	out, _, err := prg.Eval(ctx)
	if err != nil {
		return nil, fmt.Errorf("CEL eval error: %w", err)
	}
	return convertRefVal(out), nil
}

// convertRefVal converts a CEL ref.Val to a native Go value, recursively handling
// maps and lists so that downstream code can use standard Go type assertions.
func convertRefVal(val ref.Val) any {
	native := val.Value()
	switch v := native.(type) {
	case map[ref.Val]ref.Val:
		result := make(map[string]any, len(v))
		for mk, mv := range v {
			result[fmt.Sprintf("%v", mk.Value())] = convertRefVal(mv)
		}
		return result
	case []ref.Val:
		result := make([]any, len(v))
		for i, rv := range v {
			result[i] = convertRefVal(rv)
		}
		return result
	default:
		return native
	}
}

// BuildContext exposes the remaining dice and points of a roll to CEL.
func BuildContext(r *greed.Roll) map[string]any {
	counts := r.Counts()
	ctx := map[string]any{
		"counts":   intsToCEL(counts[:]),
		"points":   int64(r.Points()),
		"leftover": intsToCEL(r.Leftover()),
	}
	return ctx
}

// intsToCEL widens ints to int64, which is what CEL uses for integers.
func intsToCEL(in []int) []int64 {
	out := make([]int64, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}
	return out
}
