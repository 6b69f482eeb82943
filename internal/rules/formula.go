package rules

import (
	"fmt"
	"strconv"

	"github.com/google/cel-go/cel"
	"github.com/rs/zerolog/log"

	"github.com/suderio/greed/internal/engine"
	"github.com/suderio/greed/internal/greed"
)

// FormulaRule is a greed.Rule whose behavior is written as CEL formulas.
// A formula that fails at evaluation time makes the rule inapplicable or
// contribute nothing; the failure is logged.
type FormulaRule struct {
	name    string
	when    cel.Program
	score   cel.Program
	consume cel.Program
}

// NewFormulaRule compiles the three formulas of a rule. Consume may be empty,
// in which case no dice are removed.
func NewFormulaRule(ev *engine.Evaluator, name, when, score, consume string) (*FormulaRule, error) {
	if when == "" || score == "" {
		return nil, fmt.Errorf("formula rule %q needs both when and score", name)
	}

	r := &FormulaRule{name: name}
	var err error
	if r.when, err = ev.Compile(when, cel.BoolType); err != nil {
		return nil, fmt.Errorf("rule %q when: %w", name, err)
	}
	if r.score, err = ev.Compile(score, cel.IntType); err != nil {
		return nil, fmt.Errorf("rule %q score: %w", name, err)
	}
	if consume != "" {
		if r.consume, err = ev.Compile(consume, nil); err != nil {
			return nil, fmt.Errorf("rule %q consume: %w", name, err)
		}
	}
	return r, nil
}

func (r *FormulaRule) Name() string { return r.name }

func (r *FormulaRule) AppliesTo(roll *greed.Roll) bool {
	out, err := engine.Run(r.when, engine.BuildContext(roll))
	if err != nil {
		log.Warn().Err(err).Str("rule", r.name).Msg("when formula failed")
		return false
	}
	ok, _ := out.(bool)
	return ok
}

func (r *FormulaRule) ApplyScore(roll *greed.Roll) {
	out, err := engine.Run(r.score, engine.BuildContext(roll))
	if err != nil {
		log.Warn().Err(err).Str("rule", r.name).Msg("score formula failed")
		return
	}
	points, ok := out.(int64)
	if !ok {
		log.Warn().Str("rule", r.name).Msgf("score formula returned %T", out)
		return
	}
	if points < 0 {
		log.Warn().Str("rule", r.name).Int64("points", points).Msg("negative score ignored")
		return
	}
	roll.AddPoints(int(points))
}

func (r *FormulaRule) Consume(roll *greed.Roll) {
	if r.consume == nil {
		return
	}
	out, err := engine.Run(r.consume, engine.BuildContext(roll))
	if err != nil {
		log.Warn().Err(err).Str("rule", r.name).Msg("consume formula failed")
		return
	}
	removals, ok := out.(map[string]any)
	if !ok {
		log.Warn().Str("rule", r.name).Msgf("consume formula returned %T, expected a map", out)
		return
	}
	for key, val := range removals {
		face, err := strconv.Atoi(key)
		n, isInt := val.(int64)
		if err != nil || !isInt {
			log.Warn().Str("rule", r.name).Str("face", key).Msg("consume entry ignored")
			continue
		}
		roll.Remove(face, int(n))
	}
}
