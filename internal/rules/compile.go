package rules

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/suderio/greed/internal/data"
	"github.com/suderio/greed/internal/engine"
	"github.com/suderio/greed/internal/greed"
)

// Compile turns a ruleset manifest into a scoring pipeline, keeping the
// manifest order. ev is only needed when the ruleset has formula rules.
func Compile(rs *data.Ruleset, ev *engine.Evaluator) ([]greed.Rule, error) {
	pipeline := make([]greed.Rule, 0, len(rs.Rules))

	for i, def := range rs.Rules {
		rule, err := compileRule(def, ev)
		if err != nil {
			return nil, fmt.Errorf("ruleset %s, rule %d: %w", rs.Name, i+1, err)
		}
		pipeline = append(pipeline, rule)
	}

	log.Trace().Str("ruleset", rs.Name).Int("rules", len(pipeline)).Msg("compiled ruleset")
	return pipeline, nil
}

func compileRule(def data.RuleDef, ev *engine.Evaluator) (greed.Rule, error) {
	switch def.Kind {
	case data.KindTriplet:
		if err := checkFace(def.Face); err != nil {
			return nil, err
		}
		if def.Points == 0 {
			return greed.Triplet(def.Face), nil
		}
		return greed.TripletRule{Face: def.Face, Points: def.Points}, nil

	case data.KindStatic:
		if err := checkFace(def.Face); err != nil {
			return nil, err
		}
		if def.Points <= 0 {
			return nil, fmt.Errorf("static rule for %ds needs positive points, got %d", def.Face, def.Points)
		}
		return greed.Static(def.Face, def.Points), nil

	case data.KindFormula:
		if ev == nil {
			return nil, fmt.Errorf("formula rule %q needs an evaluator", def.Name)
		}
		name := def.Name
		if name == "" {
			name = def.When
		}
		return NewFormulaRule(ev, name, def.When, def.Score, def.Consume)

	default:
		return nil, fmt.Errorf("unknown rule kind %q", def.Kind)
	}
}

func checkFace(face int) error {
	if face < 1 || face > greed.Faces {
		return fmt.Errorf("face must be between 1 and %d, got %d", greed.Faces, face)
	}
	return nil
}

// Load resolves a ruleset through the loader and compiles it.
func Load(l *data.Loader, ref string) (*data.Ruleset, []greed.Rule, error) {
	rs, err := l.LoadRuleset(ref)
	if err != nil {
		return nil, nil, err
	}

	ev, err := engine.NewEvaluator()
	if err != nil {
		return nil, nil, err
	}

	pipeline, err := Compile(rs, ev)
	if err != nil {
		return nil, nil, err
	}
	return rs, pipeline, nil
}
