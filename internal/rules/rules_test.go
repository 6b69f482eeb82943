package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suderio/greed/internal/data"
	"github.com/suderio/greed/internal/engine"
	"github.com/suderio/greed/internal/greed"
)

func TestCompileStandardMatchesBuiltin(t *testing.T) {
	rs, pipeline, err := Load(data.NewLoader(nil), "standard")
	require.NoError(t, err)

	assert.Equal(t, "standard", rs.Name)
	assert.Equal(t, greed.StandardRules(), pipeline)

	for _, dice := range [][]int{{}, {1, 1, 1, 5, 1}, {2, 5, 2, 2, 3}, {5, 5, 5, 5}, {3, 4, 5, 3, 3}} {
		assert.Equal(t, greed.Score(dice), greed.ScoreWith(dice, pipeline), "dice %v", dice)
	}
}

func TestCompileFarkleLite(t *testing.T) {
	_, pipeline, err := Load(data.NewLoader(nil), "farkle-lite")
	require.NoError(t, err)

	cases := []struct {
		name string
		dice []int
		want int
	}{
		{"low straight", []int{5, 3, 1, 4, 2}, 1500},
		{"high straight", []int{6, 2, 4, 5, 3}, 1500},
		{"straight plus a spare six", []int{6, 2, 4, 1, 3, 5}, 1500},
		{"straight plus a spare one", []int{1, 2, 3, 4, 5, 1}, 1600},
		{"broken straight", []int{1, 2, 3, 4, 6}, 100},
		{"four twos and a five", []int{2, 2, 2, 2, 5}, 450},
		{"four ones and a five", []int{1, 1, 1, 5, 1}, 2050},
		{"plain greed roll", []int{3, 4, 5, 3, 3}, 350},
		{"nothing", []int{2, 3, 4, 6, 2}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, greed.ScoreWith(tc.dice, pipeline))
		})
	}
}

func TestCompileRejectsBadRules(t *testing.T) {
	ev, err := engine.NewEvaluator()
	require.NoError(t, err)

	cases := []struct {
		name string
		def  data.RuleDef
		msg  string
	}{
		{"unknown kind", data.RuleDef{Kind: "straight"}, `unknown rule kind "straight"`},
		{"triplet face too high", data.RuleDef{Kind: data.KindTriplet, Face: 7}, "face must be between 1 and 6"},
		{"static face zero", data.RuleDef{Kind: data.KindStatic, Face: 0, Points: 50}, "face must be between 1 and 6"},
		{"static without points", data.RuleDef{Kind: data.KindStatic, Face: 5}, "needs positive points"},
		{"formula without score", data.RuleDef{Kind: data.KindFormula, Name: "x", When: "true"}, "needs both when and score"},
		{"formula with bad when", data.RuleDef{Kind: data.KindFormula, Name: "x", When: "counts[1]", Score: "1"}, `rule "x" when`},
		{"formula with syntax error", data.RuleDef{Kind: data.KindFormula, Name: "x", When: "true", Score: "1 +"}, `rule "x" score`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rs := &data.Ruleset{Name: "broken", Rules: []data.RuleDef{tc.def}}
			_, err := Compile(rs, ev)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "ruleset broken, rule 1")
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestCompileFormulaNeedsEvaluator(t *testing.T) {
	rs := &data.Ruleset{Name: "f", Rules: []data.RuleDef{{Kind: data.KindFormula, When: "true", Score: "1"}}}
	_, err := Compile(rs, nil)
	assert.ErrorContains(t, err, "needs an evaluator")
}

func TestCompileTripletPoints(t *testing.T) {
	rs := &data.Ruleset{Name: "t", Rules: []data.RuleDef{
		{Kind: data.KindTriplet, Face: 2},
		{Kind: data.KindTriplet, Face: 3, Points: 999},
	}}
	pipeline, err := Compile(rs, nil)
	require.NoError(t, err)
	assert.Equal(t, []greed.Rule{greed.Triplet(2), greed.TripletRule{Face: 3, Points: 999}}, pipeline)
}

func TestFormulaRule(t *testing.T) {
	ev, err := engine.NewEvaluator()
	require.NoError(t, err)

	rule, err := NewFormulaRule(ev, "pair of sixes", "counts[6] >= 2", "60 + points / 10", "{6: 2}")
	require.NoError(t, err)
	assert.Equal(t, "pair of sixes", rule.Name())

	roll := greed.NewRoll([]int{6, 6, 6, 1})
	roll.AddPoints(100)
	require.True(t, rule.AppliesTo(roll))

	rule.ApplyScore(roll)
	assert.Equal(t, 170, roll.Points())

	rule.Consume(roll)
	assert.Equal(t, 1, roll.Count(6))
	assert.False(t, rule.AppliesTo(roll))
}

func TestFormulaRuleFailuresScoreNothing(t *testing.T) {
	ev, err := engine.NewEvaluator()
	require.NoError(t, err)

	t.Run("when fails at runtime", func(t *testing.T) {
		rule, err := NewFormulaRule(ev, "bad index", "counts[9] > 0", "100", "")
		require.NoError(t, err)
		assert.False(t, rule.AppliesTo(greed.NewRoll([]int{1})))
	})

	t.Run("negative score is ignored", func(t *testing.T) {
		rule, err := NewFormulaRule(ev, "penalty", "true", "-100", "")
		require.NoError(t, err)
		roll := greed.NewRoll([]int{2})
		roll.Apply(rule)
		assert.Equal(t, 0, roll.Points())
		assert.Equal(t, 1, roll.Count(2), "no consume formula, no dice removed")
	})

	t.Run("consume must be a map", func(t *testing.T) {
		rule, err := NewFormulaRule(ev, "list consume", "true", "10", "[1, 2]")
		require.NoError(t, err)
		roll := greed.NewRoll([]int{1, 2})
		roll.Apply(rule)
		assert.Equal(t, 10, roll.Points())
		assert.Equal(t, []int{1, 2}, roll.Leftover())
	})
}
