package greed

// standardRules is the classic Greed pipeline. Triplets run before singles so
// that three of a kind are gone before the single-die rules count what is left.
var standardRules = [...]Rule{
	TripletRule{Face: 1, Points: 1000},
	Triplet(2),
	Triplet(3),
	Triplet(4),
	Triplet(5),
	Triplet(6),
	Static(5, 50),
	Static(1, 100),
}

// StandardRules returns a copy of the classic Greed pipeline.
func StandardRules() []Rule {
	rules := make([]Rule, len(standardRules))
	copy(rules, standardRules[:])
	return rules
}

// Score returns the points of a roll under the classic rules.
func Score(dice []int) int {
	return ScoreWith(dice, standardRules[:])
}

// ScoreWith returns the points of a roll under the given pipeline.
func ScoreWith(dice []int, rules []Rule) int {
	roll := NewRoll(dice)
	roll.ApplyAll(rules)
	return roll.Points()
}

// Step records one rule that applied during Explain.
type Step struct {
	Rule     string
	Points   int
	Consumed int
}

// Breakdown is a scored roll together with how it was scored.
type Breakdown struct {
	Dice     []int
	Points   int
	Steps    []Step
	Leftover []int
}

// Explain scores dice like ScoreWith and records every rule that applied.
func Explain(dice []int, rules []Rule) Breakdown {
	roll := NewRoll(dice)
	b := Breakdown{Dice: append([]int(nil), dice...)}

	for _, rule := range rules {
		before, remaining := roll.Points(), remainingDice(roll)
		if !roll.Apply(rule) {
			continue
		}
		b.Steps = append(b.Steps, Step{
			Rule:     rule.Name(),
			Points:   roll.Points() - before,
			Consumed: remaining - remainingDice(roll),
		})
	}

	b.Points = roll.Points()
	b.Leftover = roll.Leftover()
	return b
}

func remainingDice(r *Roll) int {
	n := 0
	for _, c := range r.counts {
		n += c
	}
	return n
}
