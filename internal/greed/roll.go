// Package greed scores a single roll of the Greed dice game.
//
// A roll is tallied into per-face counts and an ordered pipeline of rules is
// applied to it. Each rule that applies adds its points and removes the dice it
// scored, so later rules only see what is left over.
package greed

// Faces is the number of sides on a Greed die.
const Faces = 6

// Roll holds the remaining dice of a single roll and the points scored so far.
type Roll struct {
	counts [Faces + 1]int // index 0 unused
	stray  []int          // dice outside 1..Faces, never scored
	points int
}

// NewRoll tallies the dice into a fresh Roll with zero points.
// Values outside 1..Faces are kept aside and never match a rule.
func NewRoll(dice []int) *Roll {
	r := &Roll{}
	for _, d := range dice {
		if d < 1 || d > Faces {
			r.stray = append(r.stray, d)
			continue
		}
		r.counts[d]++
	}
	return r
}

// Count returns how many unscored dice show face. Unknown faces count 0.
func (r *Roll) Count(face int) int {
	if face < 1 || face > Faces {
		return 0
	}
	return r.counts[face]
}

// Counts returns a copy of the per-face counts, indexed by face.
func (r *Roll) Counts() [Faces + 1]int {
	return r.counts
}

// Points returns the running total.
func (r *Roll) Points() int {
	return r.points
}

// AddPoints increases the running total. Non-positive amounts are ignored.
func (r *Roll) AddPoints(n int) {
	if n > 0 {
		r.points += n
	}
}

// Remove takes up to n dice of face out of the roll.
func (r *Roll) Remove(face, n int) {
	if face < 1 || face > Faces || n <= 0 {
		return
	}
	r.counts[face] -= min(n, r.counts[face])
}

// Clear removes every remaining die of face.
func (r *Roll) Clear(face int) {
	if face < 1 || face > Faces {
		return
	}
	r.counts[face] = 0
}

// Leftover lists the dice no rule has consumed, strays included, in face order.
func (r *Roll) Leftover() []int {
	var out []int
	for face := 1; face <= Faces; face++ {
		for i := 0; i < r.counts[face]; i++ {
			out = append(out, face)
		}
	}
	return append(out, r.stray...)
}

// Apply runs a single rule against the roll and reports whether it applied.
func (r *Roll) Apply(rule Rule) bool {
	if !rule.AppliesTo(r) {
		return false
	}
	rule.ApplyScore(r)
	rule.Consume(r)
	return true
}

// ApplyAll runs the rules in order.
func (r *Roll) ApplyAll(rules []Rule) {
	for _, rule := range rules {
		r.Apply(rule)
	}
}
