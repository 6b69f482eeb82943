package greed

import "fmt"

// Rule is one scoring step of the pipeline.
//
// AppliesTo must not mutate the roll. ApplyScore only touches the points and
// Consume only touches the counts; the pipeline calls each once per roll.
type Rule interface {
	Name() string
	AppliesTo(r *Roll) bool
	ApplyScore(r *Roll)
	Consume(r *Roll)
}

// DefaultTripletPoints is the value of three of a kind: 1000 for ones,
// otherwise one hundred times the face.
func DefaultTripletPoints(face int) int {
	if face == 1 {
		return 1000
	}
	return face * 100
}

// TripletRule scores three dice of the same face.
type TripletRule struct {
	Face   int
	Points int
}

// Triplet builds a TripletRule worth DefaultTripletPoints(face).
func Triplet(face int) TripletRule {
	return TripletRule{Face: face, Points: DefaultTripletPoints(face)}
}

func (t TripletRule) Name() string { return fmt.Sprintf("three %ds", t.Face) }

func (t TripletRule) AppliesTo(r *Roll) bool { return r.Count(t.Face) >= 3 }

func (t TripletRule) ApplyScore(r *Roll) { r.AddPoints(t.Points) }

func (t TripletRule) Consume(r *Roll) { r.Remove(t.Face, 3) }

// StaticValueRule scores every remaining die of a face at a fixed value.
type StaticValueRule struct {
	Face   int
	PerDie int
}

// Static builds a StaticValueRule.
func Static(face, perDie int) StaticValueRule {
	return StaticValueRule{Face: face, PerDie: perDie}
}

func (s StaticValueRule) Name() string { return fmt.Sprintf("single %ds", s.Face) }

func (s StaticValueRule) AppliesTo(r *Roll) bool { return r.Count(s.Face) > 0 }

func (s StaticValueRule) ApplyScore(r *Roll) { r.AddPoints(r.Count(s.Face) * s.PerDie) }

func (s StaticValueRule) Consume(r *Roll) { r.Clear(s.Face) }
