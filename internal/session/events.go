package session

import (
	"fmt"
	"sort"
	"strings"

	"github.com/suderio/greed/internal/engine"
	"github.com/suderio/greed/internal/greed"
	"github.com/suderio/greed/internal/triangle"
)

// Event is the outcome of one executed command.
type Event interface {
	Message() string
}

// ScoredEvent reports a scored roll, rolled or typed in.
type ScoredEvent struct {
	Roll      *engine.RollResult
	Breakdown greed.Breakdown
}

func (e *ScoredEvent) Message() string {
	var b strings.Builder
	if e.Roll != nil {
		fmt.Fprintf(&b, "Rolled %s: %v\n", e.Roll.Expr, e.Roll.RawRolls)
	}
	fmt.Fprintf(&b, "%v scores %d", e.Breakdown.Dice, e.Breakdown.Points)
	for _, s := range e.Breakdown.Steps {
		fmt.Fprintf(&b, "\n  %-12s +%d", s.Rule, s.Points)
	}
	if len(e.Breakdown.Leftover) > 0 {
		fmt.Fprintf(&b, "\n  unscored %v", e.Breakdown.Leftover)
	}
	return b.String()
}

// TriangleEvent reports a classified triangle.
type TriangleEvent struct {
	Triangle triangle.Triangle
}

func (e *TriangleEvent) Message() string {
	t := e.Triangle
	return fmt.Sprintf("Triangle %d, %d, %d is %s", t.A, t.B, t.C, t.Kind())
}

// RulesEvent lists the active pipeline.
type RulesEvent struct {
	Ruleset string
	Rules   []string
}

func (e *RulesEvent) Message() string {
	lines := []string{fmt.Sprintf("Ruleset %s:", e.Ruleset)}
	for i, r := range e.Rules {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, r))
	}
	return strings.Join(lines, "\n")
}

// TallyEvent reports the running totals.
type TallyEvent struct {
	Tally Tally
}

func (e *TallyEvent) Message() string {
	return e.Tally.String()
}

// HelpEvent carries usage text.
type HelpEvent struct {
	Text string
}

func (e *HelpEvent) Message() string { return e.Text }

// Tally accumulates the rolls scored during a session.
type Tally struct {
	Rolls  int
	Total  int
	Best   int
	Busts  int
	Scores map[int]int
}

// Add records one scored roll.
func (t *Tally) Add(points int) {
	if t.Scores == nil {
		t.Scores = make(map[int]int)
	}
	t.Rolls++
	t.Total += points
	t.Best = max(t.Best, points)
	t.Scores[points]++
	if points == 0 {
		t.Busts++
	}
}

// Mean returns the average score per roll.
func (t Tally) Mean() float64 {
	if t.Rolls == 0 {
		return 0
	}
	return float64(t.Total) / float64(t.Rolls)
}

// Frequent returns up to n scores ordered by how often they came up.
func (t Tally) Frequent(n int) []int {
	scores := make([]int, 0, len(t.Scores))
	for s := range t.Scores {
		scores = append(scores, s)
	}
	sort.Slice(scores, func(i, j int) bool {
		if t.Scores[scores[i]] != t.Scores[scores[j]] {
			return t.Scores[scores[i]] > t.Scores[scores[j]]
		}
		return scores[i] < scores[j]
	})
	if len(scores) > n {
		scores = scores[:n]
	}
	return scores
}

func (t Tally) String() string {
	return fmt.Sprintf("Rolls: %d | Total: %d | Best: %d | Busts: %d | Mean: %.1f",
		t.Rolls, t.Total, t.Best, t.Busts, t.Mean())
}
