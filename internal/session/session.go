package session

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/rs/zerolog/log"

	"github.com/suderio/greed/internal/engine"
	"github.com/suderio/greed/internal/greed"
	"github.com/suderio/greed/internal/parser"
	"github.com/suderio/greed/internal/triangle"
)

// Roller rolls a dice expression.
type Roller func(expr *parser.DiceExpr) (engine.RollResult, error)

// Options configures a Session.
type Options struct {
	Ruleset     string
	Rules       []greed.Rule
	DefaultDice string
	Roller      Roller
}

// Session manages the loop of taking commands, executing them and keeping the tally
type Session struct {
	parser      *participle.Parser[parser.Command]
	ruleset     string
	rules       []greed.Rule
	defaultDice string
	roller      Roller
	tally       Tally
}

// NewSession bootstraps a shell session. Missing options fall back to the
// standard rules, five six-sided dice and the crypto roller.
func NewSession(opts Options) *Session {
	s := &Session{
		parser:      parser.Build(),
		ruleset:     opts.Ruleset,
		rules:       opts.Rules,
		defaultDice: opts.DefaultDice,
		roller:      opts.Roller,
	}
	if s.rules == nil {
		s.rules = greed.StandardRules()
		s.ruleset = "standard"
	}
	if s.defaultDice == "" {
		s.defaultDice = "5d6"
	}
	if s.roller == nil {
		s.roller = engine.Roll
	}
	return s
}

// Tally returns the running totals.
func (s *Session) Tally() Tally {
	return s.tally
}

// Ruleset returns the name of the active ruleset.
func (s *Session) Ruleset() string {
	return s.ruleset
}

// Execute parses and runs one line of input.
func (s *Session) Execute(input string) ([]Event, error) {
	cmd, err := s.parser.ParseString("", input)
	if err != nil {
		log.Trace().Err(err).Str("input", input).Msg("parse failed")
		return nil, parser.MapError(input, err)
	}

	switch {
	case cmd.Score != nil:
		return s.score(cmd.Score.Dice, nil), nil
	case cmd.Roll != nil:
		return s.roll(cmd.Roll)
	case cmd.Triangle != nil:
		sides := cmd.Triangle.Sides
		t, err := triangle.New(sides[0], sides[1], sides[2])
		if err != nil {
			return nil, err
		}
		return []Event{&TriangleEvent{Triangle: t}}, nil
	case cmd.Rules != nil:
		names := make([]string, len(s.rules))
		for i, r := range s.rules {
			names[i] = r.Name()
		}
		return []Event{&RulesEvent{Ruleset: s.ruleset, Rules: names}}, nil
	case cmd.Tally != nil:
		return []Event{&TallyEvent{Tally: s.tally}}, nil
	case cmd.Reset != nil:
		s.tally = Tally{}
		return []Event{&TallyEvent{Tally: s.tally}}, nil
	case cmd.Help != nil:
		return []Event{&HelpEvent{Text: Help(cmd.Help.Command)}}, nil
	}

	return nil, parser.MapError(input, nil)
}

func (s *Session) roll(cmd *parser.RollCmd) ([]Event, error) {
	expr := cmd.Dice
	if expr == nil {
		expr = &parser.DiceExpr{Raw: s.defaultDice}
	}

	res, err := s.roller(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to roll %s: %w", expr.Raw, err)
	}
	return s.score(res.Faces(), &res), nil
}

func (s *Session) score(dice []int, res *engine.RollResult) []Event {
	b := greed.Explain(dice, s.rules)
	s.tally.Add(b.Points)
	log.Trace().Ints("dice", dice).Int("points", b.Points).Msg("scored roll")
	return []Event{&ScoredEvent{Roll: res, Breakdown: b}}
}

// Help returns usage for one command, or for all of them.
func Help(command string) string {
	command = strings.ToLower(command)
	if usage, ok := parser.Usage[command]; ok {
		return usage
	}

	keys := make([]string, 0, len(parser.Usage))
	for k := range parser.Usage {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := []string{"Commands:"}
	for _, k := range keys {
		lines = append(lines, "  "+parser.Usage[k])
	}
	return strings.Join(lines, "\n")
}
