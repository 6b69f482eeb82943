package data

// Rule kinds understood by the rules compiler.
const (
	KindTriplet = "triplet"
	KindStatic  = "static"
	KindFormula = "formula"
)

// Ruleset is an ordered scoring pipeline as written in a YAML manifest.
type Ruleset struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Rules       []RuleDef `yaml:"rules"`
}

// RuleDef is a single entry of a Ruleset.
//
// Triplet and static rules use Face and Points; a triplet without Points gets
// the default three-of-a-kind value. Formula rules use the CEL expressions
// When (bool), Score (int) and Consume (map of face to dice removed).
type RuleDef struct {
	Kind    string `yaml:"kind"`
	Name    string `yaml:"name,omitempty"`
	Face    int    `yaml:"face,omitempty"`
	Points  int    `yaml:"points,omitempty"`
	When    string `yaml:"when,omitempty"`
	Score   string `yaml:"score,omitempty"`
	Consume string `yaml:"consume,omitempty"`
}
