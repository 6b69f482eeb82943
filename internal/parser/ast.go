package parser

// Command represents a top-level line typed into the shell
type Command struct {
	Score    *ScoreCmd    `parser:"( @@"`
	Roll     *RollCmd     `parser:"| @@"`
	Triangle *TriangleCmd `parser:"| @@"`
	Rules    *RulesCmd    `parser:"| @@"`
	Tally    *TallyCmd    `parser:"| @@"`
	Reset    *ResetCmd    `parser:"| @@"`
	Help     *HelpCmd     `parser:"| @@ )"`
}

// ScoreCmd scores a literal list of dice, e.g. "score [1,1,1,5,1]" or "score 1 1 1 5 1"
type ScoreCmd struct {
	Keyword string `parser:"@\"score\""`
	Dice    []int  `parser:"\"[\"? ( @Int \",\"? )* \"]\"?"`
}

// RollCmd rolls fresh dice and scores them
type RollCmd struct {
	Keyword string    `parser:"@\"roll\""`
	Dice    *DiceExpr `parser:"@@?"`
}

// DiceExpr represents an RPG-style dice roll: NdS[k|d h|l Z][a|d][+/-M]
type DiceExpr struct {
	Raw string `parser:"@DiceMacro"`
}

// TriangleCmd classifies a triangle from its three sides
type TriangleCmd struct {
	Keyword string `parser:"@\"triangle\""`
	Sides   []int  `parser:"@Int \",\"? @Int \",\"? @Int"`
}

// RulesCmd lists the active scoring pipeline
type RulesCmd struct {
	Keyword string `parser:"@\"rules\""`
}

// TallyCmd shows the running totals of the session
type TallyCmd struct {
	Keyword string `parser:"@\"tally\""`
}

// ResetCmd clears the running totals of the session
type ResetCmd struct {
	Keyword string `parser:"@\"reset\""`
}

// HelpCmd provides context-aware guidance
type HelpCmd struct {
	Keyword string `parser:"@\"help\""`
	Command string `parser:"@(Keyword|Ident)?"`
}
