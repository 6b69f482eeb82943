package parser

import (
	"fmt"
	"strings"
)

// Usage lists the syntax of every command, keyed by its keyword.
var Usage = map[string]string{
	"score":    "score [1,1,1,5,1] | score 1 1 1 5 1",
	"roll":     "roll [NdS]",
	"triangle": "triangle <a> <b> <c>",
	"rules":    "rules",
	"tally":    "tally",
	"reset":    "reset",
	"help":     "help [command]",
}

// MapError takes a raw input and a participle error, and returns a human-friendly guidance message.
func MapError(input string, err error) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("I wasn't able to understand your command")
	}

	cmd := strings.Fields(strings.ToLower(input))[0]
	if usage, ok := Usage[cmd]; ok {
		return fmt.Errorf("The command %s must be: %s", cmd, usage)
	}

	return fmt.Errorf("I wasn't able to understand your command")
}
