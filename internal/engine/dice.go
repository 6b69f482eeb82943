package engine

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/suderio/greed/internal/parser"
)

var mockDiceQueue []int

// MockDice prepares a sequence of deterministic results for the next calls to Roll
func MockDice(results []int) {
	mockDiceQueue = append([]int(nil), results...)
}

// ResetMockDice clears the deterministic queue
func ResetMockDice() {
	mockDiceQueue = nil
}

// RollResult contains the finalized answer alongside the raw rolls used
type RollResult struct {
	Expr     string
	Total    int
	RawRolls []int
	Kept     []int
	Dropped  []int
	Modifier int
}

// Faces returns the kept dice in the order they were rolled, which is what a
// scoring pipeline should see.
func (r RollResult) Faces() []int {
	if len(r.Dropped) == 0 {
		return append([]int(nil), r.RawRolls...)
	}
	remaining := make(map[int]int, len(r.Kept))
	for _, k := range r.Kept {
		remaining[k]++
	}
	faces := make([]int, 0, len(r.Kept))
	for _, v := range r.RawRolls {
		if remaining[v] > 0 {
			faces = append(faces, v)
			remaining[v]--
		}
	}
	return faces
}

// safeRand fetches a strongly uniform random integer via crypto/rand
func safeRand(max int) int {
	if max <= 0 {
		return 0
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64()) + 1 // Convert 0-(Max-1) to 1-Max
}

var diceRegex = regexp.MustCompile(`(?i)^(\d*)[d](\d+)(k[hl]?\d+|[ad])?([+-]\d+)?$`)

// RollString parses and rolls a raw dice expression such as "5d6".
func RollString(raw string) (RollResult, error) {
	return Roll(&parser.DiceExpr{Raw: raw})
}

// Roll processes a parser.DiceExpr into a randomized RollResult
func Roll(expr *parser.DiceExpr) (RollResult, error) {
	if expr == nil || expr.Raw == "" {
		return RollResult{}, fmt.Errorf("dice expression cannot be nil or empty")
	}

	// Normalize notation and parse chunks
	raw := strings.ReplaceAll(expr.Raw, " ", "")
	res := RollResult{Expr: raw}

	matches := diceRegex.FindStringSubmatch(raw)
	if len(matches) == 0 {
		return res, fmt.Errorf("invalid dice expression format: %s", raw)
	}

	numStr, sidesStr, keepDropStr, modStr := matches[1], matches[2], matches[3], matches[4]

	// 1. Number of Dice
	numDice := 1
	if numStr != "" {
		numDice, _ = strconv.Atoi(numStr)
	}

	// 2. Sides
	sides, _ := strconv.Atoi(sidesStr)
	if sides <= 0 {
		return res, fmt.Errorf("cannot roll a die with 0 or negative sides")
	}

	// 3. Modifiers (Adv/Dis / Keep / Drop)
	keepTotal := numDice
	isHighest := true

	if keepDropStr != "" {
		kdLower := strings.ToLower(keepDropStr)
		switch {
		case kdLower == "a":
			numDice, keepTotal, isHighest = 2, 1, true
		case kdLower == "d":
			numDice, keepTotal, isHighest = 2, 1, false
		case strings.HasPrefix(kdLower, "k"):
			// e.g. kh2, kl1 or k3 (highest)
			isHighest = !strings.Contains(kdLower, "l")
			if parsed, err := strconv.Atoi(strings.TrimLeft(kdLower, "khl")); err == nil {
				keepTotal = parsed
			}
		}
	}

	// 4. Generate Raw Rolls
	for i := 0; i < numDice; i++ {
		val := 0
		if len(mockDiceQueue) > 0 {
			val = mockDiceQueue[0]
			mockDiceQueue = mockDiceQueue[1:]
		} else {
			val = safeRand(sides)
		}
		res.RawRolls = append(res.RawRolls, val)
	}

	// 5. Resolve Keep/Drop Sorting
	// Clone array to safely sort without mutating the original order recording
	sorted := make([]int, len(res.RawRolls))
	copy(sorted, res.RawRolls)

	keepTotal = max(0, min(keepTotal, numDice))

	if isHighest {
		sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	} else {
		sort.Ints(sorted)
	}

	if keepTotal < numDice {
		res.Kept = sorted[:keepTotal]
		res.Dropped = sorted[keepTotal:]
	} else {
		res.Kept = sorted
	}

	// 6. Sum total + flat modifiers
	for _, val := range res.Kept {
		res.Total += val
	}

	if modStr != "" {
		if modVal, err := strconv.Atoi(modStr); err == nil {
			res.Modifier = modVal
			res.Total += modVal
		}
	}

	return res, nil
}
