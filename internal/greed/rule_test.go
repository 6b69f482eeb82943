package greed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTripletPoints(t *testing.T) {
	assert.Equal(t, 1000, DefaultTripletPoints(1))
	for face := 2; face <= Faces; face++ {
		assert.Equal(t, face*100, DefaultTripletPoints(face))
	}
}

func TestTripletRule(t *testing.T) {
	rule := Triplet(4)
	assert.Equal(t, 400, rule.Points)
	assert.Equal(t, "three 4s", rule.Name())

	roll := NewRoll([]int{4, 4})
	assert.False(t, rule.AppliesTo(roll))

	roll = NewRoll([]int{4, 4, 4, 4})
	assert.True(t, rule.AppliesTo(roll))
	assert.Equal(t, 4, roll.Count(4), "AppliesTo must not consume dice")

	rule.ApplyScore(roll)
	assert.Equal(t, 400, roll.Points())
	assert.Equal(t, 4, roll.Count(4), "ApplyScore must not consume dice")

	rule.Consume(roll)
	assert.Equal(t, 1, roll.Count(4))
	assert.False(t, rule.AppliesTo(roll))
}

func TestStaticValueRule(t *testing.T) {
	rule := Static(5, 50)
	assert.Equal(t, "single 5s", rule.Name())

	roll := NewRoll([]int{2, 3})
	assert.False(t, rule.AppliesTo(roll))

	roll = NewRoll([]int{5, 5, 2})
	assert.True(t, rule.AppliesTo(roll))

	rule.ApplyScore(roll)
	assert.Equal(t, 100, roll.Points())

	rule.Consume(roll)
	assert.Equal(t, 0, roll.Count(5))
	assert.Equal(t, 1, roll.Count(2))
}

func TestRollMutators(t *testing.T) {
	roll := NewRoll([]int{3, 3, 6})

	roll.AddPoints(-20)
	roll.AddPoints(0)
	assert.Equal(t, 0, roll.Points())

	roll.Remove(3, 5)
	assert.Equal(t, 0, roll.Count(3))

	roll.Remove(0, 1)
	roll.Clear(9)
	assert.Equal(t, 0, roll.Count(9))
	assert.Equal(t, [Faces + 1]int{0, 0, 0, 0, 0, 0, 1}, roll.Counts())
	assert.Equal(t, []int{6}, roll.Leftover())
}

func TestRollApplySkipsInapplicableRule(t *testing.T) {
	roll := NewRoll([]int{2, 2})
	assert.False(t, roll.Apply(Triplet(2)))
	assert.Equal(t, 2, roll.Count(2))
	assert.Equal(t, 0, roll.Points())
}
