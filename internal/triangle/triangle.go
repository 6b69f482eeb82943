// Package triangle classifies triangles by the lengths of their sides.
package triangle

import (
	"errors"
	"fmt"
)

// Kind names a class of triangle.
type Kind string

const (
	Equilateral Kind = "equilateral"
	Isosceles   Kind = "isosceles"
	Scalene     Kind = "scalene"
)

// ErrInvalid is wrapped by every error New returns.
var ErrInvalid = errors.New("invalid triangle")

// Classify names the triangle with sides a, b and c without checking that
// such a triangle can exist.
func Classify(a, b, c int) Kind {
	switch {
	case a == b && b == c:
		return Equilateral
	case a == b || b == c || a == c:
		return Isosceles
	default:
		return Scalene
	}
}

// Triangle is a triangle whose sides have been validated.
type Triangle struct {
	A, B, C int
}

// New validates the sides. Every side must be positive and shorter than the
// sum of the other two.
func New(a, b, c int) (Triangle, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return Triangle{}, fmt.Errorf("%w: sides %d, %d, %d must all be positive", ErrInvalid, a, b, c)
	}
	if c-b >= a || a-c >= b || b-a >= c {
		return Triangle{}, fmt.Errorf("%w: a side of %d, %d, %d is too long for the other two", ErrInvalid, a, b, c)
	}
	return Triangle{A: a, B: b, C: c}, nil
}

// Kind classifies t.
func (t Triangle) Kind() Kind {
	return Classify(t.A, t.B, t.C)
}
