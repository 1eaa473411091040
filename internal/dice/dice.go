// Package dice implements dice-notation parsing and roll aggregation for
// the quantum dice roller.
package dice

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidNotation indicates a dice notation string could not be parsed
// or is out of range.
var ErrInvalidNotation = errors.New("invalid dice notation")

// ErrInsufficientDice indicates a stat roll was requested with fewer than
// four dice.
var ErrInsufficientDice = errors.New("stats roll requires at least 4 dice")

// Notation limits. Counts outside [MinCount, MaxCount] and sides outside
// [MinSides, MaxSides] are rejected at parse time, before any request is
// made.
const (
	MinCount = 1
	MaxCount = 100
	MinSides = 2
	MaxSides = 1000
)

// statKeep is how many dice a drop-lowest stat roll keeps.
const statKeep = 3

// Spec describes how many dice to roll and how many sides each die has.
// A Spec is immutable once parsed.
type Spec struct {
	Count int
	Sides int
}

// String renders the spec back in NdS notation.
func (s Spec) String() string {
	return fmt.Sprintf("%dd%d", s.Count, s.Sides)
}

// Parse parses notation like "3d6" into a Spec.
//
// The separator "d" is case-insensitive. An empty left side defaults the
// count to 1, so "d20" is one twenty-sided die. The right side is required.
// All failures wrap ErrInvalidNotation.
func Parse(notation string) (Spec, error) {
	left, right, ok := strings.Cut(strings.ToLower(notation), "d")
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q, use NdS (e.g. 3d6)", ErrInvalidNotation, notation)
	}

	count := 1
	if left != "" {
		n, err := strconv.Atoi(left)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: dice count %q is not a number", ErrInvalidNotation, left)
		}
		count = n
	}

	sides, err := strconv.Atoi(right)
	if err != nil {
		return Spec{}, fmt.Errorf("%w: sides %q is not a number", ErrInvalidNotation, right)
	}

	if count < MinCount || count > MaxCount {
		return Spec{}, fmt.Errorf("%w: number of dice must be between %d and %d", ErrInvalidNotation, MinCount, MaxCount)
	}
	if sides < MinSides || sides > MaxSides {
		return Spec{}, fmt.Errorf("%w: number of sides must be between %d and %d", ErrInvalidNotation, MinSides, MaxSides)
	}

	return Spec{Count: count, Sides: sides}, nil
}

// Summary aggregates a single set of roll results.
type Summary struct {
	Total int
	Min   int
	Max   int
	Avg   float64
}

// Summarize computes the total and distribution of a roll. An empty roll
// yields the zero Summary.
func Summarize(rolls []int) Summary {
	if len(rolls) == 0 {
		return Summary{}
	}

	s := Summary{Min: rolls[0], Max: rolls[0]}
	for _, v := range rolls {
		s.Total += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Avg = float64(s.Total) / float64(len(rolls))
	return s
}

// StatRoll partitions a roll into the three highest dice and the rest.
type StatRoll struct {
	Kept    []int
	Dropped []int
	Total   int
}

// DropLowest applies the drop-lowest stat rule to a roll of at least four
// dice: sort descending, keep the three highest, sum them. Ties at the cut
// boundary are broken arbitrarily; since equal values are interchangeable
// the partition always satisfies
// sum(Kept) + sum(Dropped) == sum(rolls) and min(Kept) >= max(Dropped).
//
// Rolls with fewer than four dice return ErrInsufficientDice.
func DropLowest(rolls []int) (StatRoll, error) {
	if len(rolls) < statKeep+1 {
		return StatRoll{}, ErrInsufficientDice
	}

	sorted := append([]int(nil), rolls...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	kept := sorted[:statKeep]
	total := 0
	for _, v := range kept {
		total += v
	}

	return StatRoll{
		Kept:    kept,
		Dropped: sorted[statKeep:],
		Total:   total,
	}, nil
}
