package dice

import (
	"errors"
	"testing"
)

func TestParseReturnsSpec(t *testing.T) {
	tcs := []struct {
		notation string
		want     Spec
	}{
		{"3d6", Spec{Count: 3, Sides: 6}},
		{"d20", Spec{Count: 1, Sides: 20}},
		{"2D10", Spec{Count: 2, Sides: 10}},
		{"100d1000", Spec{Count: 100, Sides: 1000}},
		{"1d2", Spec{Count: 1, Sides: 2}},
	}
	for _, tc := range tcs {
		got, err := Parse(tc.notation)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.notation, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %+v, want %+v", tc.notation, got, tc.want)
		}
	}
}

func TestParseRejectsInvalidNotation(t *testing.T) {
	tcs := []string{
		"abc",
		"",
		"3x6",
		"xd6",
		"3dx",
		"0d6",
		"101d6",
		"3d1",
		"3d1001",
		"1d2d3",
	}
	for _, notation := range tcs {
		if _, err := Parse(notation); !errors.Is(err, ErrInvalidNotation) {
			t.Fatalf("Parse(%q) error = %v, want %v", notation, err, ErrInvalidNotation)
		}
	}
}

func TestSpecString(t *testing.T) {
	if got, want := (Spec{Count: 4, Sides: 6}).String(), "4d6"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]int{4, 2, 5, 6})
	if s.Total != 17 {
		t.Fatalf("Total = %d, want 17", s.Total)
	}
	if s.Min != 2 || s.Max != 6 {
		t.Fatalf("Min/Max = %d/%d, want 2/6", s.Min, s.Max)
	}
	if s.Avg != 4.25 {
		t.Fatalf("Avg = %v, want 4.25", s.Avg)
	}
}

func TestSummarizeEmptyRoll(t *testing.T) {
	if s := Summarize(nil); s != (Summary{}) {
		t.Fatalf("Summarize(nil) = %+v, want zero value", s)
	}
}

func TestDropLowestKeepsThreeHighest(t *testing.T) {
	stat, err := DropLowest([]int{4, 2, 5, 6})
	if err != nil {
		t.Fatalf("DropLowest returned error: %v", err)
	}
	if len(stat.Kept) != 3 {
		t.Fatalf("len(Kept) = %d, want 3", len(stat.Kept))
	}
	if stat.Kept[0] != 6 || stat.Kept[1] != 5 || stat.Kept[2] != 4 {
		t.Fatalf("Kept = %v, want [6 5 4]", stat.Kept)
	}
	if len(stat.Dropped) != 1 || stat.Dropped[0] != 2 {
		t.Fatalf("Dropped = %v, want [2]", stat.Dropped)
	}
	if stat.Total != 15 {
		t.Fatalf("Total = %d, want 15", stat.Total)
	}
}

// TestDropLowestPartitionInvariant pins the partition rule down for
// awkward rolls, including ties at the cut boundary.
func TestDropLowestPartitionInvariant(t *testing.T) {
	tcs := [][]int{
		{4, 2, 5, 6},
		{3, 3, 3, 3},
		{6, 6, 6, 1},
		{1, 1, 1, 1, 1},
		{2, 4, 4, 4, 2, 6},
		{10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
	}
	for _, rolls := range tcs {
		stat, err := DropLowest(rolls)
		if err != nil {
			t.Fatalf("DropLowest(%v) returned error: %v", rolls, err)
		}
		if len(stat.Kept) != 3 {
			t.Fatalf("DropLowest(%v): len(Kept) = %d, want 3", rolls, len(stat.Kept))
		}
		if len(stat.Kept)+len(stat.Dropped) != len(rolls) {
			t.Fatalf("DropLowest(%v): partition lost dice", rolls)
		}

		all := 0
		for _, v := range rolls {
			all += v
		}
		kept, dropped := 0, 0
		for _, v := range stat.Kept {
			kept += v
		}
		for _, v := range stat.Dropped {
			dropped += v
		}
		if kept+dropped != all {
			t.Fatalf("DropLowest(%v): kept %d + dropped %d != all %d", rolls, kept, dropped, all)
		}
		if kept != stat.Total {
			t.Fatalf("DropLowest(%v): Total = %d, want %d", rolls, stat.Total, kept)
		}

		for _, k := range stat.Kept {
			for _, d := range stat.Dropped {
				if k < d {
					t.Fatalf("DropLowest(%v): kept %d < dropped %d", rolls, k, d)
				}
			}
		}
	}
}

func TestDropLowestRejectsShortRolls(t *testing.T) {
	for _, rolls := range [][]int{nil, {6}, {6, 5}, {6, 5, 4}} {
		if _, err := DropLowest(rolls); !errors.Is(err, ErrInsufficientDice) {
			t.Fatalf("DropLowest(%v) error = %v, want %v", rolls, err, ErrInsufficientDice)
		}
	}
}

// TestDropLowestDoesNotMutateInput ensures the caller's roll order
// survives the descending sort.
func TestDropLowestDoesNotMutateInput(t *testing.T) {
	rolls := []int{4, 2, 5, 6}
	if _, err := DropLowest(rolls); err != nil {
		t.Fatalf("DropLowest returned error: %v", err)
	}
	want := []int{4, 2, 5, 6}
	for i := range want {
		if rolls[i] != want[i] {
			t.Fatalf("input mutated: %v, want %v", rolls, want)
		}
	}
}
