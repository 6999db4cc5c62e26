package stroke

import "testing"

func TestDash_SimplePattern(t *testing.T) {
	input := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	var out [][]Point
	Dash(input, false, []float64{2, 2}, 0, identity, identity, &out)

	// 10 units / (2 on + 2 off) = 2.5 periods -> 3 "on" segments (0-2,4-6,8-10).
	if len(out) != 3 {
		t.Fatalf("expected 3 dash segments, got %d: %v", len(out), out)
	}
}

func TestDash_NoPattern(t *testing.T) {
	input := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	var out [][]Point
	Dash(input, false, nil, 0, identity, identity, &out)
	if len(out) != 1 || len(out[0]) != 2 {
		t.Fatalf("expected the subpath unchanged, got %v", out)
	}
}

func TestDash_OddLengthPatternDuplicates(t *testing.T) {
	input := []Point{{X: 0, Y: 0}, {X: 12, Y: 0}}
	var out [][]Point
	Dash(input, false, []float64{2, 1, 3}, 0, identity, identity, &out)
	// effective pattern becomes {2,1,3,2,1,3}, period 12: on for [0,2) and [6,9).
	if len(out) != 2 {
		t.Fatalf("expected 2 dash segments, got %d: %v", len(out), out)
	}
}

func TestDash_NegativeEntryDisablesPattern(t *testing.T) {
	input := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	var out [][]Point
	Dash(input, false, []float64{2, -1}, 0, identity, identity, &out)
	if len(out) != 1 || len(out[0]) != 2 {
		t.Fatalf("negative entry should disable dashing, got %v", out)
	}
}

func TestDash_Offset(t *testing.T) {
	input := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	var out [][]Point
	Dash(input, false, []float64{2, 2}, 2, identity, identity, &out)
	if len(out) == 0 {
		t.Fatal("expected at least one dash segment")
	}
}
