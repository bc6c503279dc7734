package core

import "testing"

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		v, n     int
		expected int
	}{
		{"inside", 5, 10, 5},
		{"zero", 0, 10, 0},
		{"upper edge wraps to zero", 10, 10, 0},
		{"minus one wraps to last", -1, 10, 9},
		{"far negative", -21, 10, 9},
		{"far positive", 23, 10, 3},
		{"unit extent", 7, 1, 0},
		{"unit extent negative", -3, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Wrap(tc.v, tc.n)
			if result != tc.expected {
				t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.v, tc.n, result, tc.expected)
			}
		})
	}
}

func TestActionIsDirection(t *testing.T) {
	tests := []struct {
		action   Action
		expected bool
	}{
		{ActionNone, false},
		{ActionUp, true},
		{ActionDown, true},
		{ActionLeft, true},
		{ActionRight, true},
		{ActionQuit, false},
	}

	for _, tc := range tests {
		if tc.action.IsDirection() != tc.expected {
			t.Errorf("%s.IsDirection() = %v, expected %v", tc.action, !tc.expected, tc.expected)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionQuit.String() != "Quit" {
		t.Errorf("ActionQuit.String() = %q, expected %q", ActionQuit.String(), "Quit")
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q, expected %q", Action(99).String(), "Unknown")
	}
}
