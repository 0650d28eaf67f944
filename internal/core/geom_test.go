package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(5, 5, 10, 10)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 5, 5, true},
		{"inside", 10, 10, true},
		{"last cell", 14, 14, true},
		{"right edge is exclusive", 15, 10, false},
		{"bottom edge is exclusive", 10, 15, false},
		{"left of rect", 4, 10, false},
		{"above rect", 10, 4, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 21, 9)

	if r.Right() != 23 {
		t.Errorf("Right() = %d, expected 23", r.Right())
	}
	if r.Bottom() != 12 {
		t.Errorf("Bottom() = %d, expected 12", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 12 || cy != 7 {
		t.Errorf("Center() = (%d, %d), expected (12, 7)", cx, cy)
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(40, 12, 20, 5)

	if r.X != 30 || r.Y != 10 || r.W != 20 || r.H != 5 {
		t.Errorf("CenteredRect = %+v, expected {30 10 20 5}", r)
	}

	cx, cy := r.Center()
	if cx != 40 || cy != 12 {
		t.Errorf("Center() = (%d, %d), expected (40, 12)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min should return the smaller value")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max should return the larger value")
	}
}
