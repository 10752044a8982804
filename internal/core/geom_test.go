package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},  // inside
		{10, 10, true},  // top-left corner (inclusive)
		{29, 29, true},  // bottom-right (inside)
		{30, 30, false}, // bottom-right edge (exclusive)
		{5, 15, false},  // left of rect
		{35, 15, false}, // right of rect
		{15, 5, false},  // above rect
		{15, 35, false}, // below rect
	}

	for _, tc := range tests {
		result := r.Contains(tc.x, tc.y)
		if result != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 6).Inset(1)
	if r != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1) = %+v", r)
	}

	tiny := NewRect(0, 0, 1, 1).Inset(2)
	if tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inset past zero should clamp, got %+v", tiny)
	}
}

func TestCellGridCellAt(t *testing.T) {
	g := CellGrid{X: 4, Y: 2, CellW: 4, CellH: 2, Size: 5}

	tests := []struct {
		name   string
		x, y   int
		cx, cy int
		ok     bool
	}{
		{"top-left char", 4, 2, 0, 0, true},
		{"inside first cell", 7, 3, 0, 0, true},
		{"second column", 8, 2, 1, 0, true},
		{"last cell", 23, 11, 4, 4, true},
		{"left of board", 3, 2, 0, 0, false},
		{"right of board", 24, 2, 0, 0, false},
		{"below board", 4, 12, 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy, ok := g.CellAt(tc.x, tc.y)
			if ok != tc.ok {
				t.Fatalf("CellAt(%d, %d) ok = %v, expected %v", tc.x, tc.y, ok, tc.ok)
			}
			if ok && (cx != tc.cx || cy != tc.cy) {
				t.Errorf("CellAt(%d, %d) = (%d, %d), expected (%d, %d)", tc.x, tc.y, cx, cy, tc.cx, tc.cy)
			}
		})
	}
}

func TestCellGridOriginRoundTrip(t *testing.T) {
	g := CellGrid{X: 1, Y: 3, CellW: 2, CellH: 1, Size: 8}
	for cy := 0; cy < g.Size; cy++ {
		for cx := 0; cx < g.Size; cx++ {
			x, y := g.Origin(cx, cy)
			gx, gy, ok := g.CellAt(x, y)
			if !ok || gx != cx || gy != cy {
				t.Fatalf("Origin(%d, %d) = (%d, %d) maps back to (%d, %d, %v)", cx, cy, x, y, gx, gy, ok)
			}
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned an unexpected value")
	}
}
