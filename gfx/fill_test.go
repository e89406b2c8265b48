package gfx

import "testing"

func TestFillAreaBoundedRect(t *testing.T) {
	const cx, cy, a = 20, 20, 6
	s := newTestSurface(41, 41)
	s.HLine(cx-a, cy-a, 2*a+1, Red)
	s.HLine(cx-a, cy+a, 2*a+1, Red)
	s.VLine(cx-a, cy-a, 2*a+1, Red)
	s.VLine(cx+a, cy-a, 2*a+1, Red)

	s.FillArea(cx, cy, 2*(a+2), 2*(a+2), Green, Red)

	for y := cy - a; y <= cy+a; y++ {
		for x := cx - a; x <= cx+a; x++ {
			onBorder := x == cx-a || x == cx+a || y == cy-a || y == cy+a
			got := s.GetColor(x, y)
			if onBorder && got != Red {
				t.Fatalf("border (%d,%d) overwritten with %#04x", x, y, got)
			}
			if !onBorder && got != Green {
				t.Fatalf("interior (%d,%d) not filled", x, y)
			}
		}
	}
	// Nothing leaks outside the border.
	if n := countColor(s, Green); n != (2*a-1)*(2*a-1) {
		t.Fatalf("filled=%d want %d", n, (2*a-1)*(2*a-1))
	}
}

func TestFillAreaStopsQuadrantAtAnchorColumnBorder(t *testing.T) {
	const cx, cy = 20, 20
	s := newTestSurface(41, 41)
	s.SetPixel(cx, cy+3, Red)

	s.FillArea(cx, cy, 16, 16, Green, Red)

	if s.GetColor(cx+1, cy+2) != Green {
		t.Fatalf("row above the probe hit should be filled")
	}
	// The down-right scan probes column cx; once it sees the border every
	// later row of that quadrant is skipped, even where it is open.
	for y := cy + 3; y < cy+8; y++ {
		if s.GetColor(cx+1, y) == Green {
			t.Fatalf("(%d,%d) filled past the probe hit", cx+1, y)
		}
	}
	// The down-left scan probes column cx-1 and never meets the border.
	if s.GetColor(cx-1, cy+5) != Green {
		t.Fatalf("down-left quadrant should be unaffected")
	}
}

func TestFillAreaRowStopsAtFirstBorder(t *testing.T) {
	const cx, cy = 20, 20
	s := newTestSurface(41, 41)
	s.SetPixel(cx+3, cy+1, Red)

	s.FillArea(cx, cy, 10, 10, Green, Red)

	if s.GetColor(cx+2, cy+1) != Green {
		t.Fatalf("pixel before border not filled")
	}
	if s.GetColor(cx+4, cy+1) == Green {
		t.Fatalf("row continued past the border")
	}
	if s.GetColor(cx+4, cy+2) != Green {
		t.Fatalf("next row should start over")
	}
}

func TestFillAreaScanExtents(t *testing.T) {
	const cx, cy = 20, 20
	s := newTestSurface(41, 41)
	s.FillArea(cx, cy, 8, 6, Green, Red)

	// Right half covers x..x+w/2-1, left half x-1..x-w/2+1; rows likewise.
	if s.GetColor(cx+2, cy+3) != Green || s.GetColor(cx+3, cy) == Green {
		t.Fatalf("down-right extent wrong")
	}
	if s.GetColor(cx-2, cy-3) != Green || s.GetColor(cx-3, cy-1) == Green || s.GetColor(cx-1, cy-4) == Green {
		t.Fatalf("up-left extent wrong")
	}
	if n := countColor(s, Green); n != 3*4+2*3+3*3+2*4 {
		t.Fatalf("filled=%d", n)
	}
}
