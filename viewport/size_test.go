package viewport

import "testing"

var windows = [][2]int{
	{1, 1}, {320, 240}, {640, 360}, {800, 600}, {1280, 720},
	{1366, 768}, {1920, 1080}, {2560, 1440}, {123, 987}, {1024, 768},
}

func TestPixelFixedCalculate(t *testing.T) {
	tests := []struct {
		name       string
		scale      PixelFixed
		winW, winH int
		wantW      int
		wantH      int
	}{
		{"exact division", PixelFixed(4), 800, 600, 200, 150},
		{"rounds up", PixelFixed(4), 801, 601, 201, 151},
		{"scale one", PixelFixed(1), 640, 360, 640, 360},
		{"window smaller than scale", PixelFixed(8), 3, 5, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.scale.Calculate(tt.winW, tt.winH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Calculate(%d, %d) = (%d, %d), want (%d, %d)", tt.winW, tt.winH, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestDegenerateStrategiesDoNotPanic(t *testing.T) {
	// Broken strategies must report a sub-1x1 size for the caller to reject,
	// never divide by zero or dereference nil.
	for name, s := range map[string]Sizing{
		"PixelFixed(0)":  PixelFixed(0),
		"PixelFixed(-1)": PixelFixed(-1),
		"nil Custom":     Custom{},
	} {
		w, h := s.Calculate(800, 600)
		if w >= 1 && h >= 1 {
			t.Errorf("%s: Calculate(800, 600) = (%d, %d), want a degenerate size", name, w, h)
		}
	}
}

func TestPixelFixedMonotonic(t *testing.T) {
	s := PixelFixed(4)
	prevW, prevH := 0, 0
	for win := 1; win <= 2000; win += 7 {
		w, h := s.Calculate(win, win)
		if w < prevW || h < prevH {
			t.Fatalf("Calculate(%d, %d) = (%d, %d) shrank below previous (%d, %d)", win, win, w, h, prevW, prevH)
		}
		prevW, prevH = w, h
	}
}

func TestFixedCalculate(t *testing.T) {
	s := Fixed{Width: 320, Height: 180}
	for _, win := range windows {
		w, h := s.Calculate(win[0], win[1])
		if w != 320 || h != 180 {
			t.Errorf("Calculate(%d, %d) = (%d, %d), want constant (320, 180)", win[0], win[1], w, h)
		}
	}
}

func TestFixedAxisCalculate(t *testing.T) {
	w, h := FixedWidth(320).Calculate(1920, 1080)
	if w != 320 || h != 180 {
		t.Errorf("FixedWidth(320) on 1920x1080 = (%d, %d), want (320, 180)", w, h)
	}
	w, h = FixedHeight(180).Calculate(1920, 1080)
	if w != 320 || h != 180 {
		t.Errorf("FixedHeight(180) on 1920x1080 = (%d, %d), want (320, 180)", w, h)
	}
	// Integer truncation, not rounding.
	w, h = FixedWidth(100).Calculate(640, 479)
	if w != 100 || h != 74 {
		t.Errorf("FixedWidth(100) on 640x479 = (%d, %d), want (100, 74)", w, h)
	}
}

func TestAutoMinBounds(t *testing.T) {
	s := AutoMin{MinWidth: 320, MinHeight: 180}
	for _, win := range windows {
		w, h := s.Calculate(win[0], win[1])
		if w < 320 || h < 180 {
			t.Errorf("window %dx%d: size (%d, %d) fell below the (320, 180) minimum", win[0], win[1], w, h)
		}
		if w != 320 && h != 180 {
			t.Errorf("window %dx%d: size (%d, %d) pins neither axis to its minimum", win[0], win[1], w, h)
		}
		assertWindowAspect(t, win[0], win[1], w, h)
	}
}

func TestAutoMaxBounds(t *testing.T) {
	s := AutoMax{MaxWidth: 320, MaxHeight: 180}
	for _, win := range windows {
		w, h := s.Calculate(win[0], win[1])
		if w > 320 || h > 180 {
			t.Errorf("window %dx%d: size (%d, %d) exceeds the (320, 180) maximum", win[0], win[1], w, h)
		}
		if w != 320 && h != 180 {
			t.Errorf("window %dx%d: size (%d, %d) pins neither axis to its maximum", win[0], win[1], w, h)
		}
		assertWindowAspect(t, win[0], win[1], w, h)
	}
}

// assertWindowAspect checks the result keeps the window's aspect ratio up to
// integer truncation: the derived axis may be short by less than one pixel's
// worth of ratio.
func assertWindowAspect(t *testing.T, winW, winH, w, h int) {
	t.Helper()
	got := float64(w) / float64(h)
	want := float64(winW) / float64(winH)
	tolerance := want/float64(h) + 1.0/float64(h)
	if got > want+tolerance || got < want-tolerance {
		t.Errorf("window %dx%d: size (%d, %d) aspect %.4f deviates from window aspect %.4f", winW, winH, w, h, got, want)
	}
}

func TestCustomCalculate(t *testing.T) {
	s := Custom{Func: func(winW, winH int) (int, int) { return winW / 10, winH / 10 }}
	w, h := s.Calculate(800, 600)
	if w != 80 || h != 60 {
		t.Errorf("Calculate(800, 600) = (%d, %d), want (80, 60)", w, h)
	}
}

func TestAllStrategiesAtLeastOne(t *testing.T) {
	strategies := map[string]Sizing{
		"PixelFixed":  PixelFixed(4),
		"Fixed":       Fixed{Width: 320, Height: 180},
		"FixedWidth":  FixedWidth(320),
		"FixedHeight": FixedHeight(180),
		"AutoMin":     AutoMin{MinWidth: 320, MinHeight: 180},
		"AutoMax":     AutoMax{MaxWidth: 320, MaxHeight: 180},
	}
	for name, s := range strategies {
		for _, win := range windows {
			w, h := s.Calculate(win[0], win[1])
			if w < 1 || h < 1 {
				t.Errorf("%s: window %dx%d produced degenerate size (%d, %d)", name, win[0], win[1], w, h)
			}
		}
	}
}
