// Package viewport computes low-resolution viewport sizes from a window
// resolution and splits continuous camera positions into pixel-snapped and
// sub-pixel parts.
package viewport

// Sizing is a method of deriving the viewport's pixel size from the window
// resolution. All implementations are pure; results are not clamped, so a
// degenerate strategy (e.g. Fixed{0, 0, ...}, PixelFixed(0), a nil Custom
// func) yields a size below 1x1 and it is the caller's job to reject it.
type Sizing interface {
	// Calculate returns the viewport size in pixels for the given window
	// resolution.
	Calculate(windowWidth, windowHeight int) (width, height int)
}

// PixelFixed keeps the size of each viewport pixel fixed: every source pixel
// is displayed as an NxN block and the viewport scales with the window.
type PixelFixed int

func (s PixelFixed) Calculate(windowWidth, windowHeight int) (int, int) {
	n := int(s)
	if n < 1 {
		return 0, 0
	}
	// Ceil division so the viewport always covers the full window.
	return (windowWidth + n - 1) / n, (windowHeight + n - 1) / n
}

// Fixed keeps the viewport size constant regardless of the window. A window
// with a different aspect ratio is reconciled through Fit.
type Fixed struct {
	Width  int
	Height int
	Fit    Fit
}

func (s Fixed) Calculate(int, int) (int, int) {
	return s.Width, s.Height
}

// FixedWidth keeps the width constant and derives the height from the
// window's aspect ratio.
type FixedWidth int

func (s FixedWidth) Calculate(windowWidth, windowHeight int) (int, int) {
	return int(s), windowHeight * int(s) / windowWidth
}

// FixedHeight keeps the height constant and derives the width from the
// window's aspect ratio.
type FixedHeight int

func (s FixedHeight) Calculate(windowWidth, windowHeight int) (int, int) {
	return windowWidth * int(s) / windowHeight, int(s)
}

// AutoMin keeps the window's aspect ratio while neither axis goes below its
// minimum. The axis under more pressure is pinned to its minimum and the
// other is derived.
type AutoMin struct {
	MinWidth  int
	MinHeight int
}

func (s AutoMin) Calculate(windowWidth, windowHeight int) (int, int) {
	if windowWidth*s.MinHeight > s.MinWidth*windowHeight {
		return windowWidth * s.MinHeight / windowHeight, s.MinHeight
	}
	return s.MinWidth, windowHeight * s.MinWidth / windowWidth
}

// AutoMax keeps the window's aspect ratio while neither axis exceeds its
// maximum.
type AutoMax struct {
	MaxWidth  int
	MaxHeight int
}

func (s AutoMax) Calculate(windowWidth, windowHeight int) (int, int) {
	if windowWidth*s.MaxHeight < s.MaxWidth*windowHeight {
		return windowWidth * s.MaxHeight / windowHeight, s.MaxHeight
	}
	return s.MaxWidth, windowHeight * s.MaxWidth / windowWidth
}

// Custom delegates the size calculation to a caller-supplied function.
type Custom struct {
	Func func(windowWidth, windowHeight int) (int, int)
	Fit  Fit
}

func (s Custom) Calculate(windowWidth, windowHeight int) (int, int) {
	if s.Func == nil {
		return 0, 0
	}
	return s.Func(windowWidth, windowHeight)
}
