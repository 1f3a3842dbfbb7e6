package viewport

import "image/color"

// FitMode is the way a fixed-size viewport scales to a window whose aspect
// ratio it does not match. Only Fixed and Custom sizings carry a fit mode;
// every other strategy already follows the window's aspect ratio.
type FitMode int

const (
	// FitStretch maps the viewport directly onto the window, scaling each
	// axis independently.
	FitStretch FitMode = iota
	// FitCrop scales the viewport uniformly until it covers the window,
	// cropping the overflow.
	FitCrop
	// FitContain scales the viewport uniformly until it fits inside the
	// window, filling the leftover area with Fill.
	FitContain
)

// Fit describes how the viewport is reconciled with the window. Fill is only
// consulted for FitContain; a nil Fill leaves the uncovered window area
// untouched.
type Fit struct {
	Mode FitMode
	Fill color.Color
}

// Contain is shorthand for a FitContain fit with the given fill color.
func Contain(fill color.Color) Fit {
	return Fit{Mode: FitContain, Fill: fill}
}

// FitOf returns the fit carried by s. Strategies without a fit resolve to
// FitStretch, which is a no-op for them since their size already matches the
// window's aspect ratio.
func FitOf(s Sizing) Fit {
	switch s := s.(type) {
	case Fixed:
		return s.Fit
	case Custom:
		return s.Fit
	}
	return Fit{}
}

// FillColor returns the fill color the compositor should clear the window
// with, or nil when no fill applies.
func FillColor(s Sizing) color.Color {
	fit := FitOf(s)
	if fit.Mode == FitContain {
		return fit.Fill
	}
	return nil
}

// Projection returns the logical extents, in viewport pixels, that the
// upscaled surface is projected through. Extents equal to the viewport size
// map it 1:1 onto the window; larger extents letterbox it, smaller extents
// crop it.
func Projection(s Sizing, width, height, windowWidth, windowHeight int) (float64, float64) {
	w, h := float64(width), float64(height)
	if windowWidth <= 0 || windowHeight <= 0 {
		return w, h
	}
	aspect := float64(windowWidth) / float64(windowHeight)

	switch FitOf(s).Mode {
	case FitContain:
		// Expand the constrained axis so the whole viewport stays visible.
		if aspect > w/h {
			return h * aspect, h
		}
		return w, w / aspect
	case FitCrop:
		// Project through the smaller axis and derive the other from the
		// window's aspect ratio, so the viewport always covers the window.
		axis := min(w, h)
		if aspect > 1 {
			return axis, axis / aspect
		}
		return axis * aspect, axis
	default:
		return w, h
	}
}
