package render

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoWindow is returned by a WindowSource when the host has no usable
// window this frame. Callers retry on the next frame.
var ErrNoWindow = errors.New("no window found")

// WindowSource reports the current resolution of the window the viewport is
// presented in.
type WindowSource interface {
	Resolution() (width, height int, err error)
}

// Window reads the resolution from the Ebitengine window. On targets where
// the window concept does not exist (or before the window is created) the
// reported size is zero and ErrNoWindow is returned.
type Window struct{}

func (Window) Resolution() (int, int, error) {
	w, h := ebiten.WindowSize()
	if w < 1 || h < 1 {
		return 0, 0, ErrNoWindow
	}
	return w, h, nil
}
