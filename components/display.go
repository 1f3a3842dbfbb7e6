package components

import (
	"github.com/automoto/pixelcam/render"
	"github.com/yohamta/donburi"
)

// DisplayData is the singleton carrying the host services the camera systems
// consume, plus the cached window resolution with an edge-triggered change
// flag.
type DisplayData struct {
	Source  render.WindowSource
	Targets render.TargetFactory

	Width   int
	Height  int
	Changed bool // resolution differs from the previous frame
	Missing bool // the source reported no usable window this frame
}

var Display = donburi.NewComponentType[DisplayData]()
