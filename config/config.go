package config

import (
	"github.com/automoto/pixelcam/render"
	"github.com/yohamta/donburi/ecs"
)

// CameraConfig contains pixel camera defaults
type CameraConfig struct {
	DefaultScale   int              // pixel block size for the default sizing strategy
	DefaultOrder   int              // render order of the logical low-res camera
	ViewportOrder  int              // render order of the upscaled viewport camera
	WorldLayers    render.LayerMask // layers the logical camera renders
	ViewportLayers render.LayerMask // layers reserved for the upscaled surface
	SmoothBorder   int              // extra pixels per axis absorbing the sub-pixel shift
}

// Layer IDs for registering renderers with donburi.
var (
	Default  = ecs.LayerID(0)
	Viewport = ecs.LayerID(1)
)

// Camera is the global camera configuration
var Camera CameraConfig

func init() {
	Camera = CameraConfig{
		DefaultScale:   4,
		DefaultOrder:   0,
		ViewportOrder:  1,
		WorldLayers:    render.Layer(0),
		ViewportLayers: render.Layer(1),
		SmoothBorder:   2,
	}
}
