package components

import (
	"github.com/automoto/pixelcam/config"
	"github.com/automoto/pixelcam/render"
	"github.com/automoto/pixelcam/viewport"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PixelCameraData turns an entity into a pixel-perfect camera.
//
// Move the camera through SubpixelPos. Transform is derived from it every
// frame (the floored version, for pixel-perfect snapping) and must not be
// written by other systems.
type PixelCameraData struct {
	// Sizing decides the viewport's pixel size from the window resolution.
	Sizing viewport.Sizing
	// SubpixelPos is the authoritative continuous camera position.
	SubpixelPos math.Vec2
	// Transform is the pixel-snapped position the low-res scene is rendered
	// from. Derived; read-only outside the camera systems.
	Transform math.Vec2
	// Order is the render order of this camera. Must be lower than
	// ViewportOrder so the scene renders before the upscaled surface.
	Order int
	// ViewportOrder is the render order of the viewport camera.
	ViewportOrder int
	// WorldLayers are the layers this camera renders into the viewport.
	WorldLayers render.LayerMask
	// ViewportLayers are the layers the upscaled surface lives on. Must not
	// intersect WorldLayers and must not be empty.
	ViewportLayers render.LayerMask
	// Smoothing enables sub-pixel position smoothing.
	Smoothing bool

	// Set once the configuration has been rejected, so the error is reported
	// a single time and the camera stays unbound.
	ConfigError bool
}

// NewPixelCamera returns camera data with the given sizing strategy and
// default configuration. A nil sizing falls back to the default pixel scale.
func NewPixelCamera(sizing viewport.Sizing) PixelCameraData {
	if sizing == nil {
		sizing = viewport.PixelFixed(config.Camera.DefaultScale)
	}
	return PixelCameraData{
		Sizing:         sizing,
		Order:          config.Camera.DefaultOrder,
		ViewportOrder:  config.Camera.ViewportOrder,
		WorldLayers:    config.Camera.WorldLayers,
		ViewportLayers: config.Camera.ViewportLayers,
		Smoothing:      true,
	}
}

var PixelCamera = donburi.NewComponentType[PixelCameraData]()
