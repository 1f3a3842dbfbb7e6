package components

import (
	"image/color"

	"github.com/automoto/pixelcam/render"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ViewportData binds a pixel camera to its low-res render target, the
// display-surface entity showing it, and the viewport camera presenting that
// surface to the screen. Created once when the camera binds; it has no
// lifecycle of its own and is released with the owning camera.
type ViewportData struct {
	Target render.Target
	Sprite donburi.Entity
	Camera donburi.Entity
}

var Viewport = donburi.NewComponentType[ViewportData]()

// ViewportSpriteData is the upscaled display surface for one pixel camera.
// Offset is the source-pixel offset into the target (smoothing border plus
// the frame's sub-pixel remainder), written every frame by the position
// systems.
type ViewportSpriteData struct {
	Target render.Target
	Offset math.Vec2
	Owner  donburi.Entity
}

var ViewportSprite = donburi.NewComponentType[ViewportSpriteData]()

// ViewportCameraData presents a display surface to the screen.
type ViewportCameraData struct {
	// Order relative to other viewport cameras; lower renders first.
	Order int
	// Layers the camera renders; matches the owning pixel camera's
	// ViewportLayers.
	Layers render.LayerMask
	// Fill is the color the uncovered window area is cleared with for
	// letterboxed fits, or nil.
	Fill color.Color
	// ProjectionWidth and ProjectionHeight are the logical extents, in
	// viewport pixels, the surface is projected through. Refreshed on every
	// window resize.
	ProjectionWidth  float64
	ProjectionHeight float64
	Owner            donburi.Entity
}

var ViewportCamera = donburi.NewComponentType[ViewportCameraData]()
