package systems

import (
	"log"

	"github.com/automoto/pixelcam/components"
	"github.com/automoto/pixelcam/viewport"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// ApplyCameraPositions derives the per-frame camera state from SubpixelPos:
// the floored position goes to the camera's transform (the low-res scene
// renders pixel-snapped from it) and the remainder shifts the display
// surface, so the composited output moves at sub-pixel resolution.
//
// With smoothing disabled the transform is the nearest-pixel snap and the
// surface offset stays zero.
func ApplyCameraPositions(e *ecs.ECS) {
	components.PixelCamera.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Viewport) {
			return
		}
		camera := components.PixelCamera.Get(entry)
		vp := components.Viewport.Get(entry)

		var offset math.Vec2
		if camera.Smoothing {
			snapped, remainder := viewport.Split(camera.SubpixelPos)
			camera.Transform = snapped
			// One border pixel on each side absorbs the shift; offsetting by
			// border+remainder keeps the visible region inside the target.
			offset = math.Vec2{X: 1 + remainder.X, Y: 1 + remainder.Y}
		} else {
			camera.Transform = viewport.Snap(camera.SubpixelPos)
		}

		spriteEntry := e.World.Entry(vp.Sprite)
		if !spriteEntry.Valid() || !spriteEntry.HasComponent(components.ViewportSprite) {
			log.Printf("pixelcam: camera %v: display surface no longer exists", entry.Entity())
			return
		}
		components.ViewportSprite.Get(spriteEntry).Offset = offset
	})
}
