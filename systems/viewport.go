package systems

import (
	"log"

	"github.com/automoto/pixelcam/components"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/automoto/pixelcam/viewport"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResizeViewports keeps every bound camera's render target in sync with the
// window. It only does work on the frame the resolution actually changed.
// It also reaps bindings whose owner camera was removed externally.
func ResizeViewports(e *ecs.ECS) {
	reapOrphanedViewports(e)

	displayEntry, ok := components.Display.First(e.World)
	if !ok {
		return
	}
	display := components.Display.Get(displayEntry)
	if !display.Changed {
		return
	}

	components.PixelCamera.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Viewport) {
			return
		}
		camera := components.PixelCamera.Get(entry)
		vp := components.Viewport.Get(entry)

		width, height := camera.Sizing.Calculate(display.Width, display.Height)
		if width < 1 || height < 1 {
			log.Printf("pixelcam: camera %v: sizing strategy produced a degenerate %dx%d viewport on resize", entry.Entity(), width, height)
			return
		}
		targetWidth, targetHeight := width, height
		if camera.Smoothing {
			targetWidth += cfg.Camera.SmoothBorder
			targetHeight += cfg.Camera.SmoothBorder
		}

		if vp.Target == nil {
			log.Printf("pixelcam: camera %v: render target no longer exists", entry.Entity())
			return
		}
		if err := vp.Target.Resize(targetWidth, targetHeight); err != nil {
			log.Printf("pixelcam: camera %v: resizing render target: %v", entry.Entity(), err)
			return
		}

		viewportCamera := e.World.Entry(vp.Camera)
		if !viewportCamera.Valid() || !viewportCamera.HasComponent(components.ViewportCamera) {
			log.Printf("pixelcam: camera %v: viewport camera no longer exists", entry.Entity())
			return
		}
		vc := components.ViewportCamera.Get(viewportCamera)
		vc.ProjectionWidth, vc.ProjectionHeight = viewport.Projection(camera.Sizing, width, height, display.Width, display.Height)
		vc.Fill = viewport.FillColor(camera.Sizing)
	})
}

// reapOrphanedViewports releases display surfaces and viewport cameras whose
// owning pixel camera entity is gone. Bindings are owned by their camera and
// must not outlive it.
func reapOrphanedViewports(e *ecs.ECS) {
	// Collected first; removal mutates the storage an in-flight Each walks.
	var orphaned []donburi.Entity
	components.ViewportSprite.Each(e.World, func(entry *donburi.Entry) {
		sprite := components.ViewportSprite.Get(entry)
		if ownerValid(e, sprite.Owner) {
			return
		}
		if sprite.Target != nil {
			sprite.Target.Dispose()
		}
		orphaned = append(orphaned, entry.Entity())
	})
	components.ViewportCamera.Each(e.World, func(entry *donburi.Entry) {
		if !ownerValid(e, components.ViewportCamera.Get(entry).Owner) {
			orphaned = append(orphaned, entry.Entity())
		}
	})
	for _, entity := range orphaned {
		e.World.Remove(entity)
	}
}

func ownerValid(e *ecs.ECS, owner donburi.Entity) bool {
	entry := e.World.Entry(owner)
	return entry.Valid() && entry.HasComponent(components.PixelCamera)
}
