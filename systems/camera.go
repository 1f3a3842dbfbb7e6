package systems

import (
	"log"

	"github.com/automoto/pixelcam/archetypes"
	"github.com/automoto/pixelcam/components"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/automoto/pixelcam/viewport"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InitCameras runs the unbound-to-bound transition: for every pixel camera
// without a viewport binding it validates the configuration, allocates the
// low-res render target and spawns the display surface and viewport camera.
//
// A camera with a rejected configuration stays unbound and is reported once.
// Transient failures (no window yet, allocation failure) leave the camera
// unbound and the transition is retried next frame.
func InitCameras(e *ecs.ECS) {
	displayEntry, ok := components.Display.First(e.World)
	if !ok {
		return
	}
	display := components.Display.Get(displayEntry)

	// Collected first: binding adds a component, which moves the entry
	// between archetypes and would disturb an in-flight Each.
	var unbound []*donburi.Entry
	components.PixelCamera.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Viewport) {
			unbound = append(unbound, entry)
		}
	})

	for _, entry := range unbound {
		camera := components.PixelCamera.Get(entry)
		if camera.ConfigError {
			continue
		}
		if !validateCamera(entry, camera) {
			continue
		}
		if display.Missing || display.Width < 1 || display.Height < 1 {
			// No usable window yet; retry next frame.
			continue
		}

		width, height := camera.Sizing.Calculate(display.Width, display.Height)
		if width < 1 || height < 1 {
			camera.ConfigError = true
			log.Printf("pixelcam: camera %v: sizing strategy produced a degenerate %dx%d viewport", entry.Entity(), width, height)
			continue
		}
		targetWidth, targetHeight := width, height
		if camera.Smoothing {
			targetWidth += cfg.Camera.SmoothBorder
			targetHeight += cfg.Camera.SmoothBorder
		}

		target, err := display.Targets.NewTarget(targetWidth, targetHeight)
		if err != nil {
			log.Printf("pixelcam: camera %v: allocating %dx%d render target: %v", entry.Entity(), targetWidth, targetHeight, err)
			continue
		}

		projWidth, projHeight := viewport.Projection(camera.Sizing, width, height, display.Width, display.Height)

		sprite := archetypes.ViewportSprite.Spawn(e)
		components.ViewportSprite.SetValue(sprite, components.ViewportSpriteData{
			Target: target,
			Owner:  entry.Entity(),
		})

		viewportCamera := archetypes.ViewportCamera.Spawn(e)
		components.ViewportCamera.SetValue(viewportCamera, components.ViewportCameraData{
			Order:            camera.ViewportOrder,
			Layers:           camera.ViewportLayers,
			Fill:             viewport.FillColor(camera.Sizing),
			ProjectionWidth:  projWidth,
			ProjectionHeight: projHeight,
			Owner:            entry.Entity(),
		})

		entry.AddComponent(components.Viewport)
		components.Viewport.SetValue(entry, components.ViewportData{
			Target: target,
			Sprite: sprite.Entity(),
			Camera: viewportCamera.Entity(),
		})
	}
}

// validateCamera checks the configuration invariants. Violations are
// reported once and permanently reject the camera.
func validateCamera(entry *donburi.Entry, camera *components.PixelCameraData) bool {
	switch {
	case camera.ViewportLayers.Empty():
		log.Printf("pixelcam: camera %v: viewport layer mask is empty; the surface would render with the world", entry.Entity())
	case camera.WorldLayers.Intersects(camera.ViewportLayers):
		log.Printf("pixelcam: camera %v: world layers intersect the viewport layers", entry.Entity())
	case camera.Order >= camera.ViewportOrder:
		log.Printf("pixelcam: camera %v: camera order %d must be below the viewport camera order %d", entry.Entity(), camera.Order, camera.ViewportOrder)
	default:
		return true
	}
	camera.ConfigError = true
	return false
}

// DestroyCamera releases a pixel camera's binding (render target, display
// surface and viewport camera) and removes the camera entity itself. The
// binding has no independent lifecycle, so this is the only way to release
// it early; bindings of externally removed cameras are reaped during
// ResizeViewports.
func DestroyCamera(e *ecs.ECS, entry *donburi.Entry) {
	if entry.HasComponent(components.Viewport) {
		vp := components.Viewport.Get(entry)
		releaseBinding(e, vp)
	}
	e.World.Remove(entry.Entity())
}

func releaseBinding(e *ecs.ECS, vp *components.ViewportData) {
	if vp.Target != nil {
		vp.Target.Dispose()
	}
	if sprite := e.World.Entry(vp.Sprite); sprite.Valid() {
		e.World.Remove(vp.Sprite)
	}
	if camera := e.World.Entry(vp.Camera); camera.Valid() {
		e.World.Remove(vp.Camera)
	}
}
