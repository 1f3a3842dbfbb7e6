// Package pixelcam renders a donburi world at a low, fixed virtual
// resolution for crisp pixel art while keeping camera motion smooth. A pixel
// camera's continuous position is split every frame into a pixel-snapped part
// the scene is rendered with and a sub-pixel remainder applied to the
// upscaled output, so the composited image moves smoothly even though the
// low-res buffer only renders at integer offsets.
package pixelcam

import (
	"image"
	"log"
	stdmath "math"
	"sort"

	"github.com/automoto/pixelcam/components"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/automoto/pixelcam/render"
	"github.com/automoto/pixelcam/systems"
	"github.com/automoto/pixelcam/systems/factory"
	"github.com/automoto/pixelcam/viewport"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Register installs the camera systems and the host-services singleton.
// Systems run in a fixed phase order: display poll and camera initialization
// strictly before resize and position application, so a camera created this
// frame is bound before its position is applied.
//
// Call once per ECS, before adding cameras.
func Register(e *ecs.ECS, window render.WindowSource, targets render.TargetFactory) {
	factory.CreateDisplay(e, window, targets)

	e.AddSystem(systems.UpdateDisplay)
	e.AddSystem(systems.InitCameras)
	e.AddSystem(systems.ResizeViewports)
	e.AddSystem(systems.ApplyCameraPositions)
}

// RegisterDefault is Register wired to the Ebitengine window and Ebitengine
// image render targets.
func RegisterDefault(e *ecs.ECS) {
	Register(e, render.Window{}, render.ImageTargets{})
}

// NewCamera spawns a pixel camera with the given sizing strategy and default
// configuration. A nil sizing uses the default pixel scale. The viewport
// binds on the next update.
func NewCamera(e *ecs.ECS, sizing viewport.Sizing) *donburi.Entry {
	return factory.CreatePixelCamera(e, sizing)
}

// DestroyCamera releases a camera and everything it owns.
func DestroyCamera(e *ecs.ECS, entry *donburi.Entry) {
	systems.DestroyCamera(e, entry)
}

// ViewMatrix returns the transform world renderers draw through to land in
// the camera's low-res target: world space translated so the camera's
// pixel-snapped position sits at the target's center. Returns the identity
// until the camera is bound.
func ViewMatrix(entry *donburi.Entry) ebiten.GeoM {
	var geom ebiten.GeoM
	if !entry.HasComponent(components.Viewport) {
		return geom
	}
	camera := components.PixelCamera.Get(entry)
	vp := components.Viewport.Get(entry)
	if vp.Target == nil {
		return geom
	}
	w, h := vp.Target.Size()
	geom.Translate(float64(w)/2-camera.Transform.X, float64(h)/2-camera.Transform.Y)
	return geom
}

// Draw composites every bound pixel camera to the screen, lowest viewport
// order first: the camera's world layers are rendered into its low-res
// target, then the target is upscaled onto the screen with the strategy's
// fit scaling, centering, fill color and the frame's sub-pixel offset.
//
// Call from the game's Draw instead of ecs.Draw; renderers registered on a
// camera's world layers run against the low-res target.
func Draw(e *ecs.ECS, screen *ebiten.Image) {
	type bound struct {
		entry  *donburi.Entry
		camera *components.PixelCameraData
		vp     *components.ViewportData
	}
	var cameras []bound
	components.PixelCamera.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Viewport) {
			return
		}
		cameras = append(cameras, bound{
			entry:  entry,
			camera: components.PixelCamera.Get(entry),
			vp:     components.Viewport.Get(entry),
		})
	})
	sort.SliceStable(cameras, func(i, j int) bool {
		return cameras[i].camera.ViewportOrder < cameras[j].camera.ViewportOrder
	})

	for _, c := range cameras {
		tex := targetTexture(c.vp)
		if tex == nil {
			log.Printf("pixelcam: camera %v: render target image doesn't exist", c.entry.Entity())
			continue
		}
		tex.Clear()
		for _, layer := range c.camera.WorldLayers.Layers() {
			e.DrawLayer(layer, tex)
		}
		compositeViewport(e, screen, c.entry, c.camera, c.vp, tex)
	}
}

func targetTexture(vp *components.ViewportData) *ebiten.Image {
	if vp.Target == nil {
		return nil
	}
	return vp.Target.Texture()
}

func compositeViewport(e *ecs.ECS, screen *ebiten.Image, entry *donburi.Entry, camera *components.PixelCameraData, vp *components.ViewportData, tex *ebiten.Image) {
	cameraEntry := e.World.Entry(vp.Camera)
	spriteEntry := e.World.Entry(vp.Sprite)
	if !cameraEntry.Valid() || !cameraEntry.HasComponent(components.ViewportCamera) ||
		!spriteEntry.Valid() || !spriteEntry.HasComponent(components.ViewportSprite) {
		log.Printf("pixelcam: camera %v: viewport entities no longer exist", entry.Entity())
		return
	}
	vc := components.ViewportCamera.Get(cameraEntry)
	sprite := components.ViewportSprite.Get(spriteEntry)

	windowWidth := float64(screen.Bounds().Dx())
	windowHeight := float64(screen.Bounds().Dy())
	if vc.ProjectionWidth <= 0 || vc.ProjectionHeight <= 0 {
		return
	}

	innerWidth, innerHeight := vp.Target.Size()
	if camera.Smoothing {
		innerWidth -= cfg.Camera.SmoothBorder
		innerHeight -= cfg.Camera.SmoothBorder
	}

	if vc.Fill != nil {
		screen.Fill(vc.Fill)
	}

	scaleX := windowWidth / vc.ProjectionWidth
	scaleY := windowHeight / vc.ProjectionHeight

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-sprite.Offset.X, -sprite.Offset.Y)
	op.GeoM.Scale(scaleX, scaleY)
	op.GeoM.Translate(
		(windowWidth-float64(innerWidth)*scaleX)/2,
		(windowHeight-float64(innerHeight)*scaleY)/2,
	)

	dst := screen
	if camera.Smoothing {
		// The sub-pixel shift drags border pixels over the inner region's
		// edges; a destination-side clip keeps them off the fill bars. A
		// source sub-image cannot do this because the offset is fractional.
		rect := innerScreenRect(int(windowWidth), int(windowHeight), innerWidth, innerHeight, scaleX, scaleY)
		dst = screen.SubImage(rect).(*ebiten.Image)
	}
	dst.DrawImage(tex, op)
}

// innerScreenRect is the centered screen region the viewport's inner pixels
// map to. Content outside it is smoothing border and must not be visible.
func innerScreenRect(windowWidth, windowHeight, innerWidth, innerHeight int, scaleX, scaleY float64) image.Rectangle {
	w := float64(innerWidth) * scaleX
	h := float64(innerHeight) * scaleY
	x0 := (float64(windowWidth) - w) / 2
	y0 := (float64(windowHeight) - h) / 2
	return image.Rect(
		int(stdmath.Round(x0)), int(stdmath.Round(y0)),
		int(stdmath.Round(x0+w)), int(stdmath.Round(y0+h)),
	)
}
