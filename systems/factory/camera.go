package factory

import (
	"github.com/automoto/pixelcam/archetypes"
	"github.com/automoto/pixelcam/components"
	"github.com/automoto/pixelcam/render"
	"github.com/automoto/pixelcam/viewport"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePixelCamera spawns a pixel camera with the given sizing strategy and
// default configuration. The camera binds its viewport on the next
// initialization pass.
func CreatePixelCamera(e *ecs.ECS, sizing viewport.Sizing) *donburi.Entry {
	camera := archetypes.PixelCamera.Spawn(e)
	components.PixelCamera.SetValue(camera, components.NewPixelCamera(sizing))
	return camera
}

// CreateDisplay spawns the host-services singleton the camera systems read
// the window resolution from and allocate render targets through.
func CreateDisplay(e *ecs.ECS, source render.WindowSource, targets render.TargetFactory) *donburi.Entry {
	display := archetypes.Display.Spawn(e)
	components.Display.SetValue(display, components.DisplayData{
		Source:  source,
		Targets: targets,
	})
	return display
}
