package archetypes

import (
	"github.com/automoto/pixelcam/components"
	cfg "github.com/automoto/pixelcam/config"
	"github.com/automoto/pixelcam/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	PixelCamera = newArchetype(
		tags.PixelCamera,
		components.PixelCamera,
	)
	ViewportSprite = newArchetype(
		tags.ViewportSprite,
		components.ViewportSprite,
	)
	ViewportCamera = newArchetype(
		tags.ViewportCamera,
		components.ViewportCamera,
	)
	Display = newArchetype(
		components.Display,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(e *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	return a.SpawnOnLayer(e, cfg.Default, cs...)
}

func (a *archetype) SpawnOnLayer(e *ecs.ECS, layer ecs.LayerID, cs ...donburi.IComponentType) *donburi.Entry {
	return e.World.Entry(e.Create(
		layer,
		append(a.components, cs...)...,
	))
}
