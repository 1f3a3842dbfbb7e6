package systems

import (
	"github.com/automoto/pixelcam/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDisplay polls the window source once per frame and raises the
// edge-triggered Changed flag when the resolution differs from the previous
// frame. Resize work downstream only runs on that edge.
func UpdateDisplay(e *ecs.ECS) {
	entry, ok := components.Display.First(e.World)
	if !ok {
		return
	}
	display := components.Display.Get(entry)

	w, h, err := display.Source.Resolution()
	if err != nil {
		display.Missing = true
		display.Changed = false
		return
	}

	// Compare against the cached size even when recovering from a missing
	// window, so a resolution change across the gap still raises the edge.
	display.Changed = w != display.Width || h != display.Height
	display.Missing = false
	display.Width = w
	display.Height = h
}
