package tags

import "github.com/yohamta/donburi"

var (
	PixelCamera    = donburi.NewTag().SetName("PixelCamera")
	ViewportSprite = donburi.NewTag().SetName("ViewportSprite")
	ViewportCamera = donburi.NewTag().SetName("ViewportCamera")
)
