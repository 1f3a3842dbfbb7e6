// Package render holds the narrow host-engine capabilities the camera module
// consumes: render-target allocation, window resolution, and render layers.
package render

import (
	"math/bits"

	"github.com/yohamta/donburi/ecs"
)

// LayerMask identifies the set of donburi render layers a camera sees. Bit n
// corresponds to ecs.LayerID(n).
type LayerMask uint64

// Layer returns the mask containing only layer n.
func Layer(n int) LayerMask {
	return 1 << n
}

// Intersects reports whether the two masks share any layer.
func (m LayerMask) Intersects(other LayerMask) bool {
	return m&other != 0
}

// Empty reports whether the mask contains no layers.
func (m LayerMask) Empty() bool {
	return m == 0
}

// Layers returns the layer IDs in the mask, lowest first.
func (m LayerMask) Layers() []ecs.LayerID {
	ids := make([]ecs.LayerID, 0, bits.OnesCount64(uint64(m)))
	for m != 0 {
		n := bits.TrailingZeros64(uint64(m))
		ids = append(ids, ecs.LayerID(n))
		m &^= 1 << n
	}
	return ids
}
