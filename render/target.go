package render

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrTargetDisposed is returned when an operation hits a render target that
// was already released.
var ErrTargetDisposed = errors.New("render target disposed")

// Target is a low-resolution pixel buffer the scene is rendered into before
// being upscaled to the screen.
type Target interface {
	// Size returns the buffer's pixel dimensions.
	Size() (width, height int)
	// Resize replaces the buffer contents with a zeroed buffer of the given
	// size. Returns ErrTargetDisposed on a released target.
	Resize(width, height int) error
	// Texture returns the GPU-sampleable image backing the target, or nil if
	// the target has been disposed.
	Texture() *ebiten.Image
	// Dispose releases the buffer. Safe to call twice.
	Dispose()
}

// TargetFactory allocates render targets.
type TargetFactory interface {
	NewTarget(width, height int) (Target, error)
}

// ImageTargets allocates targets backed by Ebitengine images. New images are
// transparent black, which covers the zero-initialization requirement.
// Ebitengine images cannot grow in place, so Resize disposes and reallocates.
type ImageTargets struct{}

func (ImageTargets) NewTarget(width, height int) (Target, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("render target size %dx%d is below 1x1", width, height)
	}
	return &imageTarget{img: ebiten.NewImage(width, height)}, nil
}

type imageTarget struct {
	img *ebiten.Image
}

func (t *imageTarget) Size() (int, int) {
	if t.img == nil {
		return 0, 0
	}
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *imageTarget) Resize(width, height int) error {
	if t.img == nil {
		return ErrTargetDisposed
	}
	if width < 1 || height < 1 {
		return fmt.Errorf("render target size %dx%d is below 1x1", width, height)
	}
	if w, h := t.Size(); w == width && h == height {
		return nil
	}
	t.img.Deallocate()
	t.img = ebiten.NewImage(width, height)
	return nil
}

func (t *imageTarget) Texture() *ebiten.Image {
	return t.img
}

func (t *imageTarget) Dispose() {
	if t.img != nil {
		t.img.Deallocate()
		t.img = nil
	}
}
