package components

import (
	"image"
	"image/color"
	"testing"

	"github.com/gonewx/starfall/internal/mask"
	"github.com/gonewx/starfall/internal/raster"
)

func solidFrame(w, h int) *image.NRGBA {
	return raster.Solid(w, h, color.NRGBA{R: 255, A: 255})
}

func TestSetFrameCentersRect(t *testing.T) {
	b := NewBody(100, 50, solidFrame(10, 6), true)
	want := image.Rect(95, 47, 105, 53)
	if b.Rect != want {
		t.Errorf("Expected rect %v, got %v", want, b.Rect)
	}
	if b.Center() != image.Pt(100, 50) {
		t.Errorf("Expected center (100,50), got %v", b.Center())
	}
}

func TestSetFrameRegeneratesMask(t *testing.T) {
	b := NewBody(0, 0, solidFrame(4, 4), true)
	if b.Mask.Count() != 16 {
		t.Fatalf("Expected 16 solid pixels, got %d", b.Mask.Count())
	}

	// 新帧一半透明
	half := image.NewNRGBA(image.Rect(0, 0, 8, 2))
	for x := 0; x < 4; x++ {
		half.SetNRGBA(x, 0, color.NRGBA{A: 255})
		half.SetNRGBA(x, 1, color.NRGBA{A: 255})
	}
	b.SetFrame(half)

	w, h := b.Mask.Size()
	if w != 8 || h != 2 {
		t.Errorf("Mask should follow new frame size, got %dx%d", w, h)
	}
	if b.Mask.Count() != 8 {
		t.Errorf("Mask should follow new frame pixels, got %d", b.Mask.Count())
	}
}

func TestNonSolidBodyHasNoMask(t *testing.T) {
	b := NewBody(0, 0, solidFrame(4, 4), false)
	if b.Mask != nil {
		t.Error("Non-solid body should not carry a mask")
	}
	other := NewBody(0, 0, solidFrame(4, 4), true)
	if b.Collides(other) || other.Collides(b) {
		t.Error("Non-solid body should never collide")
	}
}

func TestCollidesUsesRelativeOffset(t *testing.T) {
	a := NewBody(50, 50, solidFrame(10, 10), true)
	c := NewBody(59, 50, solidFrame(10, 10), true)
	if !a.Collides(c) {
		t.Error("Overlapping squares should collide")
	}
	c.X = 60
	c.SyncRect()
	if a.Collides(c) {
		t.Error("Adjacent squares should not collide")
	}
}

func TestMoveRectToRederivesPosition(t *testing.T) {
	b := NewBody(10.7, 10.2, solidFrame(4, 4), true)
	b.MoveRectTo(0, 0)
	if b.X != 2 || b.Y != 2 {
		t.Errorf("Expected position (2,2), got (%v,%v)", b.X, b.Y)
	}
}

func TestSetHitbox(t *testing.T) {
	b := NewBody(20, 20, solidFrame(30, 30), false)
	b.SetHitbox(mask.FromImage(solidFrame(10, 8)))
	if b.Rect.Dx() != 10 || b.Rect.Dy() != 8 {
		t.Errorf("Rect should follow hitbox size, got %v", b.Rect)
	}
	// 绘制帧仍然以包围盒中心对齐
	if b.DrawOrigin() != image.Pt(5, 5) {
		t.Errorf("Expected draw origin (5,5), got %v", b.DrawOrigin())
	}
}
