package mask

import (
	"image"
	"image/color"
	"testing"
)

// filledImage 创建一个指定区域实心、其余透明的图像
func filledImage(w, h int, solid image.Rectangle) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := solid.Min.Y; y < solid.Max.Y; y++ {
		for x := solid.Min.X; x < solid.Max.X; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	return img
}

func TestFromImageThreshold(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{A: 127})
	img.SetNRGBA(1, 0, color.NRGBA{A: 128})
	img.SetNRGBA(2, 0, color.NRGBA{A: 255})

	m := FromImage(img)
	if m.Get(0, 0) {
		t.Error("alpha 127 should not be solid")
	}
	if !m.Get(1, 0) || !m.Get(2, 0) {
		t.Error("alpha above threshold should be solid")
	}
	if m.Count() != 2 {
		t.Errorf("Expected 2 solid pixels, got %d", m.Count())
	}
}

func TestFromImageSubImage(t *testing.T) {
	img := filledImage(10, 10, image.Rect(5, 5, 10, 10))
	sub := img.SubImage(image.Rect(5, 5, 10, 10))

	m := FromImage(sub)
	w, h := m.Size()
	if w != 5 || h != 5 {
		t.Fatalf("Expected 5x5 mask, got %dx%d", w, h)
	}
	if m.Count() != 25 {
		t.Errorf("Expected fully solid sub image mask, got %d", m.Count())
	}
}

func TestOverlap(t *testing.T) {
	a := FromImage(filledImage(4, 4, image.Rect(0, 0, 4, 4)))
	b := FromImage(filledImage(4, 4, image.Rect(0, 0, 1, 1)))

	tests := []struct {
		name   string
		dx, dy int
		want   bool
	}{
		{"inside", 1, 1, true},
		{"touching last column", 3, 0, true},
		{"just outside right", 4, 0, false},
		{"just outside top", 0, -1, false},
		{"far away", 100, 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlap(b, tt.dx, tt.dy); got != tt.want {
				t.Errorf("Overlap(%d,%d) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestOverlapRequiresDoublyOpaquePixel(t *testing.T) {
	// 两个 4x4 掩码，实心区域分别在左半和右半
	left := FromImage(filledImage(4, 4, image.Rect(0, 0, 2, 4)))
	right := FromImage(filledImage(4, 4, image.Rect(2, 0, 4, 4)))

	// 完全重合时实心区域互不相交
	if left.Overlap(right, 0, 0) {
		t.Error("Bounding boxes overlap but no pixel is solid in both masks")
	}
	// right 左移两列后实心区域重合
	if !left.Overlap(right, -2, 0) {
		t.Error("Expected overlap after shifting right mask")
	}
}

func TestCollideAlignsCenters(t *testing.T) {
	big := FromImage(filledImage(10, 10, image.Rect(0, 0, 10, 10)))
	dot := FromImage(filledImage(1, 1, image.Rect(0, 0, 1, 1)))

	if !Collide(big, image.Pt(100, 100), dot, image.Pt(104, 104)) {
		t.Error("Dot inside big square should collide")
	}
	if Collide(big, image.Pt(100, 100), dot, image.Pt(105, 100)) {
		t.Error("Dot one pixel beyond right edge should not collide")
	}
	if !Collide(big, image.Pt(100, 100), dot, image.Pt(95, 95)) {
		t.Error("Dot on top-left pixel should collide")
	}
}

func TestNilMasksNeverCollide(t *testing.T) {
	a := FromImage(filledImage(2, 2, image.Rect(0, 0, 2, 2)))
	if Collide(a, image.Pt(0, 0), nil, image.Pt(0, 0)) {
		t.Error("nil mask should never collide")
	}
	if New(0, 0).Overlap(a, 0, 0) {
		t.Error("empty mask should never collide")
	}
}
