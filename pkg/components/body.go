package components

import (
	"image"
	"math"

	"github.com/gonewx/starfall/internal/mask"
)

// Body 实体的位置、可见帧、包围盒和像素掩码
//
// X/Y 是浮点中心坐标（亚像素累加器），Rect 是取整后的绘制矩形。
// 每次 SetFrame 都会重新生成掩码，旋转或缩放后的帧不会沿用旧掩码。
type Body struct {
	X, Y    float64
	Image   *image.NRGBA
	Rect    image.Rectangle
	Mask    *mask.Mask
	Solid   bool    // false 时不生成掩码，不参与碰撞
	Alpha   float64 // 整体绘制透明度 0..255，不影响掩码
	Fixed   bool    // 不受镜头抖动影响
	Visible bool
}

// NewBody 以给定帧创建位于 (x, y) 的实体
func NewBody(x, y float64, frame *image.NRGBA, solid bool) *Body {
	b := &Body{X: x, Y: y, Solid: solid, Alpha: 255, Visible: true}
	b.SetFrame(frame)
	return b
}

// SetFrame 切换可见帧，并据此重建包围盒和掩码
func (b *Body) SetFrame(frame *image.NRGBA) {
	b.Image = frame
	w, h := 0, 0
	if frame != nil {
		w, h = frame.Bounds().Dx(), frame.Bounds().Dy()
	}
	b.Rect = image.Rect(0, 0, w, h)
	b.SyncRect()
	switch {
	case b.Solid && frame != nil:
		b.Mask = mask.FromImage(frame)
	case b.Solid:
		b.Mask = mask.New(0, 0)
	default:
		b.Mask = nil
	}
}

// SetHitbox 使用独立的碰撞掩码，包围盒取掩码尺寸
// 用于绘制帧与碰撞形状不同的实体（如玩家飞船）
func (b *Body) SetHitbox(m *mask.Mask) {
	b.Mask = m
	w, h := m.Size()
	b.Rect = image.Rect(0, 0, w, h)
	b.SyncRect()
}

// SyncRect 将包围盒的中心移到 (X, Y)，尺寸不变
func (b *Body) SyncRect() {
	w, h := b.Rect.Dx(), b.Rect.Dy()
	cx, cy := int(math.Floor(b.X)), int(math.Floor(b.Y))
	min := image.Pt(cx-w/2, cy-h/2)
	b.Rect = image.Rectangle{Min: min, Max: min.Add(image.Pt(w, h))}
}

// Center 包围盒中心（整数）
func (b *Body) Center() image.Point {
	return image.Pt(b.Rect.Min.X+b.Rect.Dx()/2, b.Rect.Min.Y+b.Rect.Dy()/2)
}

// MoveRectTo 将包围盒左上角移到 (x, y)，并由包围盒反推浮点坐标
func (b *Body) MoveRectTo(x, y int) {
	b.Rect = b.Rect.Add(image.Pt(x, y).Sub(b.Rect.Min))
	c := b.Center()
	b.X, b.Y = float64(c.X), float64(c.Y)
}

// Collides 两个实体的掩码按中心对齐后是否存在同时不透明的像素
func (b *Body) Collides(other *Body) bool {
	if b == nil || other == nil || b.Mask == nil || other.Mask == nil {
		return false
	}
	if !b.Rect.Overlaps(other.Rect) {
		return false
	}
	return mask.Collide(b.Mask, b.Center(), other.Mask, other.Center())
}

// DrawOrigin 图像绘制的左上角，图像以包围盒中心对齐
func (b *Body) DrawOrigin() image.Point {
	if b.Image == nil {
		return b.Rect.Min
	}
	c := b.Center()
	return image.Pt(c.X-b.Image.Bounds().Dx()/2, c.Y-b.Image.Bounds().Dy()/2)
}

// SetFrameMasked 切换可见帧并使用预先生成的掩码
// m 必须由 frame 派生
func (b *Body) SetFrameMasked(frame *image.NRGBA, m *mask.Mask) {
	b.Image = frame
	b.Rect = image.Rect(0, 0, frame.Bounds().Dx(), frame.Bounds().Dy())
	b.SyncRect()
	b.Mask = m
}
