// Package mask 提供逐像素碰撞检测所需的不透明度位图
//
// 掩码由图像帧派生：alpha 高于阈值的像素视为实心。
// 两个掩码按各自中心点的整数偏移对齐，只要存在一个双方都实心的像素即判定碰撞。
//
// 注意：掩码与派生它的帧一一对应，帧发生旋转或缩放后必须重新生成，
// 否则碰撞结果会与画面不一致。
package mask

import (
	"image"
)

// AlphaThreshold alpha 大于该值的像素计为实心
const AlphaThreshold = 127

// Mask 是一个 W×H 的位图，按行主序存储
type Mask struct {
	w, h int
	bits []uint64
}

// New 创建一个全空的掩码
func New(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{
		w:    w,
		h:    h,
		bits: make([]uint64, (w*h+63)/64),
	}
}

// FromImage 从图像的 alpha 通道生成掩码
func FromImage(img image.Image) *Mask {
	if img == nil {
		return New(0, 0)
	}
	b := img.Bounds()
	m := New(b.Dx(), b.Dy())

	// NRGBA 快速路径：直接读取 alpha 字节
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < m.h; y++ {
			row := nrgba.Pix[nrgba.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < m.w; x++ {
				if row[x*4+3] > AlphaThreshold {
					m.Set(x, y)
				}
			}
		}
		return m
	}

	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 > AlphaThreshold {
				m.Set(x, y)
			}
		}
	}
	return m
}

// Size 返回掩码尺寸
func (m *Mask) Size() (int, int) {
	return m.w, m.h
}

// Set 将 (x, y) 标记为实心，越界时忽略
func (m *Mask) Set(x, y int) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	i := y*m.w + x
	m.bits[i>>6] |= 1 << (uint(i) & 63)
}

// Get 返回 (x, y) 是否实心，越界返回 false
func (m *Mask) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	i := y*m.w + x
	return m.bits[i>>6]&(1<<(uint(i)&63)) != 0
}

// Count 返回实心像素数量
func (m *Mask) Count() int {
	n := 0
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if m.Get(x, y) {
				n++
			}
		}
	}
	return n
}

// Overlap 检查 other 左上角放在 (dx, dy) 时两者是否存在共同实心像素
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	if m == nil || other == nil {
		return false
	}

	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.w, dx+other.w)
	y1 := min(m.h, dy+other.h)
	if x0 >= x1 || y0 >= y1 {
		return false
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.Get(x, y) && other.Get(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}

// Collide 按中心点对齐两个掩码并检测重叠
//
// 参数:
//   - a, b: 两个掩码
//   - ac, bc: 各自的整数中心点
func Collide(a *Mask, ac image.Point, b *Mask, bc image.Point) bool {
	if a == nil || b == nil {
		return false
	}
	dx := (bc.X - b.w/2) - (ac.X - a.w/2)
	dy := (bc.Y - b.h/2) - (ac.Y - a.h/2)
	return a.Overlap(b, dx, dy)
}
