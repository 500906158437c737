package raster

import (
	"image"
	"image/color"
	"math"
)

// RingStep 相邻同心圆的半径步长（像素）
const RingStep = 3

// ColorRing 黑洞渐变色带
// 每帧整体前移一格，首元素移到末尾，使同心圆的颜色向外流动
type ColorRing struct {
	colors []color.NRGBA
}

// NewColorRing 以给定颜色序列创建色带（复制输入）
func NewColorRing(colors []color.NRGBA) *ColorRing {
	c := make([]color.NRGBA, len(colors))
	copy(c, colors)
	return &ColorRing{colors: c}
}

// RingFromImage 读取图像第一列的前 n 个像素作为色带
func RingFromImage(img image.Image, n int) *ColorRing {
	b := img.Bounds()
	if n > b.Dy() {
		n = b.Dy()
	}
	colors := make([]color.NRGBA, n)
	for j := 0; j < n; j++ {
		colors[j] = color.NRGBAModel.Convert(img.At(b.Min.X, b.Min.Y+j)).(color.NRGBA)
	}
	return &ColorRing{colors: colors}
}

// Shift 色带滚动一格
func (r *ColorRing) Shift() {
	if len(r.colors) < 2 {
		return
	}
	first := r.colors[0]
	copy(r.colors, r.colors[1:])
	r.colors[len(r.colors)-1] = first
}

// Colors 返回当前色带（只读）
func (r *ColorRing) Colors() []color.NRGBA {
	return r.colors
}

// Len 返回色带长度
func (r *ColorRing) Len() int {
	return len(r.colors)
}

// CanvasSize 返回 n 色色带对应的画布边长
func CanvasSize(n int) int {
	if n <= 0 {
		return 0
	}
	return (n-1)*RingStep + 4
}

// RasterizeRings 将色带绘制为同心实心圆，由外向内覆盖
//
// 第 i 个圆的外接框为 [(n-1-i)*3, i*3+1]，外接框退化的圆被跳过，
// 因此只有后半段颜色可见。纯黑像素视为透明色。
func RasterizeRings(colors []color.NRGBA) *image.NRGBA {
	n := len(colors)
	size := CanvasSize(n)
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	for i := n - 1; i >= 0; i-- {
		lo := (n - 1 - i) * RingStep
		hi := i*RingStep + 1
		if hi < lo {
			continue
		}
		c := colors[i]
		c.A = 255
		center := float64(lo+hi) / 2
		radius := float64(hi-lo)/2 + 0.5
		r2 := radius * radius
		for y := lo; y <= hi; y++ {
			dy := float64(y) - center
			for x := lo; x <= hi; x++ {
				dx := float64(x) - center
				if dx*dx+dy*dy <= r2 {
					img.SetNRGBA(x, y, c)
				}
			}
		}
	}

	ApplyColorKey(img, color.NRGBA{})
	return img
}

// HoleSize 根据透明度和脉动相位计算黑洞的显示边长
//
// 参数:
//   - alpha: 当前透明度 0..255
//   - clockMs: 游戏时钟（毫秒），驱动 sin(t/50) 脉动
func HoleSize(alpha, clockMs float64) int {
	return int((alpha/255*150 + 1) * (math.Sin(clockMs/50) + 10) / 10)
}

// Rasterize 由色带和透明度生成本帧的黑洞图像
// 纯函数：相同输入总是得到相同像素
func Rasterize(colors []color.NRGBA, alpha, clockMs float64) *image.NRGBA {
	canvas := RasterizeRings(colors)
	size := HoleSize(alpha, clockMs)
	return Scale(canvas, size, size)
}
