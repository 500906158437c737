package game

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Surface 绘制目标
type Surface interface {
	// DrawImage 以左上角 (x, y) 绘制图像，alpha 为整体透明度 0..255
	DrawImage(img *image.NRGBA, x, y int, alpha float64)
	Fill(c color.Color)
}

// ImageSurface 绘制到内存图像的 Surface，用于无窗口运行和截图
type ImageSurface struct {
	Canvas *image.NRGBA
}

// NewImageSurface 创建 w×h 的内存画布
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{Canvas: image.NewNRGBA(image.Rect(0, 0, w, h))}
}

func (s *ImageSurface) DrawImage(img *image.NRGBA, x, y int, alpha float64) {
	if img == nil || alpha <= 0 {
		return
	}
	b := img.Bounds()
	dst := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	if alpha >= 255 {
		draw.Draw(s.Canvas, dst, img, b.Min, draw.Over)
		return
	}
	m := image.NewUniform(color.Alpha{A: uint8(alpha)})
	draw.DrawMask(s.Canvas, dst, img, b.Min, m, image.Point{}, draw.Over)
}

func (s *ImageSurface) Fill(c color.Color) {
	draw.Draw(s.Canvas, s.Canvas.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}
