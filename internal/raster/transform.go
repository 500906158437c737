// Package raster 提供帧图像的变换工具
//
// 所有函数都返回新的 *image.NRGBA，不修改源图像。
// 旋转和缩放使用最近邻采样，保证像素边缘清晰，与掩码生成保持一致。
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// sizeEpsilon 消除三角函数误差导致的尺寸多出一像素
const sizeEpsilon = 1e-6

// ToNRGBA 将任意图像复制为原点对齐的 NRGBA
func ToNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Solid 创建纯色图像
func Solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// RotatedSize 返回逆时针旋转 deg 度后的外接矩形尺寸
func RotatedSize(w, h int, deg float64) (int, int) {
	rad := deg * math.Pi / 180
	c := math.Abs(math.Cos(rad))
	s := math.Abs(math.Sin(rad))
	fw := float64(w)*c + float64(h)*s
	fh := float64(w)*s + float64(h)*c
	return int(math.Ceil(fw - sizeEpsilon)), int(math.Ceil(fh - sizeEpsilon))
}

// Rotate 将图像绕中心逆时针旋转 deg 度（屏幕坐标系，y 轴向下）
// 输出尺寸扩展为旋转后的外接矩形，空白区域透明
func Rotate(src image.Image, deg float64) *image.NRGBA {
	b := src.Bounds()
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg == 0 {
		return ToNRGBA(src)
	}

	dw, dh := RotatedSize(b.Dx(), b.Dy(), deg)
	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))

	rad := deg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	scx := float64(b.Min.X) + float64(b.Dx())/2
	scy := float64(b.Min.Y) + float64(b.Dy())/2
	dcx := float64(dw) / 2
	dcy := float64(dh) / 2

	// 源坐标到目标坐标的仿射变换
	s2d := f64.Aff3{
		cos, sin, dcx - (cos*scx + sin*scy),
		-sin, cos, dcy - (-sin*scx + cos*scy),
	}
	draw.NearestNeighbor.Transform(dst, s2d, src, b, draw.Src, nil)
	return dst
}

// Scale 将图像缩放到 w×h，任一边小于 1 时返回空图像
func Scale(src image.Image, w, h int) *image.NRGBA {
	if w < 1 || h < 1 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// FlipH 水平镜像
func FlipH(src image.Image) *image.NRGBA {
	img := ToNRGBA(src)
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	dst := image.NewNRGBA(img.Bounds())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetNRGBA(w-1-x, y, img.NRGBAAt(x, y))
		}
	}
	return dst
}

// ApplyColorKey 将与 key 颜色相同（忽略 alpha）的像素设为透明
func ApplyColorKey(img *image.NRGBA, key color.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			if c.R == key.R && c.G == key.G && c.B == key.B {
				img.SetNRGBA(x, y, color.NRGBA{})
			}
		}
	}
}

// CornerColorKey 以左上角像素颜色作为透明色
func CornerColorKey(img *image.NRGBA) {
	b := img.Bounds()
	if b.Empty() {
		return
	}
	ApplyColorKey(img, img.NRGBAAt(b.Min.X, b.Min.Y))
}

// RotateKeyed 以源图左上角的不透明颜色作为透明色后旋转
// 左上角本身透明时不做色键
func RotateKeyed(src *image.NRGBA, deg float64) *image.NRGBA {
	img := Rotate(src, deg)
	b := src.Bounds()
	if b.Empty() {
		return img
	}
	if key := src.NRGBAAt(b.Min.X, b.Min.Y); key.A != 0 {
		ApplyColorKey(img, key)
	}
	return img
}

// CutSheet 按 cols×rows 网格切分精灵图，按行优先顺序返回各帧
func CutSheet(sheet image.Image, cols, rows int) []*image.NRGBA {
	if cols < 1 || rows < 1 {
		return nil
	}
	b := sheet.Bounds()
	fw, fh := b.Dx()/cols, b.Dy()/rows
	frames := make([]*image.NRGBA, 0, cols*rows)
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			frame := image.NewNRGBA(image.Rect(0, 0, fw, fh))
			draw.Draw(frame, frame.Bounds(), sheet, image.Pt(b.Min.X+fw*i, b.Min.Y+fh*j), draw.Src)
			frames = append(frames, frame)
		}
	}
	return frames
}
