package media

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

type cachedImage struct {
	img   *ebiten.Image
	frame uint64
}

// Renderer 将 game.Surface 的绘制请求转发到 ebiten 屏幕
//
// 同一 *image.NRGBA 在连续帧之间复用上传后的 ebiten.Image；
// 一帧内未被绘制的缓存项在下一次 Begin 时释放。
type Renderer struct {
	screen *ebiten.Image
	cache  map[*image.NRGBA]*cachedImage
	frame  uint64
}

// NewRenderer 创建渲染器
func NewRenderer() *Renderer {
	return &Renderer{cache: make(map[*image.NRGBA]*cachedImage)}
}

// Begin 开始新的一帧，绘制目标为 screen
func (r *Renderer) Begin(screen *ebiten.Image) {
	r.screen = screen
	r.frame++
	for src, c := range r.cache {
		if r.frame-c.frame > 1 {
			c.img.Deallocate()
			delete(r.cache, src)
		}
	}
}

// Fill 填充整个屏幕
func (r *Renderer) Fill(c color.Color) {
	if r.screen != nil {
		r.screen.Fill(c)
	}
}

// DrawImage 以左上角 (x, y) 绘制，alpha 取 0..255
func (r *Renderer) DrawImage(src *image.NRGBA, x, y int, alpha float64) {
	if r.screen == nil || src == nil || alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	if alpha < 255 {
		op.ColorScale.ScaleAlpha(float32(alpha / 255))
	}
	r.screen.DrawImage(r.upload(src), op)
}

// CachedImages 当前缓存的纹理数量
func (r *Renderer) CachedImages() int {
	return len(r.cache)
}

func (r *Renderer) upload(src *image.NRGBA) *ebiten.Image {
	if c, ok := r.cache[src]; ok {
		c.frame = r.frame
		return c.img
	}
	img := ebiten.NewImageFromImage(src)
	r.cache[src] = &cachedImage{img: img, frame: r.frame}
	return img
}
