package systems

import (
	"image/color"

	"github.com/gonewx/starfall/pkg/components"
	"github.com/gonewx/starfall/pkg/game"
)

// RenderSystem 按分组顺序把可见实体绘制到目标表面，最后叠加转场遮罩
type RenderSystem struct {
	world *game.World
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(w *game.World) *RenderSystem {
	return &RenderSystem{world: w}
}

// Draw 绘制一帧
//
// 镜头偏移只在绘制时叠加，不修改实体坐标；Fixed 实体不受偏移影响。
func (rs *RenderSystem) Draw(surface game.Surface) {
	w := rs.world
	surface.Fill(color.Black)
	for _, g := range components.Groups() {
		for _, e := range w.Group(g) {
			b := e.Body
			if b == nil || !b.Visible || b.Image == nil || b.Alpha <= 0 {
				continue
			}
			at := b.DrawOrigin()
			if !b.Fixed {
				at = at.Add(w.Camera.Offset)
			}
			surface.DrawImage(b.Image, at.X, at.Y, b.Alpha)
		}
	}
	rs.drawFade(surface)
}

func (rs *RenderSystem) drawFade(surface game.Surface) {
	w := rs.world
	if w.Fade.Alpha <= 0 || w.Images == nil {
		return
	}
	name := game.ImgFadeBlack
	if w.Fade.Color == game.FadeWhite {
		name = game.ImgFadeWhite
	}
	if img := w.Images.Image(name); img != nil {
		surface.DrawImage(img, 0, 0, w.Fade.Alpha)
	}
}
