package systems

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/gonewx/starfall/internal/mask"
	"github.com/gonewx/starfall/internal/raster"
	"github.com/gonewx/starfall/pkg/components"
	"github.com/gonewx/starfall/pkg/config"
	"github.com/gonewx/starfall/pkg/game"
)

// BossSystem Boss 主体与部件的脉动，以及核心被摧毁后的胜利判定
type BossSystem struct {
	world *game.World
}

// NewBossSystem 创建 Boss 系统
func NewBossSystem(w *game.World) *BossSystem {
	return &BossSystem{world: w}
}

// Update 部件由主体统一驱动，单独出现的部件不做处理
func (bs *BossSystem) Update(e *components.Entity) {
	if e.Kind != components.KindBoss {
		return
	}
	w := bs.world
	pulse(w, e, false)
	for _, id := range e.Boss.Parts() {
		if part, ok := w.Entity(id); ok {
			pulse(w, part, false)
		}
	}

	core, ok := w.Entity(e.Boss.Core)
	if ok && core.Part.Health == 0 && w.BeginFadeOut(game.StateWin, game.FadeWhite, config.FadeSpeed) {
		log.Info("[BossSystem] boss defeated")
	}
}

// pulse 按当前时钟缩放实体，中心保持不变
//
// 部件的缩放帧与掩码按 (尺寸, 受损) 缓存，掩码始终与显示帧一致。
// damaged 为 true 时本帧显示受损图像。
func pulse(w *game.World, e *components.Entity, damaged bool) {
	src := e.Pulse.Source
	if e.Part != nil && damaged && e.Part.Damaged != nil {
		src = e.Part.Damaged
	}
	if src == nil {
		return
	}
	f := e.Pulse.Factor(math.Sin(w.Now() / 1000))
	sw := int(float64(src.Bounds().Dx()) * f)
	sh := int(float64(src.Bounds().Dy()) * f)

	if e.Part == nil {
		e.Body.SetFrame(raster.Scale(src, sw, sh))
		return
	}
	img, m, ok := e.Part.CachedFrame(sw, sh, damaged)
	if !ok {
		img = raster.Scale(src, sw, sh)
		m = mask.FromImage(img)
		e.Part.StoreFrame(sw, sh, damaged, img, m)
	}
	e.Body.SetFrameMasked(img, m)
}
