package systems

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/gonewx/starfall/internal/raster"
	"github.com/gonewx/starfall/pkg/components"
	"github.com/gonewx/starfall/pkg/config"
	"github.com/gonewx/starfall/pkg/game"
)

// BlackHoleSystem 黑洞的显现、引力与消散，以及伴随的云雾
type BlackHoleSystem struct {
	world   *game.World
	physics *PhysicsSystem
}

// NewBlackHoleSystem 创建黑洞系统
func NewBlackHoleSystem(w *game.World, physics *PhysicsSystem) *BlackHoleSystem {
	return &BlackHoleSystem{world: w, physics: physics}
}

// Update 推进黑洞或云雾一帧
func (bs *BlackHoleSystem) Update(e *components.Entity) {
	switch e.Kind {
	case components.KindBlackHole:
		bs.updateHole(e)
	case components.KindBlackHoleCloud:
		bs.updateCloud(e)
	}
}

// updateHole 透明度以 Speed 增长，到 255 后以一半速率衰减，降到 0 以下时消失
// 本帧图像使用增长前的透明度绘制
func (bs *BlackHoleSystem) updateHole(e *components.Entity) {
	w := bs.world
	h, b := e.Hole, e.Body

	h.Ring.Shift()
	b.SetFrame(raster.Rasterize(h.Ring.Colors(), h.Alpha, w.Now()))

	h.Alpha += h.Speed / float64(w.FPS())
	if h.Alpha >= 255 {
		h.Speed = -h.Speed / 2
		h.Alpha = 255
	} else if h.Alpha < 0 {
		destroyWithCompanion(w, e)
		log.Debug("[BlackHoleSystem] black hole faded", "id", e.ID)
		return
	}
	b.Alpha = math.Trunc(h.Alpha)

	bs.pull(e)
}

// pull 玩家落入半径内时受击，否则被吸向黑洞
// 引力大小为 (alpha/HoleGravityFactor)³ / d，玩家无敌时不受影响
func (bs *BlackHoleSystem) pull(e *components.Entity) {
	p := bs.world.Player()
	if p == nil || p.Player.Invulnerable {
		return
	}
	dx := p.Body.X - e.Body.X
	dy := p.Body.Y - e.Body.Y
	d := math.Hypot(dx, dy)

	radius := 0.0
	if e.Body.Image != nil {
		radius = float64(e.Body.Image.Bounds().Dx()) / 2
	}
	if d <= radius {
		bs.physics.HitPlayer(e)
		return
	}

	vel := math.Pow(e.Hole.Alpha/config.HoleGravityFactor, 3) / d
	fps := float64(bs.world.FPS())
	p.Body.X -= vel * dx / d / fps
	p.Body.Y -= vel * dy / d / fps
}

// updateCloud 云雾随黑洞透明度放大，并随时钟旋转
func (bs *BlackHoleSystem) updateCloud(e *components.Entity) {
	w := bs.world
	hole, ok := w.Entity(e.Cloud.Hole)
	if !ok || hole.Hole == nil {
		w.Destroy(e.ID)
		return
	}
	a := hole.Hole.Alpha
	if src := e.Cloud.Source; src != nil {
		size := int(a*a/255 + 1)
		e.Body.SetFrame(raster.RotateKeyed(raster.Scale(src, size, size), float64(int(w.Now()/2))))
	}
	e.Body.X, e.Body.Y = hole.Body.X, hole.Body.Y
	e.Body.SyncRect()
	e.Body.Alpha = math.Floor(a / 2)
}
