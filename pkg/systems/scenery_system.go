package systems

import (
	"math"

	"github.com/gonewx/starfall/pkg/components"
	"github.com/gonewx/starfall/pkg/game"
)

// ScenerySystem 滚动背景和脉动图像
type ScenerySystem struct {
	world *game.World
}

// NewScenerySystem 创建场景装饰系统
func NewScenerySystem(w *game.World) *ScenerySystem {
	return &ScenerySystem{world: w}
}

// Update 推进背景块或脉动图像一帧
func (ss *ScenerySystem) Update(e *components.Entity) {
	switch e.Kind {
	case components.KindBackground:
		ss.updateTile(e)
	case components.KindPulse:
		if !e.Pulse.Stopped {
			pulse(ss.world, e, false)
		}
	}
}

// updateTile 第一块背景负责推进共享的滚动状态，两块都据此定位
func (ss *ScenerySystem) updateTile(e *components.Entity) {
	s := e.Tile.Scroll
	fps := ss.world.FPS()
	if e.Tile.Index == 0 {
		s.Y += s.Speed / float64(fps)
		if s.Limit > 0 {
			s.Y = math.Mod(s.Y, s.Limit)
			if s.Y < 0 {
				s.Y += s.Limit
			}
		}
		if s.Anim != nil {
			s.Anim.Advance(fps)
		}
	}
	if s.Anim != nil {
		e.Body.Image = s.Anim.Frame()
	}
	e.Body.MoveRectTo(0, int(s.Y)-e.Tile.Index*int(s.Limit))
}
