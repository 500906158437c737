package systems

import (
	"github.com/gonewx/starfall/pkg/components"
	"github.com/gonewx/starfall/pkg/config"
	"github.com/gonewx/starfall/pkg/game"
)

// directionActions 方向动作与移动方向的对应关系
var directionActions = []struct {
	action game.Action
	dir    components.Direction
}{
	{game.ActionUp, components.DirUp},
	{game.ActionDown, components.DirDown},
	{game.ActionLeft, components.DirLeft},
	{game.ActionRight, components.DirRight},
}

// PlayerSystem 玩家移动、边界、无敌闪烁和血条
type PlayerSystem struct {
	world  *game.World
	camera *CameraSystem
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(w *game.World, camera *CameraSystem) *PlayerSystem {
	return &PlayerSystem{world: w, camera: camera}
}

// ApplyInput 把本帧的按键边沿写入玩家的移动意图
func (ps *PlayerSystem) ApplyInput(in game.InputFrame) {
	p := ps.world.Player()
	if p == nil {
		return
	}
	st := p.Player
	for _, da := range directionActions {
		if in.Pressed(da.action) {
			st.Press(da.dir)
		}
		if in.Released(da.action) {
			st.Release(da.dir)
		}
	}
	if in.Pressed(game.ActionSlow) {
		st.Slow = true
	}
	if in.Released(game.ActionSlow) {
		st.Slow = false
	}
}

// Update 推进玩家或血条一帧
func (ps *PlayerSystem) Update(e *components.Entity) {
	switch e.Kind {
	case components.KindPlayer:
		ps.updatePlayer(e)
	case components.KindHealthBar:
		ps.updateHealthBar(e)
	}
}

func (ps *PlayerSystem) updatePlayer(e *components.Entity) {
	w := ps.world
	st, b := e.Player, e.Body
	fps := float64(w.FPS())

	if e.Anim.Advance(w.FPS()) {
		b.Image = e.Anim.Frame()
	}

	speed := st.Speed
	if st.Slow {
		speed /= 2
	}
	b.X += speed * float64(st.MoveX) / fps
	b.Y += speed * float64(st.MoveY) / fps
	b.SyncRect()
	clampToBorders(b, w.Borders)

	if st.Invulnerable {
		b.Alpha = 255 - b.Alpha
		if w.Now()-st.HitTime > st.InvulnerableFor {
			st.Invulnerable = false
		}
	} else {
		b.Alpha = 255
	}

	ps.camera.Update(st)
}

// clampToBorders 把包围盒推回边界内
// 只有被推回的轴会用包围盒中心覆盖浮点坐标，另一轴保留亚像素位置
func clampToBorders(b *components.Body, borders game.Borders) {
	r := borders.Clamp(b.Rect)
	if r == b.Rect {
		return
	}
	moved := r.Min.Sub(b.Rect.Min)
	b.Rect = r
	c := b.Center()
	if moved.X != 0 {
		b.X = float64(c.X)
	}
	if moved.Y != 0 {
		b.Y = float64(c.Y)
	}
}

func (ps *PlayerSystem) updateHealthBar(e *components.Entity) {
	p, ok := ps.world.Entity(e.HealthBar.Player)
	if !ok || p.Player == nil || len(e.Anim.Frames) == 0 {
		return
	}
	i := config.PlayerMaxHealth - p.Player.Health
	e.Body.Image = e.Anim.Frames[max(0, min(i, len(e.Anim.Frames)-1))]
}
