package systems

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/gonewx/starfall/internal/raster"
	"github.com/gonewx/starfall/pkg/components"
	"github.com/gonewx/starfall/pkg/config"
	"github.com/gonewx/starfall/pkg/entities"
	"github.com/gonewx/starfall/pkg/game"
)

// TurretSystem 激光炮台的进场、瞄准、开火与撤离
//
// 阶段流转: appear -> shoot -> retract。
// 炮台停在距较近屏幕边缘 TurretStandoff 处开火一次，
// 然后播放收回动画并以 TurretLeaveSpeed 退出屏幕。
type TurretSystem struct {
	world   *game.World
	physics *PhysicsSystem
}

// NewTurretSystem 创建炮台系统
func NewTurretSystem(w *game.World, physics *PhysicsSystem) *TurretSystem {
	return &TurretSystem{world: w, physics: physics}
}

// Update 推进炮台或其支架一帧
func (ts *TurretSystem) Update(e *components.Entity) {
	switch e.Kind {
	case components.KindTurret:
		ts.updateTurret(e)
	case components.KindTurretHandle:
		ts.updateHandle(e)
	}
}

func (ts *TurretSystem) updateTurret(e *components.Entity) {
	switch e.Turret.Phase {
	case components.TurretAppear:
		ts.appear(e)
		ts.aim(e)
		e.Body.SyncRect()
	case components.TurretShoot:
		ts.shoot(e)
	case components.TurretRetract:
		if !ts.retract(e) {
			return
		}
	}
	ts.physics.CheckPlayerHit(e)
}

// appear 向屏幕内滑动，到达停靠点后进入开火阶段
func (ts *TurretSystem) appear(e *components.Entity) {
	w := ts.world
	b := e.Body
	step := config.TurretAppearSpeed / float64(w.FPS())
	if b.X > float64(w.Screen.X/2) {
		stop := float64(w.Screen.X - config.TurretStandoff)
		if b.X > stop {
			b.X -= step
		} else {
			b.X = stop
			e.Turret.Phase = components.TurretShoot
		}
		return
	}
	stop := float64(config.TurretStandoff)
	if b.X < stop {
		b.X += step
	} else {
		b.X = stop
		e.Turret.Phase = components.TurretShoot
	}
}

// aim 炮口转向玩家，旋转角取整到度
func (ts *TurretSystem) aim(e *components.Entity) {
	p := ts.world.Player()
	if p == nil {
		return
	}
	a := e.Body.X - p.Body.X
	b := e.Body.Y - p.Body.Y
	c := math.Hypot(a, b)
	if c == 0 {
		return
	}
	deg := math.Asin(b/c) / math.Pi * 180
	if a <= 0 {
		e.Turret.Rotation = deg
	} else {
		e.Turret.Rotation = 180 - deg
	}
	if e.Turret.Idle != nil {
		e.Body.SetFrame(raster.Rotate(e.Turret.Idle, math.Trunc(e.Turret.Rotation)))
	}
}

// shoot 沿炮口方向发射一枚激光弹，随后开始收回动画
func (ts *TurretSystem) shoot(e *components.Entity) {
	w := ts.world
	game.Restart(w.Audio, game.SoundLaser)
	entities.NewLaserShot(w, e.Body.X, e.Body.Y, e.Turret.Rotation)
	e.Anim.Speed = config.TurretRetractFPS
	e.Turret.Phase = components.TurretRetract
	log.Debug("[TurretSystem] turret fired", "id", e.ID, "rotation", e.Turret.Rotation)
}

// retract 播放收回动画并离开屏幕
// 返回 false 表示炮台已销毁
func (ts *TurretSystem) retract(e *components.Entity) bool {
	w := ts.world
	b := e.Body
	e.Anim.Advance(w.FPS())
	if frame := e.Anim.Frame(); frame != nil {
		b.SetFrame(raster.RotateKeyed(frame, math.Trunc(e.Turret.Rotation)))
	}

	step := config.TurretLeaveSpeed / float64(w.FPS())
	if b.X > float64(w.Screen.X/2) {
		if b.X >= config.TurretSpawnRight {
			destroyWithCompanion(w, e)
			return false
		}
		b.X += step
	} else {
		if b.X <= config.TurretSpawnLeft {
			destroyWithCompanion(w, e)
			return false
		}
		b.X -= step
	}
	b.SyncRect()
	return true
}

// updateHandle 支架跟随炮台的中心
func (ts *TurretSystem) updateHandle(e *components.Entity) {
	turret, ok := ts.world.Entity(e.Handle.Turret)
	if !ok {
		ts.world.Destroy(e.ID)
		return
	}
	e.Body.X, e.Body.Y = turret.Body.X, turret.Body.Y
	e.Body.SyncRect()
}
