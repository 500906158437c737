package systems

import (
	"image"
	"math"

	"github.com/charmbracelet/log"

	"github.com/gonewx/starfall/internal/raster"
	"github.com/gonewx/starfall/pkg/components"
	"github.com/gonewx/starfall/pkg/entities"
	"github.com/gonewx/starfall/pkg/game"
)

// StarSystem 星星的下落、旋转与炸裂，以及碎片的弹道飞行
type StarSystem struct {
	world   *game.World
	physics *PhysicsSystem
}

// NewStarSystem 创建星星系统
func NewStarSystem(w *game.World, physics *PhysicsSystem) *StarSystem {
	return &StarSystem{world: w, physics: physics}
}

// Update 推进星星或碎片一帧
func (ss *StarSystem) Update(e *components.Entity) {
	switch e.Kind {
	case components.KindStar:
		ss.updateStar(e)
	case components.KindShard:
		ss.updateShard(e)
	}
}

// updateStar 速度先减到零，随后转速减到零，此时炸裂为 5 块碎片
func (ss *StarSystem) updateStar(e *components.Entity) {
	w := ss.world
	st, b := e.Star, e.Body
	fps := float64(w.FPS())

	dy := st.Velocity / fps
	if st.Upward {
		dy = -dy
	}
	b.Y += dy
	st.Rotation += st.Spin / fps
	if st.Rotation >= 360 {
		st.Rotation -= math.Floor(st.Rotation/360) * 360
	}

	if st.Velocity > 0 {
		st.Velocity -= st.Decel / fps
	} else {
		st.Velocity = 0
		if st.Spin > 0 {
			st.Spin -= st.SpinDecel / fps
		} else {
			st.Spin = 0
			game.Restart(w.Audio, game.SoundStarExplode)
			entities.NewStarShards(w, b.X, b.Y, st.Rotation)
			w.Destroy(e.ID)
			log.Debug("[StarSystem] star exploded", "id", e.ID, "x", b.X, "y", b.Y)
			return
		}
	}

	if st.Source != nil {
		b.SetFrame(raster.RotateKeyed(st.Source, st.Rotation))
	}
	ss.physics.CheckPlayerHit(e)
	ss.physics.CheckBossHit(e)
}

// updateShard 碎片持续加速，离开屏幕后销毁
// 离屏判断使用移动前的包围盒
func (ss *StarSystem) updateShard(e *components.Entity) {
	w := ss.world
	sh, b := e.Shard, e.Body
	fps := float64(w.FPS())

	sh.Speed += sh.Accel / fps
	b.X -= math.Sin(sh.Heading) * sh.Speed / fps
	b.Y -= math.Cos(sh.Heading) * sh.Speed / fps
	if !b.Rect.Overlaps(image.Rectangle{Max: w.Screen}) {
		w.Destroy(e.ID)
		return
	}
	b.SyncRect()

	ss.physics.CheckPlayerHit(e)
	ss.physics.CheckBossHit(e)
}
