package components

import (
	"image"

	"github.com/gonewx/starfall/internal/raster"
	"github.com/gonewx/starfall/pkg/ecs"
)

// StarState 旋转下落的星星
// 速度和转速都匀减速到零，二者归零的那一帧星星炸裂
type StarState struct {
	Velocity  float64 // 像素/秒
	Decel     float64
	Spin      float64 // 度/秒
	SpinDecel float64
	Rotation  float64 // 度，[0, 360)
	Upward    bool    // Boss 关卡中星星自下而上运动
	Source    *image.NRGBA
}

// ShardState 弹道飞行的碎片或激光弹
type ShardState struct {
	Speed   float64
	Heading float64 // 弧度，0 指向屏幕上方，逆时针增加
	Accel   float64 // 每秒速度增量
}

// BlackHoleState 引力黑洞
type BlackHoleState struct {
	Ring  *raster.ColorRing
	Alpha float64
	Speed float64 // 透明度变化速率，达到 255 后变为负的一半
	Cloud ecs.EntityID
}

// CloudState 黑洞周围的云雾
type CloudState struct {
	Hole   ecs.EntityID
	Source *image.NRGBA
}

// TurretPhase 激光炮台阶段
type TurretPhase int

const (
	TurretAppear TurretPhase = iota
	TurretShoot
	TurretRetract
)

func (p TurretPhase) String() string {
	switch p {
	case TurretAppear:
		return "appear"
	case TurretShoot:
		return "shoot"
	case TurretRetract:
		return "retract"
	}
	return "unknown"
}

// TurretState 激光炮台
type TurretState struct {
	Phase    TurretPhase
	Rotation float64 // 度
	Idle     *image.NRGBA
	Handle   ecs.EntityID
}

// HandleState 炮台支架，跟随炮台移动
type HandleState struct {
	Turret ecs.EntityID
}
