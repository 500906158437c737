package components

import (
	"github.com/gonewx/starfall/pkg/ecs"
)

// Kind 实体种类标签，系统按标签分派行为
type Kind int

const (
	KindSprite Kind = iota // 静态图像（文字、画面）
	KindBackground
	KindPlayer
	KindHealthBar
	KindStar
	KindShard
	KindBlackHole
	KindBlackHoleCloud
	KindTurret
	KindTurretHandle
	KindBoss
	KindBossPart
	KindPulse // 脉动缩放的图像（标题 Logo）
)

var kindNames = map[Kind]string{
	KindSprite:         "sprite",
	KindBackground:     "background",
	KindPlayer:         "player",
	KindHealthBar:      "health_bar",
	KindStar:           "star",
	KindShard:          "shard",
	KindBlackHole:      "black_hole",
	KindBlackHoleCloud: "black_hole_cloud",
	KindTurret:         "turret",
	KindTurretHandle:   "turret_handle",
	KindBoss:           "boss",
	KindBossPart:       "boss_part",
	KindPulse:          "pulse",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// IsHazard 能伤害玩家的实体
func (k Kind) IsHazard() bool {
	switch k {
	case KindStar, KindShard, KindBlackHole, KindTurret:
		return true
	}
	return false
}

// Group 更新与绘制分组，按声明顺序执行
type Group int

const (
	GroupBackground Group = iota
	GroupSprites
	GroupBoss
	GroupPlayer
	GroupEnemies
	groupCount
)

// Groups 按更新顺序返回所有分组
func Groups() []Group {
	gs := make([]Group, 0, groupCount)
	for g := GroupBackground; g < groupCount; g++ {
		gs = append(gs, g)
	}
	return gs
}

// Entity 场景中的单个实体
// Body 为公共的位置与渲染记录，其余字段按 Kind 至多填充一个
type Entity struct {
	ID    ecs.EntityID
	Kind  Kind
	Group Group

	// SceneOwned 实体随场景淡出一起销毁
	SceneOwned bool

	Body *Body
	Anim *AnimationStrip

	Player    *PlayerState
	HealthBar *HealthBarState
	Star      *StarState
	Shard     *ShardState
	Hole      *BlackHoleState
	Cloud     *CloudState
	Turret    *TurretState
	Handle    *HandleState
	Boss      *BossState
	Part      *BossPartState
	Tile      *BackgroundTile
	Pulse     *PulseState
}
