package entities

import (
	"image"
	"math"

	"github.com/charmbracelet/log"

	"github.com/gonewx/starfall/internal/raster"
	"github.com/gonewx/starfall/pkg/components"
	"github.com/gonewx/starfall/pkg/config"
	"github.com/gonewx/starfall/pkg/game"
)

// NewStar 创建旋转下落的星星
//
// 参数:
//   - x, y: 出生点；Boss 关卡中 y 以屏幕底部为基准翻转，星星自下而上运动
//   - velocity: 初速度（像素/秒），匀减速到零
//   - spin: 初始转速（度/秒），在速度归零后匀减速到零
func NewStar(w *game.World, x, y, velocity, spin float64) *components.Entity {
	src := w.Images.Image(game.ImgStar)
	if w.BossFight {
		y = float64(w.Screen.Y) - y
	}
	e := &components.Entity{
		Kind:       components.KindStar,
		Group:      components.GroupEnemies,
		SceneOwned: true,
		Body:       components.NewBody(x, y, src, true),
		Star: &components.StarState{
			Velocity:  velocity,
			Decel:     velocity / config.StarDecelDivisor,
			Spin:      spin,
			SpinDecel: spin,
			Upward:    w.BossFight,
			Source:    src,
		},
	}
	w.Spawn(e)
	log.Debug("[EntityFactory] star spawned", "id", e.ID, "x", x, "y", y, "v", velocity, "spin", spin)
	return e
}

// NewShard 创建沿固定方向加速飞行的碎片
//
// headingDeg 为 0 时朝向屏幕上方，逆时针增加；图像按同一角度旋转，
// 源图左上角的不透明颜色视为透明色。
func NewShard(w *game.World, x, y, speed, headingDeg float64, src *image.NRGBA) *components.Entity {
	var img *image.NRGBA
	if src != nil {
		img = raster.RotateKeyed(src, headingDeg)
	}
	e := &components.Entity{
		Kind:       components.KindShard,
		Group:      components.GroupEnemies,
		SceneOwned: true,
		Body:       components.NewBody(x, y, img, true),
		Shard: &components.ShardState{
			Speed:   speed,
			Heading: headingDeg / 360 * 2 * math.Pi,
			Accel:   config.ShardAccel,
		},
	}
	w.Spawn(e)
	return e
}

// NewStarShards 星星炸裂时以 72° 间隔放射出 5 块碎片
func NewStarShards(w *game.World, x, y, rotation float64) []*components.Entity {
	src := w.Images.Image(game.ImgStarPiece)
	shards := make([]*components.Entity, 0, config.ShardCount)
	for i := 0; i < config.ShardCount; i++ {
		heading := float64(i)*config.ShardSpread + rotation
		shards = append(shards, NewShard(w, x, y, config.ShardSpeed, heading, src))
	}
	return shards
}

// NewLaserShot 炮台发射的激光弹，图像缩放为固定尺寸
func NewLaserShot(w *game.World, x, y, rotation float64) *components.Entity {
	src := w.Images.Image(game.ImgLaserShot)
	if src != nil {
		src = raster.Scale(src, config.TurretShotSize, config.TurretShotSize)
	}
	return NewShard(w, x, y, config.TurretShotSpeed, rotation-90, src)
}

// NewBlackHole 创建黑洞及其云雾
//
// 黑洞以 1×1 的透明图出生，之后每帧由色带重新绘制。
// speed 为透明度增长速率（每秒），达到 255 后以一半的速率衰减。
func NewBlackHole(w *game.World, x, y, speed float64) *components.Entity {
	ring := raster.NewColorRing(nil)
	if gen := w.Images.Image(game.ImgHoleGenerator); gen != nil {
		ring = raster.RingFromImage(gen, config.HoleRingColors)
	}
	body := components.NewBody(x, y, image.NewNRGBA(image.Rect(0, 0, 1, 1)), true)
	body.Alpha = 0

	hole := &components.Entity{
		Kind:       components.KindBlackHole,
		Group:      components.GroupEnemies,
		SceneOwned: true,
		Body:       body,
		Hole:       &components.BlackHoleState{Ring: ring, Speed: speed},
	}
	w.Spawn(hole)

	cloudSrc := w.Images.Image(game.ImgHoleClouds)
	cloud := &components.Entity{
		Kind:       components.KindBlackHoleCloud,
		Group:      components.GroupEnemies,
		SceneOwned: true,
		Body:       components.NewBody(x, y, cloudSrc, false),
		Cloud:      &components.CloudState{Hole: hole.ID, Source: cloudSrc},
	}
	cloud.Body.Alpha = 0
	hole.Hole.Cloud = w.Spawn(cloud)

	log.Debug("[EntityFactory] black hole spawned", "id", hole.ID, "x", x, "y", y, "speed", speed)
	return hole
}

// NewTurret 创建激光炮台及其支架
//
// 炮台从屏幕外 x 处滑入，停在距较近边缘 100px 处开火，随后播放收回动画并离场。
// 从右侧进入的炮台支架水平镜像。
func NewTurret(w *game.World, x, y float64) *components.Entity {
	idle := w.Images.Image(game.ImgTurretIdle)
	turret := &components.Entity{
		Kind:       components.KindTurret,
		Group:      components.GroupEnemies,
		SceneOwned: true,
		Body:       components.NewBody(x, y, idle, true),
		Anim:       components.NewAnimationStrip(w.Images.Frames(game.ImgTurretSheet), 0),
		Turret:     &components.TurretState{Phase: components.TurretAppear, Idle: idle},
	}
	turret.Anim.Hold = true
	w.Spawn(turret)

	handleImg := w.Images.Image(game.ImgTurretHandle)
	if handleImg != nil && x > float64(w.Screen.X-config.TurretStandoff) {
		handleImg = raster.FlipH(handleImg)
	}
	handle := &components.Entity{
		Kind:       components.KindTurretHandle,
		Group:      components.GroupEnemies,
		SceneOwned: true,
		Body:       components.NewBody(x, y, handleImg, false),
		Handle:     &components.HandleState{Turret: turret.ID},
	}
	turret.Turret.Handle = w.Spawn(handle)

	log.Debug("[EntityFactory] turret spawned", "id", turret.ID, "x", x, "y", y)
	return turret
}
