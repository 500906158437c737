package entities

import (
	"image"

	"github.com/charmbracelet/log"

	"github.com/gonewx/starfall/internal/mask"
	"github.com/gonewx/starfall/pkg/components"
	"github.com/gonewx/starfall/pkg/config"
	"github.com/gonewx/starfall/pkg/game"
)

// NewPlayer 创建玩家飞船
//
// 绘制使用动画帧，碰撞使用独立的飞船轮廓掩码，包围盒取掩码尺寸。
// 初始时无敌窗口已过期（HitTime = -InvulnerableFor）。
//
// 参数:
//   - w: 所属场景
//   - x, y: 中心坐标
func NewPlayer(w *game.World, x, y float64) *components.Entity {
	anim := components.NewAnimationStrip(w.Images.Frames(game.ImgPlayerSheet), config.PlayerAnimSpeed)

	body := &components.Body{X: x, Y: y, Alpha: 255, Visible: true}
	body.Image = anim.Frame()
	body.SetHitbox(hitMask(w.Images.Image(game.ImgPlayerHitbox)))

	e := &components.Entity{
		Kind:  components.KindPlayer,
		Group: components.GroupPlayer,
		Body:  body,
		Anim:  anim,
		Player: &components.PlayerState{
			Health:          config.PlayerMaxHealth,
			Speed:           config.PlayerSpeed,
			InvulnerableFor: config.InvulnerabilityMs,
			HitTime:         -config.InvulnerabilityMs,
		},
	}
	w.PlayerID = w.Spawn(e)
	log.Debug("[EntityFactory] player spawned", "id", e.ID, "x", x, "y", y)
	return e
}

// NewHealthBar 创建血条，显示 player 的剩余生命
// 血条固定在屏幕左上角，不受镜头抖动影响
func NewHealthBar(w *game.World, player *components.Entity) *components.Entity {
	frames := w.Images.Frames(game.ImgHealthBarSheet)
	bar := &components.Entity{
		Kind:       components.KindHealthBar,
		Group:      components.GroupPlayer,
		SceneOwned: true,
		Anim:       components.NewAnimationStrip(frames, 0),
		HealthBar:  &components.HealthBarState{Player: player.ID},
	}
	bar.Body = components.NewBody(0, 0, frameAt(frames, config.PlayerMaxHealth-player.Player.Health), false)
	bar.Body.Fixed = true
	bar.Body.MoveRectTo(config.HealthBarX, config.HealthBarY)
	w.Spawn(bar)
	return bar
}

// hitMask 由图像生成碰撞掩码，图像缺失时返回空掩码
func hitMask(img *image.NRGBA) *mask.Mask {
	if img == nil {
		return mask.New(0, 0)
	}
	return mask.FromImage(img)
}

// frameAt 安全地取第 i 帧，越界时取最近的一帧
func frameAt(frames []*image.NRGBA, i int) *image.NRGBA {
	if len(frames) == 0 {
		return nil
	}
	return frames[max(0, min(i, len(frames)-1))]
}
