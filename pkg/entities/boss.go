package entities

import (
	"image"

	"github.com/charmbracelet/log"

	"github.com/gonewx/starfall/pkg/components"
	"github.com/gonewx/starfall/pkg/config"
	"github.com/gonewx/starfall/pkg/ecs"
	"github.com/gonewx/starfall/pkg/game"
)

// NewBoss 创建位于屏幕中央的 Boss
//
// 主体只负责外观；核心与两个引擎是可受损部件，共享主体的中心和脉动系数。
// 创建后 w.BossID 指向主体。
func NewBoss(w *game.World) *components.Entity {
	cx, cy := float64(w.Screen.X/2), float64(w.Screen.Y/2)

	body := newPulsing(w, components.KindBoss, w.Images.Image(game.ImgBossBody), cx, cy, false)
	body.Boss = &components.BossState{
		Core: newBossPart(w, game.ImgBossCore, game.ImgBossCoreHit, cx, cy, true).ID,
		Engines: []ecs.EntityID{
			newBossPart(w, game.ImgBossEngine1, game.ImgBossEngine1Hit, cx, cy, false).ID,
			newBossPart(w, game.ImgBossEngine2, game.ImgBossEngine2Hit, cx, cy, false).ID,
		},
	}
	w.BossID = body.ID

	log.Debug("[EntityFactory] boss spawned", "id", body.ID, "core", body.Boss.Core, "engines", body.Boss.Engines)
	return body
}

func newBossPart(w *game.World, normal, damaged string, x, y float64, core bool) *components.Entity {
	e := newPulsing(w, components.KindBossPart, w.Images.Image(normal), x, y, true)
	e.Part = &components.BossPartState{
		Core:    core,
		Health:  config.BossPartHealth,
		Normal:  e.Pulse.Source,
		Damaged: w.Images.Image(damaged),
	}
	return e
}

func newPulsing(w *game.World, kind components.Kind, img *image.NRGBA, x, y float64, solid bool) *components.Entity {
	e := &components.Entity{
		Kind:       kind,
		Group:      components.GroupBoss,
		SceneOwned: true,
		Body:       components.NewBody(x, y, img, solid),
		Pulse: &components.PulseState{
			Source:    img,
			Amplitude: config.BossPulseAmplitude,
			Offset:    config.BossPulseOffset,
			Divisor:   config.BossPulseDivisor,
		},
	}
	w.Spawn(e)
	return e
}
