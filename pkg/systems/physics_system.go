package systems

import (
	"github.com/charmbracelet/log"

	"github.com/gonewx/starfall/pkg/components"
	"github.com/gonewx/starfall/pkg/config"
	"github.com/gonewx/starfall/pkg/game"
)

// PhysicsSystem 处理危险物与玩家、投射物与 Boss 之间的碰撞
// 碰撞在发生的同一帧内结算
type PhysicsSystem struct {
	world *game.World
}

// NewPhysicsSystem 创建碰撞系统
func NewPhysicsSystem(w *game.World) *PhysicsSystem {
	return &PhysicsSystem{world: w}
}

// CheckPlayerHit 危险物与玩家的像素掩码重叠时结算一次受击
//
// 返回:
//   - bool: 玩家是否受到伤害
func (ps *PhysicsSystem) CheckPlayerHit(hazard *components.Entity) bool {
	p := ps.world.Player()
	if p == nil || !p.Body.Collides(hazard.Body) {
		return false
	}
	return ps.HitPlayer(hazard)
}

// HitPlayer 不做掩码检测，直接结算危险物对玩家的一次命中
//
// 玩家处于无敌或已被击败时忽略命中，危险物保留。
// 否则危险物总会被销毁；转场进行中不扣血。
// 生命大于 1 时扣一点并进入无敌窗口，否则玩家被击败并淡出到失败画面。
func (ps *PhysicsSystem) HitPlayer(hazard *components.Entity) bool {
	w := ps.world
	p := w.Player()
	if p == nil || p.Player.Invulnerable || p.Player.Defeated {
		return false
	}
	defer ps.destroyHazard(hazard)

	if w.Fade.Phase != game.FadeIdle {
		return false
	}

	st := p.Player
	st.HitsTaken++
	if st.Health > 1 {
		st.Health--
		w.Audio.PlaySound(game.SoundHit)
		st.Invulnerable = true
		st.HitTime = w.Now()
		st.ShakeDist = config.ShakeBurst
		log.Debug("[Physics] player hit", "by", hazard.Kind, "health", st.Health)
		return true
	}

	st.Health = 0
	st.Defeated = true
	w.BeginFadeOut(game.StateGameOver, game.FadeBlack, config.FadeSpeed)
	log.Debug("[Physics] player defeated", "by", hazard.Kind, "hits", st.HitsTaken)
	return true
}

// CheckBossHit 投射物命中存活的 Boss 部件时扣减部件生命
//
// 核心在所有引擎被摧毁前免疫伤害，但仍会吸收投射物。
// 部件生命归零时播放爆炸音效并触发镜头抖动。
func (ps *PhysicsSystem) CheckBossHit(projectile *components.Entity) {
	w := ps.world
	boss := w.Boss()
	if !w.BossFight || boss == nil {
		return
	}
	for _, id := range boss.Boss.Parts() {
		part, ok := w.Entity(id)
		if !ok || part.Part.Health <= 0 || !w.Alive(projectile.ID) || !part.Body.Collides(projectile.Body) {
			continue
		}
		if !part.Part.Core || enginesDown(w, boss) {
			pulse(w, part, true)
			game.Restart(w.Audio, game.SoundBossHit)
			part.Part.Health--
			if part.Part.Health <= 0 {
				part.Part.Health = 0
				game.Restart(w.Audio, game.SoundBossExplode)
				if p := w.Player(); p != nil {
					p.Player.HitTime = w.Now()
					p.Player.ShakeDist = config.ShakeBurst
				}
				log.Debug("[Physics] boss part destroyed", "id", part.ID, "core", part.Part.Core)
			}
		}
		w.Destroy(projectile.ID)
	}
}

// enginesDown 所有引擎生命是否已归零
func enginesDown(w *game.World, boss *components.Entity) bool {
	for _, id := range boss.Boss.Engines {
		if e, ok := w.Entity(id); ok && e.Part.Health > 0 {
			return false
		}
	}
	return true
}

// destroyHazard 销毁危险物及其附属实体
func (ps *PhysicsSystem) destroyHazard(e *components.Entity) {
	destroyWithCompanion(ps.world, e)
}

func destroyWithCompanion(w *game.World, e *components.Entity) {
	switch {
	case e.Hole != nil:
		w.Destroy(e.Hole.Cloud)
	case e.Turret != nil:
		w.Destroy(e.Turret.Handle)
	}
	w.Destroy(e.ID)
}
