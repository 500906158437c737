// Package systems 实现单个场景内每帧的模拟步骤
//
// 一帧的执行顺序固定为：时钟推进、时间轴、背景、普通精灵、Boss、玩家、
// 危险物、转场遮罩，最后回收本帧标记销毁的实体。
// 同一分组内按实体创建顺序更新；本帧新建的实体从下一帧开始更新。
package systems

import (
	"github.com/gonewx/starfall/pkg/components"
	"github.com/gonewx/starfall/pkg/game"
)

// EntitySystem 按种类处理单个实体的系统
type EntitySystem interface {
	Update(e *components.Entity)
}

// Simulation 组合全部系统，驱动一个 World
type Simulation struct {
	world    *game.World
	timeline Timeline

	Physics *PhysicsSystem
	Camera  *CameraSystem
	Player  *PlayerSystem
	Render  *RenderSystem

	byKind map[components.Kind]EntitySystem
}

// NewSimulation 为 w 创建模拟；timeline 可为 nil（无危险物生成的场景）
func NewSimulation(w *game.World, timeline Timeline) *Simulation {
	physics := NewPhysicsSystem(w)
	camera := NewCameraSystem(w)
	player := NewPlayerSystem(w, camera)
	star := NewStarSystem(w, physics)
	hole := NewBlackHoleSystem(w, physics)
	turret := NewTurretSystem(w, physics)
	scenery := NewScenerySystem(w)

	return &Simulation{
		world:    w,
		timeline: timeline,
		Physics:  physics,
		Camera:   camera,
		Player:   player,
		Render:   NewRenderSystem(w),
		byKind: map[components.Kind]EntitySystem{
			components.KindBackground:     scenery,
			components.KindPulse:          scenery,
			components.KindPlayer:         player,
			components.KindHealthBar:      player,
			components.KindStar:           star,
			components.KindShard:          star,
			components.KindBlackHole:      hole,
			components.KindBlackHoleCloud: hole,
			components.KindTurret:         turret,
			components.KindTurretHandle:   turret,
			components.KindBoss:           NewBossSystem(w),
		},
	}
}

// World 被驱动的场景
func (s *Simulation) World() *game.World {
	return s.world
}

// SetTimeline 替换时间轴，nil 表示停止生成
func (s *Simulation) SetTimeline(tl Timeline) {
	s.timeline = tl
}

// Step 推进一帧
func (s *Simulation) Step(in game.InputFrame) {
	w := s.world
	s.Player.ApplyInput(in)
	w.Clock.Tick()
	if s.timeline != nil {
		s.timeline.Update(w)
	}
	for _, g := range components.Groups() {
		for _, e := range w.Group(g) {
			if !w.Alive(e.ID) {
				continue
			}
			if sys, ok := s.byKind[e.Kind]; ok {
				sys.Update(e)
			}
		}
	}
	w.UpdateFade()
	w.Flush()
}

// Draw 绘制当前帧
func (s *Simulation) Draw(surface game.Surface) {
	s.Render.Draw(surface)
}
