package game

import (
	"image"
	"math/rand"

	"github.com/gonewx/starfall/pkg/components"
	"github.com/gonewx/starfall/pkg/config"
	"github.com/gonewx/starfall/pkg/ecs"
)

// World 单个场景的全部模拟状态
//
// 每个场景拥有独立的 World，场景切换时整体丢弃，
// 不存在跨场景的全局可变状态。
type World struct {
	Entities *ecs.EntityManager[*components.Entity]
	Clock    *Clock
	Camera   Camera
	Borders  Borders
	Fade     *Fade
	State    SceneState
	Rand     *rand.Rand
	Audio    AudioSink
	Images   ImageSource
	Screen   image.Point

	Level     int
	BossFight bool
	PlayerID  ecs.EntityID
	BossID    ecs.EntityID
}

// WorldOptions 创建 World 的参数
type WorldOptions struct {
	FPS    int
	State  SceneState
	Rand   *rand.Rand
	Audio  AudioSink
	Images ImageSource
}

// NewWorld 创建空场景
// Audio 为 nil 时使用 AudioRecorder，Rand 为 nil 时使用固定种子
func NewWorld(opts WorldOptions) *World {
	if opts.FPS <= 0 {
		opts.FPS = config.DefaultFPS
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}
	if opts.Audio == nil {
		opts.Audio = &AudioRecorder{}
	}
	return &World{
		Entities: ecs.NewEntityManager[*components.Entity](),
		Clock:    NewClock(opts.FPS),
		Borders:  NormalBorders(),
		Fade:     &Fade{},
		State:    opts.State,
		Rand:     opts.Rand,
		Audio:    opts.Audio,
		Images:   opts.Images,
		Screen:   image.Pt(config.ScreenWidth, config.ScreenHeight),
	}
}

// FPS 每秒帧数
func (w *World) FPS() int {
	return w.Clock.FPS()
}

// Now 当前时钟（毫秒）
func (w *World) Now() float64 {
	return w.Clock.Now()
}

// Spawn 加入实体并回填其 ID
func (w *World) Spawn(e *components.Entity) ecs.EntityID {
	id := w.Entities.CreateEntity(e)
	e.ID = id
	return id
}

// Destroy 标记实体销毁，帧末统一移除
func (w *World) Destroy(id ecs.EntityID) {
	w.Entities.DestroyEntity(id)
}

// Entity 返回存活的实体
func (w *World) Entity(id ecs.EntityID) (*components.Entity, bool) {
	if id == ecs.InvalidEntity {
		return nil, false
	}
	return w.Entities.Get(id)
}

// Alive 实体是否存活
func (w *World) Alive(id ecs.EntityID) bool {
	return id != ecs.InvalidEntity && w.Entities.IsAlive(id)
}

// Player 返回存活的玩家实体
func (w *World) Player() *components.Entity {
	e, ok := w.Entity(w.PlayerID)
	if !ok || e.Player == nil {
		return nil
	}
	return e
}

// Boss 返回存活的 Boss 主体
func (w *World) Boss() *components.Entity {
	e, ok := w.Entity(w.BossID)
	if !ok || e.Boss == nil {
		return nil
	}
	return e
}

// Group 按创建顺序返回某分组中的存活实体
func (w *World) Group(g components.Group) []*components.Entity {
	return w.Entities.Filter(func(e *components.Entity) bool {
		return e.Group == g
	})
}

// Kind 按创建顺序返回某种类的存活实体
func (w *World) Kind(k components.Kind) []*components.Entity {
	return w.Entities.Filter(func(e *components.Entity) bool {
		return e.Kind == k
	})
}

// DestroySceneOwned 销毁所有随场景淡出的实体
func (w *World) DestroySceneOwned() {
	w.Entities.Each(func(id ecs.EntityID, e *components.Entity) {
		if e.SceneOwned {
			w.Entities.DestroyEntity(id)
		}
	})
}

// UpdateFade 推进转场遮罩，淡出完成时销毁场景实体并切换状态
func (w *World) UpdateFade() {
	if w.Fade.Update(w.FPS()) {
		w.DestroySceneOwned()
		w.State = w.Fade.Next
	}
}

// BeginFadeOut 开始淡出到 next
func (w *World) BeginFadeOut(next SceneState, c FadeColor, speed float64) bool {
	return w.Fade.BeginFadeOut(next, c, speed)
}

// Flush 移除本帧标记销毁的实体
func (w *World) Flush() {
	w.Entities.RemoveMarkedEntities()
}
