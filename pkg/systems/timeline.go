package systems

import (
	"github.com/charmbracelet/log"

	"github.com/gonewx/starfall/pkg/config"
	"github.com/gonewx/starfall/pkg/entities"
	"github.com/gonewx/starfall/pkg/game"
)

// Timeline 按关卡时钟生成危险物
type Timeline interface {
	Update(w *game.World)
}

// ScriptedTimeline 按脚本表触发事件
// 时间已到的事件在同一帧内按表中顺序全部触发，每个事件只触发一次
type ScriptedTimeline struct {
	pending []config.LevelEvent
}

// NewScriptedTimeline 以事件表创建时间轴（复制输入）
func NewScriptedTimeline(events []config.LevelEvent) *ScriptedTimeline {
	pending := make([]config.LevelEvent, len(events))
	copy(pending, events)
	return &ScriptedTimeline{pending: pending}
}

// Update 触发所有 Time <= 当前时钟的事件
func (t *ScriptedTimeline) Update(w *game.World) {
	now := w.Now()
	kept := t.pending[:0]
	var due []config.LevelEvent
	for _, ev := range t.pending {
		if ev.Time <= now {
			due = append(due, ev)
		} else {
			kept = append(kept, ev)
		}
	}
	t.pending = kept
	for _, ev := range due {
		Fire(w, ev)
	}
}

// Pending 尚未触发的事件数
func (t *ScriptedTimeline) Pending() int {
	return len(t.pending)
}

// ProceduralTimeline 每隔 Interval 毫秒随机生成一个危险物
// 第一个危险物在时钟开始后的第一帧生成
type ProceduralTimeline struct {
	bounds config.SpawnBounds
	next   float64
}

// NewProceduralTimeline 创建随机时间轴
func NewProceduralTimeline(bounds config.SpawnBounds) *ProceduralTimeline {
	return &ProceduralTimeline{bounds: bounds}
}

// Update 每帧至多生成一个危险物
func (t *ProceduralTimeline) Update(w *game.World) {
	if t.next > w.Now() {
		return
	}
	Fire(w, config.RollEvent(w.Rand, t.bounds, t.next))
	t.next += t.bounds.Interval
}

// Fire 执行单个关卡事件
// win 事件以白色遮罩淡出到胜利画面，已在淡出中时忽略
func Fire(w *game.World, ev config.LevelEvent) {
	x, y := float64(ev.X), float64(ev.Y)
	switch ev.Type {
	case config.EventStar:
		entities.NewStar(w, x, y, float64(ev.Speed), float64(ev.RotSpd))
	case config.EventBlackHole:
		entities.NewBlackHole(w, x, y, float64(ev.Speed))
	case config.EventTurret:
		entities.NewTurret(w, x, y)
	case config.EventWin:
		if w.BeginFadeOut(game.StateWin, game.FadeWhite, config.FadeSpeed) {
			log.Info("[Timeline] level cleared", "level", w.Level, "at", w.Now())
		}
		return
	default:
		log.Warn("[Timeline] unknown event", "type", ev.Type)
		return
	}
	log.Debug("[Timeline] event fired", "type", ev.Type, "time", ev.Time, "now", w.Now())
}
