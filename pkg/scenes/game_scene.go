package scenes

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/gonewx/starfall/pkg/components"
	"github.com/gonewx/starfall/pkg/config"
	"github.com/gonewx/starfall/pkg/entities"
	"github.com/gonewx/starfall/pkg/game"
	"github.com/gonewx/starfall/pkg/storage"
	"github.com/gonewx/starfall/pkg/systems"
)

// GameScene 关卡本身
//
// 普通关卡按脚本表生成危险物，Boss 关卡随机生成并加入 Boss 与更窄的边界。
// 场景以上一场景淡出的颜色淡入。
type GameScene struct {
	base

	spec   config.LevelSpec
	player *components.Entity
}

// NewGameScene 创建关卡画面
func NewGameScene(s *game.Session) *GameScene {
	return &GameScene{base: base{session: s}}
}

func (gs *GameScene) Enter() {
	s := gs.session
	gs.init(game.StateGame, game.NewFadeIn(s.FadeColor, config.FadeSpeed))
	w := gs.world
	w.Level = s.Level()
	gs.spec = s.Levels.Level(w.Level)

	gs.player = entities.NewPlayer(w, float64(w.Screen.X/2), float64(w.Screen.Y/2))
	entities.NewHealthBar(w, gs.player)

	if gs.spec.Boss {
		w.BossFight = true
		w.Borders = game.BossBorders()
		entities.NewBackground(w, true)
		entities.NewBoss(w)
	} else {
		entities.NewBackground(w, false)
	}

	timeline, err := gs.timeline()
	if err != nil {
		log.Error("[GameScene] failed to prepare level", "level", w.Level, "err", err)
		w.State = game.StateQuit
		return
	}
	gs.sim.SetTimeline(timeline)

	w.Audio.PlayMusic(gs.spec.Music)
	log.Info("[GameScene] level started", "level", w.Level, "mode", gs.spec.Mode, "boss", gs.spec.Boss)
}

// timeline 按关卡模式创建时间轴
// 标记为 generate 的脚本关卡每次进入都重新生成脚本表
func (gs *GameScene) timeline() (systems.Timeline, error) {
	spec := gs.spec
	if spec.Mode == config.ModeProcedural {
		return systems.NewProceduralTimeline(*spec.Spawn), nil
	}

	path := filepath.Join(gs.session.LevelsDir, spec.Table)
	if spec.Generate {
		bounds := config.DefaultGeneratorBounds()
		if spec.Spawn != nil {
			bounds = *spec.Spawn
		}
		events, err := config.WriteGeneratedTable(path, gs.world.Rand, bounds)
		if err != nil {
			log.Warn("[GameScene] failed to write generated level, playing it from memory", "level", spec.Number, "err", err)
			events = config.GenerateLevelTable(gs.world.Rand, bounds)
		}
		return systems.NewScriptedTimeline(events), nil
	}

	events, err := config.LoadLevelTable(spec.Number, path)
	if err != nil {
		return nil, err
	}
	return systems.NewScriptedTimeline(events), nil
}

func (gs *GameScene) Update(in game.InputFrame) {
	gs.sim.Step(in)
}

// Exit 停止音乐，胜利时推进关卡，并写入对局记录
// 进度只在内存中推进，退出游戏时统一保存
func (gs *GameScene) Exit() {
	s, w := gs.session, gs.world
	w.Audio.StopMusic()
	w.Audio.StopSound(game.SoundHit)
	w.Audio.StopSound(game.SoundStarExplode)

	outcome := storage.OutcomeQuit
	switch w.State {
	case game.StateWin:
		outcome = storage.OutcomeWin
		s.Save.Level++
	case game.StateGameOver:
		outcome = storage.OutcomeDefeat
	}

	hits := 0
	if gs.player != nil {
		s.LastPlayerRect = gs.player.Body.Rect
		hits = gs.player.Player.HitsTaken
	}
	s.Record(storage.RunRecord{
		Level:      w.Level,
		Outcome:    outcome,
		DurationMs: int64(w.Now()),
		HitsTaken:  hits,
	})
	log.Info("[GameScene] level finished", "level", w.Level, "outcome", outcome, "next", s.Level())
}
