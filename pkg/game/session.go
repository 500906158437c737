package game

import (
	"context"
	"image"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/gonewx/starfall/pkg/config"
	"github.com/gonewx/starfall/pkg/storage"
)

// RunRecorder 对局记录的写入端
type RunRecorder interface {
	Record(ctx context.Context, r storage.RunRecord) (int64, error)
}

// Session 跨场景共享的数据
//
// 只保存场景之间需要传递的内容：存档进度、最后一次玩家位置、
// 资源和输出设备。场景内部状态全部位于各自的 World 中。
type Session struct {
	FPS       int
	Save      *SaveData
	Store     SaveStore
	Records   RunRecorder
	Levels    *config.LevelManifest
	LevelsDir string
	Images    ImageSource
	Audio     AudioSink
	Rand      *rand.Rand
	RunID     string

	// LastPlayerRect 失败画面在此处绘制残骸
	LastPlayerRect image.Rectangle

	// FadeColor 上一场景淡出所用的颜色，下一场景以同色淡入
	FadeColor FadeColor
	Running   bool
}

// SessionOptions 创建会话的参数
type SessionOptions struct {
	FPS       int
	Store     SaveStore
	Records   RunRecorder
	Levels    *config.LevelManifest
	LevelsDir string
	Images    ImageSource
	Audio     AudioSink
	Seed      int64
}

// NewSession 创建会话并读取存档
// 存档读取失败时记录警告并从第一关开始
func NewSession(opts SessionOptions) *Session {
	if opts.FPS <= 0 {
		opts.FPS = config.DefaultFPS
	}
	if opts.Store == nil {
		opts.Store = &MemoryStore{}
	}
	if opts.Levels == nil {
		opts.Levels = config.DefaultLevelManifest()
	}
	if opts.Audio == nil {
		opts.Audio = &AudioRecorder{}
	}

	save, err := opts.Store.Load()
	if err != nil {
		log.Warn("[Session] failed to load progress, starting from level 1", "err", err)
	}
	if save == nil {
		save = DefaultSaveData()
	}
	save.ClampLevel(opts.Levels.Count())

	return &Session{
		FPS:       opts.FPS,
		Save:      save,
		Store:     opts.Store,
		Records:   opts.Records,
		Levels:    opts.Levels,
		LevelsDir: opts.LevelsDir,
		Images:    opts.Images,
		Audio:     opts.Audio,
		Rand:      rand.New(rand.NewSource(opts.Seed)),
		RunID:     uuid.NewString(),
		Running:   true,
	}
}

// NewWorld 为场景创建共享会话资源的 World
func (s *Session) NewWorld(state SceneState) *World {
	return NewWorld(WorldOptions{
		FPS:    s.FPS,
		State:  state,
		Rand:   s.Rand,
		Audio:  s.Audio,
		Images: s.Images,
	})
}

// Level 当前关卡
func (s *Session) Level() int {
	return s.Save.Level
}

// LevelCount 关卡总数
func (s *Session) LevelCount() int {
	return s.Levels.Count()
}

// Record 写入对局记录，失败只记录日志
func (s *Session) Record(r storage.RunRecord) {
	if s.Records == nil {
		return
	}
	r.RunID = s.RunID
	if _, err := s.Records.Record(context.Background(), r); err != nil {
		log.Warn("[Session] failed to record run", "level", r.Level, "outcome", r.Outcome, "err", err)
		return
	}
	log.Debug("[Session] run recorded", "level", r.Level, "outcome", r.Outcome, "duration_ms", r.DurationMs)
}

// Persist 保存进度，失败只记录日志
func (s *Session) Persist() {
	if err := s.Store.Save(s.Save); err != nil {
		log.Error("[Session] failed to save progress", "err", err)
	}
}
