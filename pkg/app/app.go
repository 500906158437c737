// Package app 提供游戏应用的核心包装器
//
// 该包负责启动阶段的资源校验与组装，并将场景管理器接入 ebiten.Game 循环。
// 启动阶段的任何资源缺失都以错误返回，由 cmd/starfall 打印后以状态码 1 退出。
package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/starfall/pkg/assets"
	"github.com/gonewx/starfall/pkg/config"
	"github.com/gonewx/starfall/pkg/game"
	"github.com/gonewx/starfall/pkg/media"
	"github.com/gonewx/starfall/pkg/scenes"
	"github.com/gonewx/starfall/pkg/storage"
)

// AppName gdata 存档目录名
const AppName = "starfall"

// WindowTitle 窗口标题
const WindowTitle = "Starfall"

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg          *config.GameConfig
	session      *game.Session
	sceneManager *game.SceneManager
	renderer     *media.Renderer
	input        game.InputSource
	audio        *media.AudioManager
	records      *storage.Store

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 校验资源并组装游戏
//
// 参数:
//   - cfg: 已校验的运行参数
//
// 返回:
//   - *App: 已进入开始画面的应用
//   - error: 资源清单、图像、音频或关卡脚本表缺失时返回，错误中带有资源名
func NewApp(cfg *config.GameConfig) (*App, error) {
	rm, err := LoadResources(cfg)
	if err != nil {
		return nil, err
	}

	levels, err := LoadLevels(cfg)
	if err != nil {
		return nil, err
	}

	store := openSaveStore(cfg)

	// 对局记录不可用时游戏照常运行
	records, err := storage.Open(cfg.RecordsDB)
	if err != nil {
		log.Warn("[App] run records disabled", "path", cfg.RecordsDB, "err", err)
		records = nil
	}

	audioManager := media.NewAudioManager(audio.NewContext(media.SampleRate), rm)
	audioManager.SetVolumes(cfg.MusicVolume, cfg.SoundVolume)
	log.Debug("[App] AudioManager initialized")

	opts := game.SessionOptions{
		FPS:       cfg.FPS,
		Store:     store,
		Levels:    levels,
		LevelsDir: cfg.LevelsDir,
		Images:    rm,
		Audio:     audioManager,
		Seed:      cfg.Seed,
	}
	if records != nil {
		opts.Records = records
	}
	session := game.NewSession(opts)

	sceneManager := game.NewSceneManager(session, scenes.NewScene)
	log.Info("[App] starting", "level", session.Level(), "levels", session.LevelCount(), "run_id", session.RunID)
	sceneManager.Start(game.StateStart)

	return &App{
		cfg:          cfg,
		session:      session,
		sceneManager: sceneManager,
		renderer:     media.NewRenderer(),
		input:        media.NewKeyboardInput(nil),
		audio:        audioManager,
		records:      records,
	}, nil
}

// LoadResources 读取资源清单并预加载全部资源
func LoadResources(cfg *config.GameConfig) (*assets.ResourceManager, error) {
	fsys := os.DirFS(cfg.AssetsDir)
	manifest, err := assets.LoadManifest(fsys, cfg.ResourceManifest)
	if err != nil {
		return nil, &assets.AssetError{Name: "resource manifest", Path: cfg.ResourceManifest, Err: err}
	}
	rm := assets.NewResourceManager(fsys, manifest)
	if err := rm.Preload(); err != nil {
		return nil, err
	}
	return rm, nil
}

// LoadLevels 读取关卡清单并确认固定脚本表存在
// 清单文件不存在时使用默认五关战役
func LoadLevels(cfg *config.GameConfig) (*config.LevelManifest, error) {
	levels, err := config.LoadLevelManifest(cfg.LevelManifest)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		log.Warn("[App] level manifest not found, using built-in campaign", "path", cfg.LevelManifest)
		levels = config.DefaultLevelManifest()
	}
	if err := levels.CheckTables(cfg.LevelsDir); err != nil {
		return nil, err
	}
	return levels, nil
}

// openSaveStore gdata 不可用时退回到 save_path 指定的文件
func openSaveStore(cfg *config.GameConfig) game.SaveStore {
	if cfg.SaveBackend == config.SaveBackendFile {
		return game.NewFileStore(cfg.SavePath)
	}
	store, err := game.NewGdataStore(AppName)
	if err != nil {
		log.Warn("[App] gdata unavailable, saving to file", "path", cfg.SavePath, "err", err)
		return game.NewFileStore(cfg.SavePath)
	}
	return store
}

// Run 打开窗口并运行到退出
func (a *App) Run() error {
	w := int(float64(config.ScreenWidth) * a.cfg.WindowScale)
	h := int(float64(config.ScreenHeight) * a.cfg.WindowScale)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetTPS(a.cfg.FPS)
	ebiten.SetWindowClosingHandled(true)

	defer a.Close()
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}

// Close 保存进度并释放音频和数据库
func (a *App) Close() {
	a.sceneManager.Shutdown()
	a.audio.Close()
	if a.records != nil {
		if err := a.records.Close(); err != nil {
			log.Warn("[App] failed to close run records", "err", err)
		}
	}
}

// Update 更新游戏逻辑
// 每个 tick 调用一次，频率为配置中的 fps
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		log.Info("[App] window closed")
		a.sceneManager.Shutdown()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(int(float64(config.ScreenWidth)*a.cfg.WindowScale), int(float64(config.ScreenHeight)*a.cfg.WindowScale))
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Debug("[App] exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(a.input.Poll())
	if !a.sceneManager.Running() {
		return ebiten.Termination
	}
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Begin(screen)
	a.sceneManager.Draw(a.renderer)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// Session 返回跨场景会话
func (a *App) Session() *game.Session {
	return a.session
}
