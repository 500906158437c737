package scenes

import (
	"image"

	"github.com/charmbracelet/log"

	"github.com/gonewx/starfall/internal/raster"
	"github.com/gonewx/starfall/pkg/components"
	"github.com/gonewx/starfall/pkg/config"
	"github.com/gonewx/starfall/pkg/entities"
	"github.com/gonewx/starfall/pkg/game"
)

// StartScene 标题画面
//
// 淡入完成后显示文字；确认键开始游戏，重置键把进度清回第一关。
type StartScene struct {
	base

	scroll *components.Scroller
	logo   *components.Entity
	digit  *components.Entity
	texts  []*components.Entity
}

// NewStartScene 创建标题画面
func NewStartScene(s *game.Session) *StartScene {
	return &StartScene{base: base{session: s}}
}

func (sc *StartScene) Enter() {
	sc.init(game.StateStart, game.NewFadeIn(game.FadeBlack, config.FadeSpeed))
	w := sc.world
	img := w.Images

	sc.scroll = entities.NewBackground(w, false)
	sc.logo = entities.NewLogo(w)

	start := entities.NewSprite(w, img.Image(game.ImgStartText), float64(w.Screen.X/2), float64(w.Screen.Y/4*3))
	controls := entities.NewSpriteAt(w, img.Image(game.ImgControls), config.ControlsX, config.ControlsY)
	label := entities.NewSprite(w, img.Image(game.ImgCurrentLevel), float64(w.Screen.X/4*3-100), float64(w.Screen.Y/3))
	sc.digit = entities.NewSprite(w, sc.digitImage(), float64(w.Screen.X/4*3), float64(w.Screen.Y/3-5))
	sc.texts = []*components.Entity{start, controls, label, sc.digit}
	sc.setTextsVisible(false)

	w.Audio.PlayMusic(sc.session.Levels.StartMusic)
	log.Debug("[StartScene] entered", "level", sc.session.Level())
}

func (sc *StartScene) Update(in game.InputFrame) {
	w := sc.world
	switch {
	case sc.confirmed(in):
		sc.setTextsVisible(false)
		sc.scroll.Speed = 0
		sc.logo.Pulse.Stopped = true
		w.Audio.StopMusic()
		w.Audio.PlaySound(game.SoundStart)
		w.BeginFadeOut(game.StateGame, game.FadeBlack, config.FadeSpeed)
	case in.Pressed(game.ActionRestart) && w.Fade.Idle():
		game.Restart(w.Audio, game.SoundDeleteData)
		sc.session.Save.Level = 1
		sc.refreshDigit()
		log.Info("[StartScene] progress reset to level 1")
	}

	sc.sim.Step(in)

	if w.Fade.Loaded {
		sc.setTextsVisible(true)
		w.Fade.Loaded = false
	}
}

func (sc *StartScene) Exit() {}

func (sc *StartScene) setTextsVisible(v bool) {
	for _, e := range sc.texts {
		e.Body.Visible = v
	}
}

// digitImage 当前关卡的数字帧，缩放为固定尺寸
func (sc *StartScene) digitImage() *image.NRGBA {
	frames := sc.world.Images.Frames(game.ImgLevelDigits)
	if len(frames) == 0 {
		return nil
	}
	i := max(0, min(sc.session.Level()-1, len(frames)-1))
	return raster.Scale(frames[i], config.LevelDigitSize, config.LevelDigitSize)
}

func (sc *StartScene) refreshDigit() {
	sc.digit.Body.SetFrame(sc.digitImage())
}
