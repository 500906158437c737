package scenes

import (
	"github.com/charmbracelet/log"

	"github.com/gonewx/starfall/internal/raster"
	"github.com/gonewx/starfall/pkg/config"
	"github.com/gonewx/starfall/pkg/entities"
	"github.com/gonewx/starfall/pkg/game"
)

// WinScene 胜利画面
//
// 进入时关卡号已经加一。仍有后续关卡时确认键进入下一关；
// 通关全部关卡后显示最终画面，进度钳制回最后一关，只能退出。
type WinScene struct {
	base

	final bool
}

// NewWinScene 创建胜利画面
func NewWinScene(s *game.Session) *WinScene {
	return &WinScene{base: base{session: s}}
}

func (sc *WinScene) Enter() {
	s := sc.session
	sc.init(game.StateWin, game.NewFadeIn(game.FadeWhite, config.FadeSpeedScreen))
	w := sc.world

	name := game.ImgWinScreen
	if s.Level() > s.LevelCount() {
		sc.final = true
		name = game.ImgGameWonScreen
		s.Save.Level = s.LevelCount()
		w.Audio.PlaySound(game.SoundYouWon)
		log.Info("[WinScene] campaign completed")
	} else {
		w.Audio.PlaySound(game.SoundWin)
	}

	if img := w.Images.Image(name); img != nil {
		img = raster.Scale(img, w.Screen.X, w.Screen.Y)
		entities.NewSprite(w, img, float64(w.Screen.X/2), float64(w.Screen.Y/2))
	}
}

// Final 是否为通关画面
func (sc *WinScene) Final() bool {
	return sc.final
}

func (sc *WinScene) Update(in game.InputFrame) {
	w := sc.world
	if !sc.final && sc.confirmed(in) {
		w.Audio.PlaySound(game.SoundStart)
		w.BeginFadeOut(game.StateGame, game.FadeWhite, config.FadeSpeedScreen)
	}
	sc.sim.Step(in)
}

func (sc *WinScene) Exit() {}
