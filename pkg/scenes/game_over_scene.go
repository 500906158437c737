package scenes

import (
	"github.com/gonewx/starfall/pkg/config"
	"github.com/gonewx/starfall/pkg/entities"
	"github.com/gonewx/starfall/pkg/game"
)

// GameOverScene 失败画面：在玩家最后的位置显示飞船残骸
type GameOverScene struct {
	base
}

// NewGameOverScene 创建失败画面
func NewGameOverScene(s *game.Session) *GameOverScene {
	return &GameOverScene{base: base{session: s}}
}

func (sc *GameOverScene) Enter() {
	s := sc.session
	sc.init(game.StateGameOver, game.NewFadeIn(s.FadeColor, config.FadeSpeed))
	w := sc.world
	at := s.LastPlayerRect.Min
	entities.NewSpriteAt(w, w.Images.Image(game.ImgPlayerBroken), at.X, at.Y)
	w.Audio.PlaySound(game.SoundDie)
}

// Update 确认键以白色遮罩慢速回到关卡
func (sc *GameOverScene) Update(in game.InputFrame) {
	w := sc.world
	if sc.confirmed(in) {
		w.Audio.StopMusic()
		w.Audio.PlaySound(game.SoundRevive)
		w.BeginFadeOut(game.StateGame, game.FadeWhite, config.FadeSpeedScreen)
	}
	sc.sim.Step(in)
}

func (sc *GameOverScene) Exit() {}
