// Package scenes 实现开始、游戏、失败和胜利四个画面
package scenes

import (
	"github.com/gonewx/starfall/pkg/game"
	"github.com/gonewx/starfall/pkg/systems"
)

// Scene 即 game.Scene
type Scene = game.Scene

// NewScene 按状态创建场景，StateQuit 没有对应场景
// 签名与 game.SceneFactory 一致
func NewScene(state game.SceneState, s *game.Session) game.Scene {
	switch state {
	case game.StateStart:
		return NewStartScene(s)
	case game.StateGame:
		return NewGameScene(s)
	case game.StateGameOver:
		return NewGameOverScene(s)
	case game.StateWin:
		return NewWinScene(s)
	}
	return nil
}

// base 各场景共用的 World 和模拟
type base struct {
	session *game.Session
	world   *game.World
	sim     *systems.Simulation
}

// init 创建场景的 World 并以 fade 开始
func (b *base) init(state game.SceneState, fade *game.Fade) {
	b.world = b.session.NewWorld(state)
	b.world.Fade = fade
	b.sim = systems.NewSimulation(b.world, nil)
}

func (b *base) World() *game.World {
	return b.world
}

func (b *base) Draw(surface game.Surface) {
	if b.sim != nil {
		b.sim.Draw(surface)
	}
}

// confirmed 转场静止时按下确认键
func (b *base) confirmed(in game.InputFrame) bool {
	return in.Pressed(game.ActionConfirm) && b.world.Fade.Idle()
}
