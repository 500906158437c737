package media

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/starfall/pkg/game"
)

// DefaultKeyMap 默认按键映射
var DefaultKeyMap = map[game.Action][]ebiten.Key{
	game.ActionUp:      {ebiten.KeyArrowUp},
	game.ActionDown:    {ebiten.KeyArrowDown},
	game.ActionLeft:    {ebiten.KeyArrowLeft},
	game.ActionRight:   {ebiten.KeyArrowRight},
	game.ActionSlow:    {ebiten.KeyX},
	game.ActionConfirm: {ebiten.KeyZ},
	game.ActionRestart: {ebiten.KeyDelete},
	game.ActionQuit:    {ebiten.KeyEscape},
}

// KeyboardInput 每帧读取键盘的按下和松开边沿
type KeyboardInput struct {
	keys map[game.Action][]ebiten.Key
}

// NewKeyboardInput 创建键盘输入源，keys 为 nil 时使用 DefaultKeyMap
func NewKeyboardInput(keys map[game.Action][]ebiten.Key) *KeyboardInput {
	if keys == nil {
		keys = DefaultKeyMap
	}
	return &KeyboardInput{keys: keys}
}

// Poll 实现 game.InputSource，必须在 ebiten Update 中调用
func (k *KeyboardInput) Poll() game.InputFrame {
	var f game.InputFrame
	for action, keys := range k.keys {
		for _, key := range keys {
			if inpututil.IsKeyJustPressed(key) {
				f.Press(action)
			}
			if inpututil.IsKeyJustReleased(key) {
				f.Release(action)
			}
		}
	}
	return f
}
