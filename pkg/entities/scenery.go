package entities

import (
	"image"

	"github.com/gonewx/starfall/pkg/components"
	"github.com/gonewx/starfall/pkg/config"
	"github.com/gonewx/starfall/pkg/game"
)

// NewSprite 创建以 (x, y) 为中心的静态图像
func NewSprite(w *game.World, img *image.NRGBA, x, y float64) *components.Entity {
	e := &components.Entity{
		Kind:       components.KindSprite,
		Group:      components.GroupSprites,
		SceneOwned: true,
		Body:       components.NewBody(x, y, img, false),
	}
	w.Spawn(e)
	return e
}

// NewSpriteAt 创建左上角位于 (x, y) 的静态图像
func NewSpriteAt(w *game.World, img *image.NRGBA, x, y int) *components.Entity {
	e := NewSprite(w, img, 0, 0)
	e.Body.MoveRectTo(x, y)
	return e
}

// NewBackground 创建两块首尾相接的滚动背景
//
// 两块共享同一个 Scroller：第一块位于 Y，第二块位于 Y-Limit。
// Boss 关卡的背景额外以 30 帧/秒循环播放动画。
func NewBackground(w *game.World, boss bool) *components.Scroller {
	scroll := &components.Scroller{
		Speed: config.BackgroundSpeed,
		Limit: config.BackgroundWrap,
	}
	var frame *image.NRGBA
	if boss {
		scroll.Anim = components.NewAnimationStrip(w.Images.Frames(game.ImgBossBackground), config.BossBackgroundFPS)
		frame = scroll.Anim.Frame()
	} else {
		frame = w.Images.Image(game.ImgBackground)
	}

	for i := 0; i < 2; i++ {
		tile := &components.Entity{
			Kind:       components.KindBackground,
			Group:      components.GroupBackground,
			SceneOwned: true,
			Body:       components.NewBody(0, 0, frame, false),
			Tile:       &components.BackgroundTile{Scroll: scroll, Index: i},
		}
		tile.Body.MoveRectTo(0, -i*int(scroll.Limit))
		w.Spawn(tile)
	}
	return scroll
}

// NewPulse 创建以 (x, y) 为中心周期缩放的图像
func NewPulse(w *game.World, img *image.NRGBA, x, y, amplitude, offset, divisor float64) *components.Entity {
	e := &components.Entity{
		Kind:       components.KindPulse,
		Group:      components.GroupSprites,
		SceneOwned: true,
		Body:       components.NewBody(x, y, img, false),
		Pulse: &components.PulseState{
			Source:    img,
			Amplitude: amplitude,
			Offset:    offset,
			Divisor:   divisor,
		},
	}
	w.Spawn(e)
	return e
}

// NewLogo 标题画面中央的脉动 Logo
func NewLogo(w *game.World) *components.Entity {
	return NewPulse(w, w.Images.Image(game.ImgLogo),
		float64(w.Screen.X/2), float64(w.Screen.Y/2),
		config.LogoPulseAmplitude, config.LogoPulseOffset, config.LogoPulseDivisor)
}
