package game

import (
	"image"

	"github.com/gonewx/starfall/pkg/config"
)

// Borders 玩家活动范围的四条边界
// 包围盒触及 Top/Left 时贴到边界内侧，超出 Bottom/Right 时右下角贴回边界
type Borders struct {
	Top, Left, Bottom, Right int
}

// NormalBorders 普通关卡的边界，与屏幕边缘一致
func NormalBorders() Borders {
	return Borders{
		Top:    config.BorderTop,
		Left:   config.BorderLeft,
		Bottom: config.BorderBottom,
		Right:  config.BorderRight,
	}
}

// BossBorders Boss 关卡的边界，上方和两侧留给 Boss
func BossBorders() Borders {
	return Borders{
		Top:    config.BossBorderTop,
		Left:   config.BossBorderLeft,
		Bottom: config.BorderBottom,
		Right:  config.BossBorderRight,
	}
}

// Clamp 将矩形推回边界内，尺寸不变
func (b Borders) Clamp(r image.Rectangle) image.Rectangle {
	w, h := r.Dx(), r.Dy()
	pos := r.Min
	if r.Min.Y <= b.Top {
		pos.Y = b.Top + 1
	} else if r.Max.Y > b.Bottom {
		pos.Y = b.Bottom - h
	}
	if r.Min.X <= b.Left {
		pos.X = b.Left + 1
	} else if r.Max.X > b.Right {
		pos.X = b.Right - w
	}
	return image.Rectangle{Min: pos, Max: pos.Add(image.Pt(w, h))}
}
