package components

import (
	"image"
	"math"
)

// AnimationStrip 按固定速率推进的帧序列
//
// Cursor 为小数帧游标，每帧增加 Speed/FPS。越界时按帧数整倍回绕，
// 保留小数部分，非整数速率下循环依然平滑。
type AnimationStrip struct {
	Frames []*image.NRGBA
	Speed  float64 // 每秒推进的帧数，0 表示静止
	Cursor float64
	Hold   bool // 为 true 时播放到最后一帧后停住
}

// NewAnimationStrip 创建动画条
func NewAnimationStrip(frames []*image.NRGBA, speed float64) *AnimationStrip {
	return &AnimationStrip{Frames: frames, Speed: speed}
}

// Advance 推进一帧
// 返回帧索引是否发生变化
func (a *AnimationStrip) Advance(fps int) bool {
	n := len(a.Frames)
	if a.Speed == 0 || n == 0 || fps <= 0 {
		return false
	}
	prev := a.Index()
	a.Cursor += a.Speed / float64(fps)
	if a.Cursor >= float64(n) {
		a.Cursor -= math.Floor(a.Cursor/float64(n)) * float64(n)
	}
	if a.Hold && a.Index() == n-1 {
		a.Speed = 0
	}
	return a.Index() != prev
}

// Index 当前帧索引，始终位于 [0, len(Frames))
func (a *AnimationStrip) Index() int {
	n := len(a.Frames)
	if n == 0 {
		return 0
	}
	i := int(a.Cursor)
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Frame 当前帧图像
func (a *AnimationStrip) Frame() *image.NRGBA {
	if len(a.Frames) == 0 {
		return nil
	}
	return a.Frames[a.Index()]
}

// Finished 停在最后一帧的动画
func (a *AnimationStrip) Finished() bool {
	return a.Hold && a.Speed == 0 && a.Index() == len(a.Frames)-1
}
