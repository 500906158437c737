package game

// FadePhase 转场遮罩阶段
type FadePhase int

const (
	FadeIdle FadePhase = iota
	FadeIn
	FadeOut
)

// FadeColor 遮罩颜色
type FadeColor int

const (
	FadeBlack FadeColor = iota
	FadeWhite
)

// Fade 全屏转场遮罩
//
// 淡入：透明度从 255 递减到 0，结束时 Loaded 置位。
// 淡出：透明度从 0 递增到 255，结束时切换到 Next 状态。
// 每帧的透明度向下取整保存，与整数透明度的图像表面一致。
type Fade struct {
	Phase  FadePhase
	Alpha  float64
	Speed  float64 // 透明度/秒
	Color  FadeColor
	Loaded bool
	Next   SceneState
}

// NewFadeIn 创建从不透明开始淡入的遮罩
func NewFadeIn(c FadeColor, speed float64) *Fade {
	return &Fade{Phase: FadeIn, Alpha: 255, Speed: speed, Color: c}
}

// Idle 遮罩是否静止
func (f *Fade) Idle() bool {
	return f.Phase == FadeIdle
}

// BeginFadeOut 开始淡出到 next 状态
// 已在淡出时忽略，返回是否生效
func (f *Fade) BeginFadeOut(next SceneState, c FadeColor, speed float64) bool {
	if f.Phase == FadeOut {
		return false
	}
	f.Phase = FadeOut
	f.Alpha = 0
	f.Color = c
	f.Speed = speed
	f.Next = next
	return true
}

// Update 推进一帧，淡出完成时返回 true
func (f *Fade) Update(fps int) bool {
	switch f.Phase {
	case FadeIn:
		a := f.Alpha - f.Speed/float64(fps)
		if a <= 0 {
			a = 0
			f.Phase = FadeIdle
			f.Loaded = true
		}
		f.Alpha = float64(int(a))
	case FadeOut:
		a := f.Alpha + f.Speed/float64(fps)
		done := false
		if a >= 255 {
			a = 255
			f.Phase = FadeIdle
			done = true
		}
		f.Alpha = float64(int(a))
		return done
	}
	return false
}
