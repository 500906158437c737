package game

// Action 逻辑输入动作，与具体按键解耦
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionSlow    // 按住减速
	ActionConfirm // 开始 / 继续
	ActionRestart // 开始画面中清除进度
	ActionQuit
	actionCount
)

var actionNames = [actionCount]string{"up", "down", "left", "right", "slow", "confirm", "restart", "quit"}

func (a Action) String() string {
	if a >= 0 && a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// ParseAction 将名称解析为动作
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), true
		}
	}
	return 0, false
}

// InputFrame 一帧内的按键边沿事件
type InputFrame struct {
	pressed  [actionCount]bool
	released [actionCount]bool
}

// Press 记录按下
func (f *InputFrame) Press(a Action) {
	if a >= 0 && a < actionCount {
		f.pressed[a] = true
	}
}

// Release 记录松开
func (f *InputFrame) Release(a Action) {
	if a >= 0 && a < actionCount {
		f.released[a] = true
	}
}

// Pressed 本帧是否按下
func (f InputFrame) Pressed(a Action) bool {
	return a >= 0 && a < actionCount && f.pressed[a]
}

// Released 本帧是否松开
func (f InputFrame) Released(a Action) bool {
	return a >= 0 && a < actionCount && f.released[a]
}

// Empty 本帧没有任何事件
func (f InputFrame) Empty() bool {
	return f == InputFrame{}
}

// InputSource 每帧提供一次输入
type InputSource interface {
	Poll() InputFrame
}

// InputEvent 回放脚本中的单个事件
type InputEvent struct {
	Tick    int64
	Action  Action
	Release bool
}

// ScriptedInput 按帧序号回放固定的输入序列
type ScriptedInput struct {
	frames map[int64]InputFrame
	tick   int64
}

// NewScriptedInput 由事件列表创建回放输入
func NewScriptedInput(events []InputEvent) *ScriptedInput {
	s := &ScriptedInput{frames: make(map[int64]InputFrame)}
	for _, ev := range events {
		f := s.frames[ev.Tick]
		if ev.Release {
			f.Release(ev.Action)
		} else {
			f.Press(ev.Action)
		}
		s.frames[ev.Tick] = f
	}
	return s
}

// Poll 返回当前帧的事件并前进一帧
func (s *ScriptedInput) Poll() InputFrame {
	f := s.frames[s.tick]
	s.tick++
	return f
}

// Tick 已回放的帧数
func (s *ScriptedInput) Tick() int64 {
	return s.tick
}
