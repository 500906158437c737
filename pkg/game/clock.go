package game

// Clock 以帧为单位推进的游戏时钟
//
// 所有时间相关逻辑都从帧计数派生毫秒值，不读取系统时间，
// 因此相同的输入序列总是产生相同的模拟结果。
type Clock struct {
	ticks int64
	fps   int
}

// NewClock 创建每秒 fps 帧的时钟
func NewClock(fps int) *Clock {
	if fps <= 0 {
		fps = 30
	}
	return &Clock{fps: fps}
}

// Tick 推进一帧
func (c *Clock) Tick() {
	c.ticks++
}

// FPS 每秒帧数
func (c *Clock) FPS() int {
	return c.fps
}

// Now 当前时钟（毫秒）
func (c *Clock) Now() float64 {
	return float64(c.ticks*1000) / float64(c.fps)
}
