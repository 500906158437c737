package components

import "github.com/gonewx/starfall/pkg/ecs"

// Direction 方向键
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// PlayerState 玩家飞船状态
type PlayerState struct {
	Health int
	Speed  float64 // 每秒移动像素

	// 移动意图累加器：按下一个方向键 ±1，松开时撤销
	// 同时按住相反方向时相互抵消
	MoveX, MoveY int
	held         [4]bool
	Slow         bool

	Invulnerable    bool
	HitTime         float64 // 最近一次受击的时钟（毫秒）
	InvulnerableFor float64 // 无敌窗口（毫秒）

	ShakeDist float64
	Defeated  bool
	HitsTaken int
}

// Press 方向键按下
func (p *PlayerState) Press(d Direction) {
	if p.held[d] {
		return
	}
	p.held[d] = true
	p.MoveX += dirX(d)
	p.MoveY += dirY(d)
}

// Release 方向键松开，未记录按下的键被忽略
func (p *PlayerState) Release(d Direction) {
	if !p.held[d] {
		return
	}
	p.held[d] = false
	p.MoveX -= dirX(d)
	p.MoveY -= dirY(d)
}

func dirX(d Direction) int {
	switch d {
	case DirLeft:
		return -1
	case DirRight:
		return 1
	}
	return 0
}

func dirY(d Direction) int {
	switch d {
	case DirUp:
		return -1
	case DirDown:
		return 1
	}
	return 0
}

// HealthBarState 血条显示的玩家
type HealthBarState struct {
	Player ecs.EntityID
}
