package systems

import (
	"github.com/gonewx/starfall/pkg/components"
	"github.com/gonewx/starfall/pkg/config"
	"github.com/gonewx/starfall/pkg/game"
)

// CameraSystem 根据玩家的抖动幅度更新镜头偏移
// 偏移只作用于绘制，碰撞始终使用未偏移的坐标
type CameraSystem struct {
	world *game.World
}

// NewCameraSystem 创建镜头系统
func NewCameraSystem(w *game.World) *CameraSystem {
	return &CameraSystem{world: w}
}

// Update 以当前幅度随机抖动一次，随后幅度按 ShakeDecayPerSecond 线性衰减到 0
func (cs *CameraSystem) Update(p *components.PlayerState) {
	w := cs.world
	w.Camera.Shake(w.Rand, p.ShakeDist)
	if p.ShakeDist > 0 {
		p.ShakeDist -= config.ShakeDecayPerSecond / float64(w.FPS())
	} else {
		p.ShakeDist = 0
	}
}
