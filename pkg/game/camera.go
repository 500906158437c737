package game

import (
	"image"
	"math/rand"
)

// Camera 镜头抖动偏移
// 偏移只作用于绘制，碰撞检测始终使用未偏移的坐标
type Camera struct {
	Offset image.Point
}

// Shake 在 [-dist, dist] 范围内随机选取本帧偏移
func (c *Camera) Shake(rng *rand.Rand, dist float64) {
	d := int(dist)
	if d <= 0 {
		c.Offset = image.Point{}
		return
	}
	c.Offset = image.Pt(rng.Intn(2*d+1)-d, rng.Intn(2*d+1)-d)
}
