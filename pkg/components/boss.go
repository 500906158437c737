package components

import (
	"image"

	"github.com/gonewx/starfall/internal/mask"
	"github.com/gonewx/starfall/pkg/ecs"
)

// BossState Boss 主体，只有脉动外观，没有生命值
type BossState struct {
	Core    ecs.EntityID
	Engines []ecs.EntityID
}

// Parts 核心在前，引擎在后
func (b *BossState) Parts() []ecs.EntityID {
	parts := make([]ecs.EntityID, 0, 1+len(b.Engines))
	parts = append(parts, b.Core)
	return append(parts, b.Engines...)
}

// BossPartState Boss 的可受损部件
type BossPartState struct {
	Core    bool // 核心在所有引擎生命归零前免疫伤害
	Health  int
	Normal  *image.NRGBA
	Damaged *image.NRGBA

	cache map[pulseKey]pulseFrame
}

type pulseKey struct {
	w, h    int
	damaged bool
}

type pulseFrame struct {
	img  *image.NRGBA
	mask *mask.Mask
}

// CachedFrame 返回指定尺寸的缓存帧和掩码
func (p *BossPartState) CachedFrame(w, h int, damaged bool) (*image.NRGBA, *mask.Mask, bool) {
	f, ok := p.cache[pulseKey{w, h, damaged}]
	return f.img, f.mask, ok
}

// StoreFrame 缓存缩放后的帧及其掩码
func (p *BossPartState) StoreFrame(w, h int, damaged bool, img *image.NRGBA, m *mask.Mask) {
	if p.cache == nil {
		p.cache = make(map[pulseKey]pulseFrame)
	}
	p.cache[pulseKey{w, h, damaged}] = pulseFrame{img: img, mask: m}
}

// PulseState 以 sin(t/1000) 周期缩放的图像
// 缩放系数 = (sin(t/1000)*Amplitude + Offset) / Divisor
type PulseState struct {
	Source    *image.NRGBA
	Amplitude float64
	Offset    float64
	Divisor   float64
	Stopped   bool
}

// Factor 给定时钟下的缩放系数
func (p *PulseState) Factor(sinT float64) float64 {
	if p.Divisor == 0 {
		return 1
	}
	return (sinT*p.Amplitude + p.Offset) / p.Divisor
}

// Scroller 两块背景图共享的滚动状态
type Scroller struct {
	Y     float64
	Speed float64 // 像素/秒
	Limit float64 // 回绕高度
	Anim  *AnimationStrip
}

// BackgroundTile 背景中的一块
type BackgroundTile struct {
	Scroll *Scroller
	Index  int // 0 为当前块，1 为其上方的衔接块
}
