package game

import (
	"image"

	"github.com/gonewx/starfall/internal/raster"
)

// MapImages 内存中的 ImageSource
type MapImages struct {
	images map[string]*image.NRGBA
	frames map[string][]*image.NRGBA
}

// NewMapImages 创建空的图像表
func NewMapImages() *MapImages {
	return &MapImages{
		images: make(map[string]*image.NRGBA),
		frames: make(map[string][]*image.NRGBA),
	}
}

// Put 注册图像，cols×rows 大于 1 时按网格切分帧
func (m *MapImages) Put(name string, img *image.NRGBA, cols, rows int) {
	m.images[name] = img
	if cols*rows > 1 {
		m.frames[name] = raster.CutSheet(img, cols, rows)
	} else {
		m.frames[name] = []*image.NRGBA{img}
	}
}

// PutFrames 注册帧序列，第一帧同时作为整图
func (m *MapImages) PutFrames(name string, frames []*image.NRGBA) {
	m.frames[name] = frames
	if len(frames) > 0 {
		m.images[name] = frames[0]
	}
}

func (m *MapImages) Image(name string) *image.NRGBA {
	return m.images[name]
}

func (m *MapImages) Frames(name string) []*image.NRGBA {
	return m.frames[name]
}
