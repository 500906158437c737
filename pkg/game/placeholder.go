package game

import (
	"image"
	"image/color"

	"github.com/gonewx/starfall/internal/raster"
	"github.com/gonewx/starfall/pkg/config"
)

var (
	placeholderWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	placeholderShip  = color.NRGBA{R: 80, G: 200, B: 255, A: 255}
	placeholderStar  = color.NRGBA{R: 255, G: 220, B: 60, A: 255}
	placeholderLaser = color.NRGBA{R: 255, G: 40, B: 40, A: 255}
	placeholderBoss  = color.NRGBA{R: 150, G: 60, B: 200, A: 255}
	placeholderHit   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// 占位 Boss 图像尺寸：核心位于中央，两台引擎分居两侧
const (
	placeholderBossW   = 480
	placeholderBossH   = 200
	placeholderPartW   = 80
	placeholderEngineX = 40
)

// PlaceholderImages 生成全部资源名对应的几何占位图
// 用于无资源运行和测试；尺寸接近真实资源，碰撞形状为实心矩形或圆
func PlaceholderImages() *MapImages {
	m := NewMapImages()
	w, h := config.ScreenWidth, config.ScreenHeight

	m.Put(ImgFadeBlack, raster.Solid(w, h, color.NRGBA{A: 255}), 1, 1)
	m.Put(ImgFadeWhite, raster.Solid(w, h, placeholderWhite), 1, 1)
	m.Put(ImgBackground, raster.Solid(w, w, color.NRGBA{R: 5, G: 5, B: 20, A: 255}), 1, 1)
	bossFrames := make([]*image.NRGBA, 4)
	for i := range bossFrames {
		bossFrames[i] = raster.Solid(w, w, color.NRGBA{R: uint8(10 + 10*i), G: 5, B: 20, A: 255})
	}
	m.PutFrames(ImgBossBackground, bossFrames)

	m.Put(ImgStar, disc(40, placeholderStar), 1, 1)
	m.Put(ImgStarPiece, disc(10, placeholderStar), 1, 1)
	m.Put(ImgLaserShot, disc(20, placeholderLaser), 1, 1)
	m.Put(ImgTurretIdle, raster.Solid(60, 24, placeholderLaser), 1, 1)
	m.Put(ImgTurretSheet, raster.Solid(60*config.TurretSheetCols, 24*config.TurretSheetRows, placeholderLaser),
		config.TurretSheetCols, config.TurretSheetRows)
	m.Put(ImgTurretHandle, raster.Solid(40, 16, placeholderWhite), 1, 1)
	m.Put(ImgHoleGenerator, holeGradient(config.HoleRingColors), 1, 1)
	m.Put(ImgHoleClouds, disc(64, color.NRGBA{R: 120, G: 40, B: 160, A: 255}), 1, 1)

	m.Put(ImgBossBody, raster.Solid(placeholderBossW, placeholderBossH, placeholderBoss), 1, 1)
	m.Put(ImgBossCore, bossPart((placeholderBossW-placeholderPartW)/2, placeholderBoss), 1, 1)
	m.Put(ImgBossCoreHit, bossPart((placeholderBossW-placeholderPartW)/2, placeholderHit), 1, 1)
	m.Put(ImgBossEngine1, bossPart(placeholderEngineX, placeholderBoss), 1, 1)
	m.Put(ImgBossEngine1Hit, bossPart(placeholderEngineX, placeholderHit), 1, 1)
	right := placeholderBossW - placeholderEngineX - placeholderPartW
	m.Put(ImgBossEngine2, bossPart(right, placeholderBoss), 1, 1)
	m.Put(ImgBossEngine2Hit, bossPart(right, placeholderHit), 1, 1)

	m.Put(ImgPlayerSheet, raster.Solid(40*config.PlayerSheetCols, 40*config.PlayerSheetRows, placeholderShip),
		config.PlayerSheetCols, config.PlayerSheetRows)
	m.Put(ImgPlayerHitbox, disc(40, placeholderShip), 1, 1)
	m.Put(ImgPlayerBroken, raster.Solid(40, 40, color.NRGBA{R: 90, G: 90, B: 90, A: 255}), 1, 1)
	m.Put(ImgHealthBarSheet, raster.Solid(100*config.HealthBarSheetCols, 20*config.HealthBarSheetRows, placeholderLaser),
		config.HealthBarSheetCols, config.HealthBarSheetRows)

	m.Put(ImgLogo, raster.Solid(400, 150, placeholderWhite), 1, 1)
	m.Put(ImgStartText, raster.Solid(300, 40, placeholderWhite), 1, 1)
	m.Put(ImgControls, raster.Solid(200, 120, placeholderWhite), 1, 1)
	m.Put(ImgCurrentLevel, raster.Solid(200, 30, placeholderWhite), 1, 1)
	m.Put(ImgLevelDigits, raster.Solid(20*5, 20*2, placeholderWhite), 5, 2)
	m.Put(ImgWinScreen, raster.Solid(w, h, placeholderWhite), 1, 1)
	m.Put(ImgGameWonScreen, raster.Solid(w, h, placeholderStar), 1, 1)
	return m
}

// disc 直径 d 的实心圆
func disc(d int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, d, d))
	r := float64(d) / 2
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	return img
}

// bossPart Boss 画布大小的透明图，只有 x 起的一块实心区域
func bossPart(x int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, placeholderBossW, placeholderBossH))
	top := (placeholderBossH - placeholderPartW) / 2
	for py := top; py < top+placeholderPartW; py++ {
		for px := x; px < x+placeholderPartW; px++ {
			img.SetNRGBA(px, py, c)
		}
	}
	return img
}

// holeGradient 1×n 的黑洞色带
func holeGradient(n int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 1, n))
	for j := 0; j < n; j++ {
		v := uint8(j * 255 / max(n-1, 1))
		img.SetNRGBA(0, j, color.NRGBA{R: v, G: v / 3, B: 255 - v, A: 255})
	}
	return img
}
