package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"
)

// encodePNG 将图像编码为 PNG 字节
func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// sheet 创建 w×h 的图像，左上角像素为品红色（用作透明色），其余为白色
func sheet(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, B: 255, A: 255})
	return img
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"gfx/ship_sheet.png": {Data: encodePNG(t, sheet(8, 2))},
		"gfx/logo.png":       {Data: encodePNG(t, sheet(4, 4))},
		"gfx/anim/bg0.png":   {Data: encodePNG(t, sheet(2, 2))},
		"gfx/anim/bg1.png":   {Data: encodePNG(t, sheet(2, 2))},
		"gfx/broken.png":     {Data: []byte("not a png")},
		"sfx/hit.ogg":        {Data: []byte{0}},
		"music/start.wav":    {Data: []byte{0}},
	}
}

const manifestYAML = `
version: "1"
base_path: ""
images:
  ship:
    path: gfx/ship_sheet.png
    cols: 4
    rows: 1
    color_key: corner
  logo:
    path: gfx/logo.png
    width: 8
    height: 2
  boss_bg:
    sequence: gfx/anim/bg%d.png
    count: 2
sounds:
  hit: sfx/hit.ogg
music:
  start: music/start.wav
`

func newTestManager(t *testing.T) *ResourceManager {
	t.Helper()
	m, err := ParseManifest([]byte(manifestYAML))
	if err != nil {
		t.Fatalf("ParseManifest failed: %v", err)
	}
	return NewResourceManager(testFS(t), m)
}

func TestFramesCutSheetAfterColorKey(t *testing.T) {
	rm := newTestManager(t)

	frames := rm.Frames("ship")
	if len(frames) != 4 {
		t.Fatalf("Expected 4 frames, got %d", len(frames))
	}
	for i, f := range frames {
		if f.Bounds() != image.Rect(0, 0, 2, 2) {
			t.Errorf("Frame %d bounds = %v", i, f.Bounds())
		}
	}
	// 左上角颜色被设为透明，其余像素保留
	if frames[0].NRGBAAt(0, 0).A != 0 {
		t.Error("Corner colour should be keyed out")
	}
	if frames[0].NRGBAAt(1, 1).A != 255 {
		t.Error("Other pixels should stay opaque")
	}
}

func TestImageFixedSize(t *testing.T) {
	rm := newTestManager(t)
	img := rm.Image("logo")
	if img == nil {
		t.Fatal("Expected logo to load")
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 2 {
		t.Errorf("Expected 8x2 after fixed scaling, got %v", img.Bounds())
	}
	if len(rm.Frames("logo")) != 1 {
		t.Error("Single image should have exactly one frame")
	}
}

func TestSequenceFrames(t *testing.T) {
	rm := newTestManager(t)
	frames := rm.Frames("boss_bg")
	if len(frames) != 2 {
		t.Fatalf("Expected 2 sequence frames, got %d", len(frames))
	}
	if rm.Image("boss_bg") != frames[0] {
		t.Error("Image of a sequence should be its first frame")
	}
}

func TestImageIsCached(t *testing.T) {
	rm := newTestManager(t)
	if rm.Image("logo") != rm.Image("logo") {
		t.Error("Repeated loads should return the cached image")
	}
}

func TestUnknownImage(t *testing.T) {
	rm := newTestManager(t)
	_, err := rm.LoadImage("missing")

	var assetErr *AssetError
	if !errors.As(err, &assetErr) {
		t.Fatalf("Expected AssetError, got %v", err)
	}
	if assetErr.Name != "missing" {
		t.Errorf("Expected name 'missing', got %q", assetErr.Name)
	}
	if !errors.Is(err, ErrUnknownAsset) {
		t.Error("Expected ErrUnknownAsset")
	}
	if rm.Image("missing") != nil {
		t.Error("Image should return nil for unknown names")
	}
}

func TestPutOverridesManifest(t *testing.T) {
	rm := NewResourceManager(nil, nil)
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	rm.Put("generated", img)

	if rm.Image("generated") != img {
		t.Error("Put image should be returned by Image")
	}
	if frames := rm.Frames("generated"); len(frames) != 1 || frames[0] != img {
		t.Error("Put image should be its own single frame")
	}
}

func TestPreload(t *testing.T) {
	rm := newTestManager(t)
	if err := rm.Preload(); err != nil {
		t.Fatalf("Preload failed: %v", err)
	}
	if p, ok := rm.SoundPath("hit"); !ok || p != "sfx/hit.ogg" {
		t.Errorf("SoundPath = %q, %v", p, ok)
	}
	if p, ok := rm.MusicPath("start"); !ok || p != "music/start.wav" {
		t.Errorf("MusicPath = %q, %v", p, ok)
	}
}

func TestPreloadFailsFast(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		wantName string
		wantErr  error
	}{
		{
			name:     "missing image file",
			yaml:     "images:\n  ghost:\n    path: gfx/ghost.png\n",
			wantName: "ghost",
			wantErr:  fs.ErrNotExist,
		},
		{
			name:     "corrupt image",
			yaml:     "images:\n  broken:\n    path: gfx/broken.png\n",
			wantName: "broken",
		},
		{
			name:     "missing sound",
			yaml:     "sounds:\n  laser: sfx/laser.ogg\n",
			wantName: "laser",
			wantErr:  fs.ErrNotExist,
		},
		{
			name:     "missing music",
			yaml:     "music:\n  boss: music/boss.wav\n",
			wantName: "boss",
			wantErr:  fs.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseManifest([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("ParseManifest failed: %v", err)
			}
			err = NewResourceManager(testFS(t), m).Preload()

			var assetErr *AssetError
			if !errors.As(err, &assetErr) {
				t.Fatalf("Expected AssetError, got %v", err)
			}
			if assetErr.Name != tt.wantName {
				t.Errorf("Expected failing asset %q, got %q", tt.wantName, assetErr.Name)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v in chain, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"invalid yaml", "images: [unclosed"},
		{"no path", "images:\n  a:\n    cols: 2\n"},
		{"sequence without count", "images:\n  a:\n    sequence: f%d.png\n"},
		{"bad color key", "images:\n  a:\n    path: a.png\n    color_key: purple\n"},
		{"negative grid", "images:\n  a:\n    path: a.png\n    cols: -1\n"},
		{"empty sound", "sounds:\n  a: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseManifest([]byte(tt.yaml)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestBasePathResolution(t *testing.T) {
	m, err := ParseManifest([]byte("base_path: data\nsounds:\n  hit: snd_hit.ogg\n"))
	if err != nil {
		t.Fatalf("ParseManifest failed: %v", err)
	}
	rm := NewResourceManager(nil, m)
	if p, _ := rm.SoundPath("hit"); p != "data/snd_hit.ogg" {
		t.Errorf("Expected data/snd_hit.ogg, got %q", p)
	}
}
