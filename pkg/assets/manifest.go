// Package assets 加载游戏图像与音频资源
//
// 资源清单 resources.yaml 将资源名映射到文件路径及其加载参数，
// ResourceManager 按名称加载并缓存解码后的图像，启动时 Preload 一次性校验全部资源。
package assets

import (
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

// 透明色模式
const (
	ColorKeyNone   = ""
	ColorKeyCorner = "corner" // 左上角像素颜色
	ColorKeyBlack  = "black"
)

// ImageEntry 单个图像资源
//
// Cols/Rows 大于 1 时按网格切分为动画帧；Sequence 非空时按 fmt 模板
// 依次加载 Count 张独立图片作为帧序列（Path 被忽略）。
type ImageEntry struct {
	Path     string `yaml:"path"`
	Cols     int    `yaml:"cols,omitempty"`
	Rows     int    `yaml:"rows,omitempty"`
	ColorKey string `yaml:"color_key,omitempty"`
	Width    int    `yaml:"width,omitempty"`  // 非零时缩放到固定尺寸
	Height   int    `yaml:"height,omitempty"` // 非零时缩放到固定尺寸
	Sequence string `yaml:"sequence,omitempty"`
	Count    int    `yaml:"count,omitempty"`
}

// Grid 返回网格尺寸，未设置时为 1x1
func (e ImageEntry) Grid() (int, int) {
	return max(e.Cols, 1), max(e.Rows, 1)
}

// Manifest 资源清单
type Manifest struct {
	Version  string                `yaml:"version"`
	BasePath string                `yaml:"base_path"`
	Images   map[string]ImageEntry `yaml:"images"`
	Sounds   map[string]string     `yaml:"sounds"`
	Music    map[string]string     `yaml:"music"`
}

// LoadManifest 从文件系统读取资源清单
func LoadManifest(fsys fs.FS, name string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource manifest %s: %w", name, err)
	}
	return ParseManifest(data)
}

// ParseManifest 解析 YAML 资源清单并校验
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse resource manifest: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	for name, e := range m.Images {
		if e.Path == "" && e.Sequence == "" {
			return fmt.Errorf("image %q: path or sequence required", name)
		}
		if e.Sequence != "" && e.Count < 1 {
			return fmt.Errorf("image %q: sequence needs a positive count", name)
		}
		if e.Cols < 0 || e.Rows < 0 || e.Width < 0 || e.Height < 0 {
			return fmt.Errorf("image %q: negative grid or size", name)
		}
		switch e.ColorKey {
		case ColorKeyNone, ColorKeyCorner, ColorKeyBlack:
		default:
			return fmt.Errorf("image %q: unknown color_key %q", name, e.ColorKey)
		}
	}
	for name, p := range m.Sounds {
		if p == "" {
			return fmt.Errorf("sound %q: empty path", name)
		}
	}
	for name, p := range m.Music {
		if p == "" {
			return fmt.Errorf("music %q: empty path", name)
		}
	}
	return nil
}

// resolve 拼接基础路径，返回 fs.FS 使用的斜杠路径
func (m *Manifest) resolve(rel string) string {
	if m.BasePath == "" {
		return path.Clean(rel)
	}
	return path.Join(m.BasePath, rel)
}
