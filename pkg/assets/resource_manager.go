package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/gonewx/starfall/internal/raster"
)

// AssetError 资源缺失或无法解码，启动阶段遇到即终止
type AssetError struct {
	Name string
	Path string
	Err  error
}

func (e *AssetError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("asset %q: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("asset %q (%s): %v", e.Name, e.Path, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}

// ErrUnknownAsset 资源名不在清单中
var ErrUnknownAsset = errors.New("not declared in resource manifest")

// ResourceManager 按名称加载并缓存图像资源
//
// 图像统一转换为原点对齐的 *image.NRGBA，按清单应用透明色、固定尺寸和网格切分。
// 非线程安全：所有加载都在主 goroutine 的启动阶段完成。
type ResourceManager struct {
	fsys     fs.FS
	manifest *Manifest
	images   map[string]*image.NRGBA
	frames   map[string][]*image.NRGBA
}

// NewResourceManager 创建资源管理器
//
// 参数:
//   - fsys: 资源根目录（例如 os.DirFS("assets")）
//   - manifest: 资源清单，为 nil 时只能使用 Put 注册的图像
func NewResourceManager(fsys fs.FS, manifest *Manifest) *ResourceManager {
	if manifest == nil {
		manifest = &Manifest{}
	}
	return &ResourceManager{
		fsys:     fsys,
		manifest: manifest,
		images:   make(map[string]*image.NRGBA),
		frames:   make(map[string][]*image.NRGBA),
	}
}

// Manifest 返回当前资源清单
func (rm *ResourceManager) Manifest() *Manifest {
	return rm.manifest
}

// Put 注册程序生成的图像（测试或占位资源），覆盖同名缓存
func (rm *ResourceManager) Put(name string, img *image.NRGBA) {
	rm.images[name] = img
	rm.frames[name] = []*image.NRGBA{img}
}

// PutFrames 注册程序生成的帧序列，第一帧同时作为整图
func (rm *ResourceManager) PutFrames(name string, frames []*image.NRGBA) {
	rm.frames[name] = frames
	if len(frames) > 0 {
		rm.images[name] = frames[0]
	}
}

// LoadImage 加载清单中声明的图像及其帧，已缓存时直接返回
func (rm *ResourceManager) LoadImage(name string) (*image.NRGBA, error) {
	if img, ok := rm.images[name]; ok {
		return img, nil
	}
	entry, ok := rm.manifest.Images[name]
	if !ok {
		return nil, &AssetError{Name: name, Err: ErrUnknownAsset}
	}

	if entry.Sequence != "" {
		frames := make([]*image.NRGBA, 0, entry.Count)
		for i := 0; i < entry.Count; i++ {
			p := rm.manifest.resolve(fmt.Sprintf(entry.Sequence, i))
			img, err := rm.decode(name, p, entry)
			if err != nil {
				return nil, err
			}
			frames = append(frames, img)
		}
		rm.PutFrames(name, frames)
		log.Debug("[ResourceManager] loaded sequence", "name", name, "frames", len(frames))
		return frames[0], nil
	}

	p := rm.manifest.resolve(entry.Path)
	img, err := rm.decode(name, p, entry)
	if err != nil {
		return nil, err
	}
	rm.images[name] = img
	cols, rows := entry.Grid()
	if cols*rows > 1 {
		rm.frames[name] = raster.CutSheet(img, cols, rows)
	} else {
		rm.frames[name] = []*image.NRGBA{img}
	}
	log.Debug("[ResourceManager] loaded image", "name", name, "path", p, "frames", len(rm.frames[name]))
	return img, nil
}

func (rm *ResourceManager) decode(name, p string, entry ImageEntry) (*image.NRGBA, error) {
	if rm.fsys == nil {
		return nil, &AssetError{Name: name, Path: p, Err: fs.ErrNotExist}
	}
	f, err := rm.fsys.Open(p)
	if err != nil {
		return nil, &AssetError{Name: name, Path: p, Err: err}
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, &AssetError{Name: name, Path: p, Err: fmt.Errorf("failed to decode: %w", err)}
	}
	img := raster.ToNRGBA(src)

	switch entry.ColorKey {
	case ColorKeyCorner:
		raster.CornerColorKey(img)
	case ColorKeyBlack:
		raster.ApplyColorKey(img, color.NRGBA{})
	}
	if entry.Width > 0 && entry.Height > 0 {
		img = raster.Scale(img, entry.Width, entry.Height)
	}
	return img, nil
}

// Image 返回已加载的图像，未加载时按需加载
// 加载失败时记录错误并返回 nil
func (rm *ResourceManager) Image(name string) *image.NRGBA {
	img, err := rm.LoadImage(name)
	if err != nil {
		log.Error("[ResourceManager] image unavailable", "err", err)
		return nil
	}
	return img
}

// Frames 返回图像的动画帧（网格图按行优先顺序），单图返回仅含自身的切片
func (rm *ResourceManager) Frames(name string) []*image.NRGBA {
	if _, err := rm.LoadImage(name); err != nil {
		log.Error("[ResourceManager] frames unavailable", "err", err)
		return nil
	}
	return rm.frames[name]
}

// SoundPath 返回音效文件路径
func (rm *ResourceManager) SoundPath(name string) (string, bool) {
	p, ok := rm.manifest.Sounds[name]
	if !ok {
		return "", false
	}
	return rm.manifest.resolve(p), true
}

// MusicPath 返回音乐文件路径
func (rm *ResourceManager) MusicPath(name string) (string, bool) {
	p, ok := rm.manifest.Music[name]
	if !ok {
		return "", false
	}
	return rm.manifest.resolve(p), true
}

// Open 打开资源文件系统中的文件，供音频解码使用
func (rm *ResourceManager) Open(p string) (fs.File, error) {
	if rm.fsys == nil {
		return nil, fs.ErrNotExist
	}
	return rm.fsys.Open(p)
}

// Preload 加载全部图像并确认所有音频文件存在
// 遇到第一个错误立即返回，错误中带有资源名和路径
func (rm *ResourceManager) Preload() error {
	for _, name := range sortedKeys(rm.manifest.Images) {
		if _, err := rm.LoadImage(name); err != nil {
			return err
		}
	}
	if err := rm.checkFiles(rm.manifest.Sounds); err != nil {
		return err
	}
	if err := rm.checkFiles(rm.manifest.Music); err != nil {
		return err
	}
	log.Info("[ResourceManager] preloaded",
		"images", len(rm.manifest.Images),
		"sounds", len(rm.manifest.Sounds),
		"music", len(rm.manifest.Music))
	return nil
}

func (rm *ResourceManager) checkFiles(entries map[string]string) error {
	for _, name := range sortedKeys(entries) {
		p := rm.manifest.resolve(entries[name])
		if rm.fsys == nil {
			return &AssetError{Name: name, Path: p, Err: fs.ErrNotExist}
		}
		if _, err := fs.Stat(rm.fsys, p); err != nil {
			return &AssetError{Name: name, Path: p, Err: err}
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
