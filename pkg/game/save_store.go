package game

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// SaveData 持久化的玩家进度
type SaveData struct {
	Level int `yaml:"lvl"` // 当前关卡，1 起
}

// DefaultSaveData 新玩家从第一关开始
func DefaultSaveData() *SaveData {
	return &SaveData{Level: 1}
}

// ClampLevel 将关卡限制在 [1, count]
func (d *SaveData) ClampLevel(count int) {
	d.Level = max(1, min(d.Level, count))
}

// SaveStore 进度存储后端
type SaveStore interface {
	Load() (*SaveData, error)
	Save(data *SaveData) error
}

// 存储路径常量
const (
	progressObject   = "progress"
	progressProperty = "player"
)

// GdataStore 基于 gdata 的跨平台存储
// manager 为 nil 时退化为内存存储，Load 返回默认进度，Save 不报错
type GdataStore struct {
	manager *gdata.Manager
}

// NewGdataStore 打开 appName 对应的数据目录
func NewGdataStore(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &GdataStore{}, fmt.Errorf("failed to open gdata storage: %w", err)
	}
	return &GdataStore{manager: m}, nil
}

// NewGdataStoreWithManager 使用已有的 gdata Manager
func NewGdataStoreWithManager(m *gdata.Manager) *GdataStore {
	return &GdataStore{manager: m}
}

func (s *GdataStore) Load() (*SaveData, error) {
	if s.manager == nil || !s.manager.ObjectPropExists(progressObject, progressProperty) {
		return DefaultSaveData(), nil
	}
	raw, err := s.manager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return DefaultSaveData(), fmt.Errorf("failed to load progress: %w", err)
	}
	data := DefaultSaveData()
	if err := yaml.Unmarshal(raw, data); err != nil {
		return DefaultSaveData(), fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	return data, nil
}

func (s *GdataStore) Save(data *SaveData) error {
	if s.manager == nil {
		return nil
	}
	raw, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}
	if err := s.manager.SaveObjectProp(progressObject, progressProperty, raw); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	log.Debug("[SaveStore] progress saved", "level", data.Level)
	return nil
}

// FileStore 以 key=value 文本保存进度（player_data.ini 格式）
// 未识别的键原样保留
type FileStore struct {
	path  string
	extra map[string]string
}

// NewFileStore 创建文件存储
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, extra: make(map[string]string)}
}

func (s *FileStore) Load() (*SaveData, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSaveData(), nil
	}
	if err != nil {
		return DefaultSaveData(), fmt.Errorf("failed to read save file %s: %w", s.path, err)
	}

	data := DefaultSaveData()
	sc := bufio.NewScanner(bytes.NewReader(raw))
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		key, value, ok := strings.Cut(text, "=")
		if !ok {
			return DefaultSaveData(), fmt.Errorf("save file %s line %d: missing '='", s.path, line)
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if key == "lvl" {
			n, err := strconv.Atoi(value)
			if err != nil {
				return DefaultSaveData(), fmt.Errorf("save file %s line %d: invalid level %q: %w", s.path, line, value, err)
			}
			data.Level = n
			continue
		}
		s.extra[key] = value
	}
	if err := sc.Err(); err != nil {
		return DefaultSaveData(), fmt.Errorf("failed to scan save file %s: %w", s.path, err)
	}
	return data, nil
}

func (s *FileStore) Save(data *SaveData) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create save directory: %w", err)
		}
	}
	lines := []string{"lvl=" + strconv.Itoa(data.Level)}
	keys := make([]string, 0, len(s.extra))
	for k := range s.extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, k+"="+s.extra[k])
	}
	if err := os.WriteFile(s.path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return fmt.Errorf("failed to write save file %s: %w", s.path, err)
	}
	log.Debug("[SaveStore] progress saved", "path", s.path, "level", data.Level)
	return nil
}

// MemoryStore 仅驻留内存的存储
type MemoryStore struct {
	Data *SaveData
}

func (s *MemoryStore) Load() (*SaveData, error) {
	if s.Data == nil {
		return DefaultSaveData(), nil
	}
	c := *s.Data
	return &c, nil
}

func (s *MemoryStore) Save(data *SaveData) error {
	c := *data
	s.Data = &c
	return nil
}
