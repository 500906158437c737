package config

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// 关卡模式
const (
	ModeScripted   = "scripted"
	ModeProcedural = "procedural"
)

// IntRange 闭区间 [Min, Max]
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Pick 在区间内均匀取值
func (r IntRange) Pick(rng *rand.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// SpawnBounds 随机生成危险物时的参数范围
type SpawnBounds struct {
	Interval  float64  `yaml:"interval"` // 毫秒
	HoleX     IntRange `yaml:"holeX"`
	HoleY     IntRange `yaml:"holeY"`
	HoleSpeed IntRange `yaml:"holeSpeed"`
	TurretY   IntRange `yaml:"turretY"`
	StarX     IntRange `yaml:"starX"`
	StarY     int      `yaml:"starY"`

	// StarVelocity 以 1/10 为单位，最终速度为 (v/10)²
	StarVelocity IntRange `yaml:"starVelocity"`
	StarSpin     IntRange `yaml:"starSpin"`
}

// LevelSpec 单个关卡配置
type LevelSpec struct {
	Number   int          `yaml:"number"`
	Mode     string       `yaml:"mode"`     // "scripted" 或 "procedural"
	Table    string       `yaml:"table"`    // 脚本表文件名，相对 levels_dir
	Generate bool         `yaml:"generate"` // 进入关卡前重新生成脚本表
	Music    string       `yaml:"music"`
	Boss     bool         `yaml:"boss"`
	Spawn    *SpawnBounds `yaml:"spawn"`
}

// LevelManifest 关卡清单
type LevelManifest struct {
	StartMusic string      `yaml:"startMusic"`
	Levels     []LevelSpec `yaml:"levels"`
}

// DefaultProceduralBounds Boss 关卡的随机生成范围
func DefaultProceduralBounds() SpawnBounds {
	return SpawnBounds{
		Interval:     ProceduralInterval,
		HoleX:        IntRange{200, 824},
		HoleY:        IntRange{300, 568},
		HoleSpeed:    IntRange{30, 120},
		TurretY:      IntRange{350, 668},
		StarX:        IntRange{100, 924},
		StarY:        ProceduralStarY,
		StarVelocity: IntRange{115, 200},
		StarSpin:     IntRange{1, 360},
	}
}

// DefaultGeneratorBounds 生成脚本表时的参数范围
func DefaultGeneratorBounds() SpawnBounds {
	return SpawnBounds{
		Interval:     GeneratedInterval,
		HoleX:        IntRange{200, 824},
		HoleY:        IntRange{200, 568},
		HoleSpeed:    IntRange{30, 120},
		TurretY:      IntRange{100, 668},
		StarX:        IntRange{100, 924},
		StarY:        ProceduralStarY,
		StarVelocity: IntRange{115, 220},
		StarSpin:     IntRange{1, 360},
	}
}

// DefaultLevelManifest 五关战役：1-3 脚本关，4 每次重新生成，5 为 Boss 随机关
func DefaultLevelManifest() *LevelManifest {
	m := &LevelManifest{StartMusic: "mus_start_screen"}
	for n := 1; n <= LevelCount; n++ {
		m.Levels = append(m.Levels, LevelSpec{Number: n, Generate: n == 4, Boss: n == LevelCount})
	}
	m.applyDefaults()
	return m
}

// LoadLevelManifest 从 YAML 文件加载关卡清单
func LoadLevelManifest(path string) (*LevelManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level manifest %s: %w", path, err)
	}
	var m LevelManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse level manifest YAML from %s: %w", path, err)
	}
	m.applyDefaults()
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid level manifest %s: %w", path, err)
	}
	return &m, nil
}

// applyDefaults 为省略的字段填充默认值
func (m *LevelManifest) applyDefaults() {
	if m.StartMusic == "" {
		m.StartMusic = "mus_start_screen"
	}
	for i := range m.Levels {
		l := &m.Levels[i]
		if l.Number == 0 {
			l.Number = i + 1
		}
		if l.Mode == "" {
			if l.Boss {
				l.Mode = ModeProcedural
			} else {
				l.Mode = ModeScripted
			}
		}
		if l.Mode == ModeScripted && l.Table == "" {
			l.Table = fmt.Sprintf("lvl_%02d.tsv", l.Number)
		}
		if l.Music == "" {
			switch {
			case l.Boss:
				l.Music = "mus_boss_fight"
			case l.Number%2 == 0:
				l.Music = "mus_meh_music"
			default:
				l.Music = "mus_acid_cool"
			}
		}
		if l.Mode == ModeProcedural && l.Spawn == nil {
			b := DefaultProceduralBounds()
			l.Spawn = &b
		}
	}
}

// validate 校验关卡清单
func (m *LevelManifest) validate() error {
	if len(m.Levels) == 0 {
		return fmt.Errorf("no levels defined")
	}
	for i, l := range m.Levels {
		if l.Number != i+1 {
			return fmt.Errorf("level %d: numbers must be consecutive from 1, got %d", i+1, l.Number)
		}
		switch l.Mode {
		case ModeScripted, ModeProcedural:
		default:
			return fmt.Errorf("level %d: unknown mode %q", l.Number, l.Mode)
		}
		if l.Spawn != nil && l.Spawn.Interval <= 0 {
			return fmt.Errorf("level %d: spawn interval must be positive", l.Number)
		}
	}
	return nil
}

// Count 关卡数量
func (m *LevelManifest) Count() int {
	return len(m.Levels)
}

// CheckTables 启动时确认所有固定脚本表可读
// 每次重新生成的关卡不需要预先存在的表
func (m *LevelManifest) CheckTables(dir string) error {
	for _, l := range m.Levels {
		if l.Mode != ModeScripted || l.Generate {
			continue
		}
		if _, err := LoadLevelTable(l.Number, filepath.Join(dir, l.Table)); err != nil {
			return err
		}
	}
	return nil
}

// Level 返回第 n 关（从 1 开始），越界时钳制到有效范围
func (m *LevelManifest) Level(n int) LevelSpec {
	if n < 1 {
		n = 1
	}
	if n > len(m.Levels) {
		n = len(m.Levels)
	}
	return m.Levels[n-1]
}
