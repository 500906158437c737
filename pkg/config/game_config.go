package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// 存档后端
const (
	SaveBackendGdata = "gdata"
	SaveBackendFile  = "file"
)

// GameConfig 运行参数
// 优先级：命令行参数 > 环境变量 STARFALL_* > 配置文件 > 默认值
type GameConfig struct {
	FPS              int     `mapstructure:"fps"`
	AssetsDir        string  `mapstructure:"assets_dir"`
	ResourceManifest string  `mapstructure:"resource_manifest"`
	LevelManifest    string  `mapstructure:"level_manifest"`
	LevelsDir        string  `mapstructure:"levels_dir"`
	SaveBackend      string  `mapstructure:"save_backend"`
	SavePath         string  `mapstructure:"save_path"`
	RecordsDB        string  `mapstructure:"records_db"`
	Seed             int64   `mapstructure:"seed"`
	Verbose          bool    `mapstructure:"verbose"`
	WindowScale      float64 `mapstructure:"window_scale"`
	MusicVolume      float64 `mapstructure:"music_volume"`
	SoundVolume      float64 `mapstructure:"sound_volume"`
}

// SetDefaults 写入所有配置项的默认值
func SetDefaults(v *viper.Viper) {
	v.SetDefault("fps", DefaultFPS)
	v.SetDefault("assets_dir", "assets")
	v.SetDefault("resource_manifest", "config/resources.yaml")
	v.SetDefault("level_manifest", "data/levels.yaml")
	v.SetDefault("levels_dir", "data/levels")
	v.SetDefault("save_backend", SaveBackendGdata)
	v.SetDefault("save_path", "data/player_data.ini")
	v.SetDefault("records_db", "data/records.db")
	v.SetDefault("seed", 0)
	v.SetDefault("verbose", false)
	v.SetDefault("window_scale", 1.0)
	v.SetDefault("music_volume", 0.6)
	v.SetDefault("sound_volume", 1.0)
}

// LoadGameConfig 读取配置
//
// 参数:
//   - v: viper 实例，调用方可预先绑定命令行参数
//   - path: 配置文件路径；为空时在当前目录查找 starfall.yaml，找不到则只使用默认值
//
// 返回:
//   - *GameConfig: 校验后的配置
//   - error: 配置文件不可读或取值非法
func LoadGameConfig(v *viper.Viper, path string) (*GameConfig, error) {
	SetDefaults(v)

	v.SetEnvPrefix("STARFALL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("starfall")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg GameConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 检查取值范围
func (c *GameConfig) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	switch c.SaveBackend {
	case SaveBackendGdata, SaveBackendFile:
	default:
		return fmt.Errorf("unknown save_backend %q (want %q or %q)", c.SaveBackend, SaveBackendGdata, SaveBackendFile)
	}
	if c.WindowScale <= 0 {
		return fmt.Errorf("window_scale must be positive, got %v", c.WindowScale)
	}
	if c.MusicVolume < 0 || c.MusicVolume > 1 {
		return fmt.Errorf("music_volume must be within [0, 1], got %v", c.MusicVolume)
	}
	if c.SoundVolume < 0 || c.SoundVolume > 1 {
		return fmt.Errorf("sound_volume must be within [0, 1], got %v", c.SoundVolume)
	}
	return nil
}
