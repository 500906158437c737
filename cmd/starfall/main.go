// starfall 是一个竖版太空躲避游戏
//
// Usage:
//
//	starfall                 - 运行游戏
//	starfall stats           - 按关卡显示对局统计
//	starfall genlevel <n>    - 为第 n 关生成一张随机脚本表
//
// Global flags:
//
//	--config <path>  - 配置文件（默认 ./starfall.yaml）
//	--verbose        - 输出调试日志
//	--fps <rate>     - 逻辑帧率（默认 30）
//	--seed <value>   - 随机种子（0 表示按时间）
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gonewx/starfall/pkg/app"
	"github.com/gonewx/starfall/pkg/config"
)

var (
	flagConfig string
	v          = viper.New()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfall",
	Short: "Starfall - dodge falling stars, black holes and laser turrets",
	Long: `Starfall is a top-down arcade game. Survive each level's timeline of
falling stars, black holes and laser turrets, then defeat the boss.

Controls:
  Arrows  - Move
  X       - Hold to slow down
  Z       - Start / continue
  Delete  - Reset progress on the start screen
  Escape  - Quit
  F11     - Toggle fullscreen`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Config file (default ./starfall.yaml)")
	flags.Bool("verbose", false, "Enable debug logging")
	flags.Int("fps", config.DefaultFPS, "Simulation ticks per second")
	flags.Int64("seed", 0, "RNG seed (0 = random based on time)")
	flags.String("assets", "assets", "Assets directory")
	flags.String("levels-dir", "data/levels", "Directory holding level tables")
	flags.String("save-backend", config.SaveBackendGdata, "Save backend: gdata or file")
	flags.String("db", "data/records.db", "Path to run records database")

	bind := map[string]string{
		"verbose":      "verbose",
		"fps":          "fps",
		"seed":         "seed",
		"assets_dir":   "assets",
		"levels_dir":   "levels-dir",
		"save_backend": "save-backend",
		"records_db":   "db",
	}
	for key, name := range bind {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(genlevelCmd)
}

// loadConfig 读取配置并设置日志级别
func loadConfig() (*config.GameConfig, error) {
	cfg, err := config.LoadGameConfig(v, flagConfig)
	if err != nil {
		return nil, err
	}
	log.SetLevel(log.WarnLevel)
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if used := v.ConfigFileUsed(); used != "" {
		log.Debug("[Config] loaded config file", "path", used)
	}
	return cfg, nil
}

func runGame(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := app.NewApp(cfg)
	if err != nil {
		return err
	}
	return a.Run()
}
