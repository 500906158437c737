package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gonewx/starfall/pkg/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-level run statistics",
	Long: `Display attempts, wins, defeats and the best clear time for every level
recorded in the run records database.

Examples:
  starfall stats
  starfall stats --db ./records.db`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func runStats(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := storage.Open(cfg.RecordsDB)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats(context.Background())
	if err != nil {
		return err
	}
	renderStats(cmd.OutOrStdout(), stats)
	return nil
}

// renderStats 以对齐的表格打印统计
func renderStats(w io.Writer, stats []storage.LevelStats) {
	if len(stats) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No runs recorded yet."))
		return
	}

	header := []string{"Level", "Attempts", "Wins", "Defeats", "Best time"}
	rows := [][]string{header}
	for _, st := range stats {
		rows = append(rows, []string{
			strconv.Itoa(st.Level),
			strconv.Itoa(st.Attempts),
			strconv.Itoa(st.Wins),
			strconv.Itoa(st.Defeats),
			formatDuration(st.BestTimeMs),
		})
	}

	widths := make([]int, len(header))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	for r, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			style := cellStyle.Width(widths[i] + 2)
			if r == 0 {
				style = style.Inherit(headerStyle)
			}
			cells[i] = style.Render(cell)
		}
		fmt.Fprintln(w, strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " "))
	}
}

// formatDuration 毫秒格式化为 m:ss.mmm，0 表示未通关
func formatDuration(ms int64) string {
	if ms <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%02d.%03d", ms/60000, ms/1000%60, ms%1000)
}
