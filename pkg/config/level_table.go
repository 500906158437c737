package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// EventType 关卡事件类型
type EventType string

const (
	EventStar      EventType = "star"
	EventBlackHole EventType = "b_hole"
	EventTurret    EventType = "l_blast"
	EventWin       EventType = "win"
)

// tableHeader 脚本表的列
var tableHeader = []string{"time", "type", "x", "y", "speed", "rot_spd"}

// LevelEvent 定时生成事件
// 各类型只使用自己需要的字段，其余为零
type LevelEvent struct {
	Time   float64 // 距关卡开始的毫秒数
	Type   EventType
	X, Y   int
	Speed  int
	RotSpd int
}

// MissingLevelDataError 关卡脚本表无法打开
type MissingLevelDataError struct {
	Level int
	Path  string
	Err   error
}

func (e *MissingLevelDataError) Error() string {
	return fmt.Sprintf("missing level data for level %d (%s): %v", e.Level, e.Path, e.Err)
}

func (e *MissingLevelDataError) Unwrap() error {
	return e.Err
}

// LoadLevelTable 读取第 level 关的脚本表
// 文件不存在或格式错误都返回 *MissingLevelDataError
func LoadLevelTable(level int, path string) ([]LevelEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &MissingLevelDataError{Level: level, Path: path, Err: err}
	}
	defer f.Close()

	events, err := ParseLevelTable(f)
	if err != nil {
		return nil, &MissingLevelDataError{Level: level, Path: path, Err: err}
	}
	return events, nil
}

// ParseLevelTable 解析制表符分隔的脚本表，保留表中顺序
func ParseLevelTable(r io.Reader) ([]LevelEvent, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty level table")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{"time", "type"} {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("level table header lacks %q column", name)
		}
	}

	events := make([]LevelEvent, 0, 40)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		ev, err := parseEvent(record, columns)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseEvent(record []string, columns map[string]int) (LevelEvent, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	number := func(name string) (int, error) {
		s := field(name)
		if s == "" {
			return 0, fmt.Errorf("event %q requires column %q", field("type"), name)
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("column %q: %w", name, err)
		}
		return v, nil
	}

	var ev LevelEvent
	t, err := strconv.ParseFloat(field("time"), 64)
	if err != nil {
		return ev, fmt.Errorf("column \"time\": %w", err)
	}
	ev.Time = t
	ev.Type = EventType(field("type"))

	var required []string
	switch ev.Type {
	case EventStar:
		required = []string{"x", "y", "speed", "rot_spd"}
	case EventBlackHole:
		required = []string{"x", "y", "speed"}
	case EventTurret:
		required = []string{"x", "y"}
	case EventWin:
	default:
		return ev, fmt.Errorf("unknown event type %q", ev.Type)
	}
	for _, name := range required {
		v, err := number(name)
		if err != nil {
			return ev, err
		}
		switch name {
		case "x":
			ev.X = v
		case "y":
			ev.Y = v
		case "speed":
			ev.Speed = v
		case "rot_spd":
			ev.RotSpd = v
		}
	}
	return ev, nil
}

// WriteLevelTable 以脚本表格式写出事件，空字段留空
func WriteLevelTable(w io.Writer, events []LevelEvent) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(tableHeader); err != nil {
		return err
	}
	for _, ev := range events {
		row := []string{strconv.FormatFloat(ev.Time, 'f', -1, 64), string(ev.Type)}
		switch ev.Type {
		case EventStar:
			row = append(row, strconv.Itoa(ev.X), strconv.Itoa(ev.Y), strconv.Itoa(ev.Speed), strconv.Itoa(ev.RotSpd))
		case EventBlackHole:
			row = append(row, strconv.Itoa(ev.X), strconv.Itoa(ev.Y), strconv.Itoa(ev.Speed))
		case EventTurret:
			row = append(row, strconv.Itoa(ev.X), strconv.Itoa(ev.Y))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// RollEvent 按 1:2:5 的权重随机选择黑洞、炮台或星星
// 返回事件的 Time 为 at
func RollEvent(rng *rand.Rand, b SpawnBounds, at float64) LevelEvent {
	ev := LevelEvent{Time: at}
	switch v := rng.Intn(8); {
	case v == 0:
		ev.Type = EventBlackHole
		ev.X = b.HoleX.Pick(rng)
		ev.Y = b.HoleY.Pick(rng)
		ev.Speed = b.HoleSpeed.Pick(rng)
	case v <= 2:
		ev.Type = EventTurret
		if rng.Intn(2) == 0 {
			ev.X = TurretSpawnRight
		} else {
			ev.X = TurretSpawnLeft
		}
		ev.Y = b.TurretY.Pick(rng)
	default:
		ev.Type = EventStar
		ev.X = b.StarX.Pick(rng)
		ev.Y = b.StarY
		tenth := float64(b.StarVelocity.Pick(rng)) / 10
		ev.Speed = int(tenth * tenth)
		ev.RotSpd = b.StarSpin.Pick(rng)
	}
	return ev
}

// GenerateLevelTable 生成一张随机脚本表：
// GeneratedEvents 个事件，间隔 b.Interval，最后在第 GeneratedWinSlot 个间隔处结束关卡
func GenerateLevelTable(rng *rand.Rand, b SpawnBounds) []LevelEvent {
	events := make([]LevelEvent, 0, GeneratedEvents+1)
	for i := 0; i < GeneratedEvents; i++ {
		events = append(events, RollEvent(rng, b, float64(i)*b.Interval))
	}
	events = append(events, LevelEvent{Time: GeneratedWinSlot * b.Interval, Type: EventWin})
	return events
}

// WriteGeneratedTable 生成脚本表并写入文件
func WriteGeneratedTable(path string, rng *rand.Rand, b SpawnBounds) ([]LevelEvent, error) {
	events := GenerateLevelTable(rng, b)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create level table %s: %w", path, err)
	}
	if err := WriteLevelTable(f, events); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write level table %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close level table %s: %w", path, err)
	}
	return events, nil
}
