package config

import (
	"bytes"
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleTable = "time\ttype\tx\ty\tspeed\trot_spd\n" +
	"0\tstar\t300\t-100\t225\t90\n" +
	"1500\tb_hole\t512\t400\t60\t\n" +
	"1500\tl_blast\t1174\t500\t\t\n" +
	"9000\twin\n"

func TestParseLevelTable(t *testing.T) {
	events, err := ParseLevelTable(strings.NewReader(sampleTable))
	if err != nil {
		t.Fatalf("ParseLevelTable failed: %v", err)
	}
	if len(events) != 4 {
		t.Fatalf("Expected 4 events, got %d", len(events))
	}

	want := []LevelEvent{
		{Time: 0, Type: EventStar, X: 300, Y: -100, Speed: 225, RotSpd: 90},
		{Time: 1500, Type: EventBlackHole, X: 512, Y: 400, Speed: 60},
		{Time: 1500, Type: EventTurret, X: 1174, Y: 500},
		{Time: 9000, Type: EventWin},
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("Event %d: expected %+v, got %+v", i, want[i], events[i])
		}
	}
}

func TestParseLevelTableErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no type column", "time\tx\n0\t1\n"},
		{"unknown type", "time\ttype\n0\tcomet\n"},
		{"bad time", "time\ttype\nsoon\twin\n"},
		{"missing star field", "time\ttype\tx\ty\tspeed\trot_spd\n0\tstar\t1\t2\t3\t\n"},
		{"non numeric x", "time\ttype\tx\ty\n0\tl_blast\tleft\t2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLevelTable(strings.NewReader(tt.input)); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestLoadLevelTableMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvl_09.tsv")
	_, err := LoadLevelTable(9, path)
	if err == nil {
		t.Fatal("Expected an error for missing table")
	}

	var missing *MissingLevelDataError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected *MissingLevelDataError, got %T", err)
	}
	if missing.Level != 9 || missing.Path != path {
		t.Errorf("Unexpected error fields: %+v", missing)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("Error should wrap os.ErrNotExist")
	}
	if !strings.Contains(err.Error(), "lvl_09.tsv") {
		t.Errorf("Message should name the file, got %q", err.Error())
	}
}

func TestWriteLevelTableRoundTrip(t *testing.T) {
	events, err := ParseLevelTable(strings.NewReader(sampleTable))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteLevelTable(&buf, events); err != nil {
		t.Fatalf("WriteLevelTable failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "time\ttype\tx\ty\tspeed\trot_spd\n") {
		t.Errorf("Unexpected header: %q", strings.SplitN(buf.String(), "\n", 2)[0])
	}

	again, err := ParseLevelTable(&buf)
	if err != nil {
		t.Fatalf("Re-parse failed: %v", err)
	}
	if len(again) != len(events) {
		t.Fatalf("Expected %d events, got %d", len(events), len(again))
	}
	for i := range events {
		if again[i] != events[i] {
			t.Errorf("Event %d changed: %+v → %+v", i, events[i], again[i])
		}
	}
}

func TestGenerateLevelTable(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := DefaultGeneratorBounds()
	events := GenerateLevelTable(rng, b)

	if len(events) != GeneratedEvents+1 {
		t.Fatalf("Expected %d events, got %d", GeneratedEvents+1, len(events))
	}
	for i, ev := range events[:GeneratedEvents] {
		if ev.Time != float64(i)*1500 {
			t.Errorf("Event %d: expected time %d, got %v", i, i*1500, ev.Time)
		}
		switch ev.Type {
		case EventStar:
			if ev.X < 100 || ev.X > 924 || ev.Y != -100 {
				t.Errorf("Star %d out of bounds: %+v", i, ev)
			}
			if ev.Speed < 132 || ev.Speed > 484 {
				t.Errorf("Star %d speed out of range: %d", i, ev.Speed)
			}
			if ev.RotSpd < 1 || ev.RotSpd > 360 {
				t.Errorf("Star %d spin out of range: %d", i, ev.RotSpd)
			}
		case EventBlackHole:
			if ev.X < 200 || ev.X > 824 || ev.Y < 200 || ev.Y > 568 || ev.Speed < 30 || ev.Speed > 120 {
				t.Errorf("Black hole %d out of bounds: %+v", i, ev)
			}
		case EventTurret:
			if ev.X != TurretSpawnLeft && ev.X != TurretSpawnRight {
				t.Errorf("Turret %d must spawn off screen, got x=%d", i, ev.X)
			}
		default:
			t.Errorf("Unexpected event type %q", ev.Type)
		}
	}
	last := events[len(events)-1]
	if last.Type != EventWin || last.Time != 38*1500 {
		t.Errorf("Expected win at 57000, got %+v", last)
	}
}

func TestGenerateLevelTableDeterministic(t *testing.T) {
	a := GenerateLevelTable(rand.New(rand.NewSource(99)), DefaultGeneratorBounds())
	b := GenerateLevelTable(rand.New(rand.NewSource(99)), DefaultGeneratorBounds())
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Same seed should give same table, differ at %d", i)
		}
	}
}

func TestRollEventWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	counts := map[EventType]int{}
	const n = 8000
	for i := 0; i < n; i++ {
		counts[RollEvent(rng, DefaultProceduralBounds(), 0).Type]++
	}
	// 期望 1000 / 2000 / 5000
	if c := counts[EventBlackHole]; c < 800 || c > 1200 {
		t.Errorf("Black hole share off: %d", c)
	}
	if c := counts[EventTurret]; c < 1700 || c > 2300 {
		t.Errorf("Turret share off: %d", c)
	}
	if c := counts[EventStar]; c < 4600 || c > 5400 {
		t.Errorf("Star share off: %d", c)
	}
}

func TestWriteGeneratedTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvl_04.tsv")
	events, err := WriteGeneratedTable(path, rand.New(rand.NewSource(3)), DefaultGeneratorBounds())
	if err != nil {
		t.Fatalf("WriteGeneratedTable failed: %v", err)
	}
	loaded, err := LoadLevelTable(4, path)
	if err != nil {
		t.Fatalf("LoadLevelTable failed: %v", err)
	}
	if len(loaded) != len(events) {
		t.Fatalf("Expected %d events on disk, got %d", len(events), len(loaded))
	}
}
