package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "player_data.ini"))
	data, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if data.Level != 1 {
		t.Errorf("Expected default level 1, got %d", data.Level)
	}
}

func TestFileStoreRoundTripKeepsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "player_data.ini")
	if err := os.WriteFile(path, []byte("lvl=3\nvolume=7"), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(path)
	data, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if data.Level != 3 {
		t.Fatalf("Expected level 3, got %d", data.Level)
	}

	data.Level = 4
	if err := s.Save(data); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	raw, _ := os.ReadFile(path)
	if string(raw) != "lvl=4\nvolume=7" {
		t.Errorf("Unexpected file content %q", raw)
	}
}

func TestFileStoreInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing separator", "lvl"},
		{"bad level", "lvl=three"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "player_data.ini")
			os.WriteFile(path, []byte(tt.content), 0644)
			data, err := NewFileStore(path).Load()
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), "line 1") {
				t.Errorf("Error should name the line: %v", err)
			}
			if data == nil || data.Level != 1 {
				t.Error("Load should fall back to defaults on error")
			}
		})
	}
}

func TestGdataStoreWithoutManager(t *testing.T) {
	s := NewGdataStoreWithManager(nil)
	data, err := s.Load()
	if err != nil || data.Level != 1 {
		t.Errorf("Expected default progress, got %+v, %v", data, err)
	}
	if err := s.Save(&SaveData{Level: 2}); err != nil {
		t.Errorf("Save without manager should be a no-op, got %v", err)
	}
}

func TestMemoryStoreCopies(t *testing.T) {
	s := &MemoryStore{}
	d := &SaveData{Level: 2}
	s.Save(d)
	d.Level = 5

	got, _ := s.Load()
	if got.Level != 2 {
		t.Errorf("Store should keep a copy, got %d", got.Level)
	}
}

func TestSaveDataClampLevel(t *testing.T) {
	tests := []struct{ in, want int }{{0, 1}, {3, 3}, {6, 5}, {-2, 1}}
	for _, tt := range tests {
		d := &SaveData{Level: tt.in}
		d.ClampLevel(5)
		if d.Level != tt.want {
			t.Errorf("ClampLevel(%d) = %d, want %d", tt.in, d.Level, tt.want)
		}
	}
}

func TestNewSessionClampsSavedLevel(t *testing.T) {
	s := NewSession(SessionOptions{Store: &MemoryStore{Data: &SaveData{Level: 9}}})
	if s.Level() != s.LevelCount() {
		t.Errorf("Expected level clamped to %d, got %d", s.LevelCount(), s.Level())
	}
	if s.RunID == "" {
		t.Error("Session should have a run id")
	}
}
