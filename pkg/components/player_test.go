package components

import "testing"

func TestIntentAccumulator(t *testing.T) {
	p := &PlayerState{}

	p.Press(DirLeft)
	p.Press(DirRight)
	if p.MoveX != 0 {
		t.Errorf("Opposite keys should cancel, got %d", p.MoveX)
	}

	p.Release(DirLeft)
	if p.MoveX != 1 {
		t.Errorf("Expected right intent, got %d", p.MoveX)
	}

	p.Press(DirUp)
	if p.MoveY != -1 {
		t.Errorf("Expected up intent, got %d", p.MoveY)
	}
}

func TestIntentIgnoresUnmatchedRelease(t *testing.T) {
	p := &PlayerState{}
	// 场景开始前按下的键在本场景松开
	p.Release(DirDown)
	if p.MoveY != 0 {
		t.Errorf("Unmatched release should be ignored, got %d", p.MoveY)
	}

	p.Press(DirDown)
	p.Press(DirDown)
	p.Release(DirDown)
	if p.MoveY != 0 {
		t.Errorf("Repeated press should count once, got %d", p.MoveY)
	}
}
