package game

// SceneState 顶层场景状态
type SceneState int

const (
	StateStart SceneState = iota
	StateGame
	StateGameOver
	StateWin
	StateQuit
)

var stateNames = map[SceneState]string{
	StateStart:    "start",
	StateGame:     "game",
	StateGameOver: "game_over",
	StateWin:      "win",
	StateQuit:     "quit",
}

func (s SceneState) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// ParseSceneState 将名称解析为场景状态
func ParseSceneState(name string) (SceneState, bool) {
	for s, n := range stateNames {
		if n == name {
			return s, true
		}
	}
	return StateStart, false
}
