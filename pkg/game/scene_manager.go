package game

import (
	"github.com/charmbracelet/log"
)

// SceneFactory 场景工厂函数类型
// 用于按状态创建场景，避免 game 包依赖具体场景实现
type SceneFactory func(state SceneState, s *Session) Scene

// SceneManager 管理当前场景，并在场景状态改变时完成切换
//
// 切换顺序：旧场景 Exit → 工厂创建新场景 → 新场景 Enter。
// 进入 StateQuit 后不再创建场景，Session.Running 置为 false。
type SceneManager struct {
	session      *Session
	currentScene Scene
	currentState SceneState
	sceneFactory SceneFactory
}

// NewSceneManager 创建场景管理器
func NewSceneManager(session *Session, factory SceneFactory) *SceneManager {
	return &SceneManager{
		session:      session,
		sceneFactory: factory,
	}
}

// Start 进入初始场景
func (sm *SceneManager) Start(state SceneState) {
	sm.switchTo(state)
}

// GetCurrentScene 返回当前活动的场景，退出后为 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// State 当前场景状态
func (sm *SceneManager) State() SceneState {
	return sm.currentState
}

// Running 是否仍在运行
func (sm *SceneManager) Running() bool {
	return sm.session.Running && sm.currentScene != nil
}

// Update 推进当前场景一帧，必要时切换场景
// 退出动作在任何场景中都立即生效
func (sm *SceneManager) Update(in InputFrame) {
	if sm.currentScene == nil {
		return
	}
	w := sm.currentScene.World()
	if in.Pressed(ActionQuit) {
		w.State = StateQuit
	} else {
		sm.currentScene.Update(in)
	}
	if w.State != sm.currentState {
		sm.switchTo(w.State)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(surface Surface) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(surface)
	}
}

// Shutdown 退出当前场景并保存进度
func (sm *SceneManager) Shutdown() {
	if sm.currentScene != nil {
		sm.currentScene.World().State = StateQuit
		sm.switchTo(StateQuit)
	}
}

func (sm *SceneManager) switchTo(state SceneState) {
	if sm.currentScene != nil {
		log.Debug("[SceneManager] leaving scene", "from", sm.currentState, "to", state)
		sm.session.FadeColor = sm.currentScene.World().Fade.Color
		sm.currentScene.Exit()
		sm.currentScene = nil
	}
	sm.currentState = state

	if state == StateQuit {
		sm.session.Running = false
		sm.session.Persist()
		log.Info("[SceneManager] quit", "level", sm.session.Level())
		return
	}
	if sm.sceneFactory == nil {
		log.Error("[SceneManager] scene factory not set")
		sm.session.Running = false
		return
	}

	scene := sm.sceneFactory(state, sm.session)
	if scene == nil {
		log.Error("[SceneManager] no scene for state", "state", state)
		sm.session.Running = false
		return
	}
	sm.currentScene = scene
	scene.Enter()
	log.Debug("[SceneManager] entered scene", "state", state)

	// 场景在进入时就可能要求切换，例如关卡数据缺失
	if next := scene.World().State; next != state {
		sm.switchTo(next)
	}
}
