package game

// Scene 一个顶层画面（开始、游戏、失败、胜利）
// 每个场景拥有自己的 World，状态改变后由 SceneManager 负责切换
type Scene interface {
	// Enter 场景成为当前场景时调用一次
	Enter()

	// Update 推进一帧，in 为本帧的输入事件
	Update(in InputFrame)

	// Draw 将场景绘制到 surface
	Draw(surface Surface)

	// Exit 场景被替换或程序退出前调用一次
	Exit()

	// World 场景的模拟状态
	World() *World
}
