package config

// 画面与节拍
const (
	ScreenWidth  = 1024
	ScreenHeight = 768
	DefaultFPS   = 30

	// LevelCount 关卡总数，最后一关为 Boss 战
	LevelCount = 5
)

// 玩家
const (
	PlayerSpeed         = 400.0 // 像素/秒
	PlayerAnimSpeed     = 6.0   // 帧/秒
	PlayerSheetCols     = 4
	PlayerSheetRows     = 1
	PlayerMaxHealth     = 5
	InvulnerabilityMs   = 1200.0
	ShakeBurst          = 20.0
	ShakeDecayPerSecond = 20.0
	HealthBarX          = 20
	HealthBarY          = 20
	HealthBarSheetCols  = 3
	HealthBarSheetRows  = 2
)

// 星星与碎片
const (
	StarDecelDivisor = 2.5 // 减速度 = 初速度 / 2.5
	ShardCount       = 5
	ShardSpread      = 72.0 // 度
	ShardSpeed       = 400.0
	ShardAccel       = 800.0 // 像素/秒²
	TurretShotSpeed  = 1000.0
	TurretShotSize   = 46
	ProceduralStarY  = -100
)

// 黑洞
const (
	HoleRingColors    = 50
	HoleGravityFactor = 17.0 / 3.0 // 引力 = (alpha/HoleGravityFactor)^3 / d
)

// 激光炮台
const (
	TurretSpawnRight  = 1174
	TurretSpawnLeft   = -150
	TurretStandoff    = 100
	TurretAppearSpeed = 100.0 // 像素/秒
	TurretLeaveSpeed  = 450.0
	TurretRetractFPS  = 24.0
	TurretSheetCols   = 3
	TurretSheetRows   = 3
)

// Boss
const (
	BossPartHealth = 10
	BossEngines    = 2

	// 脉动缩放系数 (sin(t/1000)*Amplitude + Offset) / Divisor
	BossPulseAmplitude = 0.5
	BossPulseOffset    = 20.5
	BossPulseDivisor   = 20.0
)

// 开始画面
const (
	LogoPulseAmplitude = 1.0
	LogoPulseOffset    = 10.0
	LogoPulseDivisor   = 10.0
	LevelDigitSize     = 25
	LevelDigitCols     = 5
	LevelDigitRows     = 2
	ControlsX          = 10
	ControlsY          = 10
)

// 场景过渡
const (
	FadeSpeed       = 256.0 // alpha/秒
	FadeSpeedScreen = 200.0 // 胜负画面使用的较慢过渡
)

// 背景
const (
	BackgroundSpeed    = 50.0 // 像素/秒
	BossBackgroundFPS  = 30.0
	BossBackgroundSize = 60
	BackgroundWrap     = ScreenWidth // 两块背景的回绕距离
)

// 关卡事件
const (
	ProceduralInterval = 1000.0 // 毫秒
	GeneratedEvents    = 35
	GeneratedInterval  = 1500.0
	GeneratedWinSlot   = 38
)

// 普通关卡的移动边界
const (
	BorderTop    = -1
	BorderLeft   = -1
	BorderBottom = ScreenHeight
	BorderRight  = ScreenWidth
)

// Boss 关卡的移动边界
const (
	BossBorderTop   = 230
	BossBorderLeft  = 30
	BossBorderRight = ScreenWidth - 30
)
