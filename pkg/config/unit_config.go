package config

// 单位配置常量
// 本文件定义了游戏单位（僵尸、子弹、枪）的尺寸、速度和数量上限
// 所有速度单位均为 像素/帧（模拟按固定帧步进，不按秒积分）

// Screen Configuration (屏幕配置)
const (
	// GameWindowWidth 游戏逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 游戏逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Zombie Game"

	// FrameDelayMillis 每帧结束后的固定等待时间（毫秒）
	FrameDelayMillis = 30

	// TicksPerSecond 由固定帧间隔换算出的逻辑帧率
	TicksPerSecond = 1000 / FrameDelayMillis
)

// Zombie Configuration (僵尸配置)
const (
	// ZombieSize 僵尸贴图与碰撞盒边长（像素），碰撞盒以左上角为原点
	ZombieSize = 100.0

	// ZombieSpeed 僵尸向下移动速度
	ZombieSpeed = 5.0

	// MaxLiveZombies 同时存活的僵尸数量上限（生成闸门）
	MaxLiveZombies = 3

	// MaxZombiesReached 到达枪口的僵尸数量上限，达到后游戏结束
	// 与 MaxLiveZombies 相互独立
	MaxZombiesReached = 10
)

// Projectile Configuration (子弹配置)
const (
	// BulletSpeed 子弹向上移动速度
	BulletSpeed = 10.0

	// BulletHitboxSize 子弹碰撞盒边长（像素），碰撞盒以子弹坐标为中心
	BulletHitboxSize = 10.0

	// BulletRadius 子弹绘制半径（像素）
	BulletRadius = 5.0

	// BulletSpawnOffsetY 子弹出生点相对枪口的垂直偏移量（负值表示在枪上方）
	BulletSpawnOffsetY = -30.0
)

// Gun Configuration (枪配置)
const (
	// GunBottomMargin 枪距离屏幕底部的距离（像素）
	GunBottomMargin = 50.0

	// GunY 枪的固定Y坐标，僵尸到达此高度即判定到达枪口
	GunY = GameWindowHeight - GunBottomMargin

	// GunStartX 枪的初始X坐标（屏幕水平中心）
	GunStartX = GameWindowWidth / 2

	// PointerSize 准星贴图边长（像素）
	PointerSize = 30.0
)

// Gesture Configuration (手势配置)
const (
	// DefaultFistThreshold 判定握拳的默认阈值（归一化坐标）
	// 食指指尖与拇指指尖在 x、y 两个方向上的距离都小于该值即视为握拳
	// 这是可用性调优参数，运行时可通过 gesture.fistThreshold 覆盖
	DefaultFistThreshold = 0.05
)

// Game Over Configuration (游戏结束配置)
const (
	// GameOverHoldSeconds 游戏结束画面的保持时长（秒）
	GameOverHoldSeconds = 3.0
)

// HUD Configuration (界面配置)
const (
	// HUDFontSize 左上角状态文字字号
	HUDFontSize = 24.0

	// HUDLineX HUD 文字左边距
	HUDLineX = 10.0

	// HUDLineY HUD 第一行的上边距
	HUDLineY = 10.0

	// HUDLineSpacing HUD 相邻两行的起始Y间距（第一行 Y=10，第二行 Y=50）
	HUDLineSpacing = 40.0

	// GameOverFontSize 结束画面文字字号
	GameOverFontSize = 48.0

	// GameOverText 结束画面文字
	GameOverText = "You Died"
)

// Audio Configuration (音频配置)
const (
	// ShootSoundID 开火音效的资源ID
	ShootSoundID = "SOUND_SHOOT"

	// ZombieImageID 僵尸贴图的资源ID
	ZombieImageID = "IMAGE_ZOMBIE"

	// GunPointerImageID 准星贴图的资源ID
	GunPointerImageID = "IMAGE_GUN_POINTER"

	// GameResourceGroup 启动时必须加载的资源组
	GameResourceGroup = "game"
)
