package gesture

import "math"

// Action 手势动作
type Action int

const (
	// ActionStop 松开（不射击）
	ActionStop Action = iota
	// ActionShoot 握拳（射击）
	ActionShoot
)

// String 返回动作名称
func (a Action) String() string {
	switch a {
	case ActionShoot:
		return "shoot"
	case ActionStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Reading 一帧的识别结果
type Reading struct {
	// HandDetected 为 false 时其余字段无意义，调用方应保持上一帧的状态
	HandDetected bool
	Action       Action
	// PointerX 食指指尖在摄像头帧中的X坐标（像素），已限制在 [0, screenWidth-pointerSize]
	PointerX float64
}

// Classifier 手势分类器
type Classifier struct {
	// FistThreshold 握拳判定阈值（归一化坐标）
	FistThreshold float64
	// ScreenWidth 屏幕宽度（像素）
	ScreenWidth float64
	// PointerSize 准星尺寸（像素），指针最大值为 ScreenWidth-PointerSize
	PointerSize float64
}

// IsClosedFist 检查食指指尖与拇指指尖是否足够接近
// x、y 两个方向分别比较，都小于阈值才算握拳
func (c Classifier) IsClosedFist(hand Hand) bool {
	index := hand.Landmarks[IndexFingerTip]
	thumb := hand.Landmarks[ThumbTip]
	return math.Abs(index.X-thumb.X) < c.FistThreshold &&
		math.Abs(index.Y-thumb.Y) < c.FistThreshold
}

// PointerX 把食指指尖的归一化X坐标按摄像头帧宽度换算为像素，再限制在屏幕范围内
// 帧宽度未知时按屏幕宽度换算
func (c Classifier) PointerX(hand Hand) float64 {
	width := hand.FrameWidth
	if width <= 0 {
		width = c.ScreenWidth
	}
	x := math.Floor(hand.Landmarks[IndexFingerTip].X * width)
	maxX := c.ScreenWidth - c.PointerSize
	if x < 0 {
		return 0
	}
	if x > maxX {
		return maxX
	}
	return x
}

// Classify 解释检测到的手
// 只使用第一只手；没有手时返回 HandDetected=false
func (c Classifier) Classify(hands []Hand) Reading {
	if len(hands) == 0 {
		return Reading{}
	}

	hand := hands[0]
	action := ActionStop
	if c.IsClosedFist(hand) {
		action = ActionShoot
	}

	return Reading{
		HandDetected: true,
		Action:       action,
		PointerX:     c.PointerX(hand),
	}
}
