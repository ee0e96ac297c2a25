// Package gesture 把手部关键点解释为射击指令
//
// 数据流：摄像头帧 → HandSource 检测出的关键点 → Classifier → Reading。
// 本包不依赖具体的摄像头或模型实现，HandSource 由 internal/vision 提供。
package gesture

import "fmt"

// LandmarkCount 单只手的关键点数量
const LandmarkCount = 21

// 关键点索引（21点手部模型）
const (
	Wrist          = 0
	ThumbTip       = 4
	IndexFingerTip = 8
)

// Landmark 单个关键点，坐标归一化到 [0, 1]（相对于输入帧）
type Landmark struct {
	X, Y, Z float64
}

// Hand 一只手的全部关键点
type Hand struct {
	Landmarks [LandmarkCount]Landmark
	// Score 手部存在置信度
	Score float64
	// FrameWidth 摄像头帧宽度（像素），为 0 时按屏幕宽度换算指针
	FrameWidth float64
}

// DecodeLandmarks 把模型的原始输出解码为一只手
//
// 参数:
//   - raw: 模型输出，按 (x, y, z) 顺序排列的 21 个关键点，坐标为输入图像的像素值
//   - inputSize: 模型输入边长（像素），用于归一化
//
// 返回:
//   - Hand: 归一化后的关键点
//   - error: 数据长度不足或输入尺寸无效时返回错误
func DecodeLandmarks(raw []float32, inputSize float64) (Hand, error) {
	var hand Hand
	if inputSize <= 0 {
		return hand, fmt.Errorf("invalid input size %.1f", inputSize)
	}
	if len(raw) < LandmarkCount*3 {
		return hand, fmt.Errorf("landmark output too short: got %d values, want %d", len(raw), LandmarkCount*3)
	}

	for i := 0; i < LandmarkCount; i++ {
		hand.Landmarks[i] = Landmark{
			X: float64(raw[i*3]) / inputSize,
			Y: float64(raw[i*3+1]) / inputSize,
			Z: float64(raw[i*3+2]) / inputSize,
		}
	}
	return hand, nil
}
