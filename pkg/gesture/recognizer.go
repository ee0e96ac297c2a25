package gesture

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ErrFrameUnavailable 摄像头读取失败
// 游戏循环收到该错误后结束
var ErrFrameUnavailable = errors.New("camera frame unavailable")

// HandSource 读取一帧并检测其中的手
type HandSource interface {
	// DetectHands 读取下一帧；没有检测到手时返回空切片
	// 读帧失败时返回包装了 ErrFrameUnavailable 的错误
	DetectHands() ([]Hand, error)
	// Close 释放摄像头等资源
	Close() error
}

// Recognizer 手势识别器
// 组合 HandSource 与 Classifier，每帧产出一个 Reading
type Recognizer struct {
	source     HandSource
	classifier Classifier
}

// NewRecognizer 创建手势识别器
func NewRecognizer(source HandSource, classifier Classifier) *Recognizer {
	return &Recognizer{
		source:     source,
		classifier: classifier,
	}
}

// Next 读取并识别下一帧
func (r *Recognizer) Next() (Reading, error) {
	hands, err := r.source.DetectHands()
	if err != nil {
		return Reading{}, fmt.Errorf("detect hands: %w", err)
	}

	reading := r.classifier.Classify(hands)
	if reading.HandDetected {
		log.Trace().
			Str("component", "Gesture").
			Stringer("action", reading.Action).
			Float64("pointerX", reading.PointerX).
			Msg("hand detected")
	}
	return reading, nil
}

// Close 释放底层资源
func (r *Recognizer) Close() error {
	return r.source.Close()
}
