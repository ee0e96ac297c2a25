// Package vision 基于 OpenCV 的摄像头采集与手部关键点检测
//
// Tracker 实现 gesture.HandSource：
//   - 通过 gocv.VideoCapture 打开摄像头，每次调用读取一帧
//   - 通过 gocv dnn 模块运行 ONNX 手部关键点模型（21点，输入为正方形 RGB）
//
// 模型直接作用于整帧（不做手掌检测裁剪），输出坐标按输入尺寸归一化。
package vision

import (
	"fmt"
	"image"

	"github.com/decker502/zombiehunt/pkg/gesture"
	"github.com/rs/zerolog/log"
	"gocv.io/x/gocv"
)

// TrackerConfig 检测器配置
type TrackerConfig struct {
	// CameraIndex 摄像头设备索引
	CameraIndex int
	// ModelPath ONNX 模型路径
	ModelPath string
	// InputSize 模型输入边长（像素）
	InputSize int
	// LandmarkOutput 关键点输出层名称（63个浮点数）
	LandmarkOutput string
	// ScoreOutput 手部存在置信度输出层名称
	ScoreOutput string
	// MinHandScore 置信度低于该值视为没有手
	MinHandScore float64
}

// Tracker 摄像头 + 关键点模型
type Tracker struct {
	cfg     TrackerConfig
	capture *gocv.VideoCapture
	net     gocv.Net
	frame   gocv.Mat
}

// NewTracker 打开摄像头并加载模型
// 任一步失败都会释放已获取的资源
func NewTracker(cfg TrackerConfig) (*Tracker, error) {
	net := gocv.ReadNetFromONNX(cfg.ModelPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to load hand landmark model %s", cfg.ModelPath)
	}

	capture, err := gocv.OpenVideoCapture(cfg.CameraIndex)
	if err != nil {
		net.Close()
		return nil, fmt.Errorf("failed to open camera %d: %w", cfg.CameraIndex, err)
	}

	log.Info().
		Str("component", "Vision").
		Int("camera", cfg.CameraIndex).
		Str("model", cfg.ModelPath).
		Msg("hand tracker ready")

	return &Tracker{
		cfg:     cfg,
		capture: capture,
		net:     net,
		frame:   gocv.NewMat(),
	}, nil
}

// DetectHands 读取一帧并检测手
func (t *Tracker) DetectHands() ([]gesture.Hand, error) {
	if ok := t.capture.Read(&t.frame); !ok || t.frame.Empty() {
		return nil, fmt.Errorf("camera %d: %w", t.cfg.CameraIndex, gesture.ErrFrameUnavailable)
	}

	// 摄像头输出 BGR，swapRB=true 转为模型需要的 RGB，同时缩放到 [0, 1]
	size := image.Pt(t.cfg.InputSize, t.cfg.InputSize)
	blob := gocv.BlobFromImage(t.frame, 1.0/255.0, size, gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	t.net.SetInput(blob, "")
	outputs := t.net.ForwardLayers([]string{t.cfg.LandmarkOutput, t.cfg.ScoreOutput})
	defer func() {
		for i := range outputs {
			outputs[i].Close()
		}
	}()
	if len(outputs) != 2 {
		return nil, fmt.Errorf("unexpected model output count %d", len(outputs))
	}

	scores, err := outputs[1].DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("read hand score: %w", err)
	}
	if len(scores) == 0 || float64(scores[0]) < t.cfg.MinHandScore {
		return nil, nil
	}

	raw, err := outputs[0].DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("read landmarks: %w", err)
	}

	hand, err := gesture.DecodeLandmarks(raw, float64(t.cfg.InputSize))
	if err != nil {
		return nil, err
	}
	hand.Score = float64(scores[0])
	hand.FrameWidth = float64(t.frame.Cols())

	return []gesture.Hand{hand}, nil
}

// Close 释放摄像头和模型
func (t *Tracker) Close() error {
	t.frame.Close()
	if err := t.net.Close(); err != nil {
		log.Warn().Str("component", "Vision").Err(err).Msg("failed to close model")
	}
	if err := t.capture.Close(); err != nil {
		return fmt.Errorf("failed to release camera: %w", err)
	}
	log.Info().Str("component", "Vision").Msg("camera released")
	return nil
}
