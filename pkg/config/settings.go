package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，如 ZOMBIEHUNT_CAMERA_INDEX=1
const EnvPrefix = "ZOMBIEHUNT"

// Settings 运行时设置
//
// 只包含设备、识别器、日志和音量相关的设置。
// 玩法参数（速度、数量上限）是常量，不对外开放。
type Settings struct {
	LogLevel string          `mapstructure:"logLevel"`
	Verbose  bool            `mapstructure:"verbose"`
	Camera   CameraSettings  `mapstructure:"camera"`
	Gesture  GestureSettings `mapstructure:"gesture"`
	Assets   AssetSettings   `mapstructure:"assets"`
	Audio    AudioSettings   `mapstructure:"audio"`
}

// CameraSettings 摄像头设置
type CameraSettings struct {
	Index int `mapstructure:"index"`
}

// GestureSettings 手势识别设置
type GestureSettings struct {
	FistThreshold  float64 `mapstructure:"fistThreshold"`
	Model          string  `mapstructure:"model"`
	InputSize      int     `mapstructure:"inputSize"`
	LandmarkOutput string  `mapstructure:"landmarkOutput"`
	ScoreOutput    string  `mapstructure:"scoreOutput"`
	MinHandScore   float64 `mapstructure:"minHandScore"`
}

// AssetSettings 资源设置
type AssetSettings struct {
	Manifest string `mapstructure:"manifest"`
}

// AudioSettings 音频设置
type AudioSettings struct {
	SoundVolume float64 `mapstructure:"soundVolume"`
}

// setDefaults 设置默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("verbose", false)

	v.SetDefault("camera.index", 0)

	v.SetDefault("gesture.fistThreshold", DefaultFistThreshold)
	v.SetDefault("gesture.model", "assets/models/hand_landmark.onnx")
	v.SetDefault("gesture.inputSize", 224)
	v.SetDefault("gesture.landmarkOutput", "xyz_x21")
	v.SetDefault("gesture.scoreOutput", "hand_score")
	v.SetDefault("gesture.minHandScore", 0.5)

	v.SetDefault("assets.manifest", "assets/resources.yaml")

	v.SetDefault("audio.soundVolume", 0.8)
}

// BindFlags 注册命令行参数
// 返回的 FlagSet 需要由调用方解析后再传给 LoadSettings
func BindFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "optional settings file (yaml)")
	fs.Bool("verbose", false, "enable debug logging")
}

// LoadSettings 加载运行时设置
//
// 优先级（从高到低）：命令行参数 > 环境变量 > 配置文件 > 默认值
//
// 参数:
//   - fs: 已解析的命令行参数集合，可为 nil
//
// 返回:
//   - *Settings: 设置
//   - error: 配置文件存在但读取失败，或设置值无效时返回错误
func LoadSettings(fs *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configFile := ""
	if fs != nil {
		if err := v.BindPFlag("verbose", fs.Lookup("verbose")); err != nil {
			return nil, fmt.Errorf("error binding verbose flag: %w", err)
		}
		if f := fs.Lookup("config"); f != nil {
			configFile = f.Value.String()
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("zombiehunt")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error decoding settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return &s, nil
}

// Validate 验证设置有效性
func (s *Settings) Validate() error {
	if s.Camera.Index < 0 {
		return fmt.Errorf("camera index must be >= 0, got %d", s.Camera.Index)
	}
	if s.Gesture.FistThreshold <= 0 || s.Gesture.FistThreshold >= 1 {
		return fmt.Errorf("gesture fist threshold must be in (0, 1), got %.3f", s.Gesture.FistThreshold)
	}
	if s.Gesture.InputSize <= 0 {
		return fmt.Errorf("gesture input size must be > 0, got %d", s.Gesture.InputSize)
	}
	if s.Gesture.Model == "" {
		return fmt.Errorf("gesture model path is empty")
	}
	if s.Gesture.MinHandScore < 0 || s.Gesture.MinHandScore > 1 {
		return fmt.Errorf("gesture min hand score must be in [0, 1], got %.3f", s.Gesture.MinHandScore)
	}
	if s.Assets.Manifest == "" {
		return fmt.Errorf("asset manifest path is empty")
	}
	if s.Audio.SoundVolume < 0 || s.Audio.SoundVolume > 1 {
		return fmt.Errorf("sound volume must be in [0, 1], got %.2f", s.Audio.SoundVolume)
	}
	return nil
}
