package game

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"
)

// SoundPlayer 按资源ID播放音效
// 系统只依赖该接口，便于在测试中替换
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效的播放
//   - 应用音量设置
//   - 通过资源ID播放，无需关心路径
type AudioManager struct {
	resourceManager *ResourceManager         // 资源管理器（用于查找已加载的音效）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（资源ID -> 播放器）
	soundVolume     float64                  // 音效音量 (0.0 ~ 1.0)
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（音效需已通过资源组加载）
//   - soundVolume: 音效音量 (0.0 ~ 1.0)
func NewAudioManager(rm *ResourceManager, soundVolume float64) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		soundPlayers:    make(map[string]*audio.Player),
		soundVolume:     soundVolume,
	}
}

// PlaySound 播放音效
// 每次调用从头播放一次
//
// 参数：
//   - soundID: 音效资源ID（如 "SOUND_SHOOT"）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.soundVolume)

	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Warn().Str("component", "AudioManager").Str("sound", soundID).Err(err).Msg("failed to rewind sound")
	}
	player.Play()

	return true
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.soundVolume
}

// getSoundPlayer 获取音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	// 检查缓存
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}

	if am.resourceManager == nil {
		return nil
	}

	// 从 ResourceManager 获取（启动时已通过资源组加载）
	player := am.resourceManager.GetAudioPlayer(soundID)
	if player == nil {
		log.Warn().Str("component", "AudioManager").Str("sound", soundID).Msg("sound not found")
		return nil
	}
	am.soundPlayers[soundID] = player
	return player
}
