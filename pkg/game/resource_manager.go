package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"
)

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images, sound effects and font faces,
// ensuring that resources are loaded only once and reused throughout the game.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The game loop is single-threaded and all
// resources are loaded at startup, so no synchronization is needed.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadResourceConfig("assets/resources.yaml"); err != nil {
//	    return err
//	}
//	if err := rm.LoadResourceGroup("game"); err != nil {
//	    return err
//	}
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image     // Cache for loaded images: path -> Image
	audioCache    map[string]*audio.Player     // Cache for loaded audio players: path -> Player
	audioContext  *audio.Context               // Global audio context for audio decoding
	fontSource    *text.GoTextFaceSource       // Shared source for the built-in HUD font
	fontFaceCache map[float64]*text.GoTextFace // Cache for HUD faces: size -> face

	// YAML resource configuration
	config      *ResourceConfig   // Parsed YAML configuration
	resourceMap map[string]string // Resource ID -> file path mapping for quick lookup
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// The audioContext parameter is required for audio decoding and playback.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		audioCache:    make(map[string]*audio.Player),
		audioContext:  audioContext,
		fontFaceCache: make(map[float64]*text.GoTextFace),
		resourceMap:   make(map[string]string),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG, JPEG, GIF (first frame).
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	// Check if the image is already cached
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	// Open the image file
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	// Decode the image
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	// Convert to Ebitengine image
	ebitenImg := ebiten.NewImageFromImage(img)

	// Store in cache
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// LoadSoundEffect loads a one-shot sound effect from the specified path and caches it.
// The stream is resampled to the audio context's sample rate.
// Supported formats: MP3 (.mp3) and OGG Vorbis (.ogg).
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	// Check if the audio is already cached
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	// Read the entire file into memory so the stream can seek without keeping the file open
	audioData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect file %s: %w", path, err)
	}

	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for sound effect %s", path)
	}

	reader := bytes.NewReader(audioData)
	sampleRate := rm.audioContext.SampleRate()

	// Determine the file format by extension
	ext := strings.ToLower(filepath.Ext(path))

	var stream io.ReadSeeker
	switch ext {
	case ".mp3":
		decodedStream, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", path, err)
		}
		stream = decodedStream
	case ".ogg":
		decodedStream, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", path, err)
		}
		stream = decodedStream
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	// Store in cache
	rm.audioCache[path] = player

	return player, nil
}

// LoadResourceConfig 加载 YAML 资源清单并建立 资源ID -> 路径 映射
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &cfg
	rm.buildResourceMap()

	log.Debug().
		Str("component", "ResourceManager").
		Str("path", configPath).
		Int("resources", len(rm.resourceMap)).
		Msg("resource config loaded")
	return nil
}

// buildResourceMap 根据配置建立资源ID到完整路径的映射
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)
	if rm.config == nil {
		return
	}
	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			rm.resourceMap[img.ID] = buildFullPath(rm.config.BasePath, img.Path)
		}
		for _, snd := range group.Sounds {
			rm.resourceMap[snd.ID] = buildFullPath(rm.config.BasePath, snd.Path)
		}
	}
}

// ResolvePath 返回资源ID对应的文件路径
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	path, ok := rm.resourceMap[resourceID]
	return path, ok
}

// LoadImageByID 通过资源ID加载图片
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	path, ok := rm.ResolvePath(resourceID)
	if !ok {
		return nil, fmt.Errorf("image resource not found: %s", resourceID)
	}
	return rm.LoadImage(path)
}

// GetImageByID 从缓存中获取已加载的图片，未加载返回 nil
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	path, ok := rm.ResolvePath(resourceID)
	if !ok {
		return nil
	}
	return rm.imageCache[path]
}

// GetAudioPlayer 通过资源ID获取已加载的音效播放器，未加载返回 nil
func (rm *ResourceManager) GetAudioPlayer(resourceID string) *audio.Player {
	path, ok := rm.ResolvePath(resourceID)
	if !ok {
		return nil
	}
	return rm.audioCache[path]
}

// LoadResourceGroup 加载资源组中的全部图片和音效
// 任意一个资源缺失都返回错误
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded")
	}
	group, ok := rm.config.Groups[groupName]
	if !ok {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s: %w", img.ID, err)
		}
	}
	for _, snd := range group.Sounds {
		path, _ := rm.ResolvePath(snd.ID)
		if _, err := rm.LoadSoundEffect(path); err != nil {
			return fmt.Errorf("failed to load sound %s: %w", snd.ID, err)
		}
	}

	log.Info().
		Str("component", "ResourceManager").
		Str("group", groupName).
		Int("images", len(group.Images)).
		Int("sounds", len(group.Sounds)).
		Msg("resource group loaded")
	return nil
}

// LoadFont 返回内置 HUD 字体（Go Regular）指定字号的字体
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if face, exists := rm.fontFaceCache[size]; exists {
		return face, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}
