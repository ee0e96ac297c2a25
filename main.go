package main

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/zombiehunt/internal/vision"
	"github.com/decker502/zombiehunt/pkg/app"
	"github.com/decker502/zombiehunt/pkg/config"
	"github.com/decker502/zombiehunt/pkg/game"
	"github.com/decker502/zombiehunt/pkg/gesture"
	"github.com/decker502/zombiehunt/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel"
)

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.BindFlags(fs)
	_ = fs.Parse(os.Args[1:])

	settings, err := config.LoadSettings(fs)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load settings")
	}
	app.SetupLogging(settings.LogLevel, settings.Verbose)

	if err := run(settings); err != nil {
		log.Fatal().Err(err).Msg("game exited with error")
	}
	log.Info().Str("component", "Main").Msg("bye")
}

// run 初始化资源、摄像头和场景，然后运行游戏循环
// 摄像头与模型在游戏循环结束后一定会被释放
func run(settings *config.Settings) error {
	audioContext := audio.NewContext(48000)

	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig(settings.Assets.Manifest); err != nil {
		return err
	}
	if err := resourceManager.LoadResourceGroup(config.GameResourceGroup); err != nil {
		return err
	}
	audioManager := game.NewAudioManager(resourceManager, settings.Audio.SoundVolume)
	log.Info().Str("component", "Main").Float64("soundVolume", audioManager.GetSoundVolume()).Msg("audio ready")

	metrics, err := game.NewMetrics()
	if err != nil {
		return err
	}
	otel.SetMeterProvider(metrics.MeterProvider())
	defer logSessionTotals(metrics)

	tracker, err := vision.NewTracker(vision.TrackerConfig{
		CameraIndex:    settings.Camera.Index,
		ModelPath:      settings.Gesture.Model,
		InputSize:      settings.Gesture.InputSize,
		LandmarkOutput: settings.Gesture.LandmarkOutput,
		ScoreOutput:    settings.Gesture.ScoreOutput,
		MinHandScore:   settings.Gesture.MinHandScore,
	})
	if err != nil {
		return err
	}
	recognizer := gesture.NewRecognizer(tracker, gesture.Classifier{
		FistThreshold: settings.Gesture.FistThreshold,
		ScreenWidth:   config.GameWindowWidth,
		PointerSize:   config.PointerSize,
	})
	defer func() {
		if err := recognizer.Close(); err != nil {
			log.Warn().Str("component", "Main").Err(err).Msg("failed to release camera")
		}
	}()

	sceneManager := game.NewSceneManager()
	gameScene, err := scenes.NewGameScene(
		sceneManager,
		resourceManager,
		recognizer,
		audioManager,
		metrics,
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)
	if err != nil {
		return err
	}
	sceneManager.SwitchTo(gameScene)

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetTPS(config.TicksPerSecond)

	log.Info().Str("component", "Main").Msg("starting game loop")
	err = ebiten.RunGame(app.NewApp(sceneManager))
	// 窗口被关闭时场景不会收到退出按键
	sceneManager.Terminate()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// logSessionTotals 输出本局计数总数并关闭 MeterProvider
func logSessionTotals(metrics *game.Metrics) {
	ctx := context.Background()
	totals, err := metrics.Collect(ctx)
	if err != nil {
		log.Warn().Str("component", "Main").Err(err).Msg("failed to collect metrics")
	} else {
		log.Info().
			Str("component", "Main").
			Int64("zombiesSpawned", totals.ZombiesSpawned).
			Int64("zombiesKilled", totals.ZombiesKilled).
			Int64("zombiesReached", totals.ZombiesReached).
			Int64("shotsFired", totals.ShotsFired).
			Msg("session totals")
	}
	if err := metrics.Shutdown(ctx); err != nil {
		log.Warn().Str("component", "Main").Err(err).Msg("failed to shut down metrics")
	}
}
