package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/decker502/clickwalk/pkg/app"
	"github.com/decker502/clickwalk/pkg/config"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	scenePath  = flag.String("scene", "", "场景配置文件（默认使用内置场景）")
	tuningPath = flag.String("tuning", "", "移动参数文件（默认使用上次保存的参数）")
	noPersist  = flag.Bool("no-persist", false, "不保存移动参数")
)

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}

func main() {
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	game, err := app.NewApp(app.Config{
		ScenePath:  *scenePath,
		TuningPath: *tuningPath,
		Persist:    !*noPersist,
	}, logger)
	if err != nil {
		logger.Fatal("failed to start", zap.Error(err))
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Click to Walk")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game loop exited", zap.Error(err))
	}
	if err := game.Close(); err != nil {
		logger.Warn("failed to save tuning", zap.Error(err))
	}
}
