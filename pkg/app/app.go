// Package app 提供演示程序的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来：读取配置、恢复保存的移动参数、
// 创建演示场景，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"

	"github.com/decker502/clickwalk/pkg/config"
	"github.com/decker502/clickwalk/pkg/game"
	"github.com/decker502/clickwalk/pkg/scenes"
	"github.com/decker502/clickwalk/pkg/sim"
)

// Config 定义应用启动配置
type Config struct {
	// ScenePath 场景配置文件，为空时使用内置场景
	ScenePath string
	// TuningPath 移动参数文件，为空时使用上次保存的参数
	TuningPath string
	// Persist 是否通过 gdata 保存移动参数
	Persist bool
}

// tuningStep 调参快捷键每次调整的幅度
type tuningStep struct {
	key   ebiten.Key
	apply func(*config.LocomotionConfig)
}

var tuningKeys = []tuningStep{
	{ebiten.KeyDigit1, func(c *config.LocomotionConfig) { c.TurnSmoothing = max(0, c.TurnSmoothing-1) }},
	{ebiten.KeyDigit2, func(c *config.LocomotionConfig) { c.TurnSmoothing++ }},
	{ebiten.KeyDigit3, func(c *config.LocomotionConfig) { c.SlowingSpeed = max(0, c.SlowingSpeed-0.025) }},
	{ebiten.KeyDigit4, func(c *config.LocomotionConfig) { c.SlowingSpeed += 0.025 }},
}

// App 是演示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	tuning       *game.TuningStore
	logger       *zap.Logger

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化演示程序
func NewApp(cfg Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	scene := config.DefaultSceneConfig()
	if cfg.ScenePath != "" {
		loaded, err := config.LoadSceneConfig(cfg.ScenePath)
		if err != nil {
			return nil, fmt.Errorf("场景配置加载失败: %w", err)
		}
		scene = *loaded
		logger.Info("scene config loaded", zap.String("path", cfg.ScenePath))
	}

	var gdataManager *gdata.Manager
	if cfg.Persist {
		m, err := gdata.Open(gdata.Config{AppName: "clickwalk"})
		if err != nil {
			// 无法持久化时降级为内存参数
			logger.Warn("gdata unavailable, tuning will not be saved", zap.Error(err))
		} else {
			gdataManager = m
		}
	}
	store := game.NewTuningStore(gdataManager, config.DefaultLocomotionConfig(), logger)

	if cfg.TuningPath != "" {
		tuning, err := config.LoadLocomotionConfig(cfg.TuningPath)
		if err != nil {
			return nil, fmt.Errorf("移动参数加载失败: %w", err)
		}
		if err := store.Set(tuning); err != nil {
			return nil, err
		}
		logger.Info("tuning loaded", zap.String("path", cfg.TuningPath))
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() (game.Scene, error) {
		world, err := scenes.NewWalkWorld(scene, store.Tuning(), sim.SystemClock{}, logger)
		if err != nil {
			return nil, err
		}
		return scenes.NewWalkScene(world), nil
	})
	if err := sceneManager.Restart(); err != nil {
		return nil, err
	}

	return &App{
		sceneManager: sceneManager,
		tuning:       store,
		logger:       logger.Named("app"),
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.restart()
	}
	for _, step := range tuningKeys {
		if inpututil.IsKeyJustPressed(step.key) {
			a.adjustTuning(step.apply)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// adjustTuning 修改移动参数并重建场景（控制器参数构造后不可修改）
func (a *App) adjustTuning(apply func(*config.LocomotionConfig)) {
	tuning := a.tuning.Tuning()
	apply(&tuning)
	if err := a.tuning.Set(tuning); err != nil {
		a.logger.Warn("tuning rejected", zap.Error(err))
		return
	}
	a.logger.Info("tuning changed",
		zap.Float64("turnSmoothing", tuning.TurnSmoothing),
		zap.Float64("slowingSpeed", tuning.SlowingSpeed))
	a.restart()
}

func (a *App) restart() {
	if err := a.sceneManager.Restart(); err != nil {
		a.logger.Error("failed to restart scene", zap.Error(err))
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 保存移动参数，应在游戏循环结束后调用
func (a *App) Close() error {
	return a.tuning.Save()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Tuning 返回移动参数存储
func (a *App) Tuning() *game.TuningStore {
	return a.tuning
}
