// walksim 在无窗口的情况下运行演示场景，按固定步长模拟一次点击移动并输出阶段变化
//
// 用法:
//
//	go run ./cmd/walksim -x 3 -z 5
//	go run ./cmd/walksim -target chest -verbose
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/decker502/clickwalk/pkg/config"
	"github.com/decker502/clickwalk/pkg/locomotion"
	"github.com/decker502/clickwalk/pkg/scenes"
	"github.com/decker502/clickwalk/pkg/sim"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	scenePath  = flag.String("scene", "", "场景配置文件（默认使用内置场景）")
	tuningPath = flag.String("tuning", "", "移动参数文件")
	targetName = flag.String("target", "", "要交互的物体名称（优先于 -x/-z）")
	targetX    = flag.Float64("x", 3, "目标点 X")
	targetZ    = flag.Float64("z", 5, "目标点 Z")
	maxSeconds = flag.Float64("max", 30, "最长模拟时间（秒）")
	tps        = flag.Int("tps", 60, "每秒模拟步数")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "walksim: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
		defer func() { _ = logger.Sync() }()
	}

	scene := config.DefaultSceneConfig()
	if *scenePath != "" {
		loaded, err := config.LoadSceneConfig(*scenePath)
		if err != nil {
			return err
		}
		scene = *loaded
	}
	tuning := config.DefaultLocomotionConfig()
	if *tuningPath != "" {
		loaded, err := config.LoadLocomotionConfig(*tuningPath)
		if err != nil {
			return err
		}
		tuning = loaded
	}
	if *tps <= 0 {
		return fmt.Errorf("tps must be > 0, got %d", *tps)
	}

	// 交互锁按真实时间等待，这里用模拟时间驱动它
	clock := sim.NewManualClock(time.Unix(0, 0))
	world, err := scenes.NewWalkWorld(scene, tuning, clock, logger)
	if err != nil {
		return err
	}

	if *targetName != "" {
		var found bool
		for _, it := range world.Interactables() {
			if it.Name == *targetName {
				world.Click(it.Center)
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown interactable %q", *targetName)
		}
	} else {
		world.Click(mgl64.Vec3{*targetX, 0, *targetZ})
	}

	dt := 1.0 / float64(*tps)
	step := time.Second / time.Duration(*tps)
	maxSteps := int(*maxSeconds * float64(*tps))

	fmt.Printf("destination: (%.2f, %.2f)\n", world.Controller().Destination().X(), world.Controller().Destination().Z())

	ctrl := world.Controller()
	lastPhase := locomotion.Phase(-1)
	lastLock := ctrl.LockPhase()
	for i := 0; i < maxSteps; i++ {
		clock.Advance(step)
		world.Step(dt)

		if ctrl.Phase() != lastPhase || ctrl.LockPhase() != lastLock {
			pos := world.Player().Position()
			fmt.Printf("t=%6.3fs  phase=%-12s lock=%-8s pos=(%.3f, %.3f) speed=%.3f\n",
				world.Elapsed(), ctrl.Phase(), ctrl.LockPhase(), pos.X(), pos.Z(), ctrl.Speed())
			lastPhase = ctrl.Phase()
			lastLock = ctrl.LockPhase()
		}

		if ctrl.Phase() == locomotion.PhaseStopping && !ctrl.IsLocked() {
			fmt.Printf("arrived after %.3fs\n", world.Elapsed())
			return nil
		}
	}

	return fmt.Errorf("did not arrive within %.1fs", *maxSeconds)
}
