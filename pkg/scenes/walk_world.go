package scenes

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/decker502/clickwalk/pkg/animator"
	"github.com/decker502/clickwalk/pkg/components"
	"github.com/decker502/clickwalk/pkg/config"
	"github.com/decker502/clickwalk/pkg/ecs"
	"github.com/decker502/clickwalk/pkg/locomotion"
	"github.com/decker502/clickwalk/pkg/navmesh"
	"github.com/decker502/clickwalk/pkg/sim"
	"github.com/decker502/clickwalk/pkg/utils"
)

// interactState 交互动画状态名
const interactState = "Interact"

// WalkWorld 演示场景的模拟部分（不依赖渲染）
//
// 每个 Step 的执行顺序：
//  1. 控制器 Tick
//  2. 动画 Update（计算根运动）
//  3. 控制器 OnPoseApplied（根运动回写寻路速度）
//  4. 寻路代理 Update
//  5. 调度器恢复到期的任务（交互锁）
type WalkWorld struct {
	entityManager *ecs.EntityManager
	player        ecs.EntityID

	mesh       *navmesh.Mesh
	agent      *navmesh.Agent
	animator   *animator.Animator
	controller *locomotion.Controller
	loop       *sim.Loop

	logger *zap.Logger
}

// NewWalkWorld 根据场景配置创建演示世界
//
// 参数:
//   - scene: 场景配置（可行走区域、出生点、可交互物体）
//   - tuning: 移动控制参数
//   - clock: 交互锁使用的真实时间来源，nil 时使用系统时间
//   - logger: 日志记录器，可为 nil
//
// 返回:
//   - *WalkWorld: 演示世界
//   - error: 配置无效时返回错误
func NewWalkWorld(scene config.SceneConfig, tuning config.LocomotionConfig, clock sim.Clock, logger *zap.Logger) (*WalkWorld, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}

	areas := make([]navmesh.Area, 0, len(scene.Walkable))
	for _, a := range scene.Walkable {
		areas = append(areas, navmesh.Area{MinX: a.MinX, MinZ: a.MinZ, MaxX: a.MaxX, MaxZ: a.MaxZ})
	}
	mesh, err := navmesh.NewMesh(0, areas...)
	if err != nil {
		return nil, err
	}

	w := &WalkWorld{
		entityManager: ecs.NewEntityManager(),
		mesh:          mesh,
		logger:        logger,
	}

	// 角色
	spawn := mesh.ClosestPoint(mgl64.Vec3{scene.Spawn.X, 0, scene.Spawn.Z})
	transform := components.NewTransformComponent(spawn, utils.YawRotation(scene.SpawnYaw))
	w.player = w.entityManager.CreateEntity()
	w.entityManager.AddComponent(w.player, transform)

	w.agent = navmesh.NewAgent(mesh, transform, navmesh.AgentParams{
		Speed:            scene.Agent.Speed,
		Acceleration:     scene.Agent.Acceleration,
		StoppingDistance: scene.Agent.StoppingDistance,
		AutoBraking:      scene.Agent.AutoBraking,
	})

	w.animator, err = animator.New(transform, animator.DefaultStates(scene.InteractDuration), "Locomotion", logger)
	if err != nil {
		return nil, err
	}

	w.loop = sim.NewLoop(sim.NewScheduler(clock, logger))

	w.controller, err = locomotion.NewController(tuning, locomotion.Deps{
		Transform:  transform,
		Pathfinder: w.agent,
		NavMesh:    mesh,
		Animator:   w.animator,
		Scheduler:  w.loop.Scheduler(),
	}, locomotion.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	// 可交互物体
	for _, it := range scene.Interactables {
		w.addInteractable(it)
	}

	w.loop.Register(sim.StageTick, w.controller.Tick)
	w.loop.Register(sim.StageAnimation, w.animator.Update)
	w.loop.Register(sim.StagePoseApplied, w.controller.OnPoseApplied)
	w.loop.Register(sim.StagePhysics, w.agent.Update)

	logger.Info("walk world ready",
		zap.Int("areas", len(areas)),
		zap.Int("interactables", len(scene.Interactables)))
	return w, nil
}

func (w *WalkWorld) addInteractable(it config.InteractableConfig) {
	center := mgl64.Vec3{it.Position.X, 0, it.Position.Z}
	anchor := w.mesh.ClosestPoint(mgl64.Vec3{it.Anchor.X, 0, it.Anchor.Z})

	id := w.entityManager.CreateEntity()
	w.entityManager.AddComponent(id, components.NewTransformComponent(center, mgl64.QuatIdent()))
	w.entityManager.AddComponent(id, &components.InteractableComponent{
		Name:   it.Name,
		Center: center,
		Radius: it.Radius,
		Anchor: locomotion.Anchor{
			Position: anchor,
			Rotation: utils.YawRotation(it.AnchorYaw),
		},
		OnInteract: w.playInteract,
	})
}

func (w *WalkWorld) playInteract(name string) {
	if err := w.animator.Play(interactState); err != nil {
		w.logger.Error("failed to play interaction", zap.String("target", name), zap.Error(err))
		return
	}
	w.logger.Info("interact", zap.String("target", name))
}

// Click 处理一次指针点击（世界坐标）
//
// 点中可交互物体时走过去交互，否则移动到点击位置。
func (w *WalkWorld) Click(point mgl64.Vec3) {
	if target := w.InteractableAt(point); target != nil {
		w.controller.OnInteractableClick(target)
		return
	}
	w.controller.OnGroundClick(locomotion.HitResult{Point: point})
}

// InteractableAt 返回点击位置上的可交互物体，多个重叠时取最早创建的
func (w *WalkWorld) InteractableAt(point mgl64.Vec3) *components.InteractableComponent {
	for _, id := range ecs.GetEntitiesWith2[*components.InteractableComponent, *components.TransformComponent](w.entityManager) {
		c, _ := ecs.GetComponent[*components.InteractableComponent](w.entityManager, id)
		if c.HitTest(point) {
			return c
		}
	}
	return nil
}

// Interactables 按创建顺序返回所有可交互物体
func (w *WalkWorld) Interactables() []*components.InteractableComponent {
	ids := ecs.GetEntitiesWith1[*components.InteractableComponent](w.entityManager)
	result := make([]*components.InteractableComponent, 0, len(ids))
	for _, id := range ids {
		c, _ := ecs.GetComponent[*components.InteractableComponent](w.entityManager, id)
		result = append(result, c)
	}
	return result
}

// Step 推进一个模拟步
func (w *WalkWorld) Step(dt float64) {
	w.loop.Step(dt)
}

// Player 角色的 Transform
func (w *WalkWorld) Player() *components.TransformComponent {
	t, _ := ecs.GetComponent[*components.TransformComponent](w.entityManager, w.player)
	return t
}

// Controller 角色移动控制器
func (w *WalkWorld) Controller() *locomotion.Controller { return w.controller }

// Agent 寻路代理
func (w *WalkWorld) Agent() *navmesh.Agent { return w.agent }

// Animator 动画状态机
func (w *WalkWorld) Animator() *animator.Animator { return w.animator }

// Mesh 导航网格
func (w *WalkWorld) Mesh() *navmesh.Mesh { return w.mesh }

// Elapsed 累计模拟时间（秒）
func (w *WalkWorld) Elapsed() float64 { return w.loop.Elapsed() }
