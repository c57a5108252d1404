// Package locomotion 实现点击移动角色的控制器
//
// 控制器把"走到某点"和"走过去与物体交互"两种指令转换成与动画同步的平滑移动：
//   - 指令入口：校验交互锁，向寻路代理设置目标
//   - 运动混合：每个模拟步读取寻路状态，按 停止 / 减速 / 移动 的优先级更新速度与朝向
//   - 根运动回写：动画姿态计算完成后，把根运动位移回写为寻路代理的速度
//   - 交互锁：到达可交互物体后暂停指令输入，直到动画回到移动状态
//
// 所有方法都必须在同一个模拟线程上调用。
package locomotion

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/decker502/clickwalk/pkg/animator"
	"github.com/decker502/clickwalk/pkg/config"
)

// Deps 控制器依赖的外部组件，控制器只引用不拥有
type Deps struct {
	Transform  Transform
	Pathfinder Pathfinder
	// NavMesh 可为 nil，此时点击地面总是使用原始命中点
	NavMesh   NavMesh
	Animator  Animator
	Scheduler Scheduler
}

// Option 控制器选项
type Option func(*Controller)

// WithLogger 设置日志记录器
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller 角色移动控制器
type Controller struct {
	cfg config.LocomotionConfig

	transform  Transform
	pathfinder Pathfinder
	navMesh    NavMesh
	animator   Animator
	scheduler  Scheduler

	speedParam    animator.Hash
	locomotionTag animator.Hash

	destination  mgl64.Vec3
	interactable Interactable
	lock         *InteractionLock

	speed    float64
	phase    Phase
	arrivals int

	logger *zap.Logger
}

// NewController 创建控制器
//
// 初始化时关闭寻路代理的自动转向，目标点默认为角色当前位置。
//
// 参数:
//   - cfg: 移动参数，构造后不可修改
//   - deps: 外部依赖，除 NavMesh 外均不能为 nil
//   - opts: 可选项
//
// 返回:
//   - *Controller: 控制器实例
//   - error: 配置无效或依赖缺失时返回错误
func NewController(cfg config.LocomotionConfig, deps Deps, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("locomotion: %w", err)
	}
	switch {
	case deps.Transform == nil:
		return nil, ErrNilTransform
	case deps.Pathfinder == nil:
		return nil, ErrNilPathfinder
	case deps.Animator == nil:
		return nil, ErrNilAnimator
	case deps.Scheduler == nil:
		return nil, ErrNilScheduler
	}

	c := &Controller{
		cfg:           cfg,
		transform:     deps.Transform,
		pathfinder:    deps.Pathfinder,
		navMesh:       deps.NavMesh,
		animator:      deps.Animator,
		scheduler:     deps.Scheduler,
		speedParam:    animator.StringToHash("Speed"),
		locomotionTag: animator.StringToHash("Locomotion"),
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("locomotion")

	c.lock = NewInteractionLock(cfg.InputHoldDelay, deps.Animator, c.locomotionTag, c.logger)

	c.pathfinder.SetUpdateRotation(false)
	c.destination = c.transform.Position()

	return c, nil
}

// Config 返回控制器使用的移动参数
func (c *Controller) Config() config.LocomotionConfig {
	return c.cfg
}

// Destination 当前移动目标
func (c *Controller) Destination() mgl64.Vec3 {
	return c.destination
}

// CurrentInteractable 当前要前往交互的物体，没有时为 nil
func (c *Controller) CurrentInteractable() Interactable {
	return c.interactable
}

// IsLocked 是否处于交互锁定中
func (c *Controller) IsLocked() bool {
	return c.lock.Locked()
}

// LockPhase 交互锁当前阶段
func (c *Controller) LockPhase() LockPhase {
	return c.lock.Phase()
}

// Speed 最近一次 Tick 写入动画的目标速度（阻尼前）
func (c *Controller) Speed() float64 {
	return c.speed
}

// Phase 最近一次 Tick 命中的阶段
func (c *Controller) Phase() Phase {
	return c.phase
}

// Arrivals 进入停止阶段的次数（连续停留在停止阶段只计一次）
func (c *Controller) Arrivals() int {
	return c.arrivals
}
