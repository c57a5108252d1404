package sim

// Stage 模拟步内的执行阶段，按声明顺序执行
type Stage int

const (
	// StageTick 逻辑更新（读取寻路状态、写入动画参数）
	StageTick Stage = iota
	// StageAnimation 动画求值（计算姿态与根运动）
	StageAnimation
	// StagePoseApplied 姿态应用回调（根运动回写寻路速度）
	StagePoseApplied
	// StagePhysics 寻路代理移动与状态刷新
	StagePhysics

	stageCount
)

// StepFunc 阶段回调，dt 为本步经过的模拟时间（秒）
type StepFunc func(dt float64)

// Loop 模拟循环
//
// 每个 Step 依次执行所有阶段，最后让 Scheduler 处理一帧。
// 因此姿态回调对寻路速度的写入，只会在下一个 StageTick 中被读到。
type Loop struct {
	scheduler *Scheduler
	stages    [stageCount][]StepFunc
	steps     uint64
	elapsed   float64
}

// NewLoop 创建模拟循环
func NewLoop(scheduler *Scheduler) *Loop {
	if scheduler == nil {
		scheduler = NewScheduler(nil, nil)
	}
	return &Loop{scheduler: scheduler}
}

// Register 在指定阶段注册回调，同一阶段内按注册顺序执行
func (l *Loop) Register(stage Stage, fn StepFunc) {
	if fn == nil || stage < 0 || stage >= stageCount {
		return
	}
	l.stages[stage] = append(l.stages[stage], fn)
}

// Step 执行一个模拟步
func (l *Loop) Step(dt float64) {
	for _, fns := range l.stages {
		for _, fn := range fns {
			fn(dt)
		}
	}
	l.scheduler.Frame()
	l.steps++
	l.elapsed += dt
}

// Scheduler 返回循环使用的调度器
func (l *Loop) Scheduler() *Scheduler {
	return l.scheduler
}

// Steps 已执行的步数
func (l *Loop) Steps() uint64 {
	return l.steps
}

// Elapsed 累计模拟时间（秒）
func (l *Loop) Elapsed() float64 {
	return l.elapsed
}
