package locomotion

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/clickwalk/pkg/animator"
	"github.com/decker502/clickwalk/pkg/sim"
)

// Pathfinder 寻路代理
//
// 控制器只读取它的几何状态并设置目标，从不自己计算路径。
type Pathfinder interface {
	// SetDestination 请求一条到 point 的新路径，返回请求是否被接受
	SetDestination(point mgl64.Vec3) bool

	IsStopped() bool
	SetStopped(stopped bool)

	// SetVelocity 覆盖代理当前速度（由根运动回写）
	SetVelocity(v mgl64.Vec3)

	// SetUpdateRotation 是否由代理自己更新朝向
	SetUpdateRotation(enabled bool)

	// PathPending 路径是否仍在计算中
	PathPending() bool

	// DesiredVelocity 本帧代理期望的速度
	DesiredVelocity() mgl64.Vec3

	// RemainingDistance 沿路径到终点的剩余距离
	RemainingDistance() float64

	// StoppingDistance 代理认为已到达的半径
	StoppingDistance() float64
}

// NavMesh 导航网格查询
type NavMesh interface {
	// SamplePosition 在 maxDistance 内寻找离 point 最近的可行走点
	SamplePosition(point mgl64.Vec3, maxDistance float64) (mgl64.Vec3, bool)
}

// Animator 动画系统
type Animator interface {
	// SetFloatDamped 以阻尼方式写入浮点参数
	SetFloatDamped(param animator.Hash, value, dampTime, dt float64)

	// CurrentStateTag 指定层当前状态的标签
	CurrentStateTag(layer int) animator.Hash

	// DeltaPosition 本帧根运动位移
	DeltaPosition() mgl64.Vec3
}

// Transform 角色的位置与朝向
type Transform interface {
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	Rotation() mgl64.Quat
	SetRotation(q mgl64.Quat)
}

// Anchor 交互锚点：角色交互时应站立的位置和朝向
type Anchor struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Interactable 可交互物体
//
// 控制器只持有引用，不管理它的生命周期。
type Interactable interface {
	InteractionLocation() Anchor
	Interact()
}

// Scheduler 挂起任务调度
type Scheduler interface {
	Start(task sim.Task)
}

// HitResult 指针射线检测的命中结果
type HitResult struct {
	// Point 命中点（世界坐标）
	Point mgl64.Vec3
}
