package navmesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/clickwalk/pkg/utils"
)

// Body 代理驱动的角色位置与朝向
type Body interface {
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	Rotation() mgl64.Quat
	SetRotation(q mgl64.Quat)
}

// AgentParams 代理参数
type AgentParams struct {
	Speed            float64 // 最大速度（单位/秒）
	Acceleration     float64 // 加速度（单位/秒²）
	StoppingDistance float64 // 到达半径
	AutoBraking      bool    // 接近终点时按加速度减速
}

// Agent 直线转向的寻路代理
//
// 路径请求在下一次 Update 时才完成（此前 PathPending 为 true）。
// 外部通过 SetVelocity 写入的速度只在紧接着的一次 Update 中生效，
// 否则代理按加速度向期望速度靠拢。
type Agent struct {
	mesh   *Mesh
	body   Body
	params AgentParams

	updateRotation bool
	stopped        bool

	pending     bool
	requested   mgl64.Vec3
	hasPath     bool
	destination mgl64.Vec3

	velocity   mgl64.Vec3
	overridden bool
	desired    mgl64.Vec3
}

// NewAgent 创建寻路代理
func NewAgent(mesh *Mesh, body Body, params AgentParams) *Agent {
	return &Agent{
		mesh:           mesh,
		body:           body,
		params:         params,
		updateRotation: true,
	}
}

// SetDestination 请求到 point 的路径，目标会被投影到网格上
func (a *Agent) SetDestination(point mgl64.Vec3) bool {
	a.requested = a.mesh.ClosestPoint(point)
	a.pending = true
	return true
}

// Destination 当前路径终点
func (a *Agent) Destination() mgl64.Vec3 {
	return a.destination
}

// HasPath 是否已有可用路径
func (a *Agent) HasPath() bool {
	return a.hasPath
}

// IsStopped 是否停止沿路径移动
func (a *Agent) IsStopped() bool {
	return a.stopped
}

// SetStopped 设置停止标志
func (a *Agent) SetStopped(stopped bool) {
	a.stopped = stopped
}

// SetVelocity 覆盖下一次 Update 使用的速度
func (a *Agent) SetVelocity(v mgl64.Vec3) {
	a.velocity = v
	a.overridden = true
}

// Velocity 当前速度
func (a *Agent) Velocity() mgl64.Vec3 {
	return a.velocity
}

// SetUpdateRotation 是否由代理根据速度更新朝向
func (a *Agent) SetUpdateRotation(enabled bool) {
	a.updateRotation = enabled
}

// UpdateRotation 代理是否负责朝向
func (a *Agent) UpdateRotation() bool {
	return a.updateRotation
}

// PathPending 路径是否仍在计算中
func (a *Agent) PathPending() bool {
	return a.pending
}

// DesiredVelocity 期望速度（在最近一次 Update 结束时计算）
func (a *Agent) DesiredVelocity() mgl64.Vec3 {
	return a.desired
}

// RemainingDistance 到路径终点的剩余距离，没有路径时为 0
func (a *Agent) RemainingDistance() float64 {
	if !a.hasPath {
		return 0
	}
	return a.destination.Sub(a.body.Position()).Len()
}

// StoppingDistance 到达半径
func (a *Agent) StoppingDistance() float64 {
	return a.params.StoppingDistance
}

// Update 推进代理
//
// 顺序：完成挂起的路径请求 -> 按速度移动并约束到网格 -> 重新计算期望速度。
func (a *Agent) Update(dt float64) {
	if a.pending {
		a.pending = false
		a.hasPath = true
		a.destination = a.requested
	}

	if dt > 0 && a.hasPath && !a.stopped {
		if !a.overridden {
			a.velocity = utils.MoveTowards(a.velocity, a.desired, a.params.Acceleration*dt)
		}
		next := a.body.Position().Add(a.velocity.Mul(dt))
		if !a.mesh.Contains(next) {
			next = a.mesh.ClosestPoint(next)
		}
		a.body.SetPosition(next)

		if a.updateRotation && a.velocity.Len() > 1e-6 {
			a.body.SetRotation(utils.LookRotation(a.velocity))
		}
	}
	a.overridden = false

	a.desired = a.computeDesired()
}

func (a *Agent) computeDesired() mgl64.Vec3 {
	if !a.hasPath {
		return mgl64.Vec3{}
	}
	toTarget := a.destination.Sub(a.body.Position())
	dist := toTarget.Len()
	if dist < 1e-6 {
		return mgl64.Vec3{}
	}

	speed := a.params.Speed
	if a.params.AutoBraking && a.params.Acceleration > 0 {
		speed = math.Min(speed, math.Sqrt(2*a.params.Acceleration*dist))
	}
	return toTarget.Mul(speed / dist)
}
