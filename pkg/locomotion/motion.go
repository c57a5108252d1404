package locomotion

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/decker502/clickwalk/pkg/utils"
)

// Tick 每个模拟步调用一次
//
// 按优先级依次判定（命中即止）：
//  1. 路径计算中：整帧跳过，不更新速度、朝向和动画参数
//  2. 停止：剩余距离 <= 停止距离 * StopDistanceProportion
//  3. 减速：剩余距离 <= 停止距离
//  4. 移动：期望速度 > TurnSpeedThreshold
//
// 速度先取期望速度的大小，只有命中的阶段才会覆盖它，最后以阻尼方式写入动画。
//
// 寻路代理自带的减速偶尔会让期望速度在单帧内跳回基准值，这里不做钳制：
// 钳制会在移动结束时引入另一种动画抖动。
func (c *Controller) Tick(dt float64) {
	if c.pathfinder.PathPending() {
		c.phase = PhasePathPending
		return
	}

	speed := c.pathfinder.DesiredVelocity().Len()
	remaining := c.pathfinder.RemainingDistance()
	stopping := c.pathfinder.StoppingDistance()

	prev := c.phase
	switch {
	case remaining <= stopping*c.cfg.StopDistanceProportion:
		speed = c.stopping()
		c.phase = PhaseStopping
	case remaining <= stopping:
		speed = c.slowing(dt, remaining, stopping)
		c.phase = PhaseSlowing
	case speed > c.cfg.TurnSpeedThreshold:
		c.moving(dt)
		c.phase = PhaseMoving
	default:
		c.phase = PhaseIdle
	}

	if c.phase == PhaseStopping && prev != PhaseStopping {
		c.arrivals++
		c.logger.Debug("arrived", zap.Any("destination", c.destination), zap.Int("arrivals", c.arrivals))
	}

	c.speed = speed
	c.animator.SetFloatDamped(c.speedParam, speed, c.cfg.SpeedDampTime, dt)
}

func (c *Controller) stopping() float64 {
	c.pathfinder.SetStopped(true)
	c.transform.SetPosition(c.destination)

	if c.interactable != nil {
		target := c.interactable
		c.transform.SetRotation(target.InteractionLocation().Rotation)
		target.Interact()
		c.interactable = nil

		if c.lock.Begin() {
			c.scheduler.Start(c.lock)
		} else {
			c.logger.Warn("interaction lock already running")
		}
	}

	return 0
}

func (c *Controller) slowing(dt, remaining, stopping float64) float64 {
	c.pathfinder.SetStopped(true)

	pos := utils.MoveTowards(c.transform.Position(), c.destination, c.cfg.SlowingSpeed*dt)
	c.transform.SetPosition(pos)

	proportional := 1.0
	if stopping > 0 {
		proportional = 1 - remaining/stopping
	}
	speed := utils.Lerp(c.cfg.SlowingSpeed, 0, proportional)

	current := c.transform.Rotation()
	target := current
	if c.interactable != nil {
		target = c.interactable.InteractionLocation().Rotation
	}
	c.transform.SetRotation(utils.QuatLerp(current, target, proportional))

	return speed
}

func (c *Controller) moving(dt float64) {
	target := utils.LookRotation(c.pathfinder.DesiredVelocity())
	c.transform.SetRotation(utils.QuatLerp(c.transform.Rotation(), target, c.cfg.TurnSmoothing*dt))
}

// OnPoseApplied 动画姿态计算完成后调用
//
// 把本帧根运动位移除以 dt 回写为寻路代理的速度：实际位移由动画决定，
// 寻路代理仍负责转向和剩余距离。dt <= 0 时忽略。
func (c *Controller) OnPoseApplied(dt float64) {
	if dt <= 0 {
		return
	}
	d := c.animator.DeltaPosition()
	c.pathfinder.SetVelocity(mgl64.Vec3{d[0] / dt, d[1] / dt, d[2] / dt})
}
