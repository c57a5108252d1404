package locomotion

import (
	"go.uber.org/zap"
)

// RequestMoveToPoint 走到地面上的某一点
//
// 锁定期间直接忽略。否则清除当前交互物体，尝试把命中点吸附到导航网格上，
// 吸附失败时退回原始命中点（可能不可达，由寻路代理自行处理）。
// 新指令总是覆盖旧的目标，并解除代理的停止状态。
func (c *Controller) RequestMoveToPoint(hit HitResult) {
	if c.lock.Locked() {
		c.logger.Debug("ground click ignored while locked")
		return
	}

	c.interactable = nil

	dest := hit.Point
	if c.navMesh != nil {
		if sampled, ok := c.navMesh.SamplePosition(hit.Point, c.cfg.NavMeshSampleDistance); ok {
			dest = sampled
		} else {
			c.logger.Debug("navmesh sample failed, using raw hit point", zap.Any("point", hit.Point))
		}
	}

	c.destination = dest
	c.pathfinder.SetDestination(dest)
	c.pathfinder.SetStopped(false)

	c.logger.Debug("move to point", zap.Any("destination", dest))
}

// RequestMoveToInteractable 走到物体的交互锚点并在到达后触发交互
//
// 锁定期间或 target 为 nil 时忽略。
func (c *Controller) RequestMoveToInteractable(target Interactable) {
	if c.lock.Locked() {
		c.logger.Debug("interactable click ignored while locked")
		return
	}
	if target == nil {
		return
	}

	c.interactable = target
	c.destination = target.InteractionLocation().Position

	c.pathfinder.SetDestination(c.destination)
	c.pathfinder.SetStopped(false)

	c.logger.Debug("move to interactable", zap.Any("destination", c.destination))
}

// OnGroundClick 输入层的地面点击事件
func (c *Controller) OnGroundClick(hit HitResult) {
	c.RequestMoveToPoint(hit)
}

// OnInteractableClick 输入层的物体点击事件
func (c *Controller) OnInteractableClick(target Interactable) {
	c.RequestMoveToInteractable(target)
}
