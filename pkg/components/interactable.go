package components

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/decker502/clickwalk/pkg/locomotion"
)

// InteractableComponent 可交互物体
//
// 角色到达 Anchor 后由移动控制器调用 Interact。
type InteractableComponent struct {
	// Name 物体名称（如 "chest"）
	Name string

	// Center 物体中心（世界坐标）
	Center mgl64.Vec3

	// Radius 点击判定半径
	Radius float64

	// Anchor 交互锚点
	Anchor locomotion.Anchor

	// OnInteract 交互回调（如播放交互动画），可为 nil
	OnInteract func(name string)

	// Uses 已触发交互的次数
	Uses int
}

// InteractionLocation 实现 locomotion.Interactable
func (c *InteractableComponent) InteractionLocation() locomotion.Anchor {
	return c.Anchor
}

// Interact 实现 locomotion.Interactable
func (c *InteractableComponent) Interact() {
	c.Uses++
	if c.OnInteract != nil {
		c.OnInteract(c.Name)
	}
}

// HitTest 点 p 是否落在点击判定范围内（忽略高度）
func (c *InteractableComponent) HitTest(p mgl64.Vec3) bool {
	dx := p.X() - c.Center.X()
	dz := p.Z() - c.Center.Z()
	return dx*dx+dz*dz <= c.Radius*c.Radius
}
