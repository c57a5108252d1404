package components

import "github.com/go-gl/mathgl/mgl64"

// TransformComponent 实体的位置与朝向（世界坐标，Y 轴向上）
//
// 移动控制器、寻路代理和动画系统共享同一个实例。
type TransformComponent struct {
	Pos mgl64.Vec3
	Rot mgl64.Quat
}

// NewTransformComponent 创建位于 pos、朝向为 rot 的组件
func NewTransformComponent(pos mgl64.Vec3, rot mgl64.Quat) *TransformComponent {
	return &TransformComponent{Pos: pos, Rot: rot}
}

// Position 返回位置
func (t *TransformComponent) Position() mgl64.Vec3 { return t.Pos }

// SetPosition 设置位置
func (t *TransformComponent) SetPosition(p mgl64.Vec3) { t.Pos = p }

// Rotation 返回朝向
func (t *TransformComponent) Rotation() mgl64.Quat { return t.Rot }

// SetRotation 设置朝向
func (t *TransformComponent) SetRotation(q mgl64.Quat) { t.Rot = q }
