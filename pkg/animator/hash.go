// Package animator 提供一个最小的骨骼动画状态机实现
//
// 它只负责角色移动所需的部分：带标签的动画状态、带阻尼的浮点参数，
// 以及根据当前姿态计算的根运动位移（root motion）。
// 渲染、骨骼蒙皮与资源加载不在本包范围内。
package animator

import "github.com/cespare/xxhash/v2"

// Hash 参数名或状态标签的哈希标识
//
// 参数和标签在初始化时预先计算哈希，每帧只做整数比较。
type Hash uint64

// StringToHash 计算名称的哈希标识（xxhash64）
func StringToHash(name string) Hash {
	return Hash(xxhash.Sum64String(name))
}

// 常用标识
var (
	// SpeedParam 移动速度参数
	SpeedParam = StringToHash("Speed")

	// LocomotionTag 普通行走/奔跑状态的标签
	LocomotionTag = StringToHash("Locomotion")

	// InteractionTag 交互动画状态的标签
	InteractionTag = StringToHash("Interaction")
)
