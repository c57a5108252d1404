package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// 运动插值工具
//
// Lerp / MoveTowards / LookRotation 的约定：
//   - 插值参数 t 会被限制在 [0, 1]
//   - 四元数插值走最短弧（点积为负时翻转目标）
//   - 世界坐标约定：Y 轴向上，+Z 为角色正前方

// WorldUp 世界坐标系的上方向
var WorldUp = mgl64.Vec3{0, 1, 0}

// WorldForward 角色本地坐标系的正前方（旋转为单位四元数时的朝向）
var WorldForward = mgl64.Vec3{0, 0, 1}

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值，t 被限制在 [0, 1]
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	t = Clamp01(t)
	return a + (b-a)*t
}

// MoveTowards 从 current 向 target 匀速移动，单步最多移动 maxDelta
//
// 与指数逼近不同，这里是线性逼近：剩余距离不超过 maxDelta 时直接返回 target。
// maxDelta 为负数时会远离 target。
func MoveTowards(current, target mgl64.Vec3, maxDelta float64) mgl64.Vec3 {
	diff := target.Sub(current)
	dist := diff.Len()
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return current.Add(diff.Mul(maxDelta / dist))
}

// LookRotation 返回使 +Z 指向 forward、+Y 尽量贴近 WorldUp 的旋转
//
// forward 长度为 0 时返回单位四元数；forward 与 WorldUp 平行时退化为最短弧旋转。
func LookRotation(forward mgl64.Vec3) mgl64.Quat {
	if forward.Len() < 1e-9 {
		return mgl64.QuatIdent()
	}
	f := forward.Normalize()

	right := WorldUp.Cross(f)
	if right.Len() < 1e-9 {
		return mgl64.QuatBetweenVectors(WorldForward, f)
	}
	right = right.Normalize()
	up := f.Cross(right)

	// 列向量依次为 +X/+Y/+Z 轴旋转后的方向
	basis := mgl64.Mat3FromCols(right, up, f)
	return mgl64.Mat4ToQuat(basis.Mat4()).Normalize()
}

// QuatLerp 四元数归一化线性插值（nlerp），t 被限制在 [0, 1]
func QuatLerp(from, to mgl64.Quat, t float64) mgl64.Quat {
	t = Clamp01(t)
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	q := mgl64.Quat{
		W: from.W + (to.W-from.W)*t,
		V: from.V.Add(to.V.Sub(from.V).Mul(t)),
	}
	if q.Len() < 1e-12 {
		return to
	}
	return q.Normalize()
}

// YawRotation 绕 Y 轴旋转 degrees 度（0 度面向 +Z，90 度面向 +X）
func YawRotation(degrees float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(degrees), WorldUp)
}

// Forward 返回旋转后的正前方向
func Forward(rotation mgl64.Quat) mgl64.Vec3 {
	return rotation.Rotate(WorldForward)
}

// Yaw 返回旋转在 XZ 平面上的朝向角（弧度，0 面向 +Z）
func Yaw(rotation mgl64.Quat) float64 {
	f := Forward(rotation)
	return math.Atan2(f.X(), f.Z())
}
