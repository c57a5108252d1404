// Package navmesh 提供平面导航网格和直线转向的寻路代理
//
// 可行走区域由 XZ 平面上的轴对齐矩形组成，代理沿直线朝目标转向，
// 并在每次移动后把位置约束回可行走区域。它不做障碍绕行。
package navmesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrNoAreas 导航网格没有任何可行走区域
var ErrNoAreas = errors.New("navmesh: no walkable areas")

// Area XZ 平面上的可行走矩形
type Area struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

// Contains 点 (x, z) 是否在矩形内（含边界）
func (a Area) Contains(x, z float64) bool {
	return x >= a.MinX && x <= a.MaxX && z >= a.MinZ && z <= a.MaxZ
}

// Closest 返回矩形内离 (x, z) 最近的点
func (a Area) Closest(x, z float64) (cx, cz float64) {
	return mgl64.Clamp(x, a.MinX, a.MaxX), mgl64.Clamp(z, a.MinZ, a.MaxZ)
}

// Mesh 平面导航网格
type Mesh struct {
	areas  []Area
	height float64
}

// NewMesh 创建位于高度 height 的导航网格
func NewMesh(height float64, areas ...Area) (*Mesh, error) {
	if len(areas) == 0 {
		return nil, ErrNoAreas
	}
	for i, a := range areas {
		if a.MinX > a.MaxX || a.MinZ > a.MaxZ {
			return nil, fmt.Errorf("navmesh: area %d is inverted", i)
		}
	}
	return &Mesh{
		areas:  append([]Area(nil), areas...),
		height: height,
	}, nil
}

// Areas 返回所有可行走区域
func (m *Mesh) Areas() []Area {
	return m.areas
}

// Contains 点是否在可行走区域内（忽略高度）
func (m *Mesh) Contains(p mgl64.Vec3) bool {
	for _, a := range m.areas {
		if a.Contains(p.X(), p.Z()) {
			return true
		}
	}
	return false
}

// ClosestPoint 返回网格上离 p 最近的点
func (m *Mesh) ClosestPoint(p mgl64.Vec3) mgl64.Vec3 {
	closest, _ := m.closest(p)
	return closest
}

// SamplePosition 在 maxDistance 内寻找网格上离 p 最近的点
//
// 距离按三维计算（包含与网格高度的差），超出范围返回 false。
func (m *Mesh) SamplePosition(p mgl64.Vec3, maxDistance float64) (mgl64.Vec3, bool) {
	closest, dist := m.closest(p)
	if dist > maxDistance {
		return mgl64.Vec3{}, false
	}
	return closest, true
}

func (m *Mesh) closest(p mgl64.Vec3) (mgl64.Vec3, float64) {
	best := mgl64.Vec3{}
	bestDist := math.Inf(1)
	for _, a := range m.areas {
		cx, cz := a.Closest(p.X(), p.Z())
		candidate := mgl64.Vec3{cx, m.height, cz}
		if d := candidate.Sub(p).Len(); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best, bestDist
}
