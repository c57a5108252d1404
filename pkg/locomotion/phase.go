package locomotion

import "fmt"

// Phase 移动状态机在某一帧命中的阶段
type Phase int

const (
	// PhaseIdle 未命中任何阶段：低速且未接近终点
	PhaseIdle Phase = iota
	// PhasePathPending 路径计算中，本帧跳过
	PhasePathPending
	// PhaseStopping 进入停止阈值，吸附到终点
	PhaseStopping
	// PhaseSlowing 进入停止距离，线性减速逼近终点
	PhaseSlowing
	// PhaseMoving 正常移动并转向
	PhaseMoving
)

// String 返回阶段名称
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePathPending:
		return "path_pending"
	case PhaseStopping:
		return "stopping"
	case PhaseSlowing:
		return "slowing"
	case PhaseMoving:
		return "moving"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}
