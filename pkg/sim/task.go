// Package sim 提供单线程协作式的模拟循环
//
// 所有回调都在同一个逻辑线程上按固定顺序执行，共享状态无需加锁。
// 需要跨帧等待的逻辑以 Task 的形式挂起，由 Scheduler 在定时到期或每帧渲染后恢复。
package sim

import (
	"fmt"
	"time"
)

// Event 任务被恢复的原因
type Event int

const (
	// EventStart 任务刚被启动
	EventStart Event = iota
	// EventTimerElapsed 定时等待已到期
	EventTimerElapsed
	// EventFrame 新的一帧已渲染
	EventFrame
)

// String 返回事件名称
func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventTimerElapsed:
		return "timer_elapsed"
	case EventFrame:
		return "frame"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

type yieldKind int

const (
	yieldDone yieldKind = iota
	yieldFrame
	yieldRealtime
)

// Yield 任务交出控制权时声明的下一个恢复点
type Yield struct {
	kind  yieldKind
	delay time.Duration
}

// Done 任务已结束，不再恢复
func Done() Yield {
	return Yield{kind: yieldDone}
}

// WaitFrame 在下一帧渲染后恢复
func WaitFrame() Yield {
	return Yield{kind: yieldFrame}
}

// WaitRealtime 在经过真实时间 d 后恢复
func WaitRealtime(d time.Duration) Yield {
	return Yield{kind: yieldRealtime, delay: d}
}

// IsDone 任务是否已结束
func (y Yield) IsDone() bool {
	return y.kind == yieldDone
}

// String 返回可读描述
func (y Yield) String() string {
	switch y.kind {
	case yieldDone:
		return "done"
	case yieldFrame:
		return "wait_frame"
	default:
		return "wait_realtime(" + y.delay.String() + ")"
	}
}

// Task 可挂起的任务
//
// Resume 只会在模拟线程上被调用；返回值决定下一次恢复的时机。
type Task interface {
	Resume(ev Event) Yield
}

// TaskFunc 函数形式的 Task
type TaskFunc func(ev Event) Yield

// Resume 调用函数本身
func (f TaskFunc) Resume(ev Event) Yield {
	return f(ev)
}
