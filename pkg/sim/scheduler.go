package sim

import (
	"time"

	"go.uber.org/zap"
)

type parkedTask struct {
	task     Task
	timed    bool
	deadline time.Time
}

// Scheduler 挂起任务调度器
//
// 任务启动时立即执行到第一个挂起点；之后每次 Frame() 检查：
//   - 定时等待：当前时间 >= 截止时间时以 EventTimerElapsed 恢复
//   - 帧等待：直接以 EventFrame 恢复
//
// 在 Frame() 期间新启动的任务不会在同一帧内被再次恢复。
type Scheduler struct {
	clock  Clock
	parked []parkedTask
	logger *zap.Logger
}

// NewScheduler 创建调度器，clock 为 nil 时使用系统时间
func NewScheduler(clock Clock, logger *zap.Logger) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		clock:  clock,
		logger: logger.Named("scheduler"),
	}
}

// Start 启动任务
func (s *Scheduler) Start(task Task) {
	if task == nil {
		return
	}
	s.park(task, task.Resume(EventStart))
}

// Frame 每渲染一帧调用一次，恢复到期的任务
func (s *Scheduler) Frame() {
	if len(s.parked) == 0 {
		return
	}

	now := s.clock.Now()
	pending := s.parked
	s.parked = nil

	for _, p := range pending {
		if p.timed {
			if now.Before(p.deadline) {
				s.parked = append(s.parked, p)
				continue
			}
			s.park(p.task, p.task.Resume(EventTimerElapsed))
			continue
		}
		s.park(p.task, p.task.Resume(EventFrame))
	}
}

// Len 当前挂起中的任务数量
func (s *Scheduler) Len() int {
	return len(s.parked)
}

// Clock 返回调度器使用的时钟
func (s *Scheduler) Clock() Clock {
	return s.clock
}

func (s *Scheduler) park(task Task, y Yield) {
	switch y.kind {
	case yieldDone:
		s.logger.Debug("task finished")
	case yieldFrame:
		s.parked = append(s.parked, parkedTask{task: task})
	case yieldRealtime:
		s.parked = append(s.parked, parkedTask{
			task:     task,
			timed:    true,
			deadline: s.clock.Now().Add(y.delay),
		})
	}
}
