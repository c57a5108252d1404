package locomotion

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/decker502/clickwalk/pkg/animator"
	"github.com/decker502/clickwalk/pkg/sim"
)

// LockPhase 交互锁所处阶段
type LockPhase int

const (
	// LockUnlocked 未锁定，接受移动指令
	LockUnlocked LockPhase = iota
	// LockWaiting 已锁定，等待固定的输入屏蔽时间
	LockWaiting
	// LockPolling 已锁定，每帧检查动画是否回到移动状态
	LockPolling
)

// String 返回阶段名称
func (p LockPhase) String() string {
	switch p {
	case LockUnlocked:
		return "unlocked"
	case LockWaiting:
		return "waiting"
	case LockPolling:
		return "polling"
	default:
		return fmt.Sprintf("lock_phase(%d)", int(p))
	}
}

// TagReader 读取动画层当前状态标签
type TagReader interface {
	CurrentStateTag(layer int) animator.Hash
}

// InteractionLock 交互锁
//
// 状态流转：Unlocked -> Waiting -> Polling -> Unlocked
//
// 触发交互后先屏蔽输入 holdDelay（真实时间），之后每帧检查基础层动画标签，
// 第一次等于 Locomotion 标签时解锁。序列一旦开始就会运行到结束，
// 运行期间 Begin 会拒绝再次进入，锁标志始终只有一个写入者。
type InteractionLock struct {
	holdDelay     time.Duration
	tags          TagReader
	locomotionTag animator.Hash

	phase  LockPhase
	polls  int
	logger *zap.Logger
}

// NewInteractionLock 创建交互锁
func NewInteractionLock(holdDelay time.Duration, tags TagReader, locomotionTag animator.Hash, logger *zap.Logger) *InteractionLock {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InteractionLock{
		holdDelay:     holdDelay,
		tags:          tags,
		locomotionTag: locomotionTag,
		logger:        logger,
	}
}

// Locked 当前是否处于锁定状态
func (l *InteractionLock) Locked() bool {
	return l.phase != LockUnlocked
}

// Phase 当前阶段
func (l *InteractionLock) Phase() LockPhase {
	return l.phase
}

// Polls 本次序列中已检查动画标签的次数
func (l *InteractionLock) Polls() int {
	return l.polls
}

// Begin 进入锁定状态
//
// 已有序列在运行时返回 false，调用方不应再启动新的任务。
func (l *InteractionLock) Begin() bool {
	if l.phase != LockUnlocked {
		return false
	}
	l.phase = LockWaiting
	l.polls = 0
	l.logger.Debug("interaction lock engaged", zap.Duration("hold", l.holdDelay))
	return true
}

// Resume 实现 sim.Task
func (l *InteractionLock) Resume(ev sim.Event) sim.Yield {
	switch l.phase {
	case LockWaiting:
		if ev == sim.EventStart {
			return sim.WaitRealtime(l.holdDelay)
		}
		l.phase = LockPolling
		return l.poll()
	case LockPolling:
		return l.poll()
	default:
		return sim.Done()
	}
}

func (l *InteractionLock) poll() sim.Yield {
	l.polls++
	if l.tags.CurrentStateTag(animator.BaseLayer) != l.locomotionTag {
		return sim.WaitFrame()
	}
	l.phase = LockUnlocked
	l.logger.Debug("interaction lock released", zap.Int("polls", l.polls))
	return sim.Done()
}
