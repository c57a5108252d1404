package animator

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/decker502/clickwalk/pkg/utils"
)

// BaseLayer 基础层索引，本实现只有这一层
const BaseLayer = 0

// ErrUnknownState 请求播放的状态不存在
var ErrUnknownState = errors.New("unknown animator state")

// Orientation 提供根运动所需的角色朝向
type Orientation interface {
	Rotation() mgl64.Quat
}

// State 动画状态定义
type State struct {
	// Name 状态名称（如 "Locomotion", "Interact"）
	Name string

	// Tag 状态标签，外部通过 CurrentStateTag 查询
	Tag string

	// Duration 单次播放时长（秒），Loop 为 true 时忽略
	Duration float64

	// Loop 是否循环播放
	Loop bool

	// Next 非循环状态播放完毕后进入的状态
	Next string

	// RootMotion 是否由该状态驱动角色位移
	RootMotion bool
}

type stateDef struct {
	State
	tagHash Hash
}

// Animator 动画状态机
//
// 每帧调用顺序：
//  1. 逻辑层写入参数（SetFloatDamped）
//  2. Update(dt) 推进状态并计算根运动位移
//  3. 逻辑层读取 DeltaPosition
type Animator struct {
	orientation Orientation
	states      map[string]*stateDef
	params      map[Hash]float64

	current   *stateDef
	stateTime float64

	deltaPosition mgl64.Vec3

	logger *zap.Logger
}

// New 创建动画状态机
//
// 参数:
//   - orientation: 角色朝向来源（通常是角色的 Transform）
//   - states: 状态列表，名称不能重复
//   - initial: 初始状态名称
//
// 返回:
//   - *Animator: 状态机实例
//   - error: 状态定义无效时返回错误
func New(orientation Orientation, states []State, initial string, logger *zap.Logger) (*Animator, error) {
	if orientation == nil {
		return nil, errors.New("animator: orientation is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &Animator{
		orientation: orientation,
		states:      make(map[string]*stateDef, len(states)),
		params:      make(map[Hash]float64),
		logger:      logger.Named("animator"),
	}

	for _, s := range states {
		if s.Name == "" {
			return nil, errors.New("animator: state name is empty")
		}
		if _, dup := a.states[s.Name]; dup {
			return nil, fmt.Errorf("animator: duplicate state %q", s.Name)
		}
		if !s.Loop && s.Duration <= 0 {
			return nil, fmt.Errorf("animator: state %q must loop or have a positive duration", s.Name)
		}
		a.states[s.Name] = &stateDef{State: s, tagHash: StringToHash(s.Tag)}
	}

	// 再检查一次过渡目标，定义顺序不受限制
	for _, s := range a.states {
		if s.Loop || s.Next == "" {
			continue
		}
		if _, ok := a.states[s.Next]; !ok {
			return nil, fmt.Errorf("animator: state %q transitions to %w %q", s.Name, ErrUnknownState, s.Next)
		}
	}

	start, ok := a.states[initial]
	if !ok {
		return nil, fmt.Errorf("animator: initial state: %w %q", ErrUnknownState, initial)
	}
	a.current = start

	return a, nil
}

// DefaultStates 返回点击移动角色的默认状态集合
//
// Locomotion 由 Speed 参数驱动根运动；Interact 播放完毕后回到 Locomotion。
func DefaultStates(interactDuration float64) []State {
	return []State{
		{Name: "Locomotion", Tag: "Locomotion", Loop: true, RootMotion: true},
		{Name: "Interact", Tag: "Interaction", Duration: interactDuration, Next: "Locomotion"},
	}
}

// SetFloat 直接设置浮点参数
func (a *Animator) SetFloat(param Hash, value float64) {
	a.params[param] = value
}

// SetFloatDamped 以指数阻尼的方式让参数趋近目标值
//
// 每次调用：v += (target - v) * (1 - e^(-dt/dampTime))
// dampTime <= 0 时直接设置为目标值；dt <= 0 时不做改变。
func (a *Animator) SetFloatDamped(param Hash, target, dampTime, dt float64) {
	if dampTime <= 0 {
		a.params[param] = target
		return
	}
	if dt <= 0 {
		return
	}
	current := a.params[param]
	a.params[param] = current + (target-current)*(1-math.Exp(-dt/dampTime))
}

// Float 读取浮点参数，未设置时为 0
func (a *Animator) Float(param Hash) float64 {
	return a.params[param]
}

// Play 立即切换到指定状态并从头播放
func (a *Animator) Play(name string) error {
	s, ok := a.states[name]
	if !ok {
		return fmt.Errorf("animator: play: %w %q", ErrUnknownState, name)
	}
	a.logger.Debug("play state", zap.String("from", a.current.Name), zap.String("to", name))
	a.current = s
	a.stateTime = 0
	return nil
}

// Update 推进动画并计算本帧的根运动位移
//
// 参数:
//   - dt: 本帧经过的时间（秒）
func (a *Animator) Update(dt float64) {
	a.deltaPosition = mgl64.Vec3{}
	if dt <= 0 {
		return
	}

	a.stateTime += dt
	if !a.current.Loop && a.stateTime >= a.current.Duration {
		next := a.states[a.current.Next]
		if next == nil {
			// 没有后续状态则停在最后一帧
			a.stateTime = a.current.Duration
		} else {
			a.logger.Debug("state finished", zap.String("state", a.current.Name), zap.String("next", next.Name))
			a.current = next
			a.stateTime = 0
		}
	}

	if a.current.RootMotion {
		speed := a.params[SpeedParam]
		a.deltaPosition = utils.Forward(a.orientation.Rotation()).Mul(speed * dt)
	}
}

// DeltaPosition 本帧根运动产生的位移
func (a *Animator) DeltaPosition() mgl64.Vec3 {
	return a.deltaPosition
}

// CurrentStateTag 返回指定层当前状态的标签哈希，不存在的层返回 0
func (a *Animator) CurrentStateTag(layer int) Hash {
	if layer != BaseLayer {
		return 0
	}
	return a.current.tagHash
}

// CurrentStateName 返回当前状态名称
func (a *Animator) CurrentStateName() string {
	return a.current.Name
}

// StateTime 当前状态已播放的时间（秒）
func (a *Animator) StateTime() float64 {
	return a.stateTime
}
