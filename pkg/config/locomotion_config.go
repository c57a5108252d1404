// Package config 定义角色移动控制器与演示场景的配置，以及 YAML 加载逻辑
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// LocomotionConfig 角色移动控制参数
//
// 构造控制器后不可修改。默认值与原版手感一致。
//
// 配置文件位置: data/locomotion.yaml
type LocomotionConfig struct {
	// InputHoldDelay 触发交互后屏蔽输入的最短时间（真实时间）
	InputHoldDelay time.Duration `yaml:"inputHoldDelay"`

	// TurnSpeedThreshold 期望速度超过该值才会转向，避免低速时朝向抖动
	TurnSpeedThreshold float64 `yaml:"turnSpeedThreshold"`

	// SpeedDampTime 写入动画 Speed 参数时的阻尼时间（秒）
	SpeedDampTime float64 `yaml:"speedDampTime"`

	// SlowingSpeed 减速阶段向目标点逼近的速度（单位/秒），同时是减速阶段的起始速度
	SlowingSpeed float64 `yaml:"slowingSpeed"`

	// TurnSmoothing 移动阶段的转向平滑系数（乘以 dt 作为插值权重）
	TurnSmoothing float64 `yaml:"turnSmoothing"`

	// StopDistanceProportion 停止阈值占寻路停止距离的比例
	StopDistanceProportion float64 `yaml:"stopDistanceProportion"`

	// NavMeshSampleDistance 点击地面时吸附到导航网格的最大搜索半径
	NavMeshSampleDistance float64 `yaml:"navMeshSampleDistance"`
}

// DefaultLocomotionConfig 返回默认移动参数
func DefaultLocomotionConfig() LocomotionConfig {
	return LocomotionConfig{
		InputHoldDelay:         500 * time.Millisecond,
		TurnSpeedThreshold:     0.5,
		SpeedDampTime:          0.1,
		SlowingSpeed:           0.175,
		TurnSmoothing:          15,
		StopDistanceProportion: 0.1,
		NavMeshSampleDistance:  4,
	}
}

// LoadLocomotionConfig 从 YAML 文件加载移动参数
//
// 文件中缺失的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/locomotion.yaml"）
//
// 返回:
//   - LocomotionConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadLocomotionConfig(path string) (LocomotionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LocomotionConfig{}, fmt.Errorf("failed to read locomotion config: %w", err)
	}
	return ParseLocomotionConfig(data)
}

// ParseLocomotionConfig 解析 YAML 数据，缺失字段保留默认值
func ParseLocomotionConfig(data []byte) (LocomotionConfig, error) {
	cfg := DefaultLocomotionConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LocomotionConfig{}, fmt.Errorf("failed to parse locomotion config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return LocomotionConfig{}, fmt.Errorf("invalid locomotion config: %w", err)
	}
	return cfg, nil
}

// ErrInvalidLocomotionConfig 移动参数验证失败
var ErrInvalidLocomotionConfig = errors.New("invalid locomotion config")

// Validate 验证配置有效性
//
// 检查：
//   - 所有时间、速度、半径均不能为负
//   - StopDistanceProportion 必须在 (0, 1] 内，否则减速阶段和停止阶段的判定区间会重叠或反转
func (c LocomotionConfig) Validate() error {
	if c.InputHoldDelay < 0 {
		return fmt.Errorf("%w: inputHoldDelay must be >= 0, got %v", ErrInvalidLocomotionConfig, c.InputHoldDelay)
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"turnSpeedThreshold", c.TurnSpeedThreshold},
		{"speedDampTime", c.SpeedDampTime},
		{"slowingSpeed", c.SlowingSpeed},
		{"turnSmoothing", c.TurnSmoothing},
		{"navMeshSampleDistance", c.NavMeshSampleDistance},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return fmt.Errorf("%w: %s must be >= 0, got %.3f", ErrInvalidLocomotionConfig, f.name, f.value)
		}
	}

	if c.StopDistanceProportion <= 0 || c.StopDistanceProportion > 1 {
		return fmt.Errorf("%w: stopDistanceProportion must be in (0, 1], got %.3f",
			ErrInvalidLocomotionConfig, c.StopDistanceProportion)
	}

	return nil
}
