// Package game 保存演示程序在多次运行之间需要保留的数据
package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/decker502/clickwalk/pkg/config"
)

// 存储路径常量
const (
	tuningObject   = "tuning"
	tuningProperty = "locomotion"
)

// TuningStore 移动参数存储
//
// 演示程序在调试面板里修改的参数会通过 gdata 保存，下次启动时恢复。
// 移动控制器本身不做任何持久化，只在构造时接收一份参数。
type TuningStore struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	tuning       config.LocomotionConfig
	logger       *zap.Logger
}

// NewTuningStore 创建移动参数存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存参数）
//   - fallback: 没有保存过参数或保存的数据无效时使用的参数
//   - logger: 日志记录器，可为 nil
//
// 返回：
//   - *TuningStore: 存储实例，加载失败时回退到 fallback，不会返回 nil
func NewTuningStore(gdataManager *gdata.Manager, fallback config.LocomotionConfig, logger *zap.Logger) *TuningStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	ts := &TuningStore{
		gdataManager: gdataManager,
		tuning:       fallback,
		logger:       logger.Named("tuning"),
	}

	if err := ts.load(fallback); err != nil {
		// 加载失败不是致命错误，使用回退参数
		ts.logger.Warn("failed to load tuning, using defaults", zap.Error(err))
	}

	return ts
}

func (ts *TuningStore) load(fallback config.LocomotionConfig) error {
	if ts.gdataManager == nil {
		return nil
	}
	if !ts.gdataManager.ObjectPropExists(tuningObject, tuningProperty) {
		return nil
	}

	data, err := ts.gdataManager.LoadObjectProp(tuningObject, tuningProperty)
	if err != nil {
		return fmt.Errorf("failed to load tuning: %w", err)
	}

	tuning, err := config.ParseLocomotionConfig(data)
	if err != nil {
		ts.tuning = fallback
		return err
	}

	ts.tuning = tuning
	ts.logger.Info("tuning loaded")
	return nil
}

// Tuning 当前移动参数
func (ts *TuningStore) Tuning() config.LocomotionConfig {
	return ts.tuning
}

// Set 替换当前移动参数（仅内存，需调用 Save 持久化）
//
// 返回：
//   - error: 参数验证失败时返回错误，当前参数保持不变
func (ts *TuningStore) Set(tuning config.LocomotionConfig) error {
	if err := tuning.Validate(); err != nil {
		return err
	}
	ts.tuning = tuning
	return nil
}

// Save 保存当前参数
//
// 降级模式下直接返回 nil。
func (ts *TuningStore) Save() error {
	if ts.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(ts.tuning)
	if err != nil {
		return fmt.Errorf("failed to marshal tuning: %w", err)
	}
	if err := ts.gdataManager.SaveObjectProp(tuningObject, tuningProperty, data); err != nil {
		return fmt.Errorf("failed to save tuning: %w", err)
	}

	ts.logger.Info("tuning saved")
	return nil
}

// Persistent 是否能够持久化
func (ts *TuningStore) Persistent() bool {
	return ts.gdataManager != nil
}
