package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SceneConfig 演示场景配置
//
// 配置文件位置: data/scene.yaml
type SceneConfig struct {
	// Spawn 角色出生点（XZ 平面）
	Spawn PointConfig `yaml:"spawn"`

	// SpawnYaw 角色初始朝向（度，0 面向 +Z）
	SpawnYaw float64 `yaml:"spawnYaw"`

	// Walkable 可行走区域列表（轴对齐矩形）
	Walkable []AreaConfig `yaml:"walkable"`

	// Agent 寻路代理参数
	Agent AgentConfig `yaml:"agent"`

	// InteractDuration 交互动画时长（秒）
	InteractDuration float64 `yaml:"interactDuration"`

	// Interactables 可交互物体
	Interactables []InteractableConfig `yaml:"interactables"`
}

// PointConfig XZ 平面上的点
type PointConfig struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

// AreaConfig 可行走矩形区域
type AreaConfig struct {
	MinX float64 `yaml:"minX"`
	MinZ float64 `yaml:"minZ"`
	MaxX float64 `yaml:"maxX"`
	MaxZ float64 `yaml:"maxZ"`
}

// AgentConfig 寻路代理参数
type AgentConfig struct {
	Speed            float64 `yaml:"speed"`            // 最大移动速度（单位/秒）
	Acceleration     float64 `yaml:"acceleration"`     // 加速度（单位/秒²）
	StoppingDistance float64 `yaml:"stoppingDistance"` // 停止距离
	AutoBraking      bool    `yaml:"autoBraking"`      // 接近终点时是否自动减速
}

// InteractableConfig 可交互物体配置
type InteractableConfig struct {
	Name     string      `yaml:"name"`
	Position PointConfig `yaml:"position"` // 物体中心
	Radius   float64     `yaml:"radius"`   // 点击判定半径

	// Anchor 交互时角色站立的位置
	Anchor PointConfig `yaml:"anchor"`
	// AnchorYaw 交互时角色的朝向（度）
	AnchorYaw float64 `yaml:"anchorYaw"`
}

// DefaultSceneConfig 返回内置演示场景
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Spawn: PointConfig{X: 0, Z: 0},
		Walkable: []AreaConfig{
			{MinX: -10, MinZ: -7, MaxX: 4, MaxZ: 7},
			{MinX: 4, MinZ: -2, MaxX: 10, MaxZ: 2},
		},
		Agent: AgentConfig{
			Speed:            2,
			Acceleration:     8,
			StoppingDistance: 1,
			AutoBraking:      true,
		},
		InteractDuration: 1.2,
		Interactables: []InteractableConfig{
			{
				Name:      "chest",
				Position:  PointConfig{X: -6, Z: 5},
				Radius:    0.6,
				Anchor:    PointConfig{X: -6, Z: 3.8},
				AnchorYaw: 0,
			},
			{
				Name:      "lever",
				Position:  PointConfig{X: 9, Z: 0},
				Radius:    0.5,
				Anchor:    PointConfig{X: 7.8, Z: 0},
				AnchorYaw: 90,
			},
		},
	}
}

// LoadSceneConfig 从 YAML 文件加载场景配置
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *SceneConfig: 加载成功后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}

	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config: %w", err)
	}

	return &cfg, nil
}

// Validate 验证场景配置
func (c *SceneConfig) Validate() error {
	if len(c.Walkable) == 0 {
		return fmt.Errorf("at least one walkable area is required")
	}
	for i, a := range c.Walkable {
		if a.MinX > a.MaxX || a.MinZ > a.MaxZ {
			return fmt.Errorf("walkable[%d] invalid: min(%.1f, %.1f) > max(%.1f, %.1f)",
				i, a.MinX, a.MinZ, a.MaxX, a.MaxZ)
		}
	}

	if c.Agent.Speed <= 0 {
		return fmt.Errorf("agent speed must be > 0, got %.2f", c.Agent.Speed)
	}
	if c.Agent.Acceleration <= 0 {
		return fmt.Errorf("agent acceleration must be > 0, got %.2f", c.Agent.Acceleration)
	}
	if c.Agent.StoppingDistance <= 0 {
		return fmt.Errorf("agent stoppingDistance must be > 0, got %.2f", c.Agent.StoppingDistance)
	}
	if c.InteractDuration <= 0 {
		return fmt.Errorf("interactDuration must be > 0, got %.2f", c.InteractDuration)
	}

	seen := make(map[string]bool, len(c.Interactables))
	for _, it := range c.Interactables {
		if it.Name == "" {
			return fmt.Errorf("interactable name is empty")
		}
		if seen[it.Name] {
			return fmt.Errorf("duplicate interactable %q", it.Name)
		}
		seen[it.Name] = true
		if it.Radius <= 0 {
			return fmt.Errorf("interactable %q radius must be > 0, got %.2f", it.Name, it.Radius)
		}
	}

	return nil
}
