// Package scenes 实现点击移动演示场景
//
// WalkWorld 负责模拟（实体、导航网格、动画、移动控制器），
// WalkScene 在其上增加 Ebitengine 的输入处理和绘制。
package scenes

import (
	"github.com/decker502/clickwalk/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

var _ Scene = (*WalkScene)(nil)
