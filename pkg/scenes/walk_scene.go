package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/clickwalk/pkg/animator"
	"github.com/decker502/clickwalk/pkg/config"
	"github.com/decker502/clickwalk/pkg/utils"
)

var (
	backgroundColor   = color.RGBA{R: 34, G: 40, B: 49, A: 255}
	walkableColor     = color.RGBA{R: 88, G: 129, B: 87, A: 255}
	interactableColor = color.RGBA{R: 214, G: 162, B: 67, A: 255}
	usedColor         = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	hoverColor        = color.RGBA{R: 255, G: 209, B: 102, A: 255}
	anchorColor       = color.RGBA{R: 255, G: 255, B: 255, A: 160}
	destinationColor  = color.RGBA{R: 230, G: 57, B: 70, A: 255}
	playerColor       = color.RGBA{R: 69, G: 123, B: 157, A: 255}
	lockedColor       = color.RGBA{R: 168, G: 218, B: 220, A: 255}
	facingColor       = color.RGBA{R: 241, G: 250, B: 238, A: 255}
)

// WalkScene 点击移动演示场景
//
// 左键（或触摸）点击可交互物体时走过去交互，点击其他位置时移动过去。
// F3 切换调试信息。
type WalkScene struct {
	world     *WalkWorld
	showDebug bool
}

// NewWalkScene 创建演示场景
func NewWalkScene(world *WalkWorld) *WalkScene {
	return &WalkScene{
		world:     world,
		showDebug: true,
	}
}

// World 返回场景使用的演示世界
func (s *WalkScene) World() *WalkWorld {
	return s.world
}

// Update 处理输入并推进模拟
func (s *WalkScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.showDebug = !s.showDebug
	}

	if pressed, x, y := utils.IsPointerJustPressed(); pressed {
		wx, wz := config.ScreenToWorld(float64(x), float64(y))
		s.world.Click(mgl64.Vec3{wx, 0, wz})
	}

	s.world.Step(deltaTime)
}

// Draw 绘制场景
func (s *WalkScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, a := range s.world.Mesh().Areas() {
		x0, y0 := config.WorldToScreen(a.MinX, a.MaxZ)
		x1, y1 := config.WorldToScreen(a.MaxX, a.MinZ)
		vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), walkableColor, false)
	}

	mx, my := utils.GetPointerPosition()
	hx, hz := config.ScreenToWorld(float64(mx), float64(my))
	hovered := s.world.InteractableAt(mgl64.Vec3{hx, 0, hz})

	for _, it := range s.world.Interactables() {
		clr := interactableColor
		if it.Uses > 0 {
			clr = usedColor
		}
		if it == hovered {
			clr = hoverColor
		}
		cx, cy := config.WorldToScreen(it.Center.X(), it.Center.Z())
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(it.Radius*config.PixelsPerUnit), clr, true)

		ax, ay := config.WorldToScreen(it.Anchor.Position.X(), it.Anchor.Position.Z())
		drawFacing(screen, ax, ay, utils.Yaw(it.Anchor.Rotation), config.AgentRadiusPixels, anchorColor)
	}

	ctrl := s.world.Controller()
	player := s.world.Player()
	px, py := config.WorldToScreen(player.Pos.X(), player.Pos.Z())

	if s.world.Agent().HasPath() && !s.world.Agent().IsStopped() {
		dx, dy := config.WorldToScreen(ctrl.Destination().X(), ctrl.Destination().Z())
		vector.StrokeLine(screen, float32(px), float32(py), float32(dx), float32(dy), 1, destinationColor, true)
		drawCross(screen, dx, dy, 6, destinationColor)
	}

	body := playerColor
	if ctrl.IsLocked() {
		body = lockedColor
	}
	vector.DrawFilledCircle(screen, float32(px), float32(py), config.AgentRadiusPixels, body, true)
	drawFacing(screen, px, py, utils.Yaw(player.Rot), config.AgentRadiusPixels*2, facingColor)

	if s.showDebug {
		s.drawDebug(screen)
	}
}

func (s *WalkScene) drawDebug(screen *ebiten.Image) {
	ctrl := s.world.Controller()
	agent := s.world.Agent()
	msg := fmt.Sprintf("phase: %s  speed: %.3f  param: %.3f\nremaining: %.2f  lock: %s  state: %s\narrivals: %d  t: %.1fs",
		ctrl.Phase(), ctrl.Speed(), s.world.Animator().Float(animator.SpeedParam),
		agent.RemainingDistance(), ctrl.LockPhase(), s.world.Animator().CurrentStateName(),
		ctrl.Arrivals(), s.world.Elapsed())
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}

// drawFacing 从 (x, y) 沿世界朝向 yaw（弧度）画一条线
func drawFacing(screen *ebiten.Image, x, y, yaw, length float64, clr color.Color) {
	// 世界 +Z 对应屏幕向上
	ex := x + math.Sin(yaw)*length
	ey := y - math.Cos(yaw)*length
	vector.StrokeLine(screen, float32(x), float32(y), float32(ex), float32(ey), 2, clr, true)
}

func drawCross(screen *ebiten.Image, x, y, size float64, clr color.Color) {
	vector.StrokeLine(screen, float32(x-size), float32(y-size), float32(x+size), float32(y+size), 2, clr, true)
	vector.StrokeLine(screen, float32(x-size), float32(y+size), float32(x+size), float32(y-size), 2, clr, true)
}
