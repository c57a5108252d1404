package config

// 布局配置常量
// 本文件定义演示场景的窗口尺寸与世界坐标到屏幕坐标的映射参数
//
// 世界坐标：XZ 平面，Y 轴向上，单位为米
// 屏幕坐标：窗口左上角为原点，X 向右，Y 向下
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// PixelsPerUnit 每个世界单位对应的像素数
	PixelsPerUnit = 36.0

	// AgentRadiusPixels 角色绘制半径（像素）
	AgentRadiusPixels = 9.0
)

// WorldToScreen 将世界坐标（XZ 平面）转换为屏幕坐标
//
// 世界原点位于屏幕中心，+X 向右，+Z 向上（屏幕 Y 减小）。
func WorldToScreen(x, z float64) (sx, sy float64) {
	sx = float64(GameWindowWidth)/2 + x*PixelsPerUnit
	sy = float64(GameWindowHeight)/2 - z*PixelsPerUnit
	return sx, sy
}

// ScreenToWorld 将屏幕坐标转换为世界坐标（XZ 平面）
func ScreenToWorld(sx, sy float64) (x, z float64) {
	x = (sx - float64(GameWindowWidth)/2) / PixelsPerUnit
	z = (float64(GameWindowHeight)/2 - sy) / PixelsPerUnit
	return x, z
}
