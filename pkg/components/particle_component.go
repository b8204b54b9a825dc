package components

import "image/color"

// ParticleShape 彩纸粒子的形状
type ParticleShape int

const (
	ShapeCircle ParticleShape = iota
	ShapeSquare
	ShapeStar
	ShapeHeart
)

// AllShapes 所有可选形状（随机抽取用）
var AllShapes = []ParticleShape{ShapeCircle, ShapeSquare, ShapeStar, ShapeHeart}

// String 返回形状名称
func (s ParticleShape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeStar:
		return "star"
	case ShapeHeart:
		return "heart"
	}
	return "unknown"
}

// ParticleComponent 单个彩纸粒子的初始状态
//
// 粒子轨迹是时间的解析函数，不做逐帧积分：
//
//	x(t) = X + VelocityX*t
//	y(t) = Y + VelocityY*t + 0.5*g*t²
//	rot(t) = Rotation + RotationSpeed*t
//
// 这是纯数据组件，由 ParticleSystem 创建并计算。
type ParticleComponent struct {
	// 发射原点（屏幕坐标）
	X, Y float64

	// Velocity (速度, 像素/秒)
	VelocityX float64
	VelocityY float64

	// Rotation (旋转, 角度)
	Rotation      float64 // 初始角度
	RotationSpeed float64 // 角速度（度/秒）

	Color color.RGBA
	Shape ParticleShape

	SpawnTime int64 // 生成时刻（毫秒）
}

// ParticleSnapshot 粒子在某一时刻的位置，供渲染使用
type ParticleSnapshot struct {
	X, Y     float64
	Rotation float64
	Color    color.RGBA
	Shape    ParticleShape
}
