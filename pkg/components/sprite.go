package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的渲染图像、位置和缩放
type SpriteComponent struct {
	Image *ebiten.Image
	X, Y  float64
	Scale float64
}

// DrawOptions 返回将精灵绘制到屏幕上的绘制选项
func (s *SpriteComponent) DrawOptions() *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	scale := s.Scale
	if scale == 0 {
		scale = 1
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(s.X, s.Y)
	return op
}
