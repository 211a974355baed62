package components

import (
	"github.com/gonewx/aseanim/internal/aseprite"
	"github.com/hajimehoshi/ebiten/v2"
)

// AsepriteAnimationComponent 播放已加载 Aseprite 动画的各个状态
// 每一帧按精灵表中各自的时长显示
type AsepriteAnimationComponent struct {
	Animation *aseprite.Animation // 已加载的精灵表动画
	StateName string              // 当前播放的状态名
	Frames    []*ebiten.Image     // 当前状态的帧子图像,按播放顺序

	CurrentFrame int     // 本地帧索引(从0开始)
	FrameCounter float64 // 当前帧已经过的秒数
	IsLooping    bool    // 是否循环播放
	IsFinished   bool    // 非循环状态是否已播放完毕

	// NextState 非循环状态结束后自动切换到的状态(可选)
	NextState string
}

// State 返回当前播放的 aseprite 状态
func (c *AsepriteAnimationComponent) State() (*aseprite.State, bool) {
	if c.Animation == nil {
		return nil, false
	}
	return c.Animation.State(c.StateName)
}
