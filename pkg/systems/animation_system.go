package systems

import (
	"fmt"
	"log"
	"reflect"

	"github.com/gonewx/aseanim/pkg/components"
	"github.com/gonewx/aseanim/pkg/ecs"
	"github.com/gonewx/aseanim/pkg/utils"
)

// AsepriteAnimationSystem 推进所有实体的 Aseprite 动画,并让 SpriteComponent 显示当前帧
type AsepriteAnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAsepriteAnimationSystem 创建一个新的 Aseprite 动画播放系统
func NewAsepriteAnimationSystem(em *ecs.EntityManager) *AsepriteAnimationSystem {
	return &AsepriteAnimationSystem{
		entityManager: em,
	}
}

// Play 将实体切换到指定状态,从本地第 0 帧开始播放
func (s *AsepriteAnimationSystem) Play(id ecs.EntityID, stateName string, loop bool) error {
	anim, ok := ecs.Get[*components.AsepriteAnimationComponent](s.entityManager, id)
	if !ok {
		return fmt.Errorf("entity %d has no AsepriteAnimationComponent", id)
	}

	frames, err := utils.FrameImages(anim.Animation, stateName)
	if err != nil {
		return fmt.Errorf("failed to play state '%s' on entity %d: %w", stateName, id, err)
	}
	if len(frames) == 0 {
		return fmt.Errorf("state '%s' has no frames to play", stateName)
	}

	anim.StateName = stateName
	anim.Frames = frames
	anim.CurrentFrame = 0
	anim.FrameCounter = 0
	anim.IsLooping = loop
	anim.IsFinished = false

	if sprite, ok := ecs.Get[*components.SpriteComponent](s.entityManager, id); ok {
		sprite.Image = frames[0]
	}

	log.Printf("[AsepriteAnimationSystem] Playing '%s' (entity %d, frames: %d, loop: %v)", stateName, id, len(frames), loop)
	return nil
}

// Update 按 deltaTime(秒)推进所有动画
// 当 deltaTime 超过帧时长时,一次更新可能跨越多帧
func (s *AsepriteAnimationSystem) Update(deltaTime float64) {
	entities := s.entityManager.GetEntitiesWith(
		reflect.TypeOf(&components.AsepriteAnimationComponent{}),
		reflect.TypeOf(&components.SpriteComponent{}),
	)

	for _, id := range entities {
		anim, _ := ecs.Get[*components.AsepriteAnimationComponent](s.entityManager, id)
		sprite, _ := ecs.Get[*components.SpriteComponent](s.entityManager, id)

		if anim.IsFinished || len(anim.Frames) == 0 {
			continue
		}
		state, ok := anim.State()
		if !ok {
			continue
		}

		anim.FrameCounter += deltaTime
		// 每次更新每帧最多经过一次,时长为 0 的帧不会导致死循环
		for steps := 0; steps < len(anim.Frames); steps++ {
			frameTime := state.FrameDuration(anim.CurrentFrame).Seconds()
			if anim.FrameCounter < frameTime {
				break
			}
			anim.FrameCounter -= frameTime

			if anim.CurrentFrame < len(anim.Frames)-1 {
				anim.CurrentFrame++
				continue
			}
			if anim.IsLooping {
				anim.CurrentFrame = 0
				continue
			}

			anim.IsFinished = true
			anim.FrameCounter = 0
			break
		}

		sprite.Image = anim.Frames[anim.CurrentFrame]

		if anim.IsFinished && anim.NextState != "" {
			next := anim.NextState
			anim.NextState = ""
			if err := s.Play(id, next, true); err != nil {
				log.Printf("[AsepriteAnimationSystem] Warning: %v", err)
			}
		}
	}
}
