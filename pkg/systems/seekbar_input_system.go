package systems

import (
	"github.com/gonewx/seekbar/pkg/components"
	"github.com/gonewx/seekbar/pkg/config"
	"github.com/gonewx/seekbar/pkg/ecs"
	"github.com/gonewx/seekbar/pkg/utils"
)

// SeekBarPointerInput 进度拖动条指针输入接口
// 用于依赖注入，支持测试时 mock
type SeekBarPointerInput interface {
	Poll() utils.PointerState
}

// SeekBarInputSystem 进度拖动条交互系统
//
// 职责：
//   - 每帧读取指针状态，命中触控区域时开始拖动
//   - 拖动中把指针偏移交给 SeekBarGesture（拖出控件范围同样跟随）
//   - 推进显示进度动画（拖动中立即跳变，否则 150ms 缓动）
//
// 同一时间只有一个实体捕获指针。
type SeekBarInputSystem struct {
	entityManager *ecs.EntityManager
	pointer       SeekBarPointerInput
	gesture       *SeekBarGesture
	animator      *ProgressAnimator
	captured      ecs.EntityID // 0 表示无
}

// NewSeekBarInputSystem 创建使用 Ebitengine 鼠标/触摸输入的交互系统
func NewSeekBarInputSystem(em *ecs.EntityManager, haptics HapticPerformer) *SeekBarInputSystem {
	return NewSeekBarInputSystemWithInput(em, utils.NewPointerTracker(), haptics)
}

// NewSeekBarInputSystemWithInput 创建带自定义指针输入的交互系统（用于测试）
func NewSeekBarInputSystemWithInput(em *ecs.EntityManager, input SeekBarPointerInput, haptics HapticPerformer) *SeekBarInputSystem {
	return &SeekBarInputSystem{
		entityManager: em,
		pointer:       input,
		gesture:       NewSeekBarGesture(haptics),
		animator:      NewProgressAnimator(),
	}
}

// Update 处理指针事件并推进进度动画
func (s *SeekBarInputSystem) Update(deltaTime float64) {
	s.handlePointer(s.pointer.Poll())

	entities := ecs.GetEntitiesWith1[*components.SeekBarComponent](s.entityManager)
	for _, entityID := range entities {
		bar, ok := ecs.GetComponent[*components.SeekBarComponent](s.entityManager, entityID)
		if !ok || bar == nil {
			continue
		}
		s.updateProgressAnimation(bar, deltaTime)
	}
}

// handlePointer 将指针阶段转换为拖动状态机事件
func (s *SeekBarInputSystem) handlePointer(state utils.PointerState) {
	switch state.Phase {
	case utils.PointerJustPressed:
		id, bar, pos := s.hitTest(float64(state.X), float64(state.Y))
		if bar == nil {
			return
		}
		s.captured = id
		s.gesture.DragStart(bar, float64(state.X)-pos.X, bar.Width)

	case utils.PointerHeld:
		bar, pos := s.capturedBar()
		if bar == nil {
			return
		}
		s.gesture.DragMove(bar, float64(state.X)-pos.X, bar.Width)

	case utils.PointerJustReleased:
		bar, _ := s.capturedBar()
		s.captured = 0
		if bar == nil {
			return
		}
		s.gesture.DragEnd(bar)
	}
}

// capturedBar 返回当前捕获指针的实体组件；实体已被删除时释放捕获
func (s *SeekBarInputSystem) capturedBar() (*components.SeekBarComponent, *components.PositionComponent) {
	if s.captured == 0 {
		return nil, nil
	}
	bar, ok := ecs.GetComponent[*components.SeekBarComponent](s.entityManager, s.captured)
	pos, ok2 := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.captured)
	if !ok || !ok2 {
		s.captured = 0
		return nil, nil
	}
	return bar, pos
}

// hitTest 查找触控区域包含 (x, y) 的第一个可用实体
// 触控区域在水平方向两侧各扩展一个滑块半径，便于拖到端点
func (s *SeekBarInputSystem) hitTest(x, y float64) (ecs.EntityID, *components.SeekBarComponent, *components.PositionComponent) {
	entities := ecs.GetEntitiesWith2[*components.SeekBarComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		bar, _ := ecs.GetComponent[*components.SeekBarComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if bar == nil || pos == nil || !bar.Enabled {
			continue
		}
		slop := bar.Dimensions.ThumbRadius
		if x >= pos.X-slop && x <= pos.X+bar.Width+slop && y >= pos.Y && y <= pos.Y+bar.Height {
			return entityID, bar, pos
		}
	}
	return 0, nil, nil
}

// updateProgressAnimation 让显示进度追踪目标进度
func (s *SeekBarInputSystem) updateProgressAnimation(bar *components.SeekBarComponent, deltaTime float64) {
	if ValidateSeekBarValue(bar.Value, bar.Range) != nil {
		return
	}

	duration := config.ProgressAnimationDuration
	if bar.Session.IsDragging {
		duration = config.DraggingAnimationDuration
	}
	s.animator.AnimateTo(&bar.Progress, NormalizedProgress(bar), duration)
	s.animator.Update(&bar.Progress, deltaTime)
}
