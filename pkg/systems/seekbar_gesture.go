package systems

import (
	"log"

	"github.com/gonewx/seekbar/pkg/components"
	"github.com/gonewx/seekbar/pkg/utils"
)

// HapticPerformer 平台触觉反馈能力
// 核心只请求反馈，从不查询硬件是否支持
type HapticPerformer interface {
	PerformHapticFeedback(kind components.HapticKind)
}

// SeekBarGesture 拖动状态机
//
// 状态：Idle -> Dragging -> Idle（单指针，不支持多点触控）
//
// 职责：
//   - 将指针偏移转换为值并通知宿主（OnValueChange / OnSeekStart / OnSeekEnd）
//   - 拖动中检测分段/标记穿越并发出触觉反馈
//   - 维护 DragSession（供渲染使用，如放大滑块）
//
// 所有回调同步调用；禁用状态下所有输入都被忽略。
type SeekBarGesture struct {
	haptics HapticPerformer
}

// NewSeekBarGesture 创建拖动状态机
//
// 参数：
//   - haptics: 触觉反馈实现，可为 nil（只通知 OnHapticEvent）
func NewSeekBarGesture(haptics HapticPerformer) *SeekBarGesture {
	return &SeekBarGesture{haptics: haptics}
}

// DragStart 指针按下：Idle -> Dragging
//
// 参数：
//   - offset: 指针相对轨道原点的像素偏移
//   - trackWidth: 轨道像素宽度
func (g *SeekBarGesture) DragStart(bar *components.SeekBarComponent, offset, trackWidth float64) {
	if !bar.Enabled {
		return
	}

	preDragValue := bar.Value
	value := utils.FromPointer(offset, trackWidth, bar.Range)

	bar.Session.Reset()
	bar.Session.IsDragging = true
	bar.Session.CurrentValue = value

	if bar.Haptics.Enabled {
		segments := ResolveSegments(bar.Segments, bar.Range, bar.Dimensions.SegmentGap, trackWidth)
		markers := ResolveMarkers(bar.Markers, bar.Range)
		PrimeCrossings(&bar.Session, utils.ToNormalized(value, bar.Range), segments, markers)
	}

	if bar.OnValueChange != nil {
		bar.OnValueChange(value)
	}
	if bar.OnSeekStart != nil {
		bar.OnSeekStart(preDragValue)
	}
	if bar.Haptics.Enabled {
		g.fire(bar, bar.Haptics.OnSeekStart)
	}
}

// DragMove 指针移动：Dragging -> Dragging
// 未处于拖动状态时忽略
func (g *SeekBarGesture) DragMove(bar *components.SeekBarComponent, offset, trackWidth float64) {
	if !bar.Enabled || !bar.Session.IsDragging {
		return
	}

	value := utils.FromPointer(offset, trackWidth, bar.Range)
	bar.Session.CurrentValue = value

	if bar.OnValueChange != nil {
		bar.OnValueChange(value)
	}

	if !bar.Haptics.Enabled {
		return
	}

	p := utils.ToNormalized(value, bar.Range)
	if len(bar.Segments) > 0 {
		segments := ResolveSegments(bar.Segments, bar.Range, bar.Dimensions.SegmentGap, trackWidth)
		if _, crossed := DetectSegmentCrossing(&bar.Session, p, segments); crossed {
			g.fire(bar, bar.Haptics.OnSegmentCross)
		}
	}
	if len(bar.Markers) > 0 {
		markers := ResolveMarkers(bar.Markers, bar.Range)
		if _, crossed := DetectMarkerCrossing(&bar.Session, p, markers); crossed {
			g.fire(bar, bar.Haptics.OnMarkerCross)
		}
	}
}

// DragEnd 指针抬起或取消：Dragging -> Idle
// 取消与抬起等价
func (g *SeekBarGesture) DragEnd(bar *components.SeekBarComponent) {
	if !bar.Session.IsDragging {
		return
	}
	// 拖动过程中被宿主禁用：静默结束会话
	if !bar.Enabled {
		bar.Session.Reset()
		return
	}

	value := bar.Session.CurrentValue
	bar.Session.Reset()

	if bar.OnSeekEnd != nil {
		bar.OnSeekEnd(value)
	}
	if bar.Haptics.Enabled {
		g.fire(bar, bar.Haptics.OnSeekEnd)
	}
}

// fire 同时请求平台反馈并通知宿主
func (g *SeekBarGesture) fire(bar *components.SeekBarComponent, kind components.HapticKind) {
	if kind == components.HapticNone {
		return
	}
	if g.haptics != nil {
		g.haptics.PerformHapticFeedback(kind)
	}
	if bar.OnHapticEvent != nil {
		bar.OnHapticEvent(kind)
	}
	log.Printf("[SeekBarGesture] haptic %s", kind)
}
