// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerPhase 指针在本帧所处的阶段
type PointerPhase int

const (
	// PointerIdle 无按下
	PointerIdle PointerPhase = iota
	// PointerJustPressed 本帧刚按下
	PointerJustPressed
	// PointerHeld 持续按住
	PointerHeld
	// PointerJustReleased 本帧刚释放（或触摸被系统取消）
	PointerJustReleased
)

// PointerState 当前帧的指针状态（鼠标与触摸统一）
type PointerState struct {
	Phase   PointerPhase
	X, Y    int
	IsTouch bool
}

// Pressed 指针当前是否处于按下状态
func (s PointerState) Pressed() bool {
	return s.Phase == PointerJustPressed || s.Phase == PointerHeld
}

// pointerSource 底层输入源，默认由 Ebitengine 提供，测试时可替换
type pointerSource interface {
	JustPressedTouchIDs() []ebiten.TouchID
	TouchIDs() []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
	MousePressed() bool
	CursorPosition() (int, int)
}

type ebitenPointerSource struct{}

func (ebitenPointerSource) JustPressedTouchIDs() []ebiten.TouchID {
	return inpututil.AppendJustPressedTouchIDs(nil)
}

func (ebitenPointerSource) TouchIDs() []ebiten.TouchID {
	return ebiten.AppendTouchIDs(nil)
}

func (ebitenPointerSource) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

func (ebitenPointerSource) MousePressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (ebitenPointerSource) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

// PointerTracker 跟踪单个指针（一个触摸点或鼠标左键）的按下/移动/释放
//
// 触摸优先：一旦锁定某个 TouchID，直到它释放前都忽略其他触摸和鼠标。
// 触摸释放时 Ebitengine 已无法查询其位置，因此返回最后记录的位置。
type PointerTracker struct {
	source pointerSource

	touchID      ebiten.TouchID
	trackTouch   bool
	mouseDown    bool
	lastX, lastY int
}

// NewPointerTracker 创建使用 Ebitengine 输入的指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{source: ebitenPointerSource{}, touchID: -1}
}

// Poll 读取本帧指针状态，每帧只应调用一次
func (pt *PointerTracker) Poll() PointerState {
	if pt.trackTouch {
		for _, id := range pt.source.TouchIDs() {
			if id == pt.touchID {
				pt.lastX, pt.lastY = pt.source.TouchPosition(id)
				return PointerState{Phase: PointerHeld, X: pt.lastX, Y: pt.lastY, IsTouch: true}
			}
		}
		pt.trackTouch = false
		pt.touchID = -1
		return PointerState{Phase: PointerJustReleased, X: pt.lastX, Y: pt.lastY, IsTouch: true}
	}

	if !pt.mouseDown {
		if ids := pt.source.JustPressedTouchIDs(); len(ids) > 0 {
			pt.trackTouch = true
			pt.touchID = ids[0]
			pt.lastX, pt.lastY = pt.source.TouchPosition(ids[0])
			return PointerState{Phase: PointerJustPressed, X: pt.lastX, Y: pt.lastY, IsTouch: true}
		}
	}

	x, y := pt.source.CursorPosition()
	pressed := pt.source.MousePressed()
	wasDown := pt.mouseDown
	pt.mouseDown = pressed
	pt.lastX, pt.lastY = x, y

	switch {
	case pressed && !wasDown:
		return PointerState{Phase: PointerJustPressed, X: x, Y: y}
	case pressed:
		return PointerState{Phase: PointerHeld, X: x, Y: y}
	case wasDown:
		return PointerState{Phase: PointerJustReleased, X: x, Y: y}
	default:
		return PointerState{Phase: PointerIdle, X: x, Y: y}
	}
}
