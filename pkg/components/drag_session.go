package components

// NoCrossing 表示尚未跨越任何分段或标记
const NoCrossing = -1

// DragSession 单次指针交互的临时状态
//
// 指针按下时开始，移动时更新，抬起/取消时重置为初始值，不持久化。
type DragSession struct {
	IsDragging              bool
	LastCrossedSegmentIndex int
	LastCrossedMarkerIndex  int

	// CurrentValue 本次拖动最近一次上报给宿主的值
	CurrentValue float64
}

// NewDragSession 返回空闲状态的会话
func NewDragSession() DragSession {
	return DragSession{
		LastCrossedSegmentIndex: NoCrossing,
		LastCrossedMarkerIndex:  NoCrossing,
	}
}

// Reset 回到空闲状态
func (s *DragSession) Reset() {
	*s = NewDragSession()
}
