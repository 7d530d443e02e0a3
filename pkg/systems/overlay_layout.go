package systems

import "github.com/gonewx/seekbar/pkg/components"

// OverlayKind 浮层内容类型
type OverlayKind int

const (
	// OverlayMarkerAbove 标记点浮层：水平居中，显示在控件上方
	OverlayMarkerAbove OverlayKind = iota
	// OverlayMarkerContent 标记点内容：水平垂直居中于标记点
	OverlayMarkerContent
	// OverlayThumb 滑块浮层：水平垂直居中于滑块
	OverlayThumb
)

// OverlayPlacement 浮层内容的摆放结果（控件局部坐标，左上角）
type OverlayPlacement struct {
	Kind    OverlayKind
	X, Y    float64
	Content components.Renderable
}

// PlaceOverlay 计算浮层左上角位置
//
// 参数：
//   - position: 归一化位置
//   - trackWidth: 轨道宽度
//   - barHeight: 控件高度
//   - contentWidth, contentHeight: 内容尺寸
func PlaceOverlay(kind OverlayKind, position, trackWidth, barHeight, contentWidth, contentHeight float64) (x, y float64) {
	x = position*trackWidth - contentWidth/2
	switch kind {
	case OverlayMarkerAbove:
		y = -contentHeight
	default:
		y = barHeight/2 - contentHeight/2
	}
	return x, y
}

// LayoutOverlays 收集一帧内所有浮层的摆放位置
// 顺序：标记点浮层、标记点内容（按标记顺序），最后是滑块浮层
func LayoutOverlays(frame SeekBarFrame, thumbOverlay components.Renderable) []OverlayPlacement {
	var placements []OverlayPlacement

	place := func(kind OverlayKind, position float64, content components.Renderable) {
		if content == nil {
			return
		}
		cw, ch := content.Size()
		x, y := PlaceOverlay(kind, position, frame.Width, frame.Height, cw, ch)
		placements = append(placements, OverlayPlacement{Kind: kind, X: x, Y: y, Content: content})
	}

	for _, m := range frame.Markers {
		place(OverlayMarkerAbove, m.Position, m.Marker.OverlayContent)
		place(OverlayMarkerContent, m.Position, m.Marker.Content)
	}
	place(OverlayThumb, frame.Progress, thumbOverlay)

	return placements
}
