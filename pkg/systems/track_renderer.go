package systems

import (
	"math"

	"github.com/gonewx/seekbar/pkg/components"
	"github.com/gonewx/seekbar/pkg/config"
	"github.com/gonewx/seekbar/pkg/utils"
)

// PrimitiveKind 绘制图元类型
type PrimitiveKind int

const (
	// PrimitiveLine 圆头线段
	PrimitiveLine PrimitiveKind = iota
	// PrimitiveCircle 实心圆
	PrimitiveCircle
)

// PrimitiveLayer 图元所属的绘制层（仅用于调试与测试，顺序由切片决定）
type PrimitiveLayer int

const (
	LayerTrack PrimitiveLayer = iota
	LayerSegmentBackground
	LayerProgress
	LayerReadAhead
	LayerGap
	LayerMarker
	LayerThumbShadow
	LayerThumb
)

// DrawPrimitive 单个绘制图元（控件局部坐标，像素）
//
// 线段端点为 (X0,Y0)-(X1,Y1)，圆心为 (X0,Y0)。
// Clear 为 true 时以透明色覆盖目标像素（分段间隙）。
type DrawPrimitive struct {
	Kind        PrimitiveKind
	Layer       PrimitiveLayer
	X0, Y0      float64
	X1, Y1      float64
	StrokeWidth float64
	Radius      float64
	Color       components.Color
	Clear       bool
}

func line(layer PrimitiveLayer, x0, x1, y, width float64, c components.Color) DrawPrimitive {
	return DrawPrimitive{Kind: PrimitiveLine, Layer: layer, X0: x0, Y0: y, X1: x1, Y1: y, StrokeWidth: width, Color: c}
}

func circle(layer PrimitiveLayer, cx, cy, r float64, c components.Color) DrawPrimitive {
	return DrawPrimitive{Kind: PrimitiveCircle, Layer: layer, X0: cx, Y0: cy, Radius: r, Color: c}
}

// ThumbRadius 当前滑块半径（拖动中放大）
func ThumbRadius(dims components.SeekBarDimensions, isDragging bool) float64 {
	if isDragging {
		return dims.ThumbRadius * config.ThumbDraggingScale
	}
	return dims.ThumbRadius
}

// BuildTrackPrimitives 生成一帧的有序绘制图元
//
// 绘制顺序：轨道/分段背景 -> 进度填充 -> 预读 -> 分段间隙 -> 标记 -> 滑块投影 -> 滑块，
// 后绘制的覆盖先绘制的。
func BuildTrackPrimitives(frame SeekBarFrame) []DrawPrimitive {
	w := frame.Width
	cy := frame.Height / 2
	stroke := frame.Dimensions.TrackHeight
	colors := frame.Colors
	progress := frame.Progress
	readAhead := frame.ReadAhead

	primitives := make([]DrawPrimitive, 0, 4*len(frame.Segments)+len(frame.Markers)+5)

	if len(frame.Segments) == 0 {
		primitives = append(primitives, line(LayerTrack, 0, w, cy, stroke, colors.Track))
		if readAhead > progress {
			primitives = append(primitives, line(LayerReadAhead, progress*w, readAhead*w, cy, stroke, colors.ReadAhead))
		}
		if progress > 0 {
			primitives = append(primitives, line(LayerProgress, 0, progress*w, cy, stroke, colors.Progress))
		}
	} else {
		primitives = appendSegmentPrimitives(primitives, frame, cy, stroke)
	}

	// 标记刻度
	for _, m := range frame.Markers {
		x := m.Position * w
		half := m.Marker.Size / 2
		primitives = append(primitives, DrawPrimitive{
			Kind:        PrimitiveLine,
			Layer:       LayerMarker,
			X0:          x,
			Y0:          cy - half,
			X1:          x,
			Y1:          cy + half,
			StrokeWidth: frame.Dimensions.MarkerWidth,
			Color:       m.Marker.Color,
		})
	}

	// 滑块：投影在下，实心圆在上
	radius := ThumbRadius(frame.Dimensions, frame.IsDragging)
	thumbColor := colors.Thumb
	if frame.IsDragging {
		thumbColor = colors.ThumbPressed
	}
	thumbX := progress * w
	primitives = append(primitives,
		circle(LayerThumbShadow, thumbX, cy+frame.Dimensions.ThumbShadowOffset, radius+frame.Dimensions.ThumbShadowSpread, colors.ThumbShadow),
		circle(LayerThumb, thumbX, cy, radius, thumbColor),
	)

	return primitives
}

// appendSegmentPrimitives 分段模式：背景 -> 填充 -> 预读 -> 间隙
func appendSegmentPrimitives(primitives []DrawPrimitive, frame SeekBarFrame, cy, stroke float64) []DrawPrimitive {
	w := frame.Width
	colors := frame.Colors
	progress := frame.Progress
	readAhead := frame.ReadAhead
	segments := frame.Segments

	for _, seg := range segments {
		bg := colors.Track
		if seg.Color != nil {
			bg = utils.WithAlpha(*seg.Color, config.SegmentBackgroundAlpha)
		}
		primitives = append(primitives, line(LayerSegmentBackground, seg.Start*w, seg.End*w, cy, stroke, bg))
	}

	for _, seg := range segments {
		end := math.Min(seg.End, progress)
		if end <= seg.Start {
			continue
		}
		fill := colors.Progress
		if seg.Color != nil {
			fill = *seg.Color
		}
		primitives = append(primitives, line(LayerProgress, seg.Start*w, end*w, cy, stroke, fill))
	}

	if readAhead > progress {
		for _, seg := range segments {
			start := math.Max(seg.Start, progress)
			end := math.Min(seg.End, readAhead)
			if end <= start {
				continue
			}
			primitives = append(primitives, line(LayerReadAhead, start*w, end*w, cy, stroke, colors.ReadAhead))
		}
	}

	for i := 0; i+1 < len(segments); i++ {
		gapStart := segments[i].End
		gapEnd := segments[i+1].Start
		if gapEnd <= gapStart {
			continue
		}
		gap := line(LayerGap, gapStart*w, gapEnd*w, cy, stroke, components.Color{})
		gap.Clear = true
		primitives = append(primitives, gap)
	}

	return primitives
}
