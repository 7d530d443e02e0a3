package systems

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gonewx/seekbar/pkg/components"
	"github.com/gonewx/seekbar/pkg/config"
	"github.com/gonewx/seekbar/pkg/utils"
)

// ErrValueOutOfRange 当前值不在值区间内（调用方契约错误，控件拒绝渲染）
var ErrValueOutOfRange = errors.New("seek bar value out of range")

// ResolvedSegment 归一化后的分段
type ResolvedSegment struct {
	Start float64 // 归一化起点
	End   float64 // 归一化终点（下一段起点减去间隙，最后一段为 1.0）
	Title string
	Color *components.Color
}

// ResolvedMarker 归一化后的标记点
type ResolvedMarker struct {
	Position float64
	Marker   components.Marker
}

// SeekBarFrame 一次绘制所需的全部输入（归一化空间）
type SeekBarFrame struct {
	Progress   float64
	ReadAhead  float64
	Segments   []ResolvedSegment
	Markers    []ResolvedMarker
	IsDragging bool
	Colors     components.SeekBarColors
	Dimensions components.SeekBarDimensions
	Width      float64
	Height     float64
}

// ValidateSeekBarValue 检查值是否位于值区间内
func ValidateSeekBarValue(value float64, r utils.ValueRange) error {
	if r.Start > r.End {
		return fmt.Errorf("%w: range start %v is greater than end %v", ErrValueOutOfRange, r.Start, r.End)
	}
	if !r.Contains(value) {
		return fmt.Errorf("%w: value %v not in [%v, %v]", ErrValueOutOfRange, value, r.Start, r.End)
	}
	return nil
}

// SortSegments 按领域起点升序稳定排序（不修改输入）
// 起点相同的分段保持原有先后顺序，后者决定前者的终点
func SortSegments(segments []components.Segment) []components.Segment {
	sorted := make([]components.Segment, len(segments))
	copy(sorted, segments)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	return sorted
}

// ResolveSegments 将分段映射到归一化空间并计算终点
//
// 终点 = max(下一段起点 - 间隙, 本段起点 + SegmentMinWidth)，最后一段为 1.0。
// 间隙大于分段间距时分段会重叠，保持该行为不做修正。
func ResolveSegments(segments []components.Segment, r utils.ValueRange, gapPixels, trackWidth float64) []ResolvedSegment {
	if len(segments) == 0 {
		return nil
	}

	sorted := SortSegments(segments)
	gap := 0.0
	if trackWidth > 0 {
		gap = gapPixels / trackWidth
	}

	resolved := make([]ResolvedSegment, len(sorted))
	for i, seg := range sorted {
		resolved[i] = ResolvedSegment{
			Start: utils.ToNormalized(seg.Start, r),
			Title: seg.Title,
			Color: seg.Color,
		}
	}
	for i := range resolved {
		if i == len(resolved)-1 {
			resolved[i].End = 1.0
			continue
		}
		end := resolved[i+1].Start - gap
		if minEnd := resolved[i].Start + config.SegmentMinWidth; end < minEnd {
			end = minEnd
		}
		resolved[i].End = end
	}
	return resolved
}

// ResolveMarkers 将标记点映射到归一化空间（保持输入顺序）
func ResolveMarkers(markers []components.Marker, r utils.ValueRange) []ResolvedMarker {
	if len(markers) == 0 {
		return nil
	}
	resolved := make([]ResolvedMarker, len(markers))
	for i, m := range markers {
		resolved[i] = ResolvedMarker{Position: utils.ToNormalized(m.Value, r), Marker: m}
	}
	return resolved
}

// NormalizedProgress 当前值（裁剪后）的归一化进度
func NormalizedProgress(bar *components.SeekBarComponent) float64 {
	return utils.ToNormalized(bar.Range.Clamp(bar.Value), bar.Range)
}

// NormalizedReadAhead 预读值（裁剪后）的归一化进度
func NormalizedReadAhead(bar *components.SeekBarComponent) float64 {
	return utils.ToNormalized(bar.Range.Clamp(bar.ReadAheadValue), bar.Range)
}

// SegmentAt 返回包含领域值 value 的分段（按起点排序后的下标），不在任何分段内返回 -1
func SegmentAt(segments []components.Segment, value float64) (int, components.Segment) {
	sorted := SortSegments(segments)
	index := components.NoCrossing
	for i, seg := range sorted {
		if seg.Start <= value {
			index = i
		}
	}
	if index < 0 {
		return index, components.Segment{}
	}
	return index, sorted[index]
}

// ResolveFrame 校验并生成一次绘制的输入
//
// 参数：
//   - bar: 进度拖动条组件
//   - displayedProgress: 动画后的显示进度（归一化）
//
// 返回：
//   - SeekBarFrame: 绘制输入
//   - error: 值不在区间内时返回 ErrValueOutOfRange
func ResolveFrame(bar *components.SeekBarComponent, displayedProgress float64) (SeekBarFrame, error) {
	if err := ValidateSeekBarValue(bar.Value, bar.Range); err != nil {
		return SeekBarFrame{}, err
	}

	colors := bar.Colors
	if !bar.Enabled {
		colors.Progress = colors.Disabled
		colors.Thumb = colors.Disabled
		colors.ThumbPressed = colors.Disabled
	}

	return SeekBarFrame{
		Progress:   utils.ClampFloat(displayedProgress, 0, 1),
		ReadAhead:  NormalizedReadAhead(bar),
		Segments:   ResolveSegments(bar.Segments, bar.Range, bar.Dimensions.SegmentGap, bar.Width),
		Markers:    ResolveMarkers(bar.Markers, bar.Range),
		IsDragging: bar.Session.IsDragging,
		Colors:     colors,
		Dimensions: bar.Dimensions,
		Width:      bar.Width,
		Height:     bar.Height,
	}, nil
}
