package systems

import (
	"math"

	"github.com/gonewx/seekbar/pkg/components"
	"github.com/gonewx/seekbar/pkg/config"
)

// segmentIndexAt 返回满足 segments[i].Start <= p 的最大下标（指针所在分段），无则返回 -1
// segments 必须已按 Start 升序排列
func segmentIndexAt(p float64, segments []ResolvedSegment) int {
	index := components.NoCrossing
	for i, seg := range segments {
		if seg.Start <= p {
			index = i
		}
	}
	return index
}

// markerIndexNear 返回距离 p 小于阈值的最小下标标记点，无则返回 -1
// 多个标记同时在阈值内时只报告第一个
func markerIndexNear(p float64, markers []ResolvedMarker) int {
	for j, m := range markers {
		if math.Abs(p-m.Position) < config.MarkerProximityThreshold {
			return j
		}
	}
	return components.NoCrossing
}

// DetectSegmentCrossing 检测指针是否进入了新的分段
//
// 所在分段与上一次记录不同且有效时返回 (index, true) 并更新会话；
// 反向拖回曾经过的分段同样会再次触发。
func DetectSegmentCrossing(session *components.DragSession, p float64, segments []ResolvedSegment) (int, bool) {
	if len(segments) == 0 {
		return components.NoCrossing, false
	}
	index := segmentIndexAt(p, segments)
	if index < 0 || index == session.LastCrossedSegmentIndex {
		return index, false
	}
	session.LastCrossedSegmentIndex = index
	return index, true
}

// DetectMarkerCrossing 检测指针是否进入了新的标记点邻域
//
// 离开邻域不会重置记录，因此在同一个标记附近来回抖动只触发一次，
// 直到进入另一个标记的邻域。
func DetectMarkerCrossing(session *components.DragSession, p float64, markers []ResolvedMarker) (int, bool) {
	if len(markers) == 0 {
		return components.NoCrossing, false
	}
	index := markerIndexNear(p, markers)
	if index < 0 || index == session.LastCrossedMarkerIndex {
		return index, false
	}
	session.LastCrossedMarkerIndex = index
	return index, true
}

// PrimeCrossings 拖动开始时记录指针所在的分段与标记，不触发事件
//
// 穿越指的是从外部进入某个区域；按下时已处于的分段/标记不算穿越。
func PrimeCrossings(session *components.DragSession, p float64, segments []ResolvedSegment, markers []ResolvedMarker) {
	session.LastCrossedSegmentIndex = components.NoCrossing
	session.LastCrossedMarkerIndex = components.NoCrossing
	if len(segments) > 0 {
		session.LastCrossedSegmentIndex = segmentIndexAt(p, segments)
	}
	if len(markers) > 0 {
		session.LastCrossedMarkerIndex = markerIndexNear(p, markers)
	}
}
