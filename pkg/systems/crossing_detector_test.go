package systems

import (
	"testing"

	"github.com/gonewx/seekbar/pkg/components"
	"github.com/gonewx/seekbar/pkg/utils"
)

func testSegments(starts ...float64) []ResolvedSegment {
	segs := make([]components.Segment, len(starts))
	for i, s := range starts {
		segs[i] = components.Segment{Start: s}
	}
	return ResolveSegments(segs, utils.ValueRange{Start: 0, End: 1}, 2, 1000)
}

func testMarkers(values ...float64) []ResolvedMarker {
	markers := make([]components.Marker, len(values))
	for i, v := range values {
		markers[i] = components.Marker{Value: v}
	}
	return ResolveMarkers(markers, utils.ValueRange{Start: 0, End: 1})
}

// TestDetectSegmentCrossing_ForwardAndBack 正向拖过三个分段触发 2 次，反向拖回再次触发
func TestDetectSegmentCrossing_ForwardAndBack(t *testing.T) {
	segments := testSegments(0, 0.3, 0.6)
	session := components.NewDragSession()
	PrimeCrossings(&session, 0.1, segments, nil)

	if session.LastCrossedSegmentIndex != 0 {
		t.Fatalf("按下位置应记录为分段 0, got %d", session.LastCrossedSegmentIndex)
	}

	crossings := 0
	for i := 10; i <= 90; i++ {
		if _, crossed := DetectSegmentCrossing(&session, float64(i)/100, segments); crossed {
			crossings++
		}
	}
	if crossings != 2 {
		t.Errorf("正向拖动: got %d crossings, want 2", crossings)
	}

	// 反向拖回 0.5（分段 1）
	for i := 90; i >= 50; i-- {
		if _, crossed := DetectSegmentCrossing(&session, float64(i)/100, segments); crossed {
			crossings++
		}
	}
	if crossings != 3 {
		t.Errorf("反向拖回: got %d crossings, want 3", crossings)
	}
	if session.LastCrossedSegmentIndex != 1 {
		t.Errorf("LastCrossedSegmentIndex: got %d, want 1", session.LastCrossedSegmentIndex)
	}
}

// TestDetectSegmentCrossing_ReverseToFirst 从 0 拖到 1 触发 2 次，反向回到分段 0 触发第 3 次
func TestDetectSegmentCrossing_ReverseToFirst(t *testing.T) {
	segments := testSegments(0, 0.3, 0.6)
	session := components.NewDragSession()
	PrimeCrossings(&session, 0, segments, nil)

	var entered []int
	for i := 0; i <= 100; i++ {
		if index, crossed := DetectSegmentCrossing(&session, float64(i)/100, segments); crossed {
			entered = append(entered, index)
		}
	}
	if len(entered) != 2 || entered[0] != 1 || entered[1] != 2 {
		t.Fatalf("正向拖动: got %v, want [1 2]", entered)
	}

	if index, crossed := DetectSegmentCrossing(&session, 0.1, segments); !crossed || index != 0 {
		t.Errorf("回到分段 0: got (%d, %v), want (0, true)", index, crossed)
	}
	if _, crossed := DetectSegmentCrossing(&session, 0.05, segments); crossed {
		t.Error("停留在分段 0 不应再次触发")
	}
}

// TestDetectSegmentCrossing_Cases 分段检测的边界情况
func TestDetectSegmentCrossing_Cases(t *testing.T) {
	tests := []struct {
		name        string
		segments    []ResolvedSegment
		last        int
		p           float64
		wantIndex   int
		wantCrossed bool
	}{
		{name: "无分段", segments: nil, last: components.NoCrossing, p: 0.5, wantIndex: components.NoCrossing, wantCrossed: false},
		{name: "首次进入", segments: testSegments(0, 0.5), last: components.NoCrossing, p: 0.2, wantIndex: 0, wantCrossed: true},
		{name: "同一分段不重复触发", segments: testSegments(0, 0.5), last: 0, p: 0.3, wantIndex: 0, wantCrossed: false},
		{name: "恰好位于分段起点", segments: testSegments(0, 0.5), last: 0, p: 0.5, wantIndex: 1, wantCrossed: true},
		{name: "第一个分段之前", segments: testSegments(0.2, 0.5), last: components.NoCrossing, p: 0.1, wantIndex: components.NoCrossing, wantCrossed: false},
		{name: "间隙内归属前一分段", segments: testSegments(0, 0.5), last: 0, p: 0.499, wantIndex: 0, wantCrossed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := components.NewDragSession()
			session.LastCrossedSegmentIndex = tt.last

			index, crossed := DetectSegmentCrossing(&session, tt.p, tt.segments)
			if index != tt.wantIndex || crossed != tt.wantCrossed {
				t.Errorf("got (%d, %v), want (%d, %v)", index, crossed, tt.wantIndex, tt.wantCrossed)
			}
			if crossed && session.LastCrossedSegmentIndex != index {
				t.Errorf("会话未更新: got %d, want %d", session.LastCrossedSegmentIndex, index)
			}
		})
	}
}

// TestDetectMarkerCrossing_SingleMarker 经过单个标记点只触发一次
func TestDetectMarkerCrossing_SingleMarker(t *testing.T) {
	markers := testMarkers(0.5)
	session := components.NewDragSession()

	crossings := 0
	for _, p := range []float64{0.40, 0.45, 0.49, 0.50, 0.51, 0.55, 0.60} {
		if _, crossed := DetectMarkerCrossing(&session, p, markers); crossed {
			crossings++
		}
	}
	if crossings != 1 {
		t.Errorf("got %d crossings, want 1", crossings)
	}

	// 离开邻域不重置，回到同一标记不再触发
	if _, crossed := DetectMarkerCrossing(&session, 0.5, markers); crossed {
		t.Error("回到同一标记不应再次触发")
	}
}

// TestDetectMarkerCrossing_FirstFiringPosition 连续拖动时在首次进入 [0.48, 0.52) 处触发
func TestDetectMarkerCrossing_FirstFiringPosition(t *testing.T) {
	markers := testMarkers(0.5)
	session := components.NewDragSession()

	var fired []float64
	for i := 0; i <= 1000; i++ {
		p := float64(i) / 1000
		if _, crossed := DetectMarkerCrossing(&session, p, markers); crossed {
			fired = append(fired, p)
		}
	}
	if len(fired) != 1 {
		t.Fatalf("got %d crossings at %v, want 1", len(fired), fired)
	}
	if fired[0] <= 0.48 || fired[0] >= 0.52 {
		t.Errorf("触发位置: got %v, want (0.48, 0.52)", fired[0])
	}
	if fired[0] > 0.482 {
		t.Errorf("应在首次进入邻域时触发: got %v", fired[0])
	}
}

// TestDetectMarkerCrossing_Cases 标记点检测的边界情况
func TestDetectMarkerCrossing_Cases(t *testing.T) {
	tests := []struct {
		name        string
		markers     []ResolvedMarker
		last        int
		p           float64
		wantIndex   int
		wantCrossed bool
	}{
		{name: "无标记", markers: nil, last: components.NoCrossing, p: 0.5, wantIndex: components.NoCrossing, wantCrossed: false},
		{name: "阈值之外", markers: testMarkers(0.5), last: components.NoCrossing, p: 0.45, wantIndex: components.NoCrossing, wantCrossed: false},
		{name: "阈值之内", markers: testMarkers(0.5), last: components.NoCrossing, p: 0.51, wantIndex: 0, wantCrossed: true},
		{name: "进入另一个标记", markers: testMarkers(0.2, 0.8), last: 0, p: 0.8, wantIndex: 1, wantCrossed: true},
		{name: "同时靠近两个标记取第一个", markers: testMarkers(0.50, 0.51), last: components.NoCrossing, p: 0.505, wantIndex: 0, wantCrossed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := components.NewDragSession()
			session.LastCrossedMarkerIndex = tt.last

			index, crossed := DetectMarkerCrossing(&session, tt.p, tt.markers)
			if index != tt.wantIndex || crossed != tt.wantCrossed {
				t.Errorf("got (%d, %v), want (%d, %v)", index, crossed, tt.wantIndex, tt.wantCrossed)
			}
		})
	}
}

// TestPrimeCrossings 按下时所在的分段与标记被静默记录
func TestPrimeCrossings(t *testing.T) {
	session := components.NewDragSession()
	session.LastCrossedSegmentIndex = 5
	session.LastCrossedMarkerIndex = 5

	PrimeCrossings(&session, 0.3, testSegments(0, 0.25), testMarkers(0.3))
	if session.LastCrossedSegmentIndex != 1 {
		t.Errorf("LastCrossedSegmentIndex: got %d, want 1", session.LastCrossedSegmentIndex)
	}
	if session.LastCrossedMarkerIndex != 0 {
		t.Errorf("LastCrossedMarkerIndex: got %d, want 0", session.LastCrossedMarkerIndex)
	}

	PrimeCrossings(&session, 0.3, nil, nil)
	if session.LastCrossedSegmentIndex != components.NoCrossing || session.LastCrossedMarkerIndex != components.NoCrossing {
		t.Errorf("无分段/标记时应重置为 NoCrossing, got (%d, %d)",
			session.LastCrossedSegmentIndex, session.LastCrossedMarkerIndex)
	}
}
