package systems

import (
	"math"
	"testing"

	"github.com/gonewx/seekbar/pkg/components"
	"github.com/gonewx/seekbar/pkg/config"
	"github.com/gonewx/seekbar/pkg/utils"
)

const primitiveEpsilon = 1e-9

// newTestFrame 宽 200、高 40 的默认样式帧
func newTestFrame(progress, readAhead float64) SeekBarFrame {
	return SeekBarFrame{
		Progress:   progress,
		ReadAhead:  readAhead,
		Colors:     components.DefaultSeekBarColors(),
		Dimensions: components.DefaultSeekBarDimensions(),
		Width:      200,
		Height:     40,
	}
}

func layersOf(primitives []DrawPrimitive) []PrimitiveLayer {
	layers := make([]PrimitiveLayer, len(primitives))
	for i, p := range primitives {
		layers[i] = p.Layer
	}
	return layers
}

func sameLayers(a, b []PrimitiveLayer) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func near(a, b float64) bool {
	return math.Abs(a-b) < primitiveEpsilon
}

// TestBuildTrackPrimitives_Plain 无分段：轨道、进度、滑块
func TestBuildTrackPrimitives_Plain(t *testing.T) {
	frame := newTestFrame(0.5, 0)
	primitives := BuildTrackPrimitives(frame)

	wantLayers := []PrimitiveLayer{LayerTrack, LayerProgress, LayerThumbShadow, LayerThumb}
	if !sameLayers(layersOf(primitives), wantLayers) {
		t.Fatalf("layers: got %v, want %v", layersOf(primitives), wantLayers)
	}

	track := primitives[0]
	if track.X0 != 0 || track.X1 != 200 || track.Y0 != 20 || track.StrokeWidth != 4 {
		t.Errorf("track: got %+v", track)
	}
	if track.Color != frame.Colors.Track {
		t.Errorf("track color: got %v, want %v", track.Color, frame.Colors.Track)
	}

	progress := primitives[1]
	if progress.X0 != 0 || progress.X1 != 100 || progress.Color != frame.Colors.Progress {
		t.Errorf("progress: got %+v", progress)
	}

	shadow := primitives[2]
	if shadow.X0 != 100 || shadow.Y0 != 21 || shadow.Radius != 10 || shadow.Color != frame.Colors.ThumbShadow {
		t.Errorf("shadow: got %+v", shadow)
	}

	thumb := primitives[3]
	if thumb.Kind != PrimitiveCircle || thumb.X0 != 100 || thumb.Y0 != 20 || thumb.Radius != 8 {
		t.Errorf("thumb: got %+v", thumb)
	}
	if thumb.Color != frame.Colors.Thumb {
		t.Errorf("thumb color: got %v, want %v", thumb.Color, frame.Colors.Thumb)
	}
}

// TestBuildTrackPrimitives_ReadAhead 预读段从进度到预读位置，且绘制在进度之下
func TestBuildTrackPrimitives_ReadAhead(t *testing.T) {
	tests := []struct {
		name       string
		progress   float64
		readAhead  float64
		wantLayers []PrimitiveLayer
	}{
		{
			name:       "预读超过进度",
			progress:   0.5,
			readAhead:  0.8,
			wantLayers: []PrimitiveLayer{LayerTrack, LayerReadAhead, LayerProgress, LayerThumbShadow, LayerThumb},
		},
		{
			name:       "预读落后于进度",
			progress:   0.5,
			readAhead:  0.3,
			wantLayers: []PrimitiveLayer{LayerTrack, LayerProgress, LayerThumbShadow, LayerThumb},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primitives := BuildTrackPrimitives(newTestFrame(tt.progress, tt.readAhead))
			if !sameLayers(layersOf(primitives), tt.wantLayers) {
				t.Fatalf("layers: got %v, want %v", layersOf(primitives), tt.wantLayers)
			}
			if tt.readAhead > tt.progress {
				ra := primitives[1]
				if !near(ra.X0, 100) || !near(ra.X1, 160) {
					t.Errorf("read-ahead: got %v..%v, want 100..160", ra.X0, ra.X1)
				}
			}
		})
	}
}

// TestBuildTrackPrimitives_ZeroProgress 进度为 0 时不绘制进度线
func TestBuildTrackPrimitives_ZeroProgress(t *testing.T) {
	primitives := BuildTrackPrimitives(newTestFrame(0, 0))
	for _, p := range primitives {
		if p.Layer == LayerProgress {
			t.Errorf("进度为 0 时不应有进度线: %+v", p)
		}
	}
	thumb := primitives[len(primitives)-1]
	if thumb.X0 != 0 {
		t.Errorf("滑块应位于起点, got %v", thumb.X0)
	}
}

// TestBuildTrackPrimitives_DegenerateRange 空区间 0..0 不崩溃
func TestBuildTrackPrimitives_DegenerateRange(t *testing.T) {
	bar := &components.SeekBarComponent{
		Value:      0,
		Range:      utils.ValueRange{Start: 0, End: 0},
		Enabled:    true,
		Colors:     components.DefaultSeekBarColors(),
		Dimensions: components.DefaultSeekBarDimensions(),
		Width:      200,
		Height:     40,
	}

	frame, err := ResolveFrame(bar, NormalizedProgress(bar))
	if err != nil {
		t.Fatalf("ResolveFrame error: %v", err)
	}
	primitives := BuildTrackPrimitives(frame)
	for _, p := range primitives {
		if p.Layer == LayerProgress {
			t.Errorf("空区间不应有进度线: %+v", p)
		}
	}
}

// TestBuildTrackPrimitives_Segments 分段背景、分段填充与间隙
func TestBuildTrackPrimitives_Segments(t *testing.T) {
	red := components.Color{R: 0xff, A: 0xff}
	segments := ResolveSegments([]components.Segment{
		{Start: 50, Title: "第二章"},
		{Start: 0, Title: "第一章", Color: &red},
	}, utils.ValueRange{Start: 0, End: 100}, 2, 200)

	frame := newTestFrame(0.75, 0)
	frame.Segments = segments
	primitives := BuildTrackPrimitives(frame)

	wantLayers := []PrimitiveLayer{
		LayerSegmentBackground, LayerSegmentBackground,
		LayerProgress, LayerProgress,
		LayerGap,
		LayerThumbShadow, LayerThumb,
	}
	if !sameLayers(layersOf(primitives), wantLayers) {
		t.Fatalf("layers: got %v, want %v", layersOf(primitives), wantLayers)
	}

	bg0, bg1 := primitives[0], primitives[1]
	if want := utils.WithAlpha(red, config.SegmentBackgroundAlpha); bg0.Color != want {
		t.Errorf("有颜色的分段背景: got %v, want %v", bg0.Color, want)
	}
	if bg1.Color != frame.Colors.Track {
		t.Errorf("无颜色的分段背景: got %v, want %v", bg1.Color, frame.Colors.Track)
	}
	if !near(bg0.X1, 98) || !near(bg1.X0, 100) || !near(bg1.X1, 200) {
		t.Errorf("分段背景范围: got %v..%v, %v..%v", bg0.X0, bg0.X1, bg1.X0, bg1.X1)
	}

	fill0, fill1 := primitives[2], primitives[3]
	if fill0.Color != red || !near(fill0.X1, 98) {
		t.Errorf("分段 0 填充: got %+v", fill0)
	}
	if fill1.Color != frame.Colors.Progress || !near(fill1.X0, 100) || !near(fill1.X1, 150) {
		t.Errorf("分段 1 填充: got %+v", fill1)
	}

	gap := primitives[4]
	if !gap.Clear || !near(gap.X0, 98) || !near(gap.X1, 100) {
		t.Errorf("间隙: got %+v", gap)
	}
}

// TestBuildTrackPrimitives_SegmentReadAhead 分段模式下预读只覆盖各分段内部
func TestBuildTrackPrimitives_SegmentReadAhead(t *testing.T) {
	segments := ResolveSegments([]components.Segment{{Start: 0}, {Start: 50}},
		utils.ValueRange{Start: 0, End: 100}, 2, 200)

	frame := newTestFrame(0.25, 0.75)
	frame.Segments = segments
	primitives := BuildTrackPrimitives(frame)

	var readAhead []DrawPrimitive
	for _, p := range primitives {
		if p.Layer == LayerReadAhead {
			readAhead = append(readAhead, p)
		}
	}
	if len(readAhead) != 2 {
		t.Fatalf("got %d read-ahead primitives, want 2", len(readAhead))
	}
	if !near(readAhead[0].X0, 50) || !near(readAhead[0].X1, 98) {
		t.Errorf("分段 0 预读: got %v..%v, want 50..98", readAhead[0].X0, readAhead[0].X1)
	}
	if !near(readAhead[1].X0, 100) || !near(readAhead[1].X1, 150) {
		t.Errorf("分段 1 预读: got %v..%v, want 100..150", readAhead[1].X0, readAhead[1].X1)
	}
}

// TestBuildTrackPrimitives_Markers 标记刻度位于对应位置，绘制在滑块之下
func TestBuildTrackPrimitives_Markers(t *testing.T) {
	yellow := components.Color{R: 0xff, G: 0xff, A: 0xff}
	frame := newTestFrame(0, 0)
	frame.Markers = ResolveMarkers([]components.Marker{{Value: 25, Color: yellow, Size: 12}},
		utils.ValueRange{Start: 0, End: 100})

	primitives := BuildTrackPrimitives(frame)
	wantLayers := []PrimitiveLayer{LayerTrack, LayerMarker, LayerThumbShadow, LayerThumb}
	if !sameLayers(layersOf(primitives), wantLayers) {
		t.Fatalf("layers: got %v, want %v", layersOf(primitives), wantLayers)
	}

	marker := primitives[1]
	if marker.X0 != 50 || marker.X1 != 50 || marker.Y0 != 14 || marker.Y1 != 26 {
		t.Errorf("marker: got %+v", marker)
	}
	if marker.Color != yellow || marker.StrokeWidth != 2 {
		t.Errorf("marker style: got %+v", marker)
	}
}

// TestBuildTrackPrimitives_DraggingThumb 拖动中滑块放大并使用按下颜色
func TestBuildTrackPrimitives_DraggingThumb(t *testing.T) {
	frame := newTestFrame(0.5, 0)
	frame.IsDragging = true
	primitives := BuildTrackPrimitives(frame)

	thumb := primitives[len(primitives)-1]
	if !near(thumb.Radius, 8*config.ThumbDraggingScale) {
		t.Errorf("thumb radius: got %v, want %v", thumb.Radius, 8*config.ThumbDraggingScale)
	}
	if thumb.Color != frame.Colors.ThumbPressed {
		t.Errorf("thumb color: got %v, want %v", thumb.Color, frame.Colors.ThumbPressed)
	}

	shadow := primitives[len(primitives)-2]
	if !near(shadow.Radius, 8*config.ThumbDraggingScale+2) {
		t.Errorf("shadow radius: got %v", shadow.Radius)
	}
}

// TestThumbRadius 滑块半径
func TestThumbRadius(t *testing.T) {
	dims := components.DefaultSeekBarDimensions()
	if got := ThumbRadius(dims, false); got != 8 {
		t.Errorf("ThumbRadius(false): got %v, want 8", got)
	}
	if got := ThumbRadius(dims, true); !near(got, 9.6) {
		t.Errorf("ThumbRadius(true): got %v, want 9.6", got)
	}
}
