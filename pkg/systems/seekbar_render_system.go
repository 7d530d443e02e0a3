package systems

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/gonewx/seekbar/pkg/components"
	"github.com/gonewx/seekbar/pkg/config"
	"github.com/gonewx/seekbar/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SeekBarRenderSystem 进度拖动条渲染系统
//
// 每帧为每个实体重新生成图元，先绘制到实体私有的离屏画布，再合成到屏幕。
// 使用离屏画布是为了让分段间隙的清除只作用于控件自身。
type SeekBarRenderSystem struct {
	entityManager *ecs.EntityManager
	canvases      map[ecs.EntityID]*ebiten.Image
	whiteImage    *ebiten.Image
	reported      map[ecs.EntityID]bool // 已记录过校验错误的实体，避免每帧刷屏
}

// NewSeekBarRenderSystem 创建渲染系统
func NewSeekBarRenderSystem(em *ecs.EntityManager) *SeekBarRenderSystem {
	return &SeekBarRenderSystem{
		entityManager: em,
		canvases:      make(map[ecs.EntityID]*ebiten.Image),
		reported:      make(map[ecs.EntityID]bool),
	}
}

// Draw 渲染所有进度拖动条实体
func (s *SeekBarRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.SeekBarComponent, *components.PositionComponent](s.entityManager)

	alive := make(map[ecs.EntityID]bool, len(entities))
	for _, entityID := range entities {
		alive[entityID] = true
		bar, _ := ecs.GetComponent[*components.SeekBarComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if bar == nil || pos == nil {
			continue
		}
		s.drawSeekBar(screen, entityID, bar, pos)
	}

	// 释放已删除实体的画布
	for id, canvas := range s.canvases {
		if !alive[id] {
			canvas.Deallocate()
			delete(s.canvases, id)
			delete(s.reported, id)
		}
	}
}

// drawSeekBar 绘制单个进度拖动条
func (s *SeekBarRenderSystem) drawSeekBar(screen *ebiten.Image, id ecs.EntityID, bar *components.SeekBarComponent, pos *components.PositionComponent) {
	displayed := bar.Progress.Displayed
	if !bar.Progress.Initialized {
		displayed = NormalizedProgress(bar)
	}

	frame, err := ResolveFrame(bar, displayed)
	if err != nil {
		if !s.reported[id] {
			log.Printf("[SeekBarRenderSystem] 拒绝渲染实体 %d: %v", id, err)
			s.reported[id] = true
		}
		return
	}
	delete(s.reported, id)

	pad := canvasPadding(frame)
	canvas := s.canvasFor(id, int(math.Ceil(frame.Width+2*pad)), int(math.Ceil(frame.Height+2*pad)))
	canvas.Clear()

	for _, p := range BuildTrackPrimitives(frame) {
		s.drawPrimitive(canvas, p, pad, pad)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X-pad, pos.Y-pad)
	screen.DrawImage(canvas, op)

	for _, placement := range LayoutOverlays(frame, bar.ThumbOverlay) {
		placement.Content.Draw(screen, pos.X+placement.X, pos.Y+placement.Y)
	}

	if config.DebugSeekBar {
		vector.StrokeRect(
			screen,
			float32(pos.X),
			float32(pos.Y),
			float32(frame.Width),
			float32(frame.Height),
			1,
			color.RGBA{0, 255, 0, 255},
			false,
		)
	}
}

// canvasPadding 画布四周留白，容纳滑块、投影、标记刻度和圆头线帽
func canvasPadding(frame SeekBarFrame) float64 {
	dims := frame.Dimensions
	pad := dims.ThumbRadius*config.ThumbDraggingScale + dims.ThumbShadowSpread + math.Abs(dims.ThumbShadowOffset)
	pad = math.Max(pad, dims.TrackHeight)
	for _, m := range frame.Markers {
		pad = math.Max(pad, m.Marker.Size/2-frame.Height/2)
	}
	return math.Ceil(pad) + 2
}

// canvasFor 返回实体的离屏画布，尺寸变化时重建
func (s *SeekBarRenderSystem) canvasFor(id ecs.EntityID, w, h int) *ebiten.Image {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if canvas, ok := s.canvases[id]; ok {
		b := canvas.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return canvas
		}
		canvas.Deallocate()
	}
	canvas := ebiten.NewImage(w, h)
	s.canvases[id] = canvas
	return canvas
}

// solidSource 返回 1x1 白色纹理（DrawTriangles 的源图）
func (s *SeekBarRenderSystem) solidSource() *ebiten.Image {
	if s.whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		s.whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return s.whiteImage
}

// strokeOptions 返回线段图元的描边参数
// 间隙使用平头端点，只清除间隙区间本身，不在相邻分段末端留下圆形缺口
func strokeOptions(p DrawPrimitive) *vector.StrokeOptions {
	lineCap := vector.LineCapRound
	if p.Clear {
		lineCap = vector.LineCapButt
	}
	return &vector.StrokeOptions{
		Width:    float32(p.StrokeWidth),
		LineCap:  lineCap,
		LineJoin: vector.LineJoinRound,
	}
}

// drawPrimitive 将图元细分为三角形并绘制到画布
func (s *SeekBarRenderSystem) drawPrimitive(dst *ebiten.Image, p DrawPrimitive, offsetX, offsetY float64) {
	var path vector.Path
	var vs []ebiten.Vertex
	var is []uint16

	switch p.Kind {
	case PrimitiveLine:
		if p.StrokeWidth <= 0 {
			return
		}
		path.MoveTo(float32(p.X0+offsetX), float32(p.Y0+offsetY))
		path.LineTo(float32(p.X1+offsetX), float32(p.Y1+offsetY))
		vs, is = path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOptions(p))
	case PrimitiveCircle:
		if p.Radius <= 0 {
			return
		}
		path.Arc(float32(p.X0+offsetX), float32(p.Y0+offsetY), float32(p.Radius), 0, 2*math.Pi, vector.Clockwise)
		path.Close()
		vs, is = path.AppendVerticesAndIndicesForFilling(nil, nil)
	}
	if len(is) == 0 {
		return
	}

	r := float32(p.Color.R) / 0xff
	g := float32(p.Color.G) / 0xff
	b := float32(p.Color.B) / 0xff
	a := float32(p.Color.A) / 0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	if p.Clear {
		op.Blend = ebiten.BlendClear
	}
	dst.DrawTriangles(vs, is, s.solidSource(), op)
}
