package components

import (
	"github.com/gonewx/seekbar/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Renderable 宿主提供的可绘制内容（标记点浮层、滑块浮层等）
// 核心只计算摆放位置，绘制由宿主完成
type Renderable interface {
	// Size 内容尺寸（像素）
	Size() (width, height float64)
	// Draw 以 (x, y) 为左上角绘制到 dst
	Draw(dst *ebiten.Image, x, y float64)
}

// Segment 轨道上的分段（领域单位）
type Segment struct {
	Start float64
	Title string // 可选
	Color *Color // 可选，nil 时使用默认颜色
}

// Marker 轨道上的标记点（领域单位），与分段相互独立
type Marker struct {
	Value          float64
	Color          Color
	Size           float64    // 刻度线长度（像素）
	OverlayContent Renderable // 可选，显示在轨道上方
	Content        Renderable // 可选，居中覆盖在标记点上
}

// SeekBarComponent 进度拖动条组件
//
// Value/ReadAheadValue 由宿主持有：拖动时通过 OnValueChange 通知宿主，
// 宿主写回 Value 后下一帧生效。
type SeekBarComponent struct {
	// 数值
	Value          float64
	ReadAheadValue float64
	Range          utils.ValueRange

	// 内容
	Segments     []Segment
	Markers      []Marker
	ThumbOverlay Renderable // 可选，居中覆盖在滑块上

	// 配置
	Enabled    bool
	Haptics    HapticConfig
	Colors     SeekBarColors
	Dimensions SeekBarDimensions

	// 布局（像素）
	Width  float64 // 轨道宽度
	Height float64 // 控件高度（触控区域）

	// 宿主回调（同步调用，可为 nil）
	OnValueChange func(value float64)
	OnSeekStart   func(value float64)
	OnSeekEnd     func(value float64)
	OnHapticEvent func(kind HapticKind)

	// 运行时状态
	Session  DragSession
	Progress ProgressAnimationState
}

// ProgressAnimationState 显示进度的平滑动画状态（归一化单位）
type ProgressAnimationState struct {
	Displayed   float64 // 当前显示的进度
	From        float64 // 本段动画起点
	Target      float64 // 本段动画目标
	Elapsed     float64 // 已经过时间（秒）
	Duration    float64 // 动画总时长（秒），0 表示立即跳变
	Initialized bool    // 首帧直接对齐目标，不做动画
}
