package config

import "time"

// ==============================
// 进度拖动条（SeekBar）配置常量
// ==============================

const (
	// ----------------
	// 交互
	// ----------------

	// MarkerProximityThreshold 标记点触发距离（归一化单位，即轨道宽度的 2%）
	// 固定常量，暂不开放配置
	MarkerProximityThreshold float64 = 0.02

	// ----------------
	// 分段绘制
	// ----------------

	// SegmentMinWidth 分段最小宽度（归一化单位），保证分段不会退化为零宽
	SegmentMinWidth float64 = 0.01
	// SegmentBackgroundAlpha 分段背景不透明度
	SegmentBackgroundAlpha float64 = 0.3

	// ----------------
	// 滑块
	// ----------------

	// ThumbDraggingScale 拖动中滑块半径放大倍数
	ThumbDraggingScale float64 = 1.2

	// ----------------
	// 进度动画
	// ----------------

	// ProgressAnimationDuration 非拖动状态下显示进度追踪目标值的时长
	ProgressAnimationDuration = 150 * time.Millisecond
	// DraggingAnimationDuration 拖动中直接跳变
	DraggingAnimationDuration time.Duration = 0

	// MobileTouchTargetHeight 移动端触控区域高度（手指比鼠标粗）
	MobileTouchTargetHeight float64 = 48

	// ----------------
	// 示例播放器窗口
	// ----------------
	DemoWindowWidth  int = 800
	DemoWindowHeight int = 240
	// DemoTicksPerSecond Ebitengine 默认 TPS
	DemoTicksPerSecond float64 = 60
)

// DebugSeekBar 调试模式开关（启用后绘制触控区域边界框）
const DebugSeekBar bool = false
