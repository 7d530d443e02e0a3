package components

import "image/color"

// Color 样式颜色（非预乘 alpha）
type Color = color.NRGBA

// SeekBarColors 进度拖动条颜色（不可变值对象，按实例配置）
type SeekBarColors struct {
	Track        Color // 背景轨道
	Progress     Color // 已播放进度
	ReadAhead    Color // 预读（缓冲）进度
	Thumb        Color // 滑块
	ThumbPressed Color // 拖动中的滑块
	ThumbShadow  Color // 滑块投影
	Disabled     Color // 禁用状态下的进度与滑块
}

// DefaultSeekBarColors 返回默认配色（深色播放器风格）
func DefaultSeekBarColors() SeekBarColors {
	return SeekBarColors{
		Track:        Color{R: 0xff, G: 0xff, B: 0xff, A: 0x4d},
		Progress:     Color{R: 0xff, G: 0x00, B: 0x33, A: 0xff},
		ReadAhead:    Color{R: 0xff, G: 0xff, B: 0xff, A: 0x99},
		Thumb:        Color{R: 0xff, G: 0x00, B: 0x33, A: 0xff},
		ThumbPressed: Color{R: 0xff, G: 0x4d, B: 0x6a, A: 0xff},
		ThumbShadow:  Color{R: 0x00, G: 0x00, B: 0x00, A: 0x40},
		Disabled:     Color{R: 0x9e, G: 0x9e, B: 0x9e, A: 0xff},
	}
}

// SeekBarDimensions 进度拖动条尺寸（像素，均为非负值）
type SeekBarDimensions struct {
	TrackHeight       float64 // 轨道线宽
	ThumbRadius       float64 // 滑块半径（未拖动）
	ThumbShadowSpread float64 // 投影比滑块多出的半径
	ThumbShadowOffset float64 // 投影向下偏移
	SegmentGap        float64 // 分段间隙宽度
	MarkerWidth       float64 // 标记刻度线宽
	TouchTargetHeight float64 // 触控区域高度（控件高度）
}

// DefaultSeekBarDimensions 返回默认尺寸
func DefaultSeekBarDimensions() SeekBarDimensions {
	return SeekBarDimensions{
		TrackHeight:       4,
		ThumbRadius:       8,
		ThumbShadowSpread: 2,
		ThumbShadowOffset: 1,
		SegmentGap:        2,
		MarkerWidth:       2,
		TouchTargetHeight: 40,
	}
}
