package components

// HapticKind 触觉反馈类型
// 核心只表达反馈意图，具体效果由宿主平台决定
type HapticKind int

const (
	// HapticNone 不反馈
	HapticNone HapticKind = iota
	// HapticTick 轻微刻度感（跨越分段）
	HapticTick
	// HapticClick 单击感
	HapticClick
	// HapticHeavyClick 重击感（经过标记点）
	HapticHeavyClick
	// HapticLongPress 长按感（开始拖动）
	HapticLongPress
)

// String 返回反馈类型名称（日志用）
func (k HapticKind) String() string {
	switch k {
	case HapticNone:
		return "none"
	case HapticTick:
		return "tick"
	case HapticClick:
		return "click"
	case HapticHeavyClick:
		return "heavy_click"
	case HapticLongPress:
		return "long_press"
	default:
		return "unknown"
	}
}

// HapticConfig 触觉反馈配置（纯值对象）
type HapticConfig struct {
	Enabled        bool
	OnSeekStart    HapticKind
	OnSeekEnd      HapticKind
	OnSegmentCross HapticKind
	OnMarkerCross  HapticKind
}

// DefaultHapticConfig 返回默认触觉反馈配置
func DefaultHapticConfig() HapticConfig {
	return HapticConfig{
		Enabled:        true,
		OnSeekStart:    HapticLongPress,
		OnSeekEnd:      HapticClick,
		OnSegmentCross: HapticTick,
		OnMarkerCross:  HapticHeavyClick,
	}
}
