package entities

import (
	"fmt"

	"github.com/gonewx/seekbar/pkg/components"
	"github.com/gonewx/seekbar/pkg/ecs"
	"github.com/gonewx/seekbar/pkg/systems"
	"github.com/gonewx/seekbar/pkg/utils"
)

// SeekBarConfig 创建进度拖动条实体的参数
//
// 零值字段的含义：
//   - Disabled=false 表示可交互
//   - Haptics/Colors/Dimensions 为 nil 时使用默认值
type SeekBarConfig struct {
	X, Y  float64 // 轨道左上角（屏幕坐标）
	Width float64 // 轨道宽度

	Value          float64
	ReadAheadValue float64
	Range          utils.ValueRange

	Segments     []components.Segment
	Markers      []components.Marker
	ThumbOverlay components.Renderable

	Disabled   bool
	Haptics    *components.HapticConfig
	Colors     *components.SeekBarColors
	Dimensions *components.SeekBarDimensions

	OnValueChange func(value float64)
	OnSeekStart   func(value float64)
	OnSeekEnd     func(value float64)
	OnHapticEvent func(kind components.HapticKind)
}

// NewSeekBarEntity 创建进度拖动条实体
//
// 参数：
//   - em: 实体管理器
//   - cfg: 创建参数
//
// 返回：
//   - 实体ID
//   - 错误信息：Value 不在 Range 内时返回 systems.ErrValueOutOfRange（不创建实体）
func NewSeekBarEntity(em *ecs.EntityManager, cfg SeekBarConfig) (ecs.EntityID, error) {
	if err := systems.ValidateSeekBarValue(cfg.Value, cfg.Range); err != nil {
		return 0, fmt.Errorf("create seek bar: %w", err)
	}
	if cfg.Width < 0 {
		return 0, fmt.Errorf("create seek bar: negative width %v", cfg.Width)
	}

	haptics := components.DefaultHapticConfig()
	if cfg.Haptics != nil {
		haptics = *cfg.Haptics
	}
	colors := components.DefaultSeekBarColors()
	if cfg.Colors != nil {
		colors = *cfg.Colors
	}
	dims := components.DefaultSeekBarDimensions()
	if cfg.Dimensions != nil {
		dims = *cfg.Dimensions
	}

	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: cfg.X,
		Y: cfg.Y,
	})

	ecs.AddComponent(em, entity, &components.SeekBarComponent{
		Value:          cfg.Value,
		ReadAheadValue: cfg.ReadAheadValue,
		Range:          cfg.Range,
		Segments:       cfg.Segments,
		Markers:        cfg.Markers,
		ThumbOverlay:   cfg.ThumbOverlay,
		Enabled:        !cfg.Disabled,
		Haptics:        haptics,
		Colors:         colors,
		Dimensions:     dims,
		Width:          cfg.Width,
		Height:         dims.TouchTargetHeight,
		OnValueChange:  cfg.OnValueChange,
		OnSeekStart:    cfg.OnSeekStart,
		OnSeekEnd:      cfg.OnSeekEnd,
		OnHapticEvent:  cfg.OnHapticEvent,
		Session:        components.NewDragSession(),
	})

	return entity, nil
}
