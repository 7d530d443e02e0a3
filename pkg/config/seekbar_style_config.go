package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/gonewx/seekbar/pkg/components"
	"github.com/gonewx/seekbar/pkg/utils"
	"gopkg.in/yaml.v3"
)

// ErrInvalidStyle 样式文件内容非法（颜色无法解析或尺寸为负）
var ErrInvalidStyle = errors.New("invalid seek bar style")

// SeekBarStyleConfig 样式文件结构（YAML）
//
// 颜色使用 "#RRGGBB" 或 "#RRGGBBAA"，省略的字段使用默认样式。
//
// 示例：
//
//	colors:
//	  track: "#FFFFFF4D"
//	  progress: "#FF0033"
//	dimensions:
//	  trackHeight: 4
//	  thumbRadius: 8
type SeekBarStyleConfig struct {
	Colors     ColorsConfig     `yaml:"colors"`
	Dimensions DimensionsConfig `yaml:"dimensions"`
}

// ColorsConfig 颜色配置
type ColorsConfig struct {
	Track        string `yaml:"track"`
	Progress     string `yaml:"progress"`
	ReadAhead    string `yaml:"readAhead"`
	Thumb        string `yaml:"thumb"`
	ThumbPressed string `yaml:"thumbPressed"`
	ThumbShadow  string `yaml:"thumbShadow"`
	Disabled     string `yaml:"disabled"`
}

// DimensionsConfig 尺寸配置（像素），指针为 nil 表示未设置
type DimensionsConfig struct {
	TrackHeight       *float64 `yaml:"trackHeight"`
	ThumbRadius       *float64 `yaml:"thumbRadius"`
	ThumbShadowSpread *float64 `yaml:"thumbShadowSpread"`
	ThumbShadowOffset *float64 `yaml:"thumbShadowOffset"`
	SegmentGap        *float64 `yaml:"segmentGap"`
	MarkerWidth       *float64 `yaml:"markerWidth"`
	TouchTargetHeight *float64 `yaml:"touchTargetHeight"`
}

// LoadSeekBarStyle 从 YAML 文件加载样式
//
// 参数：
//
//	filepath - 样式文件路径
//
// 返回：
//
//	颜色与尺寸值对象；文件读取、解析或校验失败时返回错误
func LoadSeekBarStyle(filepath string) (components.SeekBarColors, components.SeekBarDimensions, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return components.SeekBarColors{}, components.SeekBarDimensions{}, fmt.Errorf("failed to read seek bar style %s: %w", filepath, err)
	}

	colors, dims, err := ParseSeekBarStyle(data)
	if err != nil {
		return components.SeekBarColors{}, components.SeekBarDimensions{}, fmt.Errorf("failed to load seek bar style %s: %w", filepath, err)
	}
	return colors, dims, nil
}

// ParseSeekBarStyle 解析 YAML 样式数据
func ParseSeekBarStyle(data []byte) (components.SeekBarColors, components.SeekBarDimensions, error) {
	var cfg SeekBarStyleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return components.SeekBarColors{}, components.SeekBarDimensions{}, fmt.Errorf("failed to parse style YAML: %w", err)
	}

	colors := components.DefaultSeekBarColors()
	if err := applyColorOverrides(&colors, cfg.Colors); err != nil {
		return components.SeekBarColors{}, components.SeekBarDimensions{}, err
	}

	dims := components.DefaultSeekBarDimensions()
	applyDimensionOverrides(&dims, cfg.Dimensions)
	if err := validateDimensions(dims); err != nil {
		return components.SeekBarColors{}, components.SeekBarDimensions{}, err
	}

	return colors, dims, nil
}

// applyColorOverrides 用配置中非空的颜色覆盖默认值
func applyColorOverrides(colors *components.SeekBarColors, cfg ColorsConfig) error {
	overrides := []struct {
		name  string
		value string
		dst   *components.Color
	}{
		{"track", cfg.Track, &colors.Track},
		{"progress", cfg.Progress, &colors.Progress},
		{"readAhead", cfg.ReadAhead, &colors.ReadAhead},
		{"thumb", cfg.Thumb, &colors.Thumb},
		{"thumbPressed", cfg.ThumbPressed, &colors.ThumbPressed},
		{"thumbShadow", cfg.ThumbShadow, &colors.ThumbShadow},
		{"disabled", cfg.Disabled, &colors.Disabled},
	}

	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		c, err := utils.ParseHexColor(o.value)
		if err != nil {
			return fmt.Errorf("%w: colors.%s: %v", ErrInvalidStyle, o.name, err)
		}
		*o.dst = c
	}
	return nil
}

// applyDimensionOverrides 用配置中已设置的尺寸覆盖默认值
func applyDimensionOverrides(dims *components.SeekBarDimensions, cfg DimensionsConfig) {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&dims.TrackHeight, cfg.TrackHeight)
	set(&dims.ThumbRadius, cfg.ThumbRadius)
	set(&dims.ThumbShadowSpread, cfg.ThumbShadowSpread)
	set(&dims.ThumbShadowOffset, cfg.ThumbShadowOffset)
	set(&dims.SegmentGap, cfg.SegmentGap)
	set(&dims.MarkerWidth, cfg.MarkerWidth)
	set(&dims.TouchTargetHeight, cfg.TouchTargetHeight)
}

// validateDimensions 尺寸不能为负
// ThumbShadowOffset 是位移而非尺寸，允许为负
func validateDimensions(dims components.SeekBarDimensions) error {
	sizes := []struct {
		name  string
		value float64
	}{
		{"trackHeight", dims.TrackHeight},
		{"thumbRadius", dims.ThumbRadius},
		{"thumbShadowSpread", dims.ThumbShadowSpread},
		{"segmentGap", dims.SegmentGap},
		{"markerWidth", dims.MarkerWidth},
		{"touchTargetHeight", dims.TouchTargetHeight},
	}
	for _, s := range sizes {
		if s.value < 0 {
			return fmt.Errorf("%w: dimensions.%s must be non-negative, got %v", ErrInvalidStyle, s.name, s.value)
		}
	}
	return nil
}
