package utils

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// WithAlpha 返回替换了不透明度的颜色（alpha ∈ [0, 1]，RGB 不变）
func WithAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(math.Round(ClampFloat(alpha, 0, 1) * 255))
	return c
}

// ParseHexColor 解析 "#RRGGBB" 或 "#RRGGBBAA" 格式的颜色（'#' 可省略）
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: expected 6 or 8 digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	if len(hex) == 6 {
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// FormatHexColor 将颜色格式化为 "#RRGGBBAA"
func FormatHexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
