package utils

// ValueRange 数值区间（领域单位，如秒、字节）
// 约定 Start <= End；Start == End 视为退化区间
type ValueRange struct {
	Start float64
	End   float64
}

// Span 返回区间长度 End - Start
func (r ValueRange) Span() float64 {
	return r.End - r.Start
}

// Contains 检查值是否落在闭区间 [Start, End] 内
func (r ValueRange) Contains(value float64) bool {
	return value >= r.Start && value <= r.End
}

// Clamp 将值限制在区间内
func (r ValueRange) Clamp(value float64) float64 {
	return ClampFloat(value, r.Start, r.End)
}

// ClampFloat 将 v 限制在 [lo, hi] 范围内
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ToNormalized 将领域值映射到轨道归一化位置
//
// 公式：(value - Start) / (End - Start)
// 退化区间（End <= Start）返回 0，避免除零。
// 注意：结果不做裁剪，调用方按需 clamp。
func ToNormalized(value float64, r ValueRange) float64 {
	if r.End <= r.Start {
		return 0
	}
	return (value - r.Start) / (r.End - r.Start)
}

// FromNormalized 将归一化位置映射回领域值（不裁剪）
func FromNormalized(p float64, r ValueRange) float64 {
	return r.Start + p*(r.End-r.Start)
}

// FromPointer 根据指针在轨道内的像素偏移计算领域值
//
// 参数：
//   - pixelOffset: 相对轨道原点的像素偏移（可为负或超出轨道宽度，例如拖出控件）
//   - trackWidth: 轨道总像素宽度
//   - r: 值区间
//
// 返回值始终位于 [r.Start, r.End] 内。
func FromPointer(pixelOffset, trackWidth float64, r ValueRange) float64 {
	p := 0.0
	if trackWidth > 0 {
		p = ClampFloat(pixelOffset/trackWidth, 0, 1)
	}
	return r.Clamp(FromNormalized(p, r))
}
