package utils

import "math"

// EasingFunc 缓动曲线
// 输入进度 t ∈ [0, 1]，返回缓动后的进度 ∈ [0, 1]
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（匀速）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// CubicBezier 构造 CSS 风格的三次贝塞尔缓动曲线
// 控制点为 (0,0) (x1,y1) (x2,y2) (1,1)
func CubicBezier(x1, y1, x2, y2 float64) EasingFunc {
	sample := func(a1, a2, s float64) float64 {
		// B(s) = 3(1-s)²s·a1 + 3(1-s)s²·a2 + s³
		inv := 1 - s
		return 3*inv*inv*s*a1 + 3*inv*s*s*a2 + s*s*s
	}
	slope := func(a1, a2, s float64) float64 {
		inv := 1 - s
		return 3*inv*inv*a1 + 6*inv*s*(a2-a1) + 3*s*s*(1-a2)
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// 牛顿迭代求解 x(s) = t，失败时退回二分
		s := t
		for i := 0; i < 8; i++ {
			dx := sample(x1, x2, s) - t
			if math.Abs(dx) < 1e-7 {
				return sample(y1, y2, s)
			}
			d := slope(x1, x2, s)
			if math.Abs(d) < 1e-6 {
				break
			}
			s -= dx / d
		}

		lo, hi := 0.0, 1.0
		s = t
		for i := 0; i < 32; i++ {
			x := sample(x1, x2, s)
			if math.Abs(x-t) < 1e-7 {
				break
			}
			if x < t {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return sample(y1, y2, s)
	}
}

// EaseFastOutSlowIn Material 标准曲线 cubic-bezier(0.4, 0, 0.2, 1)
// 进度条平滑动画默认使用此曲线
var EaseFastOutSlowIn = CubicBezier(0.4, 0, 0.2, 1)

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
