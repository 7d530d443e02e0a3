package systems

import (
	"time"

	"github.com/gonewx/seekbar/pkg/components"
	"github.com/gonewx/seekbar/pkg/utils"
)

// ProgressAnimator 显示进度的补间动画
//
// 调用方每帧给出 (目标值, 时长)，再用 Update 推进时间取得当前显示值。
// 时长为 0 时立即跳变到目标（拖动中）。
type ProgressAnimator struct {
	Easing utils.EasingFunc
}

// NewProgressAnimator 创建使用 FastOutSlowIn 曲线的动画器
func NewProgressAnimator() *ProgressAnimator {
	return &ProgressAnimator{Easing: utils.EaseFastOutSlowIn}
}

// AnimateTo 设置动画目标
// 目标变化时从当前显示值重新开始一段动画；目标不变时不打断正在进行的动画
func (a *ProgressAnimator) AnimateTo(state *components.ProgressAnimationState, target float64, duration time.Duration) {
	seconds := duration.Seconds()

	if !state.Initialized || seconds <= 0 {
		state.Initialized = true
		state.Displayed = target
		state.From = target
		state.Target = target
		state.Elapsed = 0
		state.Duration = 0
		return
	}

	if target == state.Target {
		return
	}

	state.From = state.Displayed
	state.Target = target
	state.Elapsed = 0
	state.Duration = seconds
}

// Update 推进动画并返回当前显示值
//
// 参数：
//   - deltaTime: 距上一帧的时间（秒）
func (a *ProgressAnimator) Update(state *components.ProgressAnimationState, deltaTime float64) float64 {
	if state.Duration <= 0 || state.Elapsed >= state.Duration {
		state.Displayed = state.Target
		return state.Displayed
	}

	state.Elapsed += deltaTime
	t := utils.ClampFloat(state.Elapsed/state.Duration, 0, 1)

	ease := a.Easing
	if ease == nil {
		ease = utils.EaseLinear
	}
	state.Displayed = utils.Lerp(state.From, state.Target, ease(t))
	return state.Displayed
}
