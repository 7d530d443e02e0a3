package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 场景接口（示例播放器只有一个场景，保留接口以便替换宿主界面）
type Scene interface {
	// Update 更新场景逻辑，deltaTime 为距上一帧的时间（秒）
	Update(deltaTime float64)

	// Draw 渲染场景
	Draw(screen *ebiten.Image)
}

// Saveable 是一个可选接口，用于支持场景在退出时保存状态
//
// 实现此接口的场景会在窗口关闭时被调用 SaveOnExit()
type Saveable interface {
	// SaveOnExit 在场景退出时保存状态
	// 返回 false 表示保存失败（但程序仍会正常退出）
	SaveOnExit() bool
}
