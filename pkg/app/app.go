// Package app 提供示例播放器的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：音频上下文、设置持久化、样式加载与场景创建。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"path/filepath"

	"github.com/gonewx/seekbar/pkg/components"
	"github.com/gonewx/seekbar/pkg/config"
	"github.com/gonewx/seekbar/pkg/game"
	"github.com/gonewx/seekbar/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// 设置存储的应用名（gdata 以此区分存储目录）
const settingsAppName = "gonewx_seekbar"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// StylePath 样式文件路径（YAML），为空时使用设置中记录的路径或默认样式
	StylePath string
	// StyleData 内置样式（YAML），StylePath 与设置中的路径都为空时使用
	StyleData []byte
}

// App 是示例播放器的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 设置持久化：存储不可用时降级为内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: settingsAppName})
	if err != nil {
		log.Printf("[App] Warning: gdata 存储不可用: %v (settings will not persist)", err)
		gdataManager = nil
	}
	settingsManager := game.NewSettingsManager(gdataManager)

	colors, dims, err := loadStyle(cfg.StylePath, cfg.StyleData, settingsManager)
	if err != nil {
		return nil, err
	}

	// 初始化音频上下文（触觉反馈提示音）
	audioContext := audio.NewContext(48000)
	audioManager := game.NewAudioManager(audioContext, settingsManager)
	log.Printf("[App] AudioManager initialized")

	playerScene, err := scenes.NewPlayerScene(scenes.PlayerSceneOptions{
		SettingsManager: settingsManager,
		Haptics:         audioManager,
		Colors:          colors,
		Dimensions:      dims,
	})
	if err != nil {
		return nil, fmt.Errorf("播放器场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(playerScene)

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
	}, nil
}

// loadStyle 按优先级加载样式：命令行参数 > 设置中记录的路径 > 内置样式 > 默认样式
// 返回 nil 表示使用默认值
//
// 命令行指定的样式加载失败时返回错误；设置中记录的路径失效（文件被移动或删除）
// 时只记录警告并清除该路径，继续使用内置样式或默认样式。
func loadStyle(path string, builtin []byte, sm *game.SettingsManager) (*components.SeekBarColors, *components.SeekBarDimensions, error) {
	if path != "" {
		colors, dims, err := config.LoadSeekBarStyle(path)
		if err != nil {
			return nil, nil, fmt.Errorf("样式加载失败: %w", err)
		}
		rememberStylePath(path, sm)
		log.Printf("[Config] 加载样式: %s", path)
		return &colors, &dims, nil
	}

	if saved := sm.GetSettings().StylePath; saved != "" {
		colors, dims, err := config.LoadSeekBarStyle(saved)
		if err == nil {
			log.Printf("[Config] 加载上次使用的样式: %s", saved)
			return &colors, &dims, nil
		}
		log.Printf("[Config] Warning: 上次使用的样式不可用: %v (falling back)", err)
		sm.SetStylePath("")
	}

	if len(builtin) == 0 {
		return nil, nil, nil
	}
	colors, dims, err := config.ParseSeekBarStyle(builtin)
	if err != nil {
		return nil, nil, fmt.Errorf("内置样式解析失败: %w", err)
	}
	log.Printf("[Config] 使用内置样式")
	return &colors, &dims, nil
}

// rememberStylePath 以绝对路径记录样式文件，换工作目录启动时仍然有效
func rememberStylePath(path string, sm *game.SettingsManager) {
	abs, err := filepath.Abs(path)
	if err != nil {
		log.Printf("[Config] Warning: 无法解析样式路径 %s: %v", path, err)
		abs = path
	}
	sm.SetStylePath(abs)
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.Shutdown()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.DemoWindowWidth, config.DemoWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / config.DemoTicksPerSecond)
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧 letterbox 填充黑色，并使用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.DemoWindowWidth, config.DemoWindowHeight
}

// Shutdown 窗口关闭时保存场景状态与设置
func (a *App) Shutdown() {
	a.sceneManager.SaveOnExit()
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: 保存设置失败: %v", err)
	}
}
