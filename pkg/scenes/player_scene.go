package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/gonewx/seekbar/pkg/components"
	"github.com/gonewx/seekbar/pkg/config"
	"github.com/gonewx/seekbar/pkg/ecs"
	"github.com/gonewx/seekbar/pkg/entities"
	"github.com/gonewx/seekbar/pkg/game"
	"github.com/gonewx/seekbar/pkg/systems"
	"github.com/gonewx/seekbar/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 示例播放器布局与节奏
const (
	playerDuration     = 300.0 // 模拟媒体时长（秒）
	playerBufferRate   = 3.0   // 缓冲速度（媒体秒/真实秒）
	playerKeySeekStep  = 5.0   // 方向键跳转步长（秒）
	playerTrackMarginX = 40.0
	playerTrackY       = 120.0
)

var playerBackground = color.RGBA{R: 0x18, G: 0x18, B: 0x1c, A: 0xff}

// PlayerSceneOptions 示例播放器场景参数
type PlayerSceneOptions struct {
	SettingsManager *game.SettingsManager     // 可为 nil（不持久化）
	Haptics         systems.HapticPerformer   // 可为 nil
	Colors          *components.SeekBarColors // nil 使用默认样式
	Dimensions      *components.SeekBarDimensions
	Pointer         systems.SeekBarPointerInput // nil 使用 Ebitengine 输入
}

// PlayerScene 示例媒体播放器
//
// 模拟一段 5 分钟的媒体：带章节分段、书签标记和缓冲进度。
// 进度拖动条作为 ECS 实体创建，场景扮演宿主：持有播放位置，
// 在 OnValueChange 中写回 Value。
//
// 按键：
//   - Space: 播放/暂停
//   - Left/Right: 后退/前进 5 秒
//   - H: 开关触觉反馈
//   - D: 禁用/启用拖动条
type PlayerScene struct {
	entityManager   *ecs.EntityManager
	inputSystem     *systems.SeekBarInputSystem
	renderSystem    *systems.SeekBarRenderSystem
	settingsManager *game.SettingsManager

	seekBarID ecs.EntityID
	seekBar   *components.SeekBarComponent

	position   float64 // 当前播放位置（秒）
	buffered   float64 // 已缓冲位置（秒）
	paused     bool
	seeking    bool
	lastHaptic components.HapticKind
}

// playerChapters 示例章节
func playerChapters() []components.Segment {
	intro := components.Color{R: 0x42, G: 0xa5, B: 0xf5, A: 0xff}
	credits := components.Color{R: 0x9c, G: 0x27, B: 0xb0, A: 0xff}
	return []components.Segment{
		{Start: 0, Title: "Intro", Color: &intro},
		{Start: 45, Title: "Chapter 1"},
		{Start: 130, Title: "Chapter 2"},
		{Start: 220, Title: "Credits", Color: &credits},
	}
}

// playerBookmarks 示例书签
func playerBookmarks() []components.Marker {
	bookmark := components.Color{R: 0xff, G: 0xd5, B: 0x4f, A: 0xff}
	return []components.Marker{
		{Value: 90, Color: bookmark, Size: 12, OverlayContent: newTextLabel("B1")},
		{Value: 180, Color: bookmark, Size: 12, OverlayContent: newTextLabel("B2")},
	}
}

// NewPlayerScene 创建示例播放器场景
func NewPlayerScene(opts PlayerSceneOptions) (*PlayerScene, error) {
	em := ecs.NewEntityManager()

	s := &PlayerScene{
		entityManager:   em,
		renderSystem:    systems.NewSeekBarRenderSystem(em),
		settingsManager: opts.SettingsManager,
	}
	if opts.Pointer != nil {
		s.inputSystem = systems.NewSeekBarInputSystemWithInput(em, opts.Pointer, opts.Haptics)
	} else {
		s.inputSystem = systems.NewSeekBarInputSystem(em, opts.Haptics)
	}

	haptics := components.DefaultHapticConfig()
	if s.settingsManager != nil {
		settings := s.settingsManager.GetSettings()
		haptics.Enabled = settings.HapticsEnabled
		s.position = utils.ClampFloat(settings.LastPosition, 0, playerDuration)
	}
	s.buffered = s.position

	dims := opts.Dimensions
	if dims == nil && utils.IsMobile() {
		mobileDims := components.DefaultSeekBarDimensions()
		mobileDims.TouchTargetHeight = config.MobileTouchTargetHeight
		dims = &mobileDims
	}

	id, err := entities.NewSeekBarEntity(em, entities.SeekBarConfig{
		X:              playerTrackMarginX,
		Y:              playerTrackY,
		Width:          float64(config.DemoWindowWidth) - 2*playerTrackMarginX,
		Value:          s.position,
		ReadAheadValue: s.buffered,
		Range:          utils.ValueRange{Start: 0, End: playerDuration},
		Segments:       playerChapters(),
		Markers:        playerBookmarks(),
		ThumbOverlay:   thumbDot{radius: 2, color: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		Haptics:        &haptics,
		Colors:         opts.Colors,
		Dimensions:     dims,
		OnValueChange:  s.onValueChange,
		OnSeekStart:    s.onSeekStart,
		OnSeekEnd:      s.onSeekEnd,
		OnHapticEvent:  s.onHapticEvent,
	})
	if err != nil {
		return nil, fmt.Errorf("create player seek bar: %w", err)
	}

	bar, ok := ecs.GetComponent[*components.SeekBarComponent](em, id)
	if !ok {
		return nil, fmt.Errorf("create player seek bar: component missing on entity %d", id)
	}
	s.seekBarID = id
	s.seekBar = bar

	log.Printf("[PlayerScene] 创建示例播放器: position=%.1fs haptics=%v", s.position, haptics.Enabled)
	return s, nil
}

// Update 更新场景
func (s *PlayerScene) Update(deltaTime float64) {
	s.handleKeys()
	s.advance(deltaTime)
	s.syncSeekBar()
	s.inputSystem.Update(deltaTime)
}

// handleKeys 处理键盘快捷键
func (s *PlayerScene) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		s.ToggleHaptics()
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		s.seekBar.Enabled = !s.seekBar.Enabled
		log.Printf("[PlayerScene] 拖动条 (entity %d) enabled=%v", s.seekBarID, s.seekBar.Enabled)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		s.SeekBy(-playerKeySeekStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		s.SeekBy(playerKeySeekStep)
	}
}

// advance 推进模拟播放与缓冲
// 拖动中暂停推进播放位置，缓冲继续
func (s *PlayerScene) advance(deltaTime float64) {
	if !s.paused && !s.seeking {
		s.position = math.Min(s.position+deltaTime, playerDuration)
		if s.position >= playerDuration {
			s.paused = true
		}
	}
	s.buffered = math.Min(math.Max(s.buffered, s.position)+deltaTime*playerBufferRate, playerDuration)
}

// syncSeekBar 宿主把状态写回组件
func (s *PlayerScene) syncSeekBar() {
	s.seekBar.Value = s.position
	s.seekBar.ReadAheadValue = s.buffered
}

// TogglePause 播放/暂停
func (s *PlayerScene) TogglePause() {
	s.paused = !s.paused
	if !s.paused && s.position >= playerDuration {
		s.position = 0
		s.buffered = 0
	}
}

// ToggleHaptics 开关触觉反馈（同时写入设置）
func (s *PlayerScene) ToggleHaptics() {
	enabled := !s.seekBar.Haptics.Enabled
	s.seekBar.Haptics.Enabled = enabled
	if s.settingsManager != nil {
		s.settingsManager.SetHapticsEnabled(enabled)
		if err := s.settingsManager.Save(); err != nil {
			log.Printf("[PlayerScene] Warning: 保存设置失败: %v", err)
		}
	}
	log.Printf("[PlayerScene] haptics enabled=%v", enabled)
}

// SeekBy 相对跳转（键盘操作，不经过拖动状态机）
func (s *PlayerScene) SeekBy(delta float64) {
	s.seekTo(s.position + delta)
}

func (s *PlayerScene) seekTo(position float64) {
	s.position = utils.ClampFloat(position, 0, playerDuration)
	// 跳出已缓冲区域时重新缓冲
	if s.position > s.buffered {
		s.buffered = s.position
	}
}

func (s *PlayerScene) onValueChange(value float64) {
	s.position = value
	s.seekBar.Value = value
}

func (s *PlayerScene) onSeekStart(value float64) {
	s.seeking = true
	log.Printf("[PlayerScene] seek start from %.1fs", value)
}

func (s *PlayerScene) onSeekEnd(value float64) {
	s.seeking = false
	s.seekTo(value)
	log.Printf("[PlayerScene] seek end at %.1fs", value)
}

func (s *PlayerScene) onHapticEvent(kind components.HapticKind) {
	s.lastHaptic = kind
}

// Position 当前播放位置（秒）
func (s *PlayerScene) Position() float64 {
	return s.position
}

// Buffered 已缓冲位置（秒）
func (s *PlayerScene) Buffered() float64 {
	return s.buffered
}

// CurrentChapter 当前播放位置所在的章节标题
func (s *PlayerScene) CurrentChapter() string {
	index, chapter := systems.SegmentAt(s.seekBar.Segments, s.position)
	if index < 0 {
		return ""
	}
	return chapter.Title
}

// SaveOnExit 退出时记录播放位置
func (s *PlayerScene) SaveOnExit() bool {
	if s.settingsManager == nil {
		return true
	}
	s.settingsManager.SetLastPosition(s.position)
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[PlayerScene] Warning: 保存播放位置失败: %v", err)
		return false
	}
	return true
}

// Draw 绘制场景
func (s *PlayerScene) Draw(screen *ebiten.Image) {
	screen.Fill(playerBackground)
	s.renderSystem.Draw(screen)

	state := "Playing"
	if s.paused {
		state = "Paused"
	}
	if s.seeking {
		state = "Seeking"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s / %s  [%s]  %s",
		formatTimestamp(s.position), formatTimestamp(playerDuration), state, s.CurrentChapter()), 40, 40)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("buffered %s  haptics=%v  last=%s",
		formatTimestamp(s.buffered), s.seekBar.Haptics.Enabled, s.lastHaptic), 40, 60)
	ebitenutil.DebugPrintAt(screen, "Space: play/pause  Left/Right: +-5s  H: haptics  D: disable", 40, 200)
}

// formatTimestamp 将秒数格式化为 mm:ss
func formatTimestamp(seconds float64) string {
	total := int(math.Max(seconds, 0))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// textLabel 使用调试字体绘制的文字浮层
type textLabel struct {
	text string
}

func newTextLabel(text string) textLabel {
	return textLabel{text: text}
}

// Size 调试字体每个字符 6x16 像素
func (l textLabel) Size() (float64, float64) {
	return float64(len(l.text) * 6), 16
}

func (l textLabel) Draw(dst *ebiten.Image, x, y float64) {
	ebitenutil.DebugPrintAt(dst, l.text, int(x), int(y))
}

// thumbDot 滑块中心的小圆点
type thumbDot struct {
	radius float64
	color  color.NRGBA
}

func (d thumbDot) Size() (float64, float64) {
	return 2 * d.radius, 2 * d.radius
}

func (d thumbDot) Draw(dst *ebiten.Image, x, y float64) {
	vector.DrawFilledCircle(dst, float32(x+d.radius), float32(y+d.radius), float32(d.radius), d.color, true)
}
