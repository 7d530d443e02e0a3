package game

import (
	"encoding/binary"
	"log"
	"math"
	"time"

	"github.com/gonewx/seekbar/pkg/components"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// clickTone 合成提示音参数
type clickTone struct {
	frequency float64       // 正弦波频率（Hz）
	duration  time.Duration // 时长
	gain      float64       // 相对强度 0.0 ~ 1.0
}

// hapticTones 各触觉反馈类型对应的提示音
// 桌面端没有振动马达，用短促的咔哒声代替
var hapticTones = map[components.HapticKind]clickTone{
	components.HapticTick:       {frequency: 2200, duration: 8 * time.Millisecond, gain: 0.35},
	components.HapticClick:      {frequency: 1400, duration: 15 * time.Millisecond, gain: 0.6},
	components.HapticHeavyClick: {frequency: 700, duration: 30 * time.Millisecond, gain: 0.9},
	components.HapticLongPress:  {frequency: 320, duration: 45 * time.Millisecond, gain: 0.7},
}

// AudioManager 音频管理器
// 职责：
//   - 把触觉反馈请求转换为提示音播放（实现 systems.HapticPerformer）
//   - 从 SettingsManager 读取开关与音量
//   - 缓存每种反馈类型的播放器，重复触发时从头播放
//
// audioContext 为 nil 时只记录日志（无音频设备或测试环境）。
type AudioManager struct {
	audioContext    *audio.Context
	settingsManager *SettingsManager
	players         map[components.HapticKind]*audio.Player
	played          int // 实际播放次数
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - ctx: Ebitengine 音频上下文，可为 nil
//   - sm: SettingsManager 实例（用于读取开关与音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		players:         make(map[components.HapticKind]*audio.Player),
	}
}

// PerformHapticFeedback 播放与反馈类型对应的提示音
func (am *AudioManager) PerformHapticFeedback(kind components.HapticKind) {
	if _, ok := hapticTones[kind]; !ok {
		return
	}

	volume := 1.0
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if !settings.HapticsEnabled {
			return
		}
		volume = settings.ClickVolume
	}
	if volume <= 0 {
		return
	}

	player := am.getPlayer(kind)
	if player == nil {
		log.Printf("[AudioManager] haptic %s (no audio device)", kind)
		return
	}

	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind haptic %s: %v", kind, err)
	}
	player.Play()
	am.played++
}

// PlayedCount 返回实际播放的提示音次数
func (am *AudioManager) PlayedCount() int {
	return am.played
}

// getPlayer 获取或创建反馈类型对应的播放器
func (am *AudioManager) getPlayer(kind components.HapticKind) *audio.Player {
	if am.audioContext == nil {
		return nil
	}
	if player, ok := am.players[kind]; ok {
		return player
	}

	pcm := synthesizeClick(am.audioContext.SampleRate(), hapticTones[kind])
	player := am.audioContext.NewPlayerFromBytes(pcm)
	am.players[kind] = player
	return player
}

// synthesizeClick 生成指数衰减的正弦波提示音
// 输出为 16 位小端双声道 PCM（Ebitengine audio 的默认格式）
func synthesizeClick(sampleRate int, tone clickTone) []byte {
	samples := int(float64(sampleRate) * tone.duration.Seconds())
	if samples <= 0 {
		return nil
	}

	const bytesPerFrame = 4
	pcm := make([]byte, samples*bytesPerFrame)
	decay := 5 / tone.duration.Seconds()

	for i := 0; i < samples; i++ {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-decay * t)
		v := int16(math.Sin(2*math.Pi*tone.frequency*t) * envelope * tone.gain * math.MaxInt16)
		binary.LittleEndian.PutUint16(pcm[i*bytesPerFrame:], uint16(v))
		binary.LittleEndian.PutUint16(pcm[i*bytesPerFrame+2:], uint16(v))
	}
	return pcm
}
