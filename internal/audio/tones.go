// Package audio 用 beep 合成对战音效
//
// 没有音频设备时初始化会失败，此时所有播放调用都是空操作，模拟照常进行。
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const (
	sampleRate = beep.SampleRate(44100)

	hitFrequency     = 220.0
	hitDuration      = 40 * time.Millisecond
	victoryFrequency = 660.0
	victoryDuration  = 400 * time.Millisecond

	// 音量为 1 时正弦波的振幅
	maxAmplitude = 0.3
)

// ToneCue 实现对战音效（game.SoundCue）
type ToneCue struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	volume      float64
	logger      *zap.Logger
}

// NewToneCue 创建音效
// 调用 Initialize 之前播放调用不会发声
func NewToneCue(logger *zap.Logger) *ToneCue {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ToneCue{
		mixer:  &beep.Mixer{},
		volume: 1.0,
		logger: logger.Named("audio"),
	}
}

// Initialize 初始化扬声器
// 重复调用是空操作
func (c *ToneCue) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// SetVolume 设置音量（0.0 ~ 1.0）
func (c *ToneCue) SetVolume(volume float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	c.volume = volume
}

// PlayHit 播放碰撞音效
func (c *ToneCue) PlayHit() {
	c.play(hitFrequency, hitDuration)
}

// PlayVictory 播放胜利音效
func (c *ToneCue) PlayVictory() {
	c.play(victoryFrequency, victoryDuration)
}

// Close 停止所有声音
func (c *ToneCue) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

func (c *ToneCue) play(freq float64, d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.volume == 0 {
		return
	}

	tone, err := newTone(freq, d, c.volume)
	if err != nil {
		c.logger.Warn("failed to synthesize tone", zap.Float64("freq", freq), zap.Error(err))
		return
	}

	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
}

// newTone 生成指定频率、时长和音量的正弦波
func newTone(freq float64, d time.Duration, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return &effects.Gain{
		Streamer: beep.Take(sampleRate.N(d), sine),
		Gain:     maxAmplitude*volume - 1,
	}, nil
}
