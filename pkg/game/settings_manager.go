package game

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Settings 前端偏好设置
// 与胜场统计保存在同一个存储中，启动时加载，修改后立即保存
type Settings struct {
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	Fullscreen   bool    `yaml:"fullscreen"`   // 启动时是否全屏（仅窗口模式）
}

// DefaultSettings 返回默认设置
func DefaultSettings() *Settings {
	return &Settings{
		SoundEnabled: true,
		SoundVolume:  0.8,
		Fullscreen:   false,
	}
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	store    Store     // 可为 nil（降级模式）
	settings *Settings // 当前设置
	logger   *zap.Logger
}

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
//
// 参数：
//   - store: 键值存储，可为 nil（降级模式，仅内存设置）
//   - logger: 日志，可为 nil
//
// 返回：
//   - *SettingsManager: 设置管理器实例；加载失败时使用默认设置
func NewSettingsManager(store Store, logger *zap.Logger) *SettingsManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	sm := &SettingsManager{
		store:    store,
		settings: DefaultSettings(),
		logger:   logger.Named("settings"),
	}

	if err := sm.Load(); err != nil {
		sm.logger.Warn("failed to load settings, using defaults", zap.Error(err))
	}
	return sm
}

// Load 从存储加载设置
//
// 存储为 nil 或数据不存在时使用默认设置。
//
// 返回：
//   - error: 读取或反序列化失败时返回错误（设置已重置为默认值）
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()

	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	sm.settings = loaded
	return nil
}

// Save 保存设置
//
// 存储为 nil 时返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	sm.logger.Debug("settings saved")
	return nil
}

// Settings 返回当前设置的副本
func (sm *SettingsManager) Settings() Settings {
	return *sm.settings
}

// ToggleSound 切换音效开关并保存，返回新的开关状态
func (sm *SettingsManager) ToggleSound() bool {
	sm.settings.SoundEnabled = !sm.settings.SoundEnabled
	sm.saveOrWarn()
	return sm.settings.SoundEnabled
}

// SetSoundVolume 设置音效音量并保存
// 音量值会被限制在 0.0 ~ 1.0 范围内
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
	sm.saveOrWarn()
}

// SetFullscreen 设置全屏模式并保存
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
	sm.saveOrWarn()
}

func (sm *SettingsManager) saveOrWarn() {
	if err := sm.Save(); err != nil {
		sm.logger.Warn("failed to save settings", zap.Error(err))
	}
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
