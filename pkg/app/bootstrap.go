package app

import (
	"fmt"
	"time"

	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"

	"github.com/decker502/fightingboxes/internal/audio"
	"github.com/decker502/fightingboxes/pkg/config"
	"github.com/decker502/fightingboxes/pkg/game"
	"github.com/decker502/fightingboxes/pkg/scenes"
	"github.com/decker502/fightingboxes/pkg/systems"
	"github.com/decker502/fightingboxes/pkg/utils"
)

// Simulation 两种前端共用的模拟核心
//
// 持有配置、上下文、状态机和渲染系统；前端只负责提供时间戳、按键事件和绘制目标。
type Simulation struct {
	Arena    *config.ArenaConfig
	Session  *game.Session
	Machine  *game.PhaseMachine
	Renderer *systems.RenderSystem
	Settings *game.SettingsManager
	Sound    *audio.ToneCue
	Logger   *zap.Logger
	Seed     uint64
}

// NewSimulation 根据启动配置创建模拟核心
//
// 参数：
//   - cfg: 启动配置
//   - logger: 日志，可为 nil
//
// 返回：
//   - *Simulation: 模拟核心
//   - error: 竞技场配置无效或第一局创建失败时返回错误
func NewSimulation(cfg Config, logger *zap.Logger) (*Simulation, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	arena := config.DefaultArenaConfig()
	if cfg.ConfigPath != "" {
		loaded, err := config.LoadArenaConfig(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		arena = loaded
		logger.Info("arena config loaded", zap.String("path", cfg.ConfigPath))
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := utils.NewSeededRandom(seed)

	var store game.Store
	if !cfg.NoStore {
		store = openStore(arena.StoreAppName, logger)
	}

	tally := game.NewTallyManager(store, logger)
	session, err := game.NewSession(arena, rng, tally, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	renderer := systems.NewRenderSystem(arena)
	phases := scenes.NewPhases(systems.NewPhysicsSystem(arena, rng, logger), renderer)

	sim := &Simulation{
		Arena:    arena,
		Session:  session,
		Machine:  phases.NewMachine(session),
		Renderer: renderer,
		Settings: game.NewSettingsManager(store, logger),
		Sound:    audio.NewToneCue(logger),
		Logger:   logger,
		Seed:     seed,
	}

	logger.Info("simulation ready",
		zap.Uint64("seed", seed),
		zap.Int("teams", len(arena.Teams)),
		zap.Int("team_size", arena.TeamSize),
		zap.Bool("persistent", tally.HasStore()),
	)
	return sim, nil
}

// EnableSound 初始化扬声器并按设置启用音效
// 没有音频设备时只记录警告，模拟照常运行
func (s *Simulation) EnableSound() {
	if err := s.Sound.Initialize(); err != nil {
		s.Logger.Warn("audio unavailable", zap.Error(err))
		return
	}
	s.applySoundSettings()
}

// ToggleSound 切换音效开关并保存设置
func (s *Simulation) ToggleSound() {
	enabled := s.Settings.ToggleSound()
	s.Logger.Info("sound toggled", zap.Bool("enabled", enabled))
	s.applySoundSettings()
}

func (s *Simulation) applySoundSettings() {
	settings := s.Settings.Settings()
	if !settings.SoundEnabled {
		s.Session.SetSound(nil)
		return
	}
	s.Sound.SetVolume(settings.SoundVolume)
	s.Session.SetSound(s.Sound)
}

// NewInput 为前端的按键来源创建输入系统并注册音效开关热键
func (s *Simulation) NewInput(source systems.KeySource) *systems.InputSystem {
	input := systems.NewInputSystem(source, s.Logger)
	input.SetHotkey(KeyToggleSound, s.ToggleSound)
	return input
}

// Frame 读取按键事件并推进一个 tick
//
// 参数：
//   - input: NewInput 创建的输入系统
//   - now: 前端时间戳（毫秒）
func (s *Simulation) Frame(input *systems.InputSystem, now float64) error {
	input.Update(s.Session, now)
	return s.Machine.Tick(now)
}

// Close 释放音频资源
func (s *Simulation) Close() {
	s.Sound.Close()
}

// openStore 打开 gdata 存储
// 失败时返回 nil，胜场统计退化为仅内存模式
func openStore(appName string, logger *zap.Logger) game.Store {
	if err := utils.EnsureStoreDir(); err != nil {
		logger.Warn("store directory unavailable, wins will not be saved", zap.Error(err))
		return nil
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn("persistent store unavailable, wins will not be saved", zap.Error(err))
		return nil
	}
	return manager
}
