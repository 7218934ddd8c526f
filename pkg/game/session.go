package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/decker502/fightingboxes/pkg/config"
	"github.com/decker502/fightingboxes/pkg/utils"
)

// Session 模拟上下文
//
// 保存跨阶段共享的全部状态，由 PhaseMachine 持有并在每个 tick 传给当前阶段。
// 只有当前阶段在当前 tick 内会修改它，因此不需要加锁。
type Session struct {
	Config *config.ArenaConfig
	Rand   utils.Random
	Logger *zap.Logger
	Tally  *TallyManager
	Sound  SoundCue

	// World 当前一局的对战状态
	World *World

	// Winner 最近一局的获胜队伍
	Winner string

	// LastTime 上一个 tick 的时间戳（毫秒）
	LastTime float64
	// GameOverStart 进入结算画面的时间戳
	GameOverStart float64
	// StatsStart 进入胜场统计画面的时间戳
	StatsStart float64

	// TimeScale 最近一次对战帧使用的时间倍率
	TimeScale float64

	// InputEnabled 开场阶段注册输入后为 true，此前的按键事件被忽略
	InputEnabled bool

	// Rounds 已开始的局数（含当前局）
	Rounds int
}

// NewSession 创建模拟上下文并生成第一局
//
// 参数：
//   - cfg: 竞技场配置
//   - rng: 随机数来源
//   - tally: 胜场统计管理器
//   - logger: 日志，可为 nil
func NewSession(cfg *config.ArenaConfig, rng utils.Random, tally *TallyManager, logger *zap.Logger) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("arena config cannot be nil")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if tally == nil {
		tally = NewTallyManager(nil, logger)
	}

	s := &Session{
		Config:    cfg,
		Rand:      rng,
		Logger:    logger,
		Tally:     tally,
		Sound:     NopSoundCue{},
		TimeScale: 1.0,
	}

	if err := s.NewRound(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewRound 用全新的 World 替换当前一局
// 方块 ID 延续上一局，不会复用
func (s *Session) NewRound() error {
	firstID := ecsFirstID(s.World)
	world, err := NewWorldFrom(s.Config, s.Rand, firstID)
	if err != nil {
		return fmt.Errorf("failed to create world: %w", err)
	}

	s.World = world
	s.Winner = ""
	s.Rounds++

	s.Logger.Info("round started",
		zap.String("round_id", world.RoundID.String()),
		zap.Int("round", s.Rounds),
		zap.Int("agents", world.EntityManager.Count()),
	)
	return nil
}

// HandleKeyDown 按键按下事件
// 开场阶段注册输入之前的事件被忽略
func (s *Session) HandleKeyDown(code string, timestamp float64) {
	if !s.InputEnabled || s.World == nil {
		return
	}
	s.World.Input.Press(code, timestamp)
}

// HandleKeyUp 按键松开事件
func (s *Session) HandleKeyUp(code string) {
	if !s.InputEnabled || s.World == nil {
		return
	}
	s.World.Input.Release(code)
}

// SetSound 设置音效，nil 表示静音
func (s *Session) SetSound(cue SoundCue) {
	if cue == nil {
		cue = NopSoundCue{}
	}
	s.Sound = cue
}
