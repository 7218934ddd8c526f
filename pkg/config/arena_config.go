package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/fightingboxes/pkg/utils"
)

// 窗口配置
const (
	// GameWindowWidth 默认逻辑屏幕宽度
	GameWindowWidth = 800
	// GameWindowHeight 默认逻辑屏幕高度
	GameWindowHeight = 600
	// GameWindowTitle 窗口标题
	GameWindowTitle = "Fighting Boxes"
)

// 按键编码（与 ebiten.Key.String() 一致）
const (
	KeySpeedUp  = "ArrowUp"
	KeySlowDown = "ArrowDown"
)

// ArenaConfig 竞技场配置
//
// 所有字段在启动时确定，运行过程中不会改变。
//
// 配置文件示例（arena.yaml）：
//
//	width: 800
//	height: 600
//	objectSize: 20
//	teamSize: 3
//	teams: [red, blue, green]
type ArenaConfig struct {
	// Width 竞技场宽度（像素）
	Width float64 `yaml:"width"`
	// Height 竞技场高度（像素）
	Height float64 `yaml:"height"`
	// ObjectSize 方块边长（像素）
	ObjectSize float64 `yaml:"objectSize"`
	// TeamSize 每队方块数量
	TeamSize int `yaml:"teamSize"`
	// Teams 队伍标签（颜色名），按此顺序生成方块
	Teams []string `yaml:"teams"`

	// MinSpeed / MaxSpeed 每个轴的随机速度范围（像素/毫秒），[MinSpeed, MaxSpeed)
	MinSpeed float64 `yaml:"minSpeed"`
	MaxSpeed float64 `yaml:"maxSpeed"`

	// FlashColor 碰撞闪光色
	FlashColor string `yaml:"flashColor"`
	// BackgroundColor 背景色
	BackgroundColor string `yaml:"backgroundColor"`
	// TextColor 覆盖层文字颜色
	TextColor string `yaml:"textColor"`
	// Palette 颜色名到十六进制色值的映射，未列出的颜色使用内置调色板
	Palette map[string]string `yaml:"palette"`

	// FastTimeScale 按住加速键时的时间倍率
	FastTimeScale float64 `yaml:"fastTimeScale"`
	// SlowTimeScale 按住减速键时的时间倍率
	SlowTimeScale float64 `yaml:"slowTimeScale"`

	// GameOverDurationMs 结算画面持续时间（毫秒）
	GameOverDurationMs float64 `yaml:"gameOverDurationMs"`
	// StatsDurationMs 胜场统计画面持续时间（毫秒）
	StatsDurationMs float64 `yaml:"statsDurationMs"`

	// TerminalKeyHoldMs 终端模式下按键视为按住的时长（终端没有按键释放事件）
	TerminalKeyHoldMs float64 `yaml:"terminalKeyHoldMs"`

	// StoreAppName gdata 存储的应用名
	StoreAppName string `yaml:"storeAppName"`
}

// DefaultTeams 默认的七支队伍
var DefaultTeams = []string{"red", "blue", "green", "yellow", "orange", "teal", "brown"}

// DefaultArenaConfig 返回默认配置
func DefaultArenaConfig() *ArenaConfig {
	teams := make([]string, len(DefaultTeams))
	copy(teams, DefaultTeams)

	return &ArenaConfig{
		Width:              GameWindowWidth,
		Height:             GameWindowHeight,
		ObjectSize:         20,
		TeamSize:           3,
		Teams:              teams,
		MinSpeed:           0.1,
		MaxSpeed:           0.5,
		FlashColor:         "white",
		BackgroundColor:    "black",
		TextColor:          "white",
		Palette:            map[string]string{},
		FastTimeScale:      2.0,
		SlowTimeScale:      0.5,
		GameOverDurationMs: 2000,
		StatsDurationMs:    3000,
		TerminalKeyHoldMs:  250,
		StoreAppName:       "fighting_boxes",
	}
}

// LoadArenaConfig 加载竞技场配置
//
// 文件中未出现的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "arena.yaml"）
//
// 返回:
//   - *ArenaConfig: 加载并校验后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadArenaConfig(path string) (*ArenaConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read arena config: %w", err)
	}

	cfg, err := ParseArenaConfig(data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseArenaConfig 从 YAML 数据解析竞技场配置
func ParseArenaConfig(data []byte) (*ArenaConfig, error) {
	cfg := DefaultArenaConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse arena config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid arena config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 竞技场必须能容纳一个方块加上出生边距（宽高 > 2*ObjectSize）
//   - 至少一支队伍、每队至少一个方块，队伍名不能重复
//   - 速度范围与时间倍率为正
//   - 画面持续时间不能为负
//   - 队伍标签和 flash/background/text 颜色必须能被调色板解析
func (c *ArenaConfig) Validate() error {
	if c.ObjectSize <= 0 {
		return fmt.Errorf("objectSize must be positive, got %.1f", c.ObjectSize)
	}
	if c.Width <= 2*c.ObjectSize || c.Height <= 2*c.ObjectSize {
		return fmt.Errorf("arena %.0fx%.0f too small for objectSize %.1f", c.Width, c.Height, c.ObjectSize)
	}
	if c.TeamSize < 1 {
		return fmt.Errorf("teamSize must be at least 1, got %d", c.TeamSize)
	}
	if len(c.Teams) == 0 {
		return fmt.Errorf("at least one team is required")
	}

	seen := make(map[string]bool, len(c.Teams))
	for _, team := range c.Teams {
		if team == "" {
			return fmt.Errorf("team label cannot be empty")
		}
		if seen[team] {
			return fmt.Errorf("duplicate team label %q", team)
		}
		seen[team] = true
	}

	if c.MinSpeed <= 0 || c.MaxSpeed <= c.MinSpeed {
		return fmt.Errorf("speed range invalid: min(%.2f) max(%.2f)", c.MinSpeed, c.MaxSpeed)
	}
	if c.FastTimeScale <= 0 || c.SlowTimeScale <= 0 {
		return fmt.Errorf("time scales must be positive: fast(%.2f) slow(%.2f)", c.FastTimeScale, c.SlowTimeScale)
	}
	if c.GameOverDurationMs < 0 || c.StatsDurationMs < 0 {
		return fmt.Errorf("screen durations cannot be negative")
	}
	if c.FlashColor == "" {
		return fmt.Errorf("flashColor cannot be empty")
	}

	return c.validateColors()
}

// validateColors 检查队伍标签和界面颜色都能被调色板解析
func (c *ArenaConfig) validateColors() error {
	palette := utils.NewPalette(c.Palette)

	for _, team := range c.Teams {
		if _, err := palette.Resolve(team); err != nil {
			return fmt.Errorf("team %q has no color: %w", team, err)
		}
	}

	named := []struct {
		field string
		value string
	}{
		{"flashColor", c.FlashColor},
		{"backgroundColor", c.BackgroundColor},
		{"textColor", c.TextColor},
	}
	for _, n := range named {
		if _, err := palette.Resolve(n.value); err != nil {
			return fmt.Errorf("%s: %w", n.field, err)
		}
	}
	return nil
}

// AgentCount 返回一局中的方块总数
func (c *ArenaConfig) AgentCount() int {
	return c.TeamSize * len(c.Teams)
}
