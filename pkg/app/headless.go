package app

import (
	"errors"

	"go.uber.org/zap"

	"github.com/decker502/fightingboxes/pkg/render"
)

// ErrTickLimit 达到 tick 上限时仍未完成指定局数
var ErrTickLimit = errors.New("tick limit reached before all rounds finished")

// RoundResult 一局的结果
type RoundResult struct {
	Round      int
	Winner     string
	DurationMs float64 // 从开局到决出胜者的前端时间
	Ticks      uint64
}

// HeadlessOptions 无界面运行参数
type HeadlessOptions struct {
	Rounds   int     // 要完成的局数
	StepMs   float64 // 每个 tick 推进的前端时间（毫秒）
	MaxTicks uint64  // tick 上限，0 表示不限制
}

// RunHeadless 不打开窗口，以固定步长运行模拟直到完成指定局数
//
// 每个 tick 的画面绘制到 render.Recorder 中，与窗口模式走同一条绘制路径。
//
// 返回：
//   - []RoundResult: 已完成的每一局的结果
//   - error: 超过 MaxTicks 时返回 ErrTickLimit（已完成的结果仍然返回）
func RunHeadless(sim *Simulation, opts HeadlessOptions) ([]RoundResult, error) {
	if opts.StepMs <= 0 {
		opts.StepMs = 16
	}

	input := sim.NewInput(nil)
	recorder := render.NewRecorder()
	results := make([]RoundResult, 0, opts.Rounds)

	var (
		now        float64
		roundStart float64
		startTick  uint64
		lastPhase  = sim.Machine.Current().Name()
	)

	for len(results) < opts.Rounds {
		if opts.MaxTicks > 0 && sim.Machine.Ticks() >= opts.MaxTicks {
			return results, ErrTickLimit
		}

		if err := sim.Frame(input, now); err != nil {
			return results, err
		}
		sim.Machine.Draw(recorder)

		phase := sim.Machine.Current().Name()
		if phase != lastPhase {
			switch phase {
			case "play":
				roundStart = now
				startTick = sim.Machine.Ticks()
			case "game_over":
				results = append(results, RoundResult{
					Round:      sim.Session.Rounds,
					Winner:     sim.Session.Winner,
					DurationMs: now - roundStart,
					Ticks:      sim.Machine.Ticks() - startTick,
				})
				sim.Logger.Debug("headless round finished",
					zap.Int("round", sim.Session.Rounds),
					zap.String("winner", sim.Session.Winner),
				)
			}
			lastPhase = phase
		}
		now += opts.StepMs
	}
	return results, nil
}
