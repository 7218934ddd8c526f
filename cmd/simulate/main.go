// simulate 在无界面模式下连续运行若干局并输出每局的胜者
//
// 用法：
//
//	go run ./cmd/simulate -rounds 20 -seed 42
//	go run ./cmd/simulate -config arena.yaml -rounds 5 -verbose
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/decker502/fightingboxes/pkg/app"
)

var (
	configPath = flag.String("config", "", "竞技场配置文件路径（YAML）")
	rounds     = flag.Int("rounds", 10, "运行的局数")
	seed       = flag.Uint64("seed", 0, "随机种子，0 表示使用当前时间")
	stepMs     = flag.Float64("step", 16, "每个 tick 推进的时间（毫秒）")
	maxTicks   = flag.Uint64("max-ticks", 10_000_000, "tick 上限，0 表示不限制")
	store      = flag.Bool("store", false, "把胜场写入持久化存储")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	sim, err := app.NewSimulation(app.Config{
		ConfigPath: *configPath,
		Seed:       *seed,
		NoStore:    !*store,
		Verbose:    *verbose,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create simulation: %v\n", err)
		os.Exit(1)
	}

	results, err := app.RunHeadless(sim, app.HeadlessOptions{
		Rounds:   *rounds,
		StepMs:   *stepMs,
		MaxTicks: *maxTicks,
	})

	fmt.Printf("seed: %d\n", sim.Seed)
	for _, r := range results {
		fmt.Printf("round %3d  winner %-8s  %8.0f ms  %6d ticks\n", r.Round, r.Winner, r.DurationMs, r.Ticks)
	}

	fmt.Println("Wins:")
	for _, e := range sim.Session.Tally.Tally().Entries() {
		fmt.Printf("  %s : %d\n", e.Team, e.Wins)
	}

	if err != nil {
		if errors.Is(err, app.ErrTickLimit) {
			fmt.Fprintf(os.Stderr, "stopped after %d ticks with %d/%d rounds finished\n", sim.Machine.Ticks(), len(results), *rounds)
		} else {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		os.Exit(1)
	}
}
