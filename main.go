package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/decker502/fightingboxes/pkg/app"
	"github.com/decker502/fightingboxes/pkg/window"
)

func main() {
	cfg := app.ConfigFromEnv()

	flag.StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "竞技场配置文件路径（YAML）")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "显示详细调试信息")
	flag.BoolVar(&cfg.Terminal, "terminal", cfg.Terminal, "在终端中运行")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "随机种子，0 表示使用当前时间")
	flag.BoolVar(&cfg.NoStore, "no-store", cfg.NoStore, "不保存胜场统计和设置")
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "日志文件路径")
	flag.Parse()

	logger, err := app.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("fighting boxes exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg app.Config, logger *zap.Logger) error {
	sim, err := app.NewSimulation(cfg, logger)
	if err != nil {
		return err
	}
	sim.EnableSound()
	defer sim.Close()

	if cfg.Terminal {
		return runTerminal(sim)
	}
	return window.Run(sim)
}

func runTerminal(sim *app.Simulation) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.NewTerminalApp(sim, screen).Run(ctx)
}
