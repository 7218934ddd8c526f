//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.decker.fightingboxes -o build/android/fightingboxes.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/FightingBoxes.xcframework ./mobile
//
// 移动端没有键盘，时间倍率保持为 1。
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"
	"go.uber.org/zap"

	"github.com/decker502/fightingboxes/pkg/app"
	"github.com/decker502/fightingboxes/pkg/window"
)

func init() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}

	sim, err := app.NewSimulation(app.Config{Verbose: true}, logger)
	if err != nil {
		log.Fatalf("模拟初始化失败: %v", err)
	}
	sim.EnableSound()

	game, err := window.NewApp(sim, window.NewKeySource())
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(game)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
