// Package app 组装模拟核心并提供终端（tcell）和无头两种前端
//
// 桌面端通过 main.go 调用 NewSimulation 后选择前端，窗口前端见 window 包，
// 移动端通过 mobile/mobile.go 调用。
package app

// KeyToggleSound 切换音效的热键（与 ebiten.Key.String() 一致）
const KeyToggleSound = "M"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 竞技场配置文件路径，为空使用默认配置
	ConfigPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed uint64
	// NoStore 不打开持久化存储，胜场只保存在内存中
	NoStore bool
	// Terminal 使用终端前端代替窗口
	Terminal bool
	// LogFile 日志文件路径，为空时窗口模式输出到标准错误
	LogFile string
}
