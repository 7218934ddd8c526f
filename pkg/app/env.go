package app

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// 环境变量名，命令行参数优先于环境变量
const (
	EnvConfigPath = "FIGHTBOX_CONFIG"
	EnvVerbose    = "FIGHTBOX_VERBOSE"
	EnvTerminal   = "FIGHTBOX_TERMINAL"
	EnvSeed       = "FIGHTBOX_SEED"
	EnvNoStore    = "FIGHTBOX_NO_STORE"
	EnvLogFile    = "FIGHTBOX_LOG_FILE"
)

// ConfigFromEnv 读取当前目录的 .env（不存在时忽略）和环境变量，返回启动配置
func ConfigFromEnv() Config {
	_ = godotenv.Load()
	return configFromLookup(os.Getenv)
}

// configFromLookup 解析环境变量，无法解析的值按未设置处理
func configFromLookup(getenv func(string) string) Config {
	cfg := Config{
		ConfigPath: getenv(EnvConfigPath),
		LogFile:    getenv(EnvLogFile),
	}
	cfg.Verbose, _ = strconv.ParseBool(getenv(EnvVerbose))
	cfg.Terminal, _ = strconv.ParseBool(getenv(EnvTerminal))
	cfg.NoStore, _ = strconv.ParseBool(getenv(EnvNoStore))
	if seed, err := strconv.ParseUint(getenv(EnvSeed), 10, 64); err == nil {
		cfg.Seed = seed
	}
	return cfg
}

// NewLogger 根据启动配置创建日志
//
// Verbose 时为 Debug 级别，否则只输出 Warn 及以上。
// 终端前端占用了标准输出，此时日志只写入 LogFile，未设置则丢弃。
func NewLogger(cfg Config) (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if cfg.Verbose {
		level = zapcore.DebugLevel
	}

	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.DisableStacktrace = true

	switch {
	case cfg.LogFile != "":
		zapCfg.OutputPaths = []string{cfg.LogFile}
		zapCfg.ErrorOutputPaths = []string{cfg.LogFile}
	case cfg.Terminal:
		return zap.NewNop(), nil
	default:
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return zapCfg.Build()
}
