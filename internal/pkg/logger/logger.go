package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config 日誌配置
type Config struct {
	Level      string // debug, info, warn, error
	OutputPath string // 日誌文件路徑
	MaxSize    int    // 單個文件最大大小（MB）
	MaxBackups int    // 保留的舊日誌文件數量
	MaxAge     int    // 保留的天數
	Compress   bool   // 是否壓縮
	Console    bool   // 是否輸出到控制台
}

// DefaultConfig 返回默認配置
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		OutputPath: "/var/log/pigment/pigment.log",
		MaxSize:    10,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
		Console:    true,
	}
}

// New 創建新的日誌記錄器
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var cores []zapcore.Core

	// 文件輸出（經 lumberjack 輪轉）
	if cfg.OutputPath != "" {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.OutputPath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})

		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			fileWriter,
			level,
		)
		cores = append(cores, fileCore)
	}

	// 控制台輸出
	// TUI 運行期間應保持關閉，否則輸出會破壞終端畫面
	if cfg.Console {
		consoleEncoder := encoderConfig
		consoleEncoder.EncodeLevel = zapcore.CapitalColorLevelEncoder

		consoleCore := zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleEncoder),
			zapcore.AddSync(os.Stdout),
			level,
		)
		cores = append(cores, consoleCore)
	}

	core := zapcore.NewTee(cores...)

	logger := zap.New(
		core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)

	return logger, nil
}

// NewDevelopment 創建開發環境日誌記錄器
func NewDevelopment() (*zap.Logger, error) {
	return zap.NewDevelopment()
}
