// 包 logger：进程级日志器的初始化与获取；级别与格式来自配置，输出固定为标准错误，标准输出只留给报告文本
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

var defaultLogger atomic.Pointer[slog.Logger]

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// 文档注释：按级别与格式构建日志器
// 背景：format 为 json 时输出 JSON，其余为文本；w 为空时写标准错误。
func New(level, format string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var h slog.Handler
	if strings.EqualFold(format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// Setup：初始化默认日志器（LOG_LEVEL / LOG_FORMAT）
// 约束：可重复调用，后一次覆盖前一次
func Setup() *slog.Logger {
	l := New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stderr)
	defaultLogger.Store(l)
	return l
}

// Use 替换默认日志器，测试中用于捕获输出
func Use(l *slog.Logger) { defaultLogger.Store(l) }

// L：获取默认日志器，未初始化时回退到 Setup
func L() *slog.Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	return Setup()
}
