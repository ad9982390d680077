package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// 未调用 InitLog 时使用默认 logger，库代码和测试可以直接打日志
var logger = newLogger(os.Stdout, "shanten")

func newLogger(w io.Writer, prefix string) *log.Logger {
	l := log.New(w)
	l.SetPrefix(prefix)
	l.SetReportTimestamp(true)
	l.SetTimeFormat(time.DateTime)
	return l
}

// InitLog 初始化全局 logger
func InitLog(appName string, logLevel string) {
	// 用 stdout，IDE 控制台不会把所有日志标红
	logger = newLogger(os.Stdout, appName)
	// 显示文件名和行号
	logger.SetReportCaller(true)
	SetLevel(logLevel)
}

// SetOutput 重定向输出，测试中使用
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetLevel 运行时调整日志级别，空串为 info
func SetLevel(logLevel string) {
	logger.SetLevel(parseLevel(logLevel))
}

// Level 当前级别
func Level() string {
	return logger.GetLevel().String()
}

func parseLevel(logLevel string) log.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func Fatal(format string, args ...any) {
	if len(args) == 0 {
		logger.Fatalf(format)
	} else {
		logger.Fatalf(format, args...)
	}
}

func Info(format string, args ...any) {
	if len(args) == 0 {
		logger.Infof(format)
	} else {
		logger.Infof(format, args...)
	}
}

func Warn(format string, args ...any) {
	if len(args) == 0 {
		logger.Warnf(format)
	} else {
		logger.Warnf(format, args...)
	}
}

func Error(format string, args ...any) {
	if len(args) == 0 {
		logger.Errorf(format)
	} else {
		logger.Errorf(format, args...)
	}
}

func Debug(format string, args ...any) {
	if len(args) == 0 {
		logger.Debugf(format)
	} else {
		logger.Debugf(format, args...)
	}
}
