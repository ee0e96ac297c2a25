package app

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ParseLogLevel 把配置中的级别名转换为 zerolog 级别，未知名称按 info 处理
func ParseLogLevel(name string) zerolog.Level {
	switch strings.ToUpper(name) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetupLogging 配置全局日志
// verbose 为 true 时强制 debug 级别
func SetupLogging(level string, verbose bool) {
	SetupLoggingTo(os.Stdout, level, verbose)
}

// SetupLoggingTo 与 SetupLogging 相同，但写入指定输出
func SetupLoggingTo(out io.Writer, level string, verbose bool) {
	logLevel := ParseLogLevel(level)
	if verbose && logLevel > zerolog.DebugLevel {
		logLevel = zerolog.DebugLevel
	}

	zerolog.SetGlobalLevel(logLevel)
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
}
