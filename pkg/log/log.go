// package log provides a simple logger with leveled log messages.
//
//   - DebugLevel (highest verbosity)
//   - InfoLevel
//   - WarningLevel
//   - ErrorLevel
//   - FatalLevel (lowest verbosity)
//
// Output is written to standard error unless redirected with SetOutput.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

type level int32

const (
	DebugLevel   level = iota // DebugLevel logs all messages
	InfoLevel                 // InfoLevel logs info messages and and above
	WarningLevel              // WarningLevel logs warning messages and above
	ErrorLevel                // ErrorLevel logs error messages and above
	FatalLevel                // FatalLevel only logs fatal messages
)

const (
	tagDebug   = "DEBU"
	tagInfo    = "INFO"
	tagWarning = "WARN"
	tagError   = "ERRO"
	tagFatal   = "FATA"
)

// ANSI colors used for tags when color is enabled.
const (
	colorReset  = "\x1b[0m"
	colorGray   = "\x1b[90m"
	colorBlue   = "\x1b[34m"
	colorYellow = "\x1b[33m"
	colorRed    = "\x1b[31m"
)

var (
	currentLevel int32
	useColor     int32
	logger       = log.New(os.Stderr, "", log.LstdFlags)
)

func init() {
	currentLevel = int32(InfoLevel)
}

// SetLevel sets the logging level.  Available options: DebugLevel, InfoLevel,
// WarningLevel, ErrorLevel, FatalLevel.
func SetLevel(lv level) {
	atomic.StoreInt32(&currentLevel, int32(lv))
}

func SetLevelFromString(levelName string) error {
	switch levelName {
	case "debug":
		SetLevel(DebugLevel)
	case "info":
		SetLevel(InfoLevel)
	case "warning":
		SetLevel(WarningLevel)
	case "error":
		SetLevel(ErrorLevel)
	case "fatal":
		SetLevel(FatalLevel)
	default:
		return fmt.Errorf("invalid logging level %s", levelName)
	}
	return nil
}

// SetOutput sets the destination of all log messages.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetDate enables or disables the date and time prefix.
func SetDate(enabled bool) {
	if enabled {
		logger.SetFlags(log.LstdFlags)
	} else {
		logger.SetFlags(0)
	}
}

// SetColor enables or disables colored level tags.
func SetColor(enabled bool) {
	var v int32
	if enabled {
		v = 1
	}
	atomic.StoreInt32(&useColor, v)
}

func isEnabled(lv level) bool {
	return level(atomic.LoadInt32(&currentLevel)) <= lv
}

func tag(name, color string) string {
	if atomic.LoadInt32(&useColor) != 0 {
		return "[" + color + name + colorReset + "] "
	}
	return "[" + name + "] "
}

func output(prefix, format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	logger.Print(prefix + msg)
}

func Debug(format string, v ...interface{}) {
	if isEnabled(DebugLevel) {
		output(tag(tagDebug, colorGray), format, v...)
	}
}

func Info(format string, v ...interface{}) {
	if isEnabled(InfoLevel) {
		output(tag(tagInfo, colorBlue), format, v...)
	}
}

func Warning(format string, v ...interface{}) {
	if isEnabled(WarningLevel) {
		output(tag(tagWarning, colorYellow), format, v...)
	}
}

func Error(format string, v ...interface{}) {
	if isEnabled(ErrorLevel) {
		output(tag(tagError, colorRed), format, v...)
	}
}

func Fatal(format string, v ...interface{}) {
	output(tag(tagFatal, colorRed), format, v...)
	os.Exit(1)
}
