package logger

import (
	"context"
	"fmt"
	"io"
	"kytos-utils/internal/console"
	"kytos-utils/internal/paths"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Custom log levels
const (
	LevelTrace  = slog.Level(-8)
	LevelDebug  = slog.LevelDebug
	LevelInfo   = slog.Level(-2)
	LevelNotice = slog.LevelInfo
	LevelWarn   = slog.LevelWarn
	LevelError  = slog.LevelError
	LevelFatal  = slog.Level(12)
)

// LevelVar allows dynamic changing of the log level
var LevelVar = new(slog.LevelVar)
var FileLevelVar = new(slog.LevelVar)

// Output receives Display lines. Tests replace it.
var Output io.Writer = os.Stdout

var logFile *os.File

func init() {
	LevelVar.Set(LevelNotice)
	FileLevelVar.Set(LevelInfo)
}

// SetLevel changes the console level. The file level never rises above Info.
func SetLevel(level slog.Level) {
	LevelVar.Set(level)
	if level < LevelInfo {
		FileLevelVar.Set(level)
	} else {
		FileLevelVar.Set(LevelInfo)
	}
}

func levelLabel(level slog.Level) string {
	switch level {
	case LevelTrace:
		return "[TRACE ]"
	case LevelDebug:
		return "[DEBUG ]"
	case LevelInfo:
		return "[INFO  ]"
	case LevelNotice:
		return "[NOTICE]"
	case LevelWarn:
		return "[WARN  ]"
	case LevelError:
		return "[ERROR ]"
	case LevelFatal:
		return "[FATAL ]"
	default:
		return "[" + level.String() + "]"
	}
}

func levelColor(level slog.Level) string {
	switch level {
	case LevelNotice:
		return console.CodeGreen
	case LevelWarn:
		return console.CodeYellow
	case LevelError:
		return console.CodeRed
	case LevelFatal:
		return console.CodeRedBg + console.CodeWhite
	default:
		return console.CodeBlue
	}
}

// NewLogger builds the application logger: colored console output on stderr
// plus a plain log file in the state directory when it can be opened.
func NewLogger() *slog.Logger {
	var file io.Writer
	path := paths.GetLogFilePath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err == nil {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		} else {
			logFile = f
			file = f
		}
	}
	return NewLoggerTo(os.Stderr, console.IsTerminal(os.Stderr), file)
}

// NewLoggerTo builds a logger writing to the given console writer and, if
// non-nil, to file. Semantic tags are rendered for a TTY console and stripped
// everywhere else.
func NewLoggerTo(w io.Writer, isTTY bool, file io.Writer) *slog.Logger {
	replaceAttrConsole := func(groups []string, a slog.Attr) slog.Attr {
		switch a.Key {
		case slog.LevelKey:
			level, _ := a.Value.Any().(slog.Level)
			label := levelLabel(level)
			if isTTY {
				label = levelColor(level) + label + console.CodeReset
			}
			a.Value = slog.StringValue(label + "  ")
		case slog.MessageKey:
			msg := a.Value.String()
			if isTTY {
				msg = console.ToANSI(msg) + console.CodeReset
			} else {
				msg = console.Strip(msg)
			}
			a.Value = slog.StringValue(msg)
		}
		return a
	}

	handlers := []slog.Handler{
		tint.NewHandler(w, &tint.Options{
			Level:       LevelVar,
			TimeFormat:  "2006-01-02 15:04:05",
			NoColor:     !isTTY,
			ReplaceAttr: replaceAttrConsole,
		}),
	}

	if file != nil {
		replaceAttrFile := func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.LevelKey:
				level, _ := a.Value.Any().(slog.Level)
				a.Value = slog.StringValue(levelLabel(level) + "  ")
			case slog.MessageKey:
				a.Value = slog.StringValue(console.Strip(a.Value.String()))
			}
			return a
		}
		handlers = append(handlers, tint.NewHandler(file, &tint.Options{
			Level:       FileLevelVar,
			TimeFormat:  "2006-01-02 15:04:05",
			NoColor:     true,
			ReplaceAttr: replaceAttrFile,
		}))
	}

	return slog.New(&FanoutHandler{handlers: handlers})
}

// Cleanup closes the log file opened by NewLogger.
func Cleanup() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// FanoutHandler broadcasts records to multiple handlers
type FanoutHandler struct {
	handlers []slog.Handler
}

func (h *FanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *FanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, r.Level) {
			if err := handler.Handle(ctx, r.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

func (h *FanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &FanoutHandler{handlers: newHandlers}
}

func (h *FanoutHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &FanoutHandler{handlers: newHandlers}
}

func log(ctx context.Context, level slog.Level, msg string, args ...any) {
	h := slog.Default().Handler()
	if !h.Enabled(ctx, level) {
		return
	}

	if len(args) > 0 && strings.Contains(msg, "%") {
		msg = fmt.Sprintf(msg, args...)
		args = nil
	}

	now := time.Now()
	for i, line := range strings.Split(msg, "\n") {
		r := slog.NewRecord(now, level, line, 0)
		if i == 0 {
			r.Add(args...)
		}
		_ = h.Handle(ctx, r)
	}
}

func Trace(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelTrace, msg, args...)
}

func Debug(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelDebug, msg, args...)
}

func Info(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelInfo, msg, args...)
}

func Notice(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelNotice, msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelWarn, msg, args...)
}

func Error(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelError, msg, args...)
}

// Display prints user-facing output (not a log record) to Output.
func Display(ctx context.Context, msg string, args ...any) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	fmt.Fprintln(Output, console.Parse(msg))
}

// FatalNoTrace logs a message at FatalLevel and panics with FatalError so
// the main run loop can clean up before exiting.
func FatalNoTrace(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelFatal, msg, args...)
	panic(FatalError{})
}

// FatalError is a special error used to panic from Fatal logger calls
type FatalError struct{}
