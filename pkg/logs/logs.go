package logs

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

type Output string

const (
	Stdout Output = "stdout"
	Stderr Output = "stderr"
	File   Output = "file"
)

type Level int32

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelNotice
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = []string{"TRACE", "DEBUG", "INFO", "NOTICE", "WARN", "ERROR", "FATAL"}

// GetLevel parses a level name, falling back to INFO.
func GetLevel(level string) Level {
	upper := strings.ToUpper(strings.TrimSpace(level))
	for i, name := range levelNames {
		if name == upper {
			return Level(i)
		}
	}
	return LevelInfo
}

func (lv Level) String() string {
	if lv >= LevelTrace && lv <= LevelFatal {
		return levelNames[lv]
	}
	return fmt.Sprintf("?%d", lv)
}

type logIDKey struct{}

// WithLogID attaches a request log id to ctx. Ctx* functions print it.
func WithLogID(ctx context.Context, logID string) context.Context {
	return context.WithValue(ctx, logIDKey{}, logID)
}

// LogID returns the log id stored in ctx, or "".
func LogID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(logIDKey{}).(string)
	return id
}

type FormatLogger interface {
	Tracef(format string, v ...interface{})
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Noticef(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
	Fatalf(format string, v ...interface{})
}

type CtxLogger interface {
	CtxDebugf(ctx context.Context, format string, v ...interface{})
	CtxInfof(ctx context.Context, format string, v ...interface{})
	CtxWarnf(ctx context.Context, format string, v ...interface{})
	CtxErrorf(ctx context.Context, format string, v ...interface{})
}

type Control interface {
	SetLevel(Level)
	Level() Level
	SetOutput(io.Writer)
}

type FullLogger interface {
	FormatLogger
	CtxLogger
	Control
}

// ILog writes "[LEVEL] [log-id: x] message" lines through a std logger.
type ILog struct {
	stdLog *log.Logger
	level  atomic.Int32
}

func NewLogger(w io.Writer, lv Level) *ILog {
	l := &ILog{stdLog: log.New(w, "", log.LstdFlags|log.Lshortfile|log.Lmicroseconds)}
	l.level.Store(int32(lv))
	return l
}

func (il *ILog) SetOutput(w io.Writer) {
	il.stdLog.SetOutput(w)
}

func (il *ILog) SetLevel(lv Level) {
	il.level.Store(int32(lv))
}

func (il *ILog) Level() Level {
	return Level(il.level.Load())
}

func (il *ILog) output(ctx context.Context, lv Level, format string, v ...interface{}) {
	if il.Level() > lv {
		return
	}
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(lv.String())
	b.WriteString("] ")
	if id := LogID(ctx); id != "" {
		b.WriteString("[log-id: ")
		b.WriteString(id)
		b.WriteString("] ")
	}
	b.WriteString(fmt.Sprintf(format, v...))
	_ = il.stdLog.Output(4, b.String())
	if lv == LevelFatal {
		os.Exit(1)
	}
}

func (il *ILog) Tracef(format string, v ...interface{}) {
	il.output(context.Background(), LevelTrace, format, v...)
}

func (il *ILog) Debugf(format string, v ...interface{}) {
	il.output(context.Background(), LevelDebug, format, v...)
}

func (il *ILog) Infof(format string, v ...interface{}) {
	il.output(context.Background(), LevelInfo, format, v...)
}

func (il *ILog) Noticef(format string, v ...interface{}) {
	il.output(context.Background(), LevelNotice, format, v...)
}

func (il *ILog) Warnf(format string, v ...interface{}) {
	il.output(context.Background(), LevelWarn, format, v...)
}

func (il *ILog) Errorf(format string, v ...interface{}) {
	il.output(context.Background(), LevelError, format, v...)
}

func (il *ILog) Fatalf(format string, v ...interface{}) {
	il.output(context.Background(), LevelFatal, format, v...)
}

func (il *ILog) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	il.output(ctx, LevelDebug, format, v...)
}

func (il *ILog) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	il.output(ctx, LevelInfo, format, v...)
}

func (il *ILog) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	il.output(ctx, LevelWarn, format, v...)
}

func (il *ILog) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	il.output(ctx, LevelError, format, v...)
}
