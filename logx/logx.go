// Package logx adds status-tagged helpers on top of log/slog.
//
//	log := logx.New(slog.Default())
//	log.OK("config loaded", "path", path)   // [ OK ] config loaded path=...
//	log.Skip("cache disabled")              // [SKIP] cache disabled
//	log.Fail("worker stopped", "err", err)  // [FAIL] worker stopped err=...
package logx

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

const (
	TagOK   = "\x1b[1;92m[ OK ]\x1b[0m "
	TagSkip = "\x1b[1;97m[SKIP]\x1b[0m "
	TagFail = "\x1b[1;91m[FAIL]\x1b[0m "
)

type Logger struct {
	*slog.Logger
}

// New wraps l. A nil l uses slog.Default().
func New(l *slog.Logger) *Logger {
	if l == nil {
		l = slog.Default()
	}
	return &Logger{Logger: l}
}

func (l *Logger) OK(msg string, args ...any) {
	l.tagged(slog.LevelInfo, TagOK, msg, args...)
}

func (l *Logger) OKDebug(msg string, args ...any) {
	l.tagged(slog.LevelDebug, TagOK, msg, args...)
}

func (l *Logger) Skip(msg string, args ...any) {
	l.tagged(slog.LevelInfo, TagSkip, msg, args...)
}

func (l *Logger) SkipWarn(msg string, args ...any) {
	l.tagged(slog.LevelWarn, TagSkip, msg, args...)
}

func (l *Logger) SkipDebug(msg string, args ...any) {
	l.tagged(slog.LevelDebug, TagSkip, msg, args...)
}

func (l *Logger) Fail(msg string, args ...any) {
	l.tagged(slog.LevelError, TagFail, msg, args...)
}

// tagged must be called directly from an exported method so the record's
// source is the method's caller.
func (l *Logger) tagged(level slog.Level, tag, msg string, args ...any) {
	ctx := context.Background()
	if !l.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // skip Callers, tagged, and the exported method
	r := slog.NewRecord(time.Now(), level, tag+msg, pcs[0])
	r.Add(args...)
	_ = l.Handler().Handle(ctx, r)
}
