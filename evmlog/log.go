// Copyright 2014 The go-probeum Authors
// This file is part of the go-probeum library.
//
// The go-probeum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-probeum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-probeum library. If not, see <http://www.gnu.org/licenses/>.

// Package evmlog is a small leveled, key/value logger used by the
// interpreter to report execution lifecycle events (Execute entry, CALL
// sub-frames, failed halts). It is observational only: nothing it does
// influences interpreter semantics.
package evmlog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-stack/stack"
)

// Lvl is a log priority level.
type Lvl int

const (
	LvlCrit Lvl = iota
	LvlError
	LvlWarn
	LvlInfo
	LvlDebug
)

func (l Lvl) String() string {
	switch l {
	case LvlCrit:
		return "crit"
	case LvlError:
		return "error"
	case LvlWarn:
		return "warn"
	case LvlInfo:
		return "info"
	case LvlDebug:
		return "debug"
	default:
		return "unknown"
	}
}

const skipCallDepth = 2

// A Logger writes key/value pairs to a Handler.
type Logger interface {
	// New returns a new Logger that has this logger's context plus the given context.
	New(ctx ...interface{}) Logger

	Debug(msg string, ctx ...interface{})
	Info(msg string, ctx ...interface{})
	Warn(msg string, ctx ...interface{})
	Error(msg string, ctx ...interface{})
	Crit(msg string, ctx ...interface{})
}

// Record is a single log event.
type Record struct {
	Time  time.Time
	Lvl   Lvl
	Msg   string
	Ctx   []interface{}
	Call  stack.Call
}

type logger struct {
	ctx []interface{}
}

func (l *logger) New(ctx ...interface{}) Logger {
	normalized := normalize(ctx)
	child := make([]interface{}, len(l.ctx)+len(normalized))
	n := copy(child, l.ctx)
	copy(child[n:], normalized)
	return &logger{ctx: child}
}

func (l *logger) write(msg string, lvl Lvl, ctx []interface{}) {
	r := &Record{
		Time: time.Now(),
		Lvl:  lvl,
		Msg:  msg,
		Ctx:  newContext(l.ctx, ctx),
		Call: stack.Caller(skipCallDepth),
	}
	root.handler.Log(r)
}

func (l *logger) Debug(msg string, ctx ...interface{}) { l.write(msg, LvlDebug, ctx) }
func (l *logger) Info(msg string, ctx ...interface{})  { l.write(msg, LvlInfo, ctx) }
func (l *logger) Warn(msg string, ctx ...interface{})  { l.write(msg, LvlWarn, ctx) }
func (l *logger) Error(msg string, ctx ...interface{}) { l.write(msg, LvlError, ctx) }
func (l *logger) Crit(msg string, ctx ...interface{}) {
	l.write(msg, LvlCrit, ctx)
	os.Exit(1)
}

func newContext(prefix []interface{}, suffix []interface{}) []interface{} {
	normalizedSuffix := normalize(suffix)
	newCtx := make([]interface{}, len(prefix)+len(normalizedSuffix))
	n := copy(newCtx, prefix)
	copy(newCtx[n:], normalizedSuffix)
	return newCtx
}

func normalize(ctx []interface{}) []interface{} {
	if len(ctx)%2 != 0 {
		ctx = append(ctx, nil, "!MISSING VALUE")
	}
	return ctx
}

// Handler receives completed log records and does something with them,
// such as writing them to a stream.
type Handler interface {
	Log(r *Record) error
}

// root is the package-wide default logger instance.
var root = &rootLogger{logger: &logger{}, handler: StreamHandler(os.Stderr, TerminalFormat())}

type rootLogger struct {
	*logger
	mu      sync.Mutex
	handler Handler
}

// Root returns the root logger.
func Root() Logger { return root }

// SetHandler updates the root logger's handler.
func SetHandler(h Handler) {
	root.mu.Lock()
	defer root.mu.Unlock()
	root.handler = h
}

// New returns a new Logger that has the root's context plus the given context.
func New(ctx ...interface{}) Logger { return root.New(ctx...) }

func Debug(msg string, ctx ...interface{}) { root.write(msg, LvlDebug, ctx) }
func Info(msg string, ctx ...interface{})  { root.write(msg, LvlInfo, ctx) }
func Warn(msg string, ctx ...interface{})  { root.write(msg, LvlWarn, ctx) }
func Error(msg string, ctx ...interface{}) { root.write(msg, LvlError, ctx) }
func Crit(msg string, ctx ...interface{}) {
	root.write(msg, LvlCrit, ctx)
	os.Exit(1)
}

// FuncHandler returns a Handler that logs records to the given function.
func FuncHandler(fn func(r *Record) error) Handler {
	return funcHandler(fn)
}

type funcHandler func(r *Record) error

func (h funcHandler) Log(r *Record) error { return h(r) }

// StreamHandler writes log records to the given io.Writer with the given format.
func StreamHandler(wr io.Writer, fmtr Format) Handler {
	h := FuncHandler(func(r *Record) error {
		_, err := wr.Write(fmtr.Format(r))
		return err
	})
	return syncHandler(h)
}

func syncHandler(h Handler) Handler {
	var mu sync.Mutex
	return FuncHandler(func(r *Record) error {
		mu.Lock()
		defer mu.Unlock()
		return h.Log(r)
	})
}

// DiscardHandler discards every log record it receives.
func DiscardHandler() Handler {
	return FuncHandler(func(r *Record) error { return nil })
}

// Format turns a Record into bytes.
type Format interface {
	Format(r *Record) []byte
}

type formatFunc func(*Record) []byte

func (f formatFunc) Format(r *Record) []byte { return f(r) }

// TerminalFormat renders records the way they'd appear scrolling by on a
// developer's terminal: "LVL[timestamp] msg k=v k=v ...".
func TerminalFormat() Format {
	return formatFunc(func(r *Record) []byte {
		b := []byte(fmt.Sprintf("%s[%s] %s", r.Lvl.String(), r.Time.Format("01-02|15:04:05.000"), r.Msg))
		for i := 0; i < len(r.Ctx); i += 2 {
			b = append(b, ' ')
			b = append(b, fmt.Sprintf("%v=%v", r.Ctx[i], r.Ctx[i+1])...)
		}
		b = append(b, '\n')
		return b
	})
}
