// Copyright 2015-2018 HenryLee. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rilbinder

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Logger interface
type Logger interface {
	// Level returns the logger's level.
	Level() string
	// SetLevel sets the logger's level.
	SetLevel(level string)
	// Printf formats according to a format specifier and writes to standard output.
	// It returns the number of bytes written and any write error encountered.
	Printf(format string, args ...interface{})
	// Fatalf is equivalent to Criticalf followed by a call to os.Exit(1).
	Fatalf(format string, args ...interface{})
	// Panicf is equivalent to Criticalf followed by a call to panic().
	Panicf(format string, args ...interface{})
	// Criticalf logs a message using CRITICAL as log level.
	Criticalf(format string, args ...interface{})
	// Errorf logs a message using ERROR as log level.
	Errorf(format string, args ...interface{})
	// Warnf logs a message using WARNING as log level.
	Warnf(format string, args ...interface{})
	// Noticef logs a message using NOTICE as log level.
	Noticef(format string, args ...interface{})
	// Infof logs a message using INFO as log level.
	Infof(format string, args ...interface{})
	// Debugf logs a message using DEBUG as log level.
	Debugf(format string, args ...interface{})
	// Tracef logs a message using TRACE as log level.
	Tracef(format string, args ...interface{})
}

// the default logger's level list, most severe first
var levelNames = []string{"PRINT", "CRITICAL", "ERROR", "WARNING", "NOTICE", "INFO", "DEBUG", "TRACE"}

const (
	levelPrint = iota
	levelCritical
	levelError
	levelWarning
	levelNotice
	levelInfo
	levelDebug
	levelTrace
)

var levelColors = []color.Attribute{
	color.FgWhite,
	color.FgMagenta,
	color.FgRed,
	color.FgYellow,
	color.FgGreen,
	color.FgWhite,
	color.FgCyan,
	color.FgBlue,
}

func levelOf(name string) (int, bool) {
	name = strings.ToUpper(name)
	for i, n := range levelNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

var (
	// global logger
	globalLogger Logger = newDefaultLogger("TRACE", os.Stderr)
)

type defaultLogger struct {
	mu    sync.RWMutex
	level int
	out   io.Writer
	tags  []string
}

// NewLogger returns a logger that writes
// "[2006/01/02 15:04:05.000] [LEVL] message <file:line>" lines to w.
// The level tag is coloured when w is a terminal.
func NewLogger(level string, w io.Writer) Logger {
	return newDefaultLogger(level, w)
}

func newDefaultLogger(level string, w io.Writer) *defaultLogger {
	l := &defaultLogger{out: w}
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	l.tags = make([]string, len(levelNames))
	for i, name := range levelNames {
		tag := name[:4]
		if tty {
			c := color.New(levelColors[i], color.Bold)
			c.EnableColor()
			tag = c.Sprint(tag)
		}
		l.tags[i] = tag
	}
	l.SetLevel(level)
	return l
}

// Level returns the logger's level.
func (l *defaultLogger) Level() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return levelNames[l.level]
}

// SetLevel sets the logger's level.
// Note:
// the default logger's level list: PRINT CRITICAL ERROR WARNING NOTICE INFO DEBUG TRACE
func (l *defaultLogger) SetLevel(level string) {
	lv, ok := levelOf(level)
	if !ok {
		panic("rilbinder: unknown log level: " + level)
	}
	l.mu.Lock()
	l.level = lv
	l.mu.Unlock()
}

func (l *defaultLogger) logf(lv int, format string, args []interface{}) {
	l.mu.RLock()
	enabled := lv <= l.level
	l.mu.RUnlock()
	if !enabled {
		return
	}
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(time.Now().Format("2006/01/02 15:04:05.000"))
	b.WriteString("] [")
	b.WriteString(l.tags[lv])
	b.WriteString("] ")
	fmt.Fprintf(&b, format, args...)
	b.WriteString(" <")
	b.WriteString(caller())
	b.WriteString(">\n")
	l.mu.Lock()
	io.WriteString(l.out, b.String())
	l.mu.Unlock()
}

// caller returns the first frame outside this file.
func caller() string {
	var pcs [16]uintptr
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if filepath.Base(f.File) != "log.go" || !strings.Contains(f.Function, "rilbinder") {
			return fmt.Sprintf("%s:%d", f.File, f.Line)
		}
		if !more {
			return "???"
		}
	}
}

func (l *defaultLogger) Printf(format string, args ...interface{}) {
	l.logf(levelPrint, format, args)
}

func (l *defaultLogger) Fatalf(format string, args ...interface{}) {
	l.logf(levelCritical, format, args)
	os.Exit(1)
}

func (l *defaultLogger) Panicf(format string, args ...interface{}) {
	l.logf(levelCritical, format, args)
	panic(fmt.Sprintf(format, args...))
}

func (l *defaultLogger) Criticalf(format string, args ...interface{}) {
	l.logf(levelCritical, format, args)
}

func (l *defaultLogger) Errorf(format string, args ...interface{}) {
	l.logf(levelError, format, args)
}

func (l *defaultLogger) Warnf(format string, args ...interface{}) {
	l.logf(levelWarning, format, args)
}

func (l *defaultLogger) Noticef(format string, args ...interface{}) {
	l.logf(levelNotice, format, args)
}

func (l *defaultLogger) Infof(format string, args ...interface{}) {
	l.logf(levelInfo, format, args)
}

func (l *defaultLogger) Debugf(format string, args ...interface{}) {
	l.logf(levelDebug, format, args)
}

func (l *defaultLogger) Tracef(format string, args ...interface{}) {
	l.logf(levelTrace, format, args)
}

// prefixLogger prepends a fixed prefix to every message of the global
// logger, such as "[slot1] ".
type prefixLogger struct {
	prefix string
}

func newPrefixLogger(prefix string) Logger {
	return &prefixLogger{prefix: prefix}
}

func (p *prefixLogger) Level() string { return globalLogger.Level() }
func (p *prefixLogger) SetLevel(level string) { globalLogger.SetLevel(level) }
func (p *prefixLogger) Printf(f string, a ...interface{}) { globalLogger.Printf(p.prefix+f, a...) }
func (p *prefixLogger) Fatalf(f string, a ...interface{}) { globalLogger.Fatalf(p.prefix+f, a...) }
func (p *prefixLogger) Panicf(f string, a ...interface{}) { globalLogger.Panicf(p.prefix+f, a...) }
func (p *prefixLogger) Criticalf(f string, a ...interface{}) { globalLogger.Criticalf(p.prefix+f, a...) }
func (p *prefixLogger) Errorf(f string, a ...interface{}) { globalLogger.Errorf(p.prefix+f, a...) }
func (p *prefixLogger) Warnf(f string, a ...interface{}) { globalLogger.Warnf(p.prefix+f, a...) }
func (p *prefixLogger) Noticef(f string, a ...interface{}) { globalLogger.Noticef(p.prefix+f, a...) }
func (p *prefixLogger) Infof(f string, a ...interface{}) { globalLogger.Infof(p.prefix+f, a...) }
func (p *prefixLogger) Debugf(f string, a ...interface{}) { globalLogger.Debugf(p.prefix+f, a...) }
func (p *prefixLogger) Tracef(f string, a ...interface{}) { globalLogger.Tracef(p.prefix+f, a...) }

// GetLogger gets global logger.
func GetLogger() Logger {
	return globalLogger
}

// SetLogger sets global logger.
// Note: Concurrent is not safe!
func SetLogger(logger Logger) {
	if logger == nil {
		return
	}
	globalLogger = logger
}

// GetLoggerLevel gets the logger's level.
func GetLoggerLevel() string {
	return globalLogger.Level()
}

// SetLoggerLevel sets the logger's level.
func SetLoggerLevel(level string) {
	globalLogger.SetLevel(level)
}

// Printf formats according to a format specifier and writes to standard output.
// It returns the number of bytes written and any write error encountered.
func Printf(format string, args ...interface{}) {
	globalLogger.Printf(format, args...)
}

// Fatalf is equivalent to l.Criticalf followed by a call to os.Exit(1).
func Fatalf(format string, args ...interface{}) {
	globalLogger.Fatalf(format, args...)
	os.Exit(1)
}

// Panicf is equivalent to l.Criticalf followed by a call to panic().
func Panicf(format string, args ...interface{}) {
	globalLogger.Panicf(format, args...)
}

// Criticalf logs a message using CRITICAL as log level.
func Criticalf(format string, args ...interface{}) {
	globalLogger.Criticalf(format, args...)
}

// Errorf logs a message using ERROR as log level.
func Errorf(format string, args ...interface{}) {
	globalLogger.Errorf(format, args...)
}

// Warnf logs a message using WARNING as log level.
func Warnf(format string, args ...interface{}) {
	globalLogger.Warnf(format, args...)
}

// Noticef logs a message using NOTICE as log level.
func Noticef(format string, args ...interface{}) {
	globalLogger.Noticef(format, args...)
}

// Infof logs a message using INFO as log level.
func Infof(format string, args ...interface{}) {
	globalLogger.Infof(format, args...)
}

// Debugf logs a message using DEBUG as log level.
func Debugf(format string, args ...interface{}) {
	globalLogger.Debugf(format, args...)
}

// Tracef logs a message using TRACE as log level.
func Tracef(format string, args ...interface{}) {
	globalLogger.Tracef(format, args...)
}
