// Package log defines a small two level logger (info and debug)
// shared by the Lua binding and the fixrun tool.
package log

import "io"
import "fmt"
import "sync"
import "errors"
import "strings"
import stdlog "log"

type Level int
const (
	InfoLevel  Level = iota // only Info* calls produce output
	DebugLevel              // both Info* and Debug* calls produce output
)

// Placed after the logger prefix on Debug* output.
const DebugPrefix = "DEBUG: "

var ErrUnknownLevel = errors.New("unknown log level")

// Parses "info" or "debug" (case insensitive).
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(name) {
	case "info", "" : return InfoLevel, nil
	case "debug": return DebugLevel, nil
	default:
		return InfoLevel, fmt.Errorf("%w %q", ErrUnknownLevel, name)
	}
}

func (self Level) String() string {
	switch self {
	case InfoLevel : return "info"
	case DebugLevel: return "debug"
	default:
		return "Level(" + fmt.Sprint(int(self)) + ")"
	}
}

// A logger with only two levels. Output errors are not returned
// on each call, but the last one can be retrieved with [Logger.Err]().
// Safe for concurrent use.
type Logger struct {
	logger *stdlog.Logger

	mutex sync.Mutex
	level Level
	err   error
}

// Creates a new logger at [InfoLevel]. The flags are the
// same as the standard library's log package.
func New(out io.Writer, prefix string, flags int) *Logger {
	return &Logger{ logger: stdlog.New(out, prefix, flags), level: InfoLevel }
}

// Returns a logger that writes nothing.
func Discard() *Logger {
	return New(io.Discard, "", 0)
}

func (self *Logger) output(msg string) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	self.err = self.logger.Output(3, msg)
}

func (self *Logger) debugOutput(msg string) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if self.level < DebugLevel { return }
	self.err = self.logger.Output(3, DebugPrefix + msg)
}

func (self *Logger) Info(v ...any) { self.output(fmt.Sprint(v...)) }
func (self *Logger) Infof(format string, v ...any) { self.output(fmt.Sprintf(format, v...)) }
func (self *Logger) Debug(v ...any) { self.debugOutput(fmt.Sprint(v...)) }
func (self *Logger) Debugf(format string, v ...any) { self.debugOutput(fmt.Sprintf(format, v...)) }

// Returns whether Debug* calls currently produce output. Useful
// to skip building expensive messages.
func (self *Logger) DebugEnabled() bool {
	return self.Level() >= DebugLevel
}

func (self *Logger) SetLevel(level Level) {
	self.mutex.Lock()
	self.level = level
	self.mutex.Unlock()
}

func (self *Logger) Level() Level {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.level
}

func (self *Logger) SetOutput(out io.Writer) {
	self.logger.SetOutput(out)
}

// Returns the error of the last write, if any.
func (self *Logger) Err() error {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.err
}
