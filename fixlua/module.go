// Package fixlua exposes [fixmath.Fixed] values to Lua scripts
// running on gopher-lua.
//
// The module is loaded with require "fixed". Values are userdata
// with arithmetic and comparison metamethods, so scripts can write
// regular expressions like a*b + c once the operands are fixed
// values:
//
//	local fixed = require "fixed"
//	local speed = fixed.new("1.5")
//	local x = speed * fixed.cos(fixed.PI / 3)
//	fixed.emit("x", x)
//
// Plain Lua numbers and strings are accepted wherever a fixed value
// is expected, and converted with [fixmath.FromFloat64]() and
// [fixmath.Parse]() respectively. Division by zero, invalid strings
// and other errors are raised as Lua errors.
package fixlua

import "sync"

import "github.com/golang/groupcache/lru"
import lua "github.com/yuin/gopher-lua"

import "github.com/tinne26/fixmath"
import "github.com/tinne26/fixmath/internal/log"

// Name used with require.
const ModuleName = "fixed"

// Name of the type metatable for fixed values.
const TypeName = "fixed.value"

// Default number of parsed string literals kept in the cache.
const DefaultCacheSize = 64

//go:generate mockgen -destination=./mock/mock_output.go -package=mock_fixlua . Output

// Receives the values passed to fixed.emit() by scripts.
type Output interface {
	Emit(label string, value fixmath.Fixed) error
}

// Holds the Go side state of the module: logger, output and the
// cache of parsed string literals. A single module can be shared
// by multiple Lua states.
type Module struct {
	logger *log.Logger
	output Output

	mutex sync.Mutex
	cache *lru.Cache // string -> fixmath.Fixed, under mutex
}

type Option func(*Module)

// Sets the logger for module load and cache traces (debug level).
func WithLogger(logger *log.Logger) Option {
	return func(module *Module) { module.logger = logger }
}

// Sets the size of the string literal cache. Non positive sizes
// use [DefaultCacheSize].
func WithCacheSize(size int) Option {
	return func(module *Module) {
		if size <= 0 { size = DefaultCacheSize }
		module.cache = lru.New(size)
	}
}

// Sets the destination of fixed.emit(). Without an output,
// emit raises an error.
func WithOutput(output Output) Option {
	return func(module *Module) { module.output = output }
}

func New(opts ...Option) *Module {
	module := &Module{
		logger: log.Discard(),
		cache: lru.New(DefaultCacheSize),
	}
	for _, opt := range opts { opt(module) }
	return module
}

// Creates a module with the given options and preloads it into the
// Lua state, so scripts can require it.
func Open(L *lua.LState, opts ...Option) *Module {
	module := New(opts...)
	L.PreloadModule(ModuleName, module.Loader)
	return module
}

// Implements [lua.LGFunction]: pushes the module table.
func (self *Module) Loader(L *lua.LState) int {
	registerType(L, self)

	mod := L.SetFuncs(L.NewTable(), self.exports())
	for name, value := range map[string]fixmath.Fixed{
		"PI": fixmath.Pi, "HALF_PI": fixmath.HalfPi, "TWO_PI": fixmath.TwoPi,
		"ONE": fixmath.One, "ZERO": fixmath.Zero,
		"MAX": fixmath.MaxFixed, "MIN": fixmath.MinFixed,
	}{
		mod.RawSetString(name, NewValue(L, value))
	}
	L.Push(mod)
	self.logger.Debugf("fixlua: module %q loaded", ModuleName)
	return 1
}

// Parses the text with [fixmath.Parse](), memoizing successful
// results. Safe for concurrent use.
func (self *Module) Parse(text string) (fixmath.Fixed, error) {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if value, found := self.cache.Get(text); found {
		return value.(fixmath.Fixed), nil
	}

	self.logger.Debugf("fixlua: cache miss for %q", text)
	value, err := fixmath.Parse(text)
	if err != nil { return 0, err }
	self.cache.Add(text, value)
	return value, nil
}

// Returns the number of cached string literals.
func (self *Module) CacheLen() int {
	self.mutex.Lock()
	defer self.mutex.Unlock()
	return self.cache.Len()
}
