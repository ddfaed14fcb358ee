package fixlua

import "fmt"

import lua "github.com/yuin/gopher-lua"

import "github.com/tinne26/fixmath"

// Creates a fixed userdata value with the module's metatable.
// The module must have been loaded on the given state.
func NewValue(L *lua.LState, value fixmath.Fixed) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = value
	ud.Metatable = L.GetTypeMetatable(TypeName)
	return ud
}

// Pushes a fixed value onto the stack.
func Push(L *lua.LState, value fixmath.Fixed) {
	L.Push(NewValue(L, value))
}

// Returns the fixed value held by the given Lua value, if any.
// Only userdata created by this package is accepted, numbers and
// strings are not converted.
func ToFixed(lv lua.LValue) (fixmath.Fixed, bool) {
	ud, ok := lv.(*lua.LUserData)
	if !ok { return 0, false }
	value, ok := ud.Value.(fixmath.Fixed)
	return value, ok
}

// Converts the argument at the given position, accepting fixed
// values, numbers and numeric strings. Raises an argument error
// otherwise.
func (self *Module) check(L *lua.LState, pos int) fixmath.Fixed {
	switch lv := L.CheckAny(pos).(type) {
	case lua.LNumber:
		return fixmath.FromFloat64(float64(lv))
	case lua.LString:
		value, err := self.Parse(string(lv))
		if err != nil { L.ArgError(pos, err.Error()) }
		return value
	case *lua.LUserData:
		value, ok := lv.Value.(fixmath.Fixed)
		if !ok { L.ArgError(pos, "fixed value expected, got foreign userdata") }
		return value
	default:
		L.ArgError(pos, "fixed value expected, got " + lv.Type().String())
		return 0
	}
}

// Raises err as a Lua error if not nil, otherwise pushes value.
func pushResult(L *lua.LState, value fixmath.Fixed, err error) int {
	if err != nil { L.RaiseError("%s", err.Error()) }
	Push(L, value)
	return 1
}

func registerType(L *lua.LState, module *Module) {
	mt := L.NewTypeMetatable(TypeName)
	L.SetFuncs(mt, map[string]lua.LGFunction{
		"__add": module.binary(fixmath.Fixed.Add),
		"__sub": module.binary(fixmath.Fixed.Sub),
		"__mul": module.binary(fixmath.Fixed.Mul),
		"__div": module.luaDiv,
		"__mod": module.luaFloorMod,
		"__unm": module.unary(fixmath.Fixed.Neg),
		"__eq" : module.compare(fixmath.Fixed.Equals),
		"__lt" : module.compare(fixmath.Fixed.LessThan),
		"__le" : module.compare(fixmath.Fixed.LessThanOrEqual),
		"__tostring": module.luaToString,
	})

	// methods, so scripts can also write value:floor()
	mt.RawSetString("__index", L.SetFuncs(L.NewTable(), module.exports()))
	mt.RawSetString("__metatable", lua.LString(TypeName))
}

func (self *Module) exports() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"new": self.luaNew,
		"raw": luaFromRaw,
		"toraw": self.luaToRaw,
		"tonumber": self.luaToNumber,
		"tostring": self.luaToString,
		"floor": self.unary(fixmath.Fixed.Floor),
		"ceil" : self.unary(fixmath.Fixed.Ceil),
		"round": self.unary(fixmath.Fixed.Round),
		"abs"  : self.unary(fixmath.Fixed.Abs),
		"sign" : self.unary(fixmath.Fixed.Sign),
		"mod"  : self.unary(fixmath.Fixed.Mod),
		"sqrt" : self.luaSqrt,
		"sin"  : self.unary(fixmath.Fixed.Sin),
		"cos"  : self.unary(fixmath.Fixed.Cos),
		"tan"  : self.unary(fixmath.Fixed.Tan),
		"atan2": self.binary(fixmath.Atan2),
		"deg"  : self.unary(fixmath.Fixed.ToDegrees),
		"rad"  : self.unary(fixmath.Fixed.ToRadians),
		"min"  : self.fold(fixmath.Fixed.Min),
		"max"  : self.fold(fixmath.Fixed.Max),
		"emit" : self.luaEmit,
	}
}

func (self *Module) unary(fn func(fixmath.Fixed) fixmath.Fixed) lua.LGFunction {
	return func(L *lua.LState) int {
		Push(L, fn(self.check(L, 1)))
		return 1
	}
}

func (self *Module) binary(fn func(a, b fixmath.Fixed) fixmath.Fixed) lua.LGFunction {
	return func(L *lua.LState) int {
		Push(L, fn(self.check(L, 1), self.check(L, 2)))
		return 1
	}
}

func (self *Module) compare(fn func(a, b fixmath.Fixed) bool) lua.LGFunction {
	return func(L *lua.LState) int {
		L.Push(lua.LBool(fn(self.check(L, 1), self.check(L, 2))))
		return 1
	}
}

// Applies fn over all the arguments (one at least).
func (self *Module) fold(fn func(a, b fixmath.Fixed) fixmath.Fixed) lua.LGFunction {
	return func(L *lua.LState) int {
		result := self.check(L, 1)
		for i := 2; i <= L.GetTop(); i++ {
			result = fn(result, self.check(L, i))
		}
		Push(L, result)
		return 1
	}
}

// fixed.new(x): x can be a number, a string or a fixed value.
func (self *Module) luaNew(L *lua.LState) int {
	Push(L, self.check(L, 1))
	return 1
}

// fixed.raw(i): creates a value from its raw int32 representation.
func luaFromRaw(L *lua.LState) int {
	raw := L.CheckInt64(1)
	if raw < int64(fixmath.MinFixed) || raw > int64(fixmath.MaxFixed) {
		L.ArgError(1, fmt.Sprintf("raw value %d out of int32 range", raw))
	}
	Push(L, fixmath.FromRaw(int32(raw)))
	return 1
}

func (self *Module) luaToRaw(L *lua.LState) int {
	L.Push(lua.LNumber(self.check(L, 1).Raw()))
	return 1
}

func (self *Module) luaToNumber(L *lua.LState) int {
	L.Push(lua.LNumber(self.check(L, 1).ToFloat64()))
	return 1
}

func (self *Module) luaToString(L *lua.LState) int {
	L.Push(lua.LString(self.check(L, 1).String()))
	return 1
}

func (self *Module) luaDiv(L *lua.LState) int {
	value, err := self.check(L, 1).Div(self.check(L, 2))
	return pushResult(L, value, err)
}

// Lua's a % b: the result has the sign of b, unlike [fixmath.Fixed.Rem]().
func (self *Module) luaFloorMod(L *lua.LState) int {
	a, b := self.check(L, 1), self.check(L, 2)
	rem, err := a.Rem(b)
	if err == nil && rem != 0 && (rem < 0) != (b < 0) {
		rem = rem.Add(b)
	}
	return pushResult(L, rem, err)
}

func (self *Module) luaSqrt(L *lua.LState) int {
	value, err := self.check(L, 1).Sqrt()
	return pushResult(L, value, err)
}

// fixed.emit(label, value): sends the value to the module output.
func (self *Module) luaEmit(L *lua.LState) int {
	label := L.CheckString(1)
	value := self.check(L, 2)
	if self.output == nil { L.RaiseError("fixed.emit: no output configured") }
	err := self.output.Emit(label, value)
	if err != nil { L.RaiseError("fixed.emit: %s", err.Error()) }
	return 0
}
