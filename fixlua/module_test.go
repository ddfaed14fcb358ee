package fixlua

import "bytes"
import "errors"
import "strings"
import "testing"

import "github.com/golang/mock/gomock"
import lua "github.com/yuin/gopher-lua"

import "github.com/tinne26/fixmath"
import "github.com/tinne26/fixmath/internal/log"
import mock_fixlua "github.com/tinne26/fixmath/fixlua/mock"

func newState(t *testing.T, opts ...Option) (*lua.LState, *Module) {
	t.Helper()
	L := lua.NewState()
	t.Cleanup(L.Close)
	return L, Open(L, opts...)
}

// Runs the script and returns its single return value.
func eval(t *testing.T, L *lua.LState, script string) lua.LValue {
	t.Helper()
	err := L.DoString("local fixed = require 'fixed'\n" + script)
	if err != nil { t.Fatalf("script failed: %s\n%s", err, script) }
	value := L.Get(-1)
	L.Pop(1)
	return value
}

func TestScriptArithmetic(t *testing.T) {
	L, _ := newState(t)
	tests := []struct {
		script string
		out    fixmath.Fixed
	}{
		{"return fixed.new(1.5) + fixed.new('2.25')", fixmath.FromFloat64(3.75)},
		{"return fixed.new(1) - 3", fixmath.FromInt(-2)},
		{"return 2 * fixed.new('0.5')", fixmath.One},
		{"return fixed.ONE / 3", 21845},
		{"return -fixed.new(4)", fixmath.FromInt(-4)},
		{"return fixed.new(-7) % 3", fixmath.FromInt(2)},
		{"return fixed.new(7) % -3", fixmath.FromInt(-2)},
		{"return fixed.new(1000) * 1000", fixmath.MaxFixed},
		{"return fixed.MAX + fixed.ONE", fixmath.MaxFixed},
		{"return fixed.raw(1)", 1},
		{"return fixed.new('-2.5'):round()", fixmath.FromInt(-3)},
		{"return fixed.floor(-0.5)", -fixmath.One},
		{"return fixed.mod(-0.25)", fixmath.FromFloat64(0.75)},
		{"return fixed.sqrt(2)", 92682},
		{"return fixed.sin(fixed.HALF_PI)", fixmath.One},
		{"return fixed.atan2(1, 1)", 51472},
		{"return fixed.rad(180)", fixmath.Pi},
		{"return fixed.min(3, fixed.new(-1), '2')", -fixmath.One},
		{"return fixed.max(3, fixed.new(-1), '2')", fixmath.FromInt(3)},
		{"return fixed.sign(fixed.new(-8))", -fixmath.One},
	}

	for i, test := range tests {
		value, ok := ToFixed(eval(t, L, test.script))
		if !ok { t.Fatalf("test #%d: %q didn't return a fixed value", i, test.script) }
		if value != test.out {
			str := "test #%d: %q expected %d (%s), but got %d (%s)"
			t.Fatalf(str, i, test.script, test.out, test.out, value, value)
		}
	}
}

func TestScriptConversions(t *testing.T) {
	L, _ := newState(t)
	tests := []struct {
		script string
		out    lua.LValue
	}{
		{"return tostring(fixed.new(0.1))", lua.LString("0.1")},
		{"return fixed.tostring(fixed.PI)", lua.LString("3.14159")},
		{"return fixed.tonumber(fixed.new('1.5'))", lua.LNumber(1.5)},
		{"return fixed.toraw(fixed.ONE)", lua.LNumber(65536)},
		{"return fixed.new(2) == fixed.new('2')", lua.LTrue},
		{"return fixed.new(2) ~= fixed.new(3)", lua.LTrue},
		{"return fixed.new(2) < fixed.new(3)", lua.LTrue},
		{"return fixed.new(3) <= fixed.new(3)", lua.LTrue},
		{"return fixed.new(4) > fixed.new(3)", lua.LTrue},
		{"return fixed.new(0.5):tonumber()", lua.LNumber(0.5)},
	}

	for i, test := range tests {
		out := eval(t, L, test.script)
		if out != test.out {
			str := "test #%d: %q expected %v, but got %v"
			t.Fatalf(str, i, test.script, test.out, out)
		}
	}
}

func TestScriptErrors(t *testing.T) {
	L, _ := newState(t)
	tests := []struct {
		script string
		errStr string
	}{
		{"return fixed.new(1) / 0", fixmath.ErrDivisionByZero.Error()},
		{"return fixed.new(1) % 0", fixmath.ErrDivisionByZero.Error()},
		{"return fixed.new('1e3')", "invalid syntax"},
		{"return fixed.new('40000')", "value out of range"},
		{"return fixed.new({})", "fixed value expected"},
		{"return fixed.sqrt(-1)", fixmath.ErrNegativeSqrt.Error()},
		{"return fixed.raw(4294967296)", "out of int32 range"},
		{"fixed.emit('x', 1)", "no output configured"},
	}

	for i, test := range tests {
		err := L.DoString("local fixed = require 'fixed'\n" + test.script)
		if err == nil || !strings.Contains(err.Error(), test.errStr) {
			str := "test #%d: %q expected error containing %q, but got %v"
			t.Fatalf(str, i, test.script, test.errStr, err)
		}
		L.SetTop(0)
	}
}

func TestEmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	output := mock_fixlua.NewMockOutput(ctrl)
	gomock.InOrder(
		output.EXPECT().Emit("x", fixmath.FromFloat64(0.75)).Return(nil),
		output.EXPECT().Emit("y", fixmath.Pi).Return(nil),
	)

	L, _ := newState(t, WithOutput(output))
	err := L.DoString(`
		local fixed = require "fixed"
		fixed.emit("x", fixed.new("1.5") * 0.5)
		fixed.emit("y", fixed.PI)
	`)
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	failing := mock_fixlua.NewMockOutput(ctrl)
	failing.EXPECT().Emit(gomock.Any(), gomock.Any()).Times(1).Return(errors.New("disk full"))
	L, _ = newState(t, WithOutput(failing))
	err = L.DoString(`require("fixed").emit("z", 1)`)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected emit error, got %v", err)
	}
}

func TestLiteralCache(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := log.New(buffer, "", 0)
	logger.SetLevel(log.DebugLevel)
	L, module := newState(t, WithCacheSize(2), WithLogger(logger))

	eval(t, L, "return fixed.new('1.5') + '1.5' + '2.5'")
	if module.CacheLen() != 2 {
		t.Fatalf("expected 2 cached literals, got %d", module.CacheLen())
	}
	if strings.Count(buffer.String(), "cache miss") != 2 {
		t.Fatalf("expected 2 cache misses, log:\n%s", buffer.String())
	}

	eval(t, L, "return fixed.new('3.5')") // evicts "1.5"
	if module.CacheLen() != 2 {
		t.Fatalf("expected cache to stay at 2 entries, got %d", module.CacheLen())
	}
	_, err := module.Parse("bad")
	if err == nil { t.Fatal("expected parse error") }
	if module.CacheLen() != 2 { t.Fatal("errors should not be cached") }
	if !strings.Contains(buffer.String(), `module "fixed" loaded`) {
		t.Fatalf("expected load trace, log:\n%s", buffer.String())
	}
}

func TestGoInterop(t *testing.T) {
	L, _ := newState(t)
	eval(t, L, "return 0") // loads the type metatable
	Push(L, fixmath.FromInt(21))
	L.SetGlobal("answer", L.Get(-1))
	L.Pop(1)

	value, ok := ToFixed(eval(t, L, "return answer * 2"))
	if !ok || value != fixmath.FromInt(42) {
		t.Fatalf("expected 42, got %s (%v)", value, ok)
	}
	if _, ok := ToFixed(lua.LNumber(1)); ok {
		t.Fatal("numbers should not be reported as fixed values")
	}
}
