package main

import "fmt"
import "context"
import "strings"

import lua "github.com/yuin/gopher-lua"

import "github.com/tinne26/fixmath"
import "github.com/tinne26/fixmath/fixlua"
import "github.com/tinne26/fixmath/internal/log"

// A labeled value produced by a script run.
type Entry struct {
	Label string `codec:"label"`
	Raw   int32  `codec:"raw"`
	Text  string `codec:"text"`
}

func newEntry(label string, value fixmath.Fixed) Entry {
	return Entry{ Label: label, Raw: value.Raw(), Text: value.String() }
}

func (self Entry) Value() fixmath.Fixed { return fixmath.FromRaw(self.Raw) }

// Implements fixlua.Output by collecting entries in order.
type collector struct {
	entries []Entry
}

func (self *collector) Emit(label string, value fixmath.Fixed) error {
	self.entries = append(self.entries, newEntry(label, value))
	return nil
}

// Runs the Lua source with the fixed module available, and returns
// the emitted values followed by any fixed values returned by the
// chunk (labeled "return #1", "return #2", ...). Plain Lua numbers
// returned are converted to fixed values.
func runScript(ctx context.Context, name, source string, config Config, logger *log.Logger) ([]Entry, error) {
	L := lua.NewState()
	defer L.Close()
	L.SetContext(ctx)

	output := &collector{}
	fixlua.Open(L, fixlua.WithOutput(output), fixlua.WithLogger(logger), fixlua.WithCacheSize(config.CacheSize))

	fn, err := L.Load(strings.NewReader(source), name)
	if err != nil { return nil, fmt.Errorf("loading %s: %w", name, err) }
	L.Push(fn)
	err = L.PCall(0, lua.MultRet, nil)
	if err != nil { return nil, fmt.Errorf("running %s: %w", name, err) }

	returned := L.GetTop()
	for i := 1; i <= returned; i++ {
		label := fmt.Sprintf("return #%d", i)
		lv := L.Get(i)
		if value, ok := fixlua.ToFixed(lv); ok {
			output.entries = append(output.entries, newEntry(label, value))
		} else if number, ok := lv.(lua.LNumber); ok {
			value := fixmath.FromFloat64(float64(number))
			output.entries = append(output.entries, newEntry(label, value))
		} else {
			logger.Debugf("%s: ignoring returned %s", name, lv.Type())
		}
	}
	logger.Debugf("%s: %d values", name, len(output.entries))
	return output.entries, nil
}
