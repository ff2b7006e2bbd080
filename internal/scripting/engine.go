package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/noszanou/tsparse/internal/data"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a gopher-lua VM holding user classification overrides.
// Every hook is optional: a missing function, a Lua error or a non-table
// result falls back to the heuristics table. Single-goroutine access only.
type Engine struct {
	vm       *lua.LState
	fallback data.Classifier
	log      *zap.Logger
}

var _ data.Classifier = (*Engine)(nil)

// NewEngine creates a Lua VM and loads every .lua file in scriptsDir in
// name order. A missing directory yields an engine with no hooks.
func NewEngine(scriptsDir string, fallback data.Classifier, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	// Set API version global
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, fallback: fallback, log: log}
	if scriptsDir != "" {
		if err := e.loadDir(scriptsDir); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load scripts: %w", err)
		}
	}
	return e, nil
}

// LoadString runs a chunk of Lua source, mostly for tests and inline overrides.
func (e *Engine) LoadString(src string) error {
	return e.vm.DoString(src)
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // no overrides
		}
		return err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// ClassifyMonster calls classify_monster{vnum, default={bonus, hostile, move}}.
func (e *Engine) ClassifyMonster(vnum int32) data.MonsterTraits {
	def := e.fallback.ClassifyMonster(vnum)

	d := e.vm.NewTable()
	d.RawSetString("bonus", lua.LBool(def.Bonus))
	d.RawSetString("hostile", lua.LBool(def.Hostile))
	d.RawSetString("move", lua.LBool(def.Move))

	rt := e.callTable("classify_monster", vnum, d)
	if rt == nil {
		return def
	}
	return data.MonsterTraits{
		Bonus:   lBool(rt, "bonus", def.Bonus),
		Hostile: lBool(rt, "hostile", def.Hostile),
		Move:    lBool(rt, "move", def.Move),
	}
}

// ClassifyNpc calls classify_npc{vnum, default={protected, move}}.
func (e *Engine) ClassifyNpc(vnum int32) data.NpcTraits {
	def := e.fallback.ClassifyNpc(vnum)

	d := e.vm.NewTable()
	d.RawSetString("protected", lua.LBool(def.Protected))
	d.RawSetString("move", lua.LBool(def.Move))

	rt := e.callTable("classify_npc", vnum, d)
	if rt == nil {
		return def
	}
	return data.NpcTraits{
		Protected: lBool(rt, "protected", def.Protected),
		Move:      lBool(rt, "move", def.Move),
	}
}

// ButtonVNums calls button_vnums{vnum, default={enabled, disabled}}.
func (e *Engine) ButtonVNums(observed int32) (int32, int32) {
	enabled, disabled := e.fallback.ButtonVNums(observed)

	d := e.vm.NewTable()
	d.RawSetString("enabled", lua.LNumber(enabled))
	d.RawSetString("disabled", lua.LNumber(disabled))

	rt := e.callTable("button_vnums", observed, d)
	if rt == nil {
		return enabled, disabled
	}
	return lInt32(rt, "enabled", enabled), lInt32(rt, "disabled", disabled)
}

// callTable calls name({vnum=..., default=...}) and returns its table
// result, or nil when the hook is absent or fails.
func (e *Engine) callTable(name string, vnum int32, def *lua.LTable) *lua.LTable {
	fn := e.vm.GetGlobal(name)
	if fn == lua.LNil {
		return nil
	}

	t := e.vm.NewTable()
	t.RawSetString("vnum", lua.LNumber(vnum))
	t.RawSetString("default", def)

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua hook error", zap.String("func", name), zap.Int32("vnum", vnum), zap.Error(err))
		return nil
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua hook returned non-table", zap.String("func", name), zap.Int32("vnum", vnum))
		return nil
	}
	return rt
}

// lBool reads a boolean field, keeping def when the field is nil.
func lBool(t *lua.LTable, key string, def bool) bool {
	v := t.RawGetString(key)
	if v == lua.LNil {
		return def
	}
	return lua.LVAsBool(v)
}

// lInt32 reads a numeric field, keeping def when the field is not a number.
func lInt32(t *lua.LTable, key string, def int32) int32 {
	n, ok := t.RawGetString(key).(lua.LNumber)
	if !ok {
		return def
	}
	return int32(n)
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
