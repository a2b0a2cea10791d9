package agent

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"

	"github.com/vovakirdan/arcade-gym/internal/core"
	"github.com/vovakirdan/arcade-gym/internal/env"
)

// ErrNoActFunction is returned when a script does not define act.
var ErrNoActFunction = errors.New("agent: lua script does not define act(obs)")

var obsFields = [env.ObservationSize]string{"ball_x", "ball_y", "ball_dx", "ball_dy", "paddle", "extra"}

// Lua is a policy written as a Lua script defining act(obs). obs is an
// array of the six observation values, also reachable by name (ball_x,
// ball_y, ball_dx, ball_dy, paddle, extra). act returns NONE, DECREASE or
// INCREASE. A Lua policy is not safe for concurrent use.
type Lua struct {
	vm     *lua.LState
	act    lua.LValue
	obs    *lua.LTable
	logger *log.Logger
	errs   int
}

// LoadLua runs the script at path.
func LoadLua(path string, logger *log.Logger) (*Lua, error) {
	return newLua(logger, func(vm *lua.LState) error { return vm.DoFile(path) }, path)
}

// NewLua runs a script held in memory.
func NewLua(source string, logger *log.Logger) (*Lua, error) {
	return newLua(logger, func(vm *lua.LState) error { return vm.DoString(source) }, "<inline>")
}

func newLua(logger *log.Logger, load func(*lua.LState) error, name string) (*Lua, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	vm := lua.NewState()
	vm.SetGlobal("NONE", lua.LNumber(core.ControlNone))
	vm.SetGlobal("DECREASE", lua.LNumber(core.ControlDecrease))
	vm.SetGlobal("INCREASE", lua.LNumber(core.ControlIncrease))
	vm.SetGlobal("OBS_SIZE", lua.LNumber(env.ObservationSize))

	if err := load(vm); err != nil {
		vm.Close()
		return nil, fmt.Errorf("agent: load %s: %w", name, err)
	}
	act := vm.GetGlobal("act")
	if act.Type() != lua.LTFunction {
		vm.Close()
		return nil, fmt.Errorf("%w (%s)", ErrNoActFunction, name)
	}
	logger.Debug("loaded lua policy", "script", name)
	return &Lua{vm: vm, act: act, obs: vm.NewTable(), logger: logger}, nil
}

// Act calls act(obs). Script errors and out-of-range results count as
// ControlNone and are logged.
func (p *Lua) Act(obs env.Observation) core.Control {
	for i, v := range obs {
		p.obs.RawSetInt(i+1, lua.LNumber(v))
		p.obs.RawSetString(obsFields[i], lua.LNumber(v))
	}

	if err := p.vm.CallByParam(lua.P{
		Fn:      p.act,
		NRet:    1,
		Protect: true,
	}, p.obs); err != nil {
		p.errs++
		p.logger.Error("lua act failed", "err", err, "errors", p.errs)
		return core.ControlNone
	}
	ret := p.vm.Get(-1)
	p.vm.Pop(1)

	n, ok := ret.(lua.LNumber)
	if !ok {
		p.errs++
		p.logger.Warn("lua act returned a non-number", "type", ret.Type().String())
		return core.ControlNone
	}
	c := core.Control(int(n))
	if !c.Valid() {
		p.errs++
		p.logger.Warn("lua act returned an unknown control", "value", float64(n))
		return core.ControlNone
	}
	return c
}

// Errors returns how many calls failed.
func (p *Lua) Errors() int { return p.errs }

// Close releases the Lua state.
func (p *Lua) Close() { p.vm.Close() }
