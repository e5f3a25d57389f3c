// This file is part of cycle6502.
//
// cycle6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cycle6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cycle6502.  If not, see <https://www.gnu.org/licenses/>.

package script

import (
	"github.com/cycle6502/cycle6502/curated"
	"github.com/cycle6502/cycle6502/hardware/cpu"
	"github.com/cycle6502/cycle6502/hardware/memory/cpubus"
	"github.com/cycle6502/cycle6502/logger"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error patterns.
const (
	Break         = "script: break at ($%04x)"
	ScriptError   = "script: %v"
	MemoryMissing = "script: no memory attached"
)

// name of the function called by Observe()
const stepFunction = "step"

// Script is a Lua program that observes the CPU.
type Script struct {
	state *lua.LState
	mem   cpubus.Memory

	// the step() function defined by the script. will be nil if the script
	// didn't define one
	step *lua.LFunction
}

// NewScript loads and runs the Lua program in filename.
func NewScript(filename string) (*Script, error) {
	scr := newScript()
	if err := scr.state.DoFile(filename); err != nil {
		scr.Close()
		return nil, curated.Errorf(ScriptError, err)
	}
	scr.lookupStep()
	return scr, nil
}

// NewScriptFromString is the same as NewScript() except that the Lua program
// is supplied as a string.
func NewScriptFromString(src string) (*Script, error) {
	scr := newScript()
	if err := scr.state.DoString(src); err != nil {
		scr.Close()
		return nil, curated.Errorf(ScriptError, err)
	}
	scr.lookupStep()
	return scr, nil
}

func newScript() *Script {
	scr := &Script{
		state: lua.NewState(),
	}
	scr.state.SetGlobal("peek", scr.state.NewFunction(scr.peek))
	scr.state.SetGlobal("poke", scr.state.NewFunction(scr.poke))
	scr.state.SetGlobal("log", scr.state.NewFunction(scr.log))
	return scr
}

func (scr *Script) lookupStep() {
	if fn, ok := scr.state.GetGlobal(stepFunction).(*lua.LFunction); ok {
		scr.step = fn
	}
}

// Plumb attaches memory to the script. Required for peek() and poke().
func (scr *Script) Plumb(mem cpubus.Memory) {
	scr.mem = mem
}

// HasStep returns true if the script defines a step() function.
func (scr *Script) HasStep() bool {
	return scr.step != nil
}

// Close releases the resources used by the Lua interpreter. The Script should
// not be used after Close() has been called.
func (scr *Script) Close() {
	scr.state.Close()
}

// Observe implements the cpu.Observer interface.
func (scr *Script) Observe(mc *cpu.CPU) error {
	if scr.step == nil {
		return nil
	}

	err := scr.state.CallByParam(lua.P{
		Fn:      scr.step,
		NRet:    1,
		Protect: true,
	},
		lua.LNumber(mc.PC.Address()),
		lua.LNumber(mc.A.Value()),
		lua.LNumber(mc.X.Value()),
		lua.LNumber(mc.Y.Value()),
		lua.LNumber(mc.SP.Value()),
		lua.LNumber(mc.Status.Value()),
		lua.LNumber(mc.LastResult.Cycles),
	)
	if err != nil {
		return curated.Errorf(ScriptError, err)
	}

	ret := scr.state.Get(-1)
	scr.state.Pop(1)

	if lua.LVAsBool(ret) {
		return curated.Errorf(Break, mc.PC.Address())
	}

	return nil
}

func (scr *Script) address(L *lua.LState) uint16 {
	return uint16(L.CheckInt(1))
}

func (scr *Script) peek(L *lua.LState) int {
	if scr.mem == nil {
		L.RaiseError(MemoryMissing)
		return 0
	}
	L.Push(lua.LNumber(scr.mem.Read(scr.address(L))))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	if scr.mem == nil {
		L.RaiseError(MemoryMissing)
		return 0
	}
	scr.mem.Write(scr.address(L), uint8(L.CheckInt(2)))
	return 0
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}
