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

package script_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cycle6502/cycle6502/curated"
	"github.com/cycle6502/cycle6502/hardware/cpu"
	"github.com/cycle6502/cycle6502/hardware/memory"
	"github.com/cycle6502/cycle6502/script"
	"github.com/cycle6502/cycle6502/test"
)

func setup() (*cpu.CPU, *memory.Memory) {
	mem := memory.NewMemory()
	mc := cpu.NewCPU(cpu.MOS6502)
	mc.Reset(mem)

	// LDA #$01; LDX #$02; INX; NOP
	for i, b := range []uint8{0xa9, 0x01, 0xa2, 0x02, 0xe8, 0xea} {
		mem.Write(0x1000+uint16(i), b)
	}
	mc.LoadPC(0x1000)
	return mc, mem
}

func TestBreak(t *testing.T) {
	mc, mem := setup()

	scr, err := script.NewScriptFromString(`
function step(pc, a, x, y, sp, p, cycles)
	return x == 3
end`)
	test.DemandSuccess(t, err)
	defer scr.Close()
	test.ExpectEquality(t, scr.HasStep(), true)

	mc.SetObserver(scr)
	n, err := mc.Execute(100, mem)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, script.Break), true)
	test.ExpectEquality(t, err.Error(), "script: break at ($1005)")
	test.ExpectEquality(t, n, 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1005))
}

func TestPeekPoke(t *testing.T) {
	mc, mem := setup()

	scr, err := script.NewScriptFromString(`
function step(pc, a, x, y, sp, p, cycles)
	poke(0x0200, peek(0x1000))
	poke(0x0201, cycles)
	poke(0x0202, a)
	poke(0x0203, sp)
end`)
	test.DemandSuccess(t, err)
	defer scr.Close()
	scr.Plumb(mem)

	mc.SetObserver(scr)
	_, err = mc.Execute(2, mem)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mem.Read(0x0200), uint8(0xa9))
	test.ExpectEquality(t, mem.Read(0x0201), uint8(2))
	test.ExpectEquality(t, mem.Read(0x0202), uint8(1))
	test.ExpectEquality(t, mem.Read(0x0203), uint8(0xff))
}

func TestMemoryMissing(t *testing.T) {
	mc, mem := setup()

	scr, err := script.NewScriptFromString(`
function step()
	return peek(0) == 0
end`)
	test.DemandSuccess(t, err)
	defer scr.Close()

	mc.SetObserver(scr)
	_, err = mc.Execute(2, mem)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, script.ScriptError), true)
}

func TestNoStep(t *testing.T) {
	mc, mem := setup()

	scr, err := script.NewScriptFromString(`x = 10`)
	test.DemandSuccess(t, err)
	defer scr.Close()
	test.ExpectEquality(t, scr.HasStep(), false)

	mc.SetObserver(scr)
	_, err = mc.Execute(8, mem)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mc.X.Value(), uint8(3))
}

func TestSyntaxError(t *testing.T) {
	_, err := script.NewScriptFromString(`function step(`)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, script.ScriptError), true)
}

func TestScriptFile(t *testing.T) {
	_, err := script.NewScript(filepath.Join(t.TempDir(), "missing.lua"))
	test.ExpectFailure(t, err)

	fn := filepath.Join(t.TempDir(), "break.lua")
	err = os.WriteFile(fn, []byte("function step(pc) return pc == 0x1002 end\n"), 0o644)
	test.DemandSuccess(t, err)

	scr, err := script.NewScript(fn)
	test.DemandSuccess(t, err)
	defer scr.Close()

	mc, mem := setup()
	mc.SetObserver(scr)
	_, err = mc.Execute(100, mem)
	test.ExpectEquality(t, curated.Is(err, script.Break), true)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1002))
}
