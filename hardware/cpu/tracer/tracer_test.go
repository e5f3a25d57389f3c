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

package tracer_test

import (
	"strings"
	"testing"

	"github.com/cycle6502/cycle6502/hardware/cpu"
	"github.com/cycle6502/cycle6502/hardware/cpu/tracer"
	"github.com/cycle6502/cycle6502/hardware/memory"
	"github.com/cycle6502/cycle6502/logger"
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

func TestTracer(t *testing.T) {
	logger.Clear()

	mc, mem := setup()
	tr := tracer.NewTracer(logger.Allow)
	mc.SetObserver(tr)

	// LDA #$01 is two cycles
	_, err := mc.Execute(2, mem)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tr.Count(), 1)

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, strings.HasPrefix(w.String(), "trace: 1000"), true)
	test.ExpectEquality(t, strings.Contains(w.String(), "LDA"), true)
	test.ExpectEquality(t, strings.Contains(w.String(), "PC=1002 A=01 X=00"), true)

	// remaining instructions
	_, err = mc.Execute(6, mem)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tr.Count(), 4)

	w.Reset()
	logger.Tail(w, 1)
	test.ExpectEquality(t, strings.Contains(w.String(), "NOP"), true)
	test.ExpectEquality(t, strings.Contains(w.String(), "X=03"), true)
}

func TestLimit(t *testing.T) {
	logger.Clear()

	mc, mem := setup()
	tr := tracer.NewTracer(logger.Allow)
	tr.Limit = 2
	mc.SetObserver(tr)

	_, err := mc.Execute(8, mem)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tr.Count(), 2)

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectEquality(t, strings.Count(w.String(), "trace:"), 2)
}

func TestPermission(t *testing.T) {
	logger.Clear()

	mc, mem := setup()
	var perm logger.Toggle
	tr := tracer.NewTracer(&perm)
	mc.SetObserver(tr)

	_, err := mc.Execute(2, mem)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tr.Count(), 0)

	perm.On = true
	_, err = mc.Execute(2, mem)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tr.Count(), 1)

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectEquality(t, strings.Contains(w.String(), "LDX"), true)
}
