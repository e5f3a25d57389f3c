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

package cpu_test

import (
	"testing"

	"github.com/cycle6502/cycle6502/hardware/cpu"
	"github.com/cycle6502/cycle6502/hardware/cpu/execution"
	"github.com/cycle6502/cycle6502/test"
)

type busWrite struct {
	address uint16
	data    uint8
}

// mockMem is a flat 64k memory that counts accesses and logs writes.
type mockMem struct {
	internal [0x10000]uint8

	accesses int
	writes   []busWrite
}

func newMockMem() *mockMem {
	return &mockMem{}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %04x)", mem.internal[address], value, address)
	}
}

// Init sets all bytes in memory to zero. Called by the CPU on reset.
func (mem *mockMem) Init() {
	clear(mem.internal[:])
	mem.resetLog()
}

func (mem *mockMem) resetLog() {
	mem.accesses = 0
	mem.writes = mem.writes[:0]
}

func (mem *mockMem) Read(address uint16) uint8 {
	mem.accesses++
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.accesses++
	mem.writes = append(mem.writes, busWrite{address: address, data: data})
	mem.internal[address] = data
}

// step executes a single instruction and checks that the result is valid. The
// number of cycles taken by the instruction must be the same as the number of
// memory accesses.
func step(t *testing.T, mc *cpu.CPU, mem *mockMem) execution.Result {
	t.Helper()

	mem.resetLog()

	err := mc.ExecuteInstruction(mem)
	test.DemandSuccess(t, err)

	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatalf("%v: %s", err, mc.LastResult.String())
	}

	test.ExpectEquality(t, mem.accesses, mc.LastResult.Cycles, "bus accesses", mc.LastResult.String())

	return mc.LastResult
}

// validator is an Observer that checks every instruction executed by
// Execute().
type validator struct {
	t            *testing.T
	instructions int
}

func (v *validator) Observe(mc *cpu.CPU) error {
	v.t.Helper()
	v.instructions++
	if err := mc.LastResult.IsValid(); err != nil {
		v.t.Errorf("%v: %s", err, mc.LastResult.String())
	}
	return nil
}
