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

package functional_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/cycle6502/cycle6502/curated"
	"github.com/cycle6502/cycle6502/hardware/cpu"
	"github.com/cycle6502/cycle6502/hardware/memory"
	"github.com/cycle6502/cycle6502/test"
)

const binaryFile = "6502_functional_test.bin"

// these addresses are specific to the functional test binary
const (
	programOrigin  = uint16(0x0400)
	loadAddress    = uint16(0x0000)
	successAddress = uint16(0x3469)
)

// the number of cycles given to each call to Execute()
const budget = 100000

// history records the most recent instructions in case of failure
type history struct {
	ring *test.RingWriter
}

func (h *history) Observe(mc *cpu.CPU) error {
	fmt.Fprintf(h.ring, "%s\n%s\n", mc.LastResult.String(), mc.String())
	return nil
}

func TestFunctional(t *testing.T) {
	// the test includes checks for decimal arithmetic
	mc := cpu.NewCPU(cpu.MOS6502Decimal)

	mem := memory.NewMemory()
	mc.Reset(mem)
	n, err := mem.LoadFile(binaryFile, loadAddress)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			t.Skipf("%s not present", binaryFile)
		}
		t.Fatal(err)
	}
	test.DemandEquality(t, n, memory.Size)

	ring, err := test.NewRingWriter(2048)
	test.DemandSuccess(t, err)

	mc.LoadPC(programOrigin)
	mc.SetObserver(&history{ring: ring})

	var totalCycles int
	for {
		n, err := mc.Execute(budget, mem)
		totalCycles += n
		if err == nil {
			continue
		}

		// "Loop on program counter determines error or successful completion
		// of test"
		if curated.Is(err, cpu.ProgramCounterStuck) {
			break
		}

		t.Fatal(err)
	}

	if !test.ExpectEquality(t, mc.PC.Address(), successAddress) {
		t.Logf("\n%s", ring.String())
		return
	}

	t.Logf("total cycles: %d", totalCycles)
}
