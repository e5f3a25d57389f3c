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

package disassembly

import (
	"fmt"
	"io"

	"github.com/cycle6502/cycle6502/hardware/cpu/execution"
	"github.com/cycle6502/cycle6502/hardware/cpu/instructions"
	"github.com/cycle6502/cycle6502/hardware/memory/cpubus"
)

// the instruction table is immutable so it can be shared by every call to
// Decode()
var definitions = instructions.GetDefinitions()

// Decode the instruction at address. Operand bytes that lie beyond the end of
// the address space are read from the beginning of the address space.
func Decode(mem cpubus.Memory, address uint16) execution.Result {
	r := execution.Result{
		Address:   address,
		OpCode:    mem.Read(address),
		ByteCount: 1,
	}

	r.Defn = definitions[r.OpCode]
	if r.Defn == nil {
		return r
	}

	switch r.Defn.Bytes {
	case 3:
		lo := mem.Read(address + 1)
		hi := mem.Read(address + 2)
		r.InstructionData = (uint16(hi) << 8) | uint16(lo)
	case 2:
		r.InstructionData = uint16(mem.Read(address + 1))
	}
	r.ByteCount = r.Defn.Bytes

	return r
}

// Linear decodes every instruction in the range begin to end inclusive. The
// final instruction may extend beyond the end of the range. Decoding never
// wraps around to the beginning of the address space.
func Linear(mem cpubus.Memory, begin uint16, end uint16) []execution.Result {
	var results []execution.Result

	for address := int(begin); address <= int(end); {
		r := Decode(mem, uint16(address))
		results = append(results, r)
		address += r.ByteCount
	}

	return results
}

// Write the linear disassembly of the range begin to end to io.Writer. One
// instruction per line.
func Write(w io.Writer, mem cpubus.Memory, begin uint16, end uint16) error {
	for _, r := range Linear(mem, begin, end) {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return fmt.Errorf("disassembly: %w", err)
		}
	}
	return nil
}
