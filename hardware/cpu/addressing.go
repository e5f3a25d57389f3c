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

package cpu

import (
	"github.com/cycle6502/cycle6502/hardware/cpu/execution"
	"github.com/cycle6502/cycle6502/hardware/cpu/instructions"
)

// resolve performs the bus accesses required by the addressing mode of the
// instruction and returns the effective address. In the case of immediate
// addressing the operand itself is returned as the value and the address is
// meaningless. For relative addressing the address is the (unextended)
// offset.
//
// JSR reads its operand in an unusual order and so resolve() does nothing for
// the Subroutine effect. The operator switch in ExecuteInstruction() deals
// with it.
func (mc *CPU) resolve(defn *instructions.Definition) (address uint16, value uint8) {
	switch defn.AddressingMode {
	case instructions.Implied:
		// implied mode does not use any additional bytes. however, the next
		// instruction is read but the PC is not incremented
		if defn.Operator == instructions.Brk {
			// BRK skips the padding byte that follows the opcode
			// +1 cycle
			mc.read8BitPC(brk)
		} else {
			// +1 cycle
			mc.phantomRead(mc.PC.Address())
		}

	case instructions.Immediate:
		// +1 cycle
		mc.read8BitPC(loNibble)
		value = uint8(mc.LastResult.InstructionData)

	case instructions.Relative:
		// most of the addressing cycles for this addressing mode are consumed
		// in the branch() function
		// +1 cycle
		mc.read8BitPC(loNibble)
		address = mc.LastResult.InstructionData

	case instructions.Absolute:
		if defn.Effect != instructions.Subroutine {
			// +2 cycles
			mc.read16BitPC()
			address = mc.LastResult.InstructionData
		}

	case instructions.ZeroPage:
		// +1 cycle
		mc.read8BitPC(loNibble)
		address = mc.LastResult.InstructionData

	case instructions.ZeroPageIndexedX:
		address = mc.zeroPageIndexed(mc.X.Value())

	case instructions.ZeroPageIndexedY:
		// used exclusively by LDX and STX
		address = mc.zeroPageIndexed(mc.Y.Value())

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP
		// command

		// +2 cycles
		mc.read16BitPC()
		pointer := mc.LastResult.InstructionData

		// the high byte of the target is read from the same page as the low
		// byte. when the pointer is at the end of a page this means the high
		// byte comes from the start of that page and not the next
		if pointer&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}

		// +2 cycles
		lo := mc.read8Bit(pointer)
		hi := mc.read8Bit((pointer & 0xff00) | uint16(uint8(pointer)+1))
		address = (uint16(hi) << 8) | uint16(lo)

	case instructions.IndexedIndirect: // x indexing
		// +1 cycle
		mc.read8BitPC(loNibble)
		pointer := uint8(mc.LastResult.InstructionData)

		// phantom read before adjusting the index
		// +1 cycle
		mc.phantomRead(uint16(pointer))

		// 8 bit addition. the pointer never leaves the zero page
		mc.acc8.Load(pointer)
		mc.acc8.Add(mc.X.Value(), false)
		if mc.acc8.Value() < pointer {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}

		// +2 cycles
		address = mc.read16BitZeroPage(mc.acc8.Value())

		// never a page fault with pre-index indirect addressing

	case instructions.IndirectIndexed: // y indexing
		// +1 cycle
		mc.read8BitPC(loNibble)
		pointer := uint8(mc.LastResult.InstructionData)

		// +2 cycles
		base := mc.read16BitZeroPage(pointer)
		address = mc.indexed(defn, base, mc.Y.Value())

	case instructions.AbsoluteIndexedX:
		// +2 cycles
		mc.read16BitPC()
		address = mc.indexed(defn, mc.LastResult.InstructionData, mc.X.Value())

	case instructions.AbsoluteIndexedY:
		// +2 cycles
		mc.read16BitPC()
		address = mc.indexed(defn, mc.LastResult.InstructionData, mc.Y.Value())
	}

	return address, value
}

// zeroPageIndexed completes the zero page indexed addressing modes. The
// indexed address wraps around and never leaves the zero page.
func (mc *CPU) zeroPageIndexed(index uint8) uint16 {
	// +1 cycle
	mc.read8BitPC(loNibble)
	base := uint8(mc.LastResult.InstructionData)

	// phantom read from base address before index adjustment
	// +1 cycle
	mc.phantomRead(uint16(base))

	mc.acc8.Load(base)
	mc.acc8.Add(index, false)
	if mc.acc8.Value() < base {
		mc.LastResult.CPUBug = execution.ZeroPageIndexBug
	}

	return mc.acc8.Address()
}

// indexed adds the index to the base address. The index is added to the low
// byte of the base first and if that results in a carry into the high byte
// then a page fault has occurred.
//
// The CPU reads from the partially indexed address before the high byte has
// been fixed. This phantom read costs one cycle and happens only on a page
// fault for read instructions but always for write and RMW instructions.
func (mc *CPU) indexed(defn *instructions.Definition, base uint16, index uint8) uint16 {
	// add index to LSB of address
	mc.acc16.Load(uint16(index))
	mc.acc16.Add(base & 0x00ff)
	address := mc.acc16.Address()

	// check for page fault
	mc.LastResult.PageFault = address&0xff00 == 0x0100
	if mc.LastResult.PageFault || defn.Effect == instructions.Write || defn.Effect == instructions.RMW {
		// +1 cycle
		mc.phantomRead((base & 0xff00) | (address & 0x00ff))
	}

	// fix MSB of address
	mc.acc16.Add(base & 0xff00)

	return mc.acc16.Address()
}
