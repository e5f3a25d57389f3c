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

package execution

import (
	"fmt"
	"strings"

	"github.com/cycle6502/cycle6502/hardware/cpu/instructions"
)

// String returns a disassembly of the instruction represented by the result,
// along with the number of cycles taken and any notes. For example:
//
//	0400  69 03     ADC #$03      [2]
//	0402  d0 fc     BNE $0400     [4] page-fault
func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04x  %02x        ???", r.Address, r.OpCode)
	}

	var hex string
	switch r.Defn.Bytes {
	case 3:
		hex = fmt.Sprintf("%02x %02x %02x", r.Defn.OpCode, r.InstructionData&0x00ff, r.InstructionData>>8)
	case 2:
		hex = fmt.Sprintf("%02x %02x", r.Defn.OpCode, r.InstructionData&0x00ff)
	default:
		hex = fmt.Sprintf("%02x", r.Defn.OpCode)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x  %-8s  %s", r.Address, hex, r.Defn.Operator))

	if operand := r.operand(); operand != "" {
		s.WriteString(fmt.Sprintf(" %-9s", operand))
	} else {
		s.WriteString("          ")
	}

	if r.Final {
		s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))
	}
	if r.PageFault {
		s.WriteString(" page-fault")
	}
	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" * %s *", r.CPUBug))
	}

	return s.String()
}

// operand decorated with addressing mode indicators.
func (r Result) operand() string {
	switch r.Defn.AddressingMode {
	case instructions.Implied:
		switch r.Defn.Operator {
		case instructions.Asl, instructions.Lsr, instructions.Rol, instructions.Ror:
			return "A"
		}
		return ""
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", r.InstructionData)
	case instructions.Relative:
		// the branch target is relative to the address of the next
		// instruction
		offset := r.InstructionData
		if offset&0x0080 == 0x0080 {
			offset |= 0xff00
		}
		return fmt.Sprintf("$%04x", r.Address+uint16(r.Defn.Bytes)+offset)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", r.InstructionData)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", r.InstructionData)
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", r.InstructionData)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", r.InstructionData)
	}
	return ""
}
