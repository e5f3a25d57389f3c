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
	"github.com/cycle6502/cycle6502/hardware/cpu/instructions"
)

// Result records the state/result of the last instruction executed by the CPU.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition. nil if the opcode at Address
	// is not a documented instruction
	Defn *instructions.Definition

	// the opcode at Address. useful when Defn is nil
	OpCode uint8

	// the number of bytes read during instruction decode
	ByteCount int

	// instruction data is the actual instruction data. so, for example, in
	// the case of a branch instruction, it is the offset value
	InstructionData uint16

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but in the case of page faults and branches, this value
	// may be different
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a known buggy code path was triggered
	CPUBug Bug

	// whether branch instruction test passed (ie. branched) or not. testing
	// of this field should be used in conjunction with Defn.IsBranch()
	BranchSuccess bool

	// whether this data has been finalised. the values of the other fields
	// may be undefined unless Final is true
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}
