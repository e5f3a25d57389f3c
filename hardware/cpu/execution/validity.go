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
	"github.com/cycle6502/cycle6502/curated"
	"github.com/cycle6502/cycle6502/hardware/cpu/instructions"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("execution: not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return curated.Errorf("execution: no definition for opcode %#02x", r.OpCode)
	}

	// page faults can only happen with indexed or relative addressing
	if r.PageFault {
		switch r.Defn.AddressingMode {
		case instructions.Relative:
		case instructions.AbsoluteIndexedX:
		case instructions.AbsoluteIndexedY:
		case instructions.IndirectIndexed:
		default:
			return curated.Errorf("execution: unexpected page fault for opcode %#02x [%s]", r.Defn.OpCode, r.Defn.Operator)
		}
	}

	if r.BranchSuccess && !r.Defn.IsBranch() {
		return curated.Errorf("execution: branch success for non-branch opcode %#02x [%s]", r.Defn.OpCode, r.Defn.Operator)
	}

	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("execution: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	expected := r.Defn.Cycles
	if r.Defn.IsBranch() {
		if r.BranchSuccess {
			expected++
			if r.PageFault {
				expected++
			}
		}
	} else if r.Defn.PageSensitive && r.PageFault {
		expected++
	}

	if r.Cycles != expected {
		return curated.Errorf("execution: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn.Operator, r.Cycles, expected)
	}

	return nil
}
