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

package registers

import (
	"strings"
)

// list of bits in the status register as it appears on the stack.
const (
	Carry            = 0x01
	Zero             = 0x02
	InterruptDisable = 0x04
	DecimalMode      = 0x08
	Break            = 0x10
	Unused           = 0x20
	Overflow         = 0x40
	Sign             = 0x80
)

// StatusRegister is the special purpose register that stores the flags of the CPU.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

func flag(s *strings.Builder, set bool, r rune) {
	if set {
		s.WriteRune(r)
	} else {
		s.WriteRune(r + ('a' - 'A'))
	}
}

// String returns the flags as a string of eight characters. Upper case
// indicates that the flag is set. The third character is always a hyphen:
//
//	sv-bdizc
func (sr StatusRegister) String() string {
	s := strings.Builder{}
	flag(&s, sr.Sign, 'S')
	flag(&s, sr.Overflow, 'V')
	s.WriteRune('-')
	flag(&s, sr.Break, 'B')
	flag(&s, sr.DecimalMode, 'D')
	flag(&s, sr.InterruptDisable, 'I')
	flag(&s, sr.Zero, 'Z')
	flag(&s, sr.Carry, 'C')
	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(0)
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack. The unused bit is always set.
func (sr StatusRegister) Value() uint8 {
	v := uint8(Unused)

	if sr.Sign {
		v |= Sign
	}
	if sr.Overflow {
		v |= Overflow
	}
	if sr.Break {
		v |= Break
	}
	if sr.DecimalMode {
		v |= DecimalMode
	}
	if sr.InterruptDisable {
		v |= InterruptDisable
	}
	if sr.Zero {
		v |= Zero
	}
	if sr.Carry {
		v |= Carry
	}

	return v
}

// Load converts an 8 bit integer (taken from the stack, for example) to the
// StatusRegister struct receiver. The unused bit is ignored.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&Sign == Sign
	sr.Overflow = v&Overflow == Overflow
	sr.Break = v&Break == Break
	sr.DecimalMode = v&DecimalMode == DecimalMode
	sr.InterruptDisable = v&InterruptDisable == InterruptDisable
	sr.Zero = v&Zero == Zero
	sr.Carry = v&Carry == Carry
}
