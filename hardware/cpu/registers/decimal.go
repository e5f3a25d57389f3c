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

// AddDecimal adds value to register as though both are binary coded decimal
// numbers. Returns new carry, zero, overflow and sign states.
//
// Flags follow the NMOS 6502: the zero flag is taken from the binary sum, the
// sign and overflow flags are taken after the adjustment of the low nibble
// but before the adjustment of the high nibble.
func (r *Register) AddDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	var c uint8
	if carry {
		c = 1
	}

	zero := r.value+val+c == 0

	lo := (r.value & 0x0f) + (val & 0x0f) + c
	if lo > 0x09 {
		lo += 0x06
	}

	hi := (r.value >> 4) + (val >> 4)
	if lo > 0x0f {
		hi++
	}

	sign := hi&0x08 == 0x08
	overflow := ^(r.value^val)&(r.value^(hi<<4))&0x80 == 0x80

	if hi > 0x09 {
		hi += 0x06
	}
	rcarry := hi > 0x0f

	r.value = (hi << 4) | (lo & 0x0f)

	return rcarry, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both are binary
// coded decimal numbers. Returns new carry, zero, overflow and sign states.
//
// On the NMOS 6502 all flags are the same as for binary subtraction. Only the
// value stored in the register is adjusted.
func (r *Register) SubtractDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	var borrow uint8
	if !carry {
		borrow = 1
	}

	bin := NewRegister(r.value, "")
	rcarry, overflow := bin.Subtract(val, carry)

	lo := int(r.value&0x0f) - int(val&0x0f) - int(borrow)
	hi := int(r.value>>4) - int(val>>4)
	if lo < 0 {
		lo -= 0x06
		hi--
	}
	if hi < 0 {
		hi -= 0x06
	}

	r.value = uint8(hi<<4) | uint8(lo&0x0f)

	return rcarry, bin.IsZero(), overflow, bin.IsNegative()
}
