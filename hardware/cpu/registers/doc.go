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

// Package registers implements the three types of registers found in the
// 6502: the general purpose 8 bit registers (A, X and Y), the 16 bit program
// counter, the stack pointer and the status register.
//
// The arithmetic and logical operations on the Register type return the carry
// and overflow states where appropriate but do not touch the status register.
// Updating the status register is the responsibility of the CPU. For
// instance, in the CPU we might have this sequence of function calls:
//
//	a.Load(10)
//	sr.Carry, sr.Overflow = a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//
// In this case, the zero flag in the status register will be false.
package registers
