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

// Package script allows the CPU to be observed by a program written in Lua.
// The Script type implements the cpu.Observer interface.
//
// After every instruction the Lua function step() is called, if it has been
// defined by the script, with the following arguments:
//
//	step(pc, a, x, y, sp, p, cycles)
//
// Where pc is the value of the program counter after the instruction has
// completed; p is the packed status register; and cycles is the number of
// cycles consumed by the instruction.
//
// If step() returns a true value the Observe() function returns an error
// matching the Break pattern, which stops cpu.Execute(). This can be used to
// implement breakpoints and other conditions. For example:
//
//	function step(pc, a, x, y, sp, p, cycles)
//		return pc == 0x3469
//	end
//
// The following functions are available to scripts:
//
//	peek(address)          returns the byte at address
//	poke(address, value)   writes value to address
//	log(message)           adds message to the log with the "script" tag
//
// The peek() and poke() functions require memory to have been attached with
// the Plumb() function.
package script
