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

// cycle6502 runs 6502 machine code programs on a cycle-accurate emulation of
// the MOS 6502 CPU.
//
// The program has the following modes:
//
//	RUN          load a binary file and run it for a cycle budget (default)
//	STEP         execute one instruction for every keypress
//	DISASM       linear disassembly of a binary file
//	PERFORMANCE  measure the emulated clock rate
//	VERSION      display version information
//
// Help for each mode is available with the -help flag. For example:
//
//	cycle6502 run -help
//
// Programs that end by trapping themselves in a loop (eg. JMP *) stop when
// the CPU watchdog notices that the program counter is no longer changing.
// Programs that encounter an undocumented opcode halt immediately. Neither
// condition is considered an error.
package main
