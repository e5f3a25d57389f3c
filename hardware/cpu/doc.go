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

// Package cpu emulates the NMOS 6502 microprocessor. Like all 8-bit processors
// of the era, the 6502 executes instructions according to the single byte
// value read from an address pointed to by the program counter. This single
// byte is the opcode and is looked up in the instruction table. The
// instruction definition for that opcode is then used to move execution of
// the program forward.
//
// The CPU does not own any memory. Memory is supplied as an implementation of
// the cpubus.Memory interface to every function that needs it. Reset() also
// zeroes memory and so requires the wider cpubus.Initialiser interface. Let's
// assume mem is an instance of memory.Memory.
//
//	mc := cpu.NewCPU(cpu.MOS6502)
//	mc.Reset(mem)
//	mem.LoadFile("program.bin", 0x1000)
//	mc.LoadPC(0x1000)
//
//	consumed, err := mc.Execute(1000, mem)
//
// Execute() will run instructions until at least 1000 cycles have been
// consumed. Every memory access made by an instruction, including the
// phantom accesses made by the real hardware, costs one cycle. Instructions
// always run to completion so the number of cycles consumed can be greater
// than the budget.
//
// The ExecuteInstruction() function runs exactly one instruction. In both
// cases the LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information.
//
// Execution stops early if an unknown opcode is encountered or if the program
// counter has not changed for WatchdogLimit instructions. The returned error
// can be tested with curated.Is() against the UnknownOpcode and
// ProgramCounterStuck patterns.
//
// An Observer can be attached with SetObserver(). It is notified after every
// instruction run by Execute() and can stop execution by returning an error.
// See the tracer package for an example.
//
// The MOS6502 model ignores the decimal flag when performing arithmetic. Use
// the MOS6502Decimal model for binary coded decimal arithmetic.
package cpu
