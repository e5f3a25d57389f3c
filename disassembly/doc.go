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

// Package disassembly decodes instructions in memory without executing them.
//
// Decoding is linear. Every byte from the beginning of the range is assumed to
// be the start of an instruction and decoding continues from the byte after
// the last byte of the instruction. Data in the range will therefore be
// decoded as though it were code. Unknown opcodes are decoded as a single
// byte and have a nil definition.
//
// Results are of the execution.Result type, which allows the disassembly to
// be presented in exactly the same way as instructions that have been
// executed. Decoded results are never Final and do not record a cycle count.
package disassembly
