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

// Package cpubus defines the interface between the CPU and memory, along with
// the addresses in memory that have special meaning to the CPU.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Every 16 bit address is valid and so the operations cannot fail.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Initialiser is memory that can be returned to its power-on state. The CPU
// requires this when it is reset.
type Initialiser interface {
	Memory
	Init()
}

// NMI is the address where the non-maskable interrupt address is stored.
const NMI = uint16(0xfffa)

// Reset is the address where the reset address is stored.
const Reset = uint16(0xfffc)

// IRQ is the address where the interrupt address is stored. The BRK
// instruction uses the same vector.
const IRQ = uint16(0xfffe)

// BRK is an alias for IRQ.
const BRK = IRQ

// StackOrigin is the first address of the stack page.
const StackOrigin = uint16(0x0100)
