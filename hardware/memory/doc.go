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

// Package memory implements the flat 64KB address space of a 6502 system.
//
// There is no memory mapping. Every address is backed by RAM and reads and
// writes have no side effects. The Memory type implements the cpubus.Memory
// interface.
//
// Programs are loaded with Load() or LoadFile(). The Dump() function writes a
// hex dump of a range of memory.
package memory
