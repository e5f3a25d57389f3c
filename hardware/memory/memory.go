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

package memory

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cycle6502/cycle6502/curated"
)

// Size of the address space.
const Size = 0x10000

// Sentinel error patterns.
const (
	LoadError = "memory: load: %v"
)

// Memory is the 64KB address space.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for Memory. The memory
// will be zero filled.
func NewMemory() *Memory {
	return &Memory{}
}

// Init zero-fills all memory.
func (mem *Memory) Init() {
	clear(mem.data[:])
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address]
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.data[address] = data
}

// Load copies bytes from io.Reader into memory starting at the origin
// address. Loading stops at the end of the data or at the end of the address
// space, whichever comes first. Loading never wraps around to address zero.
//
// Returns the number of bytes loaded.
func (mem *Memory) Load(r io.Reader, origin uint16) (int, error) {
	n, err := io.ReadFull(r, mem.data[origin:])
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return n, curated.Errorf(LoadError, err)
	}
	return n, nil
}

// LoadFile loads the named file into memory at the origin address. See Load()
// for details.
func (mem *Memory) LoadFile(filename string, origin uint16) (int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, curated.Errorf(LoadError, err)
	}
	defer f.Close()

	return mem.Load(bufio.NewReader(f), origin)
}

// Dump writes a hex dump of memory between begin and end (inclusive) to
// io.Writer. Each row shows sixteen bytes. Rows are aligned on sixteen byte
// boundaries and addresses outside of the requested range are left blank.
//
// Nothing is written if end is before begin.
func (mem *Memory) Dump(w io.Writer, begin uint16, end uint16) error {
	if end < begin {
		return nil
	}

	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")

	for row := int(begin) &^ 0x0f; row <= int(end); row += 16 {
		s.WriteString(fmt.Sprintf("%04x |", row))
		for col := 0; col < 16; col++ {
			a := row + col
			if a < int(begin) || a > int(end) {
				s.WriteString("   ")
			} else {
				s.WriteString(fmt.Sprintf(" %02x", mem.data[a]))
			}
		}
		s.WriteString("\n")
	}

	_, err := io.WriteString(w, s.String())
	return err
}
