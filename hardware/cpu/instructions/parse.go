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

package instructions

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseCSV reads instruction definitions from a CSV source. Each record has
// the form:
//
//	opcode, mnemonic, cycles, addressing mode, page sensitive, [effect]
//
// Lines beginning with # are comments. The effect field is optional and
// defaults to READ. The number of bytes for each instruction is implied by
// the addressing mode.
//
// The returned table is indexed by opcode. Opcodes that have no definition
// are nil.
func ParseCSV(r io.Reader) ([256]*Definition, error) {
	var table [256]*Definition

	csvr := csv.NewReader(r)
	csvr.Comment = '#'
	csvr.TrimLeadingSpace = true

	// instruction file can have a variable number of fields per definition
	csvr.FieldsPerRecord = -1

	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return table, fmt.Errorf("instructions: %w", err)
		}

		line, _ := csvr.FieldPos(0)

		if !(len(rec) == 5 || len(rec) == 6) {
			return table, fmt.Errorf("instructions: wrong number of fields in definition [line %d]", line)
		}

		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		defn := Definition{}

		opcode, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(rec[0]), "0x"), 16, 8)
		if err != nil {
			return table, fmt.Errorf("instructions: invalid opcode (%s) [line %d]", rec[0], line)
		}
		defn.OpCode = uint8(opcode)

		var ok bool
		defn.Operator, ok = OperatorFromMnemonic(rec[1])
		if !ok {
			return table, fmt.Errorf("instructions: unknown mnemonic for %#02x (%s) [line %d]", defn.OpCode, rec[1], line)
		}

		defn.Cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return table, fmt.Errorf("instructions: invalid cycle count for %#02x (%s) [line %d]", defn.OpCode, rec[2], line)
		}

		// the addressing mode also defines how many bytes an opcode requires
		switch strings.ToUpper(rec[3]) {
		case "IMPLIED":
			defn.AddressingMode = Implied
			defn.Bytes = 1
		case "IMMEDIATE":
			defn.AddressingMode = Immediate
			defn.Bytes = 2
		case "RELATIVE":
			defn.AddressingMode = Relative
			defn.Bytes = 2
		case "ABSOLUTE":
			defn.AddressingMode = Absolute
			defn.Bytes = 3
		case "ZERO_PAGE":
			defn.AddressingMode = ZeroPage
			defn.Bytes = 2
		case "INDIRECT":
			defn.AddressingMode = Indirect
			defn.Bytes = 3
		case "INDEXED_INDIRECT":
			defn.AddressingMode = IndexedIndirect
			defn.Bytes = 2
		case "INDIRECT_INDEXED":
			defn.AddressingMode = IndirectIndexed
			defn.Bytes = 2
		case "ABSOLUTE_INDEXED_X":
			defn.AddressingMode = AbsoluteIndexedX
			defn.Bytes = 3
		case "ABSOLUTE_INDEXED_Y":
			defn.AddressingMode = AbsoluteIndexedY
			defn.Bytes = 3
		case "ZERO_PAGE_INDEXED_X":
			defn.AddressingMode = ZeroPageIndexedX
			defn.Bytes = 2
		case "ZERO_PAGE_INDEXED_Y":
			defn.AddressingMode = ZeroPageIndexedY
			defn.Bytes = 2
		default:
			return table, fmt.Errorf("instructions: invalid addressing mode for %#02x (%s) [line %d]", defn.OpCode, rec[3], line)
		}

		switch strings.ToUpper(rec[4]) {
		case "TRUE":
			defn.PageSensitive = true
		case "FALSE":
			defn.PageSensitive = false
		default:
			return table, fmt.Errorf("instructions: invalid page sensitivity for %#02x (%s) [line %d]", defn.OpCode, rec[4], line)
		}

		if len(rec) == 5 {
			defn.Effect = Read
		} else {
			switch strings.ToUpper(rec[5]) {
			case "READ":
				defn.Effect = Read
			case "WRITE":
				defn.Effect = Write
			case "RMW":
				defn.Effect = RMW
			case "FLOW":
				defn.Effect = Flow
			case "SUBROUTINE":
				defn.Effect = Subroutine
			case "INTERRUPT":
				defn.Effect = Interrupt
			default:
				return table, fmt.Errorf("instructions: unknown effect for %#02x (%s) [line %d]", defn.OpCode, rec[5], line)
			}
		}

		if table[defn.OpCode] != nil {
			return table, fmt.Errorf("instructions: duplicate definition for %#02x [line %d]", defn.OpCode, line)
		}
		table[defn.OpCode] = &defn
	}

	return table, nil
}
