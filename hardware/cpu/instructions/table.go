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
	"bytes"
	_ "embed"
)

//go:embed instructions.csv
var definitionsCSV []byte

// the definitions table is built once when the package is initialised. the
// table never changes after that
var definitions [256]*Definition

func init() {
	var err error
	definitions, err = ParseCSV(bytes.NewReader(definitionsCSV))
	if err != nil {
		panic(err)
	}
}

// GetDefinitions returns the table of instruction definitions for the 6502.
// The table is indexed by opcode. Undefined opcodes have a nil entry.
//
// The returned value is a copy of the table but the definitions it points to
// are shared and should not be altered.
func GetDefinitions() [256]*Definition {
	return definitions
}
