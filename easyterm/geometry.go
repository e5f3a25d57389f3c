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

package easyterm

import (
	"fmt"
)

// TermGeometry contains the dimensions of a terminal (usually the output
// terminal).
type TermGeometry struct {
	// characters
	Rows uint16
	Cols uint16

	// pixels
	X uint16
	Y uint16
}

func (g TermGeometry) String() string {
	return fmt.Sprintf("%dx%d", g.Cols, g.Rows)
}

// UnsupportedPlatform is returned by Initialise() on platforms where the
// terminal cannot be controlled.
const UnsupportedPlatform = "easyterm: unsupported platform"

// NotATerminal is returned by Initialise() if the input file is not a
// terminal.
const NotATerminal = "easyterm: not a terminal: %v"
