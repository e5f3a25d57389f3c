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

//go:build !linux

package easyterm

import (
	"os"

	"github.com/cycle6502/cycle6502/curated"
)

// Terminal is a placeholder on platforms that are not supported.
type Terminal struct {
	Geometry TermGeometry
}

// Initialise always fails on unsupported platforms.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	return curated.Errorf(UnsupportedPlatform)
}

// CleanUp does nothing on unsupported platforms.
func (pt *Terminal) CleanUp() {}

// Print does nothing on unsupported platforms.
func (pt *Terminal) Print(s string, a ...any) {}

// UpdateGeometry always fails on unsupported platforms.
func (pt *Terminal) UpdateGeometry() error {
	return curated.Errorf(UnsupportedPlatform)
}

// CanonicalMode always fails on unsupported platforms.
func (pt *Terminal) CanonicalMode() error {
	return curated.Errorf(UnsupportedPlatform)
}

// CBreakMode always fails on unsupported platforms.
func (pt *Terminal) CBreakMode() error {
	return curated.Errorf(UnsupportedPlatform)
}

// Flush always fails on unsupported platforms.
func (pt *Terminal) Flush() error {
	return curated.Errorf(UnsupportedPlatform)
}

// ReadKey always fails on unsupported platforms.
func (pt *Terminal) ReadKey() (byte, error) {
	return 0, curated.Errorf(UnsupportedPlatform)
}
