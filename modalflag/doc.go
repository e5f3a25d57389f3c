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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Unlike flag.FlagSet, the arguments are given to NewArgs() and Parse() is
// called with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP")
//	_, _ = md.Parse()
//
// After parsing, Mode() returns the selected sub-mode (the first in the list
// if none was given on the command line). A new set of flags for that mode can
// then be added after a call to NewMode(), followed by another call to
// Parse(). Non-flag arguments are retrieved with RemainingArgs() or GetArg().
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		pc := md.AddHex16("pc", 0x0000, "start address")
//		p, err := md.Parse()
//		...
//	}
//
// For simplicity, all sub-mode comparisons are case insensitive.
//
// In addition to the usual flag types there are flags for values given in
// hexadecimal: AddHex16() for addresses, AddHex() for counts and AddRange()
// for a begin:end pair of addresses.
package modalflag
