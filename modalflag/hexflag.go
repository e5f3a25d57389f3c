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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// hex flags accept values with or without a leading "0x" or "$".
func parseHex(s string, bitSize int) (uint64, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "0x"), "$")
	return strconv.ParseUint(s, 16, bitSize)
}

type hex16 uint16

func (h *hex16) String() string {
	return fmt.Sprintf("%04x", uint16(*h))
}

func (h *hex16) Set(s string) error {
	v, err := parseHex(s, 16)
	if err != nil {
		return fmt.Errorf("not a 16 bit hex value: %s", s)
	}
	*h = hex16(v)
	return nil
}

type hexInt int

func (h *hexInt) String() string {
	return fmt.Sprintf("%x", int(*h))
}

func (h *hexInt) Set(s string) error {
	v, err := parseHex(s, 31)
	if err != nil {
		return fmt.Errorf("not a hex value: %s", s)
	}
	*h = hexInt(v)
	return nil
}

// AddHex16 adds a flag for a 16 bit value specified in hexadecimal. Useful
// for addresses.
func (md *Modes) AddHex16(name string, value uint16, usage string) *uint16 {
	p := new(uint16)
	*p = value
	md.flags.Var((*hex16)(p), name, usage)
	return p
}

// AddHex adds a flag for a non-negative integer specified in hexadecimal.
func (md *Modes) AddHex(name string, value int, usage string) *int {
	p := new(int)
	*p = value
	md.flags.Var((*hexInt)(p), name, usage)
	return p
}

// AddressRange is the value type returned by AddRange.
type AddressRange struct {
	Begin uint16
	End   uint16

	// Specified is true if the flag was given on the command line
	Specified bool
}

func (r *AddressRange) String() string {
	if !r.Specified {
		return ""
	}
	return fmt.Sprintf("%04x:%04x", r.Begin, r.End)
}

// Set implements the flag.Value interface. The form of the value is
// begin:end with both addresses in hexadecimal.
func (r *AddressRange) Set(s string) error {
	p := strings.SplitN(s, ":", 2)
	if len(p) != 2 {
		return fmt.Errorf("address range must be begin:end")
	}
	b, err := parseHex(p[0], 16)
	if err != nil {
		return fmt.Errorf("not a 16 bit hex value: %s", p[0])
	}
	e, err := parseHex(p[1], 16)
	if err != nil {
		return fmt.Errorf("not a 16 bit hex value: %s", p[1])
	}
	if e < b {
		return fmt.Errorf("end of address range is before the beginning")
	}
	r.Begin = uint16(b)
	r.End = uint16(e)
	r.Specified = true
	return nil
}

// AddRange adds a flag for an inclusive range of addresses.
func (md *Modes) AddRange(name string, usage string) *AddressRange {
	r := &AddressRange{}
	md.flags.Var(r, name, usage)
	return r
}
