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

package cpu

// Model describes a variant of the 6502. Variants differ only in the way the
// CPU behaves and not in the instruction set.
type Model struct {
	Name string

	// whether ADC and SBC honour the decimal mode flag. when false the
	// decimal flag can be set and cleared but has no effect on arithmetic
	DecimalArithmetic bool
}

func (m Model) String() string {
	return m.Name
}

// List of supported models.
var (
	// MOS6502 is the default model. The decimal flag is stored but is
	// otherwise ignored.
	MOS6502 = Model{Name: "6502"}

	// MOS6502Decimal performs binary coded decimal arithmetic in ADC and SBC
	// when the decimal flag is set. Flags follow the NMOS rules.
	MOS6502Decimal = Model{Name: "6502 (decimal)", DecimalArithmetic: true}
)

// Models is the list of all models, in the order they should be presented to
// the user.
var Models = []Model{MOS6502, MOS6502Decimal}

// ModelFromName returns the model with the given name. The boolean return
// value is false if there is no model with that name.
func ModelFromName(name string) (Model, bool) {
	for _, m := range Models {
		if m.Name == name {
			return m, true
		}
	}
	return Model{}, false
}
