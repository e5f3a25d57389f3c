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

// Observer implementations are notified after every instruction executed by
// the Execute() function. The CPU's LastResult field describes the
// instruction that has just completed.
//
// Returning an error stops Execute(). The error is returned by Execute()
// unchanged.
type Observer interface {
	Observe(mc *CPU) error
}

// Observers is a list of Observer implementations that is itself an
// Observer. Each observer in the list is notified in turn, stopping at the
// first error.
type Observers []Observer

// Observe implements the Observer interface.
func (obs Observers) Observe(mc *CPU) error {
	for _, o := range obs {
		if err := o.Observe(mc); err != nil {
			return err
		}
	}
	return nil
}
