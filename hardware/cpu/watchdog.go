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

import (
	"github.com/cycle6502/cycle6502/curated"
)

// WatchdogLimit is the number of consecutive instructions that can leave the
// program counter unchanged before Execute() gives up.
const WatchdogLimit = 5

// watchdog notices when the program has stopped making progress. A program
// that jumps or branches to itself forever will never return from Execute()
// unless the budget is exhausted. This is the usual way for test programs to
// signal that they have finished.
type watchdog struct {
	repeats int
}

func (wd *watchdog) reset() {
	wd.repeats = 0
}

// check is called after every instruction with the address of the instruction
// and the value of the PC after the instruction.
func (wd *watchdog) check(address uint16, pc uint16) error {
	if address != pc {
		wd.repeats = 0
		return nil
	}

	wd.repeats++
	if wd.repeats >= WatchdogLimit {
		return curated.Errorf(ProgramCounterStuck, pc, wd.repeats)
	}

	return nil
}
