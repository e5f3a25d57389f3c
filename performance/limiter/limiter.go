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

// Package limiter provides a rough and ready way of pacing the emulation to a
// fixed clock rate.
//
// A new Clock can be created with:
//
//	clk := limiter.NewClock(1000000)
//
// The emulation is then run in short slices, with the Wait() function called
// after each slice with the number of cycles that were consumed. For example:
//
//	for {
//		n, err := mc.Execute(slice, mem)
//		if err != nil {
//			break
//		}
//		clk.Wait(n)
//	}
//
// A Clock created with a rate of zero never waits.
package limiter

import (
	"time"
)

// the accumulated error is discarded if the emulation falls this far behind
// the wall clock. without this a long pause (eg. waiting for a keypress) would
// be followed by a burst of unpaced cycles.
const maxLag = 100 * time.Millisecond

// Clock paces emulated cycles against the wall clock.
type Clock struct {
	hz int

	// time taken by a single cycle
	period time.Duration

	// the point in time that the emulation should have reached
	reference time.Time
	cycles    int64
}

// NewClock is the preferred method of initialisation for the Clock type.
func NewClock(hz int) *Clock {
	clk := &Clock{}
	clk.SetLimit(hz)
	return clk
}

// SetLimit changes the rate at which the Clock waits. A rate of zero or less
// means that the Clock is unlimited.
func (clk *Clock) SetLimit(hz int) {
	if hz < 0 {
		hz = 0
	}
	clk.hz = hz
	if hz > 0 {
		clk.period = time.Second / time.Duration(hz)
	} else {
		clk.period = 0
	}
	clk.Reset()
}

// Hz returns the rate of the Clock.
func (clk *Clock) Hz() int {
	return clk.hz
}

// Unlimited returns true if the Clock never waits.
func (clk *Clock) Unlimited() bool {
	return clk.hz == 0
}

// Reset the reference point of the Clock to the current time.
func (clk *Clock) Reset() {
	clk.reference = time.Now()
	clk.cycles = 0
}

// Wait blocks until the wall clock has caught up with the number of cycles
// accumulated since the Clock was last reset. Returns the length of time
// actually slept.
func (clk *Clock) Wait(cycles int) time.Duration {
	if clk.hz == 0 || cycles <= 0 {
		return 0
	}

	clk.cycles += int64(cycles)

	// target time calculated from the accumulated cycle count rather than from
	// the period, which will have been rounded for awkward rates
	target := clk.reference.Add(time.Duration(clk.cycles * int64(time.Second) / int64(clk.hz)))

	d := time.Until(target)
	if d <= 0 {
		if -d > maxLag {
			clk.Reset()
		}
		return 0
	}

	time.Sleep(d)
	return d
}
