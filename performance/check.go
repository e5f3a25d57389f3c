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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/cycle6502/cycle6502/curated"
	"github.com/cycle6502/cycle6502/hardware/cpu"
	"github.com/cycle6502/cycle6502/hardware/memory/cpubus"
	"github.com/cycle6502/cycle6502/performance/limiter"
)

// ProgramHalted is returned by Check() if the CPU stops before the duration
// has elapsed.
const ProgramHalted = "performance: program halted: %v"

// sentinal error returned by the run loop.
var timedOut = errors.New("performance timed out")

// time allowed for the emulation to settle before measurement begins.
var leadtime = 2 * time.Second

// number of cycles given to each call to cpu.Execute(). checking the timer is
// relatively expensive so this shouldn't be too small.
const slice = 10000

// Check the performance of the emulation by running the CPU for the specified
// duration. The CPU should be ready to run, with the program loaded into
// memory and the PC set.
//
// A cpu, memory or trace profile (or a combination of those) is created as
// defined by the Profile argument. If hz is greater than zero the emulation
// is paced to that clock rate and the accuracy of the pacing is reported.
func Check(output io.Writer, profile Profile, mc *cpu.CPU, mem cpubus.Memory, hz int, duration string) error {
	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	clk := limiter.NewClock(hz)

	var cycles int64
	var startCycles int64
	var startTime time.Time
	var endTime time.Time

	// run for specified period of time
	runner := func() error {
		// signals false when the leadtime has elapsed and true when the
		// measurement period has finished. buffered so that the timers never
		// block if the run loop has already returned
		timerChan := make(chan bool, 2)

		time.AfterFunc(leadtime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		for {
			n, err := mc.Execute(slice, mem)
			cycles += int64(n)
			if err != nil {
				return curated.Errorf(ProgramHalted, err)
			}
			clk.Wait(n)

			select {
			case v := <-timerChan:
				if v {
					endTime = time.Now()
					return timedOut
				}

				// leadtime has concluded so the measurement begins now
				startCycles = cycles
				startTime = time.Now()
				clk.Reset()
			default:
			}
		}
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return err
	}

	// calculate performance
	numCycles := cycles - startCycles
	secs := endTime.Sub(startTime).Seconds()
	mhz, accuracy := CalcMHz(numCycles, secs, hz)

	if hz > 0 {
		fmt.Fprintf(output, "%.3f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, numCycles, secs, accuracy)
	} else {
		fmt.Fprintf(output, "%.3f MHz (%d cycles in %.2f seconds)\n", mhz, numCycles, secs)
	}

	return nil
}
