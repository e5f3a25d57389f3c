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

package limiter_test

import (
	"testing"
	"time"

	"github.com/cycle6502/cycle6502/performance/limiter"
	"github.com/cycle6502/cycle6502/test"
)

func TestUnlimited(t *testing.T) {
	clk := limiter.NewClock(0)
	test.ExpectEquality(t, clk.Unlimited(), true)
	test.ExpectEquality(t, clk.Wait(1000000), time.Duration(0))

	clk.SetLimit(-10)
	test.ExpectEquality(t, clk.Unlimited(), true)
	test.ExpectEquality(t, clk.Hz(), 0)
}

func TestPacing(t *testing.T) {
	// 1000 cycles per second. 50 cycles is therefore 50ms
	clk := limiter.NewClock(1000)
	test.ExpectEquality(t, clk.Unlimited(), false)

	start := time.Now()
	for i := 0; i < 5; i++ {
		clk.Wait(10)
	}
	elapsed := time.Since(start)

	if elapsed < 45*time.Millisecond {
		t.Errorf("clock did not wait long enough: %v", elapsed)
	}
}

func TestNoWaitForNothing(t *testing.T) {
	clk := limiter.NewClock(1)
	test.ExpectEquality(t, clk.Wait(0), time.Duration(0))
	test.ExpectEquality(t, clk.Wait(-1), time.Duration(0))
}

func TestLag(t *testing.T) {
	clk := limiter.NewClock(1000)
	time.Sleep(150 * time.Millisecond)

	// the clock has fallen far behind so no wait is required and the
	// reference point is reset
	test.ExpectEquality(t, clk.Wait(10), time.Duration(0))

	// next wait is relative to the new reference point
	d := clk.Wait(10)
	if d <= 0 {
		t.Errorf("expected clock to wait after lag reset")
	}
}
