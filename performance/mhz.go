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

// CalcMHz takes the number of cycles and duration (in seconds) and returns the
// emulated clock rate in MHz. If targetHz is greater than zero the accuracy
// of the clock rate as a percentage of the target is also returned, otherwise
// the accuracy is zero.
func CalcMHz(cycles int64, duration float64, targetHz int) (mhz float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	hz := float64(cycles) / duration
	if targetHz > 0 {
		accuracy = 100 * hz / float64(targetHz)
	}
	return hz / 1000000, accuracy
}
